package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"espresso/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Empty the on-disk compile cache",
	Long:  "Remove every cached compilation. The next build repopulates the cache.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenDiskCache("espresso")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to empty cache: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "cache emptied")
	return nil
}
