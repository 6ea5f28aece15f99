package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"espresso/internal/diagfmt"
	"espresso/internal/dialect"
	"espresso/internal/driver"
	"espresso/internal/project"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.esp",
	Short: "Tokenize an espresso source file",
	Long:  "Tokenize scans a source file and prints the raw token stream, layout tokens included.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	in, err := readInput(path, maxDiagnostics)
	if err != nil {
		return err
	}
	fe, toks := driver.Tokenize(in)

	if fe.Bag.Len() > 0 {
		fe.Bag.Sort()
		diagfmt.Pretty(os.Stderr, fe.Bag, fe.FileSet, diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowNotes:   true,
			ShowPreview: true,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.TokensPretty(os.Stdout, toks, fe.FileSet)
	case "json":
		return diagfmt.TokensJSON(os.Stdout, toks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// readInput loads one source file and layers the nearest manifest's
// dialect defaults under its prologue directive.
func readInput(path string, maxDiagnostics int) (driver.Input, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return driver.Input{}, fmt.Errorf("failed to read %q: %w", path, err)
	}
	manifest, err := project.LoadNearest(".")
	if err != nil {
		return driver.Input{}, err
	}
	base := manifest.ApplyDialect(dialect.Default())
	return driver.Input{
		Path:           path,
		Content:        content,
		Base:           &base,
		MaxDiagnostics: maxDiagnostics,
	}, nil
}
