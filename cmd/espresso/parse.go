package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"espresso/internal/diagfmt"
	"espresso/internal/driver"
	"espresso/internal/source"
	"espresso/internal/symbols"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.esp",
	Short: "Parse an espresso source file and print its outline",
	Long:  "Parse builds the syntax tree for one file and prints the declaration outline: variables, functions, classes and imports.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
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
	fe, file := driver.Parse(in)

	if fe.Bag.Len() > 0 {
		fe.Bag.Sort()
		diagfmt.Pretty(os.Stderr, fe.Bag, fe.FileSet, diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowNotes:   true,
			ShowPreview: true,
		})
	}

	outline := symbols.Outline(file)
	switch format {
	case "pretty":
		printOutline(fe.FileSet, outline, 0)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outlineJSON(fe.FileSet, outline))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printOutline(fs *source.FileSet, syms []symbols.Symbol, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, s := range syms {
		pos, _ := fs.Resolve(s.Selection)
		fmt.Fprintf(os.Stdout, "%s%s %s at %d:%d\n", indent, s.Kind, s.Name, pos.Line, pos.Col)
		printOutline(fs, s.Children, depth+1)
	}
}

type outlineNode struct {
	Name     string        `json:"name"`
	Kind     string        `json:"kind"`
	Line     uint32        `json:"line"`
	Col      uint32        `json:"col"`
	Children []outlineNode `json:"children,omitempty"`
}

func outlineJSON(fs *source.FileSet, syms []symbols.Symbol) []outlineNode {
	out := make([]outlineNode, 0, len(syms))
	for _, s := range syms {
		pos, _ := fs.Resolve(s.Selection)
		out = append(out, outlineNode{
			Name:     s.Name,
			Kind:     s.Kind.String(),
			Line:     pos.Line,
			Col:      pos.Col,
			Children: outlineJSON(fs, s.Children),
		})
	}
	return out
}
