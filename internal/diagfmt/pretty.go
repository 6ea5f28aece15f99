package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"espresso/internal/diag"
	"espresso/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.Faint)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty renders every diagnostic in the bag as
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//	  <source line>
//	  ^~~~~
//
// Callers sort the bag first when deterministic order matters.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		formatPos(fs, d.Primary, opts.PathMode),
		severityLabel(d.Severity, opts.Color),
		paint(codeColor, d.Code.String(), opts.Color),
		d.Message)

	if opts.ShowPreview {
		preview(w, fs, d.Primary, opts.Color)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s (%s)\n", n.Msg, formatPos(fs, n.Span, opts.PathMode))
		}
	}
}

// preview prints the offending source line with a caret underline
// aligned by display width, so tabs and wide runes line up.
func preview(w io.Writer, fs *source.FileSet, sp source.Span, colored bool) {
	if fs == nil || sp.Empty() {
		return
	}
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	line = strings.TrimRight(line, "\n")
	fmt.Fprintf(w, "  %s\n", line)

	runes := []rune(line)
	startCol := int(start.Col) - 1
	if startCol > len(runes) {
		startCol = len(runes)
	}
	pad := runewidth.StringWidth(string(runes[:startCol]))

	length := 1
	if end.Line == start.Line && end.Col > start.Col {
		endCol := int(end.Col) - 1
		if endCol > len(runes) {
			endCol = len(runes)
		}
		if width := runewidth.StringWidth(string(runes[startCol:endCol])); width > 0 {
			length = width
		}
	}

	marker := "^" + strings.Repeat("~", length-1)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), paint(caretColor, marker, colored))
}

func severityLabel(sev diag.Severity, colored bool) string {
	switch sev {
	case diag.SevError:
		return paint(errorColor, "error", colored)
	case diag.SevWarning:
		return paint(warningColor, "warning", colored)
	default:
		return paint(infoColor, "info", colored)
	}
}

func paint(c *color.Color, s string, colored bool) string {
	if !colored {
		return s
	}
	return c.Sprint(s)
}

func formatPos(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if fs == nil {
		return "<unknown>"
	}
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	path := file.Path
	if mode == PathModeBasename {
		path = filepath.Base(path)
	}
	if sp.Empty() {
		return path
	}
	pos := fs.Pos(sp.File, sp.Start)
	return fmt.Sprintf("%s:%d:%d", path, pos.Line, pos.Col)
}
