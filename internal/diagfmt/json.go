package diagfmt

import (
	"encoding/json"
	"io"
	"path/filepath"

	"espresso/internal/diag"
	"espresso/internal/source"
)

// DiagnosticJSON is one diagnostic in machine-readable form.
type DiagnosticJSON struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Path     string     `json:"path,omitempty"`
	Line     uint32     `json:"line,omitempty"`
	Col      uint32     `json:"col,omitempty"`
	EndLine  uint32     `json:"endLine,omitempty"`
	EndCol   uint32     `json:"endCol,omitempty"`
	Notes    []NoteJSON `json:"notes,omitempty"`
}

// NoteJSON is a secondary message attached to a diagnostic.
type NoteJSON struct {
	Message string `json:"message"`
	Line    uint32 `json:"line,omitempty"`
	Col     uint32 `json:"col,omitempty"`
}

// JSON writes the bag as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]DiagnosticJSON, 0, len(items))
	for _, d := range items {
		j := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
		}
		if fs != nil && !d.Primary.Empty() {
			if file := fs.Get(d.Primary.File); file != nil {
				j.Path = file.Path
				if opts.PathMode == PathModeBasename {
					j.Path = filepath.Base(j.Path)
				}
				start, end := fs.Resolve(d.Primary)
				j.Line, j.Col = start.Line, start.Col
				j.EndLine, j.EndCol = end.Line, end.Col
			}
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				nj := NoteJSON{Message: n.Msg}
				if fs != nil && !n.Span.Empty() {
					pos := fs.Pos(n.Span.File, n.Span.Start)
					nj.Line, nj.Col = pos.Line, pos.Col
				}
				j.Notes = append(j.Notes, nj)
			}
		}
		out = append(out, j)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
