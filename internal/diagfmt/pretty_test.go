package diagfmt

import (
	"strings"
	"testing"

	"espresso/internal/diag"
	"espresso/internal/source"
)

func demoBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("/tmp/demo.esp", []byte("x = foo bar\nnext()\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: id, Start: 4, End: 7},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 0, End: 1}, Msg: "assignment starts here"},
		},
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.WarnUnknownDirective,
		Message:  "unknown directive flag",
		Primary:  source.Span{File: id, Start: 12, End: 16},
	})
	return bag, fs
}

func TestPrettyHeaderLine(t *testing.T) {
	bag, fs := demoBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	out := sb.String()
	if !strings.Contains(out, "/tmp/demo.esp:1:5: error SYN2001: unexpected token") {
		t.Fatalf("missing error header in output:\n%s", out)
	}
	if !strings.Contains(out, "/tmp/demo.esp:2:1: warning WARN4001: unknown directive flag") {
		t.Fatalf("missing warning header in output:\n%s", out)
	}
}

func TestPrettyPreviewUnderline(t *testing.T) {
	bag, fs := demoBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowPreview: true})

	out := sb.String()
	if !strings.Contains(out, "  x = foo bar\n") {
		t.Fatalf("preview line missing:\n%s", out)
	}
	// Span covers "foo": caret plus two tildes under column 5.
	if !strings.Contains(out, "  "+strings.Repeat(" ", 4)+"^~~\n") {
		t.Fatalf("underline misaligned:\n%s", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	bag, fs := demoBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true, PathMode: PathModeBasename})

	out := sb.String()
	if !strings.Contains(out, "note: assignment starts here (demo.esp:1:1)") {
		t.Fatalf("note missing or path not shortened:\n%s", out)
	}
	if strings.Contains(out, "/tmp/demo.esp") {
		t.Fatalf("basename mode leaked full path:\n%s", out)
	}
}

func TestPrettyNoFileSet(t *testing.T) {
	bag, _ := demoBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, nil, PrettyOpts{ShowPreview: true})

	out := sb.String()
	if !strings.Contains(out, "<unknown>: error SYN2001") {
		t.Fatalf("expected placeholder position:\n%s", out)
	}
}
