package source

import (
	"testing"
)

func TestFileSetAddAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.esp", []byte("let x = 1\nlet y = 2\n"))

	f := fs.Get(id)
	if f.Path != "test.esp" {
		t.Fatalf("path = %q", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatal("expected FileVirtual flag")
	}

	start, end := fs.Resolve(Span{File: id, Start: 10, End: 13})
	if (start != LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %+v", start)
	}
	if (end != LineCol{Line: 2, Col: 4}) {
		t.Errorf("end = %+v", end)
	}
	if got := fs.Text(Span{File: id, Start: 10, End: 13}); got != "let" {
		t.Errorf("Text = %q", got)
	}
}

func TestFileSetNormalizesOnAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("crlf.esp", []byte("a\r\nb"))
	f := fs.Get(id)
	if string(f.Content) != "a\nb" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatal("expected FileNormalizedCRLF flag")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.esp", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	if got := f.GetLine(2); got != "two" {
		t.Errorf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "three" {
		t.Errorf("line 3 = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("line 9 = %q", got)
	}
}
