package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"espresso/internal/source"
	"espresso/internal/token"
)

func TestJSONShape(t *testing.T) {
	bag, fs := demoBag(t)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludeNotes: true}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out []DiagnosticJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(out))
	}

	first := out[0]
	if first.Severity != "ERROR" || first.Code != "SYN2001" {
		t.Fatalf("unexpected first diagnostic: %+v", first)
	}
	if first.Path != "/tmp/demo.esp" || first.Line != 1 || first.Col != 5 {
		t.Fatalf("unexpected position: %+v", first)
	}
	if first.EndLine != 1 || first.EndCol != 8 {
		t.Fatalf("unexpected end position: %+v", first)
	}
	if len(first.Notes) != 1 || first.Notes[0].Message != "assignment starts here" {
		t.Fatalf("notes not carried: %+v", first.Notes)
	}

	if out[1].Severity != "WARNING" || out[1].Line != 2 {
		t.Fatalf("unexpected second diagnostic: %+v", out[1])
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	bag, fs := demoBag(t)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out []DiagnosticJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 diagnostic after truncation, got %d", len(out))
	}
	if len(out[0].Notes) != 0 {
		t.Fatalf("notes included without IncludeNotes: %+v", out[0].Notes)
	}
}

func TestTokensPrettyStopsAtEOF(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("toks.esp", []byte("a b\n"))

	tokens := []token.Token{
		{Kind: token.Ident, Text: "a", Span: source.Span{File: id, Start: 0, End: 1}},
		{Kind: token.Ident, Text: "b", Span: source.Span{File: id, Start: 2, End: 3},
			Leading: []token.Trivia{{Kind: token.TriviaSpace, Span: source.Span{File: id, Start: 1, End: 2}, Text: " "}}},
		{Kind: token.EOF, Span: source.Span{File: id, Start: 4, End: 4}},
		{Kind: token.Ident, Text: "ghost", Span: source.Span{File: id, Start: 4, End: 4}},
	}

	var sb strings.Builder
	if err := TokensPretty(&sb, tokens, fs); err != nil {
		t.Fatalf("format: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, `"a" at 1:1-1:2`) {
		t.Fatalf("first token line missing:\n%s", out)
	}
	if !strings.Contains(out, "(leading: space)") {
		t.Fatalf("leading trivia missing:\n%s", out)
	}
	if strings.Contains(out, "ghost") {
		t.Fatalf("tokens after EOF should be skipped:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", lines, out)
	}
}

func TestTokensJSONRoundTrip(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("toks.esp", []byte("a\n"))
	_ = fs

	tokens := []token.Token{
		{Kind: token.Ident, Text: "a", Span: source.Span{File: id, Start: 0, End: 1}},
		{Kind: token.EOF, Span: source.Span{File: id, Start: 2, End: 2}},
	}

	var buf bytes.Buffer
	if err := TokensJSON(&buf, tokens); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out []TokenJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(out))
	}
	if out[0].Kind != "Ident" || out[0].Text != "a" {
		t.Fatalf("unexpected first token: %+v", out[0])
	}
	if out[1].Kind != "EOF" {
		t.Fatalf("unexpected last token: %+v", out[1])
	}
}
