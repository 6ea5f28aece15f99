package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"espresso/internal/source"
	"espresso/internal/token"
)

// TokenJSON is one token of the lexed stream in machine-readable form.
type TokenJSON struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

// TokensPretty prints one line per token: index, kind, text, position
// and the kinds of any leading trivia. The stream ends at EOF even if
// more tokens follow in the slice.
func TokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		var leading []string
		for _, tr := range tok.Leading {
			leading = append(leading, tr.Kind.String())
		}

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokensJSON writes the token stream as an indented JSON array.
func TokensJSON(w io.Writer, tokens []token.Token) error {
	var out []TokenJSON
	for _, tok := range tokens {
		var leading []string
		for _, tr := range tok.Leading {
			leading = append(leading, tr.Kind.String())
		}
		out = append(out, TokenJSON{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: leading,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
