package token

import "espresso/internal/source"

// TriviaKind classifies non-semantic source text attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaHashComment is a '#'-style line comment (coffeeComment dialect);
	// the emitter re-spells it as '//'.
	TriviaHashComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "comment"
	case TriviaBlockComment:
		return "block-comment"
	case TriviaHashComment:
		return "hash-comment"
	}
	return "trivia"
}

// Trivia is whitespace or a comment preceding a token. Text is the exact
// source text; the emitter decides the output spelling.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
