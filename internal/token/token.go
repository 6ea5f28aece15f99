package token

import (
	"espresso/internal/source"
)

// Flags carry contextual bits resolved during scanning.
type Flags uint8

const (
	// FlagSpaced marks a token preceded by whitespace on the same line.
	// Juxtaposition application requires it ('a b' calls, 'a(b)' does not
	// juxtapose).
	FlagSpaced Flags = 1 << iota
	// FlagBlockOpen marks a token that opens an indentation block.
	FlagBlockOpen
	// FlagInterpFragment marks a token lexed inside a string interpolation.
	FlagInterpFragment
	// FlagNewlineBefore marks the first token of a logical line.
	FlagNewlineBefore
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
	Flags   Flags
}

// Synth constructs a synthetic token: no source span, output text only.
func Synth(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// Synthetic reports whether the token has no source position of its own.
func (t Token) Synthetic() bool {
	return t.Span.Empty() && t.Span.Start == 0
}

// Valid reports whether the token is present at all. Optional token
// slots in the parse tree hold the zero Token when absent.
func (t Token) Valid() bool { return t.Kind != Invalid }

// Spaced reports whether whitespace preceded the token on its line.
func (t Token) Spaced() bool { return t.Flags&FlagSpaced != 0 }

// StartsLine reports whether the token begins a logical line.
func (t Token) StartsLine() bool { return t.Flags&FlagNewlineBefore != 0 }

// WithText returns a copy of the token with a different output spelling.
// The span is kept so the source map still points at the original text.
func (t Token) WithText(text string) Token {
	t.Text = text
	return t
}

// IsLiteral reports whether the token is a literal value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Num, Str, TemplateOpen, Regex, KwTrue, KwFalse, KwNull, KwUndefined:
		return true
	default:
		return false
	}
}

// IsAssign reports whether the token is an assignment operator.
func (t Token) IsAssign() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		PercentAssign, AndAndAssign, OrOrAssign, QQAssign:
		return true
	default:
		return false
	}
}

// IsRelational reports whether the token can participate in a comparison
// chain (a < b < c).
func (t Token) IsRelational() bool {
	switch t.Kind {
	case Lt, LtEq, Gt, GtEq, EqEq, BangEq, EqEqEq, BangEqEq,
		KwInstanceof, KwIn, KwIs, KwIsnt:
		return true
	default:
		return false
	}
}

// CanEndExpr reports whether the token may terminate an expression, which
// gates juxtaposition application and regex-vs-division decisions.
func (t Token) CanEndExpr() bool {
	switch t.Kind {
	case Ident, PrivateName, Num, Str, TemplateClose, Regex,
		KwTrue, KwFalse, KwNull, KwUndefined, KwThis,
		RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}

// CanStartExpr reports whether the token may begin an expression, which
// gates juxtaposition application.
func (t Token) CanStartExpr() bool {
	switch t.Kind {
	case Ident, PrivateName, Num, Str, TemplateOpen, Regex,
		KwTrue, KwFalse, KwNull, KwUndefined, KwThis, KwNew, KwTypeof,
		KwNot, KwDo, KwAwait, KwYield, KwFunction, KwClass,
		LParen, LBracket, LBrace, At, Minus, Plus, Bang, Tilde, DotDotDot:
		return true
	default:
		return false
	}
}
