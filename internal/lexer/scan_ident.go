package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"espresso/internal/diag"
	"espresso/internal/token"
)

// scanIdentOrKeyword scans an identifier or keyword. Non-ASCII identifiers
// are NFC-normalized in the output spelling so visually identical names
// compare equal downstream; the span always covers the original bytes.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	ascii := true

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
			if r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '‍') {
				for i := 0; i < size; i++ {
					lx.cursor.Bump()
				}
				ascii = false
				continue
			}
		}
		break
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if !ascii {
		text = norm.NFC.String(text)
	}

	if kind, ok := token.LookupKeyword(text); ok {
		out := text
		if alias, isWord := token.WordOperatorText(kind); isWord {
			out = alias
		}
		return token.Token{Kind: kind, Span: sp, Text: out}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanPrivateName scans '#name'. Bare '#' outside coffeeComment mode is an
// unknown character.
func (lx *Lexer) scanPrivateName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	if !isIdentStartByte(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character '#'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: "#"}
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.PrivateName, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
