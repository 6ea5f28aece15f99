package lexer

import (
	"espresso/internal/diag"
	"espresso/internal/token"
)

// scanNumber scans integer, float, exponent, hex/octal/binary and bigint
// literals. The numeric-vs-range boundary rule: a trailing '.' after digits
// is never absorbed when followed by another '.' (range operator) or by a
// property name; the literal ends at the last digit.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			lx.cursor.Eat('n')
			return lx.numToken(start)
		}
	}

	lx.eatDigits()

	// Fraction. '..' is a range operator; '.name' is property access on a
	// literal that must terminate first. Only '.digit' extends the number.
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.eatDigits()
	}

	// Exponent.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		if isDec(next) || ((next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2))) {
			lx.cursor.Bump()
			if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
				lx.cursor.Bump()
			}
			lx.eatDigits()
		}
	}

	lx.cursor.Eat('n') // bigint suffix

	if isIdentStartByte(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "identifier characters after numeric literal")
	}
	return lx.numToken(start)
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) numToken(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Num, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
