package lexer

import (
	"espresso/internal/diag"
	"espresso/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation with maximal munch.
// It also maintains the bracket depth that suspends indentation tracking
// and decides whether '}' closes a brace or a string interpolation.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	mk := func(kind token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	switch b {
	case '+':
		if lx.cursor.Eat('=') {
			return mk(token.PlusAssign)
		}
		return mk(token.Plus)
	case '-':
		if lx.cursor.Eat('>') {
			return mk(token.Arrow)
		}
		if lx.cursor.Eat('=') {
			return mk(token.MinusAssign)
		}
		return mk(token.Minus)
	case '*':
		if lx.cursor.Eat('*') {
			return mk(token.StarStar)
		}
		if lx.cursor.Eat('=') {
			return mk(token.StarAssign)
		}
		return mk(token.Star)
	case '/':
		if lx.inJSXTag() && lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			return mk(token.SlashGt)
		}
		if lx.cursor.Eat('=') {
			return mk(token.SlashAssign)
		}
		return mk(token.Slash)
	case '%':
		if lx.cursor.Eat('=') {
			return mk(token.PercentAssign)
		}
		return mk(token.Percent)
	case '=':
		if lx.cursor.Eat('=') {
			if lx.cursor.Eat('=') {
				return mk(token.EqEqEq)
			}
			return lx.eqToken(mk(token.EqEq))
		}
		if lx.cursor.Eat('>') {
			return mk(token.FatArrow)
		}
		return mk(token.Assign)
	case '!':
		if lx.cursor.Eat('=') {
			if lx.cursor.Eat('=') {
				return mk(token.BangEqEq)
			}
			return lx.eqToken(mk(token.BangEq))
		}
		return mk(token.Bang)
	case '<':
		if lx.cursor.Eat('=') {
			return mk(token.LtEq)
		}
		if lx.cursor.Eat('<') {
			return mk(token.Shl)
		}
		return mk(token.Lt)
	case '>':
		if lx.cursor.Eat('=') {
			return mk(token.GtEq)
		}
		if lx.cursor.Eat('>') {
			if lx.cursor.Eat('>') {
				return mk(token.UShr)
			}
			return mk(token.Shr)
		}
		return mk(token.Gt)
	case '&':
		if lx.cursor.Eat('&') {
			if lx.cursor.Eat('=') {
				return mk(token.AndAndAssign)
			}
			return mk(token.AndAnd)
		}
		return mk(token.Amp)
	case '|':
		if lx.cursor.Eat('|') {
			if lx.cursor.Eat('=') {
				return mk(token.OrOrAssign)
			}
			return mk(token.OrOr)
		}
		if lx.cursor.Eat('>') {
			return mk(token.PipeGt)
		}
		return mk(token.Pipe)
	case '^':
		return mk(token.Caret)
	case '~':
		return mk(token.Tilde)
	case '?':
		if lx.cursor.Eat('.') {
			return mk(token.QDot)
		}
		if lx.cursor.Eat('?') {
			if lx.cursor.Eat('=') {
				return mk(token.QQAssign)
			}
			return mk(token.QQ)
		}
		// '?(' and '?[' are optional-call/index shorthands only when glued
		// to the '?'.
		if lx.cursor.Peek() == '(' {
			lx.cursor.Bump()
			lx.depth++
			return mk(token.QLParen)
		}
		if lx.cursor.Peek() == '[' {
			lx.cursor.Bump()
			lx.depth++
			return mk(token.QLBracket)
		}
		return mk(token.Question)
	case ':':
		return mk(token.Colon)
	case ';':
		return mk(token.Semicolon)
	case ',':
		return mk(token.Comma)
	case '.':
		if lx.cursor.Eat('.') {
			if lx.cursor.Eat('.') {
				return mk(token.DotDotDot)
			}
			return mk(token.DotDot)
		}
		return mk(token.Dot)
	case '(':
		lx.depth++
		return mk(token.LParen)
	case ')':
		lx.depth--
		return mk(token.RParen)
	case '[':
		lx.depth++
		return mk(token.LBracket)
	case ']':
		lx.depth--
		return mk(token.RBracket)
	case '{':
		lx.depth++
		return mk(token.LBrace)
	case '}':
		// Inside an interpolation whose brackets are balanced, '}' returns
		// to the enclosing string.
		if n := len(lx.strStack); n > 0 && lx.depth == lx.strStack[n-1].baseDepth {
			st := lx.strStack[n-1]
			lx.strStack = lx.strStack[:n-1]
			lx.resume = &st
			tok := mk(token.InterpClose)
			tok.Flags |= token.FlagInterpFragment
			return tok
		}
		// A '}' closing a JSX child expression pops back to text mode
		// as a side effect.
		lx.closesJSXExpr()
		lx.depth--
		return mk(token.RBrace)
	case '@':
		return mk(token.At)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character "+string(rune(b)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}

// eqToken applies the coffeeEq convention: '==' means strict equality.
func (lx *Lexer) eqToken(tok token.Token) token.Token {
	if lx.opts.Dialect.CoffeeEq {
		switch tok.Kind {
		case token.EqEq:
			return tok.WithText("===")
		case token.BangEq:
			return tok.WithText("!==")
		}
	}
	return tok
}
