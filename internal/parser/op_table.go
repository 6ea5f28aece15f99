package parser

import "espresso/internal/token"

// Binary operator precedence, higher binds tighter. All comparison
// operators share one level so that relational chains (a < b <= c)
// fold left to right.
const (
	precPipe = iota + 1
	precNullish
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precCompare
	precShift
	precAdd
	precMul
	precPow
)

// binaryPrec returns the precedence and right-associativity of an
// infix operator, or 0 for tokens that are not infix operators.
func binaryPrec(k token.Kind) (int, bool) {
	switch k {
	case token.PipeGt:
		return precPipe, false
	case token.QQ:
		return precNullish, false
	case token.OrOr, token.KwOr:
		return precOr, false
	case token.AndAnd, token.KwAnd:
		return precAnd, false
	case token.Pipe:
		return precBitOr, false
	case token.Caret:
		return precBitXor, false
	case token.Amp:
		return precBitAnd, false
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.KwIs, token.KwIsnt, token.KwIn, token.KwInstanceof:
		return precCompare, false
	case token.Shl, token.Shr, token.UShr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdd, false
	case token.Star, token.Slash, token.Percent:
		return precMul, false
	case token.StarStar:
		return precPow, true
	default:
		return 0, false
	}
}

// prefixOp reports whether the token starts a prefix unary expression.
func prefixOp(k token.Kind) bool {
	switch k {
	case token.Bang, token.KwNot, token.Tilde, token.Plus, token.Minus,
		token.KwTypeof, token.KwDelete, token.KwAwait:
		return true
	default:
		return false
	}
}
