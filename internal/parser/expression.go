package parser

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

// synthSpaced builds a synthetic token with a single space of leading
// trivia, for operators spliced between existing source tokens.
func synthSpaced(k token.Kind, text string) token.Token {
	return token.Token{
		Kind:    k,
		Text:    text,
		Leading: []token.Trivia{{Kind: token.TriviaSpace, Text: " "}},
	}
}

func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseAssign()
}

func (p *Parser) parseAssign() (ast.Expr, bool) {
	if p.at(token.KwYield) {
		kw := p.advance()
		if p.exprAhead() {
			x, ok := p.parseAssign()
			return &ast.Unary{Op: kw, X: x}, ok
		}
		return &ast.Unary{Op: kw}, true
	}

	left, ok := p.parseTernary()
	if !ok {
		return left, false
	}
	if p.lx.Peek().IsAssign() {
		op := p.advance()
		if !validAssignTarget(left) {
			p.errAt(diag.SynBadDestructuring, left.Span(), "invalid assignment target")
		}
		right, ok := p.parseAssign()
		return &ast.Assign{Target: left, Op: op, Value: right}, ok
	}
	return left, true
}

// validAssignTarget accepts the expressions an assignment may write to,
// including array and object destructuring patterns.
func validAssignTarget(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Ident, *ast.Member, *ast.Index:
		return true
	case *ast.ArrayLit, *ast.ObjectLit:
		return true
	case *ast.Group:
		return validAssignTarget(e.X)
	default:
		return false
	}
}

func (p *Parser) parseTernary() (ast.Expr, bool) {
	cond, ok := p.parseBinary(precPipe)
	if !ok || !p.at(token.Question) {
		return cond, ok
	}
	q := p.advance()
	then, ok := p.parseAssign()
	if !ok {
		return &ast.Ternary{Cond: cond, Q: q, Then: then}, false
	}
	colon, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression")
	if !ok {
		return &ast.Ternary{Cond: cond, Q: q, Then: then}, false
	}
	els, ok := p.parseAssign()
	return &ast.Ternary{Cond: cond, Q: q, Then: then, Colon: colon, Else: els}, ok
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return left, false
	}
	for {
		op := p.lx.Peek()
		prec, rightAssoc := binaryPrec(op.Kind)
		if prec == 0 || prec < minPrec {
			return left, true
		}
		p.advance()
		if op.Kind == token.PipeGt && p.at(token.KwReturn) {
			// 'x |> return' ends a pipe chain; the pipe pass rewrites
			// it to return the folded chain.
			kw := p.advance()
			ret := &ast.Unary{Op: kw}
			if p.exprAhead() {
				x, ok := p.parseBinary(prec + 1)
				ret.X = x
				if !ok {
					return &ast.Binary{X: left, Op: op, Y: ret}, false
				}
			}
			left = &ast.Binary{X: left, Op: op, Y: ret}
			continue
		}
		if prec == precCompare {
			left, ok = p.parseCompareChain(left, op)
			if !ok {
				return left, false
			}
			continue
		}
		next := prec + 1
		if rightAssoc {
			next = prec
		}
		right, ok := p.parseBinary(next)
		left = &ast.Binary{X: left, Op: op, Y: right}
		if !ok {
			return left, false
		}
	}
}

// parseCompareChain folds 'a < b <= c' into '(a < b) && (b <= c)'. The
// middle operand is reused verbatim, so a chain should not put
// side-effecting expressions in the middle.
func (p *Parser) parseCompareChain(first ast.Expr, op token.Token) (ast.Expr, bool) {
	right, ok := p.parseBinary(precCompare + 1)
	out := ast.Expr(&ast.Binary{X: first, Op: op, Y: right})
	if !ok {
		return out, false
	}
	prev := right
	for p.lx.Peek().IsRelational() {
		op2 := p.advance()
		next, ok := p.parseBinary(precCompare + 1)
		link := &ast.Binary{X: prev, Op: op2, Y: next}
		out = &ast.Binary{X: out, Op: synthSpaced(token.AndAnd, "&&"), Y: link}
		if !ok {
			return out, false
		}
		prev = next
	}
	return out, true
}

func (p *Parser) parseUnary() (ast.Expr, bool) {
	tok := p.lx.Peek()
	if prefixOp(tok.Kind) {
		op := p.advance()
		x, ok := p.parseUnary()
		return &ast.Unary{Op: op, X: x}, ok
	}
	if tok.Kind == token.KwNew {
		op := p.advance()
		x, ok := p.parsePostfix()
		return &ast.Unary{Op: op, X: x}, ok
	}
	return p.parsePostfix()
}

// exprAhead reports whether the upcoming token can begin an expression
// on the same logical line.
func (p *Parser) exprAhead() bool {
	t := p.lx.Peek()
	switch t.Kind {
	case token.Newline, token.Indent, token.Dedent, token.EOF:
		return false
	}
	return t.CanStartExpr()
}
