package parser

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

// arrowParamsAhead looks past a balanced '(...)' group to decide
// whether it is a parameter list ('->', '=>', or a return type
// annotation follows) rather than a parenthesized expression.
func (p *Parser) arrowParamsAhead() bool {
	depth := 0
	for i := 0; ; i++ {
		tok := p.lx.PeekN(i)
		switch tok.Kind {
		case token.LParen, token.LBracket, token.LBrace, token.QLParen,
			token.QLBracket, token.TemplateOpen, token.TemplateMid:
			depth++
		case token.RParen, token.RBracket, token.RBrace,
			token.InterpClose:
			depth--
			if depth == 0 {
				switch p.lx.PeekN(i + 1).Kind {
				case token.Arrow, token.FatArrow, token.Colon:
					return true
				default:
					return false
				}
			}
		case token.EOF:
			return false
		}
	}
}

// parseArrowFunc parses the arrow function forms:
//
//	-> body            => body
//	x -> body          (a, b = 1, ...rest) -> body
//	(a: number): number -> body
func (p *Parser) parseArrowFunc(async token.Token) (ast.Expr, bool) {
	fn := &ast.Func{Async: async}

	switch p.lx.Peek().Kind {
	case token.Ident:
		name := p.advance()
		fn.Params = []ast.Param{{Pattern: &ast.Ident{Tok: name}}}
	case token.LParen:
		fn.L = p.advance()
		params, ok := p.parseParams()
		fn.Params = params
		if !ok {
			return fn, false
		}
		r, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters")
		fn.R = r
		if !ok {
			return fn, false
		}
		if p.at(token.Colon) {
			fn.ReturnType = p.parseTypeAnn()
		}
	}

	arrow := p.lx.Peek()
	if arrow.Kind != token.Arrow && arrow.Kind != token.FatArrow {
		p.errHere(diag.SynUnexpectedToken, "expected '->' or '=>'")
		return fn, false
	}
	fn.Arrow = p.advance()
	body, ok := p.parseFuncBody()
	fn.Body = body
	return fn, ok
}

// parseFunctionKw parses a 'function' expression or declaration.
func (p *Parser) parseFunctionKw(async token.Token) (ast.Expr, bool) {
	fn := &ast.Func{Async: async, Kw: p.advance()}
	if p.at(token.Ident) {
		fn.Name = p.advance()
	}
	l, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name")
	fn.L = l
	if !ok {
		return fn, false
	}
	params, ok := p.parseParams()
	fn.Params = params
	if !ok {
		return fn, false
	}
	r, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters")
	fn.R = r
	if !ok {
		return fn, false
	}
	if p.at(token.Colon) {
		fn.ReturnType = p.parseTypeAnn()
	}
	body, ok := p.parseFuncBody()
	fn.Body = body
	return fn, ok
}

// parseParams parses a comma-separated parameter list up to ')'.
func (p *Parser) parseParams() ([]ast.Param, bool) {
	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		var param ast.Param
		if p.at(token.DotDotDot) {
			param.Spread = p.advance()
		}
		pattern, ok := p.parseParamPattern()
		param.Pattern = pattern
		if !ok {
			params = append(params, param)
			return params, false
		}
		if p.at(token.Colon) {
			param.Type = p.parseTypeAnn()
		}
		if p.at(token.Assign) {
			param.Assign = p.advance()
			def, ok := p.parseAssign()
			param.Default = def
			if !ok {
				params = append(params, param)
				return params, false
			}
		}
		if p.at(token.Comma) {
			param.Comma = p.advance()
		}
		params = append(params, param)
		if !param.Comma.Valid() {
			break
		}
	}
	return params, true
}

func (p *Parser) parseParamPattern() (ast.Expr, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		return &ast.Ident{Tok: p.advance()}, true
	case token.LBracket:
		return p.parseArrayLit()
	case token.LBrace:
		return p.parseObjectLit()
	case token.At:
		return p.parseAtReceiver()
	default:
		p.errHere(diag.SynExpectIdentifier, "expected a parameter name or pattern")
		return &ast.BadExpr{}, false
	}
}

// parseTypeAnn consumes ':' and the raw type tokens that follow, up to
// a boundary the surrounding construct owns (',', ')', '=', '->',
// '=>', or the end of the line). The tokens pass through to the output
// unchanged.
func (p *Parser) parseTypeAnn() *ast.TypeAnn {
	ann := &ast.TypeAnn{Colon: p.advance()}
	depth := 0
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Lt, token.LBracket, token.LBrace, token.LParen:
			depth++
		case token.Gt, token.RBracket, token.RBrace:
			depth--
		case token.RParen:
			if depth == 0 {
				return ann
			}
			depth--
		case token.Comma, token.Assign, token.Arrow, token.FatArrow,
			token.Newline, token.Indent, token.Dedent, token.EOF,
			token.Semicolon:
			if depth == 0 {
				return ann
			}
		}
		ann.Toks = append(ann.Toks, p.advance())
	}
}

// parseFuncBody parses an indented block body or a same-line
// expression body.
func (p *Parser) parseFuncBody() (ast.Node, bool) {
	if p.at(token.Indent) {
		return p.parseIndentBlock()
	}
	if p.atAny(token.Newline, token.Dedent, token.EOF) {
		// An empty body is allowed: '->' alone is a no-op function.
		return &ast.Block{}, true
	}
	x, ok := p.parseAssign()
	return x, ok
}
