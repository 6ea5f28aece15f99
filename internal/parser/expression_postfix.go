package parser

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

// parsePostfix parses a primary expression followed by any chain of
// member accesses, index accesses, calls, optional-call shorthands,
// tagged templates, and juxtaposition applications.
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	left, ok := p.parsePrimary()
	if !ok {
		return left, false
	}
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Dot:
			if isNumLit(left) && !tok.Spaced() {
				p.errAt(diag.SynBadNumberProperty, tok.Span,
					"property access on a numeric literal needs a space or parentheses")
			}
			link := p.advance()
			name, ok := p.memberName()
			left = &ast.Member{Obj: left, Link: link, Name: name}
			if !ok {
				return left, false
			}

		case token.QDot:
			link := p.advance()
			switch p.lx.Peek().Kind {
			case token.LParen:
				var done bool
				left, done = p.parseCallArgs(left, link, p.advance())
				if !done {
					return left, false
				}
			case token.LBracket:
				var done bool
				left, done = p.parseIndex(left, link, p.advance())
				if !done {
					return left, false
				}
			default:
				name, ok := p.memberName()
				left = &ast.Member{Obj: left, Link: link, Name: name}
				if !ok {
					return left, false
				}
			}

		case token.QLParen:
			// x?(y) normalizes to x?.(y); the '?(' span stays on the
			// '?.' so the map points at the source operator.
			opt := tok.WithText("?.")
			p.advance()
			var done bool
			left, done = p.parseCallArgs(left, opt, token.Synth(token.LParen, "("))
			if !done {
				return left, false
			}

		case token.QLBracket:
			opt := tok.WithText("?.")
			p.advance()
			var done bool
			left, done = p.parseIndex(left, opt, token.Synth(token.LBracket, "["))
			if !done {
				return left, false
			}

		case token.LParen:
			l := p.advance()
			var done bool
			left, done = p.parseCallArgs(left, token.Token{}, l)
			if !done {
				return left, false
			}

		case token.LBracket:
			if tok.Spaced() {
				// A spaced bracket is an array argument, not an index.
				if p.canJuxtapose(left) {
					var done bool
					left, done = p.parseJuxtaposition(left)
					if !done {
						return left, false
					}
					continue
				}
				return left, true
			}
			l := p.advance()
			var done bool
			left, done = p.parseIndex(left, token.Token{}, l)
			if !done {
				return left, false
			}

		case token.TemplateOpen:
			if tok.Spaced() || !taggable(left) {
				if p.canJuxtapose(left) {
					var done bool
					left, done = p.parseJuxtaposition(left)
					if !done {
						return left, false
					}
					continue
				}
				return left, true
			}
			tmpl, ok := p.parsePrimary()
			left = &ast.TaggedTemplate{Tag: left, Tmpl: tmpl}
			if !ok {
				return left, false
			}

		case token.Question:
			// A tight '?' followed by a spaced argument is an optional
			// application: x? y compiles to x?.(y).
			if !tok.Spaced() && p.lx.PeekN(1).Spaced() && p.lx.PeekN(1).CanStartExpr() {
				opt := tok.WithText("?.")
				p.advance()
				var done bool
				left, done = p.parseImplicitCall(left, opt)
				if !done {
					return left, false
				}
				continue
			}
			return left, true

		case token.Newline:
			// A chain may continue on the next line when it starts
			// with a dot.
			if k := p.lx.PeekN(1).Kind; k == token.Dot || k == token.QDot {
				p.eatLayout()
				continue
			}
			return left, true

		case token.Indent:
			if k := p.lx.PeekN(1).Kind; k == token.Dot || k == token.QDot {
				p.eatLayout()
				p.owedDedents++
				continue
			}
			return left, true

		default:
			if p.canJuxtapose(left) {
				var done bool
				left, done = p.parseJuxtaposition(left)
				if !done {
					return left, false
				}
				continue
			}
			return left, true
		}
	}
}

// memberName accepts an identifier, private name, or keyword used as a
// property name.
func (p *Parser) memberName() (token.Token, bool) {
	tok := p.lx.Peek()
	if tok.Kind == token.Ident || tok.Kind == token.PrivateName || isKeywordName(tok.Kind) {
		return p.advance(), true
	}
	p.errHere(diag.SynExpectIdentifier, "expected a property name")
	return token.Token{}, false
}

// isKeywordName reports whether a keyword token may serve as a
// property name after a dot.
func isKeywordName(k token.Kind) bool {
	return k >= token.KwIf && k <= token.KwUndefined
}

func isNumLit(e ast.Expr) bool {
	lit, ok := e.(*ast.Lit)
	return ok && lit.Tok.Kind == token.Num
}

func taggable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.Member:
		return true
	default:
		return false
	}
}

// parseCallArgs parses '(args)' after the opening paren was consumed.
func (p *Parser) parseCallArgs(callee ast.Expr, opt, l token.Token) (ast.Expr, bool) {
	var args []ast.Element
	for !p.at(token.RParen) && !p.at(token.EOF) {
		el, ok := p.parseElement(token.RParen)
		args = append(args, el)
		if !ok {
			return &ast.Call{Callee: callee, Opt: opt, L: l, Args: args}, false
		}
		if !el.Comma.Valid() {
			break
		}
	}
	r, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close call arguments")
	return &ast.Call{Callee: callee, Opt: opt, L: l, Args: args, R: r}, ok
}

// parseIndex parses '[expr]' or a slice range after the opening
// bracket was consumed.
func (p *Parser) parseIndex(obj ast.Expr, opt, l token.Token) (ast.Expr, bool) {
	idx, ok := p.parseRangeOrExpr()
	if !ok {
		return &ast.Index{Obj: obj, Opt: opt, L: l, Idx: idx}, false
	}
	r, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close index")
	return &ast.Index{Obj: obj, Opt: opt, L: l, Idx: idx, R: r}, ok
}

// parseRangeOrExpr parses either a plain expression or an endpoint
// range 'a..b' / 'a...b' with optional open ends.
func (p *Parser) parseRangeOrExpr() (ast.Expr, bool) {
	var from ast.Expr
	if !p.at(token.DotDot) && !p.at(token.DotDotDot) {
		var ok bool
		from, ok = p.parseAssign()
		if !ok {
			return from, false
		}
		if !p.at(token.DotDot) && !p.at(token.DotDotDot) {
			return from, true
		}
	}
	dots := p.advance()
	var to ast.Expr
	if !p.at(token.RBracket) && !p.at(token.Comma) {
		var ok bool
		to, ok = p.parseAssign()
		if !ok {
			return &ast.Range{From: from, Dots: dots, To: to}, false
		}
	}
	return &ast.Range{From: from, Dots: dots, To: to}, true
}

// parseElement parses one call argument or array element up to a comma
// or the closing token.
func (p *Parser) parseElement(closer token.Kind) (ast.Element, bool) {
	var el ast.Element
	if p.at(token.DotDotDot) {
		el.Spread = p.advance()
	}
	x, ok := p.parseRangeOrExpr()
	el.X = x
	if !ok {
		return el, false
	}
	if p.at(token.Comma) {
		el.Comma = p.advance()
	} else if !p.at(closer) && !p.at(token.EOF) && p.lx.Peek().StartsLine() {
		// Newline-separated items collapse to a comma-separated list.
		el.Comma = token.Synth(token.Comma, ",")
	}
	return el, true
}

// canJuxtapose reports whether the upcoming token starts a
// juxtaposition argument for the given callee: 'f x' applies f to x.
func (p *Parser) canJuxtapose(callee ast.Expr) bool {
	if !callable(callee) {
		return false
	}
	tok := p.lx.Peek()
	if !tok.Spaced() {
		return false
	}
	switch tok.Kind {
	case token.Ident, token.PrivateName, token.Num, token.Str,
		token.TemplateOpen, token.Regex, token.KwTrue, token.KwFalse,
		token.KwNull, token.KwUndefined, token.KwThis, token.At,
		token.KwNew, token.KwTypeof, token.KwNot, token.LBracket,
		token.LBrace, token.DotDotDot:
		return true
	case token.Minus, token.Plus, token.Bang:
		// 'f -1' applies f to -1; 'f - 1' subtracts.
		next := p.lx.PeekN(1)
		return !next.Spaced() && next.CanStartExpr()
	default:
		return false
	}
}

func callable(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Ident, *ast.Member, *ast.Index, *ast.Call, *ast.Group:
		return true
	case *ast.Lit:
		return e.Tok.Kind == token.KwThis
	default:
		return false
	}
}

// parseJuxtaposition wraps the callee in a call with synthetic parens:
// 'f x, y' becomes f(x, y).
func (p *Parser) parseJuxtaposition(callee ast.Expr) (ast.Expr, bool) {
	return p.parseImplicitCall(callee, token.Token{})
}

func (p *Parser) parseImplicitCall(callee ast.Expr, opt token.Token) (ast.Expr, bool) {
	call := &ast.Call{
		Callee:   callee,
		Opt:      opt,
		L:        token.Synth(token.LParen, "("),
		Implicit: true,
	}
	for {
		var el ast.Element
		if p.at(token.DotDotDot) {
			el.Spread = p.advance()
		}
		x, ok := p.parseAssign()
		el.X = x
		if !ok {
			call.Args = append(call.Args, el)
			return call, false
		}
		if p.at(token.Comma) {
			el.Comma = p.advance()
		}
		call.Args = append(call.Args, el)
		if !el.Comma.Valid() {
			break
		}
	}
	call.R = token.Synth(token.RParen, ")")
	return call, true
}
