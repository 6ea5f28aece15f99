package parser

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		// 'x -> body' is a single-parameter function literal.
		if k := p.lx.PeekN(1).Kind; k == token.Arrow || k == token.FatArrow {
			return p.parseArrowFunc(token.Token{})
		}
		return &ast.Ident{Tok: p.advance()}, true

	case token.Num, token.Str, token.Regex, token.KwTrue, token.KwFalse,
		token.KwNull, token.KwUndefined, token.KwThis:
		return &ast.Lit{Tok: p.advance()}, true

	case token.PrivateName:
		return &ast.Ident{Tok: p.advance()}, true

	case token.At:
		return p.parseAtReceiver()

	case token.TemplateOpen:
		return p.parseTemplate()

	case token.LParen:
		if p.arrowParamsAhead() {
			return p.parseArrowFunc(token.Token{})
		}
		l := p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return &ast.Group{L: l, X: x}, false
		}
		r, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		return &ast.Group{L: l, X: x, R: r}, ok

	case token.Arrow, token.FatArrow:
		// Zero-parameter function literal.
		return p.parseArrowFunc(token.Token{})

	case token.LBracket:
		return p.parseArrayLit()

	case token.LBrace:
		return p.parseObjectLit()

	case token.KwFunction:
		return p.parseFunctionKw(token.Token{})

	case token.KwAsync:
		async := p.advance()
		if p.at(token.KwFunction) {
			return p.parseFunctionKw(async)
		}
		return p.parseArrowFunc(async)

	case token.Lt:
		if p.dialectJSX() {
			return p.parseJSX()
		}

	case token.KwIf, token.KwUnless, token.KwSwitch, token.KwTry:
		p.errHere(diag.SynExpectExpression,
			"'"+tok.Kind.String()+"' is a statement here; wrap it or assign from a helper")
		return &ast.BadExpr{}, false
	}

	p.errHere(diag.SynExpectExpression, "expected an expression, found "+tok.Kind.String())
	return &ast.BadExpr{}, false
}

// parseAtReceiver parses '@' and '@name': shorthand for 'this' and
// 'this.name'. The rewritten spelling keeps the '@' span.
func (p *Parser) parseAtReceiver() (ast.Expr, bool) {
	at := p.advance()
	this := &ast.Lit{Tok: at.WithText("this")}
	next := p.lx.Peek()
	if next.Kind == token.Ident && !next.Spaced() && !next.StartsLine() {
		name := p.advance()
		return &ast.Member{
			Obj:  this,
			Link: token.Synth(token.Dot, "."),
			Name: name,
		}, true
	}
	return this, true
}

func (p *Parser) parseTemplate() (ast.Expr, bool) {
	open := p.advance()
	tmpl := &ast.Template{Open: open}
	for {
		x, ok := p.parseExpr()
		if !ok {
			tmpl.Segs = append(tmpl.Segs, ast.TemplateSeg{X: x})
			return tmpl, false
		}
		closeTok, ok := p.expect(token.InterpClose, diag.SynUnclosedBrace,
			"expected '}' to close interpolation")
		if !ok {
			tmpl.Segs = append(tmpl.Segs, ast.TemplateSeg{X: x})
			return tmpl, false
		}
		tail := p.lx.Peek()
		switch tail.Kind {
		case token.TemplateMid:
			tmpl.Segs = append(tmpl.Segs, ast.TemplateSeg{X: x, Close: closeTok, Tail: p.advance()})
		case token.TemplateClose:
			tmpl.Segs = append(tmpl.Segs, ast.TemplateSeg{X: x, Close: closeTok, Tail: p.advance()})
			return tmpl, true
		default:
			p.errHere(diag.SynUnclosedBrace, "template literal did not continue after interpolation")
			tmpl.Segs = append(tmpl.Segs, ast.TemplateSeg{X: x, Close: closeTok})
			return tmpl, false
		}
	}
}

func (p *Parser) parseArrayLit() (ast.Expr, bool) {
	l := p.advance()
	arr := &ast.ArrayLit{L: l}
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		el, ok := p.parseElement(token.RBracket)
		arr.Elems = append(arr.Elems, el)
		if !ok {
			return arr, false
		}
		if !el.Comma.Valid() {
			break
		}
	}
	r, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'")
	arr.R = r
	return arr, ok
}

func (p *Parser) parseObjectLit() (ast.Expr, bool) {
	l := p.advance()
	obj := &ast.ObjectLit{L: l}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		prop, ok := p.parseProperty()
		obj.Props = append(obj.Props, prop)
		if !ok {
			return obj, false
		}
		if !prop.Comma.Valid() {
			break
		}
	}
	r, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'")
	obj.R = r
	return obj, ok
}

func (p *Parser) parseProperty() (ast.Property, bool) {
	var prop ast.Property
	if p.at(token.DotDotDot) {
		prop.Spread = p.advance()
		x, ok := p.parseAssign()
		prop.Value = x
		if !ok {
			return prop, false
		}
		p.propComma(&prop)
		return prop, true
	}

	switch p.lx.Peek().Kind {
	case token.Ident, token.Str, token.Num:
		prop.Key = &ast.Lit{Tok: p.advance()}
	default:
		if isKeywordName(p.lx.Peek().Kind) {
			prop.Key = &ast.Lit{Tok: p.advance()}
			break
		}
		p.errHere(diag.SynExpectIdentifier, "expected a property name")
		return prop, false
	}
	if p.at(token.Colon) {
		prop.Colon = p.advance()
		x, ok := p.parseAssign()
		prop.Value = x
		if !ok {
			return prop, false
		}
	}
	p.propComma(&prop)
	return prop, true
}

// propComma records the separator after a property, synthesizing a
// comma when the next property starts a new line.
func (p *Parser) propComma(prop *ast.Property) {
	if p.at(token.Comma) {
		prop.Comma = p.advance()
		return
	}
	if !p.at(token.RBrace) && !p.at(token.EOF) && p.lx.Peek().StartsLine() {
		prop.Comma = token.Synth(token.Comma, ",")
	}
}

func (p *Parser) dialectJSX() bool { return p.opts.Dialect.JSX }
