package parser

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

// parseJSX parses an element or fragment starting at '<'. Children are
// either inline (raw text mode until the closing tag on the same line)
// or an indented block of one child per line, in which case the element
// auto-closes at the dedent.
func (p *Parser) parseJSX() (ast.Expr, bool) {
	lt := p.advance()
	p.lx.BeginJSXTag()
	return p.parseJSXAfterLt(lt)
}

func (p *Parser) parseJSXAfterLt(lt token.Token) (ast.Expr, bool) {
	if p.at(token.Gt) {
		return p.parseJSXFragment(lt)
	}

	el := &ast.JSXElement{Lt: lt}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a tag name")
	el.Name = name
	if !ok {
		p.lx.TagEnd()
		return el, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.PrivateName:
			// '#name' is shorthand for id="name".
			el.Attrs = append(el.Attrs, ast.JSXAttr{Hash: p.advance()})
			continue
		case token.Dot:
			// '.name' is shorthand for class="name".
			dot := p.advance()
			cls, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a class name after '.'")
			el.Attrs = append(el.Attrs, ast.JSXAttr{Dot: dot, Name: cls})
			if !ok {
				p.lx.TagEnd()
				return el, false
			}
			continue
		case token.Ident:
			attr, ok := p.parseJSXAttr()
			el.Attrs = append(el.Attrs, attr)
			if !ok {
				p.lx.TagEnd()
				return el, false
			}
			continue
		}
		break
	}

	switch p.lx.Peek().Kind {
	case token.SlashGt:
		el.SelfClose = p.advance()
		p.lx.TagEnd()
		return el, true
	case token.Gt:
		el.Gt = p.advance()
	default:
		p.errHere(diag.SynUnclosedJSX, "expected '>', '/>' or an attribute in tag")
		p.lx.TagEnd()
		return el, false
	}

	if p.lx.AtLineEnd() {
		p.lx.TagEnd()
		children, ok := p.parseJSXIndentedChildren()
		el.Children = children
		el.ImpliedClose = true
		el.CloseLtSlash = token.Synth(token.LtSlash, "</")
		el.CloseName = token.Synth(token.Ident, el.Name.Text)
		el.CloseGt = token.Synth(token.Gt, ">")
		return el, ok
	}

	p.lx.TagToChildren()
	return p.parseJSXInlineChildren(el)
}

func (p *Parser) parseJSXAttr() (ast.JSXAttr, bool) {
	attr := ast.JSXAttr{Name: p.advance()}
	if !p.at(token.Assign) {
		// Bare attribute: expands to name={true}.
		return attr, true
	}
	attr.Eq = p.advance()
	switch p.lx.Peek().Kind {
	case token.Str:
		attr.Value = &ast.Lit{Tok: p.advance()}
		return attr, true
	case token.LBrace:
		l := p.advance()
		x, ok := p.parseAssign()
		if !ok {
			attr.Value = &ast.JSXExprChild{L: l, X: x}
			return attr, false
		}
		r, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after attribute expression")
		attr.Value = &ast.JSXExprChild{L: l, X: x, R: r}
		return attr, ok
	default:
		p.errHere(diag.SynUnexpectedToken, "expected a string or '{expr}' attribute value")
		return attr, false
	}
}

// parseJSXInlineChildren consumes raw children until the closing tag,
// which must appear before the end of the line.
func (p *Parser) parseJSXInlineChildren(el *ast.JSXElement) (ast.Expr, bool) {
	for {
		tok := p.advance()
		switch tok.Kind {
		case token.JSXText:
			if tok.Span.Len() == 0 {
				p.errAt(diag.SynUnclosedJSX, tok.Span,
					"element <"+el.Name.Text+"> is not closed on its line")
				p.lx.TagEnd()
				return el, false
			}
			el.Children = append(el.Children, &ast.JSXText{Tok: tok})

		case token.Lt:
			p.lx.BeginJSXTag()
			child, ok := p.parseJSXAfterLt(tok)
			el.Children = append(el.Children, child)
			if !ok {
				p.lx.TagEnd()
				return el, false
			}

		case token.InterpOpen:
			x, ok := p.parseAssign()
			if !ok {
				el.Children = append(el.Children, &ast.JSXExprChild{L: tok, X: x})
				p.lx.TagEnd()
				return el, false
			}
			r, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after embedded expression")
			el.Children = append(el.Children, &ast.JSXExprChild{L: tok, X: x, R: r})
			if !ok {
				p.lx.TagEnd()
				return el, false
			}

		case token.LtSlash:
			p.lx.ChildrenToCloseTag()
			el.CloseLtSlash = tok
			closeName, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected the closing tag name")
			el.CloseName = closeName
			if !ok {
				p.lx.TagEnd()
				return el, false
			}
			if closeName.Text != el.Name.Text {
				p.errAt(diag.SynMismatchedJSXClose, closeName.Span,
					"closing </"+closeName.Text+"> does not match <"+el.Name.Text+">")
			}
			gt, ok := p.expect(token.Gt, diag.SynUnclosedJSX, "expected '>' in closing tag")
			el.CloseGt = gt
			p.lx.TagEnd()
			return el, ok

		case token.EOF:
			p.errHere(diag.SynUnclosedJSX, "element <"+el.Name.Text+"> is not closed")
			p.lx.TagEnd()
			return el, false
		}
	}
}

// parseJSXIndentedChildren parses one child per logical line: a nested
// element, an embedded '{expr}', or a string literal.
func (p *Parser) parseJSXIndentedChildren() ([]ast.Node, bool) {
	if !p.at(token.Indent) {
		p.errHere(diag.SynExpectBlock, "expected indented children after the opening tag")
		return nil, false
	}
	p.eatLayout()
	p.eatSeparators()
	var children []ast.Node
	for !p.atAny(token.Dedent, token.EOF) {
		switch p.lx.Peek().Kind {
		case token.Lt:
			child, ok := p.parseJSX()
			children = append(children, child)
			if !ok {
				return children, false
			}
		case token.Str:
			children = append(children, &ast.Lit{Tok: p.advance()})
		case token.LBrace:
			l := p.advance()
			x, ok := p.parseAssign()
			if !ok {
				children = append(children, &ast.JSXExprChild{L: l, X: x})
				return children, false
			}
			r, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after embedded expression")
			children = append(children, &ast.JSXExprChild{L: l, X: x, R: r})
			if !ok {
				return children, false
			}
		default:
			p.errHere(diag.SynUnexpectedToken,
				"a JSX child line must be an element, '{expr}', or a string")
			return children, false
		}
		p.eatSeparators()
	}
	// The Dedent closing the children block doubles as the statement
	// separator for whatever follows the element.
	p.owedDedents++
	return children, true
}

func (p *Parser) parseJSXFragment(lt token.Token) (ast.Expr, bool) {
	frag := &ast.JSXFragment{Lt: lt, Gt: p.advance()}
	if p.lx.AtLineEnd() {
		p.lx.TagEnd()
		children, ok := p.parseJSXIndentedChildren()
		frag.Children = children
		frag.CloseLtSlash = token.Synth(token.LtSlash, "</")
		frag.CloseGt = token.Synth(token.Gt, ">")
		return frag, ok
	}
	p.lx.TagToChildren()
	for {
		tok := p.advance()
		switch tok.Kind {
		case token.JSXText:
			if tok.Span.Len() == 0 {
				p.errAt(diag.SynUnclosedJSX, tok.Span, "fragment is not closed on its line")
				p.lx.TagEnd()
				return frag, false
			}
			frag.Children = append(frag.Children, &ast.JSXText{Tok: tok})
		case token.Lt:
			p.lx.BeginJSXTag()
			child, ok := p.parseJSXAfterLt(tok)
			frag.Children = append(frag.Children, child)
			if !ok {
				p.lx.TagEnd()
				return frag, false
			}
		case token.InterpOpen:
			x, ok := p.parseAssign()
			if !ok {
				frag.Children = append(frag.Children, &ast.JSXExprChild{L: tok, X: x})
				p.lx.TagEnd()
				return frag, false
			}
			r, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after embedded expression")
			frag.Children = append(frag.Children, &ast.JSXExprChild{L: tok, X: x, R: r})
			if !ok {
				p.lx.TagEnd()
				return frag, false
			}
		case token.LtSlash:
			p.lx.ChildrenToCloseTag()
			frag.CloseLtSlash = tok
			gt, ok := p.expect(token.Gt, diag.SynUnclosedJSX, "expected '>' to close fragment")
			frag.CloseGt = gt
			p.lx.TagEnd()
			return frag, ok
		case token.EOF:
			p.errHere(diag.SynUnclosedJSX, "fragment is not closed")
			p.lx.TagEnd()
			return frag, false
		}
	}
}
