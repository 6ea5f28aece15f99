package emit

import (
	"espresso/internal/ast"
)

func (e *emitter) jsxElement(x *ast.JSXElement) {
	e.tok(x.Lt)
	outer := e.p.lineIndent()
	e.tok(x.Name)
	for i := range x.Attrs {
		e.jsxAttr(&x.Attrs[i])
	}
	if x.SelfClosing() {
		e.tok(x.SelfClose)
		return
	}
	e.tok(x.Gt)
	e.jsxChildren(x.Children)
	if x.ImpliedClose {
		e.p.raw("\n" + outer)
	}
	e.tok(x.CloseLtSlash)
	e.tok(x.CloseName)
	e.tok(x.CloseGt)
}

func (e *emitter) jsxFragment(x *ast.JSXFragment) {
	e.tok(x.Lt)
	outer := e.p.lineIndent()
	e.tok(x.Gt)
	e.jsxChildren(x.Children)
	if x.CloseLtSlash.Synthetic() {
		e.p.raw("\n" + outer)
	}
	e.tok(x.CloseLtSlash)
	e.tok(x.CloseGt)
}

func (e *emitter) jsxChildren(children []ast.Node) {
	for _, c := range children {
		switch c := c.(type) {
		case *ast.JSXText:
			e.tok(c.Tok)
		case *ast.JSXElement:
			e.jsxElement(c)
		case *ast.JSXFragment:
			e.jsxFragment(c)
		case *ast.JSXExprChild:
			e.jsxExprChild(c)
		case ast.Expr:
			// A bare expression child (an indented string line) needs
			// braces to stay an expression in the output.
			e.leadOf(c)
			e.p.raw("{")
			e.p.suppress = true
			e.expr(c)
			e.p.raw("}")
		}
	}
}

func (e *emitter) jsxExprChild(c *ast.JSXExprChild) {
	e.tok(c.L)
	e.expr(c.X)
	e.tok(c.R)
}

// jsxAttr writes one attribute. The shorthand rewrite has already
// expanded '#id', '.class' and bare flags into name/value form; an
// attribute still carrying its shorthand tokens is written as scanned.
func (e *emitter) jsxAttr(a *ast.JSXAttr) {
	if a.Hash.Valid() {
		e.tok(a.Hash)
		return
	}
	e.tok(a.Dot)
	e.tok(a.Name)
	e.tok(a.Eq)
	if a.Value != nil {
		e.node(a.Value)
	}
}
