package ast

import (
	"espresso/internal/source"
	"espresso/internal/token"
)

// JSXAttr is one attribute inside a JSX opening tag. Shorthand forms
// are kept as scanned and expanded by the JSX rewrite:
//
//	#name   -> id="name"      (Hash holds the '#name' token)
//	.name   -> class="name"   (Dot + Name)
//	name    -> name={true}    (bare Name, no Eq)
type JSXAttr struct {
	Hash  token.Token
	Dot   token.Token
	Name  token.Token
	Eq    token.Token
	Value Node
}

// JSXElement is a JSX element. Elements written without a closing tag
// and with indented children are auto-closed: ImpliedClose is set and
// the Close* tokens are synthetic.
type JSXElement struct {
	Lt           token.Token
	Name         token.Token
	Attrs        []JSXAttr
	SelfClose    token.Token
	Gt           token.Token
	Children     []Node
	CloseLtSlash token.Token
	CloseName    token.Token
	CloseGt      token.Token
	ImpliedClose bool
}

func (e *JSXElement) Span() source.Span {
	sp := cover(e.Lt.Span, e.SelfClose.Span, e.Gt.Span, e.CloseGt.Span)
	for _, c := range e.Children {
		sp = cover(sp, c.Span())
	}
	return sp
}
func (e *JSXElement) exprNode() {}

// SelfClosing reports whether the tag closed itself with '/>'.
func (e *JSXElement) SelfClosing() bool { return e.SelfClose.Valid() }

// JSXFragment is a '<>...</>' grouping. Adjacent sibling elements at
// the same indentation also merge into one of these with synthetic
// delimiter tokens.
type JSXFragment struct {
	Lt           token.Token
	Gt           token.Token
	Children     []Node
	CloseLtSlash token.Token
	CloseGt      token.Token
}

func (e *JSXFragment) Span() source.Span {
	sp := cover(e.Lt.Span, e.CloseGt.Span)
	for _, c := range e.Children {
		sp = cover(sp, c.Span())
	}
	return sp
}
func (e *JSXFragment) exprNode() {}

// JSXText is a run of raw text between JSX children.
type JSXText struct {
	Tok token.Token
}

func (e *JSXText) Span() source.Span { return e.Tok.Span }

// JSXExprChild is an embedded '{expr}' child or attribute value.
type JSXExprChild struct {
	L token.Token
	X Expr
	R token.Token
}

func (e *JSXExprChild) Span() source.Span { return cover(e.L.Span, e.R.Span) }
