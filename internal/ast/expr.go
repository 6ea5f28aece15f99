package ast

import (
	"espresso/internal/source"
	"espresso/internal/token"
)

// Ident is a single identifier reference.
type Ident struct {
	Tok token.Token
}

func (e *Ident) Span() source.Span { return e.Tok.Span }
func (e *Ident) exprNode()         {}

// Name returns the output spelling of the identifier.
func (e *Ident) Name() string { return e.Tok.Text }

// Lit is a single-token literal: numbers, plain strings, regexes,
// true/false/null/undefined/this. An '@' receiver is rewritten into a
// Lit spelled "this" that keeps the '@' span.
type Lit struct {
	Tok token.Token
}

func (e *Lit) Span() source.Span { return e.Tok.Span }
func (e *Lit) exprNode()         {}

// TemplateSeg is one interpolation hole of a template string: the
// embedded expression, the closing brace, and the literal fragment that
// follows it (a TemplateMid or the final TemplateClose).
type TemplateSeg struct {
	X     Expr
	Close token.Token
	Tail  token.Token
}

// Template is an interpolated string. The lexer already re-spelled the
// fragments as backtick template pieces, so emitting Open followed by
// each segment reproduces a valid template literal.
type Template struct {
	Open token.Token
	Segs []TemplateSeg
}

func (e *Template) Span() source.Span {
	sp := e.Open.Span
	if n := len(e.Segs); n > 0 {
		sp = cover(sp, e.Segs[n-1].Tail.Span)
	}
	return sp
}
func (e *Template) exprNode() {}

// TaggedTemplate is a template literal applied to a tag expression.
type TaggedTemplate struct {
	Tag  Expr
	Tmpl Expr
}

func (e *TaggedTemplate) Span() source.Span {
	return cover(nodeSpan(e.Tag), nodeSpan(e.Tmpl))
}
func (e *TaggedTemplate) exprNode() {}

// Group is a parenthesized expression.
type Group struct {
	L token.Token
	X Expr
	R token.Token
}

func (e *Group) Span() source.Span { return cover(e.L.Span, e.R.Span) }
func (e *Group) exprNode()         {}

// Element is one item of a bracketed or call argument list. Comma is
// absent after the final item unless the source had a trailing comma;
// rewrites that merge newline-separated items splice in synthetic
// commas.
type Element struct {
	Spread token.Token
	X      Expr
	Comma  token.Token
}

// ArrayLit is a bracketed list literal.
type ArrayLit struct {
	L     token.Token
	Elems []Element
	R     token.Token
}

func (e *ArrayLit) Span() source.Span { return cover(e.L.Span, e.R.Span) }
func (e *ArrayLit) exprNode()         {}

// Property is one entry of an object literal.
type Property struct {
	Spread token.Token
	Key    Expr
	Colon  token.Token
	Value  Expr
	Comma  token.Token
}

// Shorthand reports whether the property is a bare { name } entry.
func (p *Property) Shorthand() bool {
	return !p.Spread.Valid() && !p.Colon.Valid() && p.Value == nil
}

// ObjectLit is a braced object literal.
type ObjectLit struct {
	L     token.Token
	Props []Property
	R     token.Token
}

func (e *ObjectLit) Span() source.Span { return cover(e.L.Span, e.R.Span) }
func (e *ObjectLit) exprNode()         {}

// Range is an endpoint pair: '..' includes the upper bound, '...'
// excludes it. It only appears inside brackets, either as a standalone
// range literal or as the index of a slice.
type Range struct {
	From Expr
	Dots token.Token
	To   Expr
}

func (e *Range) Span() source.Span {
	return cover(nodeSpan(e.From), e.Dots.Span, nodeSpan(e.To))
}
func (e *Range) exprNode() {}

// Exclusive reports whether the range excludes its upper bound.
func (e *Range) Exclusive() bool { return e.Dots.Kind == token.DotDotDot }

// Unary is a prefix or postfix unary operation.
type Unary struct {
	Op      token.Token
	X       Expr
	Postfix bool
}

func (e *Unary) Span() source.Span { return cover(e.Op.Span, nodeSpan(e.X)) }
func (e *Unary) exprNode()         {}

// Binary is an infix binary operation. Word operators carry their
// rewritten spelling in Op.Text ('and' emits '&&').
type Binary struct {
	X  Expr
	Op token.Token
	Y  Expr
}

func (e *Binary) Span() source.Span {
	return cover(nodeSpan(e.X), nodeSpan(e.Y))
}
func (e *Binary) exprNode() {}

// Assign is an assignment expression.
type Assign struct {
	Target Expr
	Op     token.Token
	Value  Expr
}

func (e *Assign) Span() source.Span {
	return cover(nodeSpan(e.Target), nodeSpan(e.Value))
}
func (e *Assign) exprNode() {}

// Ternary is a conditional expression.
type Ternary struct {
	Cond  Expr
	Q     token.Token
	Then  Expr
	Colon token.Token
	Else  Expr
}

func (e *Ternary) Span() source.Span {
	return cover(nodeSpan(e.Cond), nodeSpan(e.Else))
}
func (e *Ternary) exprNode() {}

// Member is a property access. Link is '.' or '?.'.
type Member struct {
	Obj  Expr
	Link token.Token
	Name token.Token
}

func (e *Member) Span() source.Span {
	return cover(nodeSpan(e.Obj), e.Name.Span)
}
func (e *Member) exprNode() {}

// Index is a computed access. Opt holds a '?.' link for optional forms
// ('x?[i]' normalizes to 'x?.[i]') and is absent otherwise.
type Index struct {
	Obj Expr
	Opt token.Token
	L   token.Token
	Idx Expr
	R   token.Token
}

func (e *Index) Span() source.Span {
	return cover(nodeSpan(e.Obj), e.R.Span)
}
func (e *Index) exprNode() {}

// Call is a call expression. Juxtaposition applications carry
// synthetic parens and commas with Implicit set. Optional calls in any
// input spelling normalize to an Opt token spelled '?.'.
type Call struct {
	Callee   Expr
	Opt      token.Token
	L        token.Token
	Args     []Element
	R        token.Token
	Implicit bool
}

func (e *Call) Span() source.Span {
	return cover(nodeSpan(e.Callee), e.R.Span, e.L.Span)
}
func (e *Call) exprNode() {}

// TypeAnn is an optional type annotation: the ':' and the raw token
// run of the type expression, kept verbatim for the output.
type TypeAnn struct {
	Colon token.Token
	Toks  []token.Token
}

// Span covers the annotation including the colon.
func (t *TypeAnn) Span() source.Span {
	sp := t.Colon.Span
	if n := len(t.Toks); n > 0 {
		sp = cover(sp, t.Toks[n-1].Span)
	}
	return sp
}

// IsVoid reports whether the annotation names the no-value type.
func (t *TypeAnn) IsVoid() bool {
	return len(t.Toks) == 1 && t.Toks[0].Text == "void"
}

// Param is one function parameter.
type Param struct {
	Spread  token.Token
	Pattern Expr
	Type    *TypeAnn
	Assign  token.Token
	Default Expr
	Comma   token.Token
}

// Func is a function literal or declaration. Thin arrows ('->') emit
// as function expressions, fat arrows ('=>') stay arrows, and the
// 'function' keyword form keeps its spelling.
type Func struct {
	Async      token.Token
	Kw         token.Token
	Name       token.Token
	L          token.Token
	Params     []Param
	R          token.Token
	ReturnType *TypeAnn
	Arrow      token.Token
	Body       Node
}

func (e *Func) Span() source.Span {
	sp := cover(e.Async.Span, e.Kw.Span, e.L.Span, e.Arrow.Span)
	return cover(sp, nodeSpan(e.Body))
}
func (e *Func) exprNode() {}
func (e *Func) stmtNode() {}

// Arrowish reports whether the output form binds 'this' lexically.
func (e *Func) Arrowish() bool { return e.Arrow.Kind == token.FatArrow }

// BadExpr preserves the tokens of an expression the parser could not
// make sense of, so diagnostics have a span and output stays close to
// the input.
type BadExpr struct {
	Toks []token.Token
}

func (e *BadExpr) Span() source.Span {
	if len(e.Toks) == 0 {
		return source.Span{}
	}
	return cover(e.Toks[0].Span, e.Toks[len(e.Toks)-1].Span)
}
func (e *BadExpr) exprNode() {}
