package emit

import (
	"espresso/internal/ast"
)

func (e *emitter) expr(x ast.Expr) {
	switch x := x.(type) {
	case nil:
	case *ast.Ident:
		e.tok(x.Tok)
	case *ast.Lit:
		e.tok(x.Tok)
	case *ast.Template:
		e.tok(x.Open)
		for i := range x.Segs {
			seg := &x.Segs[i]
			e.expr(seg.X)
			e.tok(seg.Close)
			e.tok(seg.Tail)
		}
	case *ast.TaggedTemplate:
		e.expr(x.Tag)
		e.expr(x.Tmpl)
	case *ast.Group:
		e.tok(x.L)
		e.expr(x.X)
		e.tok(x.R)
	case *ast.ArrayLit:
		e.tok(x.L)
		e.elements(x.Elems)
		e.tok(x.R)
	case *ast.ObjectLit:
		e.tok(x.L)
		for i := range x.Props {
			e.property(&x.Props[i])
		}
		e.tok(x.R)
	case *ast.Range:
		// Ranges are lowered before emission; a survivor means the
		// lowering could not apply, so the tokens come out as written.
		e.expr(x.From)
		e.tok(x.Dots)
		e.expr(x.To)
	case *ast.Unary:
		if x.Postfix {
			e.expr(x.X)
			e.tok(x.Op)
		} else {
			e.tok(x.Op)
			e.expr(x.X)
		}
	case *ast.Binary:
		e.expr(x.X)
		e.tok(x.Op)
		e.expr(x.Y)
	case *ast.Assign:
		e.expr(x.Target)
		e.tok(x.Op)
		e.expr(x.Value)
	case *ast.Ternary:
		e.expr(x.Cond)
		e.tok(x.Q)
		e.expr(x.Then)
		e.tok(x.Colon)
		e.expr(x.Else)
	case *ast.Member:
		e.expr(x.Obj)
		e.tok(x.Link)
		e.tok(x.Name)
	case *ast.Index:
		e.expr(x.Obj)
		e.tok(x.Opt)
		e.tok(x.L)
		e.expr(x.Idx)
		e.tok(x.R)
	case *ast.Call:
		e.call(x)
	case *ast.Func:
		e.fn(x)
	case *ast.JSXElement:
		e.jsxElement(x)
	case *ast.JSXFragment:
		e.jsxFragment(x)
	case *ast.BadExpr:
		for _, t := range x.Toks {
			e.tok(t)
		}
	}
}

func (e *emitter) elements(elems []ast.Element) {
	for i := range elems {
		el := &elems[i]
		e.tok(el.Spread)
		e.expr(el.X)
		e.tok(el.Comma)
	}
}

func (e *emitter) property(p *ast.Property) {
	e.tok(p.Spread)
	if p.Key != nil {
		e.expr(p.Key)
	}
	e.tok(p.Colon)
	if p.Value != nil {
		e.expr(p.Value)
	}
	e.tok(p.Comma)
}

// call writes a call expression. Juxtaposition applications carry
// synthetic parens; the first argument's separating space is dropped so
// 'f x' comes out as 'f(x)'.
func (e *emitter) call(x *ast.Call) {
	e.expr(x.Callee)
	e.tok(x.Opt)
	if x.Implicit {
		e.p.raw("(")
		for i := range x.Args {
			el := &x.Args[i]
			if i == 0 {
				e.p.suppress = true
			}
			e.tok(el.Spread)
			e.expr(el.X)
			e.tok(el.Comma)
		}
		e.p.raw(")")
		return
	}
	e.tok(x.L)
	e.elements(x.Args)
	e.tok(x.R)
}

func (e *emitter) params(params []ast.Param) {
	for i := range params {
		p := &params[i]
		e.tok(p.Spread)
		e.expr(p.Pattern)
		if p.Assign.Valid() {
			e.tok(p.Assign)
			e.expr(p.Default)
		}
		e.tok(p.Comma)
	}
}

// fn writes a function in its output form: 'function' keyword forms and
// fat arrows keep their spelling, thin arrows reorder into function
// expressions, and expression bodies of thin arrows gain a return.
func (e *emitter) fn(x *ast.Func) {
	e.tok(x.Async)

	switch {
	case x.Kw.Valid():
		e.tok(x.Kw)
		e.tok(x.Name)
		outer := e.p.lineIndent()
		e.tok(x.L)
		e.params(x.Params)
		e.tok(x.R)
		e.fnBody(x, outer)
		return

	case x.Arrowish():
		if !x.L.Valid() && len(x.Params) == 0 {
			// A zero-parameter arrow needs the parens spelled out.
			e.p.lead(x.Arrow)
			e.p.raw("() ")
			e.p.suppress = true
		}
		outer := e.p.lineIndent()
		if x.L.Valid() {
			e.tok(x.L)
			e.params(x.Params)
			e.tok(x.R)
		} else if len(x.Params) > 0 {
			e.params(x.Params)
		}
		e.tok(x.Arrow)
		switch b := x.Body.(type) {
		case *ast.Block:
			e.block(b, outer)
		case ast.Expr:
			e.expr(b)
		}
		return
	}

	// Thin arrow: the arrow disappears and 'function' takes its place
	// ahead of the parameter list.
	e.leadFn(x)
	e.p.text(x.Arrow.WithText("function"))
	outer := e.p.lineIndent()
	switch {
	case x.L.Valid():
		e.p.suppress = true
		e.tok(x.L)
		e.params(x.Params)
		e.tok(x.R)
	case len(x.Params) > 0:
		e.p.raw("(")
		e.p.suppress = true
		e.params(x.Params)
		e.p.raw(")")
	default:
		e.p.raw("()")
	}
	e.fnBody(x, outer)
}

// leadFn writes the line prefix of a thin arrow's first source token so
// the inserted 'function' lands where the function started.
func (e *emitter) leadFn(x *ast.Func) {
	switch {
	case x.L.Valid():
		e.p.lead(x.L)
	case len(x.Params) > 0:
		p := &x.Params[0]
		if p.Spread.Valid() {
			e.p.lead(p.Spread)
		} else {
			e.leadOf(p.Pattern)
		}
	default:
		e.p.lead(x.Arrow)
	}
}

// fnBody writes a function body, wrapping an expression body in a
// braced return.
func (e *emitter) fnBody(x *ast.Func, outer string) {
	switch b := x.Body.(type) {
	case *ast.Block:
		e.block(b, outer)
	case ast.Expr:
		e.p.raw(" { return")
		e.expr(b)
		e.p.raw("; }")
	default:
		e.p.raw(" {}")
	}
}
