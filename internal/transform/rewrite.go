package transform

import (
	"espresso/internal/ast"
	"espresso/internal/token"
)

// rewriter walks the tree bottom-up, replacing expressions and
// statement lists through its hooks. Untouched subtrees are kept as-is;
// a pass only rebuilds the fragments it recognizes.
type rewriter struct {
	// expr is called post-order for every expression and may return a
	// replacement.
	expr func(ast.Expr) ast.Expr
	// stmts is called for every statement list (file body, blocks,
	// case bodies) after its members were rewritten, and may return a
	// replacement list. open is the list's Indent token when the list
	// came from an indented block.
	stmts func(list []ast.Stmt, open token.Token) []ast.Stmt
}

func (r *rewriter) file(f *ast.File) {
	f.Stmts = r.list(f.Stmts, token.Token{})
}

func (r *rewriter) list(list []ast.Stmt, open token.Token) []ast.Stmt {
	for i, s := range list {
		list[i] = r.stmt(s)
	}
	if r.stmts != nil {
		list = r.stmts(list, open)
	}
	return list
}

func (r *rewriter) block(b *ast.Block) {
	if b == nil {
		return
	}
	b.Stmts = r.list(b.Stmts, b.Open)
}

func (r *rewriter) stmt(s ast.Stmt) ast.Stmt {
	switch s := s.(type) {
	case *ast.ExprStmt:
		s.X = r.exprN(s.X)
	case *ast.Decl:
		s.Target = r.exprN(s.Target)
		s.Value = r.exprN(s.Value)
	case *ast.Return:
		s.X = r.exprN(s.X)
	case *ast.Throw:
		s.X = r.exprN(s.X)
	case *ast.If:
		s.Cond = r.exprN(s.Cond)
		r.block(s.Then)
		if s.Else != nil {
			s.Else = r.stmt(s.Else)
		}
	case *ast.While:
		s.Cond = r.exprN(s.Cond)
		r.block(s.Body)
	case *ast.For:
		s.Pattern = r.exprN(s.Pattern)
		s.Iter = r.exprN(s.Iter)
		r.block(s.Body)
	case *ast.Postfix:
		s.X = r.stmt(s.X)
		s.Cond = r.exprN(s.Cond)
	case *ast.TryStmt:
		r.block(s.Body)
		r.block(s.Catch)
		r.block(s.Finally)
	case *ast.Switch:
		s.Subject = r.exprN(s.Subject)
		for i := range s.Cases {
			c := &s.Cases[i]
			for j := range c.Vals {
				c.Vals[j].X = r.exprN(c.Vals[j].X)
			}
			r.block(c.Body)
		}
	case *ast.ClassDecl:
		s.Super = r.exprN(s.Super)
		for _, m := range s.Members {
			switch m := m.(type) {
			case *ast.Method:
				r.params(m.Params)
				r.block(m.Body)
			case *ast.Field:
				m.Value = r.exprN(m.Value)
			}
		}
	case *ast.Func:
		r.fn(s)
	case *ast.Export:
		if s.Decl != nil {
			s.Decl = r.stmt(s.Decl)
		}
		s.X = r.exprN(s.X)
	case *ast.Block:
		r.block(s)
	}
	return s
}

func (r *rewriter) fn(fn *ast.Func) {
	r.params(fn.Params)
	switch b := fn.Body.(type) {
	case *ast.Block:
		r.block(b)
	case ast.Expr:
		fn.Body = r.exprN(b)
	}
}

func (r *rewriter) params(params []ast.Param) {
	for i := range params {
		params[i].Pattern = r.exprN(params[i].Pattern)
		params[i].Default = r.exprN(params[i].Default)
	}
}

func (r *rewriter) exprN(x ast.Expr) ast.Expr {
	if x == nil {
		return nil
	}
	switch x := x.(type) {
	case *ast.Template:
		for i := range x.Segs {
			x.Segs[i].X = r.exprN(x.Segs[i].X)
		}
	case *ast.TaggedTemplate:
		x.Tag = r.exprN(x.Tag)
		x.Tmpl = r.exprN(x.Tmpl)
	case *ast.Group:
		x.X = r.exprN(x.X)
	case *ast.ArrayLit:
		for i := range x.Elems {
			x.Elems[i].X = r.exprN(x.Elems[i].X)
		}
	case *ast.ObjectLit:
		for i := range x.Props {
			x.Props[i].Key = r.exprN(x.Props[i].Key)
			x.Props[i].Value = r.exprN(x.Props[i].Value)
		}
	case *ast.Range:
		x.From = r.exprN(x.From)
		x.To = r.exprN(x.To)
	case *ast.Unary:
		x.X = r.exprN(x.X)
	case *ast.Binary:
		x.X = r.exprN(x.X)
		x.Y = r.exprN(x.Y)
	case *ast.Assign:
		x.Target = r.exprN(x.Target)
		x.Value = r.exprN(x.Value)
	case *ast.Ternary:
		x.Cond = r.exprN(x.Cond)
		x.Then = r.exprN(x.Then)
		x.Else = r.exprN(x.Else)
	case *ast.Member:
		x.Obj = r.exprN(x.Obj)
	case *ast.Index:
		x.Obj = r.exprN(x.Obj)
		x.Idx = r.exprN(x.Idx)
	case *ast.Call:
		x.Callee = r.exprN(x.Callee)
		for i := range x.Args {
			x.Args[i].X = r.exprN(x.Args[i].X)
		}
	case *ast.Func:
		r.fn(x)
	case *ast.JSXElement:
		for i := range x.Attrs {
			if v, ok := x.Attrs[i].Value.(*ast.JSXExprChild); ok {
				v.X = r.exprN(v.X)
			}
		}
		r.jsxChildren(x.Children)
	case *ast.JSXFragment:
		r.jsxChildren(x.Children)
	}
	if r.expr != nil {
		return r.expr(x)
	}
	return x
}

func (r *rewriter) jsxChildren(children []ast.Node) {
	for i, c := range children {
		switch c := c.(type) {
		case *ast.JSXExprChild:
			c.X = r.exprN(c.X)
		case ast.Expr:
			children[i] = r.exprN(c)
		}
	}
}
