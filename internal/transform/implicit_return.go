package transform

import (
	"espresso/internal/ast"
	"espresso/internal/token"
)

// insertImplicitReturns makes the final expression statement of every
// function body an explicit return. A body whose declared result type
// is void keeps its statement, as does one terminated with an explicit
// semicolon, and constructors never return a value.
func insertImplicitReturns(f *ast.File) {
	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Func:
			if b, ok := n.Body.(*ast.Block); ok && !isVoid(n.ReturnType) {
				returnLast(b)
			}
		case *ast.Method:
			if n.Name.Text != "constructor" && !isVoid(n.ReturnType) {
				returnLast(n.Body)
			}
		}
		return true
	})
}

func isVoid(t *ast.TypeAnn) bool {
	return t != nil && t.IsVoid()
}

func returnLast(b *ast.Block) {
	if b == nil || len(b.Stmts) == 0 {
		return
	}
	es, ok := b.Stmts[len(b.Stmts)-1].(*ast.ExprStmt)
	if !ok || es.Semi.Valid() {
		return
	}
	if u, ok := es.X.(*ast.Unary); ok && u.Op.Kind == token.KwReturn {
		// A pipe chain ending in '|> return' already returns.
		return
	}
	b.Stmts[len(b.Stmts)-1] = &ast.Return{
		Kw: token.Synth(token.KwReturn, "return"),
		X:  es.X,
	}
}
