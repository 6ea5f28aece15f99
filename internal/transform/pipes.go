package transform

import (
	"espresso/internal/ast"
	"espresso/internal/token"
)

// rewritePipes lowers 'a |> f' into 'f(a)'. Chains fold left to right
// because the rewrite runs bottom-up: 'a |> f |> g' becomes 'g(f(a))'.
// A trailing 'await', 'yield' or 'return' stage wraps the whole
// completed chain.
func rewritePipes(f *ast.File) {
	r := &rewriter{expr: pipeExpr}
	r.file(f)
}

func pipeExpr(x ast.Expr) ast.Expr {
	b, ok := x.(*ast.Binary)
	if !ok || b.Op.Kind != token.PipeGt {
		return x
	}
	arg, stage := b.X, b.Y

	// The chain's first operand owns the statement's line prefix; the
	// rewritten head takes it over.
	lead := ast.TakeLeading(arg)

	if u, ok := stage.(*ast.Unary); ok && !u.Postfix {
		switch u.Op.Kind {
		case token.KwAwait, token.KwYield, token.KwReturn:
			u.Op.Leading = lead
			if u.X == nil {
				// Bare trailing stage: the folded chain becomes the
				// operand ('x |> f |> return' gives 'return f(x)').
				u.X = arg
			} else {
				u.X = pipeApply(arg, u.X)
			}
			return u
		}
	}

	ast.SetLeading(stage, lead)
	return pipeApply(arg, stage)
}

func pipeApply(arg, callee ast.Expr) ast.Expr {
	return &ast.Call{
		Callee:   callee,
		L:        lparen(),
		Args:     []ast.Element{{X: arg}},
		R:        rparen(),
		Implicit: true,
	}
}
