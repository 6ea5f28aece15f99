package transform

import (
	"strconv"

	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

// repositionRest rewrites destructuring patterns whose rest element is
// not in final position. The elements after the rest move into a
// follow-up declaration that splices them back off the rest's tail,
// which is the only shape the output language accepts.
func repositionRest(f *ast.File, rep diag.Reporter) {
	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Func:
			var decl ast.Stmt
			n.Params, decl = splitRestParams(n.Params, rep)
			if decl != nil {
				n.Body = prependStmt(n.Body, decl)
			}
		case *ast.Method:
			var decl ast.Stmt
			n.Params, decl = splitRestParams(n.Params, rep)
			if decl != nil {
				if b, ok := prependStmt(n.Body, decl).(*ast.Block); ok {
					n.Body = b
				}
			}
		case *ast.For:
			if arr, ok := n.Pattern.(*ast.ArrayLit); ok {
				if si := midRestIndex(arr.Elems); si >= 0 {
					diag.Error(rep, diag.SynBadDestructuring, arr.Elems[si].Spread.Span,
						"a rest element in a loop pattern must come last")
				}
			}
		}
		return true
	})

	r := &rewriter{stmts: func(list []ast.Stmt, open token.Token) []ast.Stmt {
		return splitRestStmts(list, rep)
	}}
	r.file(f)
}

// midRestIndex returns the index of a rest element that has elements
// after it, or -1. A second rest is reported as the first one's index
// since the shape is invalid either way.
func midRestIndex(elems []ast.Element) int {
	for i := range elems {
		if elems[i].Spread.Valid() && i < len(elems)-1 {
			return i
		}
	}
	return -1
}

// splitRestParams trims parameters after a rest parameter and returns
// the declaration that recovers them from the rest's tail.
func splitRestParams(params []ast.Param, rep diag.Reporter) ([]ast.Param, ast.Stmt) {
	ri := -1
	for i := range params {
		if !params[i].Spread.Valid() {
			continue
		}
		if ri >= 0 {
			diag.Error(rep, diag.SynBadDestructuring, params[i].Spread.Span,
				"only one rest parameter is allowed")
			return params, nil
		}
		ri = i
	}
	if ri < 0 || ri == len(params)-1 {
		return params, nil
	}
	name, ok := params[ri].Pattern.(*ast.Ident)
	if !ok {
		diag.Error(rep, diag.SynBadDestructuring, params[ri].Spread.Span,
			"a rest parameter followed by more parameters must be a plain name")
		return params, nil
	}

	trailing := params[ri+1:]
	elems := make([]ast.Element, len(trailing))
	for i := range trailing {
		p := &trailing[i]
		x := p.Pattern
		if p.Default != nil {
			x = &ast.Assign{Target: p.Pattern, Op: p.Assign, Value: p.Default}
		}
		if i == 0 {
			ast.SetLeading(x, nil)
		}
		elems[i] = ast.Element{X: x, Comma: p.Comma}
	}
	params = params[:ri+1]
	params[ri].Comma = token.Token{}

	return params, tailDecl(elems, name.Tok.Text, len(trailing))
}

// tailDecl builds 'let [elems] = rest.splice(-n);'.
func tailDecl(elems []ast.Element, rest string, n int) *ast.Decl {
	kw := token.Synth(token.KwLet, "let")
	value := spliceTail(rest, n)
	ast.SetLeading(value, spaceLead())
	return &ast.Decl{
		Kw: kw,
		Target: &ast.ArrayLit{
			L:     spaced(token.Synth(token.LBracket, "[")),
			Elems: elems,
			R:     token.Synth(token.RBracket, "]"),
		},
		Assign: spaced(token.Synth(token.Assign, "=")),
		Value:  value,
	}
}

func spliceTail(rest string, n int) ast.Expr {
	return synthCall(
		member(synthIdent(rest), token.Synth(token.Ident, "splice")),
		lparen(), rparen(),
		&ast.Lit{Tok: token.Synth(token.Num, "-"+strconv.Itoa(n))})
}

// prependStmt inserts a statement at the start of a function body,
// wrapping an expression body in a block so the insertion has a home.
func prependStmt(body ast.Node, decl ast.Stmt) ast.Node {
	switch b := body.(type) {
	case *ast.Block:
		if b.Open.Valid() && len(b.Stmts) > 0 {
			indent := lineIndentOf(b.Open.Leading)
			if p := ast.FirstTokenRef(b.Stmts[0]); p != nil {
				p.Leading = append(newlineLead(indent), p.Leading...)
			}
		}
		b.Stmts = append([]ast.Stmt{decl}, b.Stmts...)
		return b
	case ast.Expr:
		return &ast.Block{Stmts: []ast.Stmt{decl, &ast.ExprStmt{X: b}}}
	case nil:
		return &ast.Block{Stmts: []ast.Stmt{decl}}
	}
	return body
}

// splitRestStmts rewrites statement-level destructurings with a
// mid-pattern rest, inserting the trailing recovery right after.
func splitRestStmts(list []ast.Stmt, rep diag.Reporter) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(list))
	for _, s := range list {
		out = append(out, s)
		switch s := s.(type) {
		case *ast.Decl:
			arr, ok := s.Target.(*ast.ArrayLit)
			if !ok {
				break
			}
			elems, rest, n := extractTrailing(arr, rep)
			if n == 0 {
				break
			}
			decl := tailDecl(elems, rest, n)
			decl.Kw.Leading = stmtLinePrefix(s)
			out = append(out, decl)
		case *ast.ExprStmt:
			a, ok := s.X.(*ast.Assign)
			if !ok || a.Op.Kind != token.Assign {
				break
			}
			arr, ok := a.Target.(*ast.ArrayLit)
			if !ok {
				break
			}
			elems, rest, n := extractTrailing(arr, rep)
			if n == 0 {
				break
			}
			// Terminate the split statement: the follow-up line opens
			// with '[' and would otherwise index into this one.
			if !s.Semi.Valid() {
				s.Semi = token.Synth(token.Semicolon, ";")
			}
			l := token.Synth(token.LBracket, "[")
			l.Leading = stmtLinePrefix(s)
			out = append(out, &ast.ExprStmt{
				X: &ast.Assign{
					Target: &ast.ArrayLit{L: l, Elems: elems, R: token.Synth(token.RBracket, "]")},
					Op:     spaced(token.Synth(token.Assign, "=")),
					Value:  withLead(spliceTail(rest, n), spaceLead()),
				},
				Semi: token.Synth(token.Semicolon, ";"),
			})
		}
	}
	return out
}

// stmtLinePrefix builds line-start trivia matching the statement's own
// indentation.
func stmtLinePrefix(s ast.Stmt) []token.Trivia {
	var lead []token.Trivia
	if p := ast.FirstTokenRef(s); p != nil {
		lead = p.Leading
	}
	return newlineLead(lineIndentOf(lead))
}

func withLead(x ast.Expr, lead []token.Trivia) ast.Expr {
	ast.SetLeading(x, lead)
	return x
}

// extractTrailing trims the elements after a mid-pattern rest off the
// array pattern and returns them with the rest's name and count. A
// zero count means no rewrite applies.
func extractTrailing(arr *ast.ArrayLit, rep diag.Reporter) ([]ast.Element, string, int) {
	si := -1
	for i := range arr.Elems {
		if !arr.Elems[i].Spread.Valid() {
			continue
		}
		if si >= 0 {
			diag.Error(rep, diag.SynBadDestructuring, arr.Elems[i].Spread.Span,
				"only one rest element is allowed in a pattern")
			return nil, "", 0
		}
		si = i
	}
	if si < 0 || si == len(arr.Elems)-1 {
		return nil, "", 0
	}
	rest, ok := arr.Elems[si].X.(*ast.Ident)
	if !ok {
		diag.Error(rep, diag.SynBadDestructuring, arr.Elems[si].Spread.Span,
			"a rest element followed by more elements must be a plain name")
		return nil, "", 0
	}

	trailing := append([]ast.Element(nil), arr.Elems[si+1:]...)
	if p := ast.FirstTokenRef(trailing[0].X); p != nil {
		p.Leading = nil
	}
	trailing[len(trailing)-1].Comma = token.Token{}
	arr.Elems = arr.Elems[:si+1]
	arr.Elems[si].Comma = token.Token{}
	return trailing, rest.Tok.Text, len(trailing)
}
