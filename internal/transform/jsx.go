package transform

import (
	"strconv"
	"strings"

	"espresso/internal/ast"
	"espresso/internal/token"
)

// expandJSX normalizes the JSX sugar: shorthand attributes become
// explicit name/value pairs and runs of sibling elements in statement
// position merge into a single fragment.
func expandJSX(f *ast.File) {
	ast.Inspect(f, func(n ast.Node) bool {
		if el, ok := n.(*ast.JSXElement); ok {
			for i := range el.Attrs {
				expandAttr(&el.Attrs[i])
			}
		}
		return true
	})

	r := &rewriter{stmts: mergeJSXSiblings}
	r.file(f)
}

func expandAttr(a *ast.JSXAttr) {
	switch {
	case a.Hash.Valid():
		// #name -> id="name"
		name := strings.TrimPrefix(a.Hash.Text, "#")
		a.Name = a.Hash.WithText("id")
		a.Hash = token.Token{}
		a.Eq = token.Synth(token.Assign, "=")
		a.Value = &ast.Lit{Tok: token.Synth(token.Str, strconv.Quote(name))}

	case a.Dot.Valid():
		// .name -> class="name"
		name := a.Name.Text
		a.Name = a.Dot.WithText("class")
		a.Dot = token.Token{}
		a.Eq = token.Synth(token.Assign, "=")
		a.Value = &ast.Lit{Tok: token.Synth(token.Str, strconv.Quote(name))}

	case a.Name.Valid() && !a.Eq.Valid() && a.Value == nil:
		// name -> name={true}
		a.Eq = token.Synth(token.Assign, "=")
		a.Value = &ast.JSXExprChild{
			L: token.Synth(token.LBrace, "{"),
			X: &ast.Lit{Tok: token.Synth(token.KwTrue, "true")},
			R: token.Synth(token.RBrace, "}"),
		}
	}
}

// mergeJSXSiblings joins consecutive statement-position JSX elements
// into one fragment, so a block of sibling tags renders as a single
// expression.
func mergeJSXSiblings(list []ast.Stmt, open token.Token) []ast.Stmt {
	_ = open
	out := list[:0]
	for i := 0; i < len(list); {
		j := i
		for j < len(list) && jsxStmt(list[j]) != nil {
			j++
		}
		if j-i < 2 {
			out = append(out, list[i])
			i++
			continue
		}
		out = append(out, mergeRun(list[i:j]))
		i = j
	}
	return out
}

// jsxStmt returns the statement's JSX expression, or nil when the
// statement is not a bare JSX element or fragment.
func jsxStmt(s ast.Stmt) ast.Expr {
	es, ok := s.(*ast.ExprStmt)
	if !ok {
		return nil
	}
	switch es.X.(type) {
	case *ast.JSXElement, *ast.JSXFragment:
		return es.X
	}
	return nil
}

func mergeRun(run []ast.Stmt) ast.Stmt {
	first := run[0].(*ast.ExprStmt)
	last := run[len(run)-1].(*ast.ExprStmt)

	// The fragment opener takes over the first element's place on its
	// line; the children then each start a fresh line at that indent.
	lead := ast.TakeLeading(first.X)
	indent := lineIndentOf(lead)

	children := make([]ast.Node, len(run))
	for i, s := range run {
		children[i] = s.(*ast.ExprStmt).X
	}
	ast.SetLeading(children[0].(ast.Expr), newlineLead(indent))

	lt := token.Synth(token.Lt, "<")
	lt.Leading = lead

	// The closing tag is synthetic, so the emitter places it on its own
	// line at the fragment's indent.
	first.X = &ast.JSXFragment{
		Lt:           lt,
		Gt:           token.Synth(token.Gt, ">"),
		Children:     children,
		CloseLtSlash: token.Synth(token.LtSlash, "</"),
		CloseGt:      token.Synth(token.Gt, ">"),
	}
	first.Semi = last.Semi
	return first
}
