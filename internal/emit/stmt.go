package emit

import (
	"strings"

	"espresso/internal/ast"
	"espresso/internal/token"
)

func (e *emitter) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case nil:
	case *ast.ExprStmt:
		e.expr(s.X)
		e.tok(s.Semi)
	case *ast.Decl:
		e.tok(s.Kw)
		e.expr(s.Target)
		if s.Assign.Valid() {
			e.tok(s.Assign)
			e.expr(s.Value)
		}
		// Synthesized declarations never carry a terminator of their
		// own and must not run into the next statement.
		if s.Kw.Synthetic() {
			e.p.raw(";")
		}
	case *ast.Return:
		e.returnStmt(s)
	case *ast.Throw:
		e.tok(s.Kw)
		e.expr(s.X)
	case *ast.BreakContinue:
		e.tok(s.Kw)
		e.tok(s.Label)
	case *ast.If:
		e.ifStmt(s)
	case *ast.While:
		e.whileStmt(s)
	case *ast.For:
		e.forStmt(s)
	case *ast.Postfix:
		e.postfix(s)
	case *ast.TryStmt:
		e.tryStmt(s)
	case *ast.Switch:
		e.switchStmt(s)
	case *ast.Import:
		e.importStmt(s)
	case *ast.Export:
		e.exportStmt(s)
	case *ast.ClassDecl:
		e.classDecl(s)
	case *ast.Func:
		e.fn(s)
	case *ast.Block:
		for _, inner := range s.Stmts {
			e.stmt(inner)
		}
	case *ast.VarHoist:
		// The block's opening trivia already produced this line; the
		// hoist supplies the line break for the statement it displaced.
		e.p.raw("var " + strings.Join(s.Names, ", ") + ";")
		if s.Indent != "" {
			e.p.raw("\n" + s.Indent)
		} else {
			e.p.raw(" ")
		}
	case *ast.BadStmt:
		for _, t := range s.Toks {
			e.tok(t)
		}
	}
}

// returnStmt handles both spelled-out returns and the synthetic ones the
// implicit-return rewrite inserts; the latter have no trivia of their
// own, so the returned expression's line prefix moves in front of the
// inserted keyword.
func (e *emitter) returnStmt(s *ast.Return) {
	if s.Kw.Synthetic() && s.X != nil {
		e.leadOf(s.X)
		e.p.raw("return ")
		e.p.suppress = true
		e.expr(s.X)
		return
	}
	e.tok(s.Kw)
	if s.X != nil {
		e.expr(s.X)
	}
}

func (e *emitter) ifStmt(s *ast.If) {
	e.tok(s.Kw.WithText("if"))
	outer := e.p.lineIndent()
	e.cond(s.Cond, s.Negate)
	e.block(s.Then, outer)
	if !s.ElseKw.Valid() {
		return
	}
	e.tok(s.ElseKw)
	switch el := s.Else.(type) {
	case *ast.If:
		e.ifStmt(el)
	case *ast.Block:
		e.block(el, outer)
	default:
		e.stmt(el)
	}
}

func (e *emitter) whileStmt(s *ast.While) {
	e.tok(s.Kw.WithText("while"))
	outer := e.p.lineIndent()
	if s.Loop {
		e.p.raw(" (true)")
	} else {
		e.cond(s.Cond, s.Negate)
	}
	e.block(s.Body, outer)
}

func (e *emitter) forStmt(s *ast.For) {
	e.tok(s.Kw)
	outer := e.p.lineIndent()
	if s.Decl.Valid() {
		e.p.lead(s.Decl)
		e.p.raw("(")
		e.p.suppress = true
		e.tok(s.Decl)
		e.expr(s.Pattern)
	} else {
		e.leadOf(s.Pattern)
		e.p.raw("(const ")
		e.p.suppress = true
		e.expr(s.Pattern)
	}
	e.tok(s.InOf)
	e.expr(s.Iter)
	e.p.raw(")")
	e.block(s.Body, outer)
}

// postfix reorders a trailing modifier into prefix form: the original
// statement's line prefix comes first, then the control header, then
// the statement itself.
func (e *emitter) postfix(s *ast.Postfix) {
	e.leadOf(s.X)
	switch {
	case s.Kw.Kind == token.KwLoop:
		e.p.text(s.Kw.WithText("while"))
		e.p.raw(" (true) ")
	case s.Looping():
		e.p.text(s.Kw.WithText("while"))
		e.condGlue(s.Cond, s.Negate())
	default:
		e.p.text(s.Kw.WithText("if"))
		e.condGlue(s.Cond, s.Negate())
	}
	e.p.suppress = true
	e.stmt(s.X)
}

// condGlue is cond for a test whose own line prefix must not surface
// (it came after the statement in source order).
func (e *emitter) condGlue(x ast.Expr, negate bool) {
	if negate {
		e.p.raw(" (!(")
	} else {
		e.p.raw(" (")
	}
	if x != nil {
		e.p.suppress = true
		e.expr(x)
	}
	if negate {
		e.p.raw(")) ")
	} else {
		e.p.raw(") ")
	}
}

func (e *emitter) tryStmt(s *ast.TryStmt) {
	e.tok(s.Kw)
	outer := e.p.lineIndent()
	e.block(s.Body, outer)
	if s.CatchKw.Valid() {
		e.tok(s.CatchKw)
		if s.CatchParam.Valid() {
			if s.CatchL.Synthetic() {
				e.p.lead(s.CatchParam)
				e.p.raw("(")
				e.p.suppress = true
				e.tok(s.CatchParam)
				e.p.raw(")")
			} else {
				e.tok(s.CatchL)
				e.tok(s.CatchParam)
				e.tok(s.CatchR)
			}
		}
		e.block(s.Catch, outer)
	}
	if s.FinallyKw.Valid() {
		e.tok(s.FinallyKw)
		e.block(s.Finally, outer)
	}
}

func (e *emitter) switchStmt(s *ast.Switch) {
	e.tok(s.Kw)
	outer := e.p.lineIndent()
	e.cond(s.Subject, false)
	e.p.raw(" {")
	if s.Open.Valid() {
		e.p.trivia(s.Open.Leading)
	}
	for i := range s.Cases {
		e.switchCase(&s.Cases[i])
	}
	e.p.raw("\n" + outer + "}")
	e.p.hold(s.Close.Leading)
}

// switchCase turns a 'when' arm into one or more case labels and a
// 'default' arm into the default label. Bodies stay unbraced; a break
// closes each arm unless the last statement already jumps.
func (e *emitter) switchCase(c *ast.SwitchCase) {
	if len(c.Vals) == 0 {
		e.tok(c.Kw.WithText("default"))
		e.p.raw(":")
	} else {
		for i := range c.Vals {
			if i == 0 {
				e.tok(c.Kw.WithText("case"))
			} else {
				e.p.raw(" case")
			}
			e.expr(c.Vals[i].X)
			e.p.raw(":")
		}
	}
	b := c.Body
	if b == nil {
		return
	}
	if !b.Open.Valid() {
		e.p.raw(" ")
		for i, s := range b.Stmts {
			if i == 0 {
				e.p.suppress = true
			}
			e.stmt(s)
		}
		if !endsWithJump(b.Stmts) {
			e.p.raw("; break;")
		}
		return
	}
	e.p.trivia(b.Open.Leading)
	for _, s := range b.Stmts {
		e.stmt(s)
	}
	if !endsWithJump(b.Stmts) {
		e.p.raw("\n" + indentOf(b.Open) + "break;")
	}
	e.p.hold(b.Close.Leading)
}

func endsWithJump(stmts []ast.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	switch stmts[len(stmts)-1].(type) {
	case *ast.Return, *ast.Throw, *ast.BreakContinue:
		return true
	default:
		return false
	}
}

func (e *emitter) importStmt(s *ast.Import) {
	e.tok(s.Kw)
	if s.Collapsed {
		// The indented name block lost its layout; the collapsed list
		// is laid out from scratch.
		e.p.raw(" { ")
		for i := range s.Specs {
			if i > 0 {
				e.p.raw(", ")
			}
			e.importSpecGlue(&s.Specs[i])
		}
		e.p.raw(" } from ")
		e.p.suppress = true
		e.tok(s.Path)
		return
	}
	e.tok(s.Default)
	e.tok(s.DefComma)
	e.tok(s.Star)
	e.tok(s.StarAsKw)
	e.tok(s.StarAlias)
	if s.L.Valid() {
		e.tok(s.L)
		for i := range s.Specs {
			e.importSpec(&s.Specs[i])
		}
		e.tok(s.R)
	}
	e.tok(s.FromKw)
	e.tok(s.Path)
}

func (e *emitter) importSpec(sp *ast.ImportSpec) {
	e.tok(sp.Name)
	e.tok(sp.AsKw)
	e.tok(sp.Alias)
	e.tok(sp.Comma)
}

// importSpecGlue writes a spec whose trivia was discarded with the
// collapsed layout, spacing the pieces itself.
func (e *emitter) importSpecGlue(sp *ast.ImportSpec) {
	e.p.suppress = true
	e.tok(sp.Name)
	if sp.AsKw.Valid() {
		e.p.raw(" ")
		e.p.suppress = true
		e.tok(sp.AsKw)
		e.p.raw(" ")
		e.p.suppress = true
		e.tok(sp.Alias)
	}
}

func (e *emitter) exportStmt(s *ast.Export) {
	e.tok(s.Kw)
	e.tok(s.Default)
	if s.Decl != nil {
		e.stmt(s.Decl)
		return
	}
	if s.X != nil {
		e.expr(s.X)
		return
	}
	if s.L.Valid() {
		e.tok(s.L)
		for i := range s.Specs {
			e.importSpec(&s.Specs[i])
		}
		e.tok(s.R)
	}
	e.tok(s.FromKw)
	e.tok(s.Path)
}

func (e *emitter) classDecl(s *ast.ClassDecl) {
	e.tok(s.Kw)
	outer := e.p.lineIndent()
	e.tok(s.Name)
	if s.ExtendsKw.Valid() {
		e.tok(s.ExtendsKw)
		e.expr(s.Super)
	}
	if !s.Open.Valid() {
		e.p.raw(" {}")
		return
	}
	e.p.raw(" {")
	e.p.trivia(s.Open.Leading)
	for _, m := range s.Members {
		e.node(m)
	}
	e.p.raw("\n" + outer + "}")
	e.p.hold(s.Close.Leading)
}

func (e *emitter) method(m *ast.Method) {
	e.tok(m.Static)
	e.tok(m.Async)
	e.tok(m.Name)
	outer := e.p.lineIndent()
	e.tok(m.L)
	e.params(m.Params)
	e.tok(m.R)
	e.block(m.Body, outer)
}

func (e *emitter) field(f *ast.Field) {
	e.tok(f.Static)
	e.tok(f.Name)
	if f.Assign.Valid() {
		e.tok(f.Assign)
		e.expr(f.Value)
	}
}
