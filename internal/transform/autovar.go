package transform

import (
	"espresso/internal/ast"
	"espresso/internal/token"
)

// autoVar gives assignments to undeclared names a declaration. Each
// name is hoisted to the top of the innermost function whose scope
// chain does not already know it, so inner functions keep writing to
// outer variables. A scope is scanned completely before its nested
// functions, matching how the output hoists var bindings.
func autoVar(f *ast.File) {
	sc := newScope(nil)
	f.Stmts = hoistScope(f.Stmts, sc, "")
}

type scope struct {
	parent   *scope
	declared map[string]bool
	hoisted  []string
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, declared: map[string]bool{}}
}

func (s *scope) known(name string) bool {
	for c := s; c != nil; c = c.parent {
		if c.declared[name] {
			return true
		}
	}
	return false
}

func (s *scope) declare(name string) {
	if name != "" {
		s.declared[name] = true
	}
}

// assign records a write to a name, hoisting it here when no enclosing
// scope declares it.
func (s *scope) assign(name string) {
	if name == "" || s.known(name) {
		return
	}
	s.declared[name] = true
	s.hoisted = append(s.hoisted, name)
}

// hoistScope collects the scope's own declarations and assignments,
// descends into the functions it found, and prepends the hoist
// declaration when any names were collected.
func hoistScope(stmts []ast.Stmt, sc *scope, indent string) []ast.Stmt {
	var fns []ast.Node
	for _, s := range stmts {
		collect(s, sc, &fns)
	}
	for _, fn := range fns {
		hoistFn(fn, sc)
	}
	if len(sc.hoisted) > 0 {
		stmts = append([]ast.Stmt{&ast.VarHoist{Names: sc.hoisted, Indent: indent}}, stmts...)
	}
	return stmts
}

// collect walks one statement within the current function scope,
// recording declared names and identifier assignments. Nested
// functions are queued rather than entered so their bodies resolve
// against the completed scope.
func collect(root ast.Node, sc *scope, fns *[]ast.Node) {
	ast.Inspect(root, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Func:
			if n.Kw.Valid() && n.Name.Valid() {
				sc.declare(n.Name.Text)
			}
			*fns = append(*fns, n)
			return false
		case *ast.Method:
			*fns = append(*fns, n)
			return false
		case *ast.Decl:
			declarePattern(n.Target, sc)
		case *ast.Import:
			if n.Default.Valid() {
				sc.declare(n.Default.Text)
			}
			if n.StarAlias.Valid() {
				sc.declare(n.StarAlias.Text)
			}
			for _, spec := range n.Specs {
				name := spec.Name
				if spec.Alias.Valid() {
					name = spec.Alias
				}
				sc.declare(name.Text)
			}
		case *ast.ClassDecl:
			sc.declare(n.Name.Text)
		case *ast.For:
			declarePattern(n.Pattern, sc)
		case *ast.TryStmt:
			if n.CatchParam.Valid() {
				sc.declare(n.CatchParam.Text)
			}
		case *ast.Assign:
			if n.Op.Kind == token.Assign {
				assignPattern(n.Target, sc)
			}
		}
		return true
	})
}

// hoistFn opens a fresh scope for a queued function and hoists its
// body. An expression body has no statement list to hold a hoist, so
// names collected there bubble into the enclosing scope.
func hoistFn(n ast.Node, parent *scope) {
	sc := newScope(parent)
	var params []ast.Param
	var body ast.Node
	switch fn := n.(type) {
	case *ast.Func:
		if fn.Name.Valid() {
			sc.declare(fn.Name.Text)
		}
		params, body = fn.Params, fn.Body
	case *ast.Method:
		params = fn.Params
		if fn.Body != nil {
			body = fn.Body
		}
	}

	var fns []ast.Node
	for i := range params {
		declarePattern(params[i].Pattern, sc)
		if params[i].Default != nil {
			collect(params[i].Default, sc, &fns)
		}
	}

	switch b := body.(type) {
	case *ast.Block:
		indent := ""
		if b.Open.Valid() {
			indent = lineIndentOf(b.Open.Leading)
		}
		for _, fn := range fns {
			hoistFn(fn, sc)
		}
		b.Stmts = hoistScope(b.Stmts, sc, indent)
	case ast.Expr:
		collect(b, sc, &fns)
		for _, fn := range fns {
			hoistFn(fn, sc)
		}
		for _, name := range sc.hoisted {
			parent.assign(name)
		}
	}
}

// declarePattern marks every name bound by a binding pattern.
func declarePattern(x ast.Expr, sc *scope) {
	switch x := x.(type) {
	case *ast.Ident:
		sc.declare(x.Tok.Text)
	case *ast.Group:
		declarePattern(x.X, sc)
	case *ast.Assign:
		declarePattern(x.Target, sc)
	case *ast.ArrayLit:
		for i := range x.Elems {
			declarePattern(x.Elems[i].X, sc)
		}
	case *ast.ObjectLit:
		for i := range x.Props {
			if x.Props[i].Value != nil {
				declarePattern(x.Props[i].Value, sc)
			} else {
				declarePattern(x.Props[i].Key, sc)
			}
		}
	}
}

// assignPattern records writes for every name a destructuring
// assignment targets.
func assignPattern(x ast.Expr, sc *scope) {
	switch x := x.(type) {
	case *ast.Ident:
		sc.assign(x.Tok.Text)
	case *ast.Group:
		assignPattern(x.X, sc)
	case *ast.Assign:
		assignPattern(x.Target, sc)
	case *ast.ArrayLit:
		for i := range x.Elems {
			assignPattern(x.Elems[i].X, sc)
		}
	case *ast.ObjectLit:
		for i := range x.Props {
			if x.Props[i].Value != nil {
				assignPattern(x.Props[i].Value, sc)
			} else {
				assignPattern(x.Props[i].Key, sc)
			}
		}
	}
}
