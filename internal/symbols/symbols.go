// Package symbols builds the navigation outline for one parsed file:
// a tree of named declarations with full and selection ranges, the
// contract editors consume for outline views and breadcrumbs.
package symbols

import (
	"espresso/internal/ast"
	"espresso/internal/source"
	"espresso/internal/sourcemap"
	"espresso/internal/token"
)

// Kind classifies an outline entry.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindVariable
	KindFunction
	KindClass
	KindMethod
	KindField
	KindImport
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindMethod:
		return "method"
	case KindField:
		return "field"
	case KindImport:
		return "import"
	default:
		return "unknown"
	}
}

// Symbol is one outline entry. Range covers the whole declaration,
// Selection just the name.
type Symbol struct {
	Name      string
	Kind      Kind
	Range     source.Span
	Selection source.Span
	Children  []Symbol
}

// Outline walks the file's statements and returns the outline tree. An
// entry is included when it has a non-empty, non-synthetic name or at
// least one included child.
func Outline(f *ast.File) []Symbol {
	return fromStmts(f.Stmts)
}

func fromStmts(stmts []ast.Stmt) []Symbol {
	var out []Symbol
	for _, s := range stmts {
		sym, ok := fromStmt(s)
		out = appendSymbol(out, sym, ok)
	}
	return out
}

// appendSymbol applies the inclusion filter: nameless entries survive
// only by their children, which are spliced into the parent level.
func appendSymbol(out []Symbol, sym Symbol, ok bool) []Symbol {
	if !ok {
		return out
	}
	if sym.Name == "" {
		return append(out, sym.Children...)
	}
	return append(out, sym)
}

func fromStmt(s ast.Stmt) (Symbol, bool) {
	switch s := s.(type) {
	case *ast.Decl:
		return declSymbol(s)
	case *ast.ExprStmt:
		if a, ok := s.X.(*ast.Assign); ok && a.Op.Kind == token.Assign {
			return assignSymbol(a)
		}
	case *ast.Func:
		if name := tokenName(s.Name); name != "" {
			return Symbol{
				Name:      name,
				Kind:      KindFunction,
				Range:     s.Span(),
				Selection: s.Name.Span,
			}, true
		}
	case *ast.ClassDecl:
		return classSymbol(s), true
	case *ast.Import:
		return importSymbol(s)
	case *ast.Export:
		if s.Decl != nil {
			return fromStmt(s.Decl)
		}
	}
	return Symbol{}, false
}

// declSymbol covers 'let name = value' and destructuring declarations;
// a pattern contributes one child per bound name.
func declSymbol(d *ast.Decl) (Symbol, bool) {
	if name, sel, ok := patternName(d.Target); ok {
		return Symbol{
			Name:      name,
			Kind:      valueKind(d.Value),
			Range:     d.Span(),
			Selection: sel,
		}, true
	}
	children := patternNames(d.Target, d.Span())
	if len(children) == 0 {
		return Symbol{}, false
	}
	return Symbol{Range: d.Span(), Children: children}, true
}

func assignSymbol(a *ast.Assign) (Symbol, bool) {
	name, sel, ok := patternName(a.Target)
	if !ok {
		return Symbol{}, false
	}
	return Symbol{
		Name:      name,
		Kind:      valueKind(a.Value),
		Range:     a.Span(),
		Selection: sel,
	}, true
}

func classSymbol(c *ast.ClassDecl) Symbol {
	sym := Symbol{
		Name:      tokenName(c.Name),
		Kind:      KindClass,
		Range:     c.Span(),
		Selection: c.Name.Span,
	}
	for _, m := range c.Members {
		switch m := m.(type) {
		case *ast.Method:
			sym.Children = appendSymbol(sym.Children, Symbol{
				Name:      tokenName(m.Name),
				Kind:      KindMethod,
				Range:     m.Span(),
				Selection: m.Name.Span,
			}, true)
		case *ast.Field:
			sym.Children = appendSymbol(sym.Children, Symbol{
				Name:      tokenName(m.Name),
				Kind:      KindField,
				Range:     m.Span(),
				Selection: m.Name.Span,
			}, true)
		}
	}
	return sym
}

// importSymbol yields one entry per binding the import introduces,
// grouped under a nameless parent so they splice into the top level.
func importSymbol(imp *ast.Import) (Symbol, bool) {
	var children []Symbol
	add := func(tok token.Token) {
		if name := tokenName(tok); name != "" {
			children = append(children, Symbol{
				Name:      name,
				Kind:      KindImport,
				Range:     imp.Span(),
				Selection: tok.Span,
			})
		}
	}
	add(imp.Default)
	add(imp.StarAlias)
	for _, spec := range imp.Specs {
		if spec.Alias.Valid() {
			add(spec.Alias)
		} else {
			add(spec.Name)
		}
	}
	if len(children) == 0 {
		return Symbol{}, false
	}
	return Symbol{Range: imp.Span(), Children: children}, true
}

// patternName returns the single name a plain identifier target binds.
func patternName(x ast.Expr) (string, source.Span, bool) {
	id, ok := x.(*ast.Ident)
	if !ok {
		return "", source.Span{}, false
	}
	name := tokenName(id.Tok)
	if name == "" {
		return "", source.Span{}, false
	}
	return name, id.Tok.Span, true
}

// patternNames flattens a destructuring pattern into one entry per
// bound name.
func patternNames(x ast.Expr, full source.Span) []Symbol {
	var out []Symbol
	var walk func(x ast.Expr)
	walk = func(x ast.Expr) {
		switch x := x.(type) {
		case *ast.Ident:
			if name := tokenName(x.Tok); name != "" {
				out = append(out, Symbol{
					Name:      name,
					Kind:      KindVariable,
					Range:     full,
					Selection: x.Tok.Span,
				})
			}
		case *ast.Group:
			walk(x.X)
		case *ast.Assign:
			walk(x.Target)
		case *ast.ArrayLit:
			for i := range x.Elems {
				walk(x.Elems[i].X)
			}
		case *ast.ObjectLit:
			for i := range x.Props {
				if x.Props[i].Value != nil {
					walk(x.Props[i].Value)
				} else {
					walk(x.Props[i].Key)
				}
			}
		}
	}
	walk(x)
	return out
}

func valueKind(x ast.Expr) Kind {
	if _, ok := x.(*ast.Func); ok {
		return KindFunction
	}
	return KindVariable
}

// tokenName returns the token's text, or "" for names the rewrites
// synthesized: those have no source position and stay out of the
// outline.
func tokenName(t token.Token) string {
	if !t.Valid() || t.Synthetic() {
		return ""
	}
	return t.Text
}

// Remap translates every range through the source map, yielding the
// outline in generated-file coordinates. Positions the map does not
// cover keep their source position, matching lookup semantics.
func Remap(syms []Symbol, fs *source.FileSet, m *sourcemap.Builder) []GenSymbol {
	out := make([]GenSymbol, len(syms))
	for i, s := range syms {
		out[i] = GenSymbol{
			Name:      s.Name,
			Kind:      s.Kind,
			Range:     remapSpan(s.Range, fs, m),
			Selection: remapSpan(s.Selection, fs, m),
			Children:  Remap(s.Children, fs, m),
		}
	}
	return out
}

// GenSymbol is an outline entry in generated-file line/column space.
type GenSymbol struct {
	Name      string
	Kind      Kind
	Range     GenRange
	Selection GenRange
	Children  []GenSymbol
}

// GenRange is a half-open position range, 0-based.
type GenRange struct {
	Start sourcemap.Pos
	End   sourcemap.Pos
}

func remapSpan(sp source.Span, fs *source.FileSet, m *sourcemap.Builder) GenRange {
	start, end := fs.Resolve(sp)
	from := sourcemap.Pos{Line: start.Line - 1, Col: start.Col - 1}
	to := sourcemap.Pos{Line: end.Line - 1, Col: end.Col - 1}
	gs, okS := m.Forward(from)
	ge, okE := m.Forward(to)
	if !okS {
		gs = from
	}
	if !okE {
		ge = to
	}
	return GenRange{Start: gs, End: ge}
}
