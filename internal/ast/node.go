package ast

import (
	"espresso/internal/source"
	"espresso/internal/token"
)

// Node is any element of the parse tree.
type Node interface {
	// Span covers the source text the node was parsed from. Nodes
	// built entirely from synthetic tokens report an empty span.
	Span() source.Span
}

// Expr is a node that can appear in expression position.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node that can appear in statement position.
type Stmt interface {
	Node
	stmtNode()
}

// File is the root of a parsed module.
type File struct {
	Stmts []Stmt
	// EOF carries the trailing trivia of the file (final newline,
	// trailing comments) so the emitter can reproduce it.
	EOF token.Token
}

func (f *File) Span() source.Span {
	if len(f.Stmts) == 0 {
		return f.EOF.Span
	}
	return f.Stmts[0].Span().Cover(f.EOF.Span)
}

// cover joins the spans of the given nodes, skipping synthetic ones.
func cover(spans ...source.Span) source.Span {
	var out source.Span
	for _, sp := range spans {
		if sp.Empty() {
			continue
		}
		if out.Empty() {
			out = sp
			continue
		}
		out = out.Cover(sp)
	}
	return out
}

func nodeSpan(n Node) source.Span {
	if n == nil {
		return source.Span{}
	}
	return n.Span()
}

// FirstToken returns the first token of the subtree in emit order, or
// the zero token when the node holds no tokens. The emitter uses it to
// relocate statement-leading trivia when a rewrite reorders tokens.
func FirstToken(n Node) token.Token {
	if p := FirstTokenRef(n); p != nil {
		return *p
	}
	return token.Token{}
}

// TakeLeading detaches and returns the leading trivia of the subtree's
// first token. Rewrites that move a node behind inserted glue use it to
// keep the original line prefix in front.
func TakeLeading(n Node) []token.Trivia {
	p := FirstTokenRef(n)
	if p == nil {
		return nil
	}
	lead := p.Leading
	p.Leading = nil
	return lead
}

// SetLeading replaces the leading trivia of the subtree's first token.
func SetLeading(n Node, lead []token.Trivia) {
	if p := FirstTokenRef(n); p != nil {
		p.Leading = lead
	}
}

// FirstTokenRef returns a pointer to the first token of the subtree in
// emit order, or nil when the node holds no tokens.
func FirstTokenRef(n Node) *token.Token {
	switch n := n.(type) {
	case *File:
		if len(n.Stmts) > 0 {
			return FirstTokenRef(n.Stmts[0])
		}
		return &n.EOF
	case *Ident:
		return &n.Tok
	case *Lit:
		return &n.Tok
	case *Template:
		return &n.Open
	case *TaggedTemplate:
		return FirstTokenRef(n.Tag)
	case *Group:
		return &n.L
	case *ArrayLit:
		return &n.L
	case *ObjectLit:
		return &n.L
	case *Range:
		if n.From != nil {
			return FirstTokenRef(n.From)
		}
		return &n.Dots
	case *Unary:
		if n.Postfix {
			return FirstTokenRef(n.X)
		}
		return &n.Op
	case *Binary:
		return FirstTokenRef(n.X)
	case *Assign:
		return FirstTokenRef(n.Target)
	case *Ternary:
		return FirstTokenRef(n.Cond)
	case *Member:
		if n.Obj != nil {
			return FirstTokenRef(n.Obj)
		}
		return &n.Link
	case *Index:
		if n.Obj != nil {
			return FirstTokenRef(n.Obj)
		}
		return &n.L
	case *Call:
		if n.Callee != nil {
			return FirstTokenRef(n.Callee)
		}
		return &n.L
	case *Func:
		if n.Async.Valid() {
			return &n.Async
		}
		if n.Kw.Valid() {
			return &n.Kw
		}
		if n.L.Valid() {
			return &n.L
		}
		if len(n.Params) > 0 {
			p := &n.Params[0]
			if p.Spread.Valid() {
				return &p.Spread
			}
			return FirstTokenRef(p.Pattern)
		}
		return &n.Arrow
	case *ClassDecl:
		return &n.Kw
	case *Method:
		if n.Static.Valid() {
			return &n.Static
		}
		return &n.Name
	case *Field:
		if n.Static.Valid() {
			return &n.Static
		}
		return &n.Name
	case *JSXElement:
		return &n.Lt
	case *JSXFragment:
		return &n.Lt
	case *JSXExprChild:
		return &n.L
	case *JSXText:
		return &n.Tok
	case *ExprStmt:
		return FirstTokenRef(n.X)
	case *Decl:
		return &n.Kw
	case *VarHoist:
		return nil
	case *Return:
		return &n.Kw
	case *Throw:
		return &n.Kw
	case *BreakContinue:
		return &n.Kw
	case *If:
		return &n.Kw
	case *While:
		return &n.Kw
	case *For:
		return &n.Kw
	case *Postfix:
		return FirstTokenRef(n.X)
	case *TryStmt:
		return &n.Kw
	case *Switch:
		return &n.Kw
	case *Import:
		return &n.Kw
	case *Export:
		return &n.Kw
	case *Block:
		if n.Open.Valid() {
			return &n.Open
		}
		if len(n.Stmts) > 0 {
			return FirstTokenRef(n.Stmts[0])
		}
		return &n.Close
	case *BadStmt:
		if len(n.Toks) > 0 {
			return &n.Toks[0]
		}
	case *BadExpr:
		if len(n.Toks) > 0 {
			return &n.Toks[0]
		}
	}
	return nil
}
