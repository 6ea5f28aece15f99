package ast

// Inspect traverses the tree in emit order, calling f for every node.
// If f returns false the node's children are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *File:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *Template:
		for i := range n.Segs {
			Inspect(n.Segs[i].X, f)
		}
	case *TaggedTemplate:
		Inspect(n.Tag, f)
		Inspect(n.Tmpl, f)
	case *Group:
		Inspect(n.X, f)
	case *ArrayLit:
		for i := range n.Elems {
			Inspect(n.Elems[i].X, f)
		}
	case *ObjectLit:
		for i := range n.Props {
			if n.Props[i].Key != nil {
				Inspect(n.Props[i].Key, f)
			}
			if n.Props[i].Value != nil {
				Inspect(n.Props[i].Value, f)
			}
		}
	case *Range:
		Inspect(n.From, f)
		Inspect(n.To, f)
	case *Unary:
		Inspect(n.X, f)
	case *Binary:
		Inspect(n.X, f)
		Inspect(n.Y, f)
	case *Assign:
		Inspect(n.Target, f)
		Inspect(n.Value, f)
	case *Ternary:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		Inspect(n.Else, f)
	case *Member:
		Inspect(n.Obj, f)
	case *Index:
		Inspect(n.Obj, f)
		Inspect(n.Idx, f)
	case *Call:
		Inspect(n.Callee, f)
		for i := range n.Args {
			Inspect(n.Args[i].X, f)
		}
	case *Func:
		for i := range n.Params {
			Inspect(n.Params[i].Pattern, f)
			if n.Params[i].Default != nil {
				Inspect(n.Params[i].Default, f)
			}
		}
		Inspect(n.Body, f)
	case *JSXElement:
		for i := range n.Attrs {
			if n.Attrs[i].Value != nil {
				Inspect(n.Attrs[i].Value, f)
			}
		}
		for _, c := range n.Children {
			Inspect(c, f)
		}
	case *JSXFragment:
		for _, c := range n.Children {
			Inspect(c, f)
		}
	case *JSXExprChild:
		Inspect(n.X, f)
	case *Block:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *ExprStmt:
		Inspect(n.X, f)
	case *Decl:
		Inspect(n.Target, f)
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *Return:
		if n.X != nil {
			Inspect(n.X, f)
		}
	case *Throw:
		Inspect(n.X, f)
	case *If:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		if n.Else != nil {
			Inspect(n.Else, f)
		}
	case *While:
		if n.Cond != nil {
			Inspect(n.Cond, f)
		}
		Inspect(n.Body, f)
	case *For:
		Inspect(n.Pattern, f)
		Inspect(n.Iter, f)
		Inspect(n.Body, f)
	case *Postfix:
		Inspect(n.X, f)
		if n.Cond != nil {
			Inspect(n.Cond, f)
		}
	case *TryStmt:
		Inspect(n.Body, f)
		if n.Catch != nil {
			Inspect(n.Catch, f)
		}
		if n.Finally != nil {
			Inspect(n.Finally, f)
		}
	case *Switch:
		Inspect(n.Subject, f)
		for i := range n.Cases {
			for j := range n.Cases[i].Vals {
				Inspect(n.Cases[i].Vals[j].X, f)
			}
			Inspect(n.Cases[i].Body, f)
		}
	case *ClassDecl:
		if n.Super != nil {
			Inspect(n.Super, f)
		}
		for _, m := range n.Members {
			Inspect(m, f)
		}
	case *Method:
		for i := range n.Params {
			Inspect(n.Params[i].Pattern, f)
			if n.Params[i].Default != nil {
				Inspect(n.Params[i].Default, f)
			}
		}
		Inspect(n.Body, f)
	case *Field:
		if n.Value != nil {
			Inspect(n.Value, f)
		}
	case *Export:
		if n.Decl != nil {
			Inspect(n.Decl, f)
		}
		if n.X != nil {
			Inspect(n.X, f)
		}
	}
}
