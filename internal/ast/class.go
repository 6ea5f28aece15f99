package ast

import (
	"espresso/internal/source"
	"espresso/internal/token"
)

// ClassDecl is a class declaration with an indented member body.
type ClassDecl struct {
	Kw        token.Token
	Name      token.Token
	ExtendsKw token.Token
	Super     Expr
	Open      token.Token
	Members   []Node
	Close     token.Token
}

func (s *ClassDecl) Span() source.Span {
	sp := cover(s.Kw.Span, s.Name.Span, s.Close.Span)
	for _, m := range s.Members {
		sp = cover(sp, m.Span())
	}
	return sp
}
func (s *ClassDecl) stmtNode() {}

// Method is a class method: 'name(params) body' or the arrow forms.
type Method struct {
	Static     token.Token
	Async      token.Token
	Name       token.Token
	L          token.Token
	Params     []Param
	R          token.Token
	ReturnType *TypeAnn
	Arrow      token.Token
	Body       *Block
}

func (m *Method) Span() source.Span {
	sp := cover(m.Static.Span, m.Name.Span, m.R.Span)
	return cover(sp, nodeSpan(m.Body))
}

// Field is a class field, optionally initialized.
type Field struct {
	Static token.Token
	Name   token.Token
	Type   *TypeAnn
	Assign token.Token
	Value  Expr
}

func (f *Field) Span() source.Span {
	return cover(f.Static.Span, f.Name.Span, nodeSpan(f.Value))
}
