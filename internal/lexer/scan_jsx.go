package lexer

import (
	"espresso/internal/token"
)

// JSX scanning is a small mode stack layered over the normal scanner.
//
//	tag      inside '<name ...>': normal tokens, plus '/>' munching
//	children inside an element: raw text runs, '<', '</', '{'
//	expr     inside a '{...}' child: normal tokens until the matching
//	         brace, which the scanner pops automatically
//
// The parser drives the tag transitions (it knows whether a '<' is a
// comparison or a tag); brace transitions inside children are handled
// here so that parser lookahead can never pre-scan child text in the
// wrong mode.
const (
	jsxTag = iota
	jsxChildren
	jsxExpr
)

type jsxMode struct {
	kind int
	base int // bracket depth that closes a jsxExpr
}

// BeginJSXTag enters tag mode after the parser consumed a '<' that
// starts an element. Must not be called with pending lookahead.
func (lx *Lexer) BeginJSXTag() {
	if lx.Buffered() {
		panic("lexer: JSX mode switch with buffered lookahead")
	}
	lx.jsx = append(lx.jsx, jsxMode{kind: jsxTag})
}

// TagToChildren switches from an opening tag to its inline children
// after the parser consumed the '>'.
func (lx *Lexer) TagToChildren() {
	if lx.Buffered() {
		panic("lexer: JSX mode switch with buffered lookahead")
	}
	lx.jsx[len(lx.jsx)-1] = jsxMode{kind: jsxChildren}
}

// ChildrenToCloseTag switches to scanning a '</name>' closing tag
// after the parser consumed the '</'.
func (lx *Lexer) ChildrenToCloseTag() {
	if lx.Buffered() {
		panic("lexer: JSX mode switch with buffered lookahead")
	}
	lx.jsx[len(lx.jsx)-1] = jsxMode{kind: jsxTag}
}

// TagEnd leaves the current JSX level: after '/>', after the '>' of a
// closing tag, or after an opening tag whose children are indented.
func (lx *Lexer) TagEnd() {
	if lx.Buffered() {
		panic("lexer: JSX mode switch with buffered lookahead")
	}
	if len(lx.jsx) > 0 {
		lx.jsx = lx.jsx[:len(lx.jsx)-1]
	}
}

func (lx *Lexer) jsxTop() (jsxMode, bool) {
	if len(lx.jsx) == 0 {
		return jsxMode{}, false
	}
	return lx.jsx[len(lx.jsx)-1], true
}

func (lx *Lexer) inJSXTag() bool {
	top, ok := lx.jsxTop()
	return ok && top.kind == jsxTag
}

func (lx *Lexer) inJSXChildren() bool {
	top, ok := lx.jsxTop()
	return ok && top.kind == jsxChildren
}

// scanJSXChild scans one child token in children mode: a tag boundary,
// an interpolation opener, or a raw text run. Whitespace belongs to the
// text, so this path skips trivia collection. A newline stops the text
// run with an empty token; the parser reports the unclosed element.
func (lx *Lexer) scanJSXChild() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}
	start := lx.cursor.Mark()
	switch lx.cursor.Peek() {
	case '<':
		lx.cursor.Bump()
		if lx.cursor.Eat('/') {
			return lx.jsxTok(token.LtSlash, start)
		}
		return lx.jsxTok(token.Lt, start)
	case '{':
		lx.cursor.Bump()
		lx.depth++
		lx.jsx = append(lx.jsx, jsxMode{kind: jsxExpr, base: lx.depth})
		return lx.jsxTok(token.InterpOpen, start)
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '<' || b == '{' || b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.jsxTok(token.JSXText, start)
}

// closesJSXExpr reports whether a '}' at the current depth terminates
// the innermost JSX child expression; if so the mode pops.
func (lx *Lexer) closesJSXExpr() bool {
	top, ok := lx.jsxTop()
	if !ok || top.kind != jsxExpr || lx.depth != top.base {
		return false
	}
	lx.jsx = lx.jsx[:len(lx.jsx)-1]
	return true
}

// AtLineEnd reports whether only blank space remains before the newline
// (or EOF). The parser uses it after an opening tag to pick inline vs.
// indented JSX children.
func (lx *Lexer) AtLineEnd() bool {
	if len(lx.buf) > 0 {
		return false
	}
	for i := uint32(0); ; i++ {
		b := lx.cursor.PeekAt(i)
		switch b {
		case ' ', '\t':
			continue
		case '\n', 0:
			return true
		default:
			return false
		}
	}
}

func (lx *Lexer) jsxTok(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	lx.prev = kind
	return tok
}
