package lexer

import (
	"github.com/dlclark/regexp2"

	"espresso/internal/diag"
	"espresso/internal/source"
	"espresso/internal/token"
)

// scanRegex scans a '/.../flags' literal. The caller has already decided
// the '/' sits in regex position (the previous token cannot end an
// expression).
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	inClass := false
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedRegex, sp, "unterminated regular expression")
			return token.Token{Kind: token.Regex, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == '[' {
			inClass = true
		}
		if b == ']' {
			inClass = false
		}
		if b == '/' && !inClass {
			break
		}
	}
	flagStart := lx.cursor.Off
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	pattern := string(lx.file.Content[sp.Start+1 : flagStart-1])
	lx.checkRegex(pattern, sp)
	return token.Token{Kind: token.Regex, Span: sp, Text: text}
}

// scanHeregex scans an extended '///.../flags' literal: insignificant
// whitespace and '#' comments are stripped, and the result is re-spelled as
// a plain regex literal.
func (lx *Lexer) scanHeregex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump() // '///'

	var pattern []byte
	inClass := false
	closed := false
	for !lx.cursor.EOF() {
		if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == '/' && b1 == '/' && b2 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		b := lx.cursor.Bump()
		switch {
		case b == '\\':
			// Escapes survive, including '\ ' for a significant space.
			next := lx.cursor.Bump()
			if next == ' ' {
				pattern = append(pattern, ' ')
			} else {
				pattern = append(pattern, '\\', next)
			}
		case b == '[':
			inClass = true
			pattern = append(pattern, b)
		case b == ']':
			inClass = false
			pattern = append(pattern, b)
		case inClass:
			pattern = append(pattern, b)
		case b == ' ' || b == '\t' || b == '\n':
			// insignificant
		case b == '#':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '/':
			pattern = append(pattern, '\\', '/')
		default:
			pattern = append(pattern, b)
		}
	}
	if !closed {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedRegex, sp, "unterminated heregex")
		return token.Token{Kind: token.Regex, Span: sp, Text: "/" + string(pattern) + "/"}
	}

	flagStart := lx.cursor.Off
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	flags := string(lx.file.Content[flagStart:lx.cursor.Off])

	lx.checkRegex(string(pattern), sp)
	return token.Token{Kind: token.Regex, Span: sp, Text: "/" + string(pattern) + "/" + flags}
}

// checkRegex validates the pattern with an ECMAScript-compatible engine.
// Invalid patterns are advisory: the output runtime reports them too, but
// earlier is friendlier.
func (lx *Lexer) checkRegex(pattern string, sp source.Span) {
	if _, err := regexp2.Compile(pattern, regexp2.ECMAScript); err != nil {
		lx.warnLex(diag.WarnBadRegex, sp, "invalid regular expression: "+err.Error())
	}
}
