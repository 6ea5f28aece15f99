package lexer

import (
	"espresso/internal/diag"
	"espresso/internal/token"
)

// scanString scans the opening fragment of a string literal. Plain strings
// come out as one Str token with verbatim text. Interpolated and
// triple-quoted strings become template literals: TemplateOpen, expression
// tokens, InterpClose, (TemplateMid, ...)* and finally TemplateClose.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	triple := false
	if lx.cursor.Peek() == quote && lx.cursor.PeekAt(1) == quote {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	}
	st := strState{quote: quote, triple: triple}
	return lx.scanFragment(st, true, start)
}

// scanStringContinue resumes a string after an interpolation closed.
func (lx *Lexer) scanStringContinue(st strState) token.Token {
	start := lx.cursor.Mark()
	return lx.scanFragment(st, false, start)
}

func (lx *Lexer) scanFragment(st strState, opening bool, start Mark) token.Token {
	interpolates := st.quote != '\''
	hashInterp := lx.opts.Dialect.CoffeeInterpolation && st.quote == '"'

	var body []byte
	closed := false
	hitInterp := false

	for {
		if lx.cursor.EOF() || (!st.triple && lx.cursor.Peek() == '\n') {
			lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal")
			break
		}
		b := lx.cursor.Peek()

		if b == '\\' {
			body = append(body, lx.cursor.Bump())
			if !lx.cursor.EOF() {
				body = append(body, lx.cursor.Bump())
			}
			continue
		}
		if b == st.quote {
			if !st.triple {
				lx.cursor.Bump()
				closed = true
				break
			}
			if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == st.quote && b1 == st.quote && b2 == st.quote {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			body = append(body, lx.cursor.Bump())
			continue
		}
		if interpolates && b == '$' && lx.cursor.PeekAt(1) == '{' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			hitInterp = true
			break
		}
		if hashInterp && b == '#' && lx.cursor.PeekAt(1) == '{' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			hitInterp = true
			break
		}
		body = append(body, lx.cursor.Bump())
	}

	sp := lx.cursor.SpanFrom(start)
	source := string(lx.file.Content[sp.Start:sp.End])

	if hitInterp {
		st.baseDepth = lx.depth
		lx.strStack = append(lx.strStack, st)
		kind := token.TemplateMid
		out := templateEscape(body) + "${"
		if opening {
			kind = token.TemplateOpen
			out = "`" + out
		}
		tok := token.Token{Kind: kind, Span: sp, Text: out}
		tok.Flags |= token.FlagInterpFragment
		return tok
	}

	if opening {
		// A plain single-line string is already valid output; everything
		// else (triple quotes) re-spells as a template literal.
		if !st.triple && closed {
			return token.Token{Kind: token.Str, Span: sp, Text: source}
		}
		return token.Token{Kind: token.Str, Span: sp, Text: "`" + templateEscape(body) + "`"}
	}
	return token.Token{Kind: token.TemplateClose, Span: sp, Text: templateEscape(body) + "`"}
}

// templateEscape makes a literal fragment safe inside backticks: unescaped
// '`' and '${' are escaped; existing escape sequences pass through.
func templateEscape(body []byte) string {
	out := make([]byte, 0, len(body)+4)
	for i := 0; i < len(body); i++ {
		b := body[i]
		if b == '\\' {
			out = append(out, b)
			if i+1 < len(body) {
				i++
				out = append(out, body[i])
			}
			continue
		}
		if b == '`' {
			out = append(out, '\\', '`')
			continue
		}
		if b == '$' && i+1 < len(body) && body[i+1] == '{' {
			out = append(out, '\\', '$', '{')
			i++
			continue
		}
		out = append(out, b)
	}
	return string(out)
}
