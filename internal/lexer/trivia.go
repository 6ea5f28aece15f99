package lexer

import (
	"espresso/internal/diag"
	"espresso/internal/token"
)

// collectLeadingTrivia gathers the run of whitespace and comments before
// the next significant token into lx.hold.
//   - runs of spaces/tabs coalesce into one TriviaSpace
//   - consecutive newlines coalesce into one TriviaNewline
//   - //... to end of line -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (unterminated: report and cut at EOF)
//   - #... to end of line -> TriviaHashComment (coffeeComment dialect only)
//
// The prologue directive's span is jumped over here so it never becomes a
// token.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		if !lx.opts.Skip.Empty() && lx.cursor.Off == lx.opts.Skip.Start {
			lx.cursor.Off = lx.opts.Skip.End
			continue
		}

		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// spaces/tabs
		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// newlines (coalesce the run)
		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// '#' line comments (dialect); '#' otherwise starts a private name.
		if b == '#' && lx.opts.Dialect.CoffeeComment {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaHashComment,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// scanCommentIntoHold handles '//' and '/* */'. Returns false when the '/'
// begins an operator, regex or heregex instead.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}

	switch b1 {
	case '/':
		// A third slash means heregex, which is a token, not trivia.
		if lx.cursor.PeekAt(2) == '/' {
			return false
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaLineComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true

	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if c0, c1, ok2 := lx.cursor.Peek2(); ok2 && c0 == '*' && c1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			// Cut at EOF; unterminated block comments are fatal.
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaBlockComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}
