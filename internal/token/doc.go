// Package token defines lexical token kinds and trivia for the espresso
// compiler.
// Invariants:
//   - Token.Span locates the token in the original source; synthetic tokens
//     created by the parser or a transform have an empty span.
//   - Token.Text is the OUTPUT spelling. For untouched tokens it is exactly
//     the source text under Span; rewrites keep the span (for the source
//     map) and change only the text.
//   - Indentation structure surfaces as synthetic Newline/Indent/Dedent
//     tokens; the physical whitespace lives in leading Trivia so the
//     emitter can reproduce the original layout.
//   - The prologue directive is consumed before scanning and never appears
//     in the token stream.
package token
