// Package ast defines the parse tree produced by the parser.
//
// The tree keeps every source token it consumed, in grammar order,
// including the leading trivia attached to each token. Printing a node
// is therefore a concatenation of its tokens' trivia and text, and a
// subtree that no transform touched reproduces its source bytes
// exactly. Rewrites replace token text or splice in synthetic tokens
// (empty span) instead of discarding positions, so the source map can
// always be derived from the tokens that remain.
package ast
