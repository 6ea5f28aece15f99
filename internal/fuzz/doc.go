// Package fuzztests houses Go fuzz harnesses that exercise the espresso
// frontend (source -> lexer -> parser). Its goal is to smoke test
// robustness and guard against panics or hangs on arbitrary inputs.
package fuzztests
