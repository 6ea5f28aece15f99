// Package testkit holds shared checks used by tests across the
// frontend packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"espresso/internal/ast"
	"espresso/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed
// file:
// 1) every statement span stays within the file content bounds
// 2) statement spans point at the file they were parsed from
// 3) the file span covers the union of statement spans
//
// Statements assembled entirely by the desugaring passes carry empty
// spans and are skipped; the checks apply to parser output.
func CheckSpanInvariants(f *ast.File, sf *source.File) error {
	if f == nil || sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var union source.Span
	var haveStmt bool
	for i, s := range f.Stmts {
		sp := s.Span()
		if sp.Empty() {
			continue
		}
		if sp.End < sp.Start {
			return fmt.Errorf("stmt %d: inverted span %v", i, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("stmt %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("stmt %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if !haveStmt {
			union = sp
			haveStmt = true
		} else {
			union = union.Cover(sp)
		}
	}

	if haveStmt {
		fileSpan := f.Span()
		if union.Start < fileSpan.Start || union.End > fileSpan.End {
			return fmt.Errorf("file span %v does not cover union of statements %v", fileSpan, union)
		}
	}
	return nil
}
