// Package diag carries diagnostics produced by the compilation pipeline.
//
// Taxonomy: Lex* codes are fatal for the file (scanning stops), Syn* codes
// are recoverable (the parser resynchronizes and keeps collecting), Warn*
// codes are advisory and never fail a compile. Emitter and source-map
// internal invariant violations are NOT diagnostics; they panic, because
// they indicate a defect in the compiler itself.
package diag
