package sourcemap

// Pos is a 0-based line/column pair in either coordinate space.
type Pos struct {
	Line uint32
	Col  uint32
}

// Backward maps a generated position to the source position of the
// last mapped entry on that line whose column does not exceed the
// query, adjusted by the residual column offset. Lines without any
// mapped entry return the query position unchanged; lookups never
// fail.
func (b *Builder) Backward(gen Pos) Pos {
	if int(gen.Line) >= len(b.lines) {
		return gen
	}
	var best *Entry
	for i := range b.lines[gen.Line] {
		e := &b.lines[gen.Line][i]
		if !e.Mapped || e.GenCol > gen.Col {
			continue
		}
		best = e
	}
	if best == nil {
		return gen
	}
	return Pos{Line: best.SrcLine, Col: best.SrcCol + (gen.Col - best.GenCol)}
}

// Forward maps a source position to a generated position: it finds the
// mapped entry whose source position is the closest one not after the
// query (same or earlier source line, never overshooting) and adjusts
// by the residual column offset when the match is on the query's line.
// The boolean is false when no entry precedes the query; the caller
// falls back to an unmapped position.
func (b *Builder) Forward(src Pos) (Pos, bool) {
	var best *Entry
	bestLine := -1
	for line := range b.lines {
		for i := range b.lines[line] {
			e := &b.lines[line][i]
			if !e.Mapped {
				continue
			}
			if e.SrcLine > src.Line || (e.SrcLine == src.Line && e.SrcCol > src.Col) {
				continue
			}
			if best == nil || e.SrcLine > best.SrcLine ||
				(e.SrcLine == best.SrcLine && e.SrcCol >= best.SrcCol) {
				best = e
				bestLine = line
			}
		}
	}
	if best == nil {
		return Pos{}, false
	}
	out := Pos{Line: uint32(bestLine), Col: best.GenCol}
	if best.SrcLine == src.Line {
		out.Col += src.Col - best.SrcCol
	}
	return out, true
}
