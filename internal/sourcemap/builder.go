package sourcemap

import "fmt"

// Entry is one recorded correspondence on a generated line. Entries
// are stored with absolute positions; the delta encoding is produced
// on demand. A bare entry (Mapped false) only advances the generated
// column.
type Entry struct {
	GenCol  uint32
	Mapped  bool
	File    int32
	SrcLine uint32 // 0-based
	SrcCol  uint32 // 0-based
}

// Builder accumulates emitter-reported correspondences, one bucket per
// generated line. Within a line the generated column must never move
// backwards; the emitter only appends text, so a regression is a
// programmer error and aborts.
type Builder struct {
	lines   [][]Entry
	curLine int
	lastCol uint32
}

func NewBuilder() *Builder {
	return &Builder{lines: [][]Entry{nil}}
}

// AddMapping records that generated (genLine, genCol) corresponds to
// source (srcLine, srcCol) in the given source file. Lines and columns
// are 0-based.
func (b *Builder) AddMapping(genLine int, genCol uint32, file int32, srcLine, srcCol uint32) {
	b.push(genLine, Entry{GenCol: genCol, Mapped: true, File: file, SrcLine: srcLine, SrcCol: srcCol})
}

// AddAdvance records a bare column advance with no source correlation.
func (b *Builder) AddAdvance(genLine int, genCol uint32) {
	b.push(genLine, Entry{GenCol: genCol})
}

func (b *Builder) push(genLine int, e Entry) {
	if genLine < b.curLine {
		panic(fmt.Sprintf("sourcemap: generated line moved backwards (%d after %d)", genLine, b.curLine))
	}
	for len(b.lines) <= genLine {
		b.lines = append(b.lines, nil)
	}
	if genLine == b.curLine {
		if e.GenCol < b.lastCol {
			panic(fmt.Sprintf("sourcemap: generated column regressed (%d after %d on line %d)",
				e.GenCol, b.lastCol, genLine))
		}
	} else {
		b.curLine = genLine
		b.lastCol = 0
	}
	b.lastCol = e.GenCol
	b.lines[genLine] = append(b.lines[genLine], e)
}

// Lines returns the absolute entry buckets, one per generated line.
func (b *Builder) Lines() [][]Entry { return b.lines }

// Segment is one delta record: length 1 is a bare generated-column
// advance, length 4 is (generated-column delta, file-index delta,
// source-line delta, source-column delta), each relative to the
// previous entry on the same generated line (file/line/column deltas
// are relative to the previous mapped entry anywhere in the map).
type Segment []int32

// DeltaLines converts the absolute entries into per-line delta records.
func (b *Builder) DeltaLines() [][]Segment {
	out := make([][]Segment, len(b.lines))
	var prevFile, prevSrcLine, prevSrcCol int32
	for i, line := range b.lines {
		var prevCol int32
		segs := make([]Segment, 0, len(line))
		for _, e := range line {
			col := int32(e.GenCol)
			if !e.Mapped {
				segs = append(segs, Segment{col - prevCol})
				prevCol = col
				continue
			}
			segs = append(segs, Segment{
				col - prevCol,
				e.File - prevFile,
				int32(e.SrcLine) - prevSrcLine,
				int32(e.SrcCol) - prevSrcCol,
			})
			prevCol = col
			prevFile = e.File
			prevSrcLine = int32(e.SrcLine)
			prevSrcCol = int32(e.SrcCol)
		}
		out[i] = segs
	}
	return out
}
