package sourcemap

import (
	"encoding/json"
)

// Map is the standard version 3 JSON source map document.
type Map struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// EncodeJSON renders the accumulated mappings as a version 3 source
// map. Sources lists the input paths in file-index order.
func (b *Builder) EncodeJSON(file string, sources, contents []string) ([]byte, error) {
	m := Map{
		Version:        3,
		File:           file,
		Sources:        sources,
		SourcesContent: contents,
		Names:          []string{},
		Mappings:       b.mappings(),
	}
	return json.Marshal(&m)
}

func (b *Builder) mappings() string {
	var out []byte
	for i, line := range b.DeltaLines() {
		if i > 0 {
			out = append(out, ';')
		}
		for j, seg := range line {
			if j > 0 {
				out = append(out, ',')
			}
			for _, v := range seg {
				out = appendVLQ(out, v)
			}
		}
	}
	return string(out)
}

// DecodeMappings parses a mappings string back into per-line segments.
// It is the inverse of the encoder for well-formed input and tolerates
// malformed runs by ending the affected line early.
func DecodeMappings(s string) [][]Segment {
	var lines [][]Segment
	var line []Segment
	i := 0
	for i <= len(s) {
		if i == len(s) || s[i] == ';' {
			lines = append(lines, line)
			line = nil
			i++
			continue
		}
		if s[i] == ',' {
			i++
			continue
		}
		var seg Segment
		for len(seg) < 4 && i < len(s) && s[i] != ',' && s[i] != ';' {
			v, next := decodeVLQ(s, i)
			if next == i {
				return lines
			}
			seg = append(seg, v)
			i = next
		}
		line = append(line, seg)
	}
	return lines
}
