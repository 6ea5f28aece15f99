// Package driver runs the compilation pipeline end to end: directive
// resolution, scanning, parsing, the desugaring passes and emission,
// for one file or for a whole directory in parallel.
package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"espresso/internal/diag"
	"espresso/internal/dialect"
	"espresso/internal/directive"
	"espresso/internal/emit"
	"espresso/internal/lexer"
	"espresso/internal/observ"
	"espresso/internal/parser"
	"espresso/internal/project"
	"espresso/internal/source"
	"espresso/internal/sourcemap"
	"espresso/internal/transform"
)

// DefaultMaxDiagnostics caps the bag when the caller does not.
const DefaultMaxDiagnostics = 100

// Input describes one compilation. Content is the raw file bytes;
// normalization (BOM, CRLF) happens inside the file set.
type Input struct {
	Path    string
	Content []byte

	// Base is the dialect the prologue directive resolves over,
	// typically the project manifest's defaults. Nil means built-in
	// defaults.
	Base *dialect.Dialect

	// MaxDiagnostics caps the diagnostic bag; 0 applies the default.
	MaxDiagnostics int

	// SourceMap requests a JSON v3 source map alongside the code.
	SourceMap bool

	// Timer, when set, records per-phase durations.
	Timer *observ.Timer
}

// CompileResult is everything one compilation produced. Compile never
// shares state between calls: identical Input yields byte-identical
// Code and SourceMap.
type CompileResult struct {
	Path      string
	Code      string
	SourceMap []byte
	Bag       *diag.Bag
	Dialect   dialect.Dialect

	// FileSet resolves diagnostic spans back to line and column.
	FileSet *source.FileSet

	// Map is the in-memory mapping used for position lookups; the
	// serialized form is SourceMap.
	Map *sourcemap.Builder

	// Failed reports a fatal scan or at least one error diagnostic.
	// Code is still populated on a best-effort basis.
	Failed bool
}

// Compile runs the whole pipeline over one input.
func Compile(in Input) *CompileResult {
	maxDiags := in.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiags)
	rep := diag.BagReporter{Bag: bag}

	fs := source.NewFileSet()
	id := fs.Add(in.Path, in.Content, 0)
	file := fs.Get(id)

	phase := func(name string) func(string) {
		if in.Timer == nil {
			return func(string) {}
		}
		return in.Timer.Phase(name)
	}

	base := dialect.Default()
	if in.Base != nil {
		base = *in.Base
	}
	dir := directive.ResolveFrom(file, base, rep)
	d := dir.Dialect

	stop := phase("parse")
	lx := lexer.New(file, lexer.Options{
		Dialect:  d,
		Reporter: rep,
		Skip:     source.Span{File: id, Start: dir.Start, End: dir.End},
	})
	res := parser.ParseFile(lx, parser.Options{Dialect: d, Reporter: rep})
	stop(fmt.Sprintf("%d statements", len(res.File.Stmts)))

	stop = phase("transform")
	transform.Apply(res.File, d, rep)
	stop("")

	stop = phase("emit")
	out := emit.File(fs, res.File)
	stop(fmt.Sprintf("%d bytes", len(out.Code)))

	result := &CompileResult{
		Path:    in.Path,
		Code:    out.Code,
		Bag:     bag,
		Dialect: d,
		FileSet: fs,
		Map:     out.Map,
		Failed:  res.Fatal || bag.HasErrors(),
	}

	if in.SourceMap && !result.Failed {
		stop = phase("sourcemap")
		mapJSON, err := out.Map.EncodeJSON(
			OutputName(in.Path),
			[]string{filepath.Base(in.Path)},
			[]string{string(file.Content)},
		)
		if err == nil {
			result.SourceMap = mapJSON
		}
		stop("")
	}
	return result
}

// sourceExts maps input extensions to their output spellings, longest
// match first, mirroring the import specifier rewrite.
var sourceExts = [...][2]string{
	{".mesp", ".mjs"},
	{".cesp", ".cjs"},
	{".esp", ".js"},
}

// IsSourcePath reports whether path names a compilable source file.
func IsSourcePath(path string) bool {
	for _, pair := range sourceExts {
		if strings.HasSuffix(path, pair[0]) {
			return true
		}
	}
	return false
}

// OutputName maps an input path to its generated file name.
func OutputName(path string) string {
	for _, pair := range sourceExts {
		if strings.HasSuffix(path, pair[0]) {
			return strings.TrimSuffix(path, pair[0]) + pair[1]
		}
	}
	return path + ".js"
}

// ContentKey derives the cache key for one compilation: content plus
// every dialect flag that can change the output, plus the cache schema.
func ContentKey(content []byte, d dialect.Dialect) project.Digest {
	flags := fmt.Sprintf("schema=%d tab=%d cc=%t ci=%t ceq=%t av=%t jsx=%t",
		diskCacheSchemaVersion,
		d.TabWidth, d.CoffeeComment, d.CoffeeInterpolation,
		d.CoffeeEq, d.AutoVar, d.JSX)
	return project.Combine(project.HashBytes(content), project.HashBytes([]byte(flags)))
}
