package driver

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/dialect"
	"espresso/internal/directive"
	"espresso/internal/lexer"
	"espresso/internal/parser"
	"espresso/internal/source"
	"espresso/internal/token"
)

// Frontend bundles what the debug commands need from a partial run of
// the pipeline.
type Frontend struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Dialect dialect.Dialect
	Bag     *diag.Bag
}

func frontend(in Input) (*Frontend, *lexer.Lexer) {
	maxDiags := in.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiags)
	rep := diag.BagReporter{Bag: bag}

	fs := source.NewFileSet()
	id := fs.Add(in.Path, in.Content, 0)

	base := dialect.Default()
	if in.Base != nil {
		base = *in.Base
	}
	dir := directive.ResolveFrom(fs.Get(id), base, rep)

	lx := lexer.New(fs.Get(id), lexer.Options{
		Dialect:  dir.Dialect,
		Reporter: rep,
		Skip:     source.Span{File: id, Start: dir.Start, End: dir.End},
	})
	return &Frontend{FileSet: fs, FileID: id, Dialect: dir.Dialect, Bag: bag}, lx
}

// Tokenize scans one file to completion and returns the raw stream,
// layout tokens included.
func Tokenize(in Input) (*Frontend, []token.Token) {
	fe, lx := frontend(in)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return fe, toks
}

// Parse scans and parses one file without transforming it.
func Parse(in Input) (*Frontend, *ast.File) {
	fe, lx := frontend(in)
	res := parser.ParseFile(lx, parser.Options{Dialect: fe.Dialect, Reporter: diag.BagReporter{Bag: fe.Bag}})
	return fe, res.File
}
