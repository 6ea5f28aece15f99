// Package project locates and parses espresso.toml, the optional
// per-project manifest. Manifest values set project-wide defaults; a
// file's prologue directive always wins over them.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"espresso/internal/dialect"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "espresso.toml"

// Manifest is a parsed espresso.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Build   BuildSection   `toml:"build"`
	Dialect DialectSection `toml:"dialect"`

	// Dir is the directory the manifest was read from.
	Dir string `toml:"-"`
}

// PackageSection names the project.
type PackageSection struct {
	Name string `toml:"name"`
}

// BuildSection configures the build command's defaults.
type BuildSection struct {
	// Src is the source directory, relative to the manifest. Defaults
	// to the manifest's own directory.
	Src string `toml:"src"`
	// Out is the output directory. Defaults to the source directory
	// (outputs land next to their inputs).
	Out string `toml:"out"`
	// Jobs caps build parallelism; 0 means one worker per CPU.
	Jobs int `toml:"jobs"`
	// SourceMaps controls whether .map files are written.
	SourceMaps *bool `toml:"source-maps"`
}

// DialectSection holds project-wide dialect defaults. Pointer fields
// distinguish "not set" from an explicit false.
type DialectSection struct {
	Tab                 int   `toml:"tab"`
	CoffeeCompat        *bool `toml:"coffee-compat"`
	CoffeeComment       *bool `toml:"coffee-comment"`
	CoffeeInterpolation *bool `toml:"coffee-interpolation"`
	CoffeeEq            *bool `toml:"coffee-eq"`
	AutoVar             *bool `toml:"auto-var"`
	JSX                 *bool `toml:"jsx"`
}

// ErrNoManifest reports that no espresso.toml was found walking up from
// the start directory.
var ErrNoManifest = errors.New("no " + ManifestName + " found")

// Find walks up from startDir to locate espresso.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// LoadNearest finds and parses the manifest governing startDir. A
// missing manifest is not an error: the zero manifest applies.
func LoadNearest(startDir string) (*Manifest, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Manifest{Dir: startDir}, nil
	}
	return Load(path)
}

// SrcDir resolves the configured source directory against the manifest
// location.
func (m *Manifest) SrcDir() string {
	if m.Build.Src == "" {
		return m.Dir
	}
	return filepath.Join(m.Dir, m.Build.Src)
}

// OutDir resolves the configured output directory. Empty means outputs
// are written next to their inputs.
func (m *Manifest) OutDir() string {
	if m.Build.Out == "" {
		return ""
	}
	return filepath.Join(m.Dir, m.Build.Out)
}

// WantSourceMaps reports whether .map files should be written.
func (m *Manifest) WantSourceMaps() bool {
	if m.Build.SourceMaps == nil {
		return true
	}
	return *m.Build.SourceMaps
}

// ApplyDialect layers the manifest's dialect defaults over d. The
// umbrella flag is applied first so the specific flags can refine it,
// mirroring how the prologue directive resolves.
func (m *Manifest) ApplyDialect(d dialect.Dialect) dialect.Dialect {
	if m.Dialect.Tab > 0 {
		d.TabWidth = m.Dialect.Tab
	}
	if m.Dialect.CoffeeCompat != nil {
		d = d.WithCoffeeCompat(*m.Dialect.CoffeeCompat)
	}
	if m.Dialect.CoffeeComment != nil {
		d.CoffeeComment = *m.Dialect.CoffeeComment
	}
	if m.Dialect.CoffeeInterpolation != nil {
		d.CoffeeInterpolation = *m.Dialect.CoffeeInterpolation
	}
	if m.Dialect.CoffeeEq != nil {
		d.CoffeeEq = *m.Dialect.CoffeeEq
	}
	if m.Dialect.AutoVar != nil {
		d.AutoVar = *m.Dialect.AutoVar
	}
	if m.Dialect.JSX != nil {
		d.JSX = *m.Dialect.JSX
	}
	return d
}
