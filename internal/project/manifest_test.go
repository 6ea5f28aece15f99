package project

import (
	"os"
	"path/filepath"
	"testing"

	"espresso/internal/dialect"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "[package]\nname = \"demo\"\n")

	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatalf("manifest not found from nested dir")
	}
	if got != want {
		t.Errorf("Find = %q, want %q", got, want)
	}
}

func TestLoadNearestWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	m, err := LoadNearest(dir)
	if err != nil {
		t.Fatalf("LoadNearest: %v", err)
	}
	if m.Package.Name != "" {
		t.Errorf("zero manifest expected, got package %q", m.Package.Name)
	}
	if !m.WantSourceMaps() {
		t.Errorf("source maps should default on")
	}
	if m.SrcDir() != dir {
		t.Errorf("SrcDir = %q, want %q", m.SrcDir(), dir)
	}
}

func TestLoadAndApplyDialect(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "demo"

[build]
src = "src"
out = "dist"
jobs = 2
source-maps = false

[dialect]
tab = 4
coffee-compat = true
coffee-eq = false
auto-var = true
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name = %q, want demo", m.Package.Name)
	}
	if m.SrcDir() != filepath.Join(dir, "src") {
		t.Errorf("SrcDir = %q", m.SrcDir())
	}
	if m.OutDir() != filepath.Join(dir, "dist") {
		t.Errorf("OutDir = %q", m.OutDir())
	}
	if m.WantSourceMaps() {
		t.Errorf("source maps should be off")
	}

	d := m.ApplyDialect(dialect.Default())
	if d.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", d.TabWidth)
	}
	if !d.CoffeeComment || !d.CoffeeInterpolation {
		t.Errorf("coffee-compat umbrella should enable comment and interpolation flags")
	}
	if d.CoffeeEq {
		t.Errorf("the specific coffee-eq flag should override the umbrella")
	}
	if !d.AutoVar {
		t.Errorf("auto-var should be enabled")
	}
	if !d.JSX {
		t.Errorf("jsx default should survive when unset")
	}
}

func TestCombineOrderMatters(t *testing.T) {
	a := HashBytes([]byte("a"))
	b := HashBytes([]byte("b"))
	if Combine(a, b) == Combine(b, a) {
		t.Fatalf("aggregate hash must depend on order")
	}
	if Combine(a) == a {
		t.Fatalf("aggregate of one digest still rehashes")
	}
}
