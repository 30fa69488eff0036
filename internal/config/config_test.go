package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "veris.toml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("writing veris.toml: %v", err)
	}
}

func TestFindManifest_WalksUpFromNestedDirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[solver]\npath = \"z3\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	path, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if !ok {
		t.Fatal("expected to find veris.toml in an ancestor directory")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found manifest in %s, want %s", filepath.Dir(path), root)
	}
}

func TestFindManifest_NoManifestAnywhere(t *testing.T) {
	_, ok, err := FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if ok {
		t.Error("expected no manifest to be found")
	}
}

func TestLoad_DecodesSolverAndOutputSections(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[solver]\npath = \"cvc5\"\ntimeout = 30\n\n[output]\ncolor = \"off\"\n")
	cfg, err := Load(filepath.Join(dir, "veris.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Solver.Path != "cvc5" || cfg.Solver.Timeout != 30 {
		t.Errorf("Solver = %+v, want path=cvc5 timeout=30", cfg.Solver)
	}
	if cfg.Output.Color != "off" {
		t.Errorf("Output.Color = %q, want off", cfg.Output.Color)
	}
}

func TestMerge_OverrideWinsOverBaseOnlyWhenNonZero(t *testing.T) {
	base := Defaults()
	override := Config{Solver: SolverConfig{Path: "cvc5"}}
	merged := Merge(base, override)
	if merged.Solver.Path != "cvc5" {
		t.Errorf("Solver.Path = %q, want override cvc5", merged.Solver.Path)
	}
	if merged.Solver.Timeout != base.Solver.Timeout {
		t.Errorf("Solver.Timeout = %d, want base default %d unchanged", merged.Solver.Timeout, base.Solver.Timeout)
	}
}
