// Package config loads the optional veris.toml project file, supplying
// defaults for the solver path, per-file timeout, and color mode that an
// explicit CLI flag overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the decoded shape of veris.toml.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Output OutputConfig `toml:"output"`
}

type SolverConfig struct {
	Path    string `toml:"path"`
	Timeout int    `toml:"timeout"` // seconds; 0 means no default
}

type OutputConfig struct {
	Color string `toml:"color"` // "auto", "on", or "off"
}

// FindManifest walks up from startDir looking for veris.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "veris.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes the veris.toml at path into a Config. Unlike the stricter
// surge.toml loader this is grounded on, every field is optional — a
// verify run with no config file at all must behave identically to one
// with every field defaulted, since a config file is a convenience, not a
// project requirement.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir finds and loads veris.toml starting at dir, returning the
// zero Config with ok=false if none exists anywhere above dir.
func LoadFromDir(dir string) (cfg Config, ok bool, err error) {
	path, found, err := FindManifest(dir)
	if err != nil || !found {
		return Config{}, found, err
	}
	cfg, err = Load(path)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Defaults returns the built-in defaults used when no config file and no
// CLI flag supplies a value.
func Defaults() Config {
	return Config{
		Solver: SolverConfig{Path: "z3", Timeout: 10},
		Output: OutputConfig{Color: "auto"},
	}
}

// Merge layers override on top of base: any non-zero field in override
// wins, otherwise base's value is kept. CLI flags are applied as override
// against the result of config-file-over-Defaults.
func Merge(base, override Config) Config {
	out := base
	if override.Solver.Path != "" {
		out.Solver.Path = override.Solver.Path
	}
	if override.Solver.Timeout != 0 {
		out.Solver.Timeout = override.Solver.Timeout
	}
	if override.Output.Color != "" {
		out.Output.Color = override.Output.Color
	}
	return out
}
