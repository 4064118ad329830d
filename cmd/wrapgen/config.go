package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the shape of a batch run's -config file. Grounded on
// original_source's styx/compiler/settings.py's CompilerSettings, expanded
// from its single input/output path pair into one entry per descriptor so
// a single run can emit wrappers for a whole tool suite into one package.
type config struct {
	// Package is the ir.Package name every compiled interface shares.
	Package string `yaml:"package"`
	// OutputDir is the root directory module files are written under,
	// one subdirectory per target.
	OutputDir string `yaml:"output_dir"`
	// Targets selects which of python, typescript, r to emit. Empty
	// means all three.
	Targets []string `yaml:"targets"`
	// Schema is an optional path to a JSON Schema every descriptor is
	// validated against before lowering.
	Schema string `yaml:"schema"`
	// Descriptors lists every Boutiques descriptor file to compile.
	Descriptors []string `yaml:"descriptors"`
}

func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	var c config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if c.Package == "" {
		return config{}, fmt.Errorf("config %q: package is required", path)
	}
	if len(c.Descriptors) == 0 {
		return config{}, fmt.Errorf("config %q: at least one descriptor is required", path)
	}
	if len(c.Targets) == 0 {
		c.Targets = []string{"python", "typescript", "r"}
	}
	return c, nil
}
