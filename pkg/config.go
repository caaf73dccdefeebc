package bumpver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// targetsFile mirrors the YAML shape of a targets override file:
//
//	targets:
//	  - path: Cargo.toml
//	    shape: manifest
//	  - path: casr/src/bin/casr-san.rs
//	    shape: source
type targetsFile struct {
	Targets []targetEntry `yaml:"targets"`
}

type targetEntry struct {
	Path  string `yaml:"path"`
	Shape string `yaml:"shape"`
}

// LoadTargets reads a YAML targets file and returns the target list in file
// order. Every entry needs a path and a known shape name, and an empty list
// is an error.
func LoadTargets(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading targets file: %w", err)
	}

	var tf targetsFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing targets file %s: %w", path, err)
	}
	if len(tf.Targets) == 0 {
		return nil, fmt.Errorf("targets file %s lists no targets", path)
	}

	targets := make([]Target, 0, len(tf.Targets))
	for i, entry := range tf.Targets {
		if entry.Path == "" {
			return nil, fmt.Errorf("targets file %s: entry %d has no path", path, i+1)
		}
		shape, err := ParseShape(entry.Shape)
		if err != nil {
			return nil, fmt.Errorf("targets file %s: entry %d: %w", path, i+1, err)
		}
		targets = append(targets, Target{Path: entry.Path, Shape: shape})
	}
	return targets, nil
}
