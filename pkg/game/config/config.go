// Package config loads maze run settings from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
)

// File is the content of a run configuration file
type File struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"` // 0 picks a random seed
	// Constraints are [x, y] pairs that must end up carved
	Constraints [][]int          `yaml:"constraints"`
	Generator   generator.Config `yaml:"generator"`
}

// Default returns a File holding the stock generator settings and no size
func Default() File {
	return File{Generator: generator.DefaultConfig()}
}

// Load reads path over the defaults
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}

// ConstraintSet converts the [x, y] pairs into positions
func (f File) ConstraintSet() (world.PositionSet, error) {
	set := world.NewPositionSet()
	for i, pair := range f.Constraints {
		if len(pair) != 2 {
			return set, fmt.Errorf("constraint %d: want [x, y], got %v", i, pair)
		}
		set.Put(world.Position{X: pair[0], Y: pair[1]})
	}
	return set, nil
}
