package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration loaded from minctl.yaml.
type Config struct {
	Locale   string      `yaml:"locale"    json:"locale"`
	LogDir   string      `yaml:"log_dir"   json:"log_dir"`
	LogLevel string      `yaml:"log_level" json:"log_level"`
	Bench    BenchConfig `yaml:"bench"     json:"bench"`
}

// BenchConfig holds the knobs of the bench command.
type BenchConfig struct {
	MinSize    int      `yaml:"min_size"   json:"min_size"`
	MaxSize    int      `yaml:"max_size"   json:"max_size"`
	StepShift  int      `yaml:"step_shift" json:"step_shift"`
	Iterations int      `yaml:"iterations" json:"iterations"`
	Seed       uint64   `yaml:"seed"       json:"seed"`
	Algorithms []string `yaml:"algorithms" json:"algorithms"`
}

const maxStepShift = 20

func defaultConfig() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

// applyDefaults fills zero/empty fields with sensible defaults.
func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Bench.MinSize == 0 {
		c.Bench.MinSize = 16
	}
	if c.Bench.MaxSize == 0 {
		c.Bench.MaxSize = 16 << 20
	}
	if c.Bench.StepShift == 0 {
		c.Bench.StepShift = 4
	}
	if c.Bench.Iterations == 0 {
		c.Bench.Iterations = 10
	}
	if c.Bench.Seed == 0 {
		c.Bench.Seed = 1
	}
	if len(c.Bench.Algorithms) == 0 {
		c.Bench.Algorithms = slices.Clone(pairAlgorithms)
	}
}

// validate rejects bench settings the bench command cannot run with.
func (b *BenchConfig) validate() error {
	switch {
	case b.MinSize < 2:
		return fmt.Errorf("bench: min_size must be >= 2, got %d", b.MinSize)
	case b.MaxSize < b.MinSize:
		return fmt.Errorf("bench: max_size %d is below min_size %d", b.MaxSize, b.MinSize)
	case b.StepShift < 1 || b.StepShift > maxStepShift:
		return fmt.Errorf("bench: step_shift must be in [1, %d], got %d", maxStepShift, b.StepShift)
	case b.Iterations < 1:
		return fmt.Errorf("bench: iterations must be >= 1, got %d", b.Iterations)
	}
	for _, name := range b.Algorithms {
		if !slices.Contains(pairAlgorithms, name) {
			return fmt.Errorf("bench: unknown algorithm %q (want one of %v)", name, pairAlgorithms)
		}
	}
	return nil
}

// loadConfig reads and parses the YAML config file at path.
// If the file does not exist, loadConfig returns the default Config.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	var c Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	c.applyDefaults()
	if err := c.Bench.validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return &c, nil
}
