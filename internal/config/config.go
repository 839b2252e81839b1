package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Options is the evaluator.yaml configuration.
type Options struct {
	// MaxDepth limits the nesting depth of a single evaluation.
	// Defaults to DefaultMaxDepth when omitted or zero.
	MaxDepth int `yaml:"max_depth,omitempty"`

	// Concurrency bounds how many trees a batch evaluates at once.
	// Zero means GOMAXPROCS.
	Concurrency int `yaml:"concurrency,omitempty"`

	// Trace enables warning logs for failed evaluations.
	Trace bool `yaml:"trace,omitempty"`
}

// Default returns the options used when no config file exists.
func Default() *Options {
	return &Options{MaxDepth: DefaultMaxDepth, Concurrency: DefaultConcurrency}
}

// Load reads and validates an options file.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses evaluator.yaml content from bytes.
// The path argument is used only for error messages.
func Parse(data []byte, path string) (*Options, error) {
	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := opts.validate(path); err != nil {
		return nil, err
	}
	opts.setDefaults()
	return &opts, nil
}

// Find searches for evaluator.yaml starting from dir and walking up to
// parent directories. It returns "" and a nil error when none exists.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadOrDefault finds the nearest evaluator.yaml above dir and loads it,
// falling back to Default.
func LoadOrDefault(dir string) (*Options, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (o *Options) validate(path string) error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("%s: max_depth must not be negative, got %d", path, o.MaxDepth)
	}
	if o.MaxDepth > MaxAllowedDepth {
		return fmt.Errorf("%s: max_depth %d exceeds the limit of %d", path, o.MaxDepth, MaxAllowedDepth)
	}
	if o.Concurrency < 0 {
		return fmt.Errorf("%s: concurrency must not be negative, got %d", path, o.Concurrency)
	}
	return nil
}

func (o *Options) setDefaults() {
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
}
