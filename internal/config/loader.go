package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Loader builds a Config from the layered sources: built-in defaults, an
// optional YAML file and U01GEN_* environment variables. Flags and positional
// arguments are applied afterwards by the command line.
type Loader struct {
	// Environment overrides the process environment when non-nil.
	Environment map[string]string
}

// NewLoader creates a loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the defaults overlaid with filename (skipped when empty) and
// the environment.
func (l *Loader) Load(filename string) (*Config, error) {
	cfg := Default()
	if filename != "" {
		if err := l.LoadFromFile(filename, &cfg); err != nil {
			return nil, err
		}
	}
	if err := l.ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile overlays the YAML document in filename onto cfg. Keys missing
// from the file keep their current values.
func (l *Loader) LoadFromFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// ApplyEnv overlays U01GEN_* variables onto cfg. Unset variables are ignored;
// a malformed value is reported as an *ArgumentFormatError.
func (l *Loader) ApplyEnv(cfg *Config) error {
	opts := env.Options{}
	if l.Environment != nil {
		opts.Environment = l.Environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return &ArgumentFormatError{Arg: "environment", Value: "U01GEN_*", Err: err}
	}
	return nil
}
