// Package config resolves the settings of a generation run from defaults, an
// optional YAML file, U01GEN_* environment variables and positional arguments.
package config

import "fmt"

// Format selects how sampled values are rendered as text.
type Format string

const (
	// FormatShortest writes the shortest decimal that round-trips to the same float64.
	FormatShortest Format = "shortest"
	// FormatFixed writes every value with Precision digits after the point.
	FormatFixed Format = "fixed"
)

// Defaults for a bare invocation.
const (
	DefaultOutputPath = "go_u01.txt"
	DefaultCount      = 1_000_000
	DefaultSeed       = int64(123456789)
	DefaultPrecision  = 17
	DefaultLang       = "en"
)

// Config holds everything needed for one generation run.
type Config struct {
	OutputPath string `yaml:"output_path" env:"U01GEN_OUTPUT"`
	Count      int    `yaml:"count" env:"U01GEN_COUNT"`
	Seed       int64  `yaml:"seed" env:"U01GEN_SEED"`
	Format     Format `yaml:"format" env:"U01GEN_FORMAT"`
	Precision  int    `yaml:"precision" env:"U01GEN_PRECISION"`
	Lang       string `yaml:"lang" env:"U01GEN_LANG"`
	Verbose    bool   `yaml:"verbose" env:"U01GEN_VERBOSE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		Count:      DefaultCount,
		Seed:       DefaultSeed,
		Format:     FormatShortest,
		Precision:  DefaultPrecision,
		Lang:       DefaultLang,
	}
}

// SupportedLangs lists the languages the summary line is translated into.
var SupportedLangs = []string{"en", "es"}

// Validate checks the invariants of a resolved configuration. Every failure is
// an *ArgumentFormatError so callers can treat it like a malformed argument.
func Validate(cfg *Config) error {
	if cfg.OutputPath == "" {
		return &ArgumentFormatError{Arg: "output path", Value: cfg.OutputPath, Err: fmt.Errorf("must not be empty")}
	}
	if cfg.Count < 0 {
		return &ArgumentFormatError{Arg: "count", Value: fmt.Sprint(cfg.Count), Err: ErrNegativeCount}
	}
	switch cfg.Format {
	case FormatShortest:
	case FormatFixed:
		if cfg.Precision < 1 || cfg.Precision > 17 {
			return &ArgumentFormatError{Arg: "precision", Value: fmt.Sprint(cfg.Precision), Err: fmt.Errorf("must be between 1 and 17")}
		}
	default:
		return &ArgumentFormatError{Arg: "format", Value: string(cfg.Format), Err: fmt.Errorf("must be %q or %q", FormatShortest, FormatFixed)}
	}
	for _, l := range SupportedLangs {
		if cfg.Lang == l {
			return nil
		}
	}
	return &ArgumentFormatError{Arg: "lang", Value: cfg.Lang, Err: fmt.Errorf("supported languages are %v", SupportedLangs)}
}
