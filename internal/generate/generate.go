// Package generate implements the generate-format-write pipeline: it seeds a
// sampler, draws the configured number of values and writes them one per line.
package generate

import (
	"errors"
	"io"
	"os"

	"github.com/rpgo/u01gen/internal/config"
	"github.com/rpgo/u01gen/internal/sampler"
)

// DefaultProgressEvery is how often, in lines, progress is logged at debug level.
const DefaultProgressEvery = 100_000

// Source yields values in [0,1).
type Source interface {
	Float64() float64
}

// Result describes a completed run.
type Result struct {
	OutputPath string
	Count      int
	Seed       int64
}

// Generator runs generation jobs.
type Generator struct {
	Logger        Logger
	ProgressEvery int
}

// NewGenerator returns a generator logging to logger; nil means no logging.
func NewGenerator(logger Logger) *Generator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Generator{Logger: logger, ProgressEvery: DefaultProgressEvery}
}

// Run writes cfg.Count values from a sampler seeded with cfg.Seed to
// cfg.OutputPath. The file is created or truncated and always closed before
// Run returns. Failures touching the file are *WriteError.
func (g *Generator) Run(cfg config.Config) (res *Result, err error) {
	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}

	src := sampler.New(cfg.Seed)
	g.Logger.Debugf("sampler seeded with %d", cfg.Seed)

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, &WriteError{Path: cfg.OutputPath, Op: "create", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			res, err = nil, &WriteError{Path: cfg.OutputPath, Op: "close", Err: cerr}
		}
	}()

	g.Logger.Infof("writing %d values to %s", cfg.Count, cfg.OutputPath)
	if err := g.Generate(f, src, cfg.Count, NewAppendFunc(cfg.Format, cfg.Precision)); err != nil {
		var we *WriteError
		if errors.As(err, &we) && we.Path == "" {
			we.Path = cfg.OutputPath
		}
		return nil, err
	}

	return &Result{OutputPath: cfg.OutputPath, Count: cfg.Count, Seed: cfg.Seed}, nil
}

// Generate draws n values from src and writes them to w, flushing at the end.
func (g *Generator) Generate(w io.Writer, src Source, n int, render AppendFunc) error {
	lw := NewLineWriter(w, render)
	for i := 0; i < n; i++ {
		if err := lw.Write(src.Float64()); err != nil {
			return err
		}
		if g.ProgressEvery > 0 && (i+1)%g.ProgressEvery == 0 {
			g.Logger.Debugf("%d/%d lines", i+1, n)
		}
	}
	if err := lw.Flush(); err != nil {
		return err
	}
	g.Logger.Debugf("flushed %d lines", lw.Lines())
	return nil
}
