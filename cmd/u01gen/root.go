package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rpgo/u01gen/internal/config"
	"github.com/rpgo/u01gen/internal/generate"
	"github.com/rpgo/u01gen/internal/output"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitBadInput = 2
)

// app carries the streams and settings shared by all commands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	loader *config.Loader

	// lang is the summary language once configuration has been resolved.
	lang string

	configFile string
	format     string
	precision  int
	langFlag   string
	verbose    bool
}

// run executes the command line and returns the process exit code. env
// replaces the process environment when non-nil.
func run(args []string, stdout, stderr io.Writer, env map[string]string) int {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		loader: &config.Loader{Environment: env},
		lang:   config.DefaultLang,
	}
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	_ = output.NewReporter(a.lang).WriteFailure(stderr, err)

	var argErr *config.ArgumentFormatError
	if errors.As(err, &argErr) {
		return exitBadInput
	}
	return exitFailure
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "u01gen [outputPath] [count] [seed]",
		Short: "Generate uniform pseudo-random numbers in [0,1)",
		Long: `u01gen writes count pseudo-random numbers in [0,1), one per line, to
outputPath and prints a one-line summary.

The generator is SplitMix64, so a given seed always produces the same file
and matches java.util.SplittableRandom seeded with the same value.

Defaults: outputPath=` + config.DefaultOutputPath +
			fmt.Sprintf(", count=%d, seed=%d.", config.DefaultCount, config.DefaultSeed) + `
Settings may also come from a YAML file (--config) or U01GEN_* variables.
Flags must precede positional arguments so negative seeds parse as numbers.
An output file named like a subcommand ("check", "help") must be written
with a path prefix, e.g. ./check.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runGenerate,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.ArgumentFormatError{Arg: "flag", Value: "", Err: err}
	})

	f := cmd.Flags()
	f.SetInterspersed(false)
	f.StringVar(&a.configFile, "config", "", "YAML configuration file")
	f.StringVar(&a.format, "format", string(config.FormatShortest), "number format: shortest or fixed")
	f.IntVar(&a.precision, "precision", config.DefaultPrecision, "digits after the decimal point for --format fixed")
	f.StringVar(&a.langFlag, "lang", config.DefaultLang, "summary language: en or es")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(a.checkCmd())
	return cmd
}

// resolve layers defaults, config file, environment, flags and positional
// arguments, in that order.
func (a *app) resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := a.loader.Load(a.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = config.Format(a.format)
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("lang") {
		cfg.Lang = a.langFlag
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}

	if err := config.ResolveArgs(cfg, args); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolve(cmd, args)
	if err != nil {
		return err
	}
	a.lang = cfg.Lang

	var logger generate.Logger = generate.NopLogger{}
	if cfg.Verbose {
		logger = generate.NewStdLogger(a.stderr, true)
		logger.Infof("config: path=%s count=%d seed=%d format=%s", cfg.OutputPath, cfg.Count, cfg.Seed, cfg.Format)
	}

	res, err := generate.NewGenerator(logger).Run(*cfg)
	if err != nil {
		return err
	}
	return output.NewReporter(cfg.Lang).WriteSummary(a.stdout, res)
}
