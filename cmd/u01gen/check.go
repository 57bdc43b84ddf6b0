package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/u01gen/internal/config"
	"github.com/rpgo/u01gen/internal/output"
	"github.com/rpgo/u01gen/internal/stats"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("uniformity check failed")

func (a *app) checkCmd() *cobra.Command {
	var (
		alpha  float64
		format string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Run mean, variance and runs tests on a generated file",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &config.ArgumentFormatError{Arg: "arguments", Value: strings.Join(args, " "), Err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.GetFormatterByName(format)
			if f == nil {
				return &config.ArgumentFormatError{
					Arg:   "output",
					Value: format,
					Err:   fmt.Errorf("available formats are %v", output.AvailableFormatterNames()),
				}
			}
			if !(alpha > 0 && alpha < 1) {
				return &config.ArgumentFormatError{Arg: "alpha", Value: fmt.Sprint(alpha), Err: stats.ErrInvalidAlpha}
			}

			rep, err := stats.CheckFile(args[0], alpha)
			if err != nil {
				return err
			}
			data, err := f.Format(rep)
			if err != nil {
				return fmt.Errorf("format report: %w", err)
			}
			if _, err := a.stdout.Write(data); err != nil {
				return err
			}
			if strict && !rep.Passed() {
				return errCheckFailed
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", stats.DefaultAlpha, "two-sided significance level")
	cmd.Flags().StringVarP(&format, "output", "o", "console", "report format: console, csv, json or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any test rejects the sample")
	return cmd
}
