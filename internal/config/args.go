package config

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxPositionalArgs is the number of positional arguments accepted:
// output path, count and seed.
const MaxPositionalArgs = 3

// ResolveArgs applies positional arguments on top of cfg. Arguments are
// filled left to right, so a seed can only be given after a path and a count.
// cfg is left unchanged when an error is returned.
func ResolveArgs(cfg *Config, args []string) error {
	if len(args) > MaxPositionalArgs {
		return &ArgumentFormatError{
			Arg:   "arguments",
			Value: fmt.Sprint(args[MaxPositionalArgs:]),
			Err:   fmt.Errorf("accepts at most %d positional arguments, got %d", MaxPositionalArgs, len(args)),
		}
	}

	next := *cfg
	if len(args) >= 1 {
		next.OutputPath = args[0]
	}
	if len(args) >= 2 {
		n, err := parseInt("count", args[1], strconv.IntSize)
		if err != nil {
			return err
		}
		if n < 0 {
			return &ArgumentFormatError{Arg: "count", Value: args[1], Err: ErrNegativeCount}
		}
		next.Count = int(n)
	}
	if len(args) >= 3 {
		seed, err := parseInt("seed", args[2], 64)
		if err != nil {
			return err
		}
		next.Seed = seed
	}

	*cfg = next
	return nil
}

func parseInt(arg, value string, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(value, 10, bitSize)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ArgumentFormatError{Arg: arg, Value: value, Err: err}
	}
	return n, nil
}
