package config

import (
	"errors"
	"fmt"
)

// ErrNegativeCount is returned when a count below zero is supplied.
var ErrNegativeCount = errors.New("must not be negative")

// ArgumentFormatError reports a count, seed or setting that could not be
// parsed or is out of range. It is always detected before the output file is
// touched.
type ArgumentFormatError struct {
	Arg   string
	Value string
	Err   error
}

func (e *ArgumentFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Arg, e.Value, e.Err)
}

func (e *ArgumentFormatError) Unwrap() error { return e.Err }
