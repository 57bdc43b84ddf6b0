package generate

import (
	"fmt"
	"io"
	"log"
)

// Logger is a minimal logging interface for the generation pipeline.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger writes leveled lines to a log.Logger. Debug lines are dropped
// unless Debug is set.
type StdLogger struct {
	l     *log.Logger
	Debug bool
}

// NewStdLogger logs to w with a "u01gen: " prefix.
func NewStdLogger(w io.Writer, debug bool) *StdLogger {
	return &StdLogger{l: log.New(w, "u01gen: ", log.LstdFlags), Debug: debug}
}

func (s *StdLogger) Debugf(format string, args ...any) {
	if s.Debug {
		s.output("DEBUG", format, args...)
	}
}
func (s *StdLogger) Infof(format string, args ...any)  { s.output("INFO", format, args...) }
func (s *StdLogger) Warnf(format string, args ...any)  { s.output("WARN", format, args...) }
func (s *StdLogger) Errorf(format string, args ...any) { s.output("ERROR", format, args...) }

func (s *StdLogger) output(level, format string, args ...any) {
	_ = s.l.Output(3, level+" "+fmt.Sprintf(format, args...))
}
