package generate

import (
	"bufio"
	"io"
	"strconv"

	"github.com/rpgo/u01gen/internal/config"
)

// bufferSize keeps a million-line run to a few hundred write calls.
const bufferSize = 64 * 1024

// AppendFunc appends the text form of v to dst.
type AppendFunc func(dst []byte, v float64) []byte

// NewAppendFunc returns the renderer for format. Output never depends on the
// process locale: no grouping and '.' as decimal point.
func NewAppendFunc(format config.Format, precision int) AppendFunc {
	if format == config.FormatFixed {
		return func(dst []byte, v float64) []byte {
			return strconv.AppendFloat(dst, v, 'f', precision, 64)
		}
	}
	return func(dst []byte, v float64) []byte {
		return strconv.AppendFloat(dst, v, 'f', -1, 64)
	}
}

// LineWriter renders values one per line into a buffered writer.
type LineWriter struct {
	bw      *bufio.Writer
	render  AppendFunc
	scratch []byte
	lines   int
}

// NewLineWriter wraps w. Nothing reaches w until the buffer fills or Flush is
// called.
func NewLineWriter(w io.Writer, render AppendFunc) *LineWriter {
	return &LineWriter{
		bw:      bufio.NewWriterSize(w, bufferSize),
		render:  render,
		scratch: make([]byte, 0, 32),
	}
}

// Write appends v and a newline.
func (lw *LineWriter) Write(v float64) error {
	lw.scratch = lw.render(lw.scratch[:0], v)
	lw.scratch = append(lw.scratch, '\n')
	if _, err := lw.bw.Write(lw.scratch); err != nil {
		return &WriteError{Op: "write", Err: err}
	}
	lw.lines++
	return nil
}

// Flush pushes buffered lines to the underlying writer.
func (lw *LineWriter) Flush() error {
	if err := lw.bw.Flush(); err != nil {
		return &WriteError{Op: "flush", Err: err}
	}
	return nil
}

// Lines returns the number of lines accepted so far.
func (lw *LineWriter) Lines() int { return lw.lines }
