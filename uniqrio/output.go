package uniqrio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/fractalqb/uniqr"
)

// Stdout is the output name for the standard output.
const Stdout = "-"

// Output is a buffered output stream. It must be closed to flush buffered
// data.
type Output struct {
	*bufio.Writer
	name string
	file *os.File
}

// CreateOutput creates or truncates the named file. If name is empty or
// Stdout the standard output is used. Any error is returned as
// *uniqr.OpenError.
func CreateOutput(name string) (*Output, error) {
	if name == "" || name == Stdout {
		return &Output{Writer: bufio.NewWriter(os.Stdout), name: Stdout}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, &uniqr.OpenError{Op: "output", Path: name, Err: err}
	}
	return &Output{Writer: bufio.NewWriter(f), name: name, file: f}, nil
}

// Name returns the name the output was created with.
func (out *Output) Name() string { return out.name }

// Close flushes buffered data and closes the file, if any. The standard
// output is not closed. Close can safely be called more than once.
func (out *Output) Close() error {
	err := out.Flush()
	if out.file != nil {
		if cerr := out.file.Close(); err == nil {
			err = cerr
		}
		out.file = nil
	}
	return err
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// This happens when the consumer of the output, e.g. head(1), stops
// reading early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
