package uniqr

import "fmt"

// Operations reported by IOError
const (
	OpRead  = "read"
	OpWrite = "write"
)

// OpenError is returned when an input or output cannot be opened.
type OpenError struct {
	// Op is "input" or "output"
	Op   string
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// IOError is returned when reading or writing fails while processing a
// stream. Line is the input line that was reached.
type IOError struct {
	Op   string
	Line int
	err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s line %d: %s", e.Op, e.Line, e.err)
}

func (e *IOError) Unwrap() error { return e.err }
