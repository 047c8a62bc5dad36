package uniqr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Group is a run of consecutive lines with equal content. Line is the
// first line of the run, verbatim.
type Group struct {
	Line  Line
	Count int
}

// FlushFunc is called for each group that was written to the sink. g.Line
// must not be retained after the call returns.
type FlushFunc func(g Group)

// Deduplicator collapses runs of equal adjacent lines into one line each.
// Lines are equal if they are equal without their line terminators. A zero
// value is valid for use. All state of a run is local to Process, so a
// Deduplicator can be reused for more than one stream.
type Deduplicator struct {
	// Prefix each output line with the number of input lines it stands for.
	ShowCounts bool
	// OnFlush is called after each written group, if not nil.
	OnFlush FlushFunc
}

// Process reads all lines from src and writes one line per run to sink.
// Processing stops at the first read or write error, which is returned as
// *IOError.
func (d *Deduplicator) Process(src LineSource, sink io.Writer) error {
	var (
		grp Group
		lno int
	)
	for {
		line, err := src.NextLine()
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return &IOError{Op: OpRead, Line: lno + 1, err: err}
		}
		// A source may deliver its last line together with io.EOF
		if err == nil || len(line) > 0 {
			lno++
			if grp.Count > 0 && bytes.Equal(line.Content(), grp.Line.Content()) {
				grp.Count++
			} else {
				if err := d.flush(sink, grp); err != nil {
					return &IOError{Op: OpWrite, Line: lno, err: err}
				}
				grp.Line = append(grp.Line[:0], line...)
				grp.Count = 1
			}
		}
		if eof {
			if err := d.flush(sink, grp); err != nil {
				return &IOError{Op: OpWrite, Line: lno, err: err}
			}
			return nil
		}
	}
}

// Readers processes the lines read from in.
func (d *Deduplicator) Readers(in io.Reader, out io.Writer) error {
	return d.Process(NewLineReader(in), out)
}

// Strings processes the lines of in and returns the output as string.
func (d *Deduplicator) Strings(in string) (string, error) {
	var out strings.Builder
	err := d.Readers(strings.NewReader(in), &out)
	return out.String(), err
}

func (d *Deduplicator) flush(w io.Writer, g Group) error {
	if g.Count == 0 {
		return nil
	}
	if d.ShowCounts {
		if _, err := fmt.Fprintf(w, "%4d ", g.Count); err != nil {
			return err
		}
	}
	if _, err := w.Write(g.Line); err != nil {
		return err
	}
	if d.OnFlush != nil {
		d.OnFlush(g)
	}
	return nil
}
