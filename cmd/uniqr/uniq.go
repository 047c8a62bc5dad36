package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/fractalqb/uniqr"
	"github.com/fractalqb/uniqr/uniqrio"
)

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "uniqr"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// uniq runs the deduplication from inName to outName. Input and output are
// closed on return. Errors are prefixed with the name of the input or
// output they relate to.
func uniq(logger *log.Logger, cfg config, inName, outName string) (err error) {
	in, err := uniqrio.OpenInput(inName, cfg.Decompress)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := uniqrio.CreateOutput(outName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", out.Name(), cerr)
		}
	}()
	logger.Debug("start",
		"input", in.Name(),
		"output", out.Name(),
		"count", cfg.Count,
		"decompress", cfg.Decompress,
	)

	groups := 0
	dedup := uniqr.Deduplicator{
		ShowCounts: cfg.Count,
		OnFlush: func(g uniqr.Group) {
			groups++
			logger.Debug("group", "count", g.Count, "line", string(g.Line.Content()))
		},
	}
	lines := uniqr.NewLineReader(in)
	if err = dedup.Process(lines, out); err != nil {
		var ioErr *uniqr.IOError
		if errors.As(err, &ioErr) && ioErr.Op == uniqr.OpWrite {
			return fmt.Errorf("%s: %w", out.Name(), err)
		}
		return fmt.Errorf("%s: %w", in.Name(), err)
	}
	logger.Debug("done", "groups", groups, "lines", lines.Line())
	return nil
}
