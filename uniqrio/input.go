package uniqrio

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/fractalqb/uniqr"
)

// Stdin is the input name for the standard input.
const Stdin = "-"

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Input is an opened input stream.
type Input struct {
	io.Reader
	name    string
	closers []io.Closer
}

// OpenInput opens the named file or, for name Stdin, the standard input.
// The input is read as is unless decompress is set. Then gzip and zstd
// compressed files are recognized by their magic number and decompressed.
// Any error is returned as *uniqr.OpenError.
func OpenInput(name string, decompress bool) (*Input, error) {
	if name == "" || name == Stdin {
		return &Input{Reader: os.Stdin, name: Stdin}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, &uniqr.OpenError{Op: "input", Path: name, Err: err}
	}
	if !decompress {
		return &Input{Reader: f, name: name, closers: []io.Closer{f}}, nil
	}
	in, err := decompressed(name, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return in, nil
}

// decompressed detects compressed files by their magic number. Other files
// are passed through unchanged.
func decompressed(name string, f *os.File) (*Input, error) {
	in := &Input{name: name, closers: []io.Closer{f}}
	br := bufio.NewReader(f)
	magic, err := br.Peek(len(magicZstd))
	if err != nil && err != io.EOF {
		return nil, &uniqr.OpenError{Op: "input", Path: name, Err: err}
	}
	switch {
	case bytes.HasPrefix(magic, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, &uniqr.OpenError{Op: "input", Path: name, Err: err}
		}
		in.Reader = zr
		in.closers = append([]io.Closer{zr}, in.closers...)
	case bytes.HasPrefix(magic, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, &uniqr.OpenError{Op: "input", Path: name, Err: err}
		}
		rc := zr.IOReadCloser()
		in.Reader = rc
		in.closers = append([]io.Closer{rc}, in.closers...)
	default:
		in.Reader = br
	}
	return in, nil
}

// Name returns the name the input was opened with.
func (in *Input) Name() string { return in.name }

// Close closes decompressors and the underlying file. The standard input
// is not closed.
func (in *Input) Close() (err error) {
	for _, c := range in.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	in.closers = nil
	return err
}
