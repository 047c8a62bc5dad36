package uniqr

import (
	"bufio"
	"errors"
	"io"
)

// Line is one input line including its terminator, if any. The last line
// of a stream may come without terminator.
type Line []byte

// Content returns the line without its terminator.
func (l Line) Content() []byte {
	c, _ := splitEOL(l)
	return c
}

// Terminator returns the line terminator, i.e. "\n", "\r\n" or nothing.
func (l Line) Terminator() []byte {
	_, eol := splitEOL(l)
	return l[len(l)-eol:]
}

// splitEOL is a variant of bufio.dropCR that also drops the '\n'.
func splitEOL(data []byte) (content []byte, eol int) {
	n := len(data)
	if n == 0 || data[n-1] != '\n' {
		return data, 0
	}
	if n > 1 && data[n-2] == '\r' {
		return data[:n-2], 2
	}
	return data[:n-1], 1
}

// LineSource yields lines one by one until it returns io.EOF. Like with
// io.Reader, the last line may come together with io.EOF.
type LineSource interface {
	NextLine() (Line, error)
}

// LineReader is the LineSource for any io.Reader. Lines are not limited in
// length and are treated as opaque bytes.
type LineReader struct {
	rd  *bufio.Reader
	buf []byte
	lno int
}

func NewLineReader(r io.Reader) *LineReader {
	var rd *bufio.Reader
	if tmp, ok := r.(*bufio.Reader); ok {
		rd = tmp
	} else {
		rd = bufio.NewReader(r)
	}
	return &LineReader{rd: rd}
}

// NextLine returns the next line. The returned Line is only valid up to the
// next call of NextLine.
func (lr *LineReader) NextLine() (Line, error) {
	lr.buf = lr.buf[:0]
	for {
		frag, err := lr.rd.ReadSlice('\n')
		lr.buf = append(lr.buf, frag...)
		switch {
		case err == nil:
			lr.lno++
			return lr.buf, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == io.EOF:
			if len(lr.buf) == 0 {
				return nil, io.EOF
			}
			lr.lno++
			return lr.buf, nil
		default:
			return nil, err
		}
	}
}

// Line returns the number of lines read so far.
func (lr *LineReader) Line() int { return lr.lno }
