package uniqr

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineReader_crnl(t *testing.T) {
	t.Run("between lines", func(t *testing.T) {
		lr := NewLineReader(strings.NewReader("line1\r\nline2"))
		checkLine(t, lr, "line1", "\r\n")
		checkLine(t, lr, "line2", "")
		checkEOF(t, lr)
		if n := lr.Line(); n != 2 {
			t.Errorf("wrong number of lines: %d", n)
		}
	})
	t.Run("last line", func(t *testing.T) {
		lr := NewLineReader(strings.NewReader("line1\r\n"))
		checkLine(t, lr, "line1", "\r\n")
		checkEOF(t, lr)
		if n := lr.Line(); n != 1 {
			t.Errorf("wrong number of lines: %d", n)
		}
	})
}

func TestLineReader_nl(t *testing.T) {
	t.Run("between lines", func(t *testing.T) {
		lr := NewLineReader(strings.NewReader("line1\nline2"))
		checkLine(t, lr, "line1", "\n")
		checkLine(t, lr, "line2", "")
		checkEOF(t, lr)
	})
	t.Run("last line", func(t *testing.T) {
		lr := NewLineReader(strings.NewReader("line1\n"))
		checkLine(t, lr, "line1", "\n")
		checkEOF(t, lr)
	})
	t.Run("empty lines", func(t *testing.T) {
		lr := NewLineReader(strings.NewReader("\n\r\n"))
		checkLine(t, lr, "", "\n")
		checkLine(t, lr, "", "\r\n")
		checkEOF(t, lr)
	})
}

func TestLineReader_empty(t *testing.T) {
	lr := NewLineReader(strings.NewReader(""))
	checkEOF(t, lr)
	checkEOF(t, lr)
	if n := lr.Line(); n != 0 {
		t.Errorf("wrong number of lines: %d", n)
	}
}

func TestLineReader_long(t *testing.T) {
	long := bytes.Repeat([]byte("0123456789"), 10000)
	in := string(long) + "\n" + string(long)
	lr := NewLineReader(strings.NewReader(in))
	checkLine(t, lr, string(long), "\n")
	checkLine(t, lr, string(long), "")
	checkEOF(t, lr)
}

func TestLineReader_opaque(t *testing.T) {
	lr := NewLineReader(strings.NewReader("a\x00b\n\xff\xfe\r\n"))
	checkLine(t, lr, "a\x00b", "\n")
	checkLine(t, lr, "\xff\xfe", "\r\n")
	checkEOF(t, lr)
}

func TestLineReader_error(t *testing.T) {
	errRead := errors.New("cable cut")
	lr := NewLineReader(io.MultiReader(
		strings.NewReader("ok\npartial"),
		&errReader{errRead},
	))
	checkLine(t, lr, "ok", "\n")
	if _, err := lr.NextLine(); !errors.Is(err, errRead) {
		t.Errorf("expect read error, got %v", err)
	}
}

type errReader struct{ err error }

func (r *errReader) Read([]byte) (int, error) { return 0, r.err }

func TestLine_Terminator(t *testing.T) {
	for _, test := range []struct{ line, content, term string }{
		{"", "", ""},
		{"\n", "", "\n"},
		{"\r\n", "", "\r\n"},
		{"\r", "\r", ""},
		{"x\r", "x\r", ""},
		{"x\n\n", "x\n", "\n"},
		{"x\r\r\n", "x\r", "\r\n"},
	} {
		l := Line(test.line)
		if c := string(l.Content()); c != test.content {
			t.Errorf("%q: content %q, want %q", test.line, c, test.content)
		}
		if term := string(l.Terminator()); term != test.term {
			t.Errorf("%q: terminator %q, want %q", test.line, term, test.term)
		}
	}
}

func checkLine(t *testing.T, lr *LineReader, content, term string) {
	t.Helper()
	l, err := lr.NextLine()
	if err != nil {
		t.Fatalf("line %d: %s", lr.Line()+1, err)
	}
	if txt := string(l.Content()); txt != content {
		t.Errorf("line %d: wrong text '%.20s'", lr.Line(), txt)
	}
	if sep := string(l.Terminator()); sep != term {
		t.Errorf("line %d: separator '%v'", lr.Line(), []byte(sep))
	}
}

func checkEOF(t *testing.T, lr *LineReader) {
	t.Helper()
	if l, err := lr.NextLine(); err != io.EOF {
		t.Errorf("expect EOF, got '%s', %v", l, err)
	}
}
