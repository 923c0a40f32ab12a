package stream

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

type plainReader struct {
	r io.Reader
}

func (r plainReader) Read(p []byte) (int, error) { return r.r.Read(p) }

func TestWrap(t *testing.T) {
	for _, r := range []io.Reader{
		strings.NewReader("abcdef"),
		plainReader{bytes.NewReader([]byte("abcdef"))},
	} {
		s := Wrap(r)
		b, err := s.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte error %s", err)
		}
		if b != 'a' {
			t.Fatalf("ReadByte returned %q; want 'a'", b)
		}
		p := make([]byte, 3)
		if _, err = io.ReadFull(s, p); err != nil {
			t.Fatalf("ReadFull error %s", err)
		}
		if string(p) != "bcd" {
			t.Fatalf("read %q; want %q", p, "bcd")
		}
		if s.Offset() != 4 {
			t.Fatalf("Offset() = %d; want 4", s.Offset())
		}
		if Wrap(s) != s {
			t.Fatalf("Wrap of a Streamer returned a new value")
		}
	}
}
