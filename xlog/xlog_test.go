package xlog

import (
	"bytes"
	"log"
	"testing"
)

func TestNilLogger(t *testing.T) {
	var l Logger
	Print(l, "a")
	Printf(l, "%d", 1)
	Println(l, "b")
	if Enabled(l) {
		t.Fatalf("Enabled(nil) returned true")
	}
}

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	l := log.New(buf, "", 0)
	Printf(l, "[%d] = { 0x%03x, %d }", 97, 0x1, 2)
	Print(l, "x")
	const want = "[97] = { 0x001, 2 }\nx\n"
	if g := buf.String(); g != want {
		t.Fatalf("got %q; want %q", g, want)
	}
	if !Enabled(l) {
		t.Fatalf("Enabled(l) returned false")
	}
}
