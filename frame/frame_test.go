package frame

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
)

func compress(t *testing.T, cfg WriterConfig, data []byte) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w, err := cfg.NewWriter(buf)
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if _, err = w.Write(data); err != nil {
		t.Fatalf("w.Write error %s", err)
	}
	if err = w.Close(); err != nil {
		t.Fatalf("w.Close error %s", err)
	}
	return buf.Bytes()
}

func decompress(z []byte) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(z))
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	_, err = io.Copy(buf, r)
	return buf.Bytes(), err
}

func textData(n int) []byte {
	const s = "It was the best of times, it was the worst of times. "
	return []byte(strings.Repeat(s, n/len(s)+1)[:n])
}

func TestRoundTrip(t *testing.T) {
	sizes := []int{0, 1, 100, 4095, 4096, 4097, 3 * 4096, 50000}
	checks := []WriterConfig{
		{},
		{CheckSum: CRC64},
		{NoCheckSum: true},
		{BlockSize: 1},
		{BlockSize: MaxBlockSize},
	}
	for _, cfg := range checks {
		for _, n := range sizes {
			data := textData(n)
			z := compress(t, cfg, data)
			g, err := decompress(z)
			if err != nil {
				t.Fatalf("cfg %+v size %d: decompress error %s",
					cfg, n, err)
			}
			if !bytes.Equal(g, data) {
				t.Fatalf("cfg %+v size %d: data differs", cfg, n)
			}
		}
	}
}

func TestEmptyStream(t *testing.T) {
	z := compress(t, WriterConfig{}, nil)
	want := []byte{'C', 'L', 'M', 'P', 1, CRC32, endBlock}
	if !bytes.Equal(z, want) {
		t.Fatalf("empty stream % x; want % x", z, want)
	}
}

func TestCompresses(t *testing.T) {
	data := textData(100000)
	z := compress(t, WriterConfig{}, data)
	if len(z) >= len(data)*3/4 {
		t.Fatalf("compressed %d bytes to %d", len(data), len(z))
	}
}

func TestStoredBlocks(t *testing.T) {
	data := make([]byte, 10000)
	rand.New(rand.NewSource(1)).Read(data)
	z := compress(t, WriterConfig{}, data)
	// three stored blocks with type byte, two byte varint and checksum
	want := headerLen + 3*(1+2+4) + len(data) + 1
	if len(z) != want {
		t.Fatalf("stream length %d; want %d", len(z), want)
	}
	if z[headerLen] != storedBlock {
		t.Fatalf("block type %d; want %d", z[headerLen], storedBlock)
	}
	g, err := decompress(z)
	if err != nil {
		t.Fatalf("decompress error %s", err)
	}
	if !bytes.Equal(g, data) {
		t.Fatalf("data differs")
	}
}

func TestChecksumError(t *testing.T) {
	for _, check := range []byte{CRC32, CRC64} {
		z := compress(t, WriterConfig{CheckSum: check}, textData(1000))
		// the checksum precedes the end marker
		z[len(z)-2] ^= 0x01
		_, err := decompress(z)
		if !errors.Is(err, ErrChecksum) {
			t.Fatalf("%s: decompress error %v; want %v",
				CheckName(check), err, ErrChecksum)
		}
	}
}

func TestNoCheckSumIgnoresCorruption(t *testing.T) {
	data := make([]byte, 100)
	rand.New(rand.NewSource(2)).Read(data)
	z := compress(t, WriterConfig{NoCheckSum: true}, data)
	z[len(z)-2] ^= 0x01
	g, err := decompress(z)
	if err != nil {
		t.Fatalf("decompress error %s", err)
	}
	if bytes.Equal(g, data) {
		t.Fatalf("corruption of stored data not visible")
	}
}

func TestHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		z    []byte
		err  error
	}{
		{"empty", nil, io.ErrUnexpectedEOF},
		{"short", []byte("CLM"), io.ErrUnexpectedEOF},
		{"magic", []byte("XLMP\x01\x01\x00"), ErrFormat},
		{"version", []byte("CLMP\x02\x01\x00"), ErrFormat},
		{"check", []byte("CLMP\x01\x0a\x00"), ErrFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReader(bytes.NewReader(tc.z))
			if !errors.Is(err, tc.err) {
				t.Fatalf("NewReader error %v; want %v", err, tc.err)
			}
		})
	}
}

func TestTruncated(t *testing.T) {
	z := compress(t, WriterConfig{}, textData(10000))
	for _, n := range []int{headerLen, headerLen + 1, len(z) / 2,
		len(z) - 1} {
		_, err := decompress(z[:n])
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("length %d: decompress error %v; want %v",
				n, err, io.ErrUnexpectedEOF)
		}
	}
}

func TestBlockErrors(t *testing.T) {
	hdr := "CLMP\x01\x00"
	tests := []struct {
		name string
		z    string
	}{
		{"type", hdr + "\x03"},
		{"zero size", hdr + "\x02\x00"},
		{"size", hdr + "\x02\x81\x80\x80\x01"},
		{"varint null", hdr + "\x02\x80\x00"},
		{"compressed size", hdr + "\x01\x01\xff\x7f"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decompress([]byte(tc.z))
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("decompress error %v; want %v",
					err, ErrFormat)
			}
		})
	}
}

func TestWriterClosed(t *testing.T) {
	w, err := NewWriter(io.Discard)
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if err = w.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	if _, err = w.Write([]byte{1}); err == nil {
		t.Fatalf("Write after Close succeeded")
	}
}

func TestWriterConfig(t *testing.T) {
	var cfg WriterConfig
	if err := cfg.Verify(); err != nil {
		t.Fatalf("Verify error %s", err)
	}
	if cfg.BlockSize != DefaultBlockSize || cfg.CheckSum != CRC32 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	cfg = WriterConfig{CheckSum: CRC64, NoCheckSum: true}
	cfg.ApplyDefaults()
	if cfg.CheckSum != None {
		t.Fatalf("NoCheckSum ignored: %+v", cfg)
	}
	for _, c := range []WriterConfig{
		{BlockSize: -1},
		{BlockSize: MaxBlockSize + 1},
		{CheckSum: 0x0a},
	} {
		if err := c.Verify(); err == nil {
			t.Fatalf("Verify of %+v succeeded", c)
		}
	}
	var nilCfg *WriterConfig
	if err := nilCfg.Verify(); err == nil {
		t.Fatalf("Verify of nil configuration succeeded")
	}
}

func TestParseCheck(t *testing.T) {
	for _, c := range []byte{None, CRC32, CRC64} {
		g, err := ParseCheck(strings.ToLower(CheckName(c)))
		if err != nil {
			t.Fatalf("ParseCheck error %s", err)
		}
		if g != c {
			t.Fatalf("ParseCheck returned %#02x; want %#02x", g, c)
		}
	}
	if _, err := ParseCheck("sha256"); err == nil {
		t.Fatalf("ParseCheck(%q) succeeded", "sha256")
	}
}

func TestVarint(t *testing.T) {
	for _, u := range []uint64{0, 1, 127, 128, 300, 1<<32 + 5, 1<<64 - 1} {
		p := putUvarint(nil, u)
		g, err := readUvarint(bytes.NewReader(p))
		if err != nil {
			t.Fatalf("readUvarint(% x) error %s", p, err)
		}
		if g != u {
			t.Fatalf("readUvarint(% x) = %d; want %d", p, g, u)
		}
	}
	_, err := readUvarint(bytes.NewReader([]byte{0x80}))
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("readUvarint of truncated varint error %v", err)
	}
}

func TestReaderCheckSum(t *testing.T) {
	z := compress(t, WriterConfig{CheckSum: CRC64}, nil)
	r, err := NewReader(bytes.NewReader(z))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	if r.CheckSum() != CRC64 {
		t.Fatalf("CheckSum() = %s", CheckName(r.CheckSum()))
	}
}
