// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"bytes"
	"fmt"
	"hash"
	"io"

	"github.com/ulikunitz/clump/hcodec"
	"github.com/ulikunitz/clump/internal/stream"
)

// Reader decompresses a stream in the frame format.
type Reader struct {
	r     stream.Streamer
	codec *hcodec.Codec
	hash  hash.Hash
	check byte
	// compressed block
	in []byte
	// decompressed block; data[off:] has not been read yet
	data []byte
	off  int
	eof  bool
	err  error
}

// noEOF converts io.EOF into io.ErrUnexpectedEOF.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// NewReader creates a reader for the stream and reads the stream header.
// The reader may consume bytes from r after the end of the stream unless r
// supports the ReadByte method.
func NewReader(r io.Reader) (*Reader, error) {
	s := stream.Wrap(r)
	var hdr [headerLen]byte
	if _, err := io.ReadFull(s, hdr[:]); err != nil {
		return nil, noEOF(err)
	}
	if !bytes.Equal(hdr[:len(magic)], []byte(magic)) {
		return nil, fmt.Errorf("%w: magic missing", ErrFormat)
	}
	if hdr[len(magic)] != version {
		return nil, fmt.Errorf("%w: unsupported version %d",
			ErrFormat, hdr[len(magic)])
	}
	check := hdr[len(magic)+1]
	h, err := newHash(check)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return &Reader{
		r:     s,
		codec: hcodec.New(),
		hash:  h,
		check: check,
	}, nil
}

// CheckSum returns the checksum method of the stream.
func (r *Reader) CheckSum() byte { return r.check }

// errorf returns a format error for the block starting at off.
func errorf(off int64, format string, a ...any) error {
	return fmt.Errorf("%w: block at offset %d: %s", ErrFormat, off,
		fmt.Sprintf(format, a...))
}

// readBlock reads the next block. At the end of the stream r.eof is set.
func (r *Reader) readBlock() error {
	off := r.r.Offset()
	t, err := r.r.ReadByte()
	if err != nil {
		return noEOF(err)
	}
	if t == endBlock {
		r.eof = true
		return nil
	}
	if t != huffmanBlock && t != storedBlock {
		return errorf(off, "unknown block type %d", t)
	}
	u, err := readUvarint(r.r)
	if err != nil {
		return err
	}
	if u == 0 || u > MaxBlockSize {
		return errorf(off, "block size %d out of range", u)
	}
	n := int(u)
	if cap(r.data) < n {
		r.data = make([]byte, n)
	}
	r.data = r.data[:n]
	r.off = 0
	if t == storedBlock {
		if _, err = io.ReadFull(r.r, r.data); err != nil {
			return noEOF(err)
		}
	} else {
		c, err := readUvarint(r.r)
		if err != nil {
			return err
		}
		if c > uint64(hcodec.MaxEncodedLen(n)) {
			return errorf(off, "compressed size %d out of range", c)
		}
		k := int(c)
		if cap(r.in) < k {
			r.in = make([]byte, k)
		}
		r.in = r.in[:k]
		if _, err = io.ReadFull(r.r, r.in); err != nil {
			return noEOF(err)
		}
		d, err := r.codec.Decode(r.data, r.in)
		if err != nil {
			return fmt.Errorf("%w: block at offset %d: %w",
				ErrFormat, off, err)
		}
		if d != n {
			return errorf(off, "decoded %d bytes; want %d", d, n)
		}
	}

	r.hash.Reset()
	r.hash.Write(r.data)
	var buf [16]byte
	sum := r.hash.Sum(buf[:0])
	stored := buf[len(sum) : 2*len(sum)]
	if _, err = io.ReadFull(r.r, stored); err != nil {
		return noEOF(err)
	}
	if !bytes.Equal(sum, stored) {
		return fmt.Errorf("%w: block at offset %d", ErrChecksum, off)
	}
	return nil
}

// Read reads decompressed data into p. It returns io.EOF after the end of
// the stream has been reached.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	for n < len(p) {
		if r.off == len(r.data) {
			if r.eof {
				r.err = io.EOF
				break
			}
			if err = r.readBlock(); err != nil {
				r.err = err
				break
			}
			continue
		}
		k := copy(p[n:], r.data[r.off:])
		r.off += k
		n += k
	}
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}
