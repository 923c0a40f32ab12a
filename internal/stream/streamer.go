// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package stream provides readers that support reading single bytes and
// track the number of bytes consumed.
package stream

import (
	"bufio"
	"io"
)

// Streamer is a reader that supports reading bytes and keeps track of the
// number of bytes read.
type Streamer interface {
	io.Reader
	io.ByteReader
	Offset() int64
}

// byteReader combines io.Reader and io.ByteReader.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// counter counts the bytes read from a byteReader.
type counter struct {
	r   byteReader
	off int64
}

// Offset returns the number of bytes read since the counter has been
// created.
func (c *counter) Offset() int64 {
	return c.off
}

// Read reads data into p. The offset will be updated accordingly.
func (c *counter) Read(p []byte) (n int, err error) {
	n, err = c.r.Read(p)
	c.off += int64(n)
	return n, err
}

// ReadByte reads a single byte.
func (c *counter) ReadByte() (b byte, err error) {
	b, err = c.r.ReadByte()
	if err == nil {
		c.off++
	}
	return b, err
}

// Wrap wraps an io.Reader to implement the [Streamer] interface. Readers
// without a ReadByte method are buffered, so the returned Streamer may
// consume more bytes from r than it delivers.
func Wrap(r io.Reader) Streamer {
	if s, ok := r.(Streamer); ok {
		return s
	}
	if br, ok := r.(byteReader); ok {
		return &counter{r: br}
	}
	return &counter{r: bufio.NewReader(r)}
}
