// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"errors"
	"hash"
	"io"

	"github.com/ulikunitz/clump/hcodec"
)

var errWriterClosed = errors.New("frame: writer is closed")

// Writer compresses data into the frame format. The data is collected in
// blocks of BlockSize bytes. Close must be called to write the last block
// and the end marker.
type Writer struct {
	cfg   WriterConfig
	w     io.Writer
	codec *hcodec.Codec
	hash  hash.Hash
	// uncompressed data of the current block
	buf []byte
	// output buffer for a block
	out []byte
	err error
}

// NewWriter creates a writer using the default configuration.
func NewWriter(w io.Writer) (*Writer, error) {
	return WriterConfig{}.NewWriter(w)
}

// NewWriter creates a new writer. The stream header is written
// immediately.
func (c WriterConfig) NewWriter(w io.Writer) (*Writer, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	h, err := newHash(c.CheckSum)
	if err != nil {
		return nil, err
	}
	fw := &Writer{
		cfg:   c,
		w:     w,
		codec: hcodec.New(),
		hash:  h,
		buf:   make([]byte, 0, c.BlockSize),
		out: make([]byte, 0, 1+2*maxVarintLen+
			hcodec.MaxEncodedLen(c.BlockSize)+h.Size()),
	}
	hdr := append([]byte(magic), version, c.CheckSum)
	if _, err = w.Write(hdr); err != nil {
		return nil, err
	}
	return fw, nil
}

// Write compresses the data of p. It returns the number of bytes consumed
// from p.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	for len(p) > 0 {
		k := copy(w.buf[len(w.buf):cap(w.buf)], p)
		w.buf = w.buf[:len(w.buf)+k]
		n += k
		p = p[k:]
		if len(w.buf) == cap(w.buf) {
			if err = w.writeBlock(); err != nil {
				w.err = err
				return n, err
			}
		}
	}
	return n, nil
}

// writeBlock writes the buffered data as a block. A Huffman block is
// written only if it is smaller than a stored block.
func (w *Writer) writeBlock() error {
	data := w.buf
	p := w.out[:0]
	p = append(p, huffmanBlock)
	p = putUvarint(p, uint64(len(data)))
	ulen := len(p)
	enc := w.out[ulen+maxVarintLen : cap(w.out)]
	k, err := w.codec.Encode(enc, data)
	if err != nil && !errors.Is(err, hcodec.ErrCodeTooLong) {
		return err
	}
	// codes too long for the codec force a stored block
	p = putUvarint(p, uint64(k))
	if err == nil && len(p)+k < ulen+len(data) {
		p = append(p, enc[:k]...)
	} else {
		p[0] = storedBlock
		p = append(p[:ulen], data...)
	}
	w.hash.Reset()
	w.hash.Write(data)
	p = w.hash.Sum(p)
	if _, err = w.w.Write(p); err != nil {
		return err
	}
	w.buf = w.buf[:0]
	return nil
}

// Close writes the remaining data and the end of stream marker. It doesn't
// close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if len(w.buf) > 0 {
		if err := w.writeBlock(); err != nil {
			w.err = err
			return err
		}
	}
	if _, err := w.w.Write([]byte{endBlock}); err != nil {
		w.err = err
		return err
	}
	w.err = errWriterClosed
	return nil
}
