// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"fmt"
	"io"
)

// maxVarintLen is the maximum length of a varint encoding a uint64.
const maxVarintLen = 10

// putUvarint appends the variable length encoding of u to p.
func putUvarint(p []byte, u uint64) []byte {
	for u >= 0x80 {
		p = append(p, byte(u)|0x80)
		u >>= 7
	}
	return append(p, byte(u))
}

// errors for readUvarint; both are format errors
var (
	errVarintNullByte = fmt.Errorf("%w: varint with trailing null byte",
		ErrFormat)
	errVarintOverflow = fmt.Errorf("%w: varint overflows uint64", ErrFormat)
)

// readUvarint reads a variable length encoded uint64. Only the shortest
// encoding is accepted. A stream ending inside the varint results in
// io.ErrUnexpectedEOF.
func readUvarint(r io.ByteReader) (u uint64, err error) {
	var s uint
	for i := 0; i < maxVarintLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if i > 0 && b == 0 {
			return 0, errVarintNullByte
		}
		if i == maxVarintLen-1 && b > 1 {
			return 0, errVarintOverflow
		}
		u |= uint64(b&0x7f) << s
		if b&0x80 == 0 {
			return u, nil
		}
		s += 7
	}
	return 0, errVarintOverflow
}
