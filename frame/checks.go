// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package frame

import (
	"encoding/binary"
	"hash"
	"hash/crc32"
	"hash/crc64"
)

// crc64Table is the ECMA table also used by the xz format.
var crc64Table = crc64.MakeTable(crc64.ECMA)

// crc32Hash returns the checksum in little-endian byte order.
type crc32Hash struct {
	hash.Hash32
}

func (h crc32Hash) Sum(b []byte) []byte {
	return binary.LittleEndian.AppendUint32(b, h.Sum32())
}

// crc64Hash returns the checksum in little-endian byte order.
type crc64Hash struct {
	hash.Hash64
}

func (h crc64Hash) Sum(b []byte) []byte {
	return binary.LittleEndian.AppendUint64(b, h.Sum64())
}

// noneHash is the hash for the checksum method None. It has the size zero.
type noneHash struct{}

func (h noneHash) Write(p []byte) (n int, err error) { return len(p), nil }

func (h noneHash) Sum(b []byte) []byte { return b }

func (h noneHash) Reset() {}

func (h noneHash) Size() int { return 0 }

func (h noneHash) BlockSize() int { return 0 }

// newHash returns the hash for the checksum method.
func newHash(check byte) (hash.Hash, error) {
	switch check {
	case None:
		return noneHash{}, nil
	case CRC32:
		return crc32Hash{crc32.NewIEEE()}, nil
	case CRC64:
		return crc64Hash{crc64.New(crc64Table)}, nil
	}
	return nil, verifyCheck(check)
}
