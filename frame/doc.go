// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package frame implements a stream format for data compressed with the
canonical Huffman codec of package hcodec.

A stream starts with a six byte header: the magic "CLMP", the version 1 and
the checksum method. Blocks follow. Every block starts with a type byte:

	0  end of stream
	1  Huffman coded block
	2  stored block

The type byte of a Huffman block is followed by the uncompressed length and
the compressed length, both encoded as unsigned varints, and the output of
hcodec. A stored block has only the uncompressed length and the raw data.
Each data block ends with the checksum of its uncompressed data in
little-endian byte order. Its size is given by the checksum method: 4 bytes
for CRC32, 8 bytes for CRC64 and none for None.

The writer falls back to stored blocks if the codec doesn't reduce the
size of a block.
*/
package frame

import "errors"

// Errors returned by the reader.
var (
	// ErrFormat indicates that the stream is not in the frame format.
	ErrFormat = errors.New("frame: invalid format")
	// ErrChecksum indicates that the checksum of a block doesn't match.
	ErrChecksum = errors.New("frame: checksum mismatch")
)

// magic is the start of every stream.
const magic = "CLMP"

// version is the supported format version.
const version = 1

// headerLen is the length of the stream header.
const headerLen = len(magic) + 2

// block types
const (
	endBlock     = 0
	huffmanBlock = 1
	storedBlock  = 2
)
