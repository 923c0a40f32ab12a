// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package hcodec implements a canonical Huffman codec for blocks of bytes.

Each block is coded independently. The compressed block starts with the
codebook, the code lengths of all 256 byte values, each stored with the
static prefix code Book. The coded bytes follow immediately. The block
carries neither a header nor its length; the caller has to provide the
number of bytes to decode.

Small blocks of less than 100 bytes and random data don't compress well.
The codec is tuned for blocks of around 4 KiB. The frame package provides a
stream format for sequences of blocks.
*/
package hcodec

import "errors"

// ErrCorruptCodebook indicates that the codebook at the start of a block
// cannot be decoded.
var ErrCorruptCodebook = errors.New("hcodec: corrupt codebook")

// ErrCodeTooLong indicates that a symbol would require a code longer than
// MaxCodeBits.
var ErrCodeTooLong = errors.New("hcodec: code too long")
