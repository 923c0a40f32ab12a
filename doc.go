// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package clump provides the ordering types shared by the collections of
// the module.
//
// The subpackages implement a slab pool with integer handles (pool), a
// singly linked list (list), chained hash tables (hash), left-leaning
// red-black trees (tree), a bit array with MSB-first ranges (bitarray), a
// canonical Huffman block codec (hcodec) and a checksummed stream format on
// top of the codec (frame). The command clump compresses files with it.
package clump
