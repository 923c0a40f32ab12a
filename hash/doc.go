// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package hash provides hash sets and hash maps.

The tables use separate chaining. The number of buckets is always a prime
taken from a fixed table; the table grows before it becomes more than two
thirds full and shrinks when half of the next smaller table size is
reached. Entries are allocated from a pool.

Users provide a hash function and a compare function for the keys. Two
keys are equal if their hash codes are the same and the compare function
returns clump.Equal. Add and Put don't check for existing keys; a caller
that wants unique keys has to call Contains first.

The package provides hash functions for strings, integers and pointers.
*/
package hash

import "errors"

// ErrInvalidIterator indicates that the table has been modified after the
// iterator has been created.
var ErrInvalidIterator = errors.New("hash: iterator invalidated by modification")

// HashFunc computes the hash code of a key. Equal keys must have equal hash
// codes.
type HashFunc[K any] func(key K) uint32
