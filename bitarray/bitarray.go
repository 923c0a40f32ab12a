// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package bitarray provides a bit addressable view of a byte slice.
//
// Bit 0 of the array is the most significant bit of byte 0. Ranges of up
// to 31 bits are read and written most significant bit first. The array
// keeps a cursor that is advanced by the Pop and Push methods.
//
// The array doesn't own the byte slice. Accesses outside of the wrapped
// bits return -1 or false; the cursor is advanced anyway, so that a caller
// can detect an overrun by comparing Pos with Len.
package bitarray

// MaxRange is the limit for the length of a bit range. Range lengths must
// be less than MaxRange.
const MaxRange = 32

// Array is a cursor over a byte slice.
type Array struct {
	buf   []byte
	nBits int
	pos   int
}

// New returns an array without a buffer. Use Wrap to provide one.
func New() *Array { return new(Array) }

// Wrap sets the buffer of the array. The array provides access to the
// first nBits bits of buf. The cursor is reset.
func (a *Array) Wrap(buf []byte, nBits int) {
	if nBits < 0 || nBits > 8*len(buf) {
		panic("bitarray: nBits out of range")
	}
	a.buf = buf
	a.nBits = nBits
	a.pos = 0
}

// Clear sets all bytes fully covered by the array to zero and resets the
// cursor.
func (a *Array) Clear() {
	clear(a.buf[:a.nBits/8])
	a.pos = 0
}

// Len returns the number of bits provided by the array.
func (a *Array) Len() int { return a.nBits }

// Pos returns the cursor position.
func (a *Array) Pos() int { return a.pos }

// Bytes returns the number of bytes touched by the cursor.
func (a *Array) Bytes() int {
	return (min(a.pos, a.nBits) + 7) / 8
}

// bit returns bit i. It doesn't check the range.
func (a *Array) bit(i int) int {
	return int(a.buf[i>>3]>>(7-i&7)) & 1
}

// setBit sets bit i to the lowest bit of v. It doesn't check the range.
func (a *Array) setBit(i int, v uint32) {
	shift := 7 - i&7
	b := a.buf[i>>3] &^ (1 << shift)
	a.buf[i>>3] = b | byte(v&1)<<shift
}

// Get returns bit i or -1 if i is out of range.
func (a *Array) Get(i int) int {
	if i < 0 || i >= a.nBits {
		return -1
	}
	return a.bit(i)
}

// Pop returns the bit at the cursor and advances the cursor.
func (a *Array) Pop() int {
	v := a.Get(a.pos)
	a.pos++
	return v
}

// validRange checks whether the n bits starting at i are in range.
func (a *Array) validRange(i, n int) bool {
	return i >= 0 && 0 <= n && n < MaxRange && i+n <= a.nBits
}

// GetRange returns the n bits starting at bit i as an integer. The bit i
// becomes the most significant bit of the result. It returns -1 if the
// range isn't valid.
func (a *Array) GetRange(i, n int) int {
	if !a.validRange(i, n) {
		return -1
	}
	var r uint32
	for b := i; b < i+n; b++ {
		r = r<<1 | uint32(a.bit(b))
	}
	return int(r)
}

// PopRange returns n bits at the cursor and advances the cursor by n.
func (a *Array) PopRange(n int) int {
	v := a.GetRange(a.pos, n)
	a.pos += n
	return v
}

// Set sets bit i to the lowest bit of v. It returns false if i is out of
// range.
func (a *Array) Set(i int, v uint32) bool {
	if i < 0 || i >= a.nBits {
		return false
	}
	a.setBit(i, v)
	return true
}

// Push sets the bit at the cursor and advances the cursor.
func (a *Array) Push(v uint32) bool {
	ok := a.Set(a.pos, v)
	a.pos++
	return ok
}

// SetRange stores the lowest n bits of v starting at bit i, most
// significant bit first. It returns false if the range isn't valid.
func (a *Array) SetRange(i, n int, v uint32) bool {
	if !a.validRange(i, n) {
		return false
	}
	for b := i; b < i+n; b++ {
		a.setBit(b, v>>(i+n-b-1))
	}
	return true
}

// PushRange stores n bits at the cursor and advances the cursor by n.
func (a *Array) PushRange(n int, v uint32) bool {
	ok := a.SetRange(a.pos, n, v)
	a.pos += n
	return ok
}
