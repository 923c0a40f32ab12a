// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

import "unsafe"

// String is the djb2 hash function for strings.
func String(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = (h << 5) + h + uint32(s[i])
	}
	return h
}

// Int hashes an int by truncating it to 32 bits.
func Int(i int) uint32 { return uint32(i) }

// Uint64 mixes all bits of x using the splitmix64 finalizer and folds the
// result to 32 bits.
func Uint64(x uint64) uint32 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return uint32(x>>32) ^ uint32(x)
}

// Pointer hashes the address of p. Pointers of aligned values have their
// low bits cleared, so the address is mixed with Uint64.
func Pointer[T any](p *T) uint32 {
	return Uint64(uint64(uintptr(unsafe.Pointer(p))))
}
