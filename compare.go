// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package clump

import (
	"cmp"
	"unsafe"
)

// Ordering is the result of a key comparison.
type Ordering int

// Results of a CompareFunc.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Ordering(invalid)"
}

// CompareFunc compares two keys. Hash sets and maps only use it to test
// for equality; trees require a strict weak ordering.
type CompareFunc[K any] func(a, b K) Ordering

// Compare orders two values of an ordered type.
func Compare[K cmp.Ordered](a, b K) Ordering {
	return Ordering(cmp.Compare(a, b))
}

// ComparePointer orders two pointers by address. The order is stable only
// as long as the garbage collector doesn't move the objects, which it
// currently never does for heap objects.
func ComparePointer[T any](a, b *T) Ordering {
	x, y := uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(b))
	switch {
	case x < y:
		return Less
	case x > y:
		return Greater
	}
	return Equal
}
