// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

import (
	"iter"

	"github.com/ulikunitz/clump"
)

// Set is a hash set of keys. A Set is not safe for concurrent use.
type Set[K any] struct {
	t *table[K, struct{}]
}

// NewSet creates an empty hash set.
func NewSet[K any](hash HashFunc[K], cmp clump.CompareFunc[K]) *Set[K] {
	return &Set[K]{t: newTable[K, struct{}](hash, cmp)}
}

// Count returns the number of keys in the set.
func (s *Set[K]) Count() int { return s.t.count }

// Buckets returns the current number of buckets.
func (s *Set[K]) Buckets() int { return len(s.t.buckets) }

// Contains checks whether the set contains the key.
func (s *Set[K]) Contains(key K) bool { return s.t.lookup(key) != nil }

// Peek returns an arbitrary key of the set.
func (s *Set[K]) Peek() (key K, ok bool) {
	e := s.t.peek()
	if e == nil {
		return key, false
	}
	return e.key, true
}

// GetKey returns the stored key equal to key.
func (s *Set[K]) GetKey(key K) (stored K, ok bool) {
	e := s.t.lookup(key)
	if e == nil {
		return stored, false
	}
	return e.key, true
}

// Add adds the key to the set and returns it. Add doesn't check whether an
// equal key is already present.
func (s *Set[K]) Add(key K) K {
	s.t.insert(key, struct{}{})
	return key
}

// Remove removes a key equal to key and returns the stored key.
func (s *Set[K]) Remove(key K) (removed K, ok bool) {
	e, ok := s.t.remove(key)
	return e.key, ok
}

// Clear removes all keys and resets the table to its smallest size.
func (s *Set[K]) Clear() { s.t.clear() }

// SetIterator iterates over the keys of a set in table order.
type SetIterator[K any] struct {
	c cursor[K, struct{}]
}

// Iterator returns an iterator over the keys. Modifying the set invalidates
// the iterator.
func (s *Set[K]) Iterator() *SetIterator[K] {
	return &SetIterator[K]{c: s.t.cursor()}
}

// Next returns the next key. It returns false after the last key or if the
// iterator has become invalid.
func (it *SetIterator[K]) Next() (key K, ok bool) {
	e := it.c.next()
	if e == nil {
		return key, false
	}
	return e.key, true
}

// Err returns ErrInvalidIterator if the set has been modified.
func (it *SetIterator[K]) Err() error { return it.c.err }

// All returns a sequence of all keys.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.t.all(func(e *entry[K, struct{}]) bool { return yield(e.key) })
	}
}
