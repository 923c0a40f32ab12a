// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

import (
	"iter"

	"github.com/ulikunitz/clump"
)

// Map is a hash map from keys to values. A Map is not safe for concurrent
// use.
type Map[K, V any] struct {
	t *table[K, V]
}

// NewMap creates an empty hash map.
func NewMap[K, V any](hash HashFunc[K], cmp clump.CompareFunc[K]) *Map[K, V] {
	return &Map[K, V]{t: newTable[K, V](hash, cmp)}
}

// Count returns the number of mappings.
func (m *Map[K, V]) Count() int { return m.t.count }

// Buckets returns the current number of buckets.
func (m *Map[K, V]) Buckets() int { return len(m.t.buckets) }

// Contains checks whether the map has a mapping for key.
func (m *Map[K, V]) Contains(key K) bool { return m.t.lookup(key) != nil }

// Peek returns an arbitrary key of the map.
func (m *Map[K, V]) Peek() (key K, ok bool) {
	e := m.t.peek()
	if e == nil {
		return key, false
	}
	return e.key, true
}

// Get returns the value for key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	e := m.t.lookup(key)
	if e == nil {
		return value, false
	}
	return e.value, true
}

// Put adds a mapping and returns the key. Put doesn't replace an existing
// mapping; the new mapping shadows it until it is removed.
func (m *Map[K, V]) Put(key K, value V) K {
	m.t.insert(key, value)
	return key
}

// Remove removes the mapping for key and returns the stored key and its
// value.
func (m *Map[K, V]) Remove(key K) (removed K, value V, ok bool) {
	e, ok := m.t.remove(key)
	return e.key, e.value, ok
}

// Clear removes all mappings and resets the table to its smallest size.
func (m *Map[K, V]) Clear() { m.t.clear() }

// MapIterator iterates over the mappings in table order.
type MapIterator[K, V any] struct {
	c cursor[K, V]
}

// Iterator returns an iterator over the mappings. Modifying the map
// invalidates the iterator.
func (m *Map[K, V]) Iterator() *MapIterator[K, V] {
	return &MapIterator[K, V]{c: m.t.cursor()}
}

// Next returns the next key.
func (it *MapIterator[K, V]) Next() (key K, ok bool) {
	e := it.c.next()
	if e == nil {
		return key, false
	}
	return e.key, true
}

// Value returns the value of the key returned by the last call of Next. It
// returns the zero value if there is no such key.
func (it *MapIterator[K, V]) Value() V {
	e := it.c.entry()
	if e == nil {
		var zero V
		return zero
	}
	return e.value
}

// Err returns ErrInvalidIterator if the map has been modified.
func (it *MapIterator[K, V]) Err() error { return it.c.err }

// All returns a sequence of all mappings.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.t.all(func(e *entry[K, V]) bool { return yield(e.key, e.value) })
	}
}
