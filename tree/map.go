// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"iter"

	"github.com/ulikunitz/clump"
	"github.com/ulikunitz/clump/pool"
)

// Map is an ordered map.
type Map[K, V any] struct {
	t *llrb[K, V]
}

// NewMap creates an empty map with keys ordered by cmp.
func NewMap[K, V any](cmp clump.CompareFunc[K]) *Map[K, V] {
	return &Map[K, V]{t: newLLRB[K, V](cmp)}
}

// Count returns the number of mappings.
func (m *Map[K, V]) Count() int { return m.t.count }

// Contains checks whether the map has a mapping for key.
func (m *Map[K, V]) Contains(key K) bool { return m.t.search(key) != pool.Nil }

// Peek returns the smallest key.
func (m *Map[K, V]) Peek() (key K, ok bool) {
	h := m.t.min(m.t.root)
	if h == pool.Nil {
		return key, false
	}
	return m.t.node(h).key, true
}

// Get returns the value mapped to key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	h := m.t.search(key)
	if h == pool.Nil {
		return value, false
	}
	return m.t.node(h).value, true
}

// Put maps key to value. The previous value is returned if the key has
// been present.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	_, old, replaced = m.t.put(key, value)
	return old, replaced
}

// RemoveKey removes the mapping for key and returns the stored key.
func (m *Map[K, V]) RemoveKey(key K) (removed K, ok bool) {
	removed, _, ok = m.t.remove(key)
	return removed, ok
}

// Remove removes the mapping for key and returns its value.
func (m *Map[K, V]) Remove(key K) (value V, ok bool) {
	_, value, ok = m.t.remove(key)
	return value, ok
}

// Pop removes the mapping with the smallest key.
func (m *Map[K, V]) Pop() (key K, value V, ok bool) {
	return m.t.pop()
}

// Clear removes all mappings.
func (m *Map[K, V]) Clear() { m.t.clear() }

// MapIterator returns the keys of a map in ascending order.
type MapIterator[K, V any] struct {
	w walker[K, V]
}

// Iterator returns an iterator positioned before the smallest key.
func (m *Map[K, V]) Iterator() *MapIterator[K, V] {
	return &MapIterator[K, V]{w: m.t.walker()}
}

// Next returns the next key.
func (it *MapIterator[K, V]) Next() (key K, ok bool) {
	n := it.w.next()
	if n == nil {
		return key, false
	}
	return n.key, true
}

// Value returns the value for the key returned by the last call of Next.
func (it *MapIterator[K, V]) Value() V {
	n := it.w.node()
	if n == nil {
		var zero V
		return zero
	}
	return n.value
}

// Err returns ErrInvalidIterator if the map has been modified.
func (it *MapIterator[K, V]) Err() error { return it.w.err }

// All returns the mappings in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.t.all(func(n *node[K, V]) bool { return yield(n.key, n.value) })
	}
}
