// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"iter"

	"github.com/ulikunitz/clump"
	"github.com/ulikunitz/clump/pool"
)

// Set is an ordered set of keys.
type Set[K any] struct {
	t *llrb[K, struct{}]
}

// NewSet creates an empty set ordered by cmp.
func NewSet[K any](cmp clump.CompareFunc[K]) *Set[K] {
	return &Set[K]{t: newLLRB[K, struct{}](cmp)}
}

// Count returns the number of keys.
func (s *Set[K]) Count() int { return s.t.count }

// Contains checks whether the set contains a key equal to key.
func (s *Set[K]) Contains(key K) bool { return s.t.search(key) != pool.Nil }

// Peek returns the smallest key.
func (s *Set[K]) Peek() (key K, ok bool) {
	h := s.t.min(s.t.root)
	if h == pool.Nil {
		return key, false
	}
	return s.t.node(h).key, true
}

// GetKey returns the stored key equal to key.
func (s *Set[K]) GetKey(key K) (stored K, ok bool) {
	h := s.t.search(key)
	if h == pool.Nil {
		return stored, false
	}
	return s.t.node(h).key, true
}

// Add adds the key. If an equal key was stored, it is replaced and
// returned.
func (s *Set[K]) Add(key K) (old K, replaced bool) {
	old, _, replaced = s.t.put(key, struct{}{})
	return old, replaced
}

// RemoveKey removes the key equal to key and returns the stored key.
func (s *Set[K]) RemoveKey(key K) (removed K, ok bool) {
	removed, _, ok = s.t.remove(key)
	return removed, ok
}

// Pop removes the smallest key and returns it.
func (s *Set[K]) Pop() (key K, ok bool) {
	key, _, ok = s.t.pop()
	return key, ok
}

// Clear removes all keys.
func (s *Set[K]) Clear() { s.t.clear() }

// SetIterator returns the keys of a set in ascending order.
type SetIterator[K any] struct {
	w walker[K, struct{}]
}

// Iterator returns an iterator positioned before the smallest key. Any
// modification of the set invalidates the iterator.
func (s *Set[K]) Iterator() *SetIterator[K] {
	return &SetIterator[K]{w: s.t.walker()}
}

// Next returns the next key.
func (it *SetIterator[K]) Next() (key K, ok bool) {
	n := it.w.next()
	if n == nil {
		return key, false
	}
	return n.key, true
}

// Err returns ErrInvalidIterator if the set has been modified.
func (it *SetIterator[K]) Err() error { return it.w.err }

// All returns the keys in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.t.all(func(n *node[K, struct{}]) bool { return yield(n.key) })
	}
}
