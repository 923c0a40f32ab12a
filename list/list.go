// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package list implements a singly linked list. Adding items at the head or
// the tail and iterating over the items are fast operations; removing an
// arbitrary item requires a linear search.
//
// The list owns only its nodes. Items are compared with == and are never
// copied deeply.
package list

import (
	"errors"
	"iter"

	"github.com/ulikunitz/clump/pool"
)

// ErrInvalidIterator indicates that items have been removed from the list
// after the iterator has been created.
var ErrInvalidIterator = errors.New("list: iterator invalidated by removal")

// node is a list node.
type node[T any] struct {
	item T
	next pool.Handle
}

// List is a singly linked list. Use New to create one. A List is not safe
// for concurrent use.
type List[T comparable] struct {
	pool *pool.Pool[node[T]]
	head pool.Handle
	tail pool.Handle
	n    int
	// counts removals; iterators compare it with their snapshot
	removals uint64
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{pool: pool.New[node[T]]()}
}

// node returns the node for handle h.
func (l *List[T]) node(h pool.Handle) *node[T] { return l.pool.Get(h) }

// release returns a node to the pool.
func (l *List[T]) release(h pool.Handle) {
	if err := l.pool.Release(h); err != nil {
		panic(err)
	}
}

// IsEmpty reports whether the list has no items.
func (l *List[T]) IsEmpty() bool { return l.head == pool.Nil }

// Len returns the number of items in the list.
func (l *List[T]) Len() int { return l.n }

// Add adds the item at the head of the list and returns it.
func (l *List[T]) Add(item T) T {
	h := l.pool.Alloc()
	*l.node(h) = node[T]{item: item, next: l.head}
	l.head = h
	if l.tail == pool.Nil {
		l.tail = h
	}
	l.n++
	return item
}

// AddTail adds the item at the tail of the list and returns it.
func (l *List[T]) AddTail(item T) T {
	if l.tail == pool.Nil {
		return l.Add(item)
	}
	h := l.pool.Alloc()
	*l.node(h) = node[T]{item: item}
	l.node(l.tail).next = h
	l.tail = h
	l.n++
	return item
}

// Remove removes the first item equal to item. The second return value
// reports whether an item has been found.
func (l *List[T]) Remove(item T) (removed T, ok bool) {
	prev := pool.Nil
	for h := l.head; h != pool.Nil; {
		n := l.node(h)
		if n.item == item {
			removed = n.item
			if prev == pool.Nil {
				l.head = n.next
			} else {
				l.node(prev).next = n.next
			}
			if l.tail == h {
				l.tail = prev
			}
			l.release(h)
			l.n--
			l.removals++
			return removed, true
		}
		prev, h = h, n.next
	}
	return removed, false
}

// Contains checks whether the list contains an item equal to item.
func (l *List[T]) Contains(item T) bool {
	for h := l.head; h != pool.Nil; {
		n := l.node(h)
		if n.item == item {
			return true
		}
		h = n.next
	}
	return false
}

// Peek returns the head item without removing it.
func (l *List[T]) Peek() (item T, ok bool) {
	if l.head == pool.Nil {
		return item, false
	}
	return l.node(l.head).item, true
}

// Pop removes the head item and returns it. This is useful for using the
// list as a stack or, together with AddTail, as a FIFO.
func (l *List[T]) Pop() (item T, ok bool) {
	h := l.head
	if h == pool.Nil {
		return item, false
	}
	n := l.node(h)
	item = n.item
	l.head = n.next
	if l.head == pool.Nil {
		l.tail = pool.Nil
	}
	l.release(h)
	l.n--
	l.removals++
	return item, true
}

// Clear removes all items from the list. The node memory is kept for
// reuse.
func (l *List[T]) Clear() {
	l.pool.Clear()
	l.head = pool.Nil
	l.tail = pool.Nil
	l.n = 0
	l.removals++
}

// Iterator iterates over the items of a list from head to tail.
//
// Items added at the tail after the iterator has been created will be
// returned if the iterator hasn't reached the end yet. Items added at the
// head are not returned. Removing items from the list invalidates the
// iterator.
type Iterator[T comparable] struct {
	list     *List[T]
	next     pool.Handle
	removals uint64
	err      error
}

// Iterator creates an iterator positioned before the head of the list.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l, next: l.head, removals: l.removals}
}

// Next returns the next item. The second return value is false at the end
// of the list or if the iterator became invalid.
func (it *Iterator[T]) Next() (item T, ok bool) {
	if it.err != nil {
		return item, false
	}
	l := it.list
	if it.removals != l.removals {
		it.err = ErrInvalidIterator
		return item, false
	}
	if it.next == pool.Nil {
		// The tail may have grown since the last call.
		return item, false
	}
	n := l.node(it.next)
	it.next = n.next
	return n.item, true
}

// Err returns ErrInvalidIterator if the list lost items while iterating.
func (it *Iterator[T]) Err() error { return it.err }

// All returns a sequence of the list items from head to tail. The list must
// not be modified while the sequence is consumed.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := l.head; h != pool.Nil; {
			n := l.node(h)
			if !yield(n.item) {
				return
			}
			h = n.next
		}
	}
}

// Items returns the items in a new slice.
func (l *List[T]) Items() []T {
	items := make([]T, 0, l.n)
	for item := range l.All() {
		items = append(items, item)
	}
	return items
}

// Sort sorts the list in place using a stable merge sort. The nodes are
// relinked; no items are copied. Iterators created before Sort must not be
// used afterwards.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.n < 2 {
		return
	}
	l.head = l.mergeSort(l.head, l.n, less)
	h := l.head
	for {
		next := l.node(h).next
		if next == pool.Nil {
			break
		}
		h = next
	}
	l.tail = h
	l.removals++
}

// mergeSort sorts the chain of n nodes starting at h and returns the new
// head. The last node of the result has no successor.
func (l *List[T]) mergeSort(h pool.Handle, n int, less func(a, b T) bool) pool.Handle {
	if n < 2 {
		if h != pool.Nil {
			l.node(h).next = pool.Nil
		}
		return h
	}
	k := n / 2
	m := h
	for i := 0; i < k; i++ {
		m = l.node(m).next
	}
	a := l.mergeSort(h, k, less)
	b := l.mergeSort(m, n-k, less)

	var head, last pool.Handle
	for a != pool.Nil && b != pool.Nil {
		var h pool.Handle
		// b wins only if strictly less; keeps equal items in order
		if less(l.node(b).item, l.node(a).item) {
			h, b = b, l.node(b).next
		} else {
			h, a = a, l.node(a).next
		}
		if last == pool.Nil {
			head = h
		} else {
			l.node(last).next = h
		}
		last = h
	}
	if a == pool.Nil {
		a = b
	}
	l.node(last).next = a
	return head
}
