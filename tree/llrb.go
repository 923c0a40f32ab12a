// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"github.com/chronos-tachyon/assert"

	"github.com/ulikunitz/clump"
	"github.com/ulikunitz/clump/pool"
)

// node is a node of the tree. The color of a node is the color of the link
// from its parent. The handle pool.Nil is the black leaf.
type node[K, V any] struct {
	key         K
	value       V
	left, right pool.Handle
	red         bool
}

// llrb is the left-leaning red-black tree shared by Set and Map.
type llrb[K, V any] struct {
	cmp   clump.CompareFunc[K]
	pool  *pool.Pool[node[K, V]]
	root  pool.Handle
	count int
	// incremented on every mutation; used to detect stale iterators
	mods uint64
}

func newLLRB[K, V any](cmp clump.CompareFunc[K]) *llrb[K, V] {
	if cmp == nil {
		panic("tree: compare function must not be nil")
	}
	return &llrb[K, V]{cmp: cmp, pool: pool.New[node[K, V]]()}
}

func (t *llrb[K, V]) node(h pool.Handle) *node[K, V] { return t.pool.Get(h) }

func (t *llrb[K, V]) isRed(h pool.Handle) bool {
	return h != pool.Nil && t.node(h).red
}

func (t *llrb[K, V]) left(h pool.Handle) pool.Handle {
	if h == pool.Nil {
		return pool.Nil
	}
	return t.node(h).left
}

func (t *llrb[K, V]) right(h pool.Handle) pool.Handle {
	if h == pool.Nil {
		return pool.Nil
	}
	return t.node(h).right
}

// rotateLeft rotates the red right link of h to the left.
//
//	  h                x
//	 / \              / \
//	a   x     ->     h   c
//	   / \          / \
//	  b   c        a   b
func (t *llrb[K, V]) rotateLeft(h pool.Handle) pool.Handle {
	n := t.node(h)
	x := n.right
	m := t.node(x)
	n.right = m.left
	m.left = h
	m.red = n.red
	n.red = true
	return x
}

// rotateRight rotates the red left link of h to the right.
//
//	    h            x
//	   / \          / \
//	  x   c   ->   a   h
//	 / \              / \
//	a   b            b   c
func (t *llrb[K, V]) rotateRight(h pool.Handle) pool.Handle {
	n := t.node(h)
	x := n.left
	m := t.node(x)
	n.left = m.right
	m.right = h
	m.red = n.red
	n.red = true
	return x
}

// flipColors flips the colors of h and its children.
func (t *llrb[K, V]) flipColors(h pool.Handle) {
	n := t.node(h)
	n.red = !n.red
	if n.left != pool.Nil {
		l := t.node(n.left)
		l.red = !l.red
	}
	if n.right != pool.Nil {
		r := t.node(n.right)
		r.red = !r.red
	}
}

// leanLeft restores the invariants of the subtree at h on the way up from
// an insertion or removal.
func (t *llrb[K, V]) leanLeft(h pool.Handle) pool.Handle {
	if t.isRed(t.right(h)) && !t.isRed(t.left(h)) {
		h = t.rotateLeft(h)
	}
	if t.isRed(t.left(h)) && t.isRed(t.left(t.left(h))) {
		h = t.rotateRight(h)
	}
	if t.isRed(t.left(h)) && t.isRed(t.right(h)) {
		t.flipColors(h)
	}
	return h
}

// moveRedLeft makes the left child of h or one of its children red,
// assuming h is red and both h.left and h.left.left are black.
func (t *llrb[K, V]) moveRedLeft(h pool.Handle) pool.Handle {
	t.flipColors(h)
	if t.isRed(t.left(t.right(h))) {
		n := t.node(h)
		n.right = t.rotateRight(n.right)
		h = t.rotateLeft(h)
		t.flipColors(h)
	}
	return h
}

// moveRedRight makes the right child of h or one of its children red,
// assuming h is red and both h.right and h.right.left are black.
func (t *llrb[K, V]) moveRedRight(h pool.Handle) pool.Handle {
	t.flipColors(h)
	if t.isRed(t.left(t.left(h))) {
		h = t.rotateRight(h)
		t.flipColors(h)
	}
	return h
}

// search returns the node with a key equal to key or pool.Nil.
func (t *llrb[K, V]) search(key K) pool.Handle {
	h := t.root
	for h != pool.Nil {
		n := t.node(h)
		switch t.cmp(key, n.key) {
		case clump.Less:
			h = n.left
		case clump.Greater:
			h = n.right
		default:
			return h
		}
	}
	return pool.Nil
}

// min returns the node with the smallest key of the subtree at h.
func (t *llrb[K, V]) min(h pool.Handle) pool.Handle {
	if h == pool.Nil {
		return pool.Nil
	}
	for {
		l := t.node(h).left
		if l == pool.Nil {
			return h
		}
		h = l
	}
}

// put inserts the key and value. If an equal key exists, its key and value
// are replaced and the old ones returned.
func (t *llrb[K, V]) put(key K, value V) (oldKey K, oldValue V, replaced bool) {
	var insert func(h pool.Handle) pool.Handle
	insert = func(h pool.Handle) pool.Handle {
		if h == pool.Nil {
			x := t.pool.Alloc()
			*t.node(x) = node[K, V]{key: key, value: value, red: true}
			t.count++
			return x
		}
		n := t.node(h)
		switch t.cmp(key, n.key) {
		case clump.Less:
			l := insert(n.left)
			t.node(h).left = l
		case clump.Greater:
			r := insert(n.right)
			t.node(h).right = r
		default:
			oldKey, oldValue, replaced = n.key, n.value, true
			n.key, n.value = key, value
			return h
		}
		return t.leanLeft(h)
	}
	t.root = insert(t.root)
	t.node(t.root).red = false
	t.mods++
	return oldKey, oldValue, replaced
}

// release returns the node to the pool and returns its key and value.
func (t *llrb[K, V]) release(h pool.Handle) (key K, value V) {
	n := t.node(h)
	key, value = n.key, n.value
	if err := t.pool.Release(h); err != nil {
		panic(err)
	}
	t.count--
	return key, value
}

// deleteMin removes the smallest node of the subtree at h. The removed key
// and value are stored in *k and *v.
func (t *llrb[K, V]) deleteMin(h pool.Handle, k *K, v *V) pool.Handle {
	if t.left(h) == pool.Nil {
		*k, *v = t.release(h)
		return pool.Nil
	}
	if !t.isRed(t.left(h)) && !t.isRed(t.left(t.left(h))) {
		h = t.moveRedLeft(h)
	}
	l := t.deleteMin(t.node(h).left, k, v)
	t.node(h).left = l
	return t.leanLeft(h)
}

// delete removes the node with a key equal to key from the subtree at h.
// The key must be present.
func (t *llrb[K, V]) delete(h pool.Handle, key K, k *K, v *V) pool.Handle {
	assert.Assertf(h != pool.Nil, "tree: key to delete not found")
	if t.cmp(key, t.node(h).key) == clump.Less {
		if !t.isRed(t.left(h)) && !t.isRed(t.left(t.left(h))) {
			h = t.moveRedLeft(h)
		}
		l := t.delete(t.node(h).left, key, k, v)
		t.node(h).left = l
		return t.leanLeft(h)
	}
	if t.isRed(t.left(h)) {
		h = t.rotateRight(h)
	}
	if t.cmp(key, t.node(h).key) == clump.Equal && t.right(h) == pool.Nil {
		*k, *v = t.release(h)
		return pool.Nil
	}
	if !t.isRed(t.right(h)) && !t.isRed(t.left(t.right(h))) {
		h = t.moveRedRight(h)
	}
	n := t.node(h)
	if t.cmp(key, n.key) == clump.Equal {
		*k, *v = n.key, n.value
		var sk K
		var sv V
		r := t.deleteMin(n.right, &sk, &sv)
		n = t.node(h)
		n.key, n.value = sk, sv
		n.right = r
	} else {
		r := t.delete(n.right, key, k, v)
		t.node(h).right = r
	}
	return t.leanLeft(h)
}

// remove removes the node with a key equal to key. An absent key leaves the
// tree untouched.
func (t *llrb[K, V]) remove(key K) (k K, v V, ok bool) {
	if t.search(key) == pool.Nil {
		return k, v, false
	}
	r := t.node(t.root)
	if !t.isRed(r.left) && !t.isRed(r.right) {
		r.red = true
	}
	t.root = t.delete(t.root, key, &k, &v)
	if t.root != pool.Nil {
		t.node(t.root).red = false
	}
	t.mods++
	return k, v, true
}

// pop removes the node with the smallest key.
func (t *llrb[K, V]) pop() (k K, v V, ok bool) {
	if t.root == pool.Nil {
		return k, v, false
	}
	r := t.node(t.root)
	if !t.isRed(r.left) && !t.isRed(r.right) {
		r.red = true
	}
	t.root = t.deleteMin(t.root, &k, &v)
	if t.root != pool.Nil {
		t.node(t.root).red = false
	}
	t.mods++
	return k, v, true
}

func (t *llrb[K, V]) clear() {
	t.pool.Clear()
	t.root = pool.Nil
	t.count = 0
	t.mods++
}

// walker iterates in ascending key order using an explicit stack of the
// nodes whose left subtree is being visited.
type walker[K, V any] struct {
	t     *llrb[K, V]
	stack []pool.Handle
	curr  pool.Handle
	mods  uint64
	err   error
}

func (t *llrb[K, V]) walker() walker[K, V] {
	w := walker[K, V]{t: t, mods: t.mods}
	w.descend(t.root)
	return w
}

// descend pushes h and all its left descendants.
func (w *walker[K, V]) descend(h pool.Handle) {
	for h != pool.Nil {
		w.stack = append(w.stack, h)
		h = w.t.node(h).left
	}
}

// next returns the next node or nil at the end.
func (w *walker[K, V]) next() *node[K, V] {
	if w.err != nil {
		return nil
	}
	if w.mods != w.t.mods {
		w.err = ErrInvalidIterator
		w.stack = nil
		w.curr = pool.Nil
		return nil
	}
	k := len(w.stack) - 1
	if k < 0 {
		w.curr = pool.Nil
		return nil
	}
	h := w.stack[k]
	w.stack = w.stack[:k]
	n := w.t.node(h)
	w.descend(n.right)
	w.curr = h
	return n
}

// node returns the node returned by the last call of next or nil.
func (w *walker[K, V]) node() *node[K, V] {
	if w.curr == pool.Nil || w.mods != w.t.mods {
		return nil
	}
	return w.t.node(w.curr)
}

// all calls yield for every node in ascending order; the tree must not be
// modified meanwhile.
func (t *llrb[K, V]) all(yield func(*node[K, V]) bool) {
	w := t.walker()
	for n := w.next(); n != nil; n = w.next() {
		if !yield(n) {
			return
		}
	}
}
