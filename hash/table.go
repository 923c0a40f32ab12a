// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hash

import (
	"github.com/ulikunitz/clump"
	"github.com/ulikunitz/clump/pool"
)

// primes provides the supported table sizes.
var primes = [...]uint32{
	53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593, 49157, 98317,
	196613, 393241, 786433, 1572869, 3145739, 6291469, 12582917, 25165843,
	50331653, 100663319, 201326611, 402653189, 805306457, 1610612741,
}

// entry is a key stored in a bucket chain. The hash code is cached, so that
// resizing doesn't require calling the hash function again.
type entry[K, V any] struct {
	key   K
	value V
	hcode uint32
	next  pool.Handle
}

// table is the chained hash table shared by Set and Map.
type table[K, V any] struct {
	hash    HashFunc[K]
	cmp     clump.CompareFunc[K]
	pool    *pool.Pool[entry[K, V]]
	buckets []pool.Handle
	nPrime  int
	count   int
	// incremented on every mutation; used to detect stale iterators
	mods uint64
}

func newTable[K, V any](hash HashFunc[K], cmp clump.CompareFunc[K]) *table[K, V] {
	if hash == nil || cmp == nil {
		panic("hash: hash and compare functions must not be nil")
	}
	return &table[K, V]{
		hash:    hash,
		cmp:     cmp,
		pool:    pool.New[entry[K, V]](),
		buckets: make([]pool.Handle, primes[0]),
	}
}

// bucket returns the bucket index for the hash code.
func (t *table[K, V]) bucket(hcode uint32) int {
	return int(hcode % uint32(len(t.buckets)))
}

// limit returns the number of entries at which the table is expanded.
func (t *table[K, V]) limit() int {
	return len(t.buckets) * 2 / 3
}

// slimit returns the number of entries at which the table is shrunk. It is
// zero for the smallest table.
func (t *table[K, V]) slimit() int {
	if t.nPrime == 0 {
		return 0
	}
	return int(primes[t.nPrime-1] / 2)
}

// resize moves all entries into a table of size primes[nPrime].
func (t *table[K, V]) resize(nPrime int) {
	old := t.buckets
	t.nPrime = nPrime
	t.buckets = make([]pool.Handle, primes[nPrime])
	for _, h := range old {
		for h != pool.Nil {
			e := t.pool.Get(h)
			next := e.next
			b := t.bucket(e.hcode)
			e.next = t.buckets[b]
			t.buckets[b] = h
			h = next
		}
	}
}

// find returns the handle of the first entry equal to key and the handle of
// its predecessor in the chain.
func (t *table[K, V]) find(key K, hcode uint32) (h, prev pool.Handle) {
	for h = t.buckets[t.bucket(hcode)]; h != pool.Nil; {
		e := t.pool.Get(h)
		if e.hcode == hcode && t.cmp(key, e.key) == clump.Equal {
			return h, prev
		}
		prev, h = h, e.next
	}
	return pool.Nil, pool.Nil
}

func (t *table[K, V]) lookup(key K) *entry[K, V] {
	h, _ := t.find(key, t.hash(key))
	if h == pool.Nil {
		return nil
	}
	return t.pool.Get(h)
}

// insert adds a new entry at the head of its bucket. Existing entries with
// an equal key are not replaced.
func (t *table[K, V]) insert(key K, value V) {
	hcode := t.hash(key)
	if t.count >= t.limit() && t.nPrime+1 < len(primes) {
		t.resize(t.nPrime + 1)
	}
	b := t.bucket(hcode)
	h := t.pool.Alloc()
	*t.pool.Get(h) = entry[K, V]{
		key:   key,
		value: value,
		hcode: hcode,
		next:  t.buckets[b],
	}
	t.buckets[b] = h
	t.count++
	t.mods++
}

// remove removes the first entry equal to key.
func (t *table[K, V]) remove(key K) (e entry[K, V], ok bool) {
	hcode := t.hash(key)
	h, prev := t.find(key, hcode)
	if h == pool.Nil {
		return e, false
	}
	p := t.pool.Get(h)
	e = *p
	if prev == pool.Nil {
		t.buckets[t.bucket(hcode)] = p.next
	} else {
		t.pool.Get(prev).next = p.next
	}
	if err := t.pool.Release(h); err != nil {
		panic(err)
	}
	t.count--
	t.mods++
	if t.count == t.slimit() && t.nPrime > 0 {
		t.resize(t.nPrime - 1)
	}
	return e, true
}

// peek returns the first entry of the first nonempty bucket.
func (t *table[K, V]) peek() *entry[K, V] {
	for _, h := range t.buckets {
		if h != pool.Nil {
			return t.pool.Get(h)
		}
	}
	return nil
}

func (t *table[K, V]) clear() {
	if t.nPrime > 0 {
		t.nPrime = 0
		t.buckets = make([]pool.Handle, primes[0])
	} else {
		clear(t.buckets)
	}
	t.pool.Clear()
	t.count = 0
	t.mods++
}

// cursor walks the bucket chains in table order.
type cursor[K, V any] struct {
	t      *table[K, V]
	bucket int
	curr   pool.Handle
	mods   uint64
	done   bool
	err    error
}

func (t *table[K, V]) cursor() cursor[K, V] {
	return cursor[K, V]{t: t, mods: t.mods}
}

// next advances the cursor and returns the entry or nil at the end.
func (c *cursor[K, V]) next() *entry[K, V] {
	if c.done {
		return nil
	}
	t := c.t
	if c.mods != t.mods {
		c.err = ErrInvalidIterator
		c.done = true
		c.curr = pool.Nil
		return nil
	}
	h := pool.Nil
	if c.curr != pool.Nil {
		h = t.pool.Get(c.curr).next
	}
	for h == pool.Nil && c.bucket < len(t.buckets) {
		h = t.buckets[c.bucket]
		c.bucket++
	}
	c.curr = h
	if h == pool.Nil {
		c.done = true
		return nil
	}
	return t.pool.Get(h)
}

// entry returns the current entry or nil.
func (c *cursor[K, V]) entry() *entry[K, V] {
	if c.curr == pool.Nil || c.mods != c.t.mods {
		return nil
	}
	return c.t.pool.Get(c.curr)
}

// all yields every entry; the table must not be modified meanwhile.
func (t *table[K, V]) all(yield func(*entry[K, V]) bool) {
	for _, h := range t.buckets {
		for h != pool.Nil {
			e := t.pool.Get(h)
			if !yield(e) {
				return
			}
			h = e.next
		}
	}
}
