// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package pool provides a slab allocator for many small objects of the same
// type.
//
// A pool is managed as a list of blocks. Each block holds a fixed number of
// slots sized to keep a block close to 4 KiB. Objects are referenced by
// handles instead of pointers, so a released slot can never be reached
// through a stale pointer and a double release is detected.
//
// Slots that haven't been handed out are linked into a free list. When the
// free list is exhausted a new block is taken from the block cache or
// allocated, and all its slots are linked into the free list.
package pool

import (
	"errors"
	"unsafe"

	"github.com/chronos-tachyon/assert"
)

// Handle references an object in a pool. The zero value Nil never
// references an object.
type Handle uint32

// Nil is the handle that doesn't reference any object.
const Nil Handle = 0

// targetBlockSize is the number of bytes a block should roughly use.
const targetBlockSize = 4096

// minSlots is the minimum number of slots in a block.
const minSlots = 8

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// ErrInvalidHandle indicates that a handle doesn't reference an allocated
// object of the pool.
var ErrInvalidHandle = errors.New("pool: invalid handle")

// block stores the slots. The used flags track which slots are handed out.
type block[T any] struct {
	slots []T
	used  []bool
}

// Pool is a slab allocator for objects of type T. The zero value is not
// usable; create pools with New.
type Pool[T any] struct {
	// live blocks; a handle h references blocks[(h-1)/n].slots[(h-1)%n]
	blocks []*block[T]
	// cleared blocks waiting for reuse
	cache []*block[T]
	// free list of handles; the top of the stack is the end of the slice
	free []Handle
	// number of slots per block
	n int
	// number of allocated objects
	live int
}

// slotSize returns the size of a slot for type T. A slot is never smaller
// than a pointer.
func slotSize[T any]() int {
	var zero T
	s := int(unsafe.Sizeof(zero))
	if s < ptrSize {
		s = ptrSize
	}
	return s
}

// New creates a new pool for objects of type T.
func New[T any]() *Pool[T] {
	n := (targetBlockSize - ptrSize) / slotSize[T]()
	if n < minSlots {
		n = minSlots
	}
	return &Pool[T]{n: n}
}

// SlotsPerBlock returns the number of objects stored in one block.
func (p *Pool[T]) SlotsPerBlock() int { return p.n }

// Len returns the number of allocated objects.
func (p *Pool[T]) Len() int { return p.live }

// Blocks returns the number of blocks in use.
func (p *Pool[T]) Blocks() int { return len(p.blocks) }

// Cached returns the number of blocks kept for reuse.
func (p *Pool[T]) Cached() int { return len(p.cache) }

// blockAlloc takes a block from the cache or allocates a new one.
func (p *Pool[T]) blockAlloc() *block[T] {
	if k := len(p.cache) - 1; k >= 0 {
		b := p.cache[k]
		p.cache[k] = nil
		p.cache = p.cache[:k]
		return b
	}
	return &block[T]{
		slots: make([]T, p.n),
		used:  make([]bool, p.n),
	}
}

// addBlock adds a block and links all its slots into the free list. The
// first slot will be returned by the next Alloc.
func (p *Pool[T]) addBlock() {
	assert.Assertf(len(p.free) == 0, "pool: free list not empty")
	assert.Assertf(int64(len(p.blocks)+1)*int64(p.n) < 1<<32-1,
		"pool: handle space exhausted")
	b := p.blockAlloc()
	base := Handle(len(p.blocks)*p.n) + 1
	p.blocks = append(p.blocks, b)
	for i := p.n - 1; i >= 0; i-- {
		p.free = append(p.free, base+Handle(i))
	}
}

// locate returns the block and slot index for a handle.
func (p *Pool[T]) locate(h Handle) (b *block[T], i int, ok bool) {
	if h == Nil {
		return nil, 0, false
	}
	k := int(h - 1)
	j := k / p.n
	if j >= len(p.blocks) {
		return nil, 0, false
	}
	return p.blocks[j], k % p.n, true
}

// Alloc allocates a new object and returns its handle. The object has the
// zero value of T.
func (p *Pool[T]) Alloc() Handle {
	if len(p.free) == 0 {
		p.addBlock()
	}
	k := len(p.free) - 1
	h := p.free[k]
	p.free = p.free[:k]
	b, i, ok := p.locate(h)
	assert.Assertf(ok && !b.used[i], "pool: free list corrupted at %d", h)
	b.used[i] = true
	p.live++
	return h
}

// Get returns a pointer to the object referenced by h. The pointer stays
// valid until the pool is cleared or destroyed. Get panics if h doesn't
// reference an allocated object.
func (p *Pool[T]) Get(h Handle) *T {
	b, i, ok := p.locate(h)
	if !ok || !b.used[i] {
		panic(ErrInvalidHandle)
	}
	return &b.slots[i]
}

// Release releases the object back into the pool. The slot is reset to the
// zero value so that the pool doesn't keep references alive.
func (p *Pool[T]) Release(h Handle) error {
	b, i, ok := p.locate(h)
	if !ok || !b.used[i] {
		return ErrInvalidHandle
	}
	var zero T
	b.slots[i] = zero
	b.used[i] = false
	p.free = append(p.free, h)
	p.live--
	return nil
}

// resetBlock clears all slots of the block.
func resetBlock[T any](b *block[T]) {
	clear(b.slots)
	clear(b.used)
}

// Clear releases all objects. The blocks are kept in a cache for reuse by
// later allocations. All handles become invalid.
func (p *Pool[T]) Clear() {
	for i, b := range p.blocks {
		resetBlock(b)
		p.cache = append(p.cache, b)
		p.blocks[i] = nil
	}
	p.blocks = p.blocks[:0]
	p.free = p.free[:0]
	p.live = 0
}

// Destroy drops all blocks, live and cached. The pool can still be used
// afterwards and will allocate fresh blocks.
func (p *Pool[T]) Destroy() {
	p.blocks = nil
	p.cache = nil
	p.free = nil
	p.live = 0
}
