// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hcodec

import (
	"cmp"
	"io"
	"slices"

	"github.com/chronos-tachyon/assert"

	"github.com/ulikunitz/clump"
	"github.com/ulikunitz/clump/bitarray"
	"github.com/ulikunitz/clump/tree"
)

const (
	// MaxSymbols is the size of the alphabet.
	MaxSymbols = 256
	// MaxNodes is the number of nodes available for a code tree.
	MaxNodes = 2 * MaxSymbols
	// MaxCodeBits is the maximum length of a symbol code.
	MaxCodeBits = bitarray.MaxRange - 1
)

// Symbol describes the code of a byte value.
type Symbol struct {
	// canonical code; the lowest NBits bits are used
	Code uint32
	// length of the code; zero for values not present in the block
	NBits int
	// number of occurrences in the encoded block; zero after Decode
	NRefs int
	Value byte
}

// none marks a missing node or symbol.
const none = -1

// hnode is a node of a Huffman tree. Leaf nodes have a symbol.
type hnode struct {
	left, right int32
	sym         int32
	weight      int
}

// Codec encodes and decodes blocks. The codec keeps no state between calls
// except its scratch buffers, so a single codec can be used for any number
// of blocks. A Codec is not safe for concurrent use.
type Codec struct {
	symbols [MaxSymbols]Symbol
	nodes   [MaxNodes]hnode
	// priority queue of node indexes
	pqueue *tree.Set[int32]
	bits   *bitarray.Array
}

// New creates a new codec.
func New() *Codec {
	c := &Codec{bits: bitarray.New()}
	c.pqueue = tree.NewSet(c.compareNodes)
	c.resetSymbols()
	return c
}

// resetSymbols clears the code information of all symbols.
func (c *Codec) resetSymbols() {
	for i := range c.symbols {
		c.symbols[i] = Symbol{Value: byte(i)}
	}
}

// Codebook returns the symbol table computed by the last call of Encode or
// Decode.
func (c *Codec) Codebook() [MaxSymbols]Symbol { return c.symbols }

// compareNodes orders nodes by weight. Leaf nodes come before inner nodes
// of the same weight and are ordered by symbol value. Inner nodes of the
// same weight are ordered by creation. The order is total, so that no node
// replaces another in the priority queue.
func (c *Codec) compareNodes(a, b int32) clump.Ordering {
	x, y := &c.nodes[a], &c.nodes[b]
	if x.weight != y.weight {
		return clump.Compare(x.weight, y.weight)
	}
	xleaf, yleaf := x.sym != none, y.sym != none
	switch {
	case xleaf && !yleaf:
		return clump.Less
	case !xleaf && yleaf:
		return clump.Greater
	case xleaf && yleaf:
		if o := clump.Compare(x.sym, y.sym); o != clump.Equal {
			return o
		}
	}
	return clump.Compare(a, b)
}

// scan counts the occurrences of each byte value.
func (c *Codec) scan(in []byte) {
	c.resetSymbols()
	for _, b := range in {
		c.symbols[b].NRefs++
	}
}

// build builds the Huffman tree and returns the index of the root. It
// returns none if no symbols are present.
func (c *Codec) build() int32 {
	c.pqueue.Clear()
	n := int32(0)
	for i := range c.symbols {
		s := &c.symbols[i]
		if s.NRefs == 0 {
			continue
		}
		c.nodes[n] = hnode{left: none, right: none, sym: int32(i),
			weight: s.NRefs}
		c.pqueue.Add(n)
		n++
	}
	if n == 0 {
		return none
	}
	for c.pqueue.Count() > 1 {
		n0, _ := c.pqueue.Pop()
		n1, _ := c.pqueue.Pop()
		assert.Assertf(n < MaxNodes, "hcodec: node budget exceeded")
		c.nodes[n] = hnode{
			left:   n1,
			right:  n0,
			sym:    none,
			weight: c.nodes[n0].weight + c.nodes[n1].weight,
		}
		c.pqueue.Add(n)
		n++
	}
	root, _ := c.pqueue.Pop()
	return root
}

// assign sets the code lengths of all leaves below node k. A single leaf
// still requires one bit. It returns ErrCodeTooLong if a code exceeds
// MaxCodeBits.
func (c *Codec) assign(k int32, nBits int) error {
	n := &c.nodes[k]
	if n.sym != none {
		if nBits > MaxCodeBits {
			return ErrCodeTooLong
		}
		c.symbols[n.sym].NBits = max(nBits, 1)
		return nil
	}
	if err := c.assign(n.left, nBits+1); err != nil {
		return err
	}
	return c.assign(n.right, nBits+1)
}

// canonicalize assigns canonical codes based on the code lengths. The
// symbols are ordered by code length and value. The code is incremented
// for each symbol and shifted whenever the code length increases.
func (c *Codec) canonicalize() {
	var order [MaxSymbols]*Symbol
	for i := range c.symbols {
		order[i] = &c.symbols[i]
	}
	slices.SortFunc(order[:], func(a, b *Symbol) int {
		if a.NBits != b.NBits {
			return cmp.Compare(a.NBits, b.NBits)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	var code uint32
	nBits := 0
	for _, s := range order {
		for nBits < s.NBits {
			code <<= 1
			nBits++
		}
		s.Code = code
		if nBits > 0 {
			code++
		}
	}
}

// MaxEncodedLen returns the maximum number of bytes required to encode n
// bytes. The codebook needs up to BookMaxBits per symbol and a Huffman code
// never needs more than 8 bits per byte on average.
func MaxEncodedLen(n int) int {
	return (MaxSymbols*BookMaxBits+7)/8 + n + 1
}

// Encode compresses in into out and returns the number of bytes written.
// The output consists of the codebook followed by the coded bytes. Encode
// returns io.ErrShortBuffer if out is too small. The length of in is not
// stored; the caller needs it for decoding.
func (c *Codec) Encode(out, in []byte) (n int, err error) {
	c.scan(in)
	if root := c.build(); root != none {
		if err = c.assign(root, 0); err != nil {
			return 0, err
		}
	}
	c.canonicalize()

	c.bits.Wrap(out, 8*len(out))
	c.bits.Clear()
	for i := range c.symbols {
		s := &c.symbols[i]
		debugSymbol(s)
		b := Book[s.NBits]
		c.bits.PushRange(int(b.NBits), uint32(b.Code))
	}
	for _, v := range in {
		s := &c.symbols[v]
		c.bits.PushRange(s.NBits, s.Code)
	}
	if c.bits.Pos() > c.bits.Len() {
		return 0, io.ErrShortBuffer
	}
	return c.bits.Bytes(), nil
}

// bookIndex maps the codes of Book to code lengths.
var bookIndex = make(map[BookCode]int, MaxSymbols)

func init() {
	for i, b := range Book {
		bookIndex[b] = i
	}
}

// readLength reads a code length encoded with Book. It returns -1 if no
// code of up to BookMaxBits bits matches.
func (c *Codec) readLength() int {
	var code uint16
	for nBits := uint8(1); nBits <= BookMaxBits; nBits++ {
		b := c.bits.Pop()
		if b < 0 {
			break
		}
		code = code<<1 | uint16(b)
		if i, ok := bookIndex[BookCode{Code: code, NBits: nBits}]; ok {
			return i
		}
	}
	return -1
}

// newNode allocates an empty node at index k. It returns false if the node
// budget is exhausted.
func (c *Codec) newNode(k *int32) (int32, bool) {
	if *k >= MaxNodes {
		return none, false
	}
	i := *k
	c.nodes[i] = hnode{left: none, right: none, sym: none}
	*k++
	return i, true
}

// restore rebuilds the code tree from the canonical codes. Node 0 is the
// root.
func (c *Codec) restore() error {
	k := int32(0)
	c.newNode(&k)
	for i := range c.symbols {
		s := &c.symbols[i]
		if s.NBits == 0 {
			continue
		}
		node := int32(0)
		for j := s.NBits - 1; j >= 0; j-- {
			n := &c.nodes[node]
			if n.sym != none {
				// an existing code is a prefix of this one
				return ErrCorruptCodebook
			}
			var ok bool
			if n.left == none {
				if n.left, ok = c.newNode(&k); !ok {
					return ErrCorruptCodebook
				}
			}
			if n.right == none {
				if n.right, ok = c.newNode(&k); !ok {
					return ErrCorruptCodebook
				}
			}
			if (s.Code>>j)&1 != 0 {
				node = n.right
			} else {
				node = n.left
			}
		}
		n := &c.nodes[node]
		if n.sym != none || n.left != none {
			return ErrCorruptCodebook
		}
		n.sym = int32(i)
		debugSymbol(s)
	}
	return nil
}

// readCodebook reads the code lengths and rebuilds the code tree.
func (c *Codec) readCodebook() error {
	c.resetSymbols()
	for i := range c.symbols {
		n := c.readLength()
		if n < 0 || n > MaxCodeBits {
			return ErrCorruptCodebook
		}
		c.symbols[i].NBits = n
	}
	c.canonicalize()
	return c.restore()
}

// Decode decompresses in into out. It decodes up to len(out) bytes and
// stops early if the input is exhausted. It returns the number of bytes
// decoded. ErrCorruptCodebook is returned if the codebook cannot be
// decoded.
func (c *Codec) Decode(out, in []byte) (n int, err error) {
	c.bits.Wrap(in, 8*len(in))
	if err = c.readCodebook(); err != nil {
		return 0, err
	}
	for n < len(out) {
		k := int32(0)
		for k != none && c.nodes[k].sym == none {
			b := c.bits.Pop()
			if b < 0 {
				return n, nil
			}
			if b != 0 {
				k = c.nodes[k].right
			} else {
				k = c.nodes[k].left
			}
		}
		if k == none {
			return n, nil
		}
		out[n] = c.symbols[c.nodes[k].sym].Value
		n++
	}
	return n, nil
}
