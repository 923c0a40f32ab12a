package tree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ulikunitz/clump"
	"github.com/ulikunitz/clump/pool"
)

// verify checks the red-black invariants of the tree: the root is black,
// no red node has a red child, right links are black, every path to a leaf
// has the same number of black nodes and the keys are in order.
func verify[K, V any](t *testing.T, tr *llrb[K, V]) {
	t.Helper()
	if tr.isRed(tr.root) {
		t.Fatalf("root is red")
	}
	var count int
	var check func(h pool.Handle, lo, hi *K) int
	check = func(h pool.Handle, lo, hi *K) int {
		if h == pool.Nil {
			return 1
		}
		count++
		n := tr.node(h)
		if lo != nil && tr.cmp(*lo, n.key) != clump.Less {
			t.Fatalf("key order violated")
		}
		if hi != nil && tr.cmp(n.key, *hi) != clump.Less {
			t.Fatalf("key order violated")
		}
		if tr.isRed(n.right) {
			t.Fatalf("right leaning red link")
		}
		if n.red && tr.isRed(n.left) {
			t.Fatalf("two red links in a row")
		}
		bl := check(n.left, lo, &n.key)
		br := check(n.right, &n.key, hi)
		if bl != br {
			t.Fatalf("black height mismatch: %d != %d", bl, br)
		}
		if !n.red {
			bl++
		}
		return bl
	}
	check(tr.root, nil, nil)
	if count != tr.count {
		t.Fatalf("count %d; want %d", tr.count, count)
	}
	if tr.pool.Len() != count {
		t.Fatalf("pool holds %d nodes; want %d", tr.pool.Len(), count)
	}
}

func keys[K any](s *Set[K]) []K {
	var ks []K
	for k := range s.All() {
		ks = append(ks, k)
	}
	return ks
}

func TestSetEmpty(t *testing.T) {
	s := NewSet(clump.Compare[int])
	if s.Count() != 0 {
		t.Fatalf("Count() = %d; want 0", s.Count())
	}
	if _, ok := s.Peek(); ok {
		t.Fatalf("Peek on empty set returned a key")
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop on empty set returned a key")
	}
	if _, ok := s.RemoveKey(1); ok {
		t.Fatalf("RemoveKey on empty set succeeded")
	}
	verify(t, s.t)
}

func TestSetAscending(t *testing.T) {
	s := NewSet(clump.Compare[int])
	for i := 0; i < 1000; i++ {
		s.Add(i)
		verify(t, s.t)
	}
	for i := 999; i >= 0; i-- {
		k, ok := s.RemoveKey(i)
		if !ok || k != i {
			t.Fatalf("RemoveKey(%d) = %d, %t", i, k, ok)
		}
		verify(t, s.t)
	}
}

func TestSetRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	s := NewSet(clump.Compare[int])
	ref := make(map[int]bool)
	for i := 0; i < 20000; i++ {
		k := r.Intn(500)
		if r.Intn(2) == 0 {
			_, replaced := s.Add(k)
			if replaced != ref[k] {
				t.Fatalf("Add(%d) replaced=%t; want %t",
					k, replaced, ref[k])
			}
			ref[k] = true
		} else {
			g, ok := s.RemoveKey(k)
			if ok != ref[k] {
				t.Fatalf("RemoveKey(%d) ok=%t; want %t",
					k, ok, ref[k])
			}
			if ok && g != k {
				t.Fatalf("RemoveKey(%d) returned %d", k, g)
			}
			delete(ref, k)
		}
		if i%97 == 0 {
			verify(t, s.t)
		}
	}
	verify(t, s.t)
	want := make([]int, 0, len(ref))
	for k := range ref {
		want = append(want, k)
	}
	slices.Sort(want)
	if g := keys(s); !slices.Equal(g, want) {
		t.Fatalf("keys %v; want %v", g, want)
	}
	if s.Count() != len(want) {
		t.Fatalf("Count() = %d; want %d", s.Count(), len(want))
	}
	for k := 0; k < 500; k++ {
		if s.Contains(k) != ref[k] {
			t.Fatalf("Contains(%d) = %t", k, !ref[k])
		}
	}
}

func TestRemoveAbsentUntouched(t *testing.T) {
	s := NewSet(clump.Compare[int])
	for i := 0; i < 100; i += 2 {
		s.Add(i)
	}
	mods := s.t.mods
	root := s.t.root
	if _, ok := s.RemoveKey(51); ok {
		t.Fatalf("RemoveKey(51) succeeded")
	}
	if s.t.mods != mods || s.t.root != root {
		t.Fatalf("tree changed by removal of an absent key")
	}
	verify(t, s.t)
}

type item struct {
	key int
	tag string
}

func compareItems(a, b item) clump.Ordering { return clump.Compare(a.key, b.key) }

func TestSetAddReplaces(t *testing.T) {
	s := NewSet(compareItems)
	s.Add(item{1, "a"})
	old, replaced := s.Add(item{1, "b"})
	if !replaced || old.tag != "a" {
		t.Fatalf("Add returned %v, %t", old, replaced)
	}
	if s.Count() != 1 || s.t.pool.Len() != 1 {
		t.Fatalf("replacement added a node")
	}
	g, _ := s.GetKey(item{key: 1})
	if g.tag != "b" {
		t.Fatalf("GetKey returned %v", g)
	}
}

func TestSetPop(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	s := NewSet(clump.Compare[int])
	for _, k := range r.Perm(300) {
		s.Add(k)
	}
	for i := 0; i < 300; i++ {
		p, _ := s.Peek()
		k, ok := s.Pop()
		if !ok || k != i || p != i {
			t.Fatalf("Pop() = %d, %t; Peek() = %d; want %d", k, ok, p, i)
		}
		if i%10 == 0 {
			verify(t, s.t)
		}
	}
	if s.Count() != 0 {
		t.Fatalf("Count() = %d after popping all keys", s.Count())
	}
}

func TestSetIterator(t *testing.T) {
	s := NewSet(clump.Compare[string])
	words := []string{"pear", "apple", "fig", "kiwi", "banana", "cherry"}
	for _, w := range words {
		s.Add(w)
	}
	it := s.Iterator()
	var got []string
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, w)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	want := slices.Clone(words)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}

	it = s.Iterator()
	it.Next()
	s.Add("grape")
	if _, ok := it.Next(); ok {
		t.Fatalf("Next succeeded after modification")
	}
	if it.Err() != ErrInvalidIterator {
		t.Fatalf("Err() = %v; want %v", it.Err(), ErrInvalidIterator)
	}
}

func TestSetClear(t *testing.T) {
	s := NewSet(clump.Compare[int])
	for i := 0; i < 100; i++ {
		s.Add(i)
	}
	s.Clear()
	if s.Count() != 0 || s.Contains(5) {
		t.Fatalf("set not empty after Clear")
	}
	s.Add(7)
	verify(t, s.t)
}

func TestMap(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	m := NewMap[int, string](clump.Compare[int])
	ref := make(map[int]string)
	for i := 0; i < 5000; i++ {
		k := r.Intn(300)
		switch r.Intn(3) {
		case 0, 1:
			v := string(rune('a' + r.Intn(26)))
			old, replaced := m.Put(k, v)
			w, present := ref[k]
			if replaced != present || old != w {
				t.Fatalf("Put(%d) = %q, %t; want %q, %t",
					k, old, replaced, w, present)
			}
			ref[k] = v
		case 2:
			v, ok := m.Remove(k)
			w, present := ref[k]
			if ok != present || v != w {
				t.Fatalf("Remove(%d) = %q, %t; want %q, %t",
					k, v, ok, w, present)
			}
			delete(ref, k)
		}
	}
	verify(t, m.t)
	for k, w := range ref {
		v, ok := m.Get(k)
		if !ok || v != w {
			t.Fatalf("Get(%d) = %q, %t; want %q", k, v, ok, w)
		}
	}
	it := m.Iterator()
	prev := -1
	n := 0
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		if k <= prev {
			t.Fatalf("keys out of order: %d after %d", k, prev)
		}
		if it.Value() != ref[k] {
			t.Fatalf("Value() = %q; want %q", it.Value(), ref[k])
		}
		prev = k
		n++
	}
	if n != len(ref) {
		t.Fatalf("iterated %d keys; want %d", n, len(ref))
	}
	for k, v := range m.All() {
		if ref[k] != v {
			t.Fatalf("All yields %d:%q; want %q", k, v, ref[k])
		}
	}
}

func TestMapPop(t *testing.T) {
	m := NewMap[int, int](clump.Compare[int])
	for i := 10; i > 0; i-- {
		m.Put(i, i*i)
	}
	k, v, ok := m.Pop()
	if !ok || k != 1 || v != 1 {
		t.Fatalf("Pop() = %d, %d, %t", k, v, ok)
	}
	if g, ok := m.RemoveKey(5); !ok || g != 5 {
		t.Fatalf("RemoveKey(5) = %d, %t", g, ok)
	}
	verify(t, m.t)
	if m.Count() != 8 {
		t.Fatalf("Count() = %d; want 8", m.Count())
	}
}
