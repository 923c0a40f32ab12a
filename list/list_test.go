package list

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	l := New[int]()
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
	_, ok := l.Pop()
	require.False(t, ok)
	_, ok = l.Peek()
	require.False(t, ok)
	_, ok = l.Remove(1)
	require.False(t, ok)
	require.False(t, l.Contains(1))
	_, ok = l.Iterator().Next()
	require.False(t, ok)
}

func TestAddOrder(t *testing.T) {
	l := New[int]()
	l.Add(2)
	l.Add(1)
	l.AddTail(3)
	l.AddTail(4)
	require.Equal(t, []int{1, 2, 3, 4}, l.Items())
	require.Equal(t, 4, l.Len())

	it := l.Iterator()
	var got []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	require.NoError(t, it.Err())
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestAddTailOnly(t *testing.T) {
	l := New[string]()
	for _, s := range []string{"a", "b", "c"} {
		require.Equal(t, s, l.AddTail(s))
	}
	require.Equal(t, []string{"a", "b", "c"}, l.Items())
	v, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, "a", v)
}

func TestRemove(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 5; i++ {
		l.AddTail(i)
	}
	v, ok := l.Remove(5)
	require.True(t, ok)
	require.Equal(t, 5, v)
	// the tail must follow the removal
	l.AddTail(6)
	require.Equal(t, []int{1, 2, 3, 4, 6}, l.Items())

	_, ok = l.Remove(1)
	require.True(t, ok)
	_, ok = l.Remove(3)
	require.True(t, ok)
	_, ok = l.Remove(3)
	require.False(t, ok)
	require.Equal(t, []int{2, 4, 6}, l.Items())
	require.Equal(t, 3, l.Len())
	require.True(t, l.Contains(4))
	require.False(t, l.Contains(3))

	for _, x := range []int{2, 4, 6} {
		_, ok = l.Remove(x)
		require.True(t, ok)
	}
	require.True(t, l.IsEmpty())
	l.AddTail(7)
	require.Equal(t, []int{7}, l.Items())
}

func TestRemoveFirstMatch(t *testing.T) {
	l := New[int]()
	for _, x := range []int{1, 2, 1, 2} {
		l.AddTail(x)
	}
	l.Remove(2)
	require.Equal(t, []int{1, 1, 2}, l.Items())
}

func TestStack(t *testing.T) {
	l := New[int]()
	for i := 0; i < 100; i++ {
		l.Add(i)
	}
	for i := 99; i >= 0; i-- {
		v, ok := l.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, l.IsEmpty())
}

func TestFIFO(t *testing.T) {
	l := New[int]()
	for i := 0; i < 100; i++ {
		l.AddTail(i)
	}
	for i := 0; i < 100; i++ {
		v, ok := l.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, l.IsEmpty())
}

func TestClear(t *testing.T) {
	l := New[int]()
	for i := 0; i < 1000; i++ {
		l.Add(i)
	}
	l.Clear()
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
	l.Add(1)
	require.Equal(t, []int{1}, l.Items())
}

func TestIteratorAppend(t *testing.T) {
	l := New[int]()
	l.AddTail(1)
	l.AddTail(2)
	it := l.Iterator()
	v, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 1, v)
	l.AddTail(3)
	l.Add(0)
	var got []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	require.NoError(t, it.Err())
	require.Equal(t, []int{2, 3}, got)
}

func TestIteratorInvalidated(t *testing.T) {
	l := New[int]()
	for i := 0; i < 4; i++ {
		l.AddTail(i)
	}
	it := l.Iterator()
	_, ok := it.Next()
	require.True(t, ok)
	l.Remove(2)
	_, ok = it.Next()
	require.False(t, ok)
	require.ErrorIs(t, it.Err(), ErrInvalidIterator)

	it = l.Iterator()
	l.Pop()
	_, ok = it.Next()
	require.False(t, ok)
	require.ErrorIs(t, it.Err(), ErrInvalidIterator)

	it = l.Iterator()
	l.Clear()
	_, ok = it.Next()
	require.False(t, ok)
	require.ErrorIs(t, it.Err(), ErrInvalidIterator)
}

func TestAllBreak(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.AddTail(i)
	}
	var got []int
	for v := range l.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2}, got)
}

func TestSort(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 2, 3, 7, 64, 1001} {
		l := New[int]()
		want := make([]int, n)
		for i := range want {
			x := r.Intn(50)
			want[i] = x
			l.AddTail(x)
		}
		l.Sort(func(a, b int) bool { return a < b })
		slices.Sort(want)
		require.Equal(t, want, l.Items(), "n=%d", n)
		require.Equal(t, n, l.Len())
		// tail must be the last node after sorting
		l.AddTail(100)
		require.Equal(t, append(want, 100), l.Items())
	}
}

type rec struct {
	key, seq int
}

func TestSortStable(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	l := New[rec]()
	var want []rec
	for i := 0; i < 500; i++ {
		x := rec{r.Intn(10), i}
		want = append(want, x)
		l.AddTail(x)
	}
	less := func(a, b rec) bool { return a.key < b.key }
	l.Sort(less)
	sort.SliceStable(want, func(i, j int) bool { return less(want[i], want[j]) })
	require.Equal(t, want, l.Items())
}
