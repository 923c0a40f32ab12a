package clump

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b int
		o    Ordering
	}{
		{1, 2, Less},
		{2, 2, Equal},
		{3, 2, Greater},
	}
	for _, c := range tests {
		if o := Compare(c.a, c.b); o != c.o {
			t.Errorf("Compare(%d, %d) returned %s; want %s",
				c.a, c.b, o, c.o)
		}
	}
	if o := Compare("a", "b"); o != Less {
		t.Errorf("Compare(%q, %q) returned %s; want %s",
			"a", "b", o, Less)
	}
}

func TestComparePointer(t *testing.T) {
	a := make([]int, 2)
	if o := ComparePointer(&a[0], &a[1]); o != Less {
		t.Errorf("ComparePointer(&a[0], &a[1]) returned %s; want %s",
			o, Less)
	}
	if o := ComparePointer(&a[1], &a[1]); o != Equal {
		t.Errorf("ComparePointer(&a[1], &a[1]) returned %s; want %s",
			o, Equal)
	}
}
