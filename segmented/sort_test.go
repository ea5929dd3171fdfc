package segmented

import (
	"slices"
	"testing"
)

func intLess(x, y int) bool { return x < y }

func scrambled(t *testing.T, segmentSize, length int) *SegmentedArray[int] {
	t.Helper()
	a, err := New[int](segmentSize, length)
	if err != nil {
		t.Fatal(err)
	}
	state := uint32(2463534242)
	for i := 0; i < length; i++ {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		a.Set(i, int(state%1000))
	}
	return a
}

func TestSort(t *testing.T) {
	a := scrambled(t, 8, 100)
	want := a.ToSlice()
	slices.Sort(want)

	Sort(a, intLess)

	if !IsSorted(a, intLess) {
		t.Fatal("IsSorted = false after Sort")
	}
	if got := a.ToSlice(); !slices.Equal(got, want) {
		t.Fatalf("sorted content differs from flat sort:\ngot  %v\nwant %v", got, want)
	}
}

func TestStable(t *testing.T) {
	type pair struct {
		key int
		seq int
	}
	a, err := New[pair](4, 12)
	if err != nil {
		t.Fatal(err)
	}
	keys := []int{2, 1, 2, 0, 1, 2, 0, 1, 0, 2, 1, 0}
	for i, k := range keys {
		a.Set(i, pair{key: k, seq: i})
	}

	Stable(a, func(x, y pair) bool { return x.key < y.key })

	prev := pair{key: -1, seq: -1}
	for i := 0; i < a.Len(); i++ {
		cur := a.Get(i)
		if cur.key < prev.key {
			t.Fatalf("keys out of order at %d: %v after %v", i, cur, prev)
		}
		if cur.key == prev.key && cur.seq < prev.seq {
			t.Fatalf("equal keys reordered at %d: seq %d after %d", i, cur.seq, prev.seq)
		}
		prev = cur
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name        string
		segmentSize int
		length      int
	}{
		{"even length", 4, 10},
		{"odd length", 4, 9},
		{"single element", 2, 1},
		{"empty", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := buildSequential(t, tt.segmentSize, tt.length)
			want := a.ToSlice()
			slices.Reverse(want)

			Reverse(a)

			if got := a.ToSlice(); !slices.Equal(got, want) {
				t.Fatalf("reversed content:\ngot  %v\nwant %v", got, want)
			}
		})
	}
}

func TestBinarySearch(t *testing.T) {
	a := buildSequential(t, 4, 10) // 0, 3, 6, ..., 27

	for i := 0; i < a.Len(); i++ {
		idx, found := BinarySearch(a, a.Get(i), intCmp)
		if !found || idx != i {
			t.Fatalf("BinarySearch(%d) = (%d, %v), want (%d, true)", a.Get(i), idx, found, i)
		}
	}

	tests := []struct {
		target  string
		value   int
		wantIdx int
	}{
		{"before first", -5, 0},
		{"between elements", 4, 2},
		{"after last", 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			idx, found := BinarySearch(a, tt.value, intCmp)
			if found || idx != tt.wantIdx {
				t.Fatalf("BinarySearch(%d) = (%d, %v), want (%d, false)", tt.value, idx, found, tt.wantIdx)
			}
		})
	}
}
