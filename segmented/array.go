package segmented

import (
	"fmt"
)

// SegmentedArray holds a fixed number of elements of type T spread across
// equally sized backing segments. The segment size is a power of two, so an
// index decomposes into (segment, offset) with one shift and one mask.
//
// The zero value is a valid empty array.
type SegmentedArray[T any] struct {
	segmentSize int
	shift       uint
	mask        int
	length      int
	segments    [][]T
}

// New allocates an array of length elements stored in segments of
// segmentSize elements each. segmentSize must be a power of two greater than
// one; length must be non-negative. All segments except the last are full;
// length zero allocates no segments at all.
func New[T any](segmentSize, length int) (*SegmentedArray[T], error) {
	if segmentSize <= 1 || segmentSize&(segmentSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrSegmentSize, segmentSize)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}

	var shift uint
	for s := segmentSize; s > 1; s >>= 1 {
		shift++
	}

	a := &SegmentedArray[T]{
		segmentSize: segmentSize,
		shift:       shift,
		mask:        segmentSize - 1,
		length:      length,
	}
	if length == 0 {
		return a, nil
	}

	full := length >> shift
	rest := length & a.mask
	count := full
	if rest > 0 {
		count++
	}
	a.segments = make([][]T, count)
	for i := range full {
		a.segments[i] = make([]T, segmentSize)
	}
	if rest > 0 {
		a.segments[count-1] = make([]T, rest)
	}
	return a, nil
}

// FromSlice builds an array with the given segment size and copies src into
// it. src is not retained.
func FromSlice[T any](segmentSize int, src []T) (*SegmentedArray[T], error) {
	a, err := New[T](segmentSize, len(src))
	if err != nil {
		return nil, err
	}
	for i, seg := range a.segments {
		copy(seg, src[i<<a.shift:])
	}
	return a, nil
}

// Len reports the number of stored elements.
func (a *SegmentedArray[T]) Len() int { return a.length }

// SegmentSize reports the configured segment size (zero for the zero value).
func (a *SegmentedArray[T]) SegmentSize() int { return a.segmentSize }

// SegmentCount reports the number of backing segments.
func (a *SegmentedArray[T]) SegmentCount() int { return len(a.segments) }

// Locate decomposes a logical index into its segment index and in-segment
// offset. It does not check bounds.
func (a *SegmentedArray[T]) Locate(i int) (segment, offset int) {
	return i >> a.shift, i & a.mask
}

// At returns a mutable alias of element i. Reads and writes through the
// pointer observe and mutate segment storage directly; nothing is copied.
// The alias must not outlive the array. Out-of-range indexes panic with the
// runtime's slice bounds error, the same way a plain slice access does.
func (a *SegmentedArray[T]) At(i int) *T {
	return &a.segments[i>>a.shift][i&a.mask]
}

// Get returns element i by value.
func (a *SegmentedArray[T]) Get(i int) T {
	return a.segments[i>>a.shift][i&a.mask]
}

// Set stores v at index i.
func (a *SegmentedArray[T]) Set(i int, v T) {
	a.segments[i>>a.shift][i&a.mask] = v
}
