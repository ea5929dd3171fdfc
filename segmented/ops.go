package segmented

import "slices"

// Clone returns an independent array with identical geometry and deep-copied
// segments. Mutating either side never affects the other. O(Len).
func (a *SegmentedArray[T]) Clone() *SegmentedArray[T] {
	c := &SegmentedArray[T]{
		segmentSize: a.segmentSize,
		shift:       a.shift,
		mask:        a.mask,
		length:      a.length,
	}
	if a.segments != nil {
		c.segments = make([][]T, len(a.segments))
		for i, seg := range a.segments {
			c.segments[i] = slices.Clone(seg)
		}
	}
	return c
}

// CopyTo copies the elements into dst in segment order and reports how many
// were copied. Copying stops when dst is full.
func (a *SegmentedArray[T]) CopyTo(dst []T) int {
	n := 0
	for _, seg := range a.segments {
		n += copy(dst[n:], seg)
	}
	return n
}

// ToSlice returns the elements as one freshly allocated contiguous slice.
func (a *SegmentedArray[T]) ToSlice() []T {
	out := make([]T, a.length)
	a.CopyTo(out)
	return out
}

// Fill stores v at every index.
func (a *SegmentedArray[T]) Fill(v T) {
	for _, seg := range a.segments {
		for j := range seg {
			seg[j] = v
		}
	}
}

// Clear resets every element to the zero value of T, segment by segment. The
// length does not change; this is the one mutating collection operation a
// fixed-size array supports for real.
func (a *SegmentedArray[T]) Clear() {
	for _, seg := range a.segments {
		clear(seg)
	}
}

// IndexOf returns the logical index of the first element equal to v, or -1.
// Each segment is searched with slices.Index and a hit is translated back to
// segmentIndex*segmentSize + offset.
func IndexOf[T comparable](a *SegmentedArray[T], v T) int {
	for si, seg := range a.segments {
		if off := slices.Index(seg, v); off >= 0 {
			return si<<a.shift + off
		}
	}
	return -1
}

// IndexOfFunc returns the logical index of the first element matching pred,
// or -1.
func IndexOfFunc[T any](a *SegmentedArray[T], pred func(T) bool) int {
	for si, seg := range a.segments {
		if off := slices.IndexFunc(seg, pred); off >= 0 {
			return si<<a.shift + off
		}
	}
	return -1
}

// LastIndexOf returns the logical index of the last element equal to v,
// or -1.
func LastIndexOf[T comparable](a *SegmentedArray[T], v T) int {
	for si := len(a.segments) - 1; si >= 0; si-- {
		seg := a.segments[si]
		for off := len(seg) - 1; off >= 0; off-- {
			if seg[off] == v {
				return si<<a.shift + off
			}
		}
	}
	return -1
}

// Contains reports whether any element equals v.
func Contains[T comparable](a *SegmentedArray[T], v T) bool {
	return IndexOf(a, v) >= 0
}
