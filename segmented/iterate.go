package segmented

import "iter"

// Iterator walks an array in ascending logical-index order, one segment at a
// time. Iterators are independent: any number of them may walk the same array
// concurrently as long as no writer runs at the same time.
type Iterator[T any] struct {
	a   *SegmentedArray[T]
	seg int
	off int
	cur *T
}

// Iter returns a fresh iterator positioned before the first element.
func (a *SegmentedArray[T]) Iter() *Iterator[T] {
	return &Iterator[T]{a: a}
}

// Next advances to the next element and reports whether one exists.
func (it *Iterator[T]) Next() bool {
	for it.seg < len(it.a.segments) {
		s := it.a.segments[it.seg]
		if it.off < len(s) {
			it.cur = &s[it.off]
			it.off++
			return true
		}
		it.seg++
		it.off = 0
	}
	it.cur = nil
	return false
}

// Value returns the element Next stopped on. Valid only after a true Next.
func (it *Iterator[T]) Value() T { return *it.cur }

// Reset rewinds the iterator to before the first element.
func (it *Iterator[T]) Reset() {
	it.seg, it.off, it.cur = 0, 0, nil
}

// All yields (index, element) pairs in ascending index order. Each range
// statement restarts from index zero.
func (a *SegmentedArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for _, seg := range a.segments {
			for j := range seg {
				if !yield(i, seg[j]) {
					return
				}
				i++
			}
		}
	}
}

// Values yields elements in ascending index order.
func (a *SegmentedArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seg := range a.segments {
			for j := range seg {
				if !yield(seg[j]) {
					return
				}
			}
		}
	}
}
