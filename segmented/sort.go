package segmented

import "sort"

// sorter adapts an array to sort.Interface. Swap goes through element
// aliases, so sorting costs the same element moves as over a flat slice.
type sorter[T any] struct {
	a    *SegmentedArray[T]
	less func(x, y T) bool
}

func (s *sorter[T]) Len() int           { return s.a.length }
func (s *sorter[T]) Less(i, j int) bool { return s.less(s.a.Get(i), s.a.Get(j)) }

func (s *sorter[T]) Swap(i, j int) {
	p, q := s.a.At(i), s.a.At(j)
	*p, *q = *q, *p
}

// Sort sorts the array in place by less.
func Sort[T any](a *SegmentedArray[T], less func(x, y T) bool) {
	sort.Sort(&sorter[T]{a: a, less: less})
}

// Stable sorts the array in place by less, keeping equal elements in order.
func Stable[T any](a *SegmentedArray[T], less func(x, y T) bool) {
	sort.Stable(&sorter[T]{a: a, less: less})
}

// IsSorted reports whether the array is ordered by less.
func IsSorted[T any](a *SegmentedArray[T], less func(x, y T) bool) bool {
	return sort.IsSorted(&sorter[T]{a: a, less: less})
}

// Reverse reverses the element order in place.
func Reverse[T any](a *SegmentedArray[T]) {
	for i, j := 0, a.length-1; i < j; i, j = i+1, j-1 {
		p, q := a.At(i), a.At(j)
		*p, *q = *q, *p
	}
}

// BinarySearch locates target in an array sorted consistently with cmp.
// It returns the position of the first match and true, or the insertion
// position and false.
func BinarySearch[T any](a *SegmentedArray[T], target T, cmp func(x, y T) int) (int, bool) {
	i := sort.Search(a.length, func(i int) bool {
		return cmp(a.Get(i), target) >= 0
	})
	if i < a.length && cmp(a.Get(i), target) == 0 {
		return i, true
	}
	return i, false
}
