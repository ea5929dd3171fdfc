package segmented

// maxHashedElements bounds HashStructural to the trailing elements of the
// array, keeping hash cost near O(1) for arbitrarily large arrays. The hash
// is therefore insensitive to elements before the trailing window.
const maxHashedElements = 8

// hashCombineMultiplier is the order-sensitive fold constant.
const hashCombineMultiplier = 0xA5555529

// indexable is the minimal read surface the structural helpers run over.
// Both SegmentedArray and FixedSlice route through the same helpers, so the
// mismatch errors are constructed in exactly one place and carry the same
// identity for every implementation.
type indexable[T any] interface {
	Len() int
	Get(i int) T
}

func equalElements[T any](a, b indexable[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.Get(i), b.Get(i)) {
			return false
		}
	}
	return true
}

func compareElements[T any](a, b indexable[T], cmp func(x, y T) int) (int, error) {
	if cmp == nil {
		return 0, ErrNilComparer
	}
	if a.Len() != b.Len() {
		return 0, ErrLengthMismatch
	}
	for i := 0; i < a.Len(); i++ {
		if c := cmp(a.Get(i), b.Get(i)); c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

func hashElements[T any](a indexable[T], hash func(T) uint64) uint64 {
	start := a.Len() - maxHashedElements
	if start < 0 {
		start = 0
	}
	var h uint64
	for i := start; i < a.Len(); i++ {
		h = h*hashCombineMultiplier + hash(a.Get(i))
	}
	return h
}

// EqualStructural reports element-wise equality with another segmented array
// of the same element type. A nil value, a different kind, or a different
// length is unequal, never an error. Two references to the same array are
// equal without touching elements.
func (a *SegmentedArray[T]) EqualStructural(other any, eq func(x, y T) bool) bool {
	o, ok := other.(*SegmentedArray[T])
	if !ok || o == nil {
		return false
	}
	if a == o {
		return true
	}
	return equalElements[T](a, o, eq)
}

// CompareStructural orders the array against another value using a three-way
// element comparer. A nil value orders before any array (result 1). A value
// of a different kind fails with ErrKindMismatch and a different length with
// ErrLengthMismatch, the same errors the flat FixedSlice raises. Otherwise
// the first non-zero comparer result decides; zero means equal.
func (a *SegmentedArray[T]) CompareStructural(other any, cmp func(x, y T) int) (int, error) {
	if other == nil {
		return 1, nil
	}
	o, ok := other.(*SegmentedArray[T])
	if !ok {
		return 0, ErrKindMismatch
	}
	if o == nil {
		return 1, nil
	}
	return compareElements[T](a, o, cmp)
}

// HashStructural folds the element hashes of at most the trailing
// maxHashedElements elements with an order-sensitive combine. Stable across
// calls while the array is unmutated. A nil hash function fails with
// ErrNilHasher.
func (a *SegmentedArray[T]) HashStructural(hash func(T) uint64) (uint64, error) {
	if hash == nil {
		return 0, ErrNilHasher
	}
	return hashElements[T](a, hash), nil
}
