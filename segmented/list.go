package segmented

// List is the broad random-access surface generic algorithms program
// against. Fixed-size implementations carry the full surface so such code
// works against them unmodified, but every member that would change the
// element count panics with ErrFixedSize instead of silently doing nothing.
type List[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, v T)
	At(i int) *T
	Append(v T)
	Insert(i int, v T)
	RemoveAt(i int)
	Truncate()
	Clear()
	CopyTo(dst []T) int
}

var (
	_ List[int] = (*SegmentedArray[int])(nil)
	_ List[int] = (*FixedSlice[int])(nil)
)

// panicFixedSize is the single construction point for the fixed-size
// violation, shared by every rejecting member of every implementation.
func panicFixedSize() {
	panic(ErrFixedSize)
}

// Append panics with ErrFixedSize.
func (a *SegmentedArray[T]) Append(T) { panicFixedSize() }

// Insert panics with ErrFixedSize.
func (a *SegmentedArray[T]) Insert(int, T) { panicFixedSize() }

// RemoveAt panics with ErrFixedSize.
func (a *SegmentedArray[T]) RemoveAt(int) { panicFixedSize() }

// Remove panics with ErrFixedSize. It never scans for the value: removal is
// rejected whether or not the element is present.
func (a *SegmentedArray[T]) Remove(T, func(x, y T) bool) bool {
	panicFixedSize()
	return false
}

// Truncate panics with ErrFixedSize. Use Clear to zero elements in place.
func (a *SegmentedArray[T]) Truncate() { panicFixedSize() }

// FixedSlice adapts a plain slice to List with fixed-length semantics. It is
// the parity reference for SegmentedArray: both reject structural mutations
// with the identical panic value.
type FixedSlice[T any] struct {
	elems []T
}

// NewFixedSlice allocates a fixed slice of length zeroed elements.
func NewFixedSlice[T any](length int) (*FixedSlice[T], error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}
	return &FixedSlice[T]{elems: make([]T, length)}, nil
}

// WrapSlice adapts s in place; the adapter aliases s.
func WrapSlice[T any](s []T) *FixedSlice[T] {
	return &FixedSlice[T]{elems: s}
}

// Len reports the element count.
func (f *FixedSlice[T]) Len() int { return len(f.elems) }

// Get returns element i.
func (f *FixedSlice[T]) Get(i int) T { return f.elems[i] }

// Set stores v at index i.
func (f *FixedSlice[T]) Set(i int, v T) { f.elems[i] = v }

// At returns a mutable alias of element i.
func (f *FixedSlice[T]) At(i int) *T { return &f.elems[i] }

// Append panics with ErrFixedSize.
func (f *FixedSlice[T]) Append(T) { panicFixedSize() }

// Insert panics with ErrFixedSize.
func (f *FixedSlice[T]) Insert(int, T) { panicFixedSize() }

// RemoveAt panics with ErrFixedSize.
func (f *FixedSlice[T]) RemoveAt(int) { panicFixedSize() }

// Remove panics with ErrFixedSize.
func (f *FixedSlice[T]) Remove(T, func(x, y T) bool) bool {
	panicFixedSize()
	return false
}

// Truncate panics with ErrFixedSize.
func (f *FixedSlice[T]) Truncate() { panicFixedSize() }

// Clear zeroes every element without changing the length.
func (f *FixedSlice[T]) Clear() { clear(f.elems) }

// CopyTo copies the elements into dst and reports how many were copied.
func (f *FixedSlice[T]) CopyTo(dst []T) int { return copy(dst, f.elems) }

// EqualStructural reports element-wise equality with another FixedSlice.
func (f *FixedSlice[T]) EqualStructural(other any, eq func(x, y T) bool) bool {
	o, ok := other.(*FixedSlice[T])
	if !ok || o == nil {
		return false
	}
	if f == o {
		return true
	}
	return equalElements[T](f, o, eq)
}

// CompareStructural orders the slice against another value; see
// SegmentedArray.CompareStructural for the contract.
func (f *FixedSlice[T]) CompareStructural(other any, cmp func(x, y T) int) (int, error) {
	if other == nil {
		return 1, nil
	}
	o, ok := other.(*FixedSlice[T])
	if !ok {
		return 0, ErrKindMismatch
	}
	if o == nil {
		return 1, nil
	}
	return compareElements[T](f, o, cmp)
}

// HashStructural folds the trailing element hashes; see
// SegmentedArray.HashStructural for the contract.
func (f *FixedSlice[T]) HashStructural(hash func(T) uint64) (uint64, error) {
	if hash == nil {
		return 0, ErrNilHasher
	}
	return hashElements[T](f, hash), nil
}
