package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"segarr/segmented"
)

// CheckArrayInvariants runs the core invariants of a segmented array:
// 1) segment count matches ceil(length / segmentSize)
// 2) index decomposition is a bijection onto storage cells
// 3) enumeration order equals indexed order
func CheckArrayInvariants[T comparable](a *segmented.SegmentedArray[T]) error {
	if a == nil {
		return fmt.Errorf("nil array")
	}

	// 1) geometry sanity
	length, err := safecast.Conv[uint64](a.Len())
	if err != nil {
		return fmt.Errorf("length overflow: %w", err)
	}
	if a.Len() == 0 {
		if a.SegmentCount() != 0 {
			return fmt.Errorf("empty array owns %d segments", a.SegmentCount())
		}
	} else {
		size, convErr := safecast.Conv[uint64](a.SegmentSize())
		if convErr != nil {
			return fmt.Errorf("segment size overflow: %w", convErr)
		}
		if size < 2 || size&(size-1) != 0 {
			return fmt.Errorf("segment size %d is not a power of two > 1", size)
		}
		want := (length + size - 1) / size
		got, convErr := safecast.Conv[uint64](a.SegmentCount())
		if convErr != nil {
			return fmt.Errorf("segment count overflow: %w", convErr)
		}
		if got != want {
			return fmt.Errorf("segment count: got=%d want=%d", got, want)
		}
	}

	// 2) every index resolves to a distinct cell
	cells := make(map[*T]struct{}, a.Len())
	for i := 0; i < a.Len(); i++ {
		cells[a.At(i)] = struct{}{}
	}
	if len(cells) != a.Len() {
		return fmt.Errorf("decomposition collides: %d cells for %d indexes", len(cells), a.Len())
	}

	// 3) enumeration parity with indexed access
	it := a.Iter()
	for i := 0; i < a.Len(); i++ {
		if !it.Next() {
			return fmt.Errorf("iterator ended early at %d of %d", i, a.Len())
		}
		if it.Value() != a.Get(i) {
			return fmt.Errorf("iterator order diverges from Get at index %d", i)
		}
	}
	if it.Next() {
		return fmt.Errorf("iterator yields more than %d elements", a.Len())
	}
	return nil
}

// CheckCloneIndependence verifies that a clone matches the source and that
// mutating the clone leaves the source untouched. mutate must change the
// element it is given.
func CheckCloneIndependence[T comparable](a *segmented.SegmentedArray[T], mutate func(*T)) error {
	c := a.Clone()
	if c.Len() != a.Len() || c.SegmentSize() != a.SegmentSize() {
		return fmt.Errorf("clone geometry: got (%d,%d) want (%d,%d)",
			c.Len(), c.SegmentSize(), a.Len(), a.SegmentSize())
	}
	eq := func(x, y T) bool { return x == y }
	if !c.EqualStructural(a, eq) {
		return fmt.Errorf("clone is not structurally equal to source")
	}
	for i := 0; i < c.Len(); i++ {
		before := a.Get(i)
		mutate(c.At(i))
		if a.Get(i) != before {
			return fmt.Errorf("mutating clone element %d changed the source", i)
		}
	}
	return nil
}
