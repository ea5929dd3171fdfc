package segmented_test

import (
	"testing"

	"segarr/internal/testkit"
	"segarr/segmented"
)

func TestArrayInvariants(t *testing.T) {
	geometries := []struct {
		segmentSize int
		length      int
	}{
		{2, 0},
		{2, 1},
		{2, 2},
		{2, 3},
		{4, 10},
		{4, 16},
		{8, 7},
		{16, 1000},
		{1024, 4097},
	}

	for _, g := range geometries {
		a, err := segmented.New[int](g.segmentSize, g.length)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", g.segmentSize, g.length, err)
		}
		for i := 0; i < a.Len(); i++ {
			a.Set(i, i)
		}
		if err := testkit.CheckArrayInvariants(a); err != nil {
			t.Errorf("geometry (%d, %d): %v", g.segmentSize, g.length, err)
		}
		if err := testkit.CheckCloneIndependence(a, func(p *int) { *p = -*p - 1 }); err != nil {
			t.Errorf("clone (%d, %d): %v", g.segmentSize, g.length, err)
		}
	}
}
