package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"segarr/segmented"
)

// Report holds per-stage timings of one scenario run. Checksum is a
// content fingerprint used to keep the scan stage observable; for a given
// scenario it is identical across runs and worker counts.
type Report struct {
	Name     string
	Fill     time.Duration
	Sort     time.Duration
	Scan     time.Duration
	Checksum uint64
}

// Run executes one scenario: build the array, fill it with a deterministic
// pseudo-random sequence, sort it, then scan it with parallel independent
// iterators. The scan stage exercises the concurrency contract: any number
// of readers may walk the array as long as no writer runs.
func Run(ctx context.Context, sc Scenario) (*Report, error) {
	segSize, err := safecast.Conv[int](sc.SegmentSize)
	if err != nil {
		return nil, fmt.Errorf("bench %s: segment size: %w", sc.Name, err)
	}
	length, err := safecast.Conv[int](sc.Length)
	if err != nil {
		return nil, fmt.Errorf("bench %s: length: %w", sc.Name, err)
	}
	arr, err := segmented.New[int64](segSize, length)
	if err != nil {
		return nil, fmt.Errorf("bench %s: %w", sc.Name, err)
	}

	rep := &Report{Name: sc.Name}

	start := time.Now()
	state := uint64(0x9E3779B97F4A7C15)
	for i := 0; i < arr.Len(); i++ {
		state = splitmix64(state)
		*arr.At(i) = int64(state >> 1)
	}
	rep.Fill = time.Since(start)

	start = time.Now()
	segmented.Sort(arr, func(x, y int64) bool { return x < y })
	rep.Sort = time.Since(start)

	workers := sc.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start = time.Now()
	sums := make([]uint64, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var sum uint64
			it := arr.Iter()
			for it.Next() {
				sum += uint64(it.Value())
			}
			sums[w] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("bench %s: scan: %w", sc.Name, err)
	}
	rep.Scan = time.Since(start)

	rep.Checksum = sums[0]
	for _, sum := range sums[1:] {
		if sum != rep.Checksum {
			return nil, fmt.Errorf("bench %s: scan checksums diverge", sc.Name)
		}
	}
	return rep, nil
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
