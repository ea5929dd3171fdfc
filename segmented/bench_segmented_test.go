package segmented

import "testing"

func BenchmarkGet(b *testing.B) {
	a, err := New[int64](8192, 1<<20)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	var sink int64
	for i := 0; i < b.N; i++ {
		sink += a.Get(i & (1<<20 - 1))
	}
	_ = sink
}

func BenchmarkGetFlatBaseline(b *testing.B) {
	s := make([]int64, 1<<20)
	b.ResetTimer()
	var sink int64
	for i := 0; i < b.N; i++ {
		sink += s[i&(1<<20-1)]
	}
	_ = sink
}

func BenchmarkIterate(b *testing.B) {
	a, err := New[int64](8192, 1<<20)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		it := a.Iter()
		for it.Next() {
			sum += it.Value()
		}
		_ = sum
	}
}
