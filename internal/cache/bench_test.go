package cache

import (
	"strconv"
	"testing"
)

func BenchmarkCacheHit(b *testing.B) {
	c := New[string, int](1000)
	for i := 0; i < 100; i++ {
		c.GetOrCreate(strconv.Itoa(i), func() int { return i })
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate("50", func() int { return 0 })
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() int {
			return i
		})
	}
}

func BenchmarkCacheGetOrCreateParallel(b *testing.B) {
	c := New[int, int](0)

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.GetOrCreate(i%64, func() int { return i })
			i++
		}
	})
}
