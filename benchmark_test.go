package aadraw

import (
	"fmt"
	"testing"
)

// BenchmarkPixmap_Clear benchmarks clearing pixmaps of various sizes.
func BenchmarkPixmap_Clear(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"100x100", 100, 100},
		{"512x512", 512, 512},
		{"1920x1080", 1920, 1080},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			pm := NewPixmap(size.width, size.height)
			b.ReportAllocs()
			b.SetBytes(int64(size.width * size.height * 4))
			for b.Loop() {
				pm.Clear(Red)
			}
		})
	}
}

func BenchmarkCircleImage(b *testing.B) {
	for _, r := range []float64{2, 8, 32} {
		b.Run(fmt.Sprintf("r%g", r), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				CircleImage(Pt(100.3, 100.7), r, Red)
			}
		})
	}
}

func BenchmarkCachedCircleImage(b *testing.B) {
	ResetStampCache()
	b.Cleanup(ResetStampCache)
	b.ReportAllocs()
	for b.Loop() {
		CachedCircleImage(StampCenter, 8, Red)
	}
}

func BenchmarkLineImage(b *testing.B) {
	segments := []struct {
		name string
		s    Segment
	}{
		{"shallow", Seg(10, 10, 300, 80)},
		{"steep", Seg(10, 10, 80, 300)},
	}
	for _, bm := range segments {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				LineImage(bm.s, Red, 2.5)
			}
		})
	}
}

// BenchmarkDrawCircle compares the three quality tiers on the same canvas.
func BenchmarkDrawCircle(b *testing.B) {
	for _, mode := range []AntiAlias{AntiAliasOff, AntiAliasFast, AntiAliasAccurate} {
		b.Run(mode.String(), func(b *testing.B) {
			pm := NewPixmap(256, 256)
			b.ReportAllocs()
			for b.Loop() {
				if err := DrawCircle(pm, Pt(128.4, 127.6), 16, Blue.WithAlpha(0.5), mode); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
