package aadraw

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/aadraw/internal/cache"
)

// StampCenter is the centre of the canonical circle stamp: the middle of the
// pixel at the origin. A circle centred at any other pixel centre is the
// stamp translated by a whole number of pixels.
var StampCenter = Point{X: 0.5, Y: 0.5}

// stampKey identifies a canonical stamp. The centre is implied.
type stampKey struct {
	radius float64
	color  color.NRGBA
}

// stamps memoizes canonical circle patches for the process lifetime.
// Unbounded by default; see SetStampCacheLimit.
var stamps = cache.New[stampKey, Patch](0)

// CircleImage rasterizes a filled circle into a freshly allocated patch.
//
// The patch spans floor(cx-r)..ceil(cx+r) horizontally and
// floor(cy-r)..ceil(cy+r) vertically, at least one pixel each way. Every
// pixel whose centre gets a positive Coverage receives the circle's colour
// with its alpha scaled by that coverage; all other pixels stay transparent.
// A negative radius is treated as 0.
func CircleImage(center Point, radius float64, c color.Color) Patch {
	return circleImage(center, sanitizeSize(radius), toNRGBA(c))
}

// CachedCircleImage is CircleImage with memoization of the canonical stamp:
// when center is exactly StampCenter the patch is computed once per
// (radius, colour) and shared afterwards. Other centres always recompute.
//
// The returned patch must not be modified.
func CachedCircleImage(center Point, radius float64, c color.Color) Patch {
	radius = sanitizeSize(radius)
	n := toNRGBA(c)
	if center != StampCenter {
		return circleImage(center, radius, n)
	}
	return stamps.GetOrCreate(stampKey{radius: radius, color: n}, func() Patch {
		p := circleImage(StampCenter, radius, n)
		Logger().Debug("aadraw: circle stamp cached",
			"radius", radius, "color", n, "size", p.Bounds().Size())
		return p
	})
}

func circleImage(center Point, radius float64, c color.NRGBA) Patch {
	left := int(math.Floor(center.X - radius))
	right := int(math.Ceil(center.X + radius))
	top := int(math.Floor(center.Y - radius))
	bottom := int(math.Ceil(center.Y + radius))

	w := max(right-left, 1)
	h := max(bottom-top, 1)
	pm := NewPixmap(w, h)

	for yi := range h {
		y := float64(yi+top) + 0.5
		for xi := range w {
			x := float64(xi+left) + 0.5
			cov := Coverage(radius, math.Hypot(x-center.X, y-center.Y))
			if cov == 0 {
				continue
			}
			pm.SetPixel(xi, yi, scaleAlpha(c, cov))
		}
	}

	return Patch{Pixmap: pm, Offset: image.Pt(left, top)}
}

// scaleAlpha returns c with its alpha multiplied by coverage.
func scaleAlpha(c color.NRGBA, coverage float64) color.NRGBA {
	c.A = uint8(roundHalfEven(float64(c.A) * coverage))
	return c
}

// sanitizeSize maps negative and NaN radii or widths to 0.
func sanitizeSize(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return x
}

// StampCacheStats reports the state of the canonical stamp cache.
type StampCacheStats struct {
	// Len is the number of cached stamps.
	Len int
	// Limit is the soft limit; 0 means unbounded.
	Limit int
	// Hits and Misses count lookups of the canonical centre.
	Hits, Misses uint64
	// Evictions counts stamps dropped because of the limit.
	Evictions uint64
}

// SetStampCacheLimit bounds the number of cached canonical stamps. Once the
// limit is exceeded the least recently used stamps are dropped. n <= 0
// removes the bound, which is the default: callers are expected to use a
// small set of radii and colours.
func SetStampCacheLimit(n int) {
	stamps.SetLimit(n)
}

// GetStampCacheStats returns statistics of the canonical stamp cache.
func GetStampCacheStats() StampCacheStats {
	s := stamps.Stats()
	return StampCacheStats{
		Len:       s.Len,
		Limit:     s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}

// ResetStampCache drops every cached stamp and zeroes the statistics.
func ResetStampCache() {
	stamps.Clear()
	stamps.ResetStats()
}
