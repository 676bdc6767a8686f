package aadraw

import (
	"image"
	"image/color"
	"math"
)

// LineImage rasterizes a straight stroke of the given width between the
// segment's endpoints into a freshly allocated patch. The ends are round:
// every pixel whose centre lies within width/2 of the segment, give or take
// the one-pixel coverage band, is painted.
//
// A negative width is treated as 0.
func LineImage(s Segment, c color.Color, width float64) Patch {
	return lineImage(s, toNRGBA(c), sanitizeSize(width))
}

// lineImage scans along the major axis. Steep segments are solved in the
// transposed space, where they are shallow, and the patch is transposed
// back; the transposed segment is never steep, so this recurses at most once.
func lineImage(s Segment, c color.NRGBA, width float64) Patch {
	d := s.P1.Sub(s.P0)
	if math.Abs(d.Y) > math.Abs(d.X) {
		return shallowLineImage(s.Transpose(), c, width).Transpose()
	}
	return shallowLineImage(s, c, width)
}

// shallowLineImage requires |dy| <= |dx|.
func shallowLineImage(s Segment, c color.NRGBA, width float64) Patch {
	half := width / 2
	dx := s.P1.X - s.P0.X
	dy := s.P1.Y - s.P0.Y

	// dx == 0 here only for a zero-length segment.
	var slope float64
	if dx != 0 {
		slope = dy / dx
	}
	// Vertical extent of a band of perpendicular half-width 1.
	secAlpha := math.Hypot(1, slope)

	left := int(math.Floor(min(s.P0.X, s.P1.X) - half))
	right := int(math.Ceil(max(s.P0.X, s.P1.X) + half))
	top := int(math.Floor(min(s.P0.Y, s.P1.Y) - half))
	bottom := int(math.Ceil(max(s.P0.Y, s.P1.Y) + half))

	w := max(right-left, 1)
	h := max(bottom-top, 1)
	pm := NewPixmap(w, h)

	band := (half + 0.5) * secAlpha
	for xi := range w {
		x := float64(xi+left) + 0.5
		iy := slope*(x-s.P0.X) + s.P0.Y

		// Rows outside the band have zero coverage.
		lo := max(0, int(roundHalfEven(iy-band))-top)
		hi := min(h, int(roundHalfEven(iy+band))-top)
		for yi := lo; yi < hi; yi++ {
			y := float64(yi+top) + 0.5
			cov := Coverage(half, DistanceToSegment(Pt(x, y), s))
			if cov == 0 {
				continue
			}
			pm.SetPixel(xi, yi, scaleAlpha(c, cov))
		}
	}

	return Patch{Pixmap: pm, Offset: image.Pt(left, top)}
}
