package aadraw

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/aadraw/internal/blend"
)

// FillEllipse paints, without anti-aliasing, every pixel of dst whose centre
// lies inside the ellipse inscribed in r. Pixels are replaced, not blended.
// r is half-open like every image.Rectangle; an empty r paints nothing.
func FillEllipse(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Canon()
	clip := r.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}

	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2

	spans := scanSpans(clip, func(x, y int) bool {
		nx := (float64(x) + 0.5 - cx) / rx
		ny := (float64(y) + 0.5 - cy) / ry
		return nx*nx+ny*ny <= 1
	})
	fillSpans(dst, spans, toNRGBA(c))
}

// StrokeLine paints, without anti-aliasing, a line between the pixels p0
// and p1. Pixels are replaced, not blended.
//
// A width of 1 or less draws a one-pixel Bresenham line through both end
// pixels. Wider lines paint the rectangle of the given width centred on the
// segment joining the two pixel centres, with flat ends at the centres.
// When p0 equals p1 the rectangle degenerates to a width x width square.
func StrokeLine(dst draw.Image, p0, p1 image.Point, width int, c color.Color) {
	n := toNRGBA(c)
	if width <= 1 {
		fillSpans(dst, bresenham(p0, p1, dst.Bounds()), n)
		return
	}

	half := float64(width) / 2
	a := Pt(float64(p0.X)+0.5, float64(p0.Y)+0.5)
	d := Pt(float64(p1.X-p0.X), float64(p1.Y-p0.Y))
	l2 := d.Dot(d)

	pad := width/2 + 1
	box := image.Rectangle{Min: p0, Max: p1}.Canon()
	box = image.Rect(box.Min.X-pad, box.Min.Y-pad, box.Max.X+pad+1, box.Max.Y+pad+1)
	box = box.Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	spans := scanSpans(box, func(x, y int) bool {
		u := Pt(float64(x)+0.5, float64(y)+0.5).Sub(a)
		if l2 == 0 {
			return math.Abs(u.X) <= half && math.Abs(u.Y) <= half
		}
		along := u.Dot(d)
		if along < 0 || along > l2 {
			return false
		}
		return math.Abs(u.X*d.Y-u.Y*d.X) <= half*math.Sqrt(l2)
	})
	fillSpans(dst, spans, n)
}

// span is the run of pixels [x0, x1) on row y.
type span struct {
	y, x0, x1 int
}

// scanSpans returns, row by row, the pixels of r for which inside holds. The
// shape must be convex so that each row yields at most one run.
func scanSpans(r image.Rectangle, inside func(x, y int) bool) []span {
	var spans []span
	for y := r.Min.Y; y < r.Max.Y; y++ {
		found := false
		s := span{y: y}
		for x := r.Min.X; x < r.Max.X; x++ {
			if !inside(x, y) {
				continue
			}
			if !found {
				s.x0, found = x, true
			}
			s.x1 = x + 1
		}
		if found {
			spans = append(spans, s)
		}
	}
	return spans
}

// fillSpans replaces the pixels of every span with c. All spans share one
// row of colour composited in source mode.
func fillSpans(dst draw.Image, spans []span, c color.NRGBA) {
	longest := 0
	for _, s := range spans {
		longest = max(longest, s.x1-s.x0)
	}
	if longest == 0 {
		return
	}
	row := NewPixmap(longest, 1)
	row.Clear(c)

	for _, s := range spans {
		n := s.x1 - s.x0
		p := Patch{
			Pixmap: &Pixmap{width: n, height: 1, data: row.data[:n*4]},
			Offset: image.Pt(s.x0, s.y),
		}
		compositeMode(dst, p, blend.ModeSource)
	}
}

// bresenham returns the classic integer line from p0 to p1, both inclusive,
// as one run per row. Rows outside clip are dropped.
func bresenham(p0, p1 image.Point, clip image.Rectangle) []span {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	var spans []span
	emit := func(x, y int) {
		if y < clip.Min.Y || y >= clip.Max.Y {
			return
		}
		if k := len(spans) - 1; k >= 0 && spans[k].y == y {
			spans[k].x0 = min(spans[k].x0, x)
			spans[k].x1 = max(spans[k].x1, x+1)
			return
		}
		spans = append(spans, span{y: y, x0: x, x1: x + 1})
	}

	x, y := p0.X, p0.Y
	e := dx + dy
	for {
		emit(x, y)
		if x == p1.X && y == p1.Y {
			return spans
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
