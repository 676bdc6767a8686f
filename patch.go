package aadraw

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/aadraw/internal/blend"
)

// Patch is a small pixmap holding only the pixels one primitive touches,
// together with the position of its top-left corner in the destination.
//
// Patches returned from the stamp cache are shared between callers and must
// be treated as read-only.
type Patch struct {
	Pixmap *Pixmap
	Offset image.Point
}

// Bounds returns the destination rectangle covered by the patch.
func (p Patch) Bounds() image.Rectangle {
	if p.Pixmap == nil {
		return image.Rectangle{Min: p.Offset, Max: p.Offset}
	}
	return image.Rectangle{
		Min: p.Offset,
		Max: p.Offset.Add(image.Pt(p.Pixmap.Width(), p.Pixmap.Height())),
	}
}

// Translate returns the patch moved by d. The pixels are shared.
func (p Patch) Translate(d image.Point) Patch {
	return Patch{Pixmap: p.Pixmap, Offset: p.Offset.Add(d)}
}

// Transpose returns the patch mirrored along the main diagonal: pixels and
// offset both have their coordinates swapped.
func (p Patch) Transpose() Patch {
	return Patch{
		Pixmap: p.Pixmap.Transpose(),
		Offset: image.Pt(p.Offset.Y, p.Offset.X),
	}
}

// Composite draws the patch over dst at its offset using straight-alpha
// source-over compositing. Pixels falling outside dst are dropped.
func Composite(dst draw.Image, p Patch) {
	compositeMode(dst, p, blend.ModeSourceOver)
}

// compositeMode merges the patch into dst with the given blend mode, clipped
// to the destination bounds.
func compositeMode(dst draw.Image, p Patch, mode blend.Mode) {
	if p.Pixmap == nil {
		return
	}
	r := p.Bounds().Intersect(dst.Bounds())
	if r.Empty() {
		Logger().Debug("aadraw: patch outside destination",
			"patch", p.Bounds(), "dst", dst.Bounds())
		return
	}

	src := p.Pixmap
	sx0 := r.Min.X - p.Offset.X
	n := r.Dx() * 4

	switch d := dst.(type) {
	case *Pixmap:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			so := ((y-p.Offset.Y)*src.width + sx0) * 4
			do := (y*d.width + r.Min.X) * 4
			blend.Span(mode, d.data[do:do+n], src.data[so:so+n])
		}
	case *image.NRGBA:
		for y := r.Min.Y; y < r.Max.Y; y++ {
			so := ((y-p.Offset.Y)*src.width + sx0) * 4
			do := d.PixOffset(r.Min.X, y)
			blend.Span(mode, d.Pix[do:do+n], src.data[so:so+n])
		}
	default:
		kernel := blend.GetFunc(mode)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				s := src.GetPixel(x-p.Offset.X, y-p.Offset.Y)
				if s.A == 0 && mode == blend.ModeSourceOver {
					continue
				}
				b := toNRGBA(d.At(x, y))
				cr, cg, cb, ca := kernel(s.R, s.G, s.B, s.A, b.R, b.G, b.B, b.A)
				d.Set(x, y, color.NRGBA{R: cr, G: cg, B: cb, A: ca})
			}
		}
	}
}
