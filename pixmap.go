package aadraw

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular buffer of straight-alpha (non-premultiplied) RGBA
// pixels, 4 bytes per pixel, rows stored top to bottom.
//
// Pixmap implements draw.Image; drawing into it with DrawCircle or DrawLine
// takes a direct path that avoids per-pixel interface calls.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a fully transparent pixmap with the given dimensions.
// Negative dimensions are treated as 0.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (straight-alpha RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * 4
}

// SetPixel sets the colour of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the colour of a single pixel.
// Out-of-bounds coordinates return a transparent pixel.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a colour.
func (p *Pixmap) Clear(c color.Color) {
	n := toNRGBA(c)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = n.R
		p.data[i+1] = n.G
		p.data[i+2] = n.B
		p.data[i+3] = n.A
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	q := NewPixmap(p.width, p.height)
	copy(q.data, p.data)
	return q
}

// Transpose returns a new pixmap with rows and columns exchanged: the pixel
// at (x, y) moves to (y, x).
func (p *Pixmap) Transpose() *Pixmap {
	q := NewPixmap(p.height, p.width)
	for y := range p.height {
		for x := range p.width {
			src := (y*p.width + x) * 4
			dst := (x*q.width + y) * 4
			copy(q.data[dst:dst+4], p.data[src:src+4])
		}
	}
	return q
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image. The image's origin is moved to
// (0, 0).
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := range pm.height {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*pm.Stride():(y+1)*pm.Stride()], src.Pix[off:off+pm.Stride()])
		}
		return pm
	}

	for y := range pm.height {
		for x := range pm.width {
			pm.SetPixel(x, y, toNRGBA(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, toNRGBA(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
