package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/aadraw"
)

// Margin surrounds the image with a solid border. The enlarged canvas is
// filled with the opaque version of Color, or white when Color is nil, and
// the current image is pasted at (Left, Top), replacing the fill.
type Margin struct {
	info
	Left, Right, Top, Bottom int
	Color                    color.Color
}

// NewMargin returns a margin unit with the given sizes in pixels.
func NewMargin(left, right, top, bottom int, c color.Color, opts ...Option) *Margin {
	o := applyOptions(defaultUnitOptions("Margin", "Adds a margin around the image."), opts)
	return &Margin{
		info:   info{name: o.name, description: o.description},
		Left:   left,
		Right:  right,
		Top:    top,
		Bottom: bottom,
		Color:  c,
	}
}

// Recipe returns the margin sizes and colour.
func (m *Margin) Recipe() []string {
	return []string{fmt.Sprintf("left=%d, right=%d, top=%d, bottom=%d, color=%s",
		m.Left, m.Right, m.Top, m.Bottom, formatColor(m.Color))}
}

// Forward replaces the current image with the framed one.
func (m *Margin) Forward(c *Canvas) error {
	if m.Left < 0 || m.Right < 0 || m.Top < 0 || m.Bottom < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidMargin, m.Recipe()[0])
	}

	cur := c.Current()
	w, h := cur.Width(), cur.Height()
	pm := aadraw.NewPixmap(w+m.Left+m.Right, h+m.Top+m.Bottom)

	mc := m.Color
	if mc == nil {
		mc = color.White
	}
	fill := color.NRGBAModel.Convert(mc).(color.NRGBA)
	fill.A = 255
	pm.Clear(fill)

	dst := image.Rect(m.Left, m.Top, m.Left+w, m.Top+h)
	draw.Draw(pm, dst, cur, image.Point{}, draw.Src)

	c.SetCurrent(pm)
	return nil
}
