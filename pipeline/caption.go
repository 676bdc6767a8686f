package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/aadraw"
)

// Caption appends a strip below the image and sets centred text in it.
//
// The strip is as tall as the text plus half a line of padding above and
// below. Line height comes from aadraw.TextHeight, so captions with the same
// size and line count always get the same strip.
type Caption struct {
	info
	Text       string
	Size       float64 // points
	Foreground color.Color
	Background color.Color

	ppi float64
}

// NewCaption returns a caption unit. The font is the embedded Go Regular
// face at size points, rendered at the unit's ppi.
func NewCaption(text string, size float64, fg, bg color.Color, opts ...Option) *Caption {
	o := applyOptions(defaultUnitOptions("Caption", "Adds a text strip below the image."), opts)
	return &Caption{
		info:       info{name: o.name, description: o.description},
		Text:       text,
		Size:       size,
		Foreground: fg,
		Background: bg,
		ppi:        o.ppi,
	}
}

// Recipe returns the caption text and style.
func (u *Caption) Recipe() []string {
	return []string{
		fmt.Sprintf("text=%q, size=%gpt, ppi=%g", u.Text, u.Size, u.ppi),
		fmt.Sprintf("foreground=%s, background=%s", formatColor(u.Foreground), formatColor(u.Background)),
	}
}

// Forward replaces the current image with the captioned one.
func (u *Caption) Forward(c *Canvas) error {
	if err := checkPPI(u.ppi); err != nil {
		return err
	}
	if !(u.Size > 0) {
		return fmt.Errorf("%w: caption size %v", aadraw.ErrInvalidOption, u.Size)
	}
	if err := checkColor("caption foreground", u.Foreground); err != nil {
		return err
	}
	if err := checkColor("caption background", u.Background); err != nil {
		return err
	}
	face, err := aadraw.NewFace(u.Size, u.ppi)
	if err != nil {
		return err
	}
	defer face.Close()

	lines := strings.Split(u.Text, "\n")
	lineHeight := aadraw.TextHeight(face)
	pad := lineHeight / 2
	strip := int(math.Ceil(lineHeight*float64(len(lines)) + 2*pad))

	cur := c.Current()
	w, h := cur.Width(), cur.Height()
	pm := aadraw.NewPixmap(w, h+strip)
	pm.Clear(u.Background)
	draw.Draw(pm, cur.Bounds(), cur, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  pm,
		Src:  image.NewUniform(u.Foreground),
		Face: face,
	}
	ascent := face.Metrics().Ascent
	for i, line := range lines {
		top := float64(h) + pad + float64(i)*lineHeight
		x := (float64(w) - aadraw.MeasureText(face, line)) / 2
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(top*64)) + ascent,
		}
		d.DrawString(line)
	}

	aadraw.Logger().Debug("pipeline: caption strip",
		"lines", len(lines), "lineHeight", lineHeight, "strip", strip)
	c.SetCurrent(pm)
	return nil
}
