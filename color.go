package aadraw

import (
	"image/color"
	"math"
)

// RGBA represents a straight-alpha colour with red, green, blue and alpha
// components, each in the range [0, 1]. It is the working representation of
// the compositing algebra; color.NRGBA is the byte representation stored in
// pixel buffers. The two convert into each other with round-half-to-even.
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// and scaled to [0, 0xffff].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	return uint32(roundHalfEven(clamp01(c.R) * alpha * 0xffff)),
		uint32(roundHalfEven(clamp01(c.G) * alpha * 0xffff)),
		uint32(roundHalfEven(clamp01(c.B) * alpha * 0xffff)),
		uint32(roundHalfEven(alpha * 0xffff))
}

// NRGBA converts the colour to its byte representation.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

// Opaque returns the colour with alpha set to 1.
func (c RGBA) Opaque() RGBA {
	c.A = 1
	return c
}

// WithAlpha returns the colour with alpha replaced by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// FromColor converts any color.Color to straight-alpha RGBA.
func FromColor(c color.Color) RGBA {
	if c, ok := c.(RGBA); ok {
		return c
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// FromNRGBA converts a byte colour to RGBA.
func FromNRGBA(c color.NRGBA) RGBA {
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// toNRGBA normalizes any colour argument to the canonical byte form.
func toNRGBA(c color.Color) color.NRGBA {
	switch c := c.(type) {
	case color.NRGBA:
		return c
	case RGBA:
		return c.NRGBA()
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// RGB creates an opaque colour from RGB components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// HSL creates an opaque colour from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// toByte scales a [0, 1] component to a byte.
func toByte(x float64) uint8 {
	return uint8(roundHalfEven(clamp01(x) * 255))
}

// Common colours
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
