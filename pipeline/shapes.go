package pipeline

import (
	"fmt"
	"image/color"

	"github.com/gogpu/aadraw"
)

// Circle draws a filled circle whose centre and radius are given in
// millimetres.
type Circle struct {
	info
	Center aadraw.Point
	Radius float64
	Color  color.Color

	ppi   float64
	mode  aadraw.AntiAlias
	round aadraw.RoundMode
}

// NewCircle returns a circle unit. Positions are converted at DefaultPPI
// unless WithPPI is given.
func NewCircle(center aadraw.Point, radius float64, c color.Color, opts ...Option) *Circle {
	o := applyOptions(defaultUnitOptions("Circle", "Draws a filled circle."), opts)
	return &Circle{
		info:   info{name: o.name, description: o.description},
		Center: center,
		Radius: radius,
		Color:  c,
		ppi:    o.ppi,
		mode:   o.mode,
		round:  o.round,
	}
}

// Recipe returns the circle geometry and drawing settings.
func (u *Circle) Recipe() []string {
	return []string{
		fmt.Sprintf("center=(%gmm, %gmm), radius=%gmm, color=%s",
			u.Center.X, u.Center.Y, u.Radius, formatColor(u.Color)),
		fmt.Sprintf("ppi=%g, antialias=%s, round=%s", u.ppi, u.mode, u.round),
	}
}

// Forward draws the circle onto the current image.
func (u *Circle) Forward(c *Canvas) error {
	if err := checkPPI(u.ppi); err != nil {
		return err
	}
	if err := checkColor("circle color", u.Color); err != nil {
		return err
	}
	center, err := aadraw.PosMMToPixel(u.Center, u.ppi, u.round)
	if err != nil {
		return err
	}
	return aadraw.DrawCircle(c.Current(), center, aadraw.MMToPixel(u.Radius, u.ppi), u.Color, u.mode)
}

// Line draws a straight stroke between two points given in millimetres.
type Line struct {
	info
	From, To aadraw.Point
	Width    float64
	Color    color.Color

	ppi   float64
	mode  aadraw.AntiAlias
	round aadraw.RoundMode
}

// NewLine returns a line unit. width is in millimetres.
func NewLine(from, to aadraw.Point, width float64, c color.Color, opts ...Option) *Line {
	o := applyOptions(defaultUnitOptions("Line", "Draws a straight line."), opts)
	return &Line{
		info:  info{name: o.name, description: o.description},
		From:  from,
		To:    to,
		Width: width,
		Color: c,
		ppi:   o.ppi,
		mode:  o.mode,
		round: o.round,
	}
}

// Recipe returns the line geometry and drawing settings.
func (u *Line) Recipe() []string {
	return []string{
		fmt.Sprintf("from=(%gmm, %gmm), to=(%gmm, %gmm), width=%gmm, color=%s",
			u.From.X, u.From.Y, u.To.X, u.To.Y, u.Width, formatColor(u.Color)),
		fmt.Sprintf("ppi=%g, antialias=%s, round=%s", u.ppi, u.mode, u.round),
	}
}

// Forward draws the line onto the current image.
func (u *Line) Forward(c *Canvas) error {
	if err := checkPPI(u.ppi); err != nil {
		return err
	}
	if err := checkColor("line color", u.Color); err != nil {
		return err
	}
	p0, err := aadraw.PosMMToPixel(u.From, u.ppi, u.round)
	if err != nil {
		return err
	}
	p1, err := aadraw.PosMMToPixel(u.To, u.ppi, u.round)
	if err != nil {
		return err
	}
	s := aadraw.Segment{P0: p0, P1: p1}
	return aadraw.DrawLine(c.Current(), s, aadraw.MMToPixel(u.Width, u.ppi), u.Color, u.mode)
}

func checkColor(name string, c color.Color) error {
	if c == nil {
		return fmt.Errorf("%w: %s is nil", aadraw.ErrInvalidColor, name)
	}
	return nil
}

func checkPPI(ppi float64) error {
	if !(ppi > 0) {
		return fmt.Errorf("%w: ppi %v", aadraw.ErrInvalidOption, ppi)
	}
	return nil
}
