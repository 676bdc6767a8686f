package aadraw

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// DrawCircle draws a filled circle into dst using the given quality tier:
//
//   - AntiAliasOff fills the ellipse with bounds rounded to whole pixels.
//   - AntiAliasFast composites the cached canonical stamp at
//     (floor(cx), floor(cy)); sub-pixel placement is lost.
//   - AntiAliasAccurate rasterizes the circle at its exact centre.
//
// A negative or NaN radius is treated as 0 in every tier. An unknown tier
// returns an error wrapping ErrInvalidOption before dst is touched. Parts of
// the circle outside dst are clipped.
func DrawCircle(dst draw.Image, center Point, radius float64, c color.Color, mode AntiAlias) error {
	radius = sanitizeSize(radius)
	switch mode {
	case AntiAliasOff:
		r := image.Rect(
			int(roundHalfEven(center.X-radius)), int(roundHalfEven(center.Y-radius)),
			int(roundHalfEven(center.X+radius)), int(roundHalfEven(center.Y+radius)))
		FillEllipse(dst, r, c)

	case AntiAliasFast:
		stamp := CachedCircleImage(StampCenter, radius, c)
		shift := image.Pt(int(math.Floor(center.X)), int(math.Floor(center.Y)))
		Composite(dst, stamp.Translate(shift))

	case AntiAliasAccurate:
		Composite(dst, CircleImage(center, radius, c))

	default:
		return fmt.Errorf("%w: anti-alias mode %v for circle", ErrInvalidOption, mode)
	}
	return nil
}

// DrawLine draws a straight stroke of the given width into dst:
//
//   - AntiAliasOff strokes between the floored endpoints with the width
//     rounded to whole pixels.
//   - AntiAliasAccurate rasterizes the stroke at its exact position.
//
// Lines have no fast tier: both endpoints vary independently, so there is no
// stamp to reuse. AntiAliasFast and unknown tiers return an error wrapping
// ErrInvalidOption before dst is touched.
func DrawLine(dst draw.Image, s Segment, width float64, c color.Color, mode AntiAlias) error {
	width = sanitizeSize(width)
	switch mode {
	case AntiAliasOff:
		p0 := image.Pt(int(math.Floor(s.P0.X)), int(math.Floor(s.P0.Y)))
		p1 := image.Pt(int(math.Floor(s.P1.X)), int(math.Floor(s.P1.Y)))
		StrokeLine(dst, p0, p1, int(roundHalfEven(width)), c)

	case AntiAliasAccurate:
		Composite(dst, LineImage(s, c, width))

	default:
		return fmt.Errorf("%w: anti-alias mode %v for line", ErrInvalidOption, mode)
	}
	return nil
}
