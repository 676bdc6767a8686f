package aadraw

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// goRegular parses the embedded Go Regular font once.
var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// NewFace returns a face of the embedded Go Regular font at size points and
// dpi dots per inch.
func NewFace(size, dpi float64) (font.Face, error) {
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("aadraw: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("aadraw: failed to create face: %w", err)
	}
	return face, nil
}

// TextHeight returns the height of one line of text set in face, in pixels:
// the distance from the ascender line to the descender line. It does not
// depend on the text itself, so labels of different content line up.
func TextHeight(face font.Face) float64 {
	m := face.Metrics()
	return fixedToFloat64(m.Ascent + m.Descent)
}

// MeasureText returns the advance width of s set in face, in pixels.
func MeasureText(face font.Face, s string) float64 {
	return fixedToFloat64(font.MeasureString(face, s))
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
