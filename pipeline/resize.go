package pipeline

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/aadraw"
)

// Resize scales the image to Width×Height pixels with linear resampling.
// If one of the sizes is 0 it is derived from the other, keeping the aspect
// ratio.
type Resize struct {
	info
	Width, Height int
}

// NewResize returns a resize unit.
func NewResize(width, height int, opts ...Option) *Resize {
	o := applyOptions(defaultUnitOptions("Resize", "Scales the image."), opts)
	return &Resize{
		info:   info{name: o.name, description: o.description},
		Width:  width,
		Height: height,
	}
}

// Recipe returns the target size.
func (u *Resize) Recipe() []string {
	return []string{fmt.Sprintf("width=%d, height=%d", u.Width, u.Height)}
}

// Forward replaces the current image with the scaled one.
func (u *Resize) Forward(c *Canvas) error {
	cur := c.Current()
	w, h, err := u.targetSize(cur.Width(), cur.Height())
	if err != nil {
		return err
	}
	if w == cur.Width() && h == cur.Height() {
		return nil
	}
	c.SetCurrent(aadraw.FromImage(transform.Resize(cur, w, h, transform.Linear)))
	return nil
}

func (u *Resize) targetSize(srcW, srcH int) (int, int, error) {
	w, h := u.Width, u.Height
	if w < 0 || h < 0 || (w == 0 && h == 0) {
		return 0, 0, fmt.Errorf("%w: resize to %dx%d", ErrInvalidSize, w, h)
	}
	if srcW == 0 || srcH == 0 {
		return 0, 0, fmt.Errorf("%w: resize of an empty image", ErrInvalidSize)
	}
	switch {
	case w == 0:
		w = max(int(math.RoundToEven(float64(h)*float64(srcW)/float64(srcH))), 1)
	case h == 0:
		h = max(int(math.RoundToEven(float64(w)*float64(srcH)/float64(srcW))), 1)
	}
	return w, h, nil
}
