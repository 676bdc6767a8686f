package pipeline

import (
	"errors"
	"image/color"
	"testing"
)

func TestResizeForward(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
		srcW, srcH   int
	}{
		{"both", 8, 6, 8, 6, 4, 3},
		{"width only", 8, 0, 8, 6, 4, 3},
		{"height only", 0, 9, 12, 9, 4, 3},
		{"shrink", 2, 0, 2, 2, 5, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(testImage(tt.srcW, tt.srcH))
			if err := NewResize(tt.w, tt.h).Forward(c); err != nil {
				t.Fatalf("Forward() error = %v", err)
			}
			if w, h := c.Current().Width(), c.Current().Height(); w != tt.wantW || h != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResizeKeepsUniformColour(t *testing.T) {
	img := testImage(4, 4)
	fill := color.NRGBA{R: 10, G: 200, B: 30, A: 255}
	for y := range 4 {
		for x := range 4 {
			img.SetNRGBA(x, y, fill)
		}
	}
	c := NewCanvas(img)
	if err := NewResize(9, 7).Forward(c); err != nil {
		t.Fatal(err)
	}
	got := c.Current().GetPixel(4, 3)
	if farFrom(got.R, fill.R) || farFrom(got.G, fill.G) || farFrom(got.B, fill.B) || got.A != 255 {
		t.Errorf("pixel = %v, want about %v", got, fill)
	}
}

// farFrom reports whether a and b differ by more than one.
func farFrom(a, b uint8) bool {
	return int(a)-int(b) > 1 || int(b)-int(a) > 1
}

func TestResizeInvalid(t *testing.T) {
	for _, u := range []*Resize{NewResize(0, 0), NewResize(-1, 5), NewResize(5, -1)} {
		c := NewCanvas(testImage(2, 2))
		if err := u.Forward(c); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("%v: Forward() error = %v, want ErrInvalidSize", u.Recipe(), err)
		}
	}
}
