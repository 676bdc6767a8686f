package pipeline

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(40 * y), B: 200, A: 255})
		}
	}
	return img
}

func TestNewCanvasCopies(t *testing.T) {
	img := testImage(3, 2)
	c := NewCanvas(img)
	if c.Raw() != image.Image(img) {
		t.Error("Raw() is not the source image")
	}
	cur := c.Current()
	if cur.Width() != 3 || cur.Height() != 2 {
		t.Fatalf("Current() size = %dx%d", cur.Width(), cur.Height())
	}
	cur.SetPixel(0, 0, color.NRGBA{})
	if img.NRGBAAt(0, 0).A != 255 {
		t.Error("editing Current() changed the raw image")
	}
}

func TestSaveOpenRoundTrip(t *testing.T) {
	img := testImage(4, 3)
	for _, ext := range []string{".png", ".bmp", ".tif", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			if err := NewCanvas(img).Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			c, err := Open(path)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			for y := range 3 {
				for x := range 4 {
					if got, want := c.Current().GetPixel(x, y), img.NRGBAAt(x, y); got != want {
						t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestSaveLossyFormats(t *testing.T) {
	img := testImage(8, 8)
	for _, ext := range []string{".jpg", ".jpeg", ".gif"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			if err := NewCanvas(img).Save(path, WithJPEGQuality(90)); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			c, err := Open(path)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if b := c.Current().Bounds(); b != image.Rect(0, 0, 8, 8) {
				t.Errorf("decoded bounds = %v", b)
			}
		})
	}
}

func TestSaveUnsupported(t *testing.T) {
	c := NewCanvas(testImage(1, 1))
	path := filepath.Join(t.TempDir(), "out.xyz")
	if err := c.Save(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.xyz) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save() created a file for an unsupported format")
	}
	if err := c.Encode(&bytes.Buffer{}, "xyz"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(xyz) error = %v, want ErrUnsupportedFormat", err)
	}

	// WithFormat overrides the extension.
	if err := c.Save(filepath.Join(t.TempDir(), "out.xyz"), WithFormat("png")); err != nil {
		t.Errorf("Save(WithFormat) error = %v", err)
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Open(missing) succeeded")
	}
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Open(garbage) succeeded")
	}
}
