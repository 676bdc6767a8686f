package pipeline

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/gogpu/aadraw"
)

// Canvas holds the image being edited. Raw is the image as loaded; Current
// is the working copy that units modify.
type Canvas struct {
	raw     image.Image
	current *aadraw.Pixmap
}

// NewCanvas returns a canvas editing a copy of img.
func NewCanvas(img image.Image) *Canvas {
	return &Canvas{raw: img, current: aadraw.FromImage(img)}
}

// Open decodes the image file at path. PNG, JPEG, GIF, BMP, TIFF and WebP
// are recognised by content.
func Open(path string) (*Canvas, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pipeline: decode %s: %w", path, err)
	}
	aadraw.Logger().Debug("pipeline: opened image",
		"path", path, "format", format, "size", img.Bounds().Size())
	return NewCanvas(img), nil
}

// Raw returns the image the canvas was created from.
func (c *Canvas) Raw() image.Image {
	return c.raw
}

// Current returns the working pixmap.
func (c *Canvas) Current() *aadraw.Pixmap {
	return c.current
}

// SetCurrent replaces the working pixmap.
func (c *Canvas) SetCurrent(pm *aadraw.Pixmap) {
	c.current = pm
}

// Save encodes the working pixmap to path. The format follows the file
// extension (.png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff) unless WithFormat
// is given.
func (c *Canvas) Save(path string, opts ...SaveOption) error {
	o := defaultSaveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.format == "" {
		format, err := formatFromPath(path)
		if err != nil {
			return err
		}
		o.format = format
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encode(f, c.current.ToImage(), o); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes the working pixmap to w in the given format.
func (c *Canvas) Encode(w io.Writer, format string, opts ...SaveOption) error {
	o := defaultSaveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.format = format
	return encode(w, c.current.ToImage(), o)
}

func encode(w io.Writer, img image.Image, o saveOptions) error {
	switch o.format {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: o.jpegQuality})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, o.format)
	}
}

func formatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".gif":
		return "gif", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}
