// Package blend implements the byte-level compositing kernels used to merge
// straight-alpha (non-premultiplied) RGBA pixels.
//
// Colour channels are stored independently of alpha, the way image.NRGBA and
// most image files store them. The kernels therefore divide by the resulting
// alpha instead of relying on premultiplied sums.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects how a source pixel is merged into a destination pixel.
type Mode uint8

const (
	// ModeSource replaces the destination with the source.
	ModeSource Mode = iota
	// ModeSourceOver composites the source over the destination [default].
	ModeSourceOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSource:
		return "Source"
	case ModeSourceOver:
		return "SourceOver"
	default:
		return "Unknown"
	}
}

// Func is the signature for blend operations on straight-alpha bytes.
// Parameters:
//   - sr, sg, sb, sa: source colour (red, green, blue, alpha)
//   - dr, dg, db, da: destination colour (red, green, blue, alpha)
//
// Returns: resulting colour (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given mode.
// Returns the source-over kernel for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case ModeSource:
		return blendSource
	default:
		return blendSourceOver
	}
}

// Span blends a run of RGBA pixels from src into dst, 4 bytes per pixel.
// Only min(len(dst), len(src))/4 pixels are processed.
func Span(mode Mode, dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	if mode == ModeSource {
		copy(dst[:n], src[:n])
		return
	}
	for i := 0; i < n; i += 4 {
		sa := src[i+3]
		if sa == 0 {
			continue
		}
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = blendSourceOver(
			src[i+0], src[i+1], src[i+2], sa,
			dst[i+0], dst[i+1], dst[i+2], dst[i+3])
	}
}
