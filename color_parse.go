package aadraw

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ParseColor parses a colour specification into its byte representation.
//
// Accepted forms:
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - "rgb(r, g, b)" and "rgba(r, g, b, a)" with channels 0-255; a is either
//     an integer 0-255 or a fraction such as 0.5
//   - "hsl(h, s%, l%)"
//   - SVG 1.1 colour names ("red", "cornflowerblue", ...) and "transparent"
func ParseColor(s string) (color.NRGBA, error) {
	spec := strings.TrimSpace(s)
	if spec == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty specification", ErrInvalidColor)
	}

	if spec[0] == '#' {
		c, ok := parseHexColor(spec[1:])
		if !ok {
			return color.NRGBA{}, fmt.Errorf("%w: bad hex colour %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	// A Caser is stateful and must not be shared between goroutines.
	name := cases.Fold().String(spec)
	if open := strings.IndexByte(name, '('); open > 0 && strings.HasSuffix(name, ")") {
		fn := strings.TrimSpace(name[:open])
		args := strings.Split(name[open+1:len(name)-1], ",")
		c, err := parseColorFunc(fn, args)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		return c, nil
	}

	if name == "transparent" {
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: unknown colour name %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics if s cannot be parsed.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex creates a colour from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Invalid input yields opaque black.
func Hex(hex string) RGBA {
	hex = strings.TrimPrefix(hex, "#")
	c, ok := parseHexColor(hex)
	if !ok {
		return Black
	}
	return FromNRGBA(c)
}

func parseHexColor(hex string) (color.NRGBA, bool) {
	var v [4]uint64
	v[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return color.NRGBA{}, false
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			d, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return color.NRGBA{}, false
			}
			v[i/2] = d
		}
	default:
		return color.NRGBA{}, false
	}

	return color.NRGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, true
}

func parseColorFunc(fn string, args []string) (color.NRGBA, error) {
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	switch fn {
	case "rgb", "rgba":
		want := 3
		if fn == "rgba" {
			want = 4
		}
		if len(args) != want {
			return color.NRGBA{}, fmt.Errorf("%s() takes %d arguments, got %d", fn, want, len(args))
		}
		var ch [3]uint8
		for i := range 3 {
			n, err := strconv.ParseUint(args[i], 10, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("channel %d: %w", i, err)
			}
			ch[i] = uint8(n)
		}
		a := uint8(255)
		if fn == "rgba" {
			var err error
			if a, err = parseAlpha(args[3]); err != nil {
				return color.NRGBA{}, err
			}
		}
		return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil

	case "hsl":
		if len(args) != 3 {
			return color.NRGBA{}, fmt.Errorf("hsl() takes 3 arguments, got %d", len(args))
		}
		h, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("hue: %w", err)
		}
		sat, err := parsePercent(args[1])
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("saturation: %w", err)
		}
		light, err := parsePercent(args[2])
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("lightness: %w", err)
		}
		return HSL(h, sat, light).NRGBA(), nil

	default:
		return color.NRGBA{}, fmt.Errorf("unknown colour function %q", fn)
	}
}

// parseAlpha accepts an integer 0-255 or a fraction containing a '.'.
func parseAlpha(s string) (uint8, error) {
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 || f > 1 {
			return 0, fmt.Errorf("alpha %q out of range", s)
		}
		return toByte(f), nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("alpha: %w", err)
	}
	return uint8(n), nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%q out of range", s)
	}
	return v / 100, nil
}
