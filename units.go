package aadraw

import (
	"fmt"
	"math"
)

// MMPerInch is the number of millimetres in one inch.
const MMPerInch = 25.4

// MMToPixel converts a length in millimetres to pixels at the given
// resolution in pixels per inch.
func MMToPixel(x, ppi float64) float64 {
	return x / MMPerInch * ppi
}

// PixelToMM converts a length in pixels to millimetres at the given
// resolution in pixels per inch. It is the inverse of MMToPixel.
func PixelToMM(x, ppi float64) float64 {
	return x * MMPerInch / ppi
}

// RoundMode selects how PosMMToPixel snaps converted coordinates.
type RoundMode uint8

const (
	// RoundNone keeps the real-valued coordinates.
	RoundNone RoundMode = iota

	// RoundFloor rounds each axis toward negative infinity.
	RoundFloor

	// RoundNearest rounds each axis to the nearest integer, ties to even.
	// This is the rounding used everywhere else in the package.
	RoundNearest
)

// String returns the name accepted by ParseRoundMode.
func (m RoundMode) String() string {
	switch m {
	case RoundNone:
		return "none"
	case RoundFloor:
		return "floor"
	case RoundNearest:
		return "round"
	default:
		return fmt.Sprintf("RoundMode(%d)", uint8(m))
	}
}

// ParseRoundMode returns the RoundMode named by s: "none", "floor" or
// "round".
func ParseRoundMode(s string) (RoundMode, error) {
	switch s {
	case "none":
		return RoundNone, nil
	case "floor":
		return RoundFloor, nil
	case "round":
		return RoundNearest, nil
	default:
		return 0, fmt.Errorf("%w: round mode %q", ErrInvalidOption, s)
	}
}

// PosMMToPixel converts a position in millimetres to pixel coordinates,
// snapping both axes according to mode. The result is not clamped and may be
// negative.
func PosMMToPixel(p Point, ppi float64, mode RoundMode) (Point, error) {
	q := Point{X: MMToPixel(p.X, ppi), Y: MMToPixel(p.Y, ppi)}
	switch mode {
	case RoundNone:
		return q, nil
	case RoundFloor:
		return Point{X: math.Floor(q.X), Y: math.Floor(q.Y)}, nil
	case RoundNearest:
		return Point{X: roundHalfEven(q.X), Y: roundHalfEven(q.Y)}, nil
	default:
		return Point{}, fmt.Errorf("%w: round mode %v", ErrInvalidOption, mode)
	}
}

// roundHalfEven is the single rounding policy of the package.
func roundHalfEven(x float64) float64 {
	return math.RoundToEven(x)
}
