package aadraw

import "errors"

// Sentinel errors for the aadraw package.
var (
	// ErrInvalidOption is returned when an enumerated option such as an
	// anti-alias tier or a rounding mode is not recognized. Nothing is drawn
	// when a draw call returns it.
	ErrInvalidOption = errors.New("aadraw: unrecognized option")

	// ErrInvalidColor is returned when a colour specification cannot be parsed.
	ErrInvalidColor = errors.New("aadraw: invalid color")
)
