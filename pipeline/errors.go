package pipeline

import "errors"

// Sentinel errors for the pipeline package.
var (
	// ErrUnsupportedFormat is returned when an image format cannot be
	// determined from a file extension or has no encoder.
	ErrUnsupportedFormat = errors.New("pipeline: unsupported image format")

	// ErrInvalidMargin is returned by Margin for negative sizes.
	ErrInvalidMargin = errors.New("pipeline: negative margin")

	// ErrInvalidSize is returned by Resize for sizes it cannot produce.
	ErrInvalidSize = errors.New("pipeline: invalid size")

	// ErrSameDirectory is returned by Watch when the output directory is
	// the watched one.
	ErrSameDirectory = errors.New("pipeline: output directory is the watched directory")
)

// UnitError is returned by Chain.Forward when a sub-unit fails.
type UnitError struct {
	Unit string
	Err  error
}

func (e *UnitError) Error() string {
	return "pipeline: unit " + e.Unit + ": " + e.Err.Error()
}

// Unwrap returns the error reported by the unit.
func (e *UnitError) Unwrap() error {
	return e.Err
}
