package pipeline

import (
	"image/jpeg"

	"github.com/gogpu/aadraw"
)

// DefaultPPI is the resolution used to convert millimetres when a unit is
// not given WithPPI.
const DefaultPPI = 300

// Option configures a processing unit during creation.
//
// Example:
//
//	m := pipeline.NewMargin(10, 10, 10, 10, aadraw.White,
//		pipeline.WithName("frame"),
//		pipeline.WithDescription("thin white frame"))
type Option func(*unitOptions)

// unitOptions holds optional configuration shared by all units. Units that
// do not draw ignore the drawing fields.
type unitOptions struct {
	name        string
	description string
	ppi         float64
	mode        aadraw.AntiAlias
	round       aadraw.RoundMode
}

// defaultUnitOptions returns the options of a unit of the given kind.
func defaultUnitOptions(kind, description string) unitOptions {
	return unitOptions{
		name:        kind,
		description: description,
		ppi:         DefaultPPI,
		mode:        aadraw.AntiAliasAccurate,
		round:       aadraw.RoundNone,
	}
}

func applyOptions(o unitOptions, opts []Option) unitOptions {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName sets the unit's name. The default is the unit's kind.
func WithName(name string) Option {
	return func(o *unitOptions) {
		o.name = name
	}
}

// WithDescription replaces the unit's default description.
func WithDescription(d string) Option {
	return func(o *unitOptions) {
		o.description = d
	}
}

// WithPPI sets the resolution, in pixels per inch, used to convert the
// unit's millimetre measurements to pixels.
func WithPPI(ppi float64) Option {
	return func(o *unitOptions) {
		o.ppi = ppi
	}
}

// WithAntiAlias selects the quality tier of drawing units. The default is
// aadraw.AntiAliasAccurate.
func WithAntiAlias(mode aadraw.AntiAlias) Option {
	return func(o *unitOptions) {
		o.mode = mode
	}
}

// WithRoundMode sets how converted positions are snapped to the pixel grid.
// The default, aadraw.RoundNone, keeps sub-pixel positions.
func WithRoundMode(m aadraw.RoundMode) Option {
	return func(o *unitOptions) {
		o.round = m
	}
}

// SaveOption configures Canvas.Save and Canvas.Encode.
type SaveOption func(*saveOptions)

type saveOptions struct {
	jpegQuality int
	format      string
}

func defaultSaveOptions() saveOptions {
	return saveOptions{jpegQuality: jpeg.DefaultQuality}
}

// WithJPEGQuality sets the JPEG quality, 1 to 100.
func WithJPEGQuality(q int) SaveOption {
	return func(o *saveOptions) {
		o.jpegQuality = q
	}
}

// WithFormat forces the output format ("png", "jpeg", "gif", "bmp" or
// "tiff") instead of deriving it from the file extension.
func WithFormat(format string) SaveOption {
	return func(o *saveOptions) {
		o.format = format
	}
}
