package pipeline

import (
	"fmt"
	"image/color"
	"strings"
)

// Unit is one step of an editing pipeline.
type Unit interface {
	// Name identifies the unit in logs and errors.
	Name() string

	// Description says what the unit does.
	Description() string

	// Recipe returns the unit's key parameters, one entry per line.
	Recipe() []string

	// Forward applies the unit to the canvas.
	Forward(c *Canvas) error
}

// info implements the Name and Description methods of Unit.
type info struct {
	name        string
	description string
}

// Name returns the unit's name.
func (i info) Name() string {
	return i.name
}

// Description returns the unit's description.
func (i info) Description() string {
	return i.description
}

// Describe renders a unit as indented text:
//
//	class: pipeline.Margin
//	name: frame
//	description: Adds a margin around the image.
//	recipe:
//	  left=10, right=10, top=10, bottom=10, color=#ffffffff
//
// A Chain's recipe lists the descriptions of its sub-units, so nested
// chains render as a tree.
func Describe(u Unit) string {
	return strings.Join(describeLines(u), "\n")
}

func describeLines(u Unit) []string {
	lines := []string{
		"class: " + strings.TrimPrefix(fmt.Sprintf("%T", u), "*"),
		"name: " + u.Name(),
		"description: " + u.Description(),
		"recipe:",
	}
	for _, r := range u.Recipe() {
		lines = append(lines, "  "+r)
	}
	return lines
}

// formatColor renders a colour as #rrggbbaa.
func formatColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
