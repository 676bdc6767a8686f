package pipeline

import (
	"strings"

	"github.com/gogpu/aadraw"
)

// Chain is a unit made of sub-units forwarded in order.
type Chain struct {
	info
	units []Unit
}

// NewChain returns a chain of the given units.
func NewChain(units []Unit, opts ...Option) *Chain {
	o := applyOptions(defaultUnitOptions("Chain", "Forwards its sub-units in order."), opts)
	return &Chain{
		info:  info{name: o.name, description: o.description},
		units: units,
	}
}

// Units returns the chain's sub-units.
func (c *Chain) Units() []Unit {
	return c.units
}

// Recipe lists the description of every sub-unit.
func (c *Chain) Recipe() []string {
	var lines []string
	for _, u := range c.units {
		lines = append(lines, describeLines(u)...)
	}
	return lines
}

// Forward forwards every sub-unit in order. It stops at the first failing
// unit and returns its error wrapped in a *UnitError; the canvas keeps the
// changes made by the units before it.
func (c *Chain) Forward(cv *Canvas) error {
	for _, u := range c.units {
		aadraw.Logger().Info("pipeline: forwarding",
			"unit", u.Name(), "recipe", strings.Join(u.Recipe(), "; "))
		if err := u.Forward(cv); err != nil {
			return &UnitError{Unit: u.Name(), Err: err}
		}
	}
	return nil
}
