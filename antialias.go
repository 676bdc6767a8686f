package aadraw

import "fmt"

// AntiAlias selects the quality tier of DrawCircle and DrawLine.
type AntiAlias uint8

const (
	// AntiAliasOff draws with the plain non-anti-aliased primitives
	// FillEllipse and StrokeLine. Fastest, jagged edges.
	AntiAliasOff AntiAlias = iota

	// AntiAliasFast composites the memoized canonical circle stamp. The
	// centre is snapped to whole pixels in exchange for cache reuse.
	// Lines have no fast tier.
	AntiAliasFast

	// AntiAliasAccurate rasterizes every primitive at its exact sub-pixel
	// position.
	AntiAliasAccurate
)

// String returns the tier name accepted by ParseAntiAlias.
func (a AntiAlias) String() string {
	switch a {
	case AntiAliasOff:
		return "off"
	case AntiAliasFast:
		return "fast"
	case AntiAliasAccurate:
		return "accurate"
	default:
		return fmt.Sprintf("AntiAlias(%d)", uint8(a))
	}
}

// ParseAntiAlias returns the tier named by s: "off", "fast" or "accurate".
func ParseAntiAlias(s string) (AntiAlias, error) {
	switch s {
	case "off":
		return AntiAliasOff, nil
	case "fast":
		return AntiAliasFast, nil
	case "accurate":
		return AntiAliasAccurate, nil
	default:
		return 0, fmt.Errorf("%w: anti-alias mode %q", ErrInvalidOption, s)
	}
}

// Set implements flag.Value.
func (a *AntiAlias) Set(s string) error {
	v, err := ParseAntiAlias(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
