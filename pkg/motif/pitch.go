package motif

import "fmt"

// Pitch policy names, used in CLI flags, config files, and cache keys.
const (
	PitchFixed        = "fixed"
	PitchProportional = "proportional"
)

// PitchPolicy governs stitch spacing along a side. The compiler is written
// once and takes the policy as an injected strategy; there are no per-policy
// compiler variants.
type PitchPolicy interface {
	// Name returns the policy's canonical name.
	Name() string

	// StitchWidth returns the effective stitch width for a side, given the
	// configured base width, the side's edge length, and the number of
	// parametric stitch units on the side.
	StitchWidth(base, sideLength float64, units int) float64
}

// FixedPitch spaces stitches at the configured width regardless of how long
// the side actually is. This is the schematic "chart" layout.
type FixedPitch struct{}

// Name returns "fixed".
func (FixedPitch) Name() string { return PitchFixed }

// StitchWidth returns the base width unchanged.
func (FixedPitch) StitchWidth(base, _ float64, _ int) float64 { return base }

// ProportionalPitch divides the side evenly among its stitch units, so
// stitches spread with the square as it grows. This is the "realistic"
// layout.
type ProportionalPitch struct{}

// Name returns "proportional".
func (ProportionalPitch) Name() string { return PitchProportional }

// StitchWidth returns sideLength divided by the unit count.
func (ProportionalPitch) StitchWidth(_, sideLength float64, units int) float64 {
	return sideLength / float64(units)
}

// PolicyByName resolves a pitch policy from its canonical name.
func PolicyByName(name string) (PitchPolicy, error) {
	switch name {
	case PitchFixed, "":
		return FixedPitch{}, nil
	case PitchProportional:
		return ProportionalPitch{}, nil
	default:
		return nil, fmt.Errorf("unknown pitch policy: %q (must be one of: fixed, proportional)", name)
	}
}
