// Package orbit classifies Schwarzschild trajectories: circular-orbit
// extrema for massive particles via the discriminant of dV/dr = 0, and
// capture/escape regimes for photons by impact parameter.
package orbit

import (
	"math"

	"github.com/san-kum/gravpot/internal/potential"
)

// Kind labels an extremum of the effective potential.
type Kind int

const (
	// KindMax is a local maximum: an unstable circular orbit.
	KindMax Kind = iota
	// KindMin is a local minimum: a stable circular orbit.
	KindMin
)

func (k Kind) String() string {
	switch k {
	case KindMax:
		return "max"
	case KindMin:
		return "min"
	default:
		return "unknown"
	}
}

// Extremum is a critical point of the massive-particle potential for one
// angular momentum value.
type Extremum struct {
	R    float64
	V    float64
	Kind Kind
}

// CriticalAngularMomentum returns 2·sqrt(3)·GM, the ISCO threshold. At or
// below it the potential has no max/min pair, only an inflection.
func CriticalAngularMomentum(p potential.Params) float64 {
	return 2 * math.Sqrt(3) * p.GM
}

// FindExtrema solves dV/dr = 0 in closed form and returns the extrema that
// fall inside the closed window [rMin, rMax]: zero, one or two points,
// inner root first.
//
// For discriminant D in (0,1) the inner root 6GM/(1+sqrt D) is the potential
// maximum and the outer root 6GM/(1-sqrt D) the minimum; the stable circular
// orbit always sits at the larger radius. Potential values come from the
// exact closed form, never from grid interpolation.
func FindExtrema(p potential.Params, l, rMin, rMax float64) []Extremum {
	if l <= CriticalAngularMomentum(p) {
		return nil
	}

	d := 1 - 12*(p.GM/l)*(p.GM/l)
	if d <= 0 {
		return nil
	}
	sqrtD := math.Sqrt(d)

	rUnstable := 6 * p.GM / (1 + sqrtD)
	rStable := 6 * p.GM / (1 - sqrtD)

	out := make([]Extremum, 0, 2)
	if potential.InWindow(rUnstable, rMin, rMax) {
		out = append(out, Extremum{
			R:    rUnstable,
			V:    p.EffectiveMassive(rUnstable, l),
			Kind: KindMax,
		})
	}
	if potential.InWindow(rStable, rMin, rMax) {
		out = append(out, Extremum{
			R:    rStable,
			V:    p.EffectiveMassive(rStable, l),
			Kind: KindMin,
		})
	}
	return out
}
