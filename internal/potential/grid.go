package potential

// DefaultGridPoints is the radial resolution used when none is requested.
const DefaultGridPoints = 3000

// Grid is a strictly increasing, evenly spaced radial sampling over
// [RMin, RMax], both endpoints included. Treat it as immutable once built;
// every render cycle constructs its own.
type Grid struct {
	RMin, RMax float64
	Radii      []float64
}

// NewGrid builds an n-point grid over [rMin, rMax]. The window must start
// above zero (the potentials carry 1/r terms) and hold at least two points.
func NewGrid(rMin, rMax float64, n int) (*Grid, error) {
	if rMin <= 0 {
		return nil, ErrNonPositiveRadius
	}
	if rMin >= rMax {
		return nil, ErrWindowInverted
	}
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	radii := make([]float64, n)
	step := (rMax - rMin) / float64(n-1)
	for i := range radii {
		radii[i] = rMin + float64(i)*step
	}
	// Pin the last point so the window is closed regardless of rounding.
	radii[n-1] = rMax

	return &Grid{RMin: rMin, RMax: rMax, Radii: radii}, nil
}
