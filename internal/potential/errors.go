package potential

import "errors"

// Domain errors for potential and grid construction.
var (
	// ErrNonPositiveMass indicates GM <= 0.
	ErrNonPositiveMass = errors.New("potential: GM must be positive")

	// ErrNonPositiveRadius indicates a radial window starting at or below zero.
	ErrNonPositiveRadius = errors.New("potential: rMin must be positive")

	// ErrWindowInverted indicates rMin >= rMax.
	ErrWindowInverted = errors.New("potential: rMin must be less than rMax")

	// ErrTooFewPoints indicates a grid too small to describe a curve.
	ErrTooFewPoints = errors.New("potential: grid needs at least two points")
)
