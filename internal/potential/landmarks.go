package potential

import "math"

// Landmarks are the fixed critical radii and constants of a Schwarzschild
// spacetime with mass parameter GM. They are lookups, not fits: renderers
// mark them whenever they fall inside the current radial window.
type Landmarks struct {
	// Horizon is the event horizon radius, 2GM.
	Horizon float64
	// PhotonSphere is the unstable photon circular orbit radius, 3GM.
	PhotonSphere float64
	// PhotonPotentialMax is the photon potential at the photon sphere,
	// 1/(27·GM²).
	PhotonPotentialMax float64
	// CriticalImpact is the capture threshold impact parameter, sqrt(27)·GM.
	CriticalImpact float64
}

// Landmarks returns the fixed landmark set for these parameters.
func (p Params) Landmarks() Landmarks {
	return Landmarks{
		Horizon:            2 * p.GM,
		PhotonSphere:       3 * p.GM,
		PhotonPotentialMax: 1 / (27 * p.GM * p.GM),
		CriticalImpact:     math.Sqrt(27) * p.GM,
	}
}

// InWindow reports whether r lies inside the closed window [rMin, rMax].
func InWindow(r, rMin, rMax float64) bool {
	return rMin <= r && r <= rMax
}
