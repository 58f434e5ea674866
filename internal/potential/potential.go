package potential

// Params holds the physical configuration shared by every evaluation.
// GM is the gravitational mass parameter; 1.0 in normalized units.
type Params struct {
	GM float64
}

// NewParams validates the mass parameter. GM must be strictly positive.
func NewParams(gm float64) (Params, error) {
	if gm <= 0 {
		return Params{}, ErrNonPositiveMass
	}
	return Params{GM: gm}, nil
}

// EffectiveMassive returns the Schwarzschild effective potential per unit
// mass for a massive particle with angular momentum l at radius r.
func (p Params) EffectiveMassive(r, l float64) float64 {
	return -p.GM/r + 0.5*l*l/(r*r) - p.GM*l*l/(r*r*r)
}

// NewtonianMassive is the Newtonian counterpart, dropping the 1/r³ term.
func (p Params) NewtonianMassive(r, l float64) float64 {
	return -p.GM/r + 0.5*l*l/(r*r)
}

// EffectivePhoton returns the Schwarzschild effective potential for photons.
func (p Params) EffectivePhoton(r float64) float64 {
	return (1 - 2*p.GM/r) / (r * r)
}

// NewtonianPhoton is the Newtonian photon potential. It carries no mass
// dependence at all.
func NewtonianPhoton(r float64) float64 {
	return 1 / (r * r)
}

// Series is one named potential curve sampled over a grid, in the order of
// the grid radii.
type Series struct {
	Name   string
	Values []float64
}

// Sample evaluates f at every grid radius and returns a fresh slice.
func Sample(g *Grid, f func(r float64) float64) []float64 {
	out := make([]float64, len(g.Radii))
	for i, r := range g.Radii {
		out[i] = f(r)
	}
	return out
}

// NewSeries samples f over g under the given name.
func NewSeries(name string, g *Grid, f func(r float64) float64) Series {
	return Series{Name: name, Values: Sample(g, f)}
}
