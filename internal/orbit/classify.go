package orbit

import (
	"math"

	"github.com/san-kum/gravpot/internal/potential"
)

// Regime is the fate of a photon by impact parameter. Exactly one regime
// applies per value.
type Regime int

const (
	// Captured photons spiral in past the photon sphere.
	Captured Regime = iota
	// Escapes photons are deflected and return to infinity.
	Escapes
	// Critical photons orbit unstably at the photon sphere.
	Critical
)

func (r Regime) String() string {
	switch r {
	case Captured:
		return "captured"
	case Escapes:
		return "escapes"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// Classification pairs an impact parameter with its effective energy level
// 1/(b·GM)² and regime.
type Classification struct {
	B      float64
	Energy float64
	Regime Regime
}

// CriticalImpactParameter returns sqrt(27)·GM, the capture threshold.
func CriticalImpactParameter(p potential.Params) float64 {
	return math.Sqrt(27) * p.GM
}

// Classify partitions an impact parameter against the capture threshold.
// Exact equality yields Critical, reachable in practice only when the
// caller supplies the literal threshold value.
func Classify(b float64, p potential.Params) Classification {
	bGM := b * p.GM
	c := Classification{
		B:      b,
		Energy: 1 / (bGM * bGM),
	}

	switch crit := CriticalImpactParameter(p); {
	case bGM < crit:
		c.Regime = Captured
	case bGM > crit:
		c.Regime = Escapes
	default:
		c.Regime = Critical
	}
	return c
}
