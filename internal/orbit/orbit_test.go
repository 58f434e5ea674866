package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravpot/internal/orbit"
	"github.com/san-kum/gravpot/internal/potential"
)

var _ = Describe("FindExtrema", func() {
	p := potential.Params{GM: 1.0}

	It("finds a max/min pair above the ISCO threshold", func() {
		ext := orbit.FindExtrema(p, 4.0, 0.01, 1000)
		Expect(ext).To(HaveLen(2))

		// l=4: D = 1 - 12/16 = 1/4, roots at 6/(1±1/2).
		Expect(ext[0].R).To(BeNumerically("~", 4.0, 1e-12))
		Expect(ext[0].Kind).To(Equal(orbit.KindMax))
		Expect(ext[1].R).To(BeNumerically("~", 12.0, 1e-12))
		Expect(ext[1].Kind).To(Equal(orbit.KindMin))
	})

	It("labels the inner root as the maximum and the outer as the minimum", func() {
		ext := orbit.FindExtrema(p, 5.0, 0.01, 1000)
		Expect(ext).To(HaveLen(2))
		Expect(ext[0].R).To(BeNumerically("<", ext[1].R))
		Expect(ext[0].V).To(BeNumerically(">", ext[1].V))
	})

	It("evaluates potential values from the closed form", func() {
		ext := orbit.FindExtrema(p, 4.0, 0.01, 1000)
		Expect(ext[0].V).To(Equal(p.EffectiveMassive(ext[0].R, 4.0)))
		Expect(ext[1].V).To(Equal(p.EffectiveMassive(ext[1].R, 4.0)))
	})

	It("returns nothing below the ISCO threshold", func() {
		Expect(orbit.FindExtrema(p, 3.0, 0.01, 1000)).To(BeEmpty())
	})

	It("returns nothing exactly at the ISCO threshold", func() {
		Expect(orbit.FindExtrema(p, 2*math.Sqrt(3), 0.01, 1000)).To(BeEmpty())
	})

	It("filters extrema against the radial window", func() {
		// l=4 puts the roots at r=4 and r=12.
		Expect(orbit.FindExtrema(p, 4.0, 5, 1000)).To(HaveExactElements(
			HaveField("Kind", orbit.KindMin),
		))
		Expect(orbit.FindExtrema(p, 4.0, 0.1, 10)).To(HaveExactElements(
			HaveField("Kind", orbit.KindMax),
		))
		Expect(orbit.FindExtrema(p, 4.0, 5, 10)).To(BeEmpty())
	})

	It("treats the window bounds as inclusive", func() {
		ext := orbit.FindExtrema(p, 4.0, 4, 12)
		Expect(ext).To(HaveLen(2))
	})

	It("scales the threshold with GM", func() {
		heavy := potential.Params{GM: 2.0}
		Expect(orbit.CriticalAngularMomentum(heavy)).To(BeNumerically("~", 4*math.Sqrt(3), 1e-12))
		// l=4 clears the threshold for GM=1 but not GM=2.
		Expect(orbit.FindExtrema(heavy, 4.0, 0.01, 1000)).To(BeEmpty())
	})
})

var _ = Describe("Classify", func() {
	p := potential.Params{GM: 1.0}

	It("marks the exact threshold as critical", func() {
		c := orbit.Classify(math.Sqrt(27), p)
		Expect(c.Regime).To(Equal(orbit.Critical))
	})

	It("marks wide impact parameters as escaping", func() {
		c := orbit.Classify(6, p)
		Expect(c.Regime).To(Equal(orbit.Escapes))
		Expect(c.Energy).To(BeNumerically("~", 1.0/36.0, 1e-12))
	})

	It("marks narrow impact parameters as captured", func() {
		c := orbit.Classify(4, p)
		Expect(c.Regime).To(Equal(orbit.Captured))
		Expect(c.Energy).To(BeNumerically("~", 1.0/16.0, 1e-12))
	})

	It("partitions strictly around the threshold", func() {
		crit := orbit.CriticalImpactParameter(p)
		Expect(orbit.Classify(crit*(1-1e-9), p).Regime).To(Equal(orbit.Captured))
		Expect(orbit.Classify(crit*(1+1e-9), p).Regime).To(Equal(orbit.Escapes))
	})
})
