// Package potential provides closed-form effective potentials for test
// particles and photons in a Schwarzschild spacetime.
//
// All potentials are per unit mass and expressed in normalized units where
// the gravitational mass parameter GM sets the length scale:
//
//   - [Params.EffectiveMassive]: -GM/r + l²/2r² - GM·l²/r³
//   - [Params.NewtonianMassive]: -GM/r + l²/2r² (no curvature term)
//   - [Params.EffectivePhoton]: (1/r²)(1 - 2GM/r)
//   - [NewtonianPhoton]: 1/r²
//
// Every function here is pure: same inputs, same outputs, no hidden state.
// Grid sampling with [Sample] allocates a fresh slice per call so repeated
// evaluations are bit-identical and independent.
//
// # Validity
//
// The formulas contain 1/r terms, so radial windows must stay strictly
// positive. [NewGrid] enforces this at construction rather than guarding
// each evaluation.
package potential
