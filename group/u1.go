// SPDX-License-Identifier: MIT

package group

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlgauge/numeric"
)

// U1 is a U(1) link value: a complex scalar of unit modulus on the manifold.
type U1 complex128

// Mul returns the product u·o. Complexity: O(1).
func (u U1) Mul(o U1) U1 { return u * o }

// Adjoint returns the complex conjugate (= inverse on the unit circle).
func (u U1) Adjoint() U1 { return U1(complex(real(u), -imag(u))) }

// Trace returns the scalar itself (1-dimensional representation).
func (u U1) Trace() complex128 { return complex128(u) }

// U1Group is the Group capability for U(1). The zero value is not ready;
// construct with NewU1.
type U1Group struct {
	tol float64
	nb  numeric.Backend
}

// NewU1 returns the U(1) capability at the given precision tier. A nil
// backend selects the standard math backend.
func NewU1(prec Precision, nb numeric.Backend) U1Group {
	return U1Group{tol: prec.Tolerance(), nb: numeric.OrStd(nb)}
}

// Name returns "U1".
func (U1Group) Name() string { return "U1" }

// Dim returns 1.
func (U1Group) Dim() int { return 1 }

// Identity returns 1+0i.
func (U1Group) Identity() U1 { return 1 }

// Haar draws a uniform phase on the unit circle.
//
// Complexity: O(1).
func (g U1Group) Haar(rng *rand.Rand) U1 {
	theta := 2 * math.Pi * rng.Float64()

	return U1(complex(g.nb.Cos(theta), g.nb.Sin(theta)))
}

// Small draws exp(iθ) with θ uniform in [-spread, +spread]. The distribution
// is symmetric under inversion, as the Metropolis proposal requires.
//
// Complexity: O(1).
func (g U1Group) Small(rng *rand.Rand, spread float64) U1 {
	theta := spread * (2*rng.Float64() - 1)

	return U1(complex(g.nb.Cos(theta), g.nb.Sin(theta)))
}

// Deviation returns | |u| − 1 |.
func (g U1Group) Deviation(e U1) float64 {
	r := g.nb.Sqrt(real(e)*real(e) + imag(e)*imag(e))

	return math.Abs(r - 1)
}

// Reproject rescales u onto the unit circle. Idempotent: a unit-modulus input
// is returned bit-identically up to one division by a modulus of exactly 1.
//
// Errors: ErrManifold when the modulus is zero or non-finite.
func (g U1Group) Reproject(e U1) (U1, error) {
	r := g.nb.Sqrt(real(e)*real(e) + imag(e)*imag(e))
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrManifold
	}

	out := U1(complex(real(e)/r, imag(e)/r))
	if g.Deviation(out) > g.tol {
		return 0, ErrManifold
	}

	return out, nil
}

// Add returns the complex sum (ambient algebra).
func (U1Group) Add(a, b U1) U1 { return a + b }

// Scale returns s·a (ambient algebra).
func (U1Group) Scale(s float64, a U1) U1 {
	return U1(complex(s*real(a), s*imag(a)))
}

// Project returns the imaginary part i·Im(a): the u(1) algebra is the
// imaginary axis.
func (U1Group) Project(a U1) U1 { return U1(complex(0, imag(a))) }

// Exp returns e^a for an algebra element a = iθ: exp(Re a)·(cos θ + i sin θ).
// For traceless anti-hermitian input (Re a = 0) the result is exactly on the
// unit circle.
func (g U1Group) Exp(a U1) U1 {
	scale := g.nb.Exp(real(a))
	theta := imag(a)

	return U1(complex(scale*g.nb.Cos(theta), scale*g.nb.Sin(theta)))
}
