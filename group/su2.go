// SPDX-License-Identifier: MIT

package group

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlgauge/numeric"
)

// SU2 is an SU(2) link value in the quaternion parametrization
//
//	U = A·𝟙 + i(B·σ₁ + C·σ₂ + D·σ₃)
//
// which as a matrix reads [[A+iD, C+iB], [-C+iB, A-iD]]. On the manifold
// A²+B²+C²+D² = 1. General (non-unit) coefficient vectors represent arbitrary
// elements of the span of {𝟙, iσ} — the ambient algebra used by the flow —
// and multiply by the same rule.
type SU2 struct {
	A, B, C, D float64
}

// Mul returns the matrix product u·o, evaluated in quaternion components.
//
// Complexity: O(1), 16 multiplies.
func (u SU2) Mul(o SU2) SU2 {
	return SU2{
		A: u.A*o.A - u.B*o.B - u.C*o.C - u.D*o.D,
		B: u.A*o.B + o.A*u.B + o.C*u.D - o.D*u.C,
		C: u.A*o.C + o.A*u.C + o.D*u.B - o.B*u.D,
		D: u.A*o.D + o.A*u.D + o.B*u.C - o.C*u.B,
	}
}

// Adjoint returns the conjugate transpose: the vector part flips sign.
func (u SU2) Adjoint() SU2 { return SU2{A: u.A, B: -u.B, C: -u.C, D: -u.D} }

// Trace returns tr U = 2A (real for any coefficient vector).
func (u SU2) Trace() complex128 { return complex(2*u.A, 0) }

// norm2 is the squared coefficient norm A²+B²+C²+D².
func (u SU2) norm2() float64 {
	return u.A*u.A + u.B*u.B + u.C*u.C + u.D*u.D
}

// SU2Group is the Group capability for SU(2). Construct with NewSU2.
type SU2Group struct {
	tol float64
	nb  numeric.Backend
}

// NewSU2 returns the SU(2) capability at the given precision tier. A nil
// backend selects the standard math backend.
func NewSU2(prec Precision, nb numeric.Backend) SU2Group {
	return SU2Group{tol: prec.Tolerance(), nb: numeric.OrStd(nb)}
}

// Name returns "SU2".
func (SU2Group) Name() string { return "SU2" }

// Dim returns 2.
func (SU2Group) Dim() int { return 2 }

// Identity returns 𝟙.
func (SU2Group) Identity() SU2 { return SU2{A: 1} }

// Haar draws a uniform point on S³ (four normalized gaussians) — the Haar
// measure of SU(2) in the quaternion parametrization.
//
// Complexity: O(1) expected (rejection of near-zero vectors is astronomically rare).
func (g SU2Group) Haar(rng *rand.Rand) SU2 {
	for {
		u := SU2{
			A: rng.NormFloat64(),
			B: rng.NormFloat64(),
			C: rng.NormFloat64(),
			D: rng.NormFloat64(),
		}
		n := g.nb.Sqrt(u.norm2())
		if n > 1e-12 {
			return SU2{A: u.A / n, B: u.B / n, C: u.C / n, D: u.D / n}
		}
	}
}

// Small draws exp(iθ n̂·σ) with θ uniform in [0, spread] and n̂ uniform on S².
// Symmetric under inversion (θ → −θ has the same law after axis flip).
//
// Complexity: O(1) expected.
func (g SU2Group) Small(rng *rand.Rand, spread float64) SU2 {
	var nx, ny, nz, n float64
	for {
		nx, ny, nz = rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		n = g.nb.Sqrt(nx*nx + ny*ny + nz*nz)
		if n > 1e-12 {
			break
		}
	}
	theta := spread * rng.Float64()
	s := g.nb.Sin(theta) / n

	return SU2{A: g.nb.Cos(theta), B: s * nx, C: s * ny, D: s * nz}
}

// Deviation returns | ‖u‖ − 1 | in the coefficient norm, which equals the
// operator-level unitarity defect for this parametrization.
func (g SU2Group) Deviation(e SU2) float64 {
	return math.Abs(g.nb.Sqrt(e.norm2()) - 1)
}

// Reproject normalizes the coefficient vector. Idempotent, and strictly
// contracts the deviation of any off-manifold input.
//
// Errors: ErrManifold when the norm is zero or non-finite.
func (g SU2Group) Reproject(e SU2) (SU2, error) {
	n := g.nb.Sqrt(e.norm2())
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return SU2{}, ErrManifold
	}

	out := SU2{A: e.A / n, B: e.B / n, C: e.C / n, D: e.D / n}
	if g.Deviation(out) > g.tol {
		return SU2{}, ErrManifold
	}

	return out, nil
}

// Add returns the componentwise sum (ambient algebra).
func (SU2Group) Add(a, b SU2) SU2 {
	return SU2{A: a.A + b.A, B: a.B + b.B, C: a.C + b.C, D: a.D + b.D}
}

// Scale returns s·a (ambient algebra).
func (SU2Group) Scale(s float64, a SU2) SU2 {
	return SU2{A: s * a.A, B: s * a.B, C: s * a.C, D: s * a.D}
}

// Project returns the traceless anti-hermitian part i(v·σ): the scalar
// component is dropped, the vector part kept.
func (SU2Group) Project(a SU2) SU2 { return SU2{B: a.B, C: a.C, D: a.D} }

// Exp returns e^a. For a pure algebra element (A=0, vector v):
//
//	exp(i v·σ) = cos‖v‖·𝟙 + i sin‖v‖ · v̂·σ
//
// exactly on the manifold. A scalar component contributes a factor e^A.
func (g SU2Group) Exp(a SU2) SU2 {
	scale := g.nb.Exp(a.A)
	n := g.nb.Sqrt(a.B*a.B + a.C*a.C + a.D*a.D)
	if n == 0 {
		return SU2{A: scale}
	}
	s := scale * g.nb.Sin(n) / n

	return SU2{A: scale * g.nb.Cos(n), B: s * a.B, C: s * a.C, D: s * a.D}
}
