// SPDX-License-Identifier: MIT

package group

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlgauge/numeric"
)

// SU3 is an SU(3) link value: a 3×3 complex matrix, unitary with unit
// determinant on the manifold. General matrices are admitted off-manifold as
// ambient-algebra values for the gradient flow.
type SU3 [3][3]complex128

// Mul returns the matrix product u·o.
//
// Complexity: O(1), 27 complex multiplies.
func (u SU3) Mul(o SU3) SU3 {
	var out SU3
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			var sum complex128
			for k = 0; k < 3; k++ {
				sum += u[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// Adjoint returns the conjugate transpose.
func (u SU3) Adjoint() SU3 {
	var out SU3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[i][j] = conj(u[j][i])
		}
	}

	return out
}

// Trace returns the sum of diagonal entries.
func (u SU3) Trace() complex128 { return u[0][0] + u[1][1] + u[2][2] }

// det returns the 3×3 determinant by cofactor expansion.
func (u SU3) det() complex128 {
	return u[0][0]*(u[1][1]*u[2][2]-u[1][2]*u[2][1]) -
		u[0][1]*(u[1][0]*u[2][2]-u[1][2]*u[2][0]) +
		u[0][2]*(u[1][0]*u[2][1]-u[1][1]*u[2][0])
}

func conj(z complex128) complex128 { return complex(real(z), -imag(z)) }

// SU3Group is the Group capability for SU(3). Construct with NewSU3.
type SU3Group struct {
	tol float64
	nb  numeric.Backend
}

// NewSU3 returns the SU(3) capability at the given precision tier. A nil
// backend selects the standard math backend.
func NewSU3(prec Precision, nb numeric.Backend) SU3Group {
	return SU3Group{tol: prec.Tolerance(), nb: numeric.OrStd(nb)}
}

// Name returns "SU3".
func (SU3Group) Name() string { return "SU3" }

// Dim returns 3.
func (SU3Group) Dim() int { return 3 }

// Identity returns 𝟙.
func (SU3Group) Identity() SU3 {
	return SU3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// cabs is |z| through the injected sqrt.
func (g SU3Group) cabs(z complex128) float64 {
	return g.nb.Sqrt(real(z)*real(z) + imag(z)*imag(z))
}

// Haar draws an approximately Haar-distributed SU(3) element: two rows of
// independent complex gaussians are orthonormalized and the third row is the
// conjugate cross product, which lands exactly on det=1.
//
// Complexity: O(1) expected.
func (g SU3Group) Haar(rng *rand.Rand) SU3 {
	for {
		var m SU3
		var i, j int
		for i = 0; i < 2; i++ {
			for j = 0; j < 3; j++ {
				m[i][j] = complex(rng.NormFloat64(), rng.NormFloat64())
			}
		}
		out, err := g.unitarize(m)
		if err == nil {
			return out
		}
		// Degenerate gaussian draw; redraw.
	}
}

// Small draws exp(X) with X a random traceless anti-hermitian matrix whose
// entries are gaussian at scale spread. X and −X are equally likely, so the
// proposal is symmetric under inversion.
//
// Complexity: O(1).
func (g SU3Group) Small(rng *rand.Rand, spread float64) SU3 {
	// Random hermitian traceless H, then X = i·spread·H.
	var h [3][3]complex128
	var i, j int
	for i = 0; i < 3; i++ {
		h[i][i] = complex(rng.NormFloat64(), 0)
	}
	tr := (h[0][0] + h[1][1] + h[2][2]) / 3
	for i = 0; i < 3; i++ {
		h[i][i] -= tr
	}
	for i = 0; i < 3; i++ {
		for j = i + 1; j < 3; j++ {
			h[i][j] = complex(rng.NormFloat64(), rng.NormFloat64())
			h[j][i] = conj(h[i][j])
		}
	}

	var x SU3
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			x[i][j] = complex(0, spread) * h[i][j]
		}
	}

	return g.Exp(x)
}

// Deviation returns ‖U†U − 𝟙‖_F + |det U − 1|: zero exactly on the manifold.
func (g SU3Group) Deviation(e SU3) float64 {
	p := e.Adjoint().Mul(e)
	var i, j int
	var sum float64
	for i = 0; i < 3; i++ {
		p[i][i] -= 1
		for j = 0; j < 3; j++ {
			sum += real(p[i][j])*real(p[i][j]) + imag(p[i][j])*imag(p[i][j])
		}
	}
	d := e.det() - 1

	return g.nb.Sqrt(sum) + g.cabs(d)
}

// Reproject reunitarizes by row Gram–Schmidt with the third row rebuilt as
// the conjugate cross product of the first two, restoring det=1 exactly.
// Idempotent: orthonormal rows pass through the projection unchanged up to
// one normalization by a unit norm.
//
// Errors: ErrManifold when rows are linearly dependent or entries non-finite.
func (g SU3Group) Reproject(e SU3) (SU3, error) {
	out, err := g.unitarize(e)
	if err != nil {
		return SU3{}, err
	}
	if g.Deviation(out) > g.tol {
		return SU3{}, ErrManifold
	}

	return out, nil
}

// unitarize performs the row Gram–Schmidt + cross-product completion.
func (g SU3Group) unitarize(e SU3) (SU3, error) {
	var out SU3

	// Row 0: normalize.
	n0 := g.rowNorm(e, 0)
	if !finitePositive(n0) {
		return SU3{}, ErrManifold
	}
	var j int
	for j = 0; j < 3; j++ {
		out[0][j] = e[0][j] / complex(n0, 0)
	}

	// Row 1: remove the row-0 component, normalize.
	var dot complex128
	for j = 0; j < 3; j++ {
		dot += conj(out[0][j]) * e[1][j]
	}
	for j = 0; j < 3; j++ {
		out[1][j] = e[1][j] - dot*out[0][j]
	}
	n1 := g.rowNorm(out, 1)
	if !finitePositive(n1) {
		return SU3{}, ErrManifold
	}
	for j = 0; j < 3; j++ {
		out[1][j] /= complex(n1, 0)
	}

	// Row 2: conjugate cross product of rows 0 and 1 ⇒ det(out) = 1.
	out[2][0] = conj(out[0][1]*out[1][2] - out[0][2]*out[1][1])
	out[2][1] = conj(out[0][2]*out[1][0] - out[0][0]*out[1][2])
	out[2][2] = conj(out[0][0]*out[1][1] - out[0][1]*out[1][0])

	return out, nil
}

// rowNorm is the Euclidean norm of row i.
func (g SU3Group) rowNorm(m SU3, i int) float64 {
	var sum float64
	var j int
	for j = 0; j < 3; j++ {
		sum += real(m[i][j])*real(m[i][j]) + imag(m[i][j])*imag(m[i][j])
	}

	return g.nb.Sqrt(sum)
}

func finitePositive(x float64) bool {
	return x > 1e-300 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Add returns the entrywise sum (ambient algebra).
func (SU3Group) Add(a, b SU3) SU3 {
	var out SU3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[i][j] = a[i][j] + b[i][j]
		}
	}

	return out
}

// Scale returns s·a (ambient algebra).
func (SU3Group) Scale(s float64, a SU3) SU3 {
	var out SU3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[i][j] = complex(s, 0) * a[i][j]
		}
	}

	return out
}

// Project returns the traceless anti-hermitian part:
// (a − a†)/2 − tr(a − a†)/6 · 𝟙.
func (g SU3Group) Project(a SU3) SU3 {
	adj := a.Adjoint()
	var x SU3
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			x[i][j] = (a[i][j] - adj[i][j]) / 2
		}
	}
	tr := x.Trace() / 3
	for i = 0; i < 3; i++ {
		x[i][i] -= tr
	}

	return x
}

// expTaylorTerms bounds the truncation error below 1e-16 for ‖X‖ ≤ 1/2.
const expTaylorTerms = 14

// Exp returns e^a by scaling-and-squaring with a truncated Taylor series.
// For traceless anti-hermitian input the result is unitary with unit
// determinant to machine precision; the flow integrator relies on that.
//
// Complexity: O(1) (≤ expTaylorTerms matrix products plus squarings).
func (g SU3Group) Exp(a SU3) SU3 {
	// Scale down until the max-row-sum norm is ≤ 1/2.
	var norm float64
	var i, j, squarings int
	for i = 0; i < 3; i++ {
		var row float64
		for j = 0; j < 3; j++ {
			row += g.cabs(a[i][j])
		}
		norm = math.Max(norm, row)
	}
	for norm > 0.5 && squarings < 40 {
		a = g.Scale(0.5, a)
		norm /= 2
		squarings++
	}

	// Taylor: Σ aᵏ/k!.
	out := g.Identity()
	term := g.Identity()
	var k int
	for k = 1; k <= expTaylorTerms; k++ {
		term = g.Scale(1/float64(k), term.Mul(a))
		out = g.Add(out, term)
	}

	// Undo the scaling.
	for i = 0; i < squarings; i++ {
		out = out.Mul(out)
	}

	return out
}
