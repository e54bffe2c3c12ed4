package group_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgauge/group"
)

const testSeed = 42

//----------------------------------------------------------------------------//
// Shared manifold properties, exercised per group through Go generics
//----------------------------------------------------------------------------//

// checkManifold runs the reprojection contract for one group: Haar samples
// lie on the manifold, reprojection is idempotent, and reprojecting a drifted
// element never increases the deviation metric.
func checkManifold[E group.Element[E]](t *testing.T, g group.Group[E]) {
	t.Helper()
	rng := rand.New(rand.NewSource(testSeed))
	tol := group.Double.Tolerance()

	for i := 0; i < 50; i++ {
		u := g.Haar(rng)
		require.LessOrEqual(t, g.Deviation(u), tol, "Haar sample off manifold")

		// Idempotence on a clean element.
		r1, err := g.Reproject(u)
		require.NoError(t, err)
		r2, err := g.Reproject(r1)
		require.NoError(t, err)
		require.InDelta(t, 0, g.Deviation(r2), tol)

		// Drift the element by repeated multiplication, then reproject:
		// deviation must not increase.
		drifted := u
		for k := 0; k < 200; k++ {
			drifted = drifted.Mul(g.Haar(rng))
		}
		before := g.Deviation(drifted)
		fixed, err := g.Reproject(drifted)
		require.NoError(t, err)
		require.LessOrEqual(t, g.Deviation(fixed), before, "reprojection increased deviation")
	}
}

// checkAlgebra runs the ambient-algebra contract: Project lands in the
// tangent space (anti-hermitian ⇒ real trace of products stays consistent)
// and Exp of a projected element lands on the manifold.
func checkAlgebra[E group.Element[E]](t *testing.T, g group.Group[E]) {
	t.Helper()
	rng := rand.New(rand.NewSource(testSeed + 1))
	tol := 1e-10

	for i := 0; i < 20; i++ {
		a := g.Haar(rng)
		b := g.Haar(rng)
		x := g.Project(g.Add(a, g.Scale(-1, b)))

		// Anti-hermitian elements have a purely imaginary trace; for the
		// special-unitary algebras it vanishes entirely.
		require.InDelta(t, 0, real(x.Trace()), tol, "projection trace has a real part")

		// Its exponential is a manifold element.
		require.InDelta(t, 0, g.Deviation(g.Exp(x)), 1e-9, "Exp left the manifold")
	}
}

// checkUnitarity: u·u† must be the identity for Haar samples.
func checkUnitarity[E group.Element[E]](t *testing.T, g group.Group[E]) {
	t.Helper()
	rng := rand.New(rand.NewSource(testSeed + 2))
	for i := 0; i < 20; i++ {
		u := g.Haar(rng)
		p := u.Mul(u.Adjoint())
		require.InDelta(t, float64(g.Dim()), real(p.Trace()), 1e-10)
		require.InDelta(t, 0, imag(p.Trace()), 1e-10)
	}
}

// checkSmall: near-identity proposals stay on the manifold and concentrate
// near the identity as spread shrinks.
func checkSmall[E group.Element[E]](t *testing.T, g group.Group[E]) {
	t.Helper()
	rng := rand.New(rand.NewSource(testSeed + 3))
	dim := float64(g.Dim())
	for _, spread := range []float64{0.01, 0.1, 0.5} {
		for i := 0; i < 20; i++ {
			r := g.Small(rng, spread)
			require.InDelta(t, 0, g.Deviation(r), 1e-9, "Small proposal off manifold")
			// Re tr(r)/dim ≥ cos(k·spread) for a bounded generator scale k.
			require.Greater(t, group.ReTrace(r)/dim, 1-8*spread*spread, "proposal not near identity")
		}
	}
}

func TestU1_Manifold(t *testing.T)  { checkManifold(t, group.NewU1(group.Double, nil)) }
func TestSU2_Manifold(t *testing.T) { checkManifold(t, group.NewSU2(group.Double, nil)) }
func TestSU3_Manifold(t *testing.T) { checkManifold(t, group.NewSU3(group.Double, nil)) }

func TestU1_Algebra(t *testing.T)  { checkAlgebra(t, group.NewU1(group.Double, nil)) }
func TestSU2_Algebra(t *testing.T) { checkAlgebra(t, group.NewSU2(group.Double, nil)) }
func TestSU3_Algebra(t *testing.T) { checkAlgebra(t, group.NewSU3(group.Double, nil)) }

func TestU1_Unitarity(t *testing.T)  { checkUnitarity(t, group.NewU1(group.Double, nil)) }
func TestSU2_Unitarity(t *testing.T) { checkUnitarity(t, group.NewSU2(group.Double, nil)) }
func TestSU3_Unitarity(t *testing.T) { checkUnitarity(t, group.NewSU3(group.Double, nil)) }

func TestU1_Small(t *testing.T)  { checkSmall(t, group.NewU1(group.Double, nil)) }
func TestSU2_Small(t *testing.T) { checkSmall(t, group.NewSU2(group.Double, nil)) }
func TestSU3_Small(t *testing.T) { checkSmall(t, group.NewSU3(group.Double, nil)) }

//----------------------------------------------------------------------------//
// Group-specific checks
//----------------------------------------------------------------------------//

// TestIdentityTraces pins tr(𝟙) = dim for each representation.
func TestIdentityTraces(t *testing.T) {
	require.Equal(t, complex128(1), group.NewU1(group.Double, nil).Identity().Trace())
	require.Equal(t, complex128(2), group.NewSU2(group.Double, nil).Identity().Trace())
	require.Equal(t, complex128(3), group.NewSU3(group.Double, nil).Identity().Trace())
}

// TestReproject_Breakdown: the zero element has no nearest manifold point.
func TestReproject_Breakdown(t *testing.T) {
	_, err := group.NewU1(group.Double, nil).Reproject(group.U1(0))
	require.ErrorIs(t, err, group.ErrManifold)

	_, err = group.NewSU2(group.Double, nil).Reproject(group.SU2{})
	require.ErrorIs(t, err, group.ErrManifold)

	_, err = group.NewSU3(group.Double, nil).Reproject(group.SU3{})
	require.ErrorIs(t, err, group.ErrManifold)
}

// TestSU2_MulMatchesMatrixForm cross-checks the quaternion product against
// the explicit 2×2 matrix convention U = [[A+iD, C+iB], [-C+iB, A-iD]].
func TestSU2_MulMatchesMatrixForm(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	g := group.NewSU2(group.Double, nil)

	toMatrix := func(u group.SU2) [2][2]complex128 {
		return [2][2]complex128{
			{complex(u.A, u.D), complex(u.C, u.B)},
			{complex(-u.C, u.B), complex(u.A, -u.D)},
		}
	}
	for i := 0; i < 20; i++ {
		u, o := g.Haar(rng), g.Haar(rng)
		um, om := toMatrix(u), toMatrix(o)
		var want [2][2]complex128
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				want[r][c] = um[r][0]*om[0][c] + um[r][1]*om[1][c]
			}
		}
		got := toMatrix(u.Mul(o))
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				require.InDelta(t, real(want[r][c]), real(got[r][c]), 1e-12)
				require.InDelta(t, imag(want[r][c]), imag(got[r][c]), 1e-12)
			}
		}
	}
}

// TestSU3_ExpInverse: Exp(x)·Exp(−x) = 𝟙 for algebra elements.
func TestSU3_ExpInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	g := group.NewSU3(group.Double, nil)
	for i := 0; i < 10; i++ {
		x := g.Project(g.Haar(rng))
		p := g.Exp(x).Mul(g.Exp(g.Scale(-1, x)))
		require.InDelta(t, 3, real(p.Trace()), 1e-10)
	}
}

// TestHaar_Deterministic: the same seed reproduces the same sample stream.
func TestHaar_Deterministic(t *testing.T) {
	g := group.NewSU3(group.Double, nil)
	a := g.Haar(rand.New(rand.NewSource(7)))
	b := g.Haar(rand.New(rand.NewSource(7)))
	require.Equal(t, a, b)
}
