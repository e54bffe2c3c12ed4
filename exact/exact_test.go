package exact_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgauge/exact"
)

// besselRatioBeta1 is I₁(1)/I₀(1) to full float64 precision (verified
// against published Bessel tables).
const besselRatioBeta1 = 0.446292210679695

func TestPlaquetteU1_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		beta float64
		want float64
		tol  float64
	}{
		{name: "beta=0 strong coupling", beta: 0, want: 0, tol: 0},
		{name: "beta=1 reference point", beta: 1, want: besselRatioBeta1, tol: 1e-14},
		{name: "beta=10 weak coupling", beta: 10, want: 0.9485998, tol: 1e-7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := exact.PlaquetteU1(tc.beta, exact.DefaultOracleBits)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tc.tol)
		})
	}
}

func TestPlaquetteU1_Errors(t *testing.T) {
	_, err := exact.PlaquetteU1(-1, exact.DefaultOracleBits)
	require.ErrorIs(t, err, exact.ErrBeta)

	_, err = exact.PlaquetteU1(math.NaN(), exact.DefaultOracleBits)
	require.ErrorIs(t, err, exact.ErrBeta)

	_, err = exact.PlaquetteU1(math.Inf(1), exact.DefaultOracleBits)
	require.ErrorIs(t, err, exact.ErrBeta)

	_, err = exact.PlaquetteU1(1, 32)
	require.ErrorIs(t, err, exact.ErrPrecision)
}

func TestPlaquetteU1Fast_AgreesWithBigFloat(t *testing.T) {
	for _, beta := range []float64{0.1, 0.5, 1, 2, 5, 10} {
		want, err := exact.PlaquetteU1(beta, exact.DefaultOracleBits)
		require.NoError(t, err)
		require.InDelta(t, want, exact.PlaquetteU1Fast(beta), 1e-13, "beta=%v", beta)
	}
	require.True(t, math.IsNaN(exact.PlaquetteU1Fast(-1)))
}

// TestPlaquetteU1_Monotone: the ratio rises from 0 toward 1 with β — the
// physical crossover from strong to weak coupling.
func TestPlaquetteU1_Monotone(t *testing.T) {
	prev := 0.0
	for beta := 0.5; beta <= 8; beta += 0.5 {
		got, err := exact.PlaquetteU1(beta, exact.DefaultOracleBits)
		require.NoError(t, err)
		require.Greater(t, got, prev)
		require.Less(t, got, 1.0)
		prev = got
	}
}
