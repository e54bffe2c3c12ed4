package exact

import (
	"errors"
	"math"
	"math/big"
)

var (
	// ErrBeta indicates a coupling outside [0, +∞).
	ErrBeta = errors.New("exact: coupling must be non-negative and finite")

	// ErrPrecision indicates a mantissa below float64 width.
	ErrPrecision = errors.New("exact: precision must be at least 53 bits")
)

// DefaultOracleBits is the mantissa width used by callers that just want
// "more precise than float64 by a wide margin".
const DefaultOracleBits = 256

// seriesGuardBits is the extra headroom below the target precision at which
// the power series is considered converged.
const seriesGuardBits = 8

// PlaquetteU1 evaluates I₁(β)/I₀(β) with bits-wide big.Float arithmetic and
// rounds the result to float64. Both Bessel functions are summed from their
// ascending power series
//
//	I₀(β) =        Σₖ qᵏ / (k!)²        I₁(β) = (β/2) · Σₖ qᵏ / (k!(k+1)!)
//
// with q = β²/4; the shared term recurrences make each step two short
// multiplications. Terms are added until they fall seriesGuardBits below the
// running sums at the requested precision.
func PlaquetteU1(beta float64, bits uint) (float64, error) {
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta < 0 {
		return 0, ErrBeta
	}
	if bits < 53 {
		return 0, ErrPrecision
	}
	if beta == 0 {
		return 0, nil
	}

	var (
		b    = new(big.Float).SetPrec(bits).SetFloat64(beta)
		q    = new(big.Float).SetPrec(bits).Mul(b, b) // β²/4 after the Quo below
		sum0 = big.NewFloat(1).SetPrec(bits)          // Σ qᵏ/(k!)²
		sum1 = big.NewFloat(1).SetPrec(bits)          // Σ qᵏ/(k!(k+1)!)
		t0   = big.NewFloat(1).SetPrec(bits)
		t1   = big.NewFloat(1).SetPrec(bits)
		kk   = new(big.Float).SetPrec(bits)
		tmp  = new(big.Float).SetPrec(bits)
	)
	q.Quo(q, big.NewFloat(4))

	for k := int64(1); ; k++ {
		// t0 ← t0·q/k², t1 ← t1·q/(k·(k+1)).
		kk.SetInt64(k * k)
		t0.Quo(tmp.Mul(t0, q), kk)
		kk.SetInt64(k * (k + 1))
		t1.Quo(tmp.Mul(t1, q), kk)

		sum0.Add(sum0, t0)
		sum1.Add(sum1, t1)

		if converged(t0, sum0, bits) && converged(t1, sum1, bits) {
			break
		}
	}

	// ratio = (β/2) · sum1/sum0.
	ratio := new(big.Float).SetPrec(bits).Quo(sum1, sum0)
	ratio.Mul(ratio, b)
	ratio.Quo(ratio, big.NewFloat(2))

	out, _ := ratio.Float64()

	return out, nil
}

// converged reports whether term has dropped seriesGuardBits below the last
// representable bit of sum. Exponent comparison only; no division.
func converged(term, sum *big.Float, bits uint) bool {
	if term.Sign() == 0 {
		return true
	}

	return term.MantExp(nil) < sum.MantExp(nil)-int(bits)-seriesGuardBits
}

// PlaquetteU1Fast is the float64 rendition of PlaquetteU1 for hot paths
// (per-measurement comparisons, plotting). Invalid couplings yield NaN
// rather than an error so the result can flow straight into a series.
func PlaquetteU1Fast(beta float64) float64 {
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta < 0 {
		return math.NaN()
	}
	if beta == 0 {
		return 0
	}

	var (
		q          = beta * beta / 4
		sum0, sum1 = 1.0, 1.0
		t0, t1     = 1.0, 1.0
	)
	for k := 1.0; ; k++ {
		t0 *= q / (k * k)
		t1 *= q / (k * (k + 1))
		sum0 += t0
		sum1 += t1
		if t0 < sum0*1e-17 && t1 < sum1*1e-17 {
			break
		}
	}

	return beta / 2 * sum1 / sum0
}
