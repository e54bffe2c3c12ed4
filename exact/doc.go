// SPDX-License-Identifier: MIT

// Package exact provides closed-form reference values for configurations
// where the theory is analytically solvable.
//
// What:
//
//	In two dimensions with gauge group U(1) and Wilson action, the average
//	plaquette on a periodic lattice has the exact value
//
//	    ⟨P⟩ = I₁(β) / I₀(β)
//
//	where I₀ and I₁ are modified Bessel functions of the first kind. The
//	package evaluates this ratio two ways: an arbitrary-precision series
//	(PlaquetteU1, math/big) and a float64 fast path (PlaquetteU1Fast).
//
// Why:
//
//	A Monte Carlo implementation has no ground truth of its own - every
//	estimate carries statistical noise. The Bessel ratio is the one knob we
//	can turn to calibrate the whole pipeline: thermalize, measure, and the
//	mean must land on I₁(β)/I₀(β) within its own error bars.
//
// Errors:
//
//	ErrBeta      - coupling is negative, NaN, or infinite.
//	ErrPrecision - requested mantissa is too small to be meaningful.
//
// Complexity: the series needs O(β + bits) terms; each term is a constant
// number of big.Float operations at the requested precision.
package exact
