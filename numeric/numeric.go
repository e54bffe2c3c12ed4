// SPDX-License-Identifier: MIT

// Package numeric defines the transcendental-evaluation capability consumed
// by the simulation core.
//
// What:
//
//   - Backend is the uniform interface for exp, log, sqrt and trigonometric
//     evaluation. Every transcendental call made by the core goes through a
//     Backend value injected at construction time.
//   - Std is the default implementation backed by the Go standard math package
//     (hardware floating unit on all first-class ports).
//
// Why:
//
//   - The core must not depend on how transcendental functions are backed:
//     hardware FPU, software evaluation, or an instrumented backend used to
//     count calls in tests. Swapping the backend never changes core semantics,
//     only evaluation cost and ULP-level accuracy.
//
// Contract:
//
//   - Implementations must be pure, goroutine-safe, and must propagate IEEE-754
//     special values (NaN, ±Inf) instead of panicking; callers in the core
//     treat non-finite results as a recoverable numeric-instability signal.
package numeric

import "math"

// Backend evaluates the transcendental functions required by the core.
// Implementations must be stateless and safe for concurrent use.
type Backend interface {
	// Exp returns e**x.
	Exp(x float64) float64
	// Log returns the natural logarithm of x.
	Log(x float64) float64
	// Sqrt returns the square root of x.
	Sqrt(x float64) float64
	// Sin returns the sine of x (radians).
	Sin(x float64) float64
	// Cos returns the cosine of x (radians).
	Cos(x float64) float64
	// Atan2 returns the arc tangent of y/x, honoring quadrant signs.
	Atan2(y, x float64) float64
}

// Std is the default Backend, delegating to the standard math package.
// The zero value is ready to use.
type Std struct{}

// Exp returns e**x. Complexity: O(1).
func (Std) Exp(x float64) float64 { return math.Exp(x) }

// Log returns ln(x). Complexity: O(1).
func (Std) Log(x float64) float64 { return math.Log(x) }

// Sqrt returns √x. Complexity: O(1).
func (Std) Sqrt(x float64) float64 { return math.Sqrt(x) }

// Sin returns sin(x). Complexity: O(1).
func (Std) Sin(x float64) float64 { return math.Sin(x) }

// Cos returns cos(x). Complexity: O(1).
func (Std) Cos(x float64) float64 { return math.Cos(x) }

// Atan2 returns atan2(y, x). Complexity: O(1).
func (Std) Atan2(y, x float64) float64 { return math.Atan2(y, x) }

// OrStd returns nb when non-nil, otherwise the standard backend.
// Entry points use it to resolve an optional injected backend.
func OrStd(nb Backend) Backend {
	if nb == nil {
		return Std{}
	}

	return nb
}
