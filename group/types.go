// SPDX-License-Identifier: MIT

// Package group sentinel errors, precision tiers, and the generic contracts.
package group

import (
	"errors"
	"math/rand"
)

// Sentinel errors for group operations.
// ErrManifold indicates reprojection could not bring an element within
// the configured manifold tolerance (numerical breakdown).
var ErrManifold = errors.New("group: element cannot be reprojected onto the group manifold")

// Precision selects the floating tolerance tier for manifold checks.
// Core arithmetic is float64 regardless; the tier controls how much drift
// Reproject tolerates and which working precision validation harnesses use.
type Precision int

const (
	// Single tolerates drift at single-precision scale (~1e-6).
	Single Precision = iota
	// Double tolerates drift at double-precision scale (~1e-12). Default.
	Double
	// Extended is the strictest tier (~1e-14), for high-precision validation.
	Extended
)

// Tolerance returns the manifold deviation tolerance of the tier.
func (p Precision) Tolerance() float64 {
	switch p {
	case Single:
		return 1e-6
	case Extended:
		return 1e-14
	default:
		return 1e-12
	}
}

// Element is the self-referential constraint satisfied by every link value
// type. Adjoint is the conjugate transpose, which equals the inverse for any
// element on the group manifold.
type Element[E any] interface {
	// Mul returns the ordered product (receiver on the left).
	Mul(o E) E
	// Adjoint returns the conjugate transpose.
	Adjoint() E
	// Trace returns the representation trace.
	Trace() complex128
}

// Group is the capability value for one gauge group over element type E.
// Implementations are small stateless structs; a Group is safe for concurrent
// use (the *rand.Rand arguments are the only mutable state, owned by callers).
type Group[E Element[E]] interface {
	// Name returns a short group label ("U1", "SU2", "SU3").
	Name() string
	// Dim returns the representation dimension (1, 2, 3).
	Dim() int
	// Identity returns the group identity.
	Identity() E
	// Haar draws a Haar-distributed element (hot-start configurations).
	Haar(rng *rand.Rand) E
	// Small draws a near-identity element with the given angular spread,
	// symmetric under inversion (valid Metropolis proposal factor).
	Small(rng *rand.Rand, spread float64) E
	// Reproject returns the nearest manifold element. Idempotent; never
	// increases Deviation. Fails with ErrManifold on numerical breakdown.
	Reproject(e E) (E, error)
	// Deviation measures distance from the group manifold (0 on it).
	Deviation(e E) float64

	// Ambient-algebra operations, used by the gradient-flow integrator.
	// Their arguments and results need not lie on the group manifold.

	// Add returns the matrix sum a+b.
	Add(a, b E) E
	// Scale returns s·a.
	Scale(s float64, a E) E
	// Project returns the traceless anti-hermitian part of a (the tangent
	// space at the identity).
	Project(a E) E
	// Exp returns the exponential of an algebra element, a manifold element
	// when the argument is traceless anti-hermitian.
	Exp(a E) E
}

// ReTrace returns the real part of the trace of e — the quantity every
// Wilson-type observable and action term reduces to.
func ReTrace[E Element[E]](e E) float64 { return real(e.Trace()) }
