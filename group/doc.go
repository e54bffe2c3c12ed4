// Package group provides the gauge-group capability lvlgauge is polymorphic
// over: U(1), SU(2) and SU(3) link-value algebra behind one generic contract.
//
// What:
//
//   - Element[E] is the self-referential constraint every link value type
//     satisfies: multiply, adjoint (= inverse on the group manifold), trace.
//   - Group[E] is the capability value carrying everything that needs no
//     element receiver: identity, Haar-distributed sampling, near-identity
//     proposal sampling, reprojection onto the manifold, deviation metric,
//     and the ambient-algebra operations (Add, Scale, Project, Exp) the
//     gradient-flow integrator needs.
//   - Implementations: U1 (unit-modulus complex scalar), SU2 (quaternion
//     parametrization of 2×2 unitaries), SU3 (3×3 complex matrices).
//
// Why:
//
//   - The group is fixed per simulation run, so the hot path is compiled per
//     concrete element type (static generic dispatch) — no interface calls on
//     per-link arithmetic, only fixed-size value types on the stack.
//   - Floating accumulation drifts link values off the manifold; Reproject
//     restores unitarity (and unit determinant for SU(3)). It is idempotent
//     and never increases the deviation metric.
//
// Precision:
//
//   - Arithmetic is float64 throughout. The Precision enum selects the
//     manifold tolerance tier (Single/Double/Extended) used by Reproject and
//     by validation harnesses; Extended additionally widens the exact-oracle
//     working precision in package exact.
//
// Errors:
//
//   - ErrManifold: reprojection cannot bring an element within tolerance
//     (non-finite entries, zero norm). The caller resets the link to identity.
//     Proposal-spread validation lives with the consumer (package mc), since
//     Small is a sampling primitive, not an entry point.
//
// Complexity: all operations are O(1) with constants growing with the
// representation dimension (1, 4, 9 components).
package group
