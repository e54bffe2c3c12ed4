// Package gradflow integrates the gradient flow of the Wilson action and
// extracts the t₀ reference scale.
//
// What:
//
//	The flow drives every link along the steepest descent of the action:
//
//	    dU_μ(x)/dt = Z_μ(x) · U_μ(x),    Z = -Project(U · Ω)
//
//	with Ω the staple sum of the link. Integration uses the standard
//	three-stage Runge-Kutta scheme on the group manifold - each stage
//	exponentiates an algebra-valued combination of force evaluations, so
//	links never leave the group up to floating-point roundoff.
//
// Why:
//
//	Flowed fields are smooth: the flow damps ultraviolet noise at scale
//	√(8t), which turns the bare energy density E(t) into a renormalized
//	observable. The dimensionless crossing t²·E(t) = 0.3 defines the t₀
//	scale used to calibrate lattice spacings between runs.
//
// A Flow operates on a private clone of the input field; the Monte Carlo
// configuration it came from is never modified.
//
// Errors:
//
//	ErrNilField  - nil input field.
//	ErrStepSize  - non-positive or non-finite step size.
//	ErrMaxTime   - flow horizon not beyond one step.
//	ErrSample    - non-positive sampling stride.
//	ErrNoBracket - t²E(t) never reached the reference value on the horizon.
//
// Complexity: one step costs three force sweeps, i.e. O(V · d²) group
// multiplications plus one exponential per link per stage.
package gradflow
