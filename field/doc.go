// Package field defines the lattice gauge field aggregate: one group element
// per oriented edge, the coupling β, and a generic source slot.
//
// What:
//
//   - Field[E, S] owns a shared *lattice.Lattice, a dense link store (one
//     entry per oriented edge slot), the coupling constant β, and a source
//     value of arbitrary type S.
//   - Vacuum is the zero-size default source: a field with no matter attached
//     costs nothing for the empty slot.
//   - WithSource rebuilds a field around a new source type without touching
//     lattice or links — the type-changing half of the source lifecycle;
//     ReplaceSource swaps values of the same type and returns the old one.
//   - CoupledSource is the capability a source implements to take part in
//     Monte Carlo sweeps (in-place coupled evolution).
//
// Why:
//
//   - Matter fields, empirical observations, or phase-space data ride along
//     with the gauge configuration in checkpoints and replays, yet the
//     vacuum path must stay free of any indirection or storage cost.
//   - The dense slot layout (cell-major, direction-minor) keeps link lookup
//     O(1) and allocation-free during sweeps.
//
// Construction invariant:
//
//   - Every oriented edge implied by the lattice has exactly one link entry
//     after construction. A failed lookup afterwards indicates corruption,
//     surfaced as ErrMissingLink — never a user error.
//
// Concurrency:
//
//   - A Field has single-writer discipline: the Monte Carlo updater owns the
//     link store for the duration of a sweep. Readers either wait for sweep
//     boundaries or operate on a Clone.
//
// Errors:
//
//   - ErrNilLattice, ErrBeta: invalid construction parameters.
//   - ErrMissingLink: link store corrupt (should never occur).
//   - lattice.ErrBoundary / lattice.ErrCell / lattice.ErrDirection pass
//     through from edge addressing.
package field
