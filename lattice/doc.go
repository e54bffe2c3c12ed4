// Package lattice models a D-dimensional hypercubic grid with per-dimension
// periodicity, the discrete spacetime every gauge field in lvlgauge lives on.
//
// What:
//
//   - Lattice owns extents and periodicity flags for each of D dimensions and
//     is immutable after construction; fields and integrators share it by
//     pointer with no synchronization (read-only topology).
//   - Cell is an integer coordinate; Edge is a cell plus a direction index,
//     identifying one oriented link slot.
//   - Neighbor lookup wraps modulo the extent on periodic dimensions and fails
//     with ErrBoundary on open ones — explicit modular arithmetic, never
//     native integer wraparound.
//   - PlaquetteCorners enumerates the four oriented edges of the unit square
//     in a fixed orientation (+μ, +ν, −μ, −ν), the convention every observable
//     and updater in lvlgauge relies on.
//
// Why:
//
//   - Gauge observables are ordered products over closed paths; a single,
//     deterministic corner enumeration makes loop values reproducible and lets
//     the Monte Carlo updater partition links by site parity.
//   - Stride-based cell indexing gives fields a dense O(1) link store.
//
// Complexity:
//
//   - Neighbor / EdgeSlot / Parity: O(D).
//   - Cells / Edges iteration: O(V) and O(V·D) total, O(D) memory.
//
// Errors:
//
//   - ErrDims: no dimensions, or extents/periodic length mismatch.
//   - ErrExtent: an extent is smaller than 1.
//   - ErrCell: a coordinate lies outside [0, extent) or has wrong rank.
//   - ErrDirection: a direction index is outside [0, D).
//   - ErrBoundary: a neighbor or edge crosses a non-periodic boundary.
//   - ErrPlane: a plaquette plane was requested with μ == ν.
package lattice
