// Package mc evolves a lattice gauge field by Metropolis Monte Carlo:
// thermalization sweeps followed by measurement sweeps, embarrassingly
// parallel within each parity pass.
//
// What:
//
//   - Updater owns a field for the duration of a run and mutates links in
//     place. One sweep proposes a new value for every link exactly once.
//   - Sweep schedule: for each direction μ, the even-parity pass runs to
//     completion, a barrier, then the odd pass. On bipartite lattices no two
//     links updated in one pass share a plaquette, so link updates run on
//     parallel workers with no per-link locking. When an odd periodic extent
//     breaks the coloring (lattice.Bipartite reports false), passes run on a
//     single worker instead.
//   - Proposal kernel: a near-identity group element r with configurable
//     angular spread; the candidate is r·U. The kernel is symmetric under
//     inversion, so plain Metropolis acceptance min(1, exp(−ΔS)) is exact.
//   - ΔS is computed from the O(1) set of staples incident to the link —
//     never from the full configuration. At β = 0 every proposal is accepted
//     unconditionally (pure random walk).
//   - Non-finite action deltas or acceptance weights are recovery events:
//     the proposal is skipped, the sweep continues, and the event is counted
//     in RunStats.
//   - Every ReprojectEvery sweeps all links are pulled back onto the group
//     manifold; unrecoverable links reset to identity and are counted.
//   - Sources implementing field.CoupledSource are evolved once per sweep
//     with their own deterministic stream.
//
// Why:
//
//   - The parity partition keeps updates local and parallel while preserving
//     detailed balance per pass; a full barrier separates the passes.
//   - Deterministic seeding (SplitMix64-derived per-worker streams) makes
//     runs reproducible for a fixed seed and worker count.
//
// Measurement:
//
//   - Run measures the average plaquette every MeasurementInterval sweeps
//     after thermalization and reports mean, standard error, and lag-1
//     autocorrelation of the series (gonum/stat), plus a suggested
//     comparison tolerance of 3 standard errors.
//
// Errors:
//
//   - ErrNilField, ErrTherm, ErrInterval, ErrSpread, ErrMeasurements:
//     invalid construction / run parameters.
//   - Non-finite action deltas or acceptance weights are not errors: the
//     proposal is skipped and the event surfaces only as the
//     RunStats.Instabilities counter.
//   - Source Evolve errors abort the sweep and are returned to the caller.
//
// Complexity: one sweep is O(V·D²) group operations; measurement adds
// O(V·D²) per sample.
package mc
