// Package observable computes gauge-invariant observables from a field:
// plaquette, Wilson loop, Polyakov loop, Creutz ratio, and energy density.
//
// What:
//
//   - Every observable is a pure, read-only traversal of the link store —
//     ordered products of link values around closed paths, reduced through
//     the representation trace. Nothing is cached or stored on the field.
//   - Averages over the lattice use compensated (Kahan) summation so the
//     identity configuration reproduces exact reference values.
//
// Why:
//
//   - ⟨Re tr P / dim⟩ (average plaquette) is the basic action observable;
//     it equals exactly 1 on a cold-start field for any group and β.
//   - Wilson loops encode the static quark potential; Creutz ratios cancel
//     perimeter contributions and estimate the string tension.
//   - The Polyakov loop winds around the compact time direction and is the
//     deconfinement order parameter.
//
// Concurrency:
//
//   - Observables must not run concurrently with an in-progress sweep;
//     callers read between sweeps or hand a Clone to the observable engine
//     (snapshot-then-read discipline).
//
// Complexity:
//
//   - Plaquette: O(D). AveragePlaquette: O(V·D²). WilsonLoop: O(R+T).
//     PolyakovLoop: O(extent). Creutz ratio: four loop averages.
//
// Errors:
//
//   - ErrNilField: nil field argument.
//   - ErrLoopSize: Wilson/Creutz extents outside their valid range.
//   - ErrTimeDirection: Polyakov loop requested along an open or invalid
//     direction.
//   - ErrNoPlaquettes: the lattice admits no complete plaquette (degenerate
//     extents with open boundaries).
//   - ErrIllConditioned: a Creutz ratio over non-positive or non-finite loop
//     averages.
//   - field.ErrMissingLink passes through and indicates corrupted state.
package observable
