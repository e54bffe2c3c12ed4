// SPDX-License-Identifier: MIT

// Package field source lifecycle: read, exclusive mutation, atomic value
// swap, and the type-changing rebuild. None of these touch lattice topology
// or any link value.
package field

import "github.com/katalvlaran/lvlgauge/group"

// Source returns the current source value.
func (f *Field[E, S]) Source() S { return f.src }

// MutateSource grants exclusive mutable access to the source for in-place
// coupled evolution. The callback must not retain the pointer past its
// return.
func (f *Field[E, S]) MutateSource(fn func(*S)) { fn(&f.src) }

// ReplaceSource swaps in a new source value and returns the previous one —
// the checkpoint/rewind primitive: replace, run, replace back.
func (f *Field[E, S]) ReplaceSource(src S) (old S) {
	old = f.src
	f.src = src

	return old
}

// WithSource consumes f and rebuilds an otherwise-identical field carrying a
// source of a different type. The lattice pointer, group capability, β, and
// the link store are carried over as-is (no copy); the input field must not
// be used afterwards. All type parameters are inferred from the arguments.
//
// Complexity: O(1).
func WithSource[E group.Element[E], S, S2 any](f *Field[E, S], src S2) *Field[E, S2] {
	return &Field[E, S2]{lat: f.lat, g: f.g, beta: f.beta, links: f.links, src: src}
}
