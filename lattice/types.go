// SPDX-License-Identifier: MIT

// Package lattice core types and sentinel errors.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrDims indicates a construction call with zero dimensions or with
	// extents and periodicity slices of different lengths.
	ErrDims = errors.New("lattice: extents and periodic flags must be non-empty and of equal length")

	// ErrExtent indicates a per-dimension extent smaller than 1.
	ErrExtent = errors.New("lattice: every extent must be at least 1")

	// ErrCell indicates a coordinate of wrong rank or outside [0, extent).
	ErrCell = errors.New("lattice: cell outside lattice bounds")

	// ErrDirection indicates a direction index outside [0, D).
	ErrDirection = errors.New("lattice: direction index out of range")

	// ErrBoundary indicates a neighbor or edge lookup crossing a
	// non-periodic boundary.
	ErrBoundary = errors.New("lattice: lookup crosses a non-periodic boundary")

	// ErrPlane indicates a plaquette request with identical plane directions.
	ErrPlane = errors.New("lattice: plaquette plane requires two distinct directions")
)

// Cell is a D-dimensional integer coordinate. Coordinates are always kept
// canonical: component d lies in [0, extent(d)).
type Cell []int

// Clone returns an independent copy of c.
//
// Complexity: O(D).
func (c Cell) Clone() Cell {
	out := make(Cell, len(c))
	copy(out, c)

	return out
}

// Equal reports whether c and o have identical rank and components.
//
// Complexity: O(D).
func (c Cell) Equal(o Cell) bool {
	if len(c) != len(o) {
		return false
	}
	for d := range c {
		if c[d] != o[d] {
			return false
		}
	}

	return true
}

// Edge identifies one oriented link slot: the link leaving From along
// direction Dir (toward From + Dir̂).
type Edge struct {
	From Cell
	Dir  int
}

// Step is one oriented traversal of a link during a closed-loop walk.
// Fwd=true multiplies the link value itself; Fwd=false multiplies its adjoint
// (the link is traversed against its orientation).
type Step struct {
	From Cell
	Dir  int
	Fwd  bool
}
