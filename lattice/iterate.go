// SPDX-License-Identifier: MIT

// Package lattice traversal: restartable cell/edge sequences and the fixed
// plaquette-corner enumeration.
package lattice

import "iter"

// Cells returns a lazy, restartable sequence over every cell in dense-index
// order. Each yielded Cell is a fresh slice the consumer may retain.
//
// Complexity: O(V·D) total, O(D) live memory.
func (l *Lattice) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		var i int
		for i = 0; i < l.volume; i++ {
			if !yield(l.CellAt(i)) {
				return
			}
		}
	}
}

// Edges returns a lazy, restartable sequence over every existing oriented
// edge, in (cell, direction) order. Edges that would cross an open boundary
// are skipped; on a fully periodic lattice exactly Volume·D edges are yielded.
//
// Complexity: O(V·D) total, O(D) live memory.
func (l *Lattice) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		var (
			i, dir int
			c      Cell
		)
		for i = 0; i < l.volume; i++ {
			c = l.CellAt(i)
			for dir = 0; dir < len(l.extents); dir++ {
				if !l.HasEdge(c, dir) {
					continue
				}
				if !yield(Edge{From: c, Dir: dir}) {
					return
				}
			}
		}
	}
}

// PlaquetteCorners returns the four oriented edges of the unit square based
// at c in the (mu, nu) plane, in the fixed orientation convention
//
//	+μ, +ν, −μ, −ν
//
// i.e. the loop U_μ(c) · U_ν(c+μ̂) · U_μ(c+ν̂)† · U_ν(c)†. Every loop
// observable and every local action term in lvlgauge traverses corners in
// exactly this order.
//
// Errors:
//   - ErrPlane if mu == nu.
//   - ErrCell / ErrDirection on malformed arguments.
//   - ErrBoundary if the square leaves the lattice on an open dimension.
//
// Complexity: O(D).
func (l *Lattice) PlaquetteCorners(c Cell, mu, nu int) ([4]Step, error) {
	var corners [4]Step
	if mu == nu {
		return corners, ErrPlane
	}

	cMu, err := l.Neighbor(c, mu, +1)
	if err != nil {
		return corners, err
	}
	cNu, err := l.Neighbor(c, nu, +1)
	if err != nil {
		return corners, err
	}
	// The far corner c+μ̂+ν̂ must also exist, or edges (c+μ̂,ν) and (c+ν̂,μ)
	// would cross an open boundary.
	if _, err = l.Neighbor(cMu, nu, +1); err != nil {
		return corners, err
	}

	corners[0] = Step{From: c.Clone(), Dir: mu, Fwd: true}
	corners[1] = Step{From: cMu, Dir: nu, Fwd: true}
	corners[2] = Step{From: cNu, Dir: mu, Fwd: false}
	corners[3] = Step{From: c.Clone(), Dir: nu, Fwd: false}

	return corners, nil
}
