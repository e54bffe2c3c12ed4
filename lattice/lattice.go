// SPDX-License-Identifier: MIT

package lattice

// Lattice is an immutable D-dimensional hypercubic grid. Extents and
// periodicity are fixed at construction; strides and volume are precomputed
// for O(1) dense indexing. A Lattice is safe for unsynchronized concurrent
// reads and is shared by pointer among every field built over it.
type Lattice struct {
	extents  []int
	periodic []bool
	strides  []int
	volume   int
}

// New constructs a Lattice with the given per-dimension extents and
// periodicity flags. Both slices are copied; the result never aliases the
// caller's memory.
//
// Errors:
//   - ErrDims if the slices are empty or of different lengths.
//   - ErrExtent if any extent is < 1.
//
// Complexity: O(D).
func New(extents []int, periodic []bool) (*Lattice, error) {
	if len(extents) == 0 || len(extents) != len(periodic) {
		return nil, ErrDims
	}

	l := &Lattice{
		extents:  make([]int, len(extents)),
		periodic: make([]bool, len(periodic)),
		strides:  make([]int, len(extents)),
		volume:   1,
	}
	copy(l.extents, extents)
	copy(l.periodic, periodic)

	// Row-major strides: last dimension varies fastest.
	var d int
	for d = len(extents) - 1; d >= 0; d-- {
		if extents[d] < 1 {
			return nil, ErrExtent
		}
		l.strides[d] = l.volume
		l.volume *= extents[d]
	}

	return l, nil
}

// Dims returns the number of dimensions D.
func (l *Lattice) Dims() int { return len(l.extents) }

// Extent returns the size of dimension d. Panics if d is out of range
// (programmer error; use within [0, Dims())).
func (l *Lattice) Extent(d int) int { return l.extents[d] }

// Periodic reports whether dimension d wraps around.
func (l *Lattice) Periodic(d int) bool { return l.periodic[d] }

// Volume returns the total number of cells.
func (l *Lattice) Volume() int { return l.volume }

// LinkSlots returns the number of oriented link slots a field over this
// lattice must allocate: one per (cell, direction) pair. Slots whose edge
// would cross an open boundary exist but are never enumerated by Edges.
func (l *Lattice) LinkSlots() int { return l.volume * len(l.extents) }

// Contains reports whether c is a canonical in-bounds coordinate.
//
// Complexity: O(D).
func (l *Lattice) Contains(c Cell) bool {
	if len(c) != len(l.extents) {
		return false
	}
	for d := range c {
		if c[d] < 0 || c[d] >= l.extents[d] {
			return false
		}
	}

	return true
}

// Index maps a cell to its dense index in [0, Volume).
//
// Errors: ErrCell if c is out of bounds or of wrong rank.
//
// Complexity: O(D).
func (l *Lattice) Index(c Cell) (int, error) {
	if !l.Contains(c) {
		return 0, ErrCell
	}

	var idx, d int
	for d = range c {
		idx += c[d] * l.strides[d]
	}

	return idx, nil
}

// CellAt is the inverse of Index: it reconstructs the cell at dense index i.
// Panics if i is outside [0, Volume) (programmer error).
//
// Complexity: O(D).
func (l *Lattice) CellAt(i int) Cell {
	if i < 0 || i >= l.volume {
		panic("lattice: CellAt index out of range")
	}

	c := make(Cell, len(l.extents))
	var d int
	for d = range l.extents {
		c[d] = i / l.strides[d]
		i %= l.strides[d]
	}

	return c
}

// Parity returns 0 for even cells and 1 for odd cells, under the standard
// checkerboard coloring (coordinate sum mod 2). Two cells joined by one link
// always have opposite parity exactly when Bipartite reports true.
//
// Complexity: O(D).
func (l *Lattice) Parity(c Cell) int {
	var sum, d int
	for d = range c {
		sum += c[d]
	}

	return sum & 1
}

// Bipartite reports whether the checkerboard coloring is consistent across
// every wrap: true iff each periodic dimension has even extent. An odd
// periodic extent makes two same-parity cells adjacent across the wrap, so
// parity no longer 2-colors the link graph.
//
// Complexity: O(D).
func (l *Lattice) Bipartite() bool {
	var d int
	for d = range l.extents {
		if l.periodic[d] && l.extents[d]%2 != 0 {
			return false
		}
	}

	return true
}

// wrap returns x reduced to [0, n) by true mathematical modulus. Explicit on
// purpose: native % has language-specific sign behavior for negatives.
func wrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}

	return x
}

// Neighbor returns the cell one step from c along direction dir with the
// given sign (+1 forward, -1 backward). Periodic dimensions wrap modulo the
// extent; open dimensions fail with ErrBoundary when the step leaves
// [0, extent). The input cell is never mutated.
//
// Errors: ErrCell, ErrDirection, ErrBoundary.
//
// Complexity: O(D).
func (l *Lattice) Neighbor(c Cell, dir, sign int) (Cell, error) {
	if !l.Contains(c) {
		return nil, ErrCell
	}
	if dir < 0 || dir >= len(l.extents) {
		return nil, ErrDirection
	}
	if sign != 1 && sign != -1 {
		return nil, ErrDirection
	}

	out := c.Clone()
	next := out[dir] + sign
	if l.periodic[dir] {
		out[dir] = wrap(next, l.extents[dir])

		return out, nil
	}
	if next < 0 || next >= l.extents[dir] {
		return nil, ErrBoundary
	}
	out[dir] = next

	return out, nil
}

// HasEdge reports whether the oriented edge (c, dir) exists: its forward
// endpoint must lie on the lattice (always true on periodic dimensions).
//
// Complexity: O(D).
func (l *Lattice) HasEdge(c Cell, dir int) bool {
	if !l.Contains(c) || dir < 0 || dir >= len(l.extents) {
		return false
	}

	return l.periodic[dir] || c[dir]+1 < l.extents[dir]
}

// EdgeSlot returns the dense slot of the oriented edge (c, dir) in a link
// store of size LinkSlots.
//
// Errors:
//   - ErrCell / ErrDirection on malformed arguments.
//   - ErrBoundary if the edge would cross an open boundary (no such edge).
//
// Complexity: O(D).
func (l *Lattice) EdgeSlot(c Cell, dir int) (int, error) {
	idx, err := l.Index(c)
	if err != nil {
		return 0, err
	}
	if dir < 0 || dir >= len(l.extents) {
		return 0, ErrDirection
	}
	if !l.periodic[dir] && c[dir]+1 >= l.extents[dir] {
		return 0, ErrBoundary
	}

	return idx*len(l.extents) + dir, nil
}
