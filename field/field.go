// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlgauge/group"
	"github.com/katalvlaran/lvlgauge/lattice"
)

// Sentinel errors for field construction and link access.
var (
	// ErrNilLattice indicates construction over a nil lattice.
	ErrNilLattice = errors.New("field: lattice must not be nil")

	// ErrBeta indicates a non-finite or negative coupling constant.
	ErrBeta = errors.New("field: coupling beta must be finite and non-negative")

	// ErrMissingLink indicates the link store does not hold an entry for a
	// valid oriented edge. It signals corrupted state, not a user error.
	ErrMissingLink = errors.New("field: link store is missing an entry for a valid edge")
)

// Vacuum is the zero-cost source marker for fields with nothing attached.
type Vacuum struct{}

// CoupledSource is implemented by source types that participate in coupled
// Monte Carlo dynamics. The updater invokes Evolve once per sweep, between
// the link passes, with a deterministic per-sweep stream.
type CoupledSource interface {
	Evolve(rng *rand.Rand, beta float64) error
}

// Field is a lattice gauge configuration: a dense map from oriented edges to
// group elements, the coupling β, and a source slot of type S.
//
// The lattice is shared by pointer and never mutated. The link store layout
// is cell-major, direction-minor: slot = cellIndex·D + dir.
type Field[E group.Element[E], S any] struct {
	lat   *lattice.Lattice
	g     group.Group[E]
	beta  float64
	links []E
	src   S
}

// NewCold constructs an identity-initialized (cold start) vacuum field.
//
// Errors: ErrNilLattice, ErrBeta.
//
// Complexity: O(V·D).
func NewCold[E group.Element[E]](lat *lattice.Lattice, g group.Group[E], beta float64) (*Field[E, Vacuum], error) {
	if err := validate(lat, beta); err != nil {
		return nil, err
	}

	links := make([]E, lat.LinkSlots())
	id := g.Identity()
	for i := range links {
		links[i] = id
	}

	return &Field[E, Vacuum]{lat: lat, g: g, beta: beta, links: links}, nil
}

// NewHot constructs a Haar-random (hot start) vacuum field. A nil rng selects
// a deterministic default stream (seed 1), mirroring the seed-zero policy of
// package mc.
//
// Errors: ErrNilLattice, ErrBeta.
//
// Complexity: O(V·D).
func NewHot[E group.Element[E]](lat *lattice.Lattice, g group.Group[E], beta float64, rng *rand.Rand) (*Field[E, Vacuum], error) {
	if err := validate(lat, beta); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	links := make([]E, lat.LinkSlots())
	for i := range links {
		links[i] = g.Haar(rng)
	}

	return &Field[E, Vacuum]{lat: lat, g: g, beta: beta, links: links}, nil
}

func validate(lat *lattice.Lattice, beta float64) error {
	if lat == nil {
		return ErrNilLattice
	}
	if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return ErrBeta
	}

	return nil
}

// Lattice returns the shared topology. Never nil after construction.
func (f *Field[E, S]) Lattice() *lattice.Lattice { return f.lat }

// Group returns the gauge-group capability the field was built with.
func (f *Field[E, S]) Group() group.Group[E] { return f.g }

// Beta returns the coupling constant β.
func (f *Field[E, S]) Beta() float64 { return f.beta }

// SetBeta changes the coupling in place, keeping links and source. The
// recoupling primitive for rewind-and-redo workflows.
//
// Errors: ErrBeta.
func (f *Field[E, S]) SetBeta(beta float64) error {
	if beta < 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return ErrBeta
	}
	f.beta = beta

	return nil
}

// Link returns the group element on the oriented edge (c, dir).
//
// Errors:
//   - lattice.ErrCell / ErrDirection / ErrBoundary on a malformed or
//     nonexistent edge (caller error).
//   - ErrMissingLink when the edge is valid but the store has no entry
//     (state corruption).
//
// Complexity: O(D).
func (f *Field[E, S]) Link(c lattice.Cell, dir int) (E, error) {
	var zero E
	slot, err := f.lat.EdgeSlot(c, dir)
	if err != nil {
		return zero, err
	}
	if slot >= len(f.links) {
		return zero, ErrMissingLink
	}

	return f.links[slot], nil
}

// SetLink stores v on the oriented edge (c, dir).
//
// Errors: as Link.
//
// Complexity: O(D).
func (f *Field[E, S]) SetLink(c lattice.Cell, dir int, v E) error {
	slot, err := f.lat.EdgeSlot(c, dir)
	if err != nil {
		return err
	}
	if slot >= len(f.links) {
		return ErrMissingLink
	}
	f.links[slot] = v

	return nil
}

// LinkAt returns the link at a dense slot with no edge validation — the O(1)
// hot-path accessor for sweeps that already hold valid slots.
func (f *Field[E, S]) LinkAt(slot int) E { return f.links[slot] }

// SetLinkAt stores v at a dense slot with no edge validation.
func (f *Field[E, S]) SetLinkAt(slot int, v E) { f.links[slot] = v }

// Clone returns a deep copy of the field: fresh link store, same shared
// lattice pointer, same group capability, same β, and a value copy of the
// source. The clone is fully decoupled from subsequent mutation of f.
//
// Complexity: O(V·D).
func (f *Field[E, S]) Clone() *Field[E, S] {
	links := make([]E, len(f.links))
	copy(links, f.links)

	return &Field[E, S]{lat: f.lat, g: f.g, beta: f.beta, links: links, src: f.src}
}

// Reproject pulls every link back onto the group manifold. Links whose
// reprojection fails are reset to the identity; the number of resets is
// returned so callers can report the events.
//
// Complexity: O(V·D).
func (f *Field[E, S]) Reproject() int {
	var resets int
	id := f.g.Identity()
	for i, u := range f.links {
		fixed, err := f.g.Reproject(u)
		if err != nil {
			f.links[i] = id
			resets++

			continue
		}
		f.links[i] = fixed
	}

	return resets
}
