// SPDX-License-Identifier: MIT

package mc

import (
	"errors"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlgauge/field"
	"github.com/katalvlaran/lvlgauge/group"
	"github.com/katalvlaran/lvlgauge/lattice"
	"github.com/katalvlaran/lvlgauge/numeric"
)

// Updater drives Metropolis sweeps over one field. It holds exclusive logical
// ownership of the link store while a sweep is in progress; observables must
// read between sweeps or from a clone.
type Updater[E group.Element[E], S any] struct {
	f    *field.Field[E, S]
	g    group.Group[E]
	lat  *lattice.Lattice
	opts Options
	nb   numeric.Backend

	// parity[p] holds the dense cell indices of parity p, fixed at
	// construction so the parallel partition is deterministic.
	parity [2][]int

	thermalized bool
	stats       RunStats
}

// NewUpdater validates options and prepares the parity partition. A nil
// backend selects the standard math backend. On lattices where the
// checkerboard coloring is not bipartite (an odd periodic extent), passes
// run on a single worker regardless of Options.Workers.
//
// Errors: ErrNilField, ErrTherm, ErrInterval, ErrSpread.
//
// Complexity: O(V).
func NewUpdater[E group.Element[E], S any](f *field.Field[E, S], opts Options, nb numeric.Backend) (*Updater[E, S], error) {
	if f == nil {
		return nil, ErrNilField
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	u := &Updater[E, S]{
		f:    f,
		g:    f.Group(),
		lat:  f.Lattice(),
		opts: opts,
		nb:   numeric.OrStd(nb),
	}
	// An odd periodic extent breaks the checkerboard across the wrap: two
	// same-parity cells become adjacent, and a parallel pass would write one
	// link while another worker reads it through a shared staple. Serial
	// passes stay correct on any lattice.
	if !u.lat.Bipartite() {
		u.opts.Workers = 1
	}
	var i int
	for i = 0; i < u.lat.Volume(); i++ {
		p := u.lat.Parity(u.lat.CellAt(i))
		u.parity[p] = append(u.parity[p], i)
	}

	return u, nil
}

// Field returns the field the updater owns. Read it only between sweeps.
func (u *Updater[E, S]) Field() *field.Field[E, S] { return u.f }

// Stats returns a snapshot of the accumulated run statistics.
func (u *Updater[E, S]) Stats() RunStats { return u.stats }

// passCounters aggregates per-worker outcomes of one parity pass without
// sharing memory between workers.
type passCounters struct {
	proposals, accepted, unstable int64
}

// Sweep performs one full sweep: for every direction μ, the even-parity pass
// runs on parallel workers, a barrier, then the odd pass. Afterwards a
// coupled source (if any) evolves, and links are reprojected on schedule.
// Every sweep boundary leaves the field fully valid and serializable.
//
// Complexity: O(V·D²) group operations.
func (u *Updater[E, S]) Sweep() error {
	var (
		mu, parity, w int
		sweep         = u.stats.Sweeps
		workers       = u.opts.Workers
	)
	for mu = 0; mu < u.lat.Dims(); mu++ {
		for parity = 0; parity <= 1; parity++ {
			cells := u.parity[parity]
			counters := make([]passCounters, workers)
			var eg errgroup.Group
			for w = 0; w < workers; w++ {
				chunk := chunkOf(cells, w, workers)
				if len(chunk) == 0 {
					continue
				}
				stream := (uint64(sweep)*uint64(u.lat.Dims())+uint64(mu))*2 + uint64(parity)
				rng := streamRNG(u.opts.Seed, stream*uint64(workers)+uint64(w))
				ctr := &counters[w]
				dir := mu
				eg.Go(func() error {
					return u.updateChunk(chunk, dir, rng, ctr)
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}
			for w = 0; w < workers; w++ {
				u.stats.Proposals += counters[w].proposals
				u.stats.Accepted += counters[w].accepted
				u.stats.Instabilities += counters[w].unstable
			}
		}
	}

	if err := u.evolveSource(sweep); err != nil {
		return err
	}

	u.stats.Sweeps++
	if u.stats.Sweeps%u.opts.ReprojectEvery == 0 {
		u.stats.ManifoldResets += u.f.Reproject()
	}

	return nil
}

// chunkOf returns the w-th of `workers` contiguous slices of cells. The
// partition depends only on len(cells) and workers, keeping runs reproducible.
func chunkOf(cells []int, w, workers int) []int {
	n := len(cells)
	lo := n * w / workers
	hi := n * (w + 1) / workers

	return cells[lo:hi]
}

// updateChunk proposes one update for every link (cell, dir) of the chunk.
func (u *Updater[E, S]) updateChunk(chunk []int, dir int, rng *rand.Rand, ctr *passCounters) error {
	dims := u.lat.Dims()
	for _, ci := range chunk {
		c := u.lat.CellAt(ci)
		if !u.lat.HasEdge(c, dir) {
			continue // open-boundary slot, no physical link
		}
		slot := ci*dims + dir

		cur := u.f.LinkAt(slot)
		cand := u.g.Small(rng, u.opts.ProposalSpread).Mul(cur)
		ctr.proposals++

		accept, unstable, err := u.decide(c, dir, cur, cand, rng)
		if err != nil {
			return err
		}
		if unstable {
			ctr.unstable++

			continue
		}
		if accept {
			u.f.SetLinkAt(slot, cand)
			ctr.accepted++
		}
	}

	return nil
}

// decide evaluates the Metropolis rule for replacing cur with cand on the
// link (c, dir). The action delta comes from the staples incident to the
// link only:
//
//	ΔS = −(β/dim) · Σ_staples ( Re tr(cand·V) − Re tr(cur·V) )
//
// At β = 0 every proposal is accepted unconditionally.
func (u *Updater[E, S]) decide(c lattice.Cell, dir int, cur, cand E, rng *rand.Rand) (accept, unstable bool, err error) {
	beta := u.f.Beta()
	if beta == 0 {
		return true, false, nil
	}

	var sumNew, sumOld float64
	var nu int
	for nu = 0; nu < u.lat.Dims(); nu++ {
		if nu == dir {
			continue
		}
		for _, backward := range [2]bool{false, true} {
			v, ok, serr := u.staple(c, dir, nu, backward)
			if serr != nil {
				return false, false, serr
			}
			if !ok {
				continue // staple crosses an open boundary
			}
			sumNew += group.ReTrace(cand.Mul(v))
			sumOld += group.ReTrace(cur.Mul(v))
		}
	}

	delta := -(beta / float64(u.g.Dim())) * (sumNew - sumOld)
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return false, true, nil
	}
	if delta <= 0 {
		return true, false, nil
	}
	p := u.nb.Exp(-delta)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return false, true, nil
	}

	return rng.Float64() < p, false, nil
}

// staple returns the product of the three links closing a plaquette around
// the link (c, dir) in the (dir, nu) plane:
//
//	forward:  U_ν(c+μ̂) · U_μ(c+ν̂)† · U_ν(c)†
//	backward: U_ν(c+μ̂−ν̂)† · U_μ(c−ν̂)† · U_ν(c−ν̂)
//
// ok=false means that plaquette crosses an open boundary and contributes no
// action term.
func (u *Updater[E, S]) staple(c lattice.Cell, dir, nu int, backward bool) (v E, ok bool, err error) {
	var zero E
	lat := u.lat

	cMu, err := lat.Neighbor(c, dir, +1)
	if err != nil {
		return boundaryOr(zero, err)
	}

	if !backward {
		cNu, nerr := lat.Neighbor(c, nu, +1)
		if nerr != nil {
			return boundaryOr(zero, nerr)
		}
		a, aerr := u.f.Link(cMu, nu)
		if aerr != nil {
			return boundaryOr(zero, aerr)
		}
		b, berr := u.f.Link(cNu, dir)
		if berr != nil {
			return boundaryOr(zero, berr)
		}
		d, derr := u.f.Link(c, nu)
		if derr != nil {
			return boundaryOr(zero, derr)
		}

		return a.Mul(b.Adjoint()).Mul(d.Adjoint()), true, nil
	}

	// backward: the plaquette is based at c−ν̂.
	base, err := lat.Neighbor(c, nu, -1)
	if err != nil {
		return boundaryOr(zero, err)
	}
	cMuDown, err := lat.Neighbor(cMu, nu, -1)
	if err != nil {
		return boundaryOr(zero, err)
	}
	a, aerr := u.f.Link(cMuDown, nu)
	if aerr != nil {
		return boundaryOr(zero, aerr)
	}
	b, berr := u.f.Link(base, dir)
	if berr != nil {
		return boundaryOr(zero, berr)
	}
	d, derr := u.f.Link(base, nu)
	if derr != nil {
		return boundaryOr(zero, derr)
	}

	return a.Adjoint().Mul(b.Adjoint()).Mul(d), true, nil
}

// boundaryOr converts an ErrBoundary into the "no staple" outcome and passes
// every other error through.
func boundaryOr[E any](zero E, err error) (E, bool, error) {
	if errors.Is(err, lattice.ErrBoundary) {
		return zero, false, nil
	}

	return zero, false, err
}

// evolveSource advances a coupled source once per sweep with its own stream.
func (u *Updater[E, S]) evolveSource(sweep int) error {
	var evolveErr error
	beta := u.f.Beta()
	seed := u.opts.Seed
	u.f.MutateSource(func(s *S) {
		cs, ok := any(s).(field.CoupledSource)
		if !ok {
			return
		}
		evolveErr = cs.Evolve(streamRNG(seed, 1<<63|uint64(sweep)), beta)
	})

	return evolveErr
}
