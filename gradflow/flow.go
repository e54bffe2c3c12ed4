package gradflow

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlgauge/field"
	"github.com/katalvlaran/lvlgauge/group"
	"github.com/katalvlaran/lvlgauge/lattice"
	"github.com/katalvlaran/lvlgauge/numeric"
	"github.com/katalvlaran/lvlgauge/observable"
)

// Runge-Kutta stage coefficients (third-order scheme on the group manifold).
const (
	rkStage1    = 1.0 / 4.0
	rkStage2New = 8.0 / 9.0
	rkStage2Old = -17.0 / 36.0
	rkStage3New = 3.0 / 4.0
	rkStage3Mid = -8.0 / 9.0
	rkStage3Old = 17.0 / 36.0
)

// Flow integrates the gradient flow on a private clone of a gauge field and
// records the (t, E(t)) trajectory.
type Flow[E group.Element[E], S any] struct {
	f    *field.Field[E, S]
	opts Options
	nb   numeric.Backend

	t     float64
	steps int

	times    []float64
	energies []float64

	// per-slot force scratch, reused across stages and steps
	z0, z1, z2 []E
	live       []bool
}

// New clones f and prepares an integrator; the input field is left untouched
// for the rest of the Flow's life. The t = 0 energy density is recorded
// immediately so the trajectory always starts at the origin.
func New[E group.Element[E], S any](f *field.Field[E, S], opts Options, nb numeric.Backend) (*Flow[E, S], error) {
	if f == nil {
		return nil, ErrNilField
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var (
		n  = f.Lattice().LinkSlots()
		fl = &Flow[E, S]{
			f:    f.Clone(),
			opts: opts,
			nb:   numeric.OrStd(nb),
			z0:   make([]E, n),
			z1:   make([]E, n),
			z2:   make([]E, n),
			live: make([]bool, n),
		}
	)
	if err := fl.record(); err != nil {
		return nil, err
	}

	return fl, nil
}

// Field exposes the flowed configuration (the private clone, not the input).
func (fl *Flow[E, S]) Field() *field.Field[E, S] { return fl.f }

// Time returns the accumulated flow time.
func (fl *Flow[E, S]) Time() float64 { return fl.t }

// Trajectory returns the recorded flow times and energy densities. The
// slices alias internal state; callers must not mutate them.
func (fl *Flow[E, S]) Trajectory() (times, energies []float64) {
	return fl.times, fl.energies
}

// Step advances the flow by one ε using the three-stage scheme
//
//	W₁ = exp(¼ Z₀) W₀
//	W₂ = exp(8⁄9 Z₁ − 17⁄36 Z₀) W₁
//	W₃ = exp(¾ Z₂ − 8⁄9 Z₁ + 17⁄36 Z₀) W₂
//
// where Zᵢ = ε·F(Wᵢ) is the force of the i-th stage field. All force
// evaluations of a stage read the frozen stage field, so the update is
// synchronous across links.
func (fl *Flow[E, S]) Step() error {
	var g = fl.f.Group()

	if err := fl.forces(fl.z0); err != nil {
		return err
	}
	fl.apply(func(slot int) E { return g.Scale(rkStage1, fl.z0[slot]) })

	if err := fl.forces(fl.z1); err != nil {
		return err
	}
	fl.apply(func(slot int) E {
		return g.Add(g.Scale(rkStage2New, fl.z1[slot]), g.Scale(rkStage2Old, fl.z0[slot]))
	})

	if err := fl.forces(fl.z2); err != nil {
		return err
	}
	fl.apply(func(slot int) E {
		return g.Add(
			g.Add(g.Scale(rkStage3New, fl.z2[slot]), g.Scale(rkStage3Mid, fl.z1[slot])),
			g.Scale(rkStage3Old, fl.z0[slot]),
		)
	})

	fl.t += fl.opts.StepSize
	fl.steps++
	if fl.steps%fl.opts.SampleEvery == 0 {
		return fl.record()
	}

	return nil
}

// Evolve runs steps until the horizon MaxTime is reached.
func (fl *Flow[E, S]) Evolve() error {
	for fl.t+fl.opts.StepSize <= fl.opts.MaxTime+1e-12 {
		if err := fl.Step(); err != nil {
			return err
		}
	}

	return nil
}

// T0 extracts the scale t₀ where t²·E(t) first crosses the reference level,
// by linear interpolation between the bracketing samples.
func (fl *Flow[E, S]) T0() (float64, error) {
	var w = make([]float64, len(fl.energies))
	copy(w, fl.energies)
	floats.Mul(w, fl.times)
	floats.Mul(w, fl.times) // w[i] = t_i² · E(t_i)

	for i := 1; i < len(w); i++ {
		if w[i-1] < fl.opts.Reference && w[i] >= fl.opts.Reference {
			frac := (fl.opts.Reference - w[i-1]) / (w[i] - w[i-1])

			return fl.times[i-1] + frac*(fl.times[i]-fl.times[i-1]), nil
		}
	}

	return 0, ErrNoBracket
}

// record appends the current (t, E) sample.
func (fl *Flow[E, S]) record() error {
	e, err := observable.EnergyDensity(fl.f)
	if err != nil {
		return err
	}
	fl.times = append(fl.times, fl.t)
	fl.energies = append(fl.energies, e)

	return nil
}

// apply exponentiates the per-slot algebra combination onto every live link.
func (fl *Flow[E, S]) apply(combo func(slot int) E) {
	var g = fl.f.Group()
	for slot, ok := range fl.live {
		if !ok {
			continue
		}
		fl.f.SetLinkAt(slot, g.Exp(combo(slot)).Mul(fl.f.LinkAt(slot)))
	}
}

// forces fills dst with Z = −ε·Project(U·Ω) per link, Ω being the staple sum
// over both orientations of every plane through the link. Open-boundary
// slots are marked dead and skipped by apply.
func (fl *Flow[E, S]) forces(dst []E) error {
	var (
		l   = fl.f.Lattice()
		g   = fl.f.Group()
		d   = l.Dims()
		eps = fl.opts.StepSize
	)
	for c := range l.Cells() {
		for mu := 0; mu < d; mu++ {
			slot, err := l.EdgeSlot(c, mu)
			if errors.Is(err, lattice.ErrBoundary) {
				continue
			}
			if err != nil {
				return err
			}

			var (
				omega E
				have  bool
			)
			for nu := 0; nu < d; nu++ {
				if nu == mu {
					continue
				}
				for _, backward := range []bool{false, true} {
					v, ok, err := fl.staple(c, mu, nu, backward)
					if err != nil {
						return err
					}
					if !ok {
						continue
					}
					if !have {
						omega, have = v, true
					} else {
						omega = g.Add(omega, v)
					}
				}
			}
			if !have {
				fl.live[slot] = false

				continue
			}

			u := fl.f.LinkAt(slot)
			dst[slot] = g.Scale(-eps, g.Project(u.Mul(omega)))
			fl.live[slot] = true
		}
	}

	return nil
}

// staple builds one of the two staples of link (c, μ) in the (μ, ν) plane:
//
//	forward:  U_ν(c+μ̂) · U_μ(c+ν̂)† · U_ν(c)†
//	backward: U_ν(c+μ̂−ν̂)† · U_μ(c−ν̂)† · U_ν(c−ν̂)
//
// ok = false when the staple leaves an open boundary.
func (fl *Flow[E, S]) staple(c lattice.Cell, mu, nu int, backward bool) (v E, ok bool, err error) {
	var (
		l   = fl.f.Lattice()
		fwd lattice.Cell
	)
	fwd, err = l.Neighbor(c, mu, +1)
	if errors.Is(err, lattice.ErrBoundary) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}

	if !backward {
		var up lattice.Cell
		up, err = l.Neighbor(c, nu, +1)
		if errors.Is(err, lattice.ErrBoundary) {
			return v, false, nil
		}
		if err != nil {
			return v, false, err
		}

		a, errA := fl.f.Link(fwd, nu)
		b, errB := fl.f.Link(up, mu)
		s, errS := fl.f.Link(c, nu)
		if e := firstBoundary(errA, errB, errS); e != nil {
			return v, false, nil
		}
		if e := firstErr(errA, errB, errS); e != nil {
			return v, false, e
		}

		return a.Mul(b.Adjoint()).Mul(s.Adjoint()), true, nil
	}

	var down, corner lattice.Cell
	down, err = l.Neighbor(c, nu, -1)
	if errors.Is(err, lattice.ErrBoundary) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}
	corner, err = l.Neighbor(fwd, nu, -1)
	if errors.Is(err, lattice.ErrBoundary) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}

	a, errA := fl.f.Link(corner, nu)
	b, errB := fl.f.Link(down, mu)
	s, errS := fl.f.Link(down, nu)
	if e := firstBoundary(errA, errB, errS); e != nil {
		return v, false, nil
	}
	if e := firstErr(errA, errB, errS); e != nil {
		return v, false, e
	}

	return a.Adjoint().Mul(b.Adjoint()).Mul(s), true, nil
}

// firstBoundary returns the first ErrBoundary among errs, nil otherwise.
func firstBoundary(errs ...error) error {
	for _, e := range errs {
		if errors.Is(e, lattice.ErrBoundary) {
			return e
		}
	}

	return nil
}

// firstErr returns the first non-nil error among errs.
func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}

	return nil
}
