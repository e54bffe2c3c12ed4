// SPDX-License-Identifier: MIT

package observable

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlgauge/field"
	"github.com/katalvlaran/lvlgauge/group"
	"github.com/katalvlaran/lvlgauge/lattice"
	"github.com/katalvlaran/lvlgauge/numeric"
)

// Sentinel errors for observable computation.
var (
	// ErrNilField indicates a nil field argument.
	ErrNilField = errors.New("observable: field must not be nil")

	// ErrLoopSize indicates a rectangular loop extent outside its valid range.
	ErrLoopSize = errors.New("observable: loop extents must be at least 1 (2 for Creutz ratios)")

	// ErrTimeDirection indicates a Polyakov loop along an invalid or
	// non-periodic direction.
	ErrTimeDirection = errors.New("observable: Polyakov loop requires a periodic time direction")

	// ErrNoPlaquettes indicates the lattice admits no complete plaquette.
	ErrNoPlaquettes = errors.New("observable: lattice admits no plaquette")

	// ErrIllConditioned indicates a Creutz ratio over non-positive or
	// non-finite Wilson-loop averages.
	ErrIllConditioned = errors.New("observable: Creutz ratio is undefined for non-positive loop averages")
)

// kahan is a compensated accumulator for lattice-wide sums.
type kahan struct {
	sum, c float64
}

func (k *kahan) add(x float64) {
	y := x - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Plaquette returns the ordered product of the four links around the unit
// square based at c in the (mu, nu) plane, following the fixed +μ,+ν,−μ,−ν
// orientation.
//
// Errors: ErrNilField; lattice corner errors pass through.
//
// Complexity: O(D).
func Plaquette[E group.Element[E], S any](f *field.Field[E, S], c lattice.Cell, mu, nu int) (E, error) {
	var zero E
	if f == nil {
		return zero, ErrNilField
	}

	corners, err := f.Lattice().PlaquetteCorners(c, mu, nu)
	if err != nil {
		return zero, err
	}

	out := f.Group().Identity()
	var u E
	for _, step := range corners {
		if u, err = f.Link(step.From, step.Dir); err != nil {
			return zero, err
		}
		if !step.Fwd {
			u = u.Adjoint()
		}
		out = out.Mul(u)
	}

	return out, nil
}

// AveragePlaquette returns the mean of Re tr(P)/dim over every distinct
// plaquette of the lattice (all cells, all plane pairs μ<ν). The identity
// configuration yields exactly 1. Plaquettes crossing an open boundary are
// excluded.
//
// Errors: ErrNilField, ErrNoPlaquettes.
//
// Complexity: O(V·D²).
func AveragePlaquette[E group.Element[E], S any](f *field.Field[E, S]) (float64, error) {
	if f == nil {
		return 0, ErrNilField
	}

	lat := f.Lattice()
	dim := float64(f.Group().Dim())
	var (
		acc    kahan
		count  int
		mu, nu int
	)
	for c := range lat.Cells() {
		for mu = 0; mu < lat.Dims(); mu++ {
			for nu = mu + 1; nu < lat.Dims(); nu++ {
				p, err := Plaquette(f, c, mu, nu)
				if errors.Is(err, lattice.ErrBoundary) {
					continue
				}
				if err != nil {
					return 0, err
				}
				acc.add(group.ReTrace(p) / dim)
				count++
			}
		}
	}
	if count == 0 {
		return 0, ErrNoPlaquettes
	}

	return acc.sum / float64(count), nil
}

// WilsonLoop returns the ordered product of links around the R×T rectangle
// based at c: R steps along mu, T along nu, then back. WilsonLoop(c, mu, nu,
// 1, 1) equals Plaquette(c, mu, nu) exactly.
//
// Errors: ErrNilField, ErrLoopSize; lattice errors pass through.
//
// Complexity: O((R+T)·D).
func WilsonLoop[E group.Element[E], S any](f *field.Field[E, S], c lattice.Cell, mu, nu, r, t int) (E, error) {
	var zero E
	if f == nil {
		return zero, ErrNilField
	}
	if r < 1 || t < 1 {
		return zero, ErrLoopSize
	}

	lat := f.Lattice()
	out := f.Group().Identity()
	cur := c.Clone()

	// The four legs of the rectangle, in orientation order.
	legs := []struct {
		dir, sign, n int
	}{
		{mu, +1, r}, {nu, +1, t}, {mu, -1, r}, {nu, -1, t},
	}
	var (
		u   E
		err error
		i   int
	)
	for _, leg := range legs {
		for i = 0; i < leg.n; i++ {
			if leg.sign > 0 {
				if u, err = f.Link(cur, leg.dir); err != nil {
					return zero, err
				}
				out = out.Mul(u)
				if cur, err = lat.Neighbor(cur, leg.dir, +1); err != nil {
					return zero, err
				}

				continue
			}
			if cur, err = lat.Neighbor(cur, leg.dir, -1); err != nil {
				return zero, err
			}
			if u, err = f.Link(cur, leg.dir); err != nil {
				return zero, err
			}
			out = out.Mul(u.Adjoint())
		}
	}

	return out, nil
}

// AverageWilsonLoop returns ⟨Re tr W(R,T) / dim⟩ over every base cell and
// every ordered plane pair μ<ν, skipping loops that cross open boundaries.
//
// Errors: ErrNilField, ErrLoopSize, ErrNoPlaquettes (no complete loop).
//
// Complexity: O(V·D²·(R+T)).
func AverageWilsonLoop[E group.Element[E], S any](f *field.Field[E, S], r, t int) (float64, error) {
	if f == nil {
		return 0, ErrNilField
	}
	if r < 1 || t < 1 {
		return 0, ErrLoopSize
	}

	lat := f.Lattice()
	dim := float64(f.Group().Dim())
	var (
		acc    kahan
		count  int
		mu, nu int
	)
	for c := range lat.Cells() {
		for mu = 0; mu < lat.Dims(); mu++ {
			for nu = mu + 1; nu < lat.Dims(); nu++ {
				w, err := WilsonLoop(f, c, mu, nu, r, t)
				if errors.Is(err, lattice.ErrBoundary) {
					continue
				}
				if err != nil {
					return 0, err
				}
				acc.add(group.ReTrace(w) / dim)
				count++
			}
		}
	}
	if count == 0 {
		return 0, ErrNoPlaquettes
	}

	return acc.sum / float64(count), nil
}

// PolyakovLoop returns the ordered product of links winding once around the
// compact direction timeDir at the given base cell; the component of the base
// cell along timeDir is ignored (the loop is translation invariant along it).
//
// Errors: ErrNilField, ErrTimeDirection.
//
// Complexity: O(extent·D).
func PolyakovLoop[E group.Element[E], S any](f *field.Field[E, S], c lattice.Cell, timeDir int) (E, error) {
	var zero E
	if f == nil {
		return zero, ErrNilField
	}

	lat := f.Lattice()
	if timeDir < 0 || timeDir >= lat.Dims() || !lat.Periodic(timeDir) {
		return zero, ErrTimeDirection
	}
	if !lat.Contains(c) {
		return zero, lattice.ErrCell
	}

	cur := c.Clone()
	cur[timeDir] = 0
	out := f.Group().Identity()
	var (
		u   E
		err error
		i   int
	)
	for i = 0; i < lat.Extent(timeDir); i++ {
		if u, err = f.Link(cur, timeDir); err != nil {
			return zero, err
		}
		out = out.Mul(u)
		if cur, err = lat.Neighbor(cur, timeDir, +1); err != nil {
			return zero, err
		}
	}

	return out, nil
}

// AveragePolyakovLoop returns ⟨tr P / dim⟩ averaged over all spatial sites —
// the deconfinement order parameter (zero in the confined phase).
//
// Errors: ErrNilField, ErrTimeDirection.
//
// Complexity: O(V·D).
func AveragePolyakovLoop[E group.Element[E], S any](f *field.Field[E, S], timeDir int) (complex128, error) {
	if f == nil {
		return 0, ErrNilField
	}

	lat := f.Lattice()
	if timeDir < 0 || timeDir >= lat.Dims() || !lat.Periodic(timeDir) {
		return 0, ErrTimeDirection
	}

	dim := complex(float64(f.Group().Dim()), 0)
	var (
		re, im kahan
		count  int
	)
	for c := range lat.Cells() {
		if c[timeDir] != 0 {
			continue // one loop per spatial site
		}
		p, err := PolyakovLoop(f, c, timeDir)
		if err != nil {
			return 0, err
		}
		tr := p.Trace() / dim
		re.add(real(tr))
		im.add(imag(tr))
		count++
	}

	return complex(re.sum/float64(count), im.sum/float64(count)), nil
}

// CreutzRatio returns χ(R,T) = −ln( W(R,T)·W(R−1,T−1) / (W(R,T−1)·W(R−1,T)) )
// over lattice-averaged Wilson loops. Its large-(R,T) limit estimates the
// string tension. A nil backend selects the standard math backend.
//
// Errors: ErrNilField, ErrLoopSize (R or T < 2), ErrIllConditioned.
//
// Complexity: four AverageWilsonLoop evaluations.
func CreutzRatio[E group.Element[E], S any](f *field.Field[E, S], r, t int, nb numeric.Backend) (float64, error) {
	if f == nil {
		return 0, ErrNilField
	}
	if r < 2 || t < 2 {
		return 0, ErrLoopSize
	}
	nb = numeric.OrStd(nb)

	var w [4]float64
	var err error
	args := [4][2]int{{r, t}, {r - 1, t - 1}, {r, t - 1}, {r - 1, t}}
	for i, a := range args {
		if w[i], err = AverageWilsonLoop(f, a[0], a[1]); err != nil {
			return 0, err
		}
	}

	ratio := (w[0] * w[1]) / (w[2] * w[3])
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return 0, ErrIllConditioned
	}

	return -nb.Log(ratio), nil
}

// EnergyDensity returns the per-site action energy
//
//	E = (1/V) Σ_x Σ_{μ<ν} 2·(1 − Re tr P_{μν}(x)/dim)
//
// the observable the gradient flow tracks for scale setting: t²·E(t) crossing
// 0.3 defines the t0 scale.
//
// Errors: ErrNilField, ErrNoPlaquettes.
//
// Complexity: O(V·D²).
func EnergyDensity[E group.Element[E], S any](f *field.Field[E, S]) (float64, error) {
	if f == nil {
		return 0, ErrNilField
	}

	lat := f.Lattice()
	dim := float64(f.Group().Dim())
	var (
		acc    kahan
		mu, nu int
		sites  int
	)
	for c := range lat.Cells() {
		sites++
		for mu = 0; mu < lat.Dims(); mu++ {
			for nu = mu + 1; nu < lat.Dims(); nu++ {
				p, err := Plaquette(f, c, mu, nu)
				if errors.Is(err, lattice.ErrBoundary) {
					continue
				}
				if err != nil {
					return 0, err
				}
				acc.add(2 * (1 - group.ReTrace(p)/dim))
			}
		}
	}
	if sites == 0 {
		return 0, ErrNoPlaquettes
	}

	return acc.sum / float64(sites), nil
}
