package field_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgauge/field"
	"github.com/katalvlaran/lvlgauge/group"
	"github.com/katalvlaran/lvlgauge/lattice"
)

func newLattice(t *testing.T) *lattice.Lattice {
	t.Helper()
	l, err := lattice.New([]int{4, 4}, []bool{true, true})
	require.NoError(t, err)

	return l
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewCold_EveryEdgeIsIdentity: the construction invariant — one identity
// link per oriented edge.
func TestNewCold_EveryEdgeIsIdentity(t *testing.T) {
	l := newLattice(t)
	g := group.NewSU2(group.Double, nil)
	f, err := field.NewCold(l, g, 2.0)
	require.NoError(t, err)

	var edges int
	for e := range l.Edges() {
		u, err := f.Link(e.From, e.Dir)
		require.NoError(t, err)
		require.Equal(t, g.Identity(), u)
		edges++
	}
	require.Equal(t, 32, edges)
	require.Equal(t, 2.0, f.Beta())
	require.Same(t, l, f.Lattice())
}

// TestNewHot_OnManifoldAndSeeded: hot starts are Haar-valued and reproducible.
func TestNewHot_OnManifoldAndSeeded(t *testing.T) {
	l := newLattice(t)
	g := group.NewU1(group.Double, nil)

	f1, err := field.NewHot(l, g, 1.0, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	f2, err := field.NewHot(l, g, 1.0, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	for e := range l.Edges() {
		u1, err := f1.Link(e.From, e.Dir)
		require.NoError(t, err)
		u2, err := f2.Link(e.From, e.Dir)
		require.NoError(t, err)
		require.Equal(t, u1, u2, "same seed must reproduce the same configuration")
		require.InDelta(t, 0, g.Deviation(u1), 1e-12)
	}
}

// TestNew_Errors validates construction parameters.
func TestNew_Errors(t *testing.T) {
	l := newLattice(t)
	g := group.NewU1(group.Double, nil)

	_, err := field.NewCold[group.U1](nil, g, 1.0)
	require.ErrorIs(t, err, field.ErrNilLattice)

	for _, beta := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = field.NewCold(l, g, beta)
		require.ErrorIs(t, err, field.ErrBeta, "beta=%v", beta)
	}
}

// TestSetBeta recouples in place; links are untouched.
func TestSetBeta(t *testing.T) {
	l := newLattice(t)
	g := group.NewU1(group.Double, nil)
	f, err := field.NewHot(l, g, 1.0, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	before, err := f.Link(lattice.Cell{0, 0}, 0)
	require.NoError(t, err)

	require.NoError(t, f.SetBeta(2.5))
	require.Equal(t, 2.5, f.Beta())
	after, err := f.Link(lattice.Cell{0, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, before, after)

	require.ErrorIs(t, f.SetBeta(-1), field.ErrBeta)
	require.ErrorIs(t, f.SetBeta(math.NaN()), field.ErrBeta)
	require.Equal(t, 2.5, f.Beta(), "failed SetBeta must not change the coupling")
}

//----------------------------------------------------------------------------//
// Link access and cloning
//----------------------------------------------------------------------------//

// TestSetLink_RoundTripAndErrors checks link mutation plus edge validation.
func TestSetLink_RoundTripAndErrors(t *testing.T) {
	l := newLattice(t)
	g := group.NewU1(group.Double, nil)
	f, err := field.NewCold(l, g, 1.0)
	require.NoError(t, err)

	v := g.Haar(rand.New(rand.NewSource(3)))
	require.NoError(t, f.SetLink(lattice.Cell{1, 2}, 0, v))
	got, err := f.Link(lattice.Cell{1, 2}, 0)
	require.NoError(t, err)
	require.Equal(t, v, got)

	_, err = f.Link(lattice.Cell{9, 0}, 0)
	require.ErrorIs(t, err, lattice.ErrCell)
	_, err = f.Link(lattice.Cell{0, 0}, 5)
	require.ErrorIs(t, err, lattice.ErrDirection)
}

// TestClone_Decoupled: clones share the lattice but not the link store.
func TestClone_Decoupled(t *testing.T) {
	l := newLattice(t)
	g := group.NewSU2(group.Double, nil)
	f, err := field.NewHot(l, g, 1.5, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	c := f.Clone()
	require.Same(t, f.Lattice(), c.Lattice())
	require.Equal(t, f.Beta(), c.Beta())

	orig, err := f.Link(lattice.Cell{0, 0}, 0)
	require.NoError(t, err)
	require.NoError(t, c.SetLink(lattice.Cell{0, 0}, 0, g.Haar(rand.New(rand.NewSource(6)))))
	still, err := f.Link(lattice.Cell{0, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, orig, still, "mutating the clone leaked into the original")
}

// TestReproject_ResetsBrokenLinks: unrecoverable links become identity and
// are counted.
func TestReproject_ResetsBrokenLinks(t *testing.T) {
	l := newLattice(t)
	g := group.NewSU2(group.Double, nil)
	f, err := field.NewHot(l, g, 1.0, rand.New(rand.NewSource(8)))
	require.NoError(t, err)

	require.NoError(t, f.SetLink(lattice.Cell{2, 2}, 1, group.SU2{})) // zero: off-manifold beyond repair
	resets := f.Reproject()
	require.Equal(t, 1, resets)
	u, err := f.Link(lattice.Cell{2, 2}, 1)
	require.NoError(t, err)
	require.Equal(t, g.Identity(), u)
}

//----------------------------------------------------------------------------//
// Source lifecycle
//----------------------------------------------------------------------------//

type matter struct {
	Density float64
}

// TestReplaceSource_RoundTrip: replace returns the old value; replacing back
// restores the original.
func TestReplaceSource_RoundTrip(t *testing.T) {
	l := newLattice(t)
	g := group.NewU1(group.Double, nil)
	vac, err := field.NewCold(l, g, 1.0)
	require.NoError(t, err)

	f := field.WithSource(vac, matter{Density: 0.25})
	old := f.ReplaceSource(matter{Density: 0.5})
	require.Equal(t, matter{Density: 0.25}, old)
	require.Equal(t, matter{Density: 0.5}, f.Source())

	back := f.ReplaceSource(old)
	require.Equal(t, matter{Density: 0.5}, back)
	require.Equal(t, matter{Density: 0.25}, f.Source())
}

// TestWithSource_PreservesLinksAndLattice: the type-changing rebuild touches
// only the source slot.
func TestWithSource_PreservesLinksAndLattice(t *testing.T) {
	l := newLattice(t)
	g := group.NewSU3(group.Double, nil)
	vac, err := field.NewHot(l, g, 2.5, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	snapshot := make(map[int]group.SU3)
	for e := range l.Edges() {
		u, err := vac.Link(e.From, e.Dir)
		require.NoError(t, err)
		slot, err := l.EdgeSlot(e.From, e.Dir)
		require.NoError(t, err)
		snapshot[slot] = u
	}

	f := field.WithSource(vac, matter{Density: 1})
	require.Same(t, l, f.Lattice())
	require.Equal(t, 2.5, f.Beta())
	require.Equal(t, matter{Density: 1}, f.Source())
	for e := range l.Edges() {
		u, err := f.Link(e.From, e.Dir)
		require.NoError(t, err)
		slot, err := l.EdgeSlot(e.From, e.Dir)
		require.NoError(t, err)
		require.Equal(t, snapshot[slot], u, "link changed across WithSource")
	}

	// And back to vacuum, links still intact.
	v2 := field.WithSource(f, field.Vacuum{})
	for slot, want := range snapshot {
		require.Equal(t, want, v2.LinkAt(slot))
	}
}

// TestMutateSource grants in-place exclusive mutation.
func TestMutateSource(t *testing.T) {
	l := newLattice(t)
	g := group.NewU1(group.Double, nil)
	vac, err := field.NewCold(l, g, 1.0)
	require.NoError(t, err)

	f := field.WithSource(vac, matter{Density: 1})
	f.MutateSource(func(m *matter) { m.Density *= 2 })
	require.Equal(t, 2.0, f.Source().Density)
}
