package gradflow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgauge/field"
	"github.com/katalvlaran/lvlgauge/gradflow"
	"github.com/katalvlaran/lvlgauge/group"
	"github.com/katalvlaran/lvlgauge/lattice"
	"github.com/katalvlaran/lvlgauge/observable"
)

func torus(t *testing.T, extents ...int) *lattice.Lattice {
	t.Helper()
	periodic := make([]bool, len(extents))
	for i := range periodic {
		periodic[i] = true
	}
	l, err := lattice.New(extents, periodic)
	require.NoError(t, err)

	return l
}

func hotSU2(t *testing.T, l *lattice.Lattice, seed int64) *field.Field[group.SU2, field.Vacuum] {
	t.Helper()
	f, err := field.NewHot(l, group.NewSU2(group.Double, nil), 1.0, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return f
}

func TestNew_Validation(t *testing.T) {
	f := hotSU2(t, torus(t, 4, 4), 1)

	_, err := gradflow.New[group.SU2, field.Vacuum](nil, gradflow.DefaultOptions(), nil)
	require.ErrorIs(t, err, gradflow.ErrNilField)

	// step size is required; zero and negative both fail before any flow
	_, err = gradflow.New(f, gradflow.Options{}, nil)
	require.ErrorIs(t, err, gradflow.ErrStepSize)
	_, err = gradflow.New(f, gradflow.Options{StepSize: -0.01}, nil)
	require.ErrorIs(t, err, gradflow.ErrStepSize)

	_, err = gradflow.New(f, gradflow.Options{StepSize: 0.5, MaxTime: 0.1}, nil)
	require.ErrorIs(t, err, gradflow.ErrMaxTime)

	_, err = gradflow.New(f, gradflow.Options{StepSize: 0.01, SampleEvery: -1}, nil)
	require.ErrorIs(t, err, gradflow.ErrSample)
}

// TestFlow_SmoothsEnergy: the flow is a descent of the action, so the
// energy density must decrease monotonically from a hot start.
func TestFlow_SmoothsEnergy(t *testing.T) {
	f := hotSU2(t, torus(t, 4, 4), 2)
	fl, err := gradflow.New(f, gradflow.Options{StepSize: 0.02, MaxTime: 0.4}, nil)
	require.NoError(t, err)
	require.NoError(t, fl.Evolve())

	times, energies := fl.Trajectory()
	require.Equal(t, len(times), len(energies))
	require.Greater(t, len(times), 2)
	require.Zero(t, times[0])
	for i := 1; i < len(energies); i++ {
		require.Less(t, energies[i], energies[i-1],
			"E(t) must decrease along the flow (step %d)", i)
	}
}

// TestFlow_InputFieldUntouched: the integrator works on a clone.
func TestFlow_InputFieldUntouched(t *testing.T) {
	f := hotSU2(t, torus(t, 4, 4), 3)
	before, err := observable.AveragePlaquette(f)
	require.NoError(t, err)

	fl, err := gradflow.New(f, gradflow.Options{StepSize: 0.02, MaxTime: 0.2}, nil)
	require.NoError(t, err)
	require.NoError(t, fl.Evolve())

	after, err := observable.AveragePlaquette(f)
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.NotSame(t, f, fl.Field())
}

// TestFlow_LinksStayOnManifold: exponentials of algebra elements preserve
// the group, up to integrator roundoff.
func TestFlow_LinksStayOnManifold(t *testing.T) {
	l := torus(t, 4, 4)
	g := group.NewSU3(group.Double, nil)
	f, err := field.NewHot(l, g, 1.0, rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	fl, err := gradflow.New(f, gradflow.Options{StepSize: 0.02, MaxTime: 0.2}, nil)
	require.NoError(t, err)
	require.NoError(t, fl.Evolve())

	flowed := fl.Field()
	for e := range l.Edges() {
		link, err := flowed.Link(e.From, e.Dir)
		require.NoError(t, err)
		require.Less(t, g.Deviation(link), 1e-8)
	}
}

// TestT0_HotStartBrackets: at small flow time t² grows much faster than the
// energy density decays, so t²E(t) rises through a low reference level and
// the interpolated crossing lands inside the first few steps.
func TestT0_HotStartBrackets(t *testing.T) {
	f := hotSU2(t, torus(t, 6, 6), 5)
	fl, err := gradflow.New(f, gradflow.Options{
		StepSize:  0.01,
		MaxTime:   0.5,
		Reference: 0.005,
	}, nil)
	require.NoError(t, err)
	require.NoError(t, fl.Evolve())

	t0, err := fl.T0()
	require.NoError(t, err)
	require.Greater(t, t0, 0.0)
	require.Less(t, t0, 0.5)
}

// TestT0_NoBracket: an already smooth (cold) field never reaches the level.
func TestT0_NoBracket(t *testing.T) {
	f, err := field.NewCold(torus(t, 4, 4), group.NewU1(group.Double, nil), 1.0)
	require.NoError(t, err)

	fl, err := gradflow.New(f, gradflow.Options{StepSize: 0.05, MaxTime: 0.2}, nil)
	require.NoError(t, err)
	require.NoError(t, fl.Evolve())

	_, err = fl.T0()
	require.ErrorIs(t, err, gradflow.ErrNoBracket)
}
