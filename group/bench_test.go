package group_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgauge/group"
)

// BenchmarkSU3_Mul measures the 3×3 complex matrix product, the dominant
// operation of every staple and loop.
func BenchmarkSU3_Mul(b *testing.B) {
	g := group.NewSU3(group.Double, nil)
	rng := rand.New(rand.NewSource(1))
	x, y := g.Haar(rng), g.Haar(rng)

	b.ReportAllocs()
	b.ResetTimer()

	var out group.SU3
	for i := 0; i < b.N; i++ {
		out = x.Mul(y)
	}
	_ = out
}

// BenchmarkSU3_Exp measures the scaling-and-squaring exponential used by
// proposals and by every flow stage.
func BenchmarkSU3_Exp(b *testing.B) {
	g := group.NewSU3(group.Double, nil)
	rng := rand.New(rand.NewSource(1))
	x := g.Project(g.Haar(rng))

	b.ReportAllocs()
	b.ResetTimer()

	var out group.SU3
	for i := 0; i < b.N; i++ {
		out = g.Exp(x)
	}
	_ = out
}

// BenchmarkSU2_Mul: the quaternion product is 16 real multiplies; this pins
// the scalar baseline the SU(3) path is compared against.
func BenchmarkSU2_Mul(b *testing.B) {
	g := group.NewSU2(group.Double, nil)
	rng := rand.New(rand.NewSource(1))
	x, y := g.Haar(rng), g.Haar(rng)

	b.ReportAllocs()
	b.ResetTimer()

	var out group.SU2
	for i := 0; i < b.N; i++ {
		out = x.Mul(y)
	}
	_ = out
}
