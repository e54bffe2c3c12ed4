package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlgauge/numeric"
)

// TestStd_MatchesMath verifies that the default backend delegates to math.
func TestStd_MatchesMath(t *testing.T) {
	nb := numeric.Std{}
	xs := []float64{-2.5, -1, 0, 0.5, 1, 3.25}
	for _, x := range xs {
		if got, want := nb.Exp(x), math.Exp(x); got != want {
			t.Errorf("Exp(%v) = %v; want %v", x, got, want)
		}
		if got, want := nb.Sin(x), math.Sin(x); got != want {
			t.Errorf("Sin(%v) = %v; want %v", x, got, want)
		}
		if got, want := nb.Cos(x), math.Cos(x); got != want {
			t.Errorf("Cos(%v) = %v; want %v", x, got, want)
		}
	}
	if got := nb.Sqrt(2); got != math.Sqrt2 {
		t.Errorf("Sqrt(2) = %v; want %v", got, math.Sqrt2)
	}
	if got := nb.Atan2(1, 1); got != math.Pi/4 {
		t.Errorf("Atan2(1,1) = %v; want %v", got, math.Pi/4)
	}
}

// TestStd_PropagatesNonFinite checks NaN/Inf pass through instead of panicking.
func TestStd_PropagatesNonFinite(t *testing.T) {
	nb := numeric.Std{}
	if !math.IsNaN(nb.Log(-1)) {
		t.Error("Log(-1) should be NaN")
	}
	if !math.IsInf(nb.Exp(1e9), 1) {
		t.Error("Exp(1e9) should overflow to +Inf")
	}
	if !math.IsNaN(nb.Sqrt(-1)) {
		t.Error("Sqrt(-1) should be NaN")
	}
}

// TestOrStd resolves nil to the standard backend.
func TestOrStd(t *testing.T) {
	if _, ok := numeric.OrStd(nil).(numeric.Std); !ok {
		t.Fatal("OrStd(nil) should return Std")
	}
	custom := numeric.Std{}
	if nb := numeric.OrStd(custom); nb != numeric.Backend(custom) {
		t.Fatal("OrStd should pass a non-nil backend through")
	}
}
