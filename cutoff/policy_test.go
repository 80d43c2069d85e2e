package cutoff

import (
	"math"
	"testing"
)

// a simple inverse-square-law raw kernel, close enough to LJ/Coulomb
// shape to exercise the cutoff transforms without pulling in pairwise.
func rawKernel(r2 float64) (float64, float64) {
	r := math.Sqrt(r2)
	return 1 / (r2 * r), 1 / r // F/r = 1/r^3, U = 1/r
}

func TestDistanceZerosOutsideCutoff(Te *testing.T) {
	d := NewDistance(1.0)
	f, u := d.Apply(4.0, rawKernel)
	if f != 0 || u != 0 {
		Te.Errorf("expected zero beyond cutoff, got f=%v u=%v", f, u)
	}
	f, u = d.Apply(0.25, rawKernel)
	if f == 0 || u == 0 {
		Te.Errorf("expected nonzero inside cutoff, got f=%v u=%v", f, u)
	}
}

func TestShiftedPotentialContinuousAtCutoff(Te *testing.T) {
	rc := 1.0
	sp := NewShiftedPotential(rc, rawKernel)
	_, u := sp.Apply(rc*rc-1e-9, rawKernel)
	if math.Abs(u) > 1e-4 {
		Te.Errorf("potential should vanish approaching rc, got %v", u)
	}
}

func TestShiftedForceContinuousAtCutoff(Te *testing.T) {
	rc := 1.0
	sf := NewShiftedForce(rc, rawKernel)
	f, _ := sf.Apply(rc*rc-1e-9, rawKernel)
	if math.Abs(f*rc) > 1e-3 {
		Te.Errorf("force should vanish approaching rc, got F/r=%v", f)
	}
}

func TestCubicSplineMatchesRawBelowOnset(Te *testing.T) {
	cs := NewCubicSpline(0.8, 1.0)
	r2 := 0.5 * 0.5
	f, u := cs.Apply(r2, rawKernel)
	wf, wu := rawKernel(r2)
	if f != wf || u != wu {
		Te.Errorf("below onset should match raw kernel exactly: got f=%v u=%v want f=%v u=%v", f, u, wf, wu)
	}
}

func TestCubicSplineVanishesAtCutoff(Te *testing.T) {
	cs := NewCubicSpline(0.8, 1.0)
	f, u := cs.Apply(1.0*1.0-1e-9, rawKernel)
	if math.Abs(f) > 1e-2 || math.Abs(u) > 1e-2 {
		Te.Errorf("switch should vanish at rc, got f=%v u=%v", f, u)
	}
}

func TestNoneHasInfiniteCutoff(Te *testing.T) {
	n := None{}
	if !math.IsInf(n.SquaredCutoff(), 1) {
		Te.Errorf("None.SquaredCutoff() should be +Inf")
	}
}
