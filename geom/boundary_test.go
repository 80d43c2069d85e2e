package geom

import (
	"math"
	"testing"
)

func TestWrapIdempotent(Te *testing.T) {
	box := New(2, 2, 2)
	c := New(5.3, -1.2, 7.999)
	w1 := Wrap(c, box, 3)
	w2 := Wrap(w1, box, 3)
	if w1 != w2 {
		Te.Errorf("wrap not idempotent: %v != %v", w1, w2)
	}
	for _, v := range []float64{w1.X, w1.Y, w1.Z} {
		if v < 0 || v >= 2 {
			Te.Errorf("wrapped component %v outside [0,2)", v)
		}
	}
}

func TestWrap2D(Te *testing.T) {
	box := New(2, 2, 2)
	c := New(5.3, -1.2, 99)
	w := Wrap(c, box, 2)
	if w.Z != 0 {
		Te.Errorf("2D wrap should zero Z, got %v", w.Z)
	}
}

func TestDisplacementAntisymmetric(Te *testing.T) {
	box := New(2, 2, 2)
	a := New(1.9, 0.1, 1.0)
	b := New(0.1, 1.9, 0.0)
	dab := Displacement(a, b, box, 3)
	dba := Displacement(b, a, box, 3)
	sum := Add(dab, dba)
	if Norm(sum) > 1e-12 {
		Te.Errorf("displacement(a,b)+displacement(b,a) = %v, want 0", sum)
	}
}

func TestDisplacementMinimumImage(Te *testing.T) {
	box := New(2, 2, 2)
	a := New(1.9, 1.0, 1.0)
	b := New(0.1, 1.0, 1.0)
	d := Displacement(a, b, box, 3)
	// direct distance is 1.8, but the periodic image is 0.2 away.
	if math.Abs(Norm(d)-0.2) > 1e-12 {
		Te.Errorf("displacement norm = %v, want 0.2", Norm(d))
	}
}
