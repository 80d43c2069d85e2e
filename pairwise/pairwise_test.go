package pairwise

import (
	"math"
	"testing"

	"github.com/rmera/mdforce/cutoff"
	"github.com/rmera/mdforce/geom"
)

func TestLJShortCircuitsOnZeroSigma(Te *testing.T) {
	lj := LJ{Cutoff: cutoff.None{}, Mixing: Lorentz}
	dr := geom.New(0.3, 0, 0)
	i := AtomParams{Sigma: 0, Epsilon: 1}
	j := AtomParams{Sigma: 0.3, Epsilon: 1}
	f := lj.Force(dr, i, j, false)
	u := lj.PotentialEnergy(dr, i, j, false)
	if f != geom.Zero || u != 0 {
		Te.Errorf("expected zero force/energy with zero sigma, got f=%v u=%v", f, u)
	}
}

func TestLJNewtonsThirdLaw(Te *testing.T) {
	lj := LJ{Cutoff: cutoff.None{}, Mixing: Lorentz}
	i := AtomParams{Sigma: 0.3, Epsilon: 0.5}
	j := AtomParams{Sigma: 0.3, Epsilon: 0.5}
	dr := geom.New(0.35, 0.1, -0.05)
	fi := lj.Force(dr, i, j, false)
	fj := lj.Force(geom.Scale(-1, dr), j, i, false)
	sum := geom.Add(fi, fj)
	if geom.Norm(sum) > 1e-9 {
		Te.Errorf("F_i(dr) + F_j(-dr) = %v, want 0", sum)
	}
}

func TestLJFiniteDifferenceNoCutoff(Te *testing.T) {
	lj := LJ{Cutoff: cutoff.None{}, Mixing: Lorentz}
	i := AtomParams{Sigma: 0.3, Epsilon: 0.5}
	j := AtomParams{Sigma: 0.3, Epsilon: 0.5}
	r := 0.35
	h := 1e-6
	uPlus := lj.PotentialEnergy(geom.New(r+h, 0, 0), i, j, false)
	uMinus := lj.PotentialEnergy(geom.New(r-h, 0, 0), i, j, false)
	dUdr := (uPlus - uMinus) / (2 * h)
	f := lj.Force(geom.New(r, 0, 0), i, j, false)
	// F = -dU/dr * r_hat; r_hat = (1,0,0) here.
	if math.Abs(f.X-(-dUdr)) > 1e-4 {
		Te.Errorf("F=%v, -dU/dr=%v, mismatch beyond finite-difference tolerance", f.X, -dUdr)
	}
}

func TestCoulombReactionFieldVanishesAtCutoff(Te *testing.T) {
	rf := NewCoulombReactionField(1.0, 0)
	i := AtomParams{Charge: 1}
	j := AtomParams{Charge: -1}
	u := rf.PotentialEnergy(geom.New(1.0-1e-9, 0, 0), i, j, false)
	if math.Abs(u) > 1e-3 {
		Te.Errorf("reaction field potential should vanish at cutoff, got %v", u)
	}
}

func TestMieRejectsMGreaterThanN(Te *testing.T) {
	_, err := NewMie(12, 6, cutoff.None{}, Lorentz)
	if err == nil {
		Te.Errorf("expected NewMie(12,6) [m>n] to be rejected")
	}
	_, err = NewMie(6, 12, cutoff.None{}, Lorentz)
	if err != nil {
		Te.Errorf("NewMie(6,12) [m<n] should be accepted, got %v", err)
	}
}

func TestMieReducesToLJAtMSixNTwelve(Te *testing.T) {
	mie, err := NewMie(6, 12, cutoff.None{}, Lorentz)
	if err != nil {
		Te.Fatal(err)
	}
	lj := LJ{Cutoff: cutoff.None{}, Mixing: Lorentz}
	i := AtomParams{Sigma: 0.3, Epsilon: 0.5}
	j := AtomParams{Sigma: 0.3, Epsilon: 0.5}
	dr := geom.New(0.33, 0, 0)
	uMie := mie.PotentialEnergy(dr, i, j, false)
	uLJ := lj.PotentialEnergy(dr, i, j, false)
	if math.Abs(uMie-uLJ) > 1e-9 {
		Te.Errorf("Mie(6,12) energy %v should match LJ energy %v", uMie, uLJ)
	}
}
