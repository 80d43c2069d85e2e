package specific

import (
	"math"
	"testing"

	"github.com/rmera/mdforce/geom"
)

func TestHarmonicBondMinimumAtB0(Te *testing.T) {
	bonds := &BondList{
		I:      []int{0},
		J:      []int{1},
		Params: []HarmonicBond{{B0: 0.1, Kb: 3e5}},
	}
	box := geom.New(10, 10, 10)
	coords := []geom.Vec{geom.New(0, 0, 0), geom.New(0.1, 0, 0)}
	forces := make([]geom.Vec, 2)
	u := bonds.Evaluate(coords, box, 3, forces)
	if u != 0 {
		Te.Errorf("energy at equilibrium length should be 0, got %v", u)
	}
	if geom.Norm(forces[0]) > 1e-9 || geom.Norm(forces[1]) > 1e-9 {
		Te.Errorf("force at equilibrium length should be 0, got f0=%v f1=%v", forces[0], forces[1])
	}
}

func TestHarmonicBondNewtonsThirdLaw(Te *testing.T) {
	bonds := &BondList{
		I:      []int{0},
		J:      []int{1},
		Params: []HarmonicBond{{B0: 0.1, Kb: 3e5}},
	}
	box := geom.New(10, 10, 10)
	coords := []geom.Vec{geom.New(0, 0, 0), geom.New(0.15, 0, 0)}
	forces := make([]geom.Vec, 2)
	bonds.Evaluate(coords, box, 3, forces)
	sum := geom.Add(forces[0], forces[1])
	if geom.Norm(sum) > 1e-9 {
		Te.Errorf("sum of bond forces should be 0 (Newton's third law), got %v", sum)
	}
}

func TestHarmonicAngleAtEquilibrium(Te *testing.T) {
	angles := &AngleList{
		I: []int{0}, J: []int{1}, K: []int{2},
		Params: []HarmonicAngle{{Theta0: math.Pi / 2, Ktheta: 500}},
	}
	box := geom.New(10, 10, 10)
	coords := []geom.Vec{
		geom.New(1, 0, 0),
		geom.New(0, 0, 0),
		geom.New(0, 1, 0),
	}
	forces := make([]geom.Vec, 3)
	u := angles.Evaluate(coords, box, 3, forces)
	if u > 1e-6 {
		Te.Errorf("energy at equilibrium angle should be ~0, got %v", u)
	}
}

func TestAngleForcesSumToZero(Te *testing.T) {
	angles := &AngleList{
		I: []int{0}, J: []int{1}, K: []int{2},
		Params: []HarmonicAngle{{Theta0: math.Pi / 2, Ktheta: 500}},
	}
	box := geom.New(10, 10, 10)
	coords := []geom.Vec{
		geom.New(1, 0.2, 0),
		geom.New(0, 0, 0),
		geom.New(0.1, 1, 0),
	}
	forces := make([]geom.Vec, 3)
	angles.Evaluate(coords, box, 3, forces)
	sum := geom.Add(geom.Add(forces[0], forces[1]), forces[2])
	if geom.Norm(sum) > 1e-6 {
		Te.Errorf("sum of angle forces should be 0, got %v", sum)
	}
}

func TestProperTorsionForcesSumToZero(Te *testing.T) {
	torsions := &ProperTorsionList{
		I: []int{0}, J: []int{1}, K: []int{2}, L: []int{3},
		Params: []Torsion{{Phi0: 0, K: 10, N: 2}},
	}
	box := geom.New(10, 10, 10)
	coords := []geom.Vec{
		geom.New(0, 1, 0),
		geom.New(0, 0, 0),
		geom.New(1, 0, 0),
		geom.New(1, 1, 0.5),
	}
	forces := make([]geom.Vec, 4)
	torsions.Evaluate(coords, box, 3, forces)
	var sum geom.Vec
	for _, f := range forces {
		sum = geom.Add(sum, f)
	}
	if geom.Norm(sum) > 1e-6 {
		Te.Errorf("sum of torsion forces should be 0, got %v", sum)
	}
}

func TestBondListGraphExcludesNothingByItself(Te *testing.T) {
	bonds := &BondList{I: []int{0, 1}, J: []int{1, 2}, Params: []HarmonicBond{{}, {}}}
	g := bonds.Graph()
	if g.Node(0) == nil || g.Node(1) == nil || g.Node(2) == nil {
		Te.Errorf("expected nodes 0,1,2 present in bond graph")
	}
	if !g.HasEdgeBetween(0, 1) || !g.HasEdgeBetween(1, 2) {
		Te.Errorf("expected edges 0-1 and 1-2 in bond graph")
	}
}
