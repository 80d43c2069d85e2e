package md

import (
	"math/rand"
	"testing"

	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/neighbor"
	"github.com/rmera/mdforce/units"
)

func twoAtomSystem(Te *testing.T) *System {
	atoms := []Atom{{Mass: 1, Sigma: 0.3, Epsilon: 1}, {Mass: 1, Sigma: 0.3, Epsilon: 1}}
	coords := []geom.Vec{geom.New(0, 0, 0), geom.New(0.5, 0, 0)}
	velocities := []geom.Vec{geom.Zero, geom.Zero}
	sys, err := NewSystem(atoms, coords, velocities, geom.New(10, 10, 10), 3,
		nil, nil, neighbor.DistanceFinder{DistCutoff: 1}, units.KJPerMolNm, units.KJPerMol)
	if err != nil {
		Te.Fatalf("unexpected error building system: %v", err)
	}
	return sys
}

func TestNewSystemRejectsMismatchedLengths(Te *testing.T) {
	atoms := []Atom{{Mass: 1}}
	coords := []geom.Vec{geom.Zero, geom.Zero}
	velocities := []geom.Vec{geom.Zero}
	_, err := NewSystem(atoms, coords, velocities, geom.New(1, 1, 1), 3, nil, nil,
		neighbor.DistanceFinder{DistCutoff: 1}, units.UnitsNone, units.UnitsNone)
	if err == nil {
		Te.Fatalf("expected an error for mismatched coords length")
	}
}

func TestNewSystemRejectsBadDim(Te *testing.T) {
	atoms := []Atom{{Mass: 1}}
	coords := []geom.Vec{geom.Zero}
	velocities := []geom.Vec{geom.Zero}
	_, err := NewSystem(atoms, coords, velocities, geom.New(1, 1, 1), 4, nil, nil,
		neighbor.DistanceFinder{DistCutoff: 1}, units.UnitsNone, units.UnitsNone)
	if err == nil {
		Te.Fatalf("expected an error for dim outside {2,3}")
	}
}

func TestKineticEnergyAtRestIsZero(Te *testing.T) {
	sys := twoAtomSystem(Te)
	if sys.KineticEnergy() != 0 {
		Te.Errorf("expected zero kinetic energy at rest, got %v", sys.KineticEnergy())
	}
}

func TestTemperatureMatchesEquipartition(Te *testing.T) {
	sys := twoAtomSystem(Te)
	sys.Velocities[0] = geom.New(1, 0, 0)
	ke := sys.KineticEnergy()
	ndf := float64(sys.Dim * len(sys.Atoms))
	want := 2 * ke / (ndf * units.BoltzmannConstant)
	got := sys.Temperature(units.BoltzmannConstant)
	if got != want {
		Te.Errorf("temperature %v does not match equipartition estimate %v", got, want)
	}
}

func TestRandomVelocitiesLeavesMasslessAtomsAtRest(Te *testing.T) {
	sys := twoAtomSystem(Te)
	sys.Atoms[1].Mass = 0
	RandomVelocities(sys, 300, units.BoltzmannConstant, rand.NewSource(1))
	if sys.Velocities[1] != geom.Zero {
		Te.Errorf("a zero-mass atom should stay at rest, got %v", sys.Velocities[1])
	}
}

func TestSetExclusionsAffectsFrame(Te *testing.T) {
	sys := twoAtomSystem(Te)
	nb := [][]bool{{false, false}, {false, false}}
	sys.SetExclusions(nb, nil)
	frame := sys.Frame()
	if frame.NBMatrix == nil {
		Te.Fatalf("expected the frame to carry the installed exclusion matrix")
	}
}
