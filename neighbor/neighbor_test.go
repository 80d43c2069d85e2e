package neighbor

import (
	"testing"

	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/specific"
)

func scatteredFrame(n int, box geom.Vec) Frame {
	coords := make([]geom.Vec, n)
	for i := 0; i < n; i++ {
		x := float64(i%5) * box.X / 5
		y := float64((i/5)%5) * box.Y / 5
		z := float64(i/25) * box.Z / 5
		coords[i] = geom.New(x, y, z)
	}
	return Frame{Coords: coords, Box: box, Dim: 3}
}

func pairSet(l *List) map[[2]int]bool {
	set := map[[2]int]bool{}
	for _, p := range l.Pairs {
		set[[2]int{p.I, p.J}] = true
	}
	return set
}

func TestDistanceFinderRebuildsImmediatelyWithoutPrev(Te *testing.T) {
	frame := scatteredFrame(10, geom.New(10, 10, 10))
	d := DistanceFinder{DistCutoff: 3, NSteps: 5, LongestSkin: 3}
	list := d.FindNeighbors(frame, nil, 0, false)
	if list == nil {
		Te.Fatalf("expected a fresh list on first call")
	}
}

func TestDistanceFinderSkipsRebuildWithinPeriod(Te *testing.T) {
	frame := scatteredFrame(10, geom.New(10, 10, 10))
	d := DistanceFinder{DistCutoff: 3, NSteps: 5, LongestSkin: 3}
	first := d.FindNeighbors(frame, nil, 0, false)
	second := d.FindNeighbors(frame, first, 1, false)
	if second != first {
		Te.Errorf("expected the same list pointer when rebuild isn't due")
	}
}

func TestCellListMatchesDistanceFinder(Te *testing.T) {
	box := geom.New(12, 12, 12)
	frame := scatteredFrame(40, box)
	d := DistanceFinder{DistCutoff: 2.5}
	c := CellListFinder{DistCutoff: 2.5}

	dlist := d.FindNeighbors(frame, nil, 0, false)
	clist := c.FindNeighbors(frame, nil, 0, false)

	dSet, cSet := pairSet(dlist), pairSet(clist)
	if len(dSet) != len(cSet) {
		Te.Fatalf("pair count mismatch: distance=%d celllist=%d", len(dSet), len(cSet))
	}
	for k := range dSet {
		if !cSet[k] {
			Te.Errorf("cell list missing pair %v found by distance finder", k)
		}
	}
}

func TestExclusionsExcludeOneTwoAndOneThree(Te *testing.T) {
	bonds := &specific.BondList{
		I: []int{0, 1, 2},
		J: []int{1, 2, 3},
		Params: []specific.HarmonicBond{{}, {}, {}},
	}
	nb, m14 := Exclusions(bonds, 4)
	if nb[0][1] {
		Te.Errorf("1-2 pair (0,1) should be excluded")
	}
	if nb[0][2] {
		Te.Errorf("1-3 pair (0,2) should be excluded")
	}
	if !nb[0][3] {
		Te.Errorf("1-4 pair (0,3) should remain in the nonbonded matrix")
	}
	if !m14[0][3] {
		Te.Errorf("1-4 pair (0,3) should be flagged in the 1-4 matrix")
	}
	if m14[0][1] || m14[0][2] {
		Te.Errorf("1-2/1-3 pairs should not be flagged 1-4")
	}
}

func TestFrameAllowedDefaultsToTrueWithoutMatrix(Te *testing.T) {
	f := Frame{Coords: []geom.Vec{geom.New(0, 0, 0), geom.New(1, 0, 0)}, Box: geom.New(10, 10, 10), Dim: 3}
	if !f.Allowed(0, 1) {
		Te.Errorf("with no NBMatrix, all pairs should be allowed")
	}
	if f.Is14(0, 1) {
		Te.Errorf("with no Matrix14, no pair should be marked 1-4")
	}
}
