package neighbor

import "github.com/rmera/mdforce/geom"

// DistanceFinder is the O(N²) neighbor finder: include (i,j) if
// |r_ij| < DistCutoff and the pair isn't permanently excluded.
type DistanceFinder struct {
	DistCutoff  float64
	NSteps      int     // rebuild period; 0 rebuilds every call
	LongestSkin float64 // longest interaction cutoff, for the displacement heuristic
}

func (d DistanceFinder) FindNeighbors(frame Frame, prev *List, stepIndex int, parallel bool) *List {
	skin := d.DistCutoff - d.LongestSkin
	if !dueForRebuild(frame, prev, stepIndex, d.NSteps, skin) {
		return prev
	}
	rc2 := d.DistCutoff * d.DistCutoff
	n := len(frame.Coords)
	list := &List{builtAtStep: stepIndex, snapshot: snapshotOf(frame.Coords)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !frame.Allowed(i, j) {
				continue
			}
			dr := geom.Displacement(frame.Coords[i], frame.Coords[j], frame.Box, frame.Dim)
			if geom.Norm2(dr) < rc2 {
				list.Pairs = append(list.Pairs, Pair{I: i, J: j, Weight14: frame.Is14(i, j)})
			}
		}
	}
	return list
}
