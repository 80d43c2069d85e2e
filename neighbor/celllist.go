package neighbor

import (
	"math"

	"github.com/rmera/mdforce/geom"
)

// CellListFinder hashes atoms into a grid of cells with side at least
// DistCutoff, then for each atom scans only its own cell plus the
// adjacent cells (27 in 3D, 9 in 2D) instead of every other atom. This is
// the same "partition space into a coarse grid, scan only nearby bins"
// idiom as an octree, flattened from a hierarchical tree to a
// single-level grid. The cell counts per axis are floor(box/DistCutoff),
// so the cells tile the box exactly.
type CellListFinder struct {
	DistCutoff  float64
	NSteps      int
	LongestSkin float64
}

type cellKey struct{ x, y, z int }

func (c CellListFinder) FindNeighbors(frame Frame, prev *List, stepIndex int, parallel bool) *List {
	skin := c.DistCutoff - c.LongestSkin
	if !dueForRebuild(frame, prev, stepIndex, c.NSteps, skin) {
		return prev
	}
	// per-axis cell sides, set once the cell counts are known below.
	var sideX, sideY, sideZ float64
	n := len(frame.Coords)
	wrapped := make([]geom.Vec, n)
	for i, p := range frame.Coords {
		wrapped[i] = geom.Wrap(p, frame.Box, frame.Dim)
	}

	cellOf := func(v geom.Vec) cellKey {
		k := cellKey{
			x: int(math.Floor(v.X / sideX)),
			y: int(math.Floor(v.Y / sideY)),
		}
		if frame.Dim == 3 {
			k.z = int(math.Floor(v.Z / sideZ))
		}
		return k
	}

	// whole cells tile each axis exactly, so every side is >= DistCutoff
	// and the periodic wrap of cell indices matches the box wrap.
	nx := int(math.Floor(frame.Box.X / c.DistCutoff))
	ny := int(math.Floor(frame.Box.Y / c.DistCutoff))
	nz := 1
	if frame.Dim == 3 {
		nz = int(math.Floor(frame.Box.Z / c.DistCutoff))
	}
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	if nz < 1 {
		nz = 1
	}
	sideX, sideY, sideZ = frame.Box.X/float64(nx), frame.Box.Y/float64(ny), frame.Box.Z/float64(nz)

	cells := make(map[cellKey][]int, n)
	for i, v := range wrapped {
		k := cellOf(v)
		cells[k] = append(cells[k], i)
	}

	rc2 := c.DistCutoff * c.DistCutoff
	list := &List{builtAtStep: stepIndex, snapshot: snapshotOf(frame.Coords)}
	seen := make(map[[2]int]bool)

	neighborOffsets := func() [][3]int {
		var offs [][3]int
		zRange := []int{0}
		if frame.Dim == 3 {
			zRange = []int{-1, 0, 1}
		}
		for _, dz := range zRange {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					offs = append(offs, [3]int{dx, dy, dz})
				}
			}
		}
		return offs
	}()

	wrapCell := func(v, n int) int {
		v %= n
		if v < 0 {
			v += n
		}
		return v
	}

	for key, atoms := range cells {
		for _, off := range neighborOffsets {
			nk := cellKey{
				x: wrapCell(key.x+off[0], nx),
				y: wrapCell(key.y+off[1], ny),
			}
			if frame.Dim == 3 {
				nk.z = wrapCell(key.z+off[2], nz)
			}
			others, ok := cells[nk]
			if !ok {
				continue
			}
			for _, i := range atoms {
				for _, j := range others {
					if i >= j {
						continue
					}
					pairKey := [2]int{i, j}
					if seen[pairKey] {
						continue
					}
					if !frame.Allowed(i, j) {
						continue
					}
					dr := geom.Displacement(frame.Coords[i], frame.Coords[j], frame.Box, frame.Dim)
					if geom.Norm2(dr) < rc2 {
						seen[pairKey] = true
						list.Pairs = append(list.Pairs, Pair{I: i, J: j, Weight14: frame.Is14(i, j)})
					}
				}
			}
		}
	}
	return list
}
