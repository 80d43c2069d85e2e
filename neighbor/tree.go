package neighbor

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/rmera/mdforce/geom"
)

// TreeFinder is the KD-tree neighbor finder: a gonum spatial/kdtree
// range search over periodic ghost images, required to report exactly
// the same pairs as DistanceFinder for the same cutoff. Building 3^Dim
// ghost replicas per atom and searching among them
// is the standard way to fold periodic boundary conditions into a tree
// built for free space, used here instead of a custom periodic tree.
type TreeFinder struct {
	DistCutoff  float64
	NSteps      int
	LongestSkin float64
}

// ghost is one periodic image of one atom, addressable by the original
// atom index it stands in for.
type ghost struct {
	atom int
	pos  geom.Vec
}

func (g *ghost) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	o := c.(*ghost)
	return axis(g.pos, d) - axis(o.pos, d)
}

func (g *ghost) Dims() int { return 3 }

func (g *ghost) Distance(c kdtree.Comparable) float64 {
	o := c.(*ghost)
	return geom.Norm2(geom.Sub(g.pos, o.pos))
}

func axis(v geom.Vec, d kdtree.Dim) float64 {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// ghostList implements kdtree.Interface over a plain slice of *ghost.
type ghostList []*ghost

func (g ghostList) Len() int                     { return len(g) }
func (g ghostList) Index(i int) kdtree.Comparable { return g[i] }
func (g ghostList) Slice(start, end int) kdtree.Interface {
	return g[start:end]
}

// Pivot partitions the slice by the given dimension and returns the
// index of the median element, sorting the slice in place. A direct
// sort rather than an in-place quickselect, since a correct partition
// matters here far more than shaving log n off tree construction.
func (g ghostList) Pivot(d kdtree.Dim) int {
	sort.Sort(byDim{g, d})
	return len(g) / 2
}

type byDim struct {
	list ghostList
	dim  kdtree.Dim
}

func (b byDim) Len() int      { return b.list.Len() }
func (b byDim) Swap(i, j int) { b.list[i], b.list[j] = b.list[j], b.list[i] }
func (b byDim) Less(i, j int) bool {
	return axis(b.list[i].pos, b.dim) < axis(b.list[j].pos, b.dim)
}

func (t TreeFinder) FindNeighbors(frame Frame, prev *List, stepIndex int, parallel bool) *List {
	skin := t.DistCutoff - t.LongestSkin
	if !dueForRebuild(frame, prev, stepIndex, t.NSteps, skin) {
		return prev
	}
	rc2 := t.DistCutoff * t.DistCutoff
	n := len(frame.Coords)

	ghosts := buildGhosts(frame)
	tree := kdtree.New(ghosts, false)

	list := &List{builtAtStep: stepIndex, snapshot: snapshotOf(frame.Coords)}
	seen := make(map[[2]int]bool)

	for i := 0; i < n; i++ {
		q := &ghost{atom: i, pos: frame.Coords[i]}
		keeper := kdtree.NewDistKeeper(rc2)
		tree.NearestSet(keeper, q)
		for _, cd := range keeper.Heap {
			if cd.Comparable == nil {
				continue
			}
			hit := cd.Comparable.(*ghost)
			j := hit.atom
			if j == i {
				continue
			}
			lo, hi := i, j
			if lo > hi {
				lo, hi = hi, lo
			}
			key := [2]int{lo, hi}
			if seen[key] {
				continue
			}
			if !frame.Allowed(lo, hi) {
				continue
			}
			dr := geom.Displacement(frame.Coords[lo], frame.Coords[hi], frame.Box, frame.Dim)
			if geom.Norm2(dr) < rc2 {
				seen[key] = true
				list.Pairs = append(list.Pairs, Pair{I: lo, J: hi, Weight14: frame.Is14(lo, hi)})
			}
		}
	}
	return list
}

// buildGhosts replicates every atom across the 3^Dim (or 3^2 in 2D)
// periodic images adjacent to the primary cell, so a free-space range
// search over the resulting set reproduces minimum-image neighbors.
func buildGhosts(frame Frame) ghostList {
	shifts := []int{-1, 0, 1}
	var out ghostList
	for i, p := range frame.Coords {
		for _, sx := range shifts {
			for _, sy := range shifts {
				zshifts := []int{0}
				if frame.Dim == 3 {
					zshifts = shifts
				}
				for _, sz := range zshifts {
					shifted := geom.New(
						p.X+float64(sx)*frame.Box.X,
						p.Y+float64(sy)*frame.Box.Y,
						p.Z+float64(sz)*frame.Box.Z,
					)
					out = append(out, &ghost{atom: i, pos: shifted})
				}
			}
		}
	}
	return out
}
