package neighbor

import (
	"gonum.org/v1/gonum/graph"

	"github.com/rmera/mdforce/specific"
)

// Exclusions derives the permanent pair-exclusion matrix and the 1-4
// marker matrix from bonded topology: atoms separated by one bond (1-2)
// or two bonds (1-3) are excluded outright from pairwise nonbonded
// interactions; atoms separated by exactly three bonds (1-4) are kept
// but flagged so a pairwise.Interaction can apply its Weight14
// scaling. This is a breadth-first walk of the bond graph out to depth 3,
// the same traversal rmera/gochem/chemgraph runs for ring perception and
// shortest-path queries, bounded here instead of exhaustive.
func Exclusions(bonds *specific.BondList, n int) (nbMatrix, matrix14 [][]bool) {
	g := bonds.Graph()

	nbMatrix = newBoolMatrix(n, true)
	matrix14 = newBoolMatrix(n, false)

	for start := 0; start < n; start++ {
		if g.Node(int64(start)) == nil {
			continue
		}
		depth := bfsDepths(g, start, 3)
		for other, d := range depth {
			if other <= start {
				continue
			}
			switch d {
			case 1, 2:
				nbMatrix[start][other] = false
			case 3:
				matrix14[start][other] = true
			}
		}
	}
	return nbMatrix, matrix14
}

func newBoolMatrix(n int, fill bool) [][]bool {
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
		for j := range m[i] {
			m[i][j] = fill
		}
	}
	return m
}

// bfsDepths returns, for every node reachable from start within maxDepth
// bond hops, its distance in hops. start itself is excluded from the map.
func bfsDepths(g graph.Graph, start, maxDepth int) map[int]int {
	depth := map[int]int{}
	frontier := []int64{int64(start)}
	visited := map[int64]bool{int64(start): true}
	for d := 1; d <= maxDepth && len(frontier) > 0; d++ {
		var next []int64
		for _, u := range frontier {
			it := g.From(u)
			for it.Next() {
				v := it.Node().ID()
				if visited[v] {
					continue
				}
				visited[v] = true
				depth[int(v)] = d
				next = append(next, v)
			}
		}
		frontier = next
	}
	return depth
}
