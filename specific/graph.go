package specific

import "gonum.org/v1/gonum/graph/simple"

// Graph builds an undirected bond graph from the list, one node per atom
// index touched by a bond, one edge per bond entry. This is the same
// shape rmera/gochem/chemgraph builds from a Molecule's Bond list so that
// gonum/graph traversals (shortest path, breadth-first search) can run
// over it; here it exists so neighbor.Exclusions can walk out to 1-2,
// 1-3 and 1-4 neighbors of every atom without reimplementing graph BFS.
func (b *BondList) Graph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for n := range b.I {
		i, j := int64(b.I[n]), int64(b.J[n])
		if g.Node(i) == nil {
			g.AddNode(simple.Node(i))
		}
		if g.Node(j) == nil {
			g.AddNode(simple.Node(j))
		}
		g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
	}
	return g
}
