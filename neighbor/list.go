/*
 * list.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package neighbor implements the neighbor-finding variants: an O(N²)
// distance scan, a KD-tree range search, and a cell-list spatial hash,
// all sharing the FindNeighbors contract and all required to agree on
// which pairs are within cutoff. It also derives the permanent
// exclusion matrix and 1-4 marker matrix from bonded topology.
package neighbor

import "github.com/rmera/mdforce/geom"

// Pair is one entry of a NeighborList: an index pair i<j, flagged for
// 1-4 special treatment when applicable.
type Pair struct {
	I, J     int
	Weight14 bool
}

// List is the unordered sequence of close pairs, rebuilt by a Finder
// every n_steps steps or on sufficient displacement.
type List struct {
	Pairs []Pair

	builtAtStep int
	snapshot    []geom.Vec // coords at build time, for the displacement heuristic
}

// Frame is the read-only view of system state a Finder needs: it is
// deliberately independent of the root md.System type so this package
// stays a leaf (md.System builds a Frame from itself when it wants
// neighbors, rather than this package importing md).
type Frame struct {
	Coords []geom.Vec
	Box    geom.Vec
	Dim    int

	// NBMatrix[i][j] (i<j) reports whether the pair is permitted; false
	// means permanently excluded (e.g. bonded 1-2/1-3 neighbors).
	NBMatrix [][]bool
	// Matrix14[i][j] (i<j) marks 1-4 pairs for special weighting.
	Matrix14 [][]bool
}

// Allowed reports whether pair (i,j) is permitted by the exclusion
// matrix (true when no matrix was installed).
func (f Frame) Allowed(i, j int) bool {
	if f.NBMatrix == nil {
		return true
	}
	return f.NBMatrix[i][j]
}

// Is14 reports whether pair (i,j) is flagged for 1-4 weighting.
func (f Frame) Is14(i, j int) bool {
	if f.Matrix14 == nil {
		return false
	}
	return f.Matrix14[i][j]
}

// Finder produces a fresh List, or returns prev unchanged when the
// refresh period hasn't elapsed.
type Finder interface {
	FindNeighbors(frame Frame, prev *List, stepIndex int, parallel bool) *List
}

// dueForRebuild reports whether a neighbor list needs rebuilding: every
// nSteps steps, or when any atom has moved more than half the neighbor
// list's skin (distCutoff minus the longest interaction cutoff) since the
// last build.
func dueForRebuild(frame Frame, prev *List, stepIndex, nSteps int, skin float64) bool {
	if prev == nil || prev.snapshot == nil {
		return true
	}
	if nSteps > 0 && stepIndex-prev.builtAtStep >= nSteps {
		return true
	}
	half := skin / 2
	if half <= 0 {
		return false
	}
	for i, c := range frame.Coords {
		if i >= len(prev.snapshot) {
			return true
		}
		if geom.Norm(geom.Displacement(c, prev.snapshot[i], frame.Box, frame.Dim)) > half {
			return true
		}
	}
	return false
}

func snapshotOf(coords []geom.Vec) []geom.Vec {
	out := make([]geom.Vec, len(coords))
	copy(out, coords)
	return out
}
