/*
 * pipeline.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package pipeline turns a System plus a neighbor.List into forces and
// potential energy: for every registered pairwise Interaction, walk
// either the neighbor list (NLOnly) or every i<j pair still permitted by
// the exclusion matrix (all-pairs, e.g. gravity); for every registered
// specific.List, walk its
// entries directly. Pair work is split across a worker pool, each worker
// accumulating into its own force slice and energy total, reduced at the
// end — the same split-work/private-accumulator/channel-reduce shape as
// rmera/gochem/solv's concurrent trajectory analysis, applied here to
// splitting a neighbor list instead of splitting trajectory frames.
package pipeline

import (
	"runtime"

	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/neighbor"
	"github.com/rmera/mdforce/pairwise"
)

// pairIndex is one (i,j) pair to evaluate, tagged with whether it's a
// 1-4 pair.
type pairIndex struct {
	i, j int
	is14 bool
}

// partial is one worker's contribution: a full-length force slice (most
// entries zero) plus the worker's share of the potential energy.
type partial struct {
	forces []geom.Vec
	energy float64
}

// Forces returns the total force on every atom in sys, from every
// registered pairwise and specific interaction, given the current
// neighbor list.
func Forces(sys *md.System, neighbors *neighbor.List) []geom.Vec {
	forces, _ := evaluate(sys, neighbors)
	return forces
}

// PotentialEnergy returns the total potential energy of sys from every
// registered interaction, given the current neighbor list.
func PotentialEnergy(sys *md.System, neighbors *neighbor.List) float64 {
	_, energy := evaluate(sys, neighbors)
	return energy
}

// ForcesAndEnergy computes both in one traversal, the common case for an
// integrator step that needs both.
func ForcesAndEnergy(sys *md.System, neighbors *neighbor.List) ([]geom.Vec, float64) {
	return evaluate(sys, neighbors)
}

func evaluate(sys *md.System, neighbors *neighbor.List) ([]geom.Vec, float64) {
	n := len(sys.Atoms)
	forces := make([]geom.Vec, n)
	var energy float64

	allPairs := allPairsOf(sys.Frame())

	for _, inter := range sys.Pairwise {
		pairs := allPairs
		if inter.NLOnly() {
			pairs = pairsFromList(neighbors)
		}
		f, e := evalInteraction(sys, inter, pairs)
		for i := range forces {
			forces[i] = geom.Add(forces[i], f[i])
		}
		energy += e
	}

	for _, list := range sys.Specific {
		e := list.Evaluate(sys.Coords, sys.Box, sys.Dim, forces)
		energy += e
	}

	return forces, energy
}

func pairsFromList(neighbors *neighbor.List) []pairIndex {
	if neighbors == nil {
		return nil
	}
	pairs := make([]pairIndex, len(neighbors.Pairs))
	for k, p := range neighbors.Pairs {
		pairs[k] = pairIndex{i: p.I, j: p.J, is14: p.Weight14}
	}
	return pairs
}

// allPairsOf enumerates every i<j pair still allowed by frame's
// exclusion matrix, for interactions (e.g. Gravity) that aren't gated by
// a neighbor list and so would otherwise never consult it.
func allPairsOf(frame neighbor.Frame) []pairIndex {
	n := len(frame.Coords)
	pairs := make([]pairIndex, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !frame.Allowed(i, j) {
				continue
			}
			pairs = append(pairs, pairIndex{i: i, j: j, is14: frame.Is14(i, j)})
		}
	}
	return pairs
}

// evalInteraction evaluates one Interaction over pairs, splitting the
// work across a worker pool sized to runtime.NumCPU(). Each worker owns a
// private force slice and energy accumulator; results are summed as they
// arrive on a results channel, following the split/accumulate/reduce
// shape of rmera/gochem/solv.ConcMolRDF.
func evalInteraction(sys *md.System, inter pairwise.Interaction, pairs []pairIndex) ([]geom.Vec, float64) {
	n := len(sys.Atoms)
	if len(pairs) == 0 {
		return make([]geom.Vec, n), 0
	}

	workers := runtime.NumCPU()
	if workers > len(pairs) {
		workers = len(pairs)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(pairs) + workers - 1) / workers
	results := make(chan partial, workers)

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(pairs) {
			results <- partial{forces: make([]geom.Vec, n)}
			continue
		}
		if end > len(pairs) {
			end = len(pairs)
		}
		go evalChunk(sys, inter, pairs[start:end], n, results)
	}

	forces := make([]geom.Vec, n)
	var energy float64
	for w := 0; w < workers; w++ {
		p := <-results
		for i := range forces {
			forces[i] = geom.Add(forces[i], p.forces[i])
		}
		energy += p.energy
	}
	return forces, energy
}

func evalChunk(sys *md.System, inter pairwise.Interaction, pairs []pairIndex, n int, out chan<- partial) {
	forces := make([]geom.Vec, n)
	var energy float64
	for _, p := range pairs {
		dr := geom.Displacement(sys.Coords[p.i], sys.Coords[p.j], sys.Box, sys.Dim)
		ai, aj := sys.AtomParams(p.i), sys.AtomParams(p.j)
		f := inter.Force(dr, ai, aj, p.is14)
		forces[p.i] = geom.Add(forces[p.i], f)
		forces[p.j] = geom.Sub(forces[p.j], f)
		energy += inter.PotentialEnergy(dr, ai, aj, p.is14)
	}
	out <- partial{forces: forces, energy: energy}
}
