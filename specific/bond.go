/*
 * bond.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package specific implements the bonded ("specific") interactions:
// harmonic bonds, harmonic angles, and proper/improper torsions, each
// evaluated over an indexed tuple of atoms rather than over every pair.
// A List is the polymorphic container: parallel index arrays plus one
// parameter record per entry, evaluated in index order with forces
// scattered into a shared per-atom accumulator.
package specific

import "github.com/rmera/mdforce/geom"

// List is the common contract every arity (2, 3 or 4) of specific
// interaction list implements: accumulate each entry's force into forces
// (indexed the same way as the coordinate slice) and return the total
// potential energy.
type List interface {
	Evaluate(coords []geom.Vec, box geom.Vec, dim int, forces []geom.Vec) float64
	Arity() int
	Len() int
}

// HarmonicBond is U = ½k_b(r−b0)², on the pair (i,j):
// F_i = −k_b(r−b0)·r̂, F_j = −F_i.
type HarmonicBond struct {
	B0, Kb float64
}

// BondList is a k=2 SpecificInteractionList: two parallel index arrays
// (I, J) plus one HarmonicBond parameter record per entry. All three
// slices must have equal length; every index must be in [0,N).
type BondList struct {
	I, J   []int
	Params []HarmonicBond
}

func (b *BondList) Len() int    { return len(b.I) }
func (b *BondList) Arity() int  { return 2 }

func (b *BondList) Evaluate(coords []geom.Vec, box geom.Vec, dim int, forces []geom.Vec) float64 {
	var energy float64
	for n := range b.I {
		i, j := b.I[n], b.J[n]
		p := b.Params[n]
		dr := geom.Displacement(coords[i], coords[j], box, dim)
		r := geom.Norm(dr)
		if r == 0 {
			continue
		}
		delta := r - p.B0
		energy += 0.5 * p.Kb * delta * delta
		// F_i = -kb(r-b0)*r_hat, r_hat = dr/r (dr points from j to i).
		fDivR := -p.Kb * delta / r
		f := geom.Scale(fDivR, dr)
		forces[i] = geom.Add(forces[i], f)
		forces[j] = geom.Sub(forces[j], f)
	}
	return energy
}
