/*
 * system.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package md is the root of mdforce: it owns the System data model and
// wires together the leaf packages (geom, cutoff, pairwise, specific,
// neighbor) that do the actual force/energy math. Higher
// packages (pipeline, integrate, mdlog, analysis) import md; md never
// imports them, which is what keeps the dependency graph acyclic.
package md

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/neighbor"
	"github.com/rmera/mdforce/pairwise"
	"github.com/rmera/mdforce/specific"
	"github.com/rmera/mdforce/units"
)

// System is the complete state of a simulation at one instant, plus the
// model (interactions, cutoffs, neighbor strategy) that turns that state
// into forces and energies.
type System struct {
	Atoms      []Atom
	Coords     []geom.Vec
	Velocities []geom.Vec
	Box        geom.Vec
	Dim        int // 2 or 3
	Pairwise   []pairwise.Interaction
	Specific   []specific.List
	Finder     neighbor.Finder
	ForceUnit  units.Unit
	EnergyUnit units.Unit

	nbMatrix [][]bool
	matrix14 [][]bool
}

// NewSystem validates the parallel slices and box/dimension and returns
// a ready-to-simulate System.
func NewSystem(atoms []Atom, coords, velocities []geom.Vec, box geom.Vec, dim int,
	pairwiseInteractions []pairwise.Interaction, specificInteractions []specific.List,
	finder neighbor.Finder, forceUnit, energyUnit units.Unit) (*System, error) {

	n := len(atoms)
	if len(coords) != n {
		return nil, newError(Validation, "len(coords) must equal len(atoms)")
	}
	if len(velocities) != n {
		return nil, newError(Validation, "len(velocities) must equal len(atoms)")
	}
	if dim != 2 && dim != 3 {
		return nil, newError(Validation, "dim must be 2 or 3")
	}
	if box.X <= 0 || box.Y <= 0 || (dim == 3 && box.Z <= 0) {
		return nil, newError(Validation, "box lengths must be positive in every simulated dimension")
	}
	if finder == nil {
		return nil, newError(Validation, "finder must not be nil")
	}
	// specific.List carries no unit tag of its own (bonded parameters are
	// plain scalars assumed to already be in the System's declared
	// units), so only pairwise.Interaction values, which are reusable
	// value objects built independently of any one System, need their
	// unit checked against it here.
	for k, inter := range pairwiseInteractions {
		if inter.ForceUnit() != forceUnit {
			return nil, newError(Validation, fmt.Sprintf("pairwiseInteractions[%d]: ForceUnit %v does not match system ForceUnit %v", k, inter.ForceUnit(), forceUnit))
		}
		if inter.EnergyUnit() != energyUnit {
			return nil, newError(Validation, fmt.Sprintf("pairwiseInteractions[%d]: EnergyUnit %v does not match system EnergyUnit %v", k, inter.EnergyUnit(), energyUnit))
		}
	}

	return &System{
		Atoms:      atoms,
		Coords:     coords,
		Velocities: velocities,
		Box:        box,
		Dim:        dim,
		Pairwise:   pairwiseInteractions,
		Specific:   specificInteractions,
		Finder:     finder,
		ForceUnit:  forceUnit,
		EnergyUnit: energyUnit,
	}, nil
}

// SetExclusions installs the permanent nonbonded exclusion matrix and the
// 1-4 marker matrix (typically produced by neighbor.Exclusions from this
// System's bonded topology). Passing nil for either clears it, reverting
// to "every pair allowed, no pair is 1-4".
func (s *System) SetExclusions(nbMatrix, matrix14 [][]bool) {
	s.nbMatrix = nbMatrix
	s.matrix14 = matrix14
}

// Frame builds the read-only view of this System's state that a
// neighbor.Finder needs. It exists so the neighbor package never has to
// import md.
func (s *System) Frame() neighbor.Frame {
	return neighbor.Frame{
		Coords:   s.Coords,
		Box:      s.Box,
		Dim:      s.Dim,
		NBMatrix: s.nbMatrix,
		Matrix14: s.matrix14,
	}
}

// AtomParams returns atom i's intrinsic parameters in the shape the
// pairwise package expects.
func (s *System) AtomParams(i int) pairwise.AtomParams {
	a := s.Atoms[i]
	return pairwise.AtomParams{
		Mass:    a.Mass,
		Charge:  a.Charge,
		Sigma:   a.Sigma,
		Epsilon: a.Epsilon,
		Solute:  a.Solute,
	}
}

// KineticEnergy returns ½Σmᵢvᵢ², in EnergyUnit.
func (s *System) KineticEnergy() float64 {
	var ke float64
	for i, v := range s.Velocities {
		ke += 0.5 * s.Atoms[i].Mass * geom.Norm2(v)
	}
	return ke
}

// Temperature returns the instantaneous temperature implied by the
// current velocities via the equipartition theorem: KE = ½·Ndf·kB·T,
// with Ndf = Dim·N (no constraint removal — bond/angle constraints are
// out of scope).
func (s *System) Temperature(kB float64) float64 {
	ndf := float64(s.Dim * len(s.Atoms))
	if ndf == 0 {
		return 0
	}
	return 2 * s.KineticEnergy() / (ndf * kB)
}

// RandomVelocities draws a fresh Maxwell-Boltzmann velocity for every
// atom at temperature t: each Cartesian component is Normal(0,
// sqrt(kB*T/m)), the standard way to seed or rethermalize a system
// (and the distribution an Andersen collision redraws from).
func RandomVelocities(sys *System, t, kB float64, src rand.Source) {
	for i, a := range sys.Atoms {
		if a.Mass <= 0 {
			sys.Velocities[i] = geom.Zero
			continue
		}
		sigma := math.Sqrt(kB * t / a.Mass)
		dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
		x := dist.Rand()
		y := dist.Rand()
		z := 0.0
		if sys.Dim == 3 {
			z = dist.Rand()
		}
		sys.Velocities[i] = geom.New(x, y, z)
	}
}
