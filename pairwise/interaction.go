/*
 * interaction.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package pairwise implements the non-bonded interaction kernels:
// Lennard-Jones, LJ soft-core, soft-sphere, Mie, Coulomb, Coulomb
// reaction-field and gravity. Every kernel is a pure function of
// (displacement, atom params, cutoff policy) so the same code compiles
// for a CPU-SIMD or GPU pair loop.
package pairwise

import (
	"math"

	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/units"
)

// AtomParams is the subset of an atom's intrinsic parameters a pairwise
// kernel needs. It is declared independently of the root md.Atom type
// (rather than importing md) so this package stays a leaf: md.System
// builds AtomParams from its own Atom slice when it calls into pairwise.
type AtomParams struct {
	Mass    float64
	Charge  float64
	Sigma   float64
	Epsilon float64
	Solute  bool
}

// Interaction is the common contract every pairwise kernel in this
// package implements: a pair (i,j) with minimum-image displacement dr
// (pointing from j to i) produces a force on i (the force on j is its
// negation) and a pairwise potential energy,
// both zero when cut off, both short-circuited to zero when either atom
// carries a zero σ or ϵ (for LJ-family kernels), and both scaled by a
// 1-4 weight when is14 is set and the kernel defines one.
type Interaction interface {
	// Force returns the force on atom i.
	Force(dr geom.Vec, i, j AtomParams, is14 bool) geom.Vec
	// PotentialEnergy returns the pairwise energy; callers sum over i<j
	// exactly once so it is never double-counted.
	PotentialEnergy(dr geom.Vec, i, j AtomParams, is14 bool) float64
	// NLOnly reports whether this interaction should be evaluated only
	// over the neighbor list (true) or over all i<j pairs (false).
	NLOnly() bool
	ForceUnit() units.Unit
	EnergyUnit() units.Unit
}

// MixingRule selects how σ is combined across unlike atom pairs; ϵ is
// always combined as the geometric mean.
type MixingRule uint8

const (
	// Lorentz combines σ as the arithmetic mean (σ_i+σ_j)/2.
	Lorentz MixingRule = iota
	// Geometric combines σ as √(σ_i σ_j).
	Geometric
)

// mix returns the combined σ and ϵ for a pair, applying
// weightSoluteSolvent to ϵ when exactly one atom is flagged Solute.
func mix(i, j AtomParams, rule MixingRule, weightSoluteSolvent float64) (sigma, epsilon float64) {
	switch rule {
	case Geometric:
		sigma = math.Sqrt(i.Sigma * j.Sigma)
	default:
		sigma = 0.5 * (i.Sigma + j.Sigma)
	}
	epsilon = math.Sqrt(i.Epsilon * j.Epsilon)
	if i.Solute != j.Solute {
		epsilon *= weightSoluteSolvent
	}
	return sigma, epsilon
}

// vecFromForceDivR scales dr by forceDivR to obtain the force vector:
// since dr already has magnitude r, dr*forceDivR = (F/r)*r*r̂ = F*r̂.
func vecFromForceDivR(dr geom.Vec, forceDivR float64) geom.Vec {
	return geom.Scale(forceDivR, dr)
}
