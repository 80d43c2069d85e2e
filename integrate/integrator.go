/*
 * integrator.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package integrate implements the symplectic time-stepping schemes
// (velocity-Verlet, leapfrog Verlet, Størmer-Verlet, Langevin BAOAB),
// the Andersen thermostat, a steepest-descent minimizer, and the
// Simulate driver loop that ties an Integrator to a System's neighbor
// list and loggers. Every Step method follows the same scratch-buffer
// shape as san-kum-dynsim's integrators package: advance state in place,
// keep whatever history the scheme needs (previous acceleration,
// previous position) in the receiver rather than recomputed each call.
package integrate

import (
	"math"

	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/mdlog"
	"github.com/rmera/mdforce/neighbor"
	"github.com/rmera/mdforce/pipeline"
)

// Integrator advances sys by dt, using neighbors for the force
// evaluation, and reports any numerical failure.
type Integrator interface {
	Step(sys *md.System, neighbors *neighbor.List, dt float64) error
}

func accelerations(sys *md.System, forces []geom.Vec) []geom.Vec {
	acc := make([]geom.Vec, len(forces))
	for i, f := range forces {
		m := sys.Atoms[i].Mass
		if m == 0 {
			continue
		}
		acc[i] = geom.Scale(1/m, f)
	}
	return acc
}

func checkNumerical(sys *md.System) error {
	bad := func(v geom.Vec) bool {
		return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) ||
			math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
	}
	for i, c := range sys.Coords {
		if bad(c) {
			return newError(md.Numerical, "non-finite coordinate at atom index %d", i)
		}
	}
	for i, v := range sys.Velocities {
		if bad(v) {
			return newError(md.Numerical, "non-finite velocity at atom index %d", i)
		}
	}
	return nil
}

// Simulate runs nSteps of dt each, refreshing the neighbor list through
// sys.Finder before every integrator step, applying thermostat (if
// non-nil) after every integrator step, and sampling every logger whose
// period divides the step index. It returns the first numerical or
// logger error encountered, aborting the run rather than continuing
// past a NaN/Inf blowup or a failed logger sink.
func Simulate(sys *md.System, stepper Integrator, nSteps int, dt float64, thermostat *AndersenThermostat, loggers []mdlog.Logger) error {
	var neighbors *neighbor.List
	for step := 0; step < nSteps; step++ {
		neighbors = sys.Finder.FindNeighbors(sys.Frame(), neighbors, step, true)

		if err := stepper.Step(sys, neighbors, dt); err != nil {
			return err
		}
		if thermostat != nil {
			thermostat.Apply(sys, dt)
		}
		if err := checkNumerical(sys); err != nil {
			return err
		}
		for _, l := range loggers {
			if l.Period() > 0 && step%l.Period() == 0 {
				if err := l.Sample(step, sys, neighbors); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// forcesOn is a small indirection so tests can stub out pipeline.ForcesAndEnergy.
var forcesOn = pipeline.ForcesAndEnergy
