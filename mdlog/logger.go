/*
 * logger.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package mdlog implements the observer loggers: periodic sampling
// hooks a Simulate loop calls into, for recording temperature, energies,
// trajectories (as periodic-boundary-wrapped PDB frames, optionally
// gzip-compressed) and time-series plots.
package mdlog

import (
	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/neighbor"
)

// Logger is the common contract every sink implements: Period reports
// how many integrator steps elapse between samples (Simulate calls
// Sample when step%Period()==0); a Period of 0 or less means "never
// sample".
type Logger interface {
	Period() int
	Sample(step int, sys *md.System, neighbors *neighbor.List) error
}

// Series is an in-memory logger that appends one scalar per sample,
// computed by extract from the System. It backs the loggers returned by
// NewTemperatureLogger, NewKineticEnergyLogger, NewPotentialEnergyLogger
// and NewTotalEnergyLogger, all of which only differ in which scalar
// extract computes.
type Series struct {
	period  int
	extract func(sys *md.System, neighbors *neighbor.List) (float64, error)

	Steps  []int
	Values []float64
}

func (s *Series) Period() int { return s.period }

func (s *Series) Sample(step int, sys *md.System, neighbors *neighbor.List) error {
	v, err := s.extract(sys, neighbors)
	if err != nil {
		return err
	}
	s.Steps = append(s.Steps, step)
	s.Values = append(s.Values, v)
	return nil
}
