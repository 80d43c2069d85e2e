/*
 * analysis.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Package analysis implements the post-hoc trajectory measures used to
// validate a run: pairwise displacements and distances, radial
// distribution function, mean squared displacement and velocity
// autocorrelation. None of it runs during Simulate; it consumes the
// frames an mdlog.CoordinateLogger or mdlog.VelocityLogger already
// collected.
package analysis

import (
	"github.com/rmera/mdforce/geom"
)

// Displacements returns the minimum-image displacement vector of every
// atom i from reference[i] to frame[i].
func Displacements(reference, frame []geom.Vec, box geom.Vec, dim int) []geom.Vec {
	out := make([]geom.Vec, len(frame))
	for i := range frame {
		out[i] = geom.Displacement(frame[i], reference[i], box, dim)
	}
	return out
}

// Distances returns |displacement| for every atom, reusing Displacements.
func Distances(reference, frame []geom.Vec, box geom.Vec, dim int) []float64 {
	disp := Displacements(reference, frame, box, dim)
	out := make([]float64, len(disp))
	for i, d := range disp {
		out[i] = geom.Norm(d)
	}
	return out
}
