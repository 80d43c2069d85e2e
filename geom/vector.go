/*
 * vector.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 */

// Package geom provides fixed-width vector algebra and periodic-boundary
// helpers shared by every other package in mdforce. Vectors are always
// 3-wide; callers working in 2D simply never populate or read the Z
// component (see Dim on md.System).
package geom

import "gonum.org/v1/gonum/spatial/r3"

// Vec is a point or displacement in up to 3 dimensions. It is exactly
// gonum's r3.Vec: there is no reason to reinvent fixed-width 3-vector
// algebra when the ecosystem already ships it.
type Vec = r3.Vec

// New builds a Vec from components. For 2D systems, z should be 0.
func New(x, y, z float64) Vec { return Vec{X: x, Y: y, Z: z} }

func Add(a, b Vec) Vec { return r3.Add(a, b) }
func Sub(a, b Vec) Vec { return r3.Sub(a, b) }
func Scale(s float64, a Vec) Vec { return r3.Scale(s, a) }
func Dot(a, b Vec) float64 { return r3.Dot(a, b) }
func Cross(a, b Vec) Vec { return r3.Cross(a, b) }

// Norm2 returns the squared Euclidean length. Kept distinct from Norm so
// hot paths (cutoff tests) can avoid the square root.
func Norm2(a Vec) float64 { return a.X*a.X + a.Y*a.Y + a.Z*a.Z }

func Norm(a Vec) float64 { return r3.Norm(a) }

// Zero is the additive identity, spelled out for readability at call sites.
var Zero = Vec{}
