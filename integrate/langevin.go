package integrate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/neighbor"
	"github.com/rmera/mdforce/units"
)

// Langevin is the BAOAB splitting for Langevin dynamics: a half
// velocity kick (B), a half position drift (A), an Ornstein-Uhlenbeck
// friction-and-noise update (O), another half drift (A), then another
// half kick (B). BAOAB samples the canonical distribution to higher
// accuracy than naive Euler-Maruyama at the same step size, which is why
// it's preferred over a literal discretization of the
// Langevin SDE.
type Langevin struct {
	Gamma       float64 // friction coefficient, 1/ps
	Temperature float64 // K
	Src         rand.Source
}

func (l *Langevin) Step(sys *md.System, neighbors *neighbor.List, dt float64) error {
	forces, _ := forcesOn(sys, neighbors)
	acc := accelerations(sys, forces)
	half := 0.5 * dt

	// B: half kick.
	for i := range sys.Velocities {
		sys.Velocities[i] = geom.Add(sys.Velocities[i], geom.Scale(half, acc[i]))
	}
	// A: half drift.
	for i := range sys.Coords {
		sys.Coords[i] = geom.Add(sys.Coords[i], geom.Scale(half, sys.Velocities[i]))
	}
	// O: Ornstein-Uhlenbeck friction and noise, per atom.
	c1 := math.Exp(-l.Gamma * dt)
	for i, a := range sys.Atoms {
		if a.Mass <= 0 {
			continue
		}
		c2 := math.Sqrt((1 - c1*c1) * units.BoltzmannConstant * l.Temperature / a.Mass)
		noise := geom.New(l.noise(), l.noise(), 0)
		if sys.Dim == 3 {
			noise.Z = l.noise()
		}
		sys.Velocities[i] = geom.Add(geom.Scale(c1, sys.Velocities[i]), geom.Scale(c2, noise))
	}
	// A: half drift.
	for i := range sys.Coords {
		sys.Coords[i] = geom.Add(sys.Coords[i], geom.Scale(half, sys.Velocities[i]))
	}
	// B: half kick, with forces recomputed at the new positions.
	forces, _ = forcesOn(sys, neighbors)
	acc = accelerations(sys, forces)
	for i := range sys.Velocities {
		sys.Velocities[i] = geom.Add(sys.Velocities[i], geom.Scale(half, acc[i]))
	}
	return nil
}

func (l *Langevin) noise() float64 {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: l.Src}.Rand()
}
