package integrate

import (
	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/neighbor"
)

// SteepestDescent is the energy minimizer: move every atom along
// its force direction by a step scaled to StepSize, halving StepSize
// whenever a move raises the potential energy (a basic backtracking
// line search) so the scheme converges even from a poor starting
// geometry.
type SteepestDescent struct {
	StepSize   float64 // initial displacement per unit force
	MaxStep    float64 // cap on any single atom's displacement per step
	lastEnergy float64
	hasLast    bool
}

func (s *SteepestDescent) Step(sys *md.System, neighbors *neighbor.List, dt float64) error {
	forces, energy := forcesOn(sys, neighbors)

	if s.hasLast && energy > s.lastEnergy {
		s.StepSize *= 0.5
	}
	s.lastEnergy = energy
	s.hasLast = true

	for i, f := range forces {
		step := geom.Scale(s.StepSize, f)
		if s.MaxStep > 0 {
			if n := geom.Norm(step); n > s.MaxStep {
				step = geom.Scale(s.MaxStep/n, step)
			}
		}
		sys.Coords[i] = geom.Add(sys.Coords[i], step)
	}
	return nil
}
