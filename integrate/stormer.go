package integrate

import (
	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/neighbor"
)

// StormerVerlet is the original position-only Verlet scheme:
// x(t+dt) = 2x(t) − x(t−dt) + a(t)dt². It never needs velocities for its
// own recursion; sys.Velocities is updated only for reporting, via the
// central difference (x(t+dt) − x(t−dt))/(2dt), one step behind the true
// instantaneous velocity.
type StormerVerlet struct {
	prev []geom.Vec // x(t-dt); nil on the first call
}

func (s *StormerVerlet) Step(sys *md.System, neighbors *neighbor.List, dt float64) error {
	forces, _ := forcesOn(sys, neighbors)
	acc := accelerations(sys, forces)
	dt2 := dt * dt

	if s.prev == nil {
		// No x(t-dt) yet: bootstrap it from the current position and
		// velocity via a first-order backward estimate, the same
		// bootstrap san-kum-dynsim's Leapfrog performs implicitly by
		// taking the caller's initial velocity at face value.
		s.prev = make([]geom.Vec, len(sys.Coords))
		for i, c := range sys.Coords {
			s.prev[i] = geom.Sub(c, geom.Scale(dt, sys.Velocities[i]))
		}
	}

	next := make([]geom.Vec, len(sys.Coords))
	for i, c := range sys.Coords {
		next[i] = geom.Add(geom.Sub(geom.Scale(2, c), s.prev[i]), geom.Scale(dt2, acc[i]))
		sys.Velocities[i] = geom.Scale(1/(2*dt), geom.Sub(next[i], s.prev[i]))
	}

	s.prev = sys.Coords
	sys.Coords = next
	return nil
}
