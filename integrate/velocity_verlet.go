package integrate

import (
	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/neighbor"
)

// VelocityVerlet is the standard symplectic scheme: positions and
// velocities are both defined at every step, half-kick/drift/half-kick,
// reusing the acceleration computed at the end of the previous step
// instead of recomputing it at the start of this one.
type VelocityVerlet struct {
	prevAcc []geom.Vec
}

func (vv *VelocityVerlet) Step(sys *md.System, neighbors *neighbor.List, dt float64) error {
	n := len(sys.Atoms)
	if len(vv.prevAcc) != n {
		forces, _ := forcesOn(sys, neighbors)
		vv.prevAcc = accelerations(sys, forces)
	}

	for i := range sys.Coords {
		halfKick := geom.Scale(0.5*dt, vv.prevAcc[i])
		v := geom.Add(sys.Velocities[i], halfKick)
		sys.Coords[i] = geom.Add(sys.Coords[i], geom.Scale(dt, v))
	}

	forces, _ := forcesOn(sys, neighbors)
	newAcc := accelerations(sys, forces)

	for i := range sys.Velocities {
		sys.Velocities[i] = geom.Add(sys.Velocities[i], geom.Scale(0.5*dt, geom.Add(vv.prevAcc[i], newAcc[i])))
	}

	vv.prevAcc = newAcc
	return nil
}
