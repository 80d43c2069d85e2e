package mdlog

import (
	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/neighbor"
	"github.com/rmera/mdforce/pipeline"
	"github.com/rmera/mdforce/units"
)

// NewTemperatureLogger samples the instantaneous temperature every
// period steps, via the equipartition estimate (md.System.Temperature).
func NewTemperatureLogger(period int) *Series {
	return &Series{period: period, extract: func(sys *md.System, _ *neighbor.List) (float64, error) {
		return sys.Temperature(units.BoltzmannConstant), nil
	}}
}

// NewKineticEnergyLogger samples ½Σmv² every period steps.
func NewKineticEnergyLogger(period int) *Series {
	return &Series{period: period, extract: func(sys *md.System, _ *neighbor.List) (float64, error) {
		return sys.KineticEnergy(), nil
	}}
}

// NewPotentialEnergyLogger samples the total potential energy (every
// registered pairwise and specific interaction) every period steps.
func NewPotentialEnergyLogger(period int) *Series {
	return &Series{period: period, extract: func(sys *md.System, neighbors *neighbor.List) (float64, error) {
		return pipeline.PotentialEnergy(sys, neighbors), nil
	}}
}

// NewTotalEnergyLogger samples kinetic plus potential energy every
// period steps — the quantity a correct symplectic integrator should
// hold nearly constant.
func NewTotalEnergyLogger(period int) *Series {
	return &Series{period: period, extract: func(sys *md.System, neighbors *neighbor.List) (float64, error) {
		return sys.KineticEnergy() + pipeline.PotentialEnergy(sys, neighbors), nil
	}}
}

// CoordinateLogger snapshots every atom's position every period steps.
type CoordinateLogger struct {
	period int
	Frames [][]float64 // flattened x,y,z per atom, one slice per sample
}

func NewCoordinateLogger(period int) *CoordinateLogger {
	return &CoordinateLogger{period: period}
}

func (c *CoordinateLogger) Period() int { return c.period }

func (c *CoordinateLogger) Sample(step int, sys *md.System, neighbors *neighbor.List) error {
	flat := make([]float64, 0, 3*len(sys.Coords))
	for _, v := range sys.Coords {
		flat = append(flat, v.X, v.Y, v.Z)
	}
	c.Frames = append(c.Frames, flat)
	return nil
}

// VelocityLogger snapshots every atom's velocity every period steps.
type VelocityLogger struct {
	period int
	Frames [][]float64
}

func NewVelocityLogger(period int) *VelocityLogger {
	return &VelocityLogger{period: period}
}

func (v *VelocityLogger) Period() int { return v.period }

func (v *VelocityLogger) Sample(step int, sys *md.System, neighbors *neighbor.List) error {
	flat := make([]float64, 0, 3*len(sys.Velocities))
	for _, vel := range sys.Velocities {
		flat = append(flat, vel.X, vel.Y, vel.Z)
	}
	v.Frames = append(v.Frames, flat)
	return nil
}
