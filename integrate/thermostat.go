package integrate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/units"
)

// AndersenThermostat is the stochastic collision thermostat: at every
// step, every atom independently has probability nu*dt of
// colliding with the heat bath, which redraws its velocity from the
// Maxwell-Boltzmann distribution at Temperature. Unlike a velocity
// rescaling thermostat it doesn't conserve momentum exactly, which is
// the tradeoff for genuinely sampling the canonical ensemble.
type AndersenThermostat struct {
	CollisionFrequency float64 // nu, 1/ps
	Temperature        float64 // K
	Src                rand.Source
}

// Apply runs one round of collisions against sys, to be called once per
// integrator step with that step's dt.
func (a *AndersenThermostat) Apply(sys *md.System, dt float64) {
	prob := a.CollisionFrequency * dt
	u := rand.New(a.Src)
	for i, atom := range sys.Atoms {
		if atom.Mass <= 0 {
			continue
		}
		if u.Float64() >= prob {
			continue
		}
		sigma := math.Sqrt(units.BoltzmannConstant * a.Temperature / atom.Mass)
		dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: a.Src}
		x, y, z := dist.Rand(), dist.Rand(), 0.0
		if sys.Dim == 3 {
			z = dist.Rand()
		}
		sys.Velocities[i] = geom.New(x, y, z)
	}
}
