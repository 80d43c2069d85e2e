package pairwise

import (
	"math"

	"github.com/rmera/mdforce/cutoff"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/units"
)

// Coulomb is plain (unscreened) electrostatics: U = k·q_i q_j/r,
// F/r = k·q_i q_j/r³, k = units.CoulombConstant. Unlike the LJ family the
// short-circuit is on zero charge, not zero σ/ϵ, which this kernel
// never reads.
type Coulomb struct {
	Cutoff          cutoff.Policy
	Weight14        float64
	SkipShortcut    bool
	Force_, Energy_ units.Unit
}

func (c Coulomb) kernel(qq float64) func(float64) (float64, float64) {
	return func(r2 float64) (float64, float64) {
		r := math.Sqrt(r2)
		u := units.CoulombConstant * qq / r
		fDivR := units.CoulombConstant * qq / (r2 * r)
		return fDivR, u
	}
}

func (c Coulomb) evaluate(dr geom.Vec, i, j AtomParams, is14 bool) (float64, float64) {
	qq := i.Charge * j.Charge
	if !c.SkipShortcut && qq == 0 {
		return 0, 0
	}
	r2 := geom.Norm2(dr)
	fDivR, u := c.Cutoff.Apply(r2, c.kernel(qq))
	if is14 {
		w := weightOr1(c.Weight14)
		fDivR *= w
		u *= w
	}
	return fDivR, u
}

func (c Coulomb) Force(dr geom.Vec, i, j AtomParams, is14 bool) geom.Vec {
	fDivR, _ := c.evaluate(dr, i, j, is14)
	return vecFromForceDivR(dr, fDivR)
}

func (c Coulomb) PotentialEnergy(dr geom.Vec, i, j AtomParams, is14 bool) float64 {
	_, u := c.evaluate(dr, i, j, is14)
	return u
}

func (c Coulomb) NLOnly() bool          { return true }
func (c Coulomb) ForceUnit() units.Unit  { return c.Force_ }
func (c Coulomb) EnergyUnit() units.Unit { return c.Energy_ }
