package pairwise

import (
	"math"

	"github.com/rmera/mdforce/cutoff"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/units"
)

// GravitationalConstant is G in nm³·u⁻¹·ps⁻² when used with mdforce's
// default unit set; callers in a different unit system should not use
// this constant directly.
const GravitationalConstant = 8.6534e-20

// Gravity is Newtonian gravity between massive atoms:
// U = −G m_i m_j/r, F/r = −G m_i m_j/r³. It is declared all-pairs (not
// NLOnly) since, unlike the other kernels here, it typically has no
// cutoff and every pair contributes.
type Gravity struct {
	G               float64 // 0 defaults to GravitationalConstant
	Cutoff          cutoff.Policy // nil defaults to cutoff.None{}
	Force_, Energy_ units.Unit
}

func (g Gravity) gConst() float64 {
	if g.G == 0 {
		return GravitationalConstant
	}
	return g.G
}

func (g Gravity) cutoffPolicy() cutoff.Policy {
	if g.Cutoff == nil {
		return cutoff.None{}
	}
	return g.Cutoff
}

func (g Gravity) kernel(mm float64) func(float64) (float64, float64) {
	return func(r2 float64) (float64, float64) {
		r := math.Sqrt(r2)
		gConst := g.gConst()
		u := -gConst * mm / r
		fDivR := -gConst * mm / (r2 * r)
		return fDivR, u
	}
}

func (g Gravity) evaluate(dr geom.Vec, i, j AtomParams, is14 bool) (float64, float64) {
	mm := i.Mass * j.Mass
	if mm == 0 {
		return 0, 0
	}
	r2 := geom.Norm2(dr)
	return g.cutoffPolicy().Apply(r2, g.kernel(mm))
}

func (g Gravity) Force(dr geom.Vec, i, j AtomParams, is14 bool) geom.Vec {
	fDivR, _ := g.evaluate(dr, i, j, is14)
	return vecFromForceDivR(dr, fDivR)
}

func (g Gravity) PotentialEnergy(dr geom.Vec, i, j AtomParams, is14 bool) float64 {
	_, u := g.evaluate(dr, i, j, is14)
	return u
}

func (g Gravity) NLOnly() bool          { return false }
func (g Gravity) ForceUnit() units.Unit  { return g.Force_ }
func (g Gravity) EnergyUnit() units.Unit { return g.Energy_ }
