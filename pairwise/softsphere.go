package pairwise

import (
	"github.com/rmera/mdforce/cutoff"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/units"
)

// SoftSphere is the purely-repulsive r⁻¹² term of LJ:
// U = 4ϵs¹², F/r = 48ϵ/r² · s¹².
type SoftSphere struct {
	Cutoff              cutoff.Policy
	Mixing              MixingRule
	WeightSoluteSolvent float64
	Weight14            float64
	SkipShortcut        bool
	Force_, Energy_     units.Unit
}

func (s SoftSphere) kernel(sigma2, epsilon float64) func(float64) (float64, float64) {
	return func(r2 float64) (float64, float64) {
		sr2 := sigma2 / r2
		sr6 := sr2 * sr2 * sr2
		sr12 := sr6 * sr6
		u := 4 * epsilon * sr12
		fDivR := 48 * epsilon / r2 * sr12
		return fDivR, u
	}
}

func (s SoftSphere) evaluate(dr geom.Vec, i, j AtomParams, is14 bool) (float64, float64) {
	sigma, epsilon := mix(i, j, s.Mixing, weightOr1(s.WeightSoluteSolvent))
	if !s.SkipShortcut && (i.Sigma == 0 || j.Sigma == 0 || i.Epsilon == 0 || j.Epsilon == 0) {
		return 0, 0
	}
	r2 := geom.Norm2(dr)
	fDivR, u := s.Cutoff.Apply(r2, s.kernel(sigma*sigma, epsilon))
	if is14 {
		w := weightOr1(s.Weight14)
		fDivR *= w
		u *= w
	}
	return fDivR, u
}

func (s SoftSphere) Force(dr geom.Vec, i, j AtomParams, is14 bool) geom.Vec {
	fDivR, _ := s.evaluate(dr, i, j, is14)
	return vecFromForceDivR(dr, fDivR)
}

func (s SoftSphere) PotentialEnergy(dr geom.Vec, i, j AtomParams, is14 bool) float64 {
	_, u := s.evaluate(dr, i, j, is14)
	return u
}

func (s SoftSphere) NLOnly() bool          { return true }
func (s SoftSphere) ForceUnit() units.Unit  { return s.Force_ }
func (s SoftSphere) EnergyUnit() units.Unit { return s.Energy_ }
