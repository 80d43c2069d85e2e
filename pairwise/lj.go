package pairwise

import (
	"github.com/rmera/mdforce/cutoff"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/units"
)

// LJ is the standard 12-6 Lennard-Jones interaction:
// U = 4ϵ(s¹² − s⁶), F/r = 24ϵ/r² · (2s¹² − s⁶), with s⁶ = (σ²/r²)³.
type LJ struct {
	Cutoff              cutoff.Policy
	Mixing              MixingRule
	WeightSoluteSolvent float64 // 1 disables the solute/solvent scaling
	Weight14            float64 // force/energy multiplier when is14; 1 disables it
	SkipShortcut        bool    // if true, never short-circuit on zero σ/ϵ
	Force_, Energy_     units.Unit
}

func (l LJ) kernel(sigma2, epsilon float64) func(r2 float64) (float64, float64) {
	return func(r2 float64) (float64, float64) {
		sr2 := sigma2 / r2
		sr6 := sr2 * sr2 * sr2
		sr12 := sr6 * sr6
		u := 4 * epsilon * (sr12 - sr6)
		fDivR := 24 * epsilon / r2 * (2*sr12 - sr6)
		return fDivR, u
	}
}

// LJKernel is the raw 12-6 kernel exposed for building a cutoff.Policy
// when every atom shares the same σ and ϵ: ShiftedPotential and
// ShiftedForce both sample their raw kernel once at construction, which
// is only exact when that one sample is representative of every pair the
// policy will see. CubicSpline takes no kernel at construction.
func LJKernel(sigma, epsilon float64) func(r2 float64) (float64, float64) {
	return LJ{}.kernel(sigma*sigma, epsilon)
}

func (l LJ) evaluate(dr geom.Vec, i, j AtomParams, is14 bool) (fDivR, u float64) {
	sigma, epsilon := mix(i, j, l.Mixing, weightOr1(l.WeightSoluteSolvent))
	if !l.SkipShortcut && (i.Sigma == 0 || j.Sigma == 0 || i.Epsilon == 0 || j.Epsilon == 0) {
		return 0, 0
	}
	r2 := geom.Norm2(dr)
	fDivR, u = l.Cutoff.Apply(r2, l.kernel(sigma*sigma, epsilon))
	if is14 {
		w := weightOr1(l.Weight14)
		fDivR *= w
		u *= w
	}
	return fDivR, u
}

func (l LJ) Force(dr geom.Vec, i, j AtomParams, is14 bool) geom.Vec {
	fDivR, _ := l.evaluate(dr, i, j, is14)
	return vecFromForceDivR(dr, fDivR)
}

func (l LJ) PotentialEnergy(dr geom.Vec, i, j AtomParams, is14 bool) float64 {
	_, u := l.evaluate(dr, i, j, is14)
	return u
}

func (l LJ) NLOnly() bool          { return true }
func (l LJ) ForceUnit() units.Unit  { return l.Force_ }
func (l LJ) EnergyUnit() units.Unit { return l.Energy_ }

func weightOr1(w float64) float64 {
	if w == 0 {
		return 1
	}
	return w
}
