package pairwise

import (
	"math"

	"github.com/rmera/mdforce/cutoff"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/units"
)

// LJSoftCore is the soft-core variant of LJ used to avoid the r=0
// singularity during alchemical decoupling: r is replaced by
// r_sc = (r⁶ + ασ⁶λᵖ)^(1/6) inside the usual 12-6 kernel, and the
// resulting force picks up an extra (r/r_sc)⁵ factor from the chain
// rule. Lambda=0 recovers the ordinary LJ interaction.
type LJSoftCore struct {
	Cutoff              cutoff.Policy
	Mixing              MixingRule
	Alpha               float64
	Lambda              float64
	P                   float64
	WeightSoluteSolvent float64
	Weight14            float64
	SkipShortcut        bool
	Force_, Energy_     units.Unit
}

func (l LJSoftCore) evaluate(dr geom.Vec, i, j AtomParams, is14 bool) (fDivR, u float64) {
	sigma, epsilon := mix(i, j, l.Mixing, weightOr1(l.WeightSoluteSolvent))
	if !l.SkipShortcut && (i.Sigma == 0 || j.Sigma == 0 || i.Epsilon == 0 || j.Epsilon == 0) {
		return 0, 0
	}
	r2 := geom.Norm2(dr)
	r := math.Sqrt(r2)
	sigma6 := math.Pow(sigma, 6)
	rsc6 := math.Pow(r, 6) + l.Alpha*sigma6*math.Pow(l.Lambda, l.P)
	rsc2 := math.Pow(rsc6, 1.0/3.0)

	sr6 := sigma6 / rsc6
	sr12 := sr6 * sr6
	u = 4 * epsilon * (sr12 - sr6)
	fDivRsc := 24 * epsilon / rsc2 * (2*sr12 - sr6)

	rsc := math.Sqrt(rsc2)
	// F = fDivRsc*r_sc*(r/r_sc)^5 (the chain-rule correction); converting
	// to F/r for the caller's dr-scaling gives fDivRsc*(r/r_sc)^4.
	ratio := r / rsc
	fDivR = fDivRsc * ratio * ratio * ratio * ratio

	if is14 {
		w := weightOr1(l.Weight14)
		fDivR *= w
		u *= w
	}
	// the cutoff still gates on the true (un-softened) distance.
	if r2 >= l.Cutoff.SquaredCutoff() {
		return 0, 0
	}
	return fDivR, u
}

func (l LJSoftCore) Force(dr geom.Vec, i, j AtomParams, is14 bool) geom.Vec {
	fDivR, _ := l.evaluate(dr, i, j, is14)
	return vecFromForceDivR(dr, fDivR)
}

func (l LJSoftCore) PotentialEnergy(dr geom.Vec, i, j AtomParams, is14 bool) float64 {
	_, u := l.evaluate(dr, i, j, is14)
	return u
}

func (l LJSoftCore) NLOnly() bool          { return true }
func (l LJSoftCore) ForceUnit() units.Unit  { return l.Force_ }
func (l LJSoftCore) EnergyUnit() units.Unit { return l.Energy_ }
