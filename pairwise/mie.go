package pairwise

import (
	"fmt"
	"math"

	"github.com/rmera/mdforce/cutoff"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/units"
)

// Mie generalizes LJ to arbitrary repulsive/attractive exponents (m,n):
// U = C·ϵ·((σ/r)ⁿ − (σ/r)ᵐ), C = (n/(n−m))·(n/m)^(m/(n−m)),
// F/r = −C·ϵ/r² · (m·(σ/r)ᵐ − n·(σ/r)ⁿ).
//
// The open question of whether m>n should be accepted is resolved here by
// rejecting it: C's derivation assumes the repulsive exponent n exceeds
// the attractive exponent m, and is undefined (or wrong-signed) otherwise.
// Use NewMie rather than constructing Mie directly so this is enforced.
type Mie struct {
	M, N                float64
	C                   float64
	Cutoff              cutoff.Policy
	Mixing              MixingRule
	WeightSoluteSolvent float64
	Weight14            float64
	SkipShortcut        bool
	Force_, Energy_     units.Unit
}

// NewMie validates m<n and precomputes the prefactor C.
func NewMie(m, n float64, cut cutoff.Policy, mixing MixingRule) (Mie, error) {
	if m >= n {
		return Mie{}, fmt.Errorf("mdforce: pairwise: Mie requires m<n, got m=%v n=%v", m, n)
	}
	c := (n / (n - m)) * math.Pow(n/m, m/(n-m))
	return Mie{M: m, N: n, C: c, Cutoff: cut, Mixing: mixing}, nil
}

func (k Mie) kernel(sigma, epsilon float64) func(float64) (float64, float64) {
	return func(r2 float64) (float64, float64) {
		r := math.Sqrt(r2)
		sr := sigma / r
		srM := math.Pow(sr, k.M)
		srN := math.Pow(sr, k.N)
		u := k.C * epsilon * (srN - srM)
		fDivR := -k.C * epsilon / r2 * (k.M*srM - k.N*srN)
		return fDivR, u
	}
}

func (k Mie) evaluate(dr geom.Vec, i, j AtomParams, is14 bool) (float64, float64) {
	sigma, epsilon := mix(i, j, k.Mixing, weightOr1(k.WeightSoluteSolvent))
	if !k.SkipShortcut && (i.Sigma == 0 || j.Sigma == 0 || i.Epsilon == 0 || j.Epsilon == 0) {
		return 0, 0
	}
	r2 := geom.Norm2(dr)
	fDivR, u := k.Cutoff.Apply(r2, k.kernel(sigma, epsilon))
	if is14 {
		w := weightOr1(k.Weight14)
		fDivR *= w
		u *= w
	}
	return fDivR, u
}

func (k Mie) Force(dr geom.Vec, i, j AtomParams, is14 bool) geom.Vec {
	fDivR, _ := k.evaluate(dr, i, j, is14)
	return vecFromForceDivR(dr, fDivR)
}

func (k Mie) PotentialEnergy(dr geom.Vec, i, j AtomParams, is14 bool) float64 {
	_, u := k.evaluate(dr, i, j, is14)
	return u
}

func (k Mie) NLOnly() bool          { return true }
func (k Mie) ForceUnit() units.Unit  { return k.Force_ }
func (k Mie) EnergyUnit() units.Unit { return k.Energy_ }
