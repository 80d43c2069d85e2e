package pairwise

import (
	"math"

	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/units"
)

// CoulombReactionField adds a reaction-field correction that models the
// continuum dielectric beyond r_c: inside the cutoff,
// U = k·q_i q_j·(1/r + k_rf·r² − c_rf), F/r = k·q_i q_j·(1/r³ − 2·k_rf).
//
// k_rf and c_rf are derived from the cutoff radius r_c and the assumed
// dielectric constant beyond it, EpsilonRF (0 means an infinite/conducting
// boundary, the common default):
//
//	k_rf = (EpsilonRF − 1) / ((2·EpsilonRF + 1)·r_c³)   [EpsilonRF==0 -> 1/(2r_c³)]
//	c_rf = 1/r_c + k_rf·r_c²
//
// which is exactly what makes U(r_c) vanish.
//
// An excluded pair never reaches this kernel at all (the pipeline skips
// it before calling Force or PotentialEnergy), so the question of a
// reaction-field self-term on an excluded-but-in-cutoff pair does not
// arise here.
type CoulombReactionField struct {
	RC, EpsilonRF       float64
	kRF, cRF            float64
	Weight14            float64
	SkipShortcut        bool
	Force_, Energy_     units.Unit
}

func NewCoulombReactionField(rc, epsilonRF float64) CoulombReactionField {
	var kRF float64
	if epsilonRF == 0 {
		kRF = 1 / (2 * rc * rc * rc)
	} else {
		kRF = (epsilonRF - 1) / ((2*epsilonRF + 1) * rc * rc * rc)
	}
	cRF := 1/rc + kRF*rc*rc
	return CoulombReactionField{RC: rc, EpsilonRF: epsilonRF, kRF: kRF, cRF: cRF}
}

func (c CoulombReactionField) evaluate(dr geom.Vec, i, j AtomParams, is14 bool) (float64, float64) {
	qq := i.Charge * j.Charge
	if !c.SkipShortcut && qq == 0 {
		return 0, 0
	}
	r2 := geom.Norm2(dr)
	rc2 := c.RC * c.RC
	if r2 >= rc2 {
		return 0, 0
	}
	r := math.Sqrt(r2)
	u := units.CoulombConstant * qq * (1/r + c.kRF*r2 - c.cRF)
	fDivR := units.CoulombConstant * qq * (1/(r2*r) - 2*c.kRF)
	if is14 {
		w := weightOr1(c.Weight14)
		fDivR *= w
		u *= w
	}
	return fDivR, u
}

func (c CoulombReactionField) Force(dr geom.Vec, i, j AtomParams, is14 bool) geom.Vec {
	fDivR, _ := c.evaluate(dr, i, j, is14)
	return vecFromForceDivR(dr, fDivR)
}

func (c CoulombReactionField) PotentialEnergy(dr geom.Vec, i, j AtomParams, is14 bool) float64 {
	_, u := c.evaluate(dr, i, j, is14)
	return u
}

func (c CoulombReactionField) NLOnly() bool          { return true }
func (c CoulombReactionField) ForceUnit() units.Unit  { return c.Force_ }
func (c CoulombReactionField) EnergyUnit() units.Unit { return c.Energy_ }
