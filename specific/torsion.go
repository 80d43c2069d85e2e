package specific

import (
	"math"

	"github.com/rmera/mdforce/geom"
)

// Torsion is a single cosine-series term in a (possibly multi-term)
// torsion potential: U = k(1 + cos(n·φ − φ0)). Both proper and improper
// torsions use this same functional form; what differs is only
// the index tuple they're evaluated over and, typically, which n the
// caller picks (impropers are conventionally n=2, out-of-plane terms).
type Torsion struct {
	Phi0, K, N float64
}

// ProperTorsionList and ImproperTorsionList are both k=4
// SpecificInteractionLists, sharing an evaluation routine (torsionForces)
// since a dihedral's geometry doesn't care which semantic role it plays.
type ProperTorsionList struct {
	I, J, K, L []int
	Params     []Torsion
}

func (t *ProperTorsionList) Len() int   { return len(t.I) }
func (t *ProperTorsionList) Arity() int { return 4 }
func (t *ProperTorsionList) Evaluate(coords []geom.Vec, box geom.Vec, dim int, forces []geom.Vec) float64 {
	return torsionForces(t.I, t.J, t.K, t.L, t.Params, coords, box, dim, forces)
}

type ImproperTorsionList struct {
	I, J, K, L []int
	Params     []Torsion
}

func (t *ImproperTorsionList) Len() int   { return len(t.I) }
func (t *ImproperTorsionList) Arity() int { return 4 }
func (t *ImproperTorsionList) Evaluate(coords []geom.Vec, box geom.Vec, dim int, forces []geom.Vec) float64 {
	return torsionForces(t.I, t.J, t.K, t.L, t.Params, coords, box, dim, forces)
}

// torsionForces evaluates U=k(1+cos(nφ-φ0)) over the dihedral (i,j,k,l)
// and scatters its analytical gradient into forces, using Bekker's
// formulation: the dihedral angle and its per-atom gradient are both
// built from the cross products
//
//	m = b1×b2, n = b2×b3    where b1=rj-ri, b2=rk-rj, b3=rl-rk
//
// which avoids ever differentiating through acos/atan2 directly. This is
// the standard torsion force routine used by essentially every atomistic
// MD engine (GROMACS calls its implementation do_dih_fup).
func torsionForces(idxI, idxJ, idxK, idxL []int, params []Torsion, coords []geom.Vec, box geom.Vec, dim int, forces []geom.Vec) float64 {
	var energy float64
	for n := range idxI {
		i, j, k, l := idxI[n], idxJ[n], idxK[n], idxL[n]
		p := params[n]

		b1 := geom.Displacement(coords[j], coords[i], box, dim)
		b2 := geom.Displacement(coords[k], coords[j], box, dim)
		b3 := geom.Displacement(coords[l], coords[k], box, dim)

		m := geom.Cross(b1, b2)
		nvec := geom.Cross(b2, b3)
		mLen2 := geom.Norm2(m)
		nLen2 := geom.Norm2(nvec)
		b2Len := geom.Norm(b2)
		if mLen2 < 1e-12 || nLen2 < 1e-12 || b2Len < 1e-8 {
			continue // degenerate (near-collinear) dihedral
		}

		// robust signed dihedral angle via atan2, avoiding the acos
		// branch-cut instability near φ=0 or π.
		y := geom.Dot(geom.Scale(1/b2Len, b2), geom.Cross(m, nvec))
		x := geom.Dot(m, nvec)
		phi := math.Atan2(y, x)

		arg := p.N*phi - p.Phi0
		energy += p.K * (1 + math.Cos(arg))
		dVdPhi := -p.K * p.N * math.Sin(arg)

		// F_i = -dV/dphi * |b2|/|m|^2 * m
		// F_l =  dV/dphi * |b2|/|n|^2 * n
		fi := geom.Scale(-dVdPhi*b2Len/mLen2, m)
		fl := geom.Scale(dVdPhi*b2Len/nLen2, nvec)

		b1b2 := geom.Dot(b1, b2) / (b2Len * b2Len)
		b3b2 := geom.Dot(b3, b2) / (b2Len * b2Len)
		svec := geom.Sub(geom.Scale(b1b2, fi), geom.Scale(b3b2, fl))

		fj := geom.Add(geom.Scale(-1, fi), svec)
		fk := geom.Sub(geom.Scale(-1, fl), svec)

		forces[i] = geom.Add(forces[i], fi)
		forces[j] = geom.Add(forces[j], fj)
		forces[k] = geom.Add(forces[k], fk)
		forces[l] = geom.Add(forces[l], fl)
	}
	return energy
}
