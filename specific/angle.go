package specific

import (
	"math"

	"github.com/rmera/mdforce/geom"
)

// HarmonicAngle is U = ½k_θ(θ−θ0)², on the triple (i,j,k) with vertex j.
type HarmonicAngle struct {
	Theta0, Ktheta float64
}

// AngleList is a k=3 SpecificInteractionList.
type AngleList struct {
	I, J, K []int
	Params  []HarmonicAngle
}

func (a *AngleList) Len() int   { return len(a.I) }
func (a *AngleList) Arity() int { return 3 }

func (a *AngleList) Evaluate(coords []geom.Vec, box geom.Vec, dim int, forces []geom.Vec) float64 {
	var energy float64
	for n := range a.I {
		i, j, k := a.I[n], a.J[n], a.K[n]
		p := a.Params[n]

		va := geom.Displacement(coords[i], coords[j], box, dim) // a = ri-rj
		vb := geom.Displacement(coords[k], coords[j], box, dim) // b = rk-rj
		ra := geom.Norm(va)
		rb := geom.Norm(vb)
		if ra == 0 || rb == 0 {
			continue
		}
		cosTheta := geom.Dot(va, vb) / (ra * rb)
		if cosTheta > 1 {
			cosTheta = 1
		} else if cosTheta < -1 {
			cosTheta = -1
		}
		theta := math.Acos(cosTheta)
		sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
		if sinTheta < 1e-8 {
			sinTheta = 1e-8 // avoid blowing up for (near-)linear angles
		}

		delta := theta - p.Theta0
		energy += 0.5 * p.Ktheta * delta * delta
		dVdTheta := p.Ktheta * delta
		coef := dVdTheta / sinTheta

		// dcosTheta/dri = b/(ra*rb) - cosTheta*a/ra^2
		dCosDi := geom.Sub(geom.Scale(1/(ra*rb), vb), geom.Scale(cosTheta/(ra*ra), va))
		// dcosTheta/drk = a/(ra*rb) - cosTheta*b/rb^2
		dCosDk := geom.Sub(geom.Scale(1/(ra*rb), va), geom.Scale(cosTheta/(rb*rb), vb))

		fi := geom.Scale(coef, dCosDi)
		fk := geom.Scale(coef, dCosDk)
		fj := geom.Scale(-1, geom.Add(fi, fk))

		forces[i] = geom.Add(forces[i], fi)
		forces[j] = geom.Add(forces[j], fj)
		forces[k] = geom.Add(forces[k], fk)
	}
	return energy
}
