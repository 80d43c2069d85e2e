package analysis

import "github.com/rmera/mdforce/geom"

// VACF computes the velocity autocorrelation function at every lag from
// a sequence of per-atom velocity frames, following kpotier/selfdiff's
// VAC.Perform: for every pair of frames (i, j>i), accumulate
// v(i)·v(j) into the bucket for lag j-i, then divide each bucket by the
// number of (atom, frame-pair) contributions that fell into it. VACF[0]
// is C(dt), not C(0); callers wanting the normalized C(t)/C(0) curve
// should divide by the zero-lag average velocity-squared themselves
// (kpotier/selfdiff reports that separately as ResDiv).
func VACF(frames [][]geom.Vec) []float64 {
	nFrames := len(frames)
	if nFrames < 2 {
		return nil
	}
	nAtoms := len(frames[0])
	vacf := make([]float64, nFrames-1)
	counts := make([]int, nFrames-1)

	for i := 0; i < nFrames-1; i++ {
		for j := i + 1; j < nFrames; j++ {
			lag := j - i
			var sum float64
			for a := 0; a < nAtoms; a++ {
				sum += geom.Dot(frames[i][a], frames[j][a])
			}
			vacf[lag-1] += sum
			counts[lag-1] += nAtoms
		}
	}
	for i := range vacf {
		if counts[i] > 0 {
			vacf[i] /= float64(counts[i])
		}
	}
	return vacf
}

// ZeroLagAverage returns ⟨v·v⟩ averaged over every atom and frame, the
// normalization VACF callers typically divide by (kpotier/selfdiff's
// ResDiv).
func ZeroLagAverage(frames [][]geom.Vec) float64 {
	var sum float64
	var n int
	for _, frame := range frames {
		for _, v := range frame {
			sum += geom.Norm2(v)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
