package analysis

import "github.com/rmera/mdforce/geom"

// MSD computes the mean squared displacement at every lag from an
// unwrapped-coordinate trajectory: for lag L, MSD[L-1] averages
// |x(t+L)-x(t)|² over every valid start t and every atom. frames must be
// unwrapped (no periodic folding between samples) for the result to mean
// anything; mdlog.CoordinateLogger's raw positions satisfy this as long
// as the System never re-wraps Coords itself. This is the same
// all-pairs-of-frames averaging kpotier/selfdiff's VAC.Perform runs for
// velocity autocorrelation, applied here to squared displacement instead
// of a dot product.
func MSD(frames [][]geom.Vec) []float64 {
	nFrames := len(frames)
	if nFrames < 2 {
		return nil
	}
	nAtoms := len(frames[0])
	msd := make([]float64, nFrames-1)
	counts := make([]int, nFrames-1)

	for t := 0; t < nFrames; t++ {
		for lag := 1; t+lag < nFrames; lag++ {
			var sum float64
			for a := 0; a < nAtoms; a++ {
				d := geom.Sub(frames[t+lag][a], frames[t][a])
				sum += geom.Norm2(d)
			}
			msd[lag-1] += sum / float64(nAtoms)
			counts[lag-1]++
		}
	}
	for i := range msd {
		if counts[i] > 0 {
			msd[i] /= float64(counts[i])
		}
	}
	return msd
}
