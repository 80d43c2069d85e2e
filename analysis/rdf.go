package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rmera/mdforce/geom"
)

// RDF computes the radial distribution function g(r) over one or more
// frames, binning i<j pairwise distances with gonum/stat.Histogram and
// normalizing each bin by the ideal-gas count expected in that shell —
// the same binned-distance-over-shell-volume idea as the pack's gr
// package, replacing its file-driven accumulation with one over
// in-memory frames and gonum's histogram instead of a hand-rolled one.
// Edges must be strictly increasing bin boundaries in r (e.g. 0, dr, 2dr,
// ..., rMax); the returned g has len(edges)-1 entries, one per bin,
// centered at the bin midpoint in the returned centers slice.
func RDF(frames [][]geom.Vec, box geom.Vec, dim int, edges []float64) (g, centers []float64) {
	nBins := len(edges) - 1
	counts := make([]float64, nBins)

	var n int
	var volume float64
	if dim == 3 {
		volume = box.X * box.Y * box.Z
	} else {
		volume = box.X * box.Y
	}

	var distances []float64
	for _, frame := range frames {
		n = len(frame)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dr := geom.Displacement(frame[i], frame[j], box, dim)
				distances = append(distances, geom.Norm(dr))
			}
		}
	}

	sort.Float64s(distances)
	stat.Histogram(counts, edges, distances, nil)

	g = make([]float64, nBins)
	centers = make([]float64, nBins)
	density := float64(n) / volume
	nFrames := float64(len(frames))
	if nFrames == 0 || n < 2 {
		return g, centers
	}

	for b := 0; b < nBins; b++ {
		rLo, rHi := edges[b], edges[b+1]
		centers[b] = 0.5 * (rLo + rHi)
		var shell float64
		if dim == 3 {
			shell = 4.0 / 3.0 * math.Pi * (rHi*rHi*rHi - rLo*rLo*rLo)
		} else {
			shell = math.Pi * (rHi*rHi - rLo*rLo)
		}
		expected := density * shell * float64(n) / 2 * nFrames
		if expected == 0 {
			continue
		}
		g[b] = counts[b] / expected
	}
	return g, centers
}
