package mdlog

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/neighbor"
)

// TrajectoryWriter is a Logger that appends every sampled frame to an
// open io.Writer as a PDB MODEL/ENDMDL block, the same textual,
// line-by-line record format rmera/gochem's PDB writers use, minus the
// mmCIF loop_ bookkeeping: one MODEL record, one ATOM line per atom, one
// ENDMDL. Coordinates are folded into the periodic box before they are
// written. When gzipCompress is true, writes go through a klauspost/compress
// gzip.Writer (the same compressor gochem's dcd/xtc readers link
// against for compressed trajectories), so long runs don't blow up disk
// usage.
type TrajectoryWriter struct {
	out    io.Writer
	gz     *gzip.Writer
	period int
	model  int
}

// NewTrajectoryWriter wraps out (already open for writing) and begins
// numbering MODEL records at 1. If gzipCompress is true, out receives
// gzip-compressed bytes; Close must be called to flush the gzip footer.
func NewTrajectoryWriter(out io.Writer, period int, gzipCompress bool) *TrajectoryWriter {
	w := &TrajectoryWriter{out: out, period: period}
	if gzipCompress {
		w.gz = gzip.NewWriter(out)
	}
	return w
}

func (w *TrajectoryWriter) writer() io.Writer {
	if w.gz != nil {
		return w.gz
	}
	return w.out
}

func (w *TrajectoryWriter) Period() int { return w.period }

func (w *TrajectoryWriter) Sample(step int, sys *md.System, neighbors *neighbor.List) error {
	w.model++
	out := w.writer()
	if _, err := fmt.Fprintf(out, "MODEL %8d\n", w.model); err != nil {
		return newResourceError(err)
	}
	for i, c := range sys.Coords {
		c = geom.Wrap(c, sys.Box, sys.Dim)
		name := "X"
		_, err := fmt.Fprintf(out, "ATOM  %5d %4s %3s A%4d    %8.3f%8.3f%8.3f  1.00  0.00\n",
			i+1, name, "RES", 1, c.X*10, c.Y*10, c.Z*10) // nm -> angstrom, the PDB convention
		if err != nil {
			return newResourceError(err)
		}
	}
	if _, err := fmt.Fprintf(out, "ENDMDL\n"); err != nil {
		return newResourceError(err)
	}
	return nil
}

// Close flushes and closes the underlying gzip writer, if any. It is a
// no-op for an uncompressed TrajectoryWriter; the caller owns out and
// closes it separately.
func (w *TrajectoryWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	return w.gz.Close()
}
