package mdlog

import (
	"bytes"
	"strings"
	"testing"

	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/neighbor"
	"github.com/rmera/mdforce/units"
)

func twoAtomSystem(Te *testing.T) *md.System {
	atoms := []md.Atom{{Mass: 1}, {Mass: 1}}
	coords := []geom.Vec{geom.New(0, 0, 0), geom.New(0.3, 0, 0)}
	velocities := []geom.Vec{geom.New(1, 0, 0), geom.New(-1, 0, 0)}
	sys, err := md.NewSystem(atoms, coords, velocities, geom.New(10, 10, 10), 3, nil, nil,
		neighbor.DistanceFinder{DistCutoff: 1}, units.UnitsNone, units.UnitsNone)
	if err != nil {
		Te.Fatalf("unexpected error: %v", err)
	}
	return sys
}

func TestSeriesSamplesOnPeriod(Te *testing.T) {
	sys := twoAtomSystem(Te)
	log := NewKineticEnergyLogger(2)
	for step := 0; step < 6; step++ {
		if log.Period() > 0 && step%log.Period() == 0 {
			if err := log.Sample(step, sys, nil); err != nil {
				Te.Fatalf("unexpected sample error: %v", err)
			}
		}
	}
	if len(log.Steps) != 3 {
		Te.Errorf("expected 3 samples at period 2 over 6 steps, got %d", len(log.Steps))
	}
}

func TestTemperatureLoggerMatchesSystem(Te *testing.T) {
	sys := twoAtomSystem(Te)
	log := NewTemperatureLogger(1)
	if err := log.Sample(0, sys, nil); err != nil {
		Te.Fatalf("unexpected sample error: %v", err)
	}
	want := sys.Temperature(units.BoltzmannConstant)
	if log.Values[0] != want {
		Te.Errorf("logged temperature %v does not match sys.Temperature() %v", log.Values[0], want)
	}
}

func TestCoordinateLoggerFlattensFrames(Te *testing.T) {
	sys := twoAtomSystem(Te)
	log := NewCoordinateLogger(1)
	if err := log.Sample(0, sys, nil); err != nil {
		Te.Fatalf("unexpected sample error: %v", err)
	}
	if len(log.Frames) != 1 || len(log.Frames[0]) != 6 {
		Te.Fatalf("expected one frame of 6 floats (2 atoms x 3), got %v", log.Frames)
	}
}

func TestTrajectoryWriterEmitsModelBlock(Te *testing.T) {
	sys := twoAtomSystem(Te)
	var buf bytes.Buffer
	w := NewTrajectoryWriter(&buf, 1, false)
	if err := w.Sample(0, sys, nil); err != nil {
		Te.Fatalf("unexpected sample error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "MODEL") || !strings.Contains(out, "ENDMDL") {
		Te.Errorf("expected MODEL/ENDMDL bracketing, got:\n%s", out)
	}
	if strings.Count(out, "ATOM") != 2 {
		Te.Errorf("expected one ATOM line per atom, got:\n%s", out)
	}
}

func TestTrajectoryWriterGzipRoundTrips(Te *testing.T) {
	sys := twoAtomSystem(Te)
	var buf bytes.Buffer
	w := NewTrajectoryWriter(&buf, 1, true)
	if err := w.Sample(0, sys, nil); err != nil {
		Te.Fatalf("unexpected sample error: %v", err)
	}
	if err := w.Close(); err != nil {
		Te.Fatalf("unexpected close error: %v", err)
	}
	if buf.Len() == 0 {
		Te.Errorf("expected non-empty gzip output")
	}
}
