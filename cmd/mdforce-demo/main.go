/*
 * main.go, part of mdforce.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 */

// Command mdforce-demo wires the library into a runnable simulation
// without touching any file-format parsing: it builds a small
// Lennard-Jones fluid on a lattice, in memory, and runs
// it under velocity-Verlet, printing the energy trace to stdout.
// The subcommand/flag shape follows san-kum-dynsim's cmd/dynsim driver,
// trimmed to the one "run" subcommand this library actually needs.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/cutoff"
	"github.com/rmera/mdforce/geom"
	"github.com/rmera/mdforce/integrate"
	"github.com/rmera/mdforce/mdlog"
	"github.com/rmera/mdforce/neighbor"
	"github.com/rmera/mdforce/pairwise"
	"github.com/rmera/mdforce/units"
)

var (
	nAtoms      int
	boxLen      float64
	dt          float64
	nSteps      int
	logPeriod   int
	temperature float64
	seed        int64
)

func main() {
	root := &cobra.Command{
		Use:   "mdforce-demo",
		Short: "run a small in-memory Lennard-Jones simulation",
		RunE:  run,
	}
	root.Flags().IntVar(&nAtoms, "atoms", 64, "number of atoms, placed on a cubic lattice")
	root.Flags().Float64Var(&boxLen, "box", 6.0, "cubic box length, nm")
	root.Flags().Float64Var(&dt, "dt", 0.002, "timestep, ps")
	root.Flags().IntVar(&nSteps, "steps", 1000, "number of integration steps")
	root.Flags().IntVar(&logPeriod, "log-period", 50, "steps between energy samples")
	root.Flags().Float64Var(&temperature, "temperature", 300, "initial temperature, K")
	root.Flags().Int64Var(&seed, "seed", 1, "RNG seed for initial velocities")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	sys, err := buildLatticeSystem(nAtoms, boxLen)
	if err != nil {
		return err
	}

	src := rand.NewSource(seed)
	md.RandomVelocities(sys, temperature, units.BoltzmannConstant, src)

	stepper := &integrate.VelocityVerlet{}
	energyLog := mdlog.NewTotalEnergyLogger(logPeriod)
	tempLog := mdlog.NewTemperatureLogger(logPeriod)
	loggers := []mdlog.Logger{energyLog, tempLog}

	if err := integrate.Simulate(sys, stepper, nSteps, dt, nil, loggers); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "step\tT(K)\tE_total(kJ/mol)")
	for i, step := range energyLog.Steps {
		fmt.Fprintf(w, "%d\t%.2f\t%.4f\n", step, tempLog.Values[i], energyLog.Values[i])
	}
	return w.Flush()
}

// buildLatticeSystem places n atoms on a simple cubic lattice inside a
// cubic box of side boxLen and assembles a single LJ interaction over a
// distance-based neighbor list.
func buildLatticeSystem(n int, boxLen float64) (*md.System, error) {
	side := 1
	for side*side*side < n {
		side++
	}
	spacing := boxLen / float64(side)

	atoms := make([]md.Atom, 0, n)
	coords := make([]geom.Vec, 0, n)
	velocities := make([]geom.Vec, 0, n)

	for i := 0; i < n; i++ {
		x := float64(i%side) * spacing
		y := float64((i/side)%side) * spacing
		z := float64(i/(side*side)) * spacing
		atoms = append(atoms, md.Atom{Mass: 39.95, Sigma: 0.34, Epsilon: 0.997})
		coords = append(coords, geom.New(x, y, z))
		velocities = append(velocities, geom.Zero)
	}

	sigma, epsilon := 0.34, 0.997
	rc := 2.5 * sigma
	lj := pairwise.LJ{
		Cutoff:  cutoff.NewShiftedForce(rc, pairwise.LJKernel(sigma, epsilon)),
		Mixing:  pairwise.Lorentz,
		Force_:  units.KJPerMolNm,
		Energy_: units.KJPerMol,
	}
	finder := neighbor.DistanceFinder{DistCutoff: rc * 1.3, NSteps: 10, LongestSkin: rc}

	return md.NewSystem(atoms, coords, velocities, geom.New(boxLen, boxLen, boxLen), 3,
		[]pairwise.Interaction{lj}, nil, finder, units.KJPerMolNm, units.KJPerMol)
}
