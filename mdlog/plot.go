package mdlog

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	md "github.com/rmera/mdforce"
	"github.com/rmera/mdforce/neighbor"
)

// PlotLogger renders a Series to a PNG line plot on every Sample call,
// overwriting Path each time so the file always shows the run-so-far
// curve. It's gonum's plot/plotter in place of the now-defunct
// code.google.com/p/plotinum package gochem's own RamachandranPlot was
// written against; the scatter-then-save shape is the same.
type PlotLogger struct {
	Series *Series
	Path   string
	Title  string
	XLabel string
	YLabel string
}

func (p *PlotLogger) Period() int { return p.Series.period }

func (p *PlotLogger) Sample(step int, sys *md.System, neighbors *neighbor.List) error {
	if err := p.Series.Sample(step, sys, neighbors); err != nil {
		return err
	}

	pl, err := plot.New()
	if err != nil {
		return newResourceError(err)
	}
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel

	pts := make(plotter.XYs, len(p.Series.Values))
	for i, v := range p.Series.Values {
		pts[i].X = float64(p.Series.Steps[i])
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return newResourceError(err)
	}
	pl.Add(line)

	if err := pl.Save(6*vg.Inch, 4*vg.Inch, p.Path); err != nil {
		return newResourceError(err)
	}
	return nil
}
