package report

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Curve records the error of a Network over the course of training, so that it can be plotted.
type Curve struct {
	last, avg plotter.XYs
}

// Add records the last and average error of the Network at the given iteration.
func (c *Curve) Add(iter int, last, avg float64) {
	c.last = append(c.last, plotter.XY{X: float64(iter), Y: last})
	c.avg = append(c.avg, plotter.XY{X: float64(iter), Y: avg})
}

// Len returns the number of points recorded.
func (c *Curve) Len() int {
	return len(c.avg)
}

// Save plots the recorded errors to the file at path. The format is chosen by the file's
// extension, e.g. ".svg" or ".png".
func (c *Curve) Save(path string) error {
	if c.Len() == 0 {
		return errors.Errorf("Can't plot errors to %q, nothing has been recorded", path)
	}

	p := plot.New()
	p.Title.Text = "Training error"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "RMS error"
	p.Y.Min = 0

	if err := plotutil.AddLines(p, "last", c.last, "average", c.avg); err != nil {
		return errors.Wrapf(err, "Can't plot errors to %q", path)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "Can't plot errors to %q", path)
	}

	return nil
}
