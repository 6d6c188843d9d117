// Package visualize renders cross-entropy loss profiles with gonum/plot.
//
// A loss profile fixes every coefficient but one and sweeps the remaining one
// over an interval, which shows how sensitive the loss is to that feature.
package visualize

import (
	"image/color"
	"math"

	"github.com/YuminosukeSato/survival/dataset"
	"github.com/YuminosukeSato/survival/pkg/errors"
	"github.com/YuminosukeSato/survival/pkg/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Loss evaluates a loss for a coefficient vector. *logistic.Objective
// satisfies it.
type Loss interface {
	CrossEntropy(df *dataset.Frame, coefs []float64) (float64, error)
}

// LossProfile evaluates loss at steps evenly spaced values of coefs[index]
// between lo and hi inclusive, holding the other coefficients fixed.
// coefs is not modified. A panicking loss is returned as an error.
func LossProfile(loss Loss, df *dataset.Frame, coefs []float64, index int, lo, hi float64, steps int) (plotter.XYs, error) {
	if index < 0 || index >= len(coefs) {
		return nil, errors.NewValueError("LossProfile", "coefficient index out of range")
	}
	if steps < 2 {
		return nil, errors.NewValueError("LossProfile", "need at least two steps")
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, errors.NewValueError("LossProfile", "bounds must be finite")
	}
	if !(lo < hi) {
		return nil, errors.NewValueError("LossProfile", "lo must be less than hi")
	}

	probe := append([]float64(nil), coefs...)
	pts := make(plotter.XYs, steps)
	for k := range pts {
		probe[index] = lo + (hi-lo)*float64(k)/float64(steps-1)
		var l float64
		err := errors.SafeExecute("LossProfile", func() (err error) {
			l, err = loss.CrossEntropy(df, probe)
			return err
		})
		if err != nil {
			return nil, errors.Wrapf(err, "loss profile at step %d", k)
		}
		pts[k].X = probe[index]
		pts[k].Y = l
	}
	return pts, nil
}

// Minimum returns the point of pts with the smallest finite loss. ok is false
// when no point is finite.
func Minimum(pts plotter.XYs) (lowest plotter.XY, ok bool) {
	best := math.Inf(1)
	for _, p := range pts {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		if p.Y < best {
			best = p.Y
			lowest = p
			ok = true
		}
	}
	return lowest, ok
}

// SaveLossProfile draws pts as a line with the minimum marked and writes it
// to path. The image format follows the file extension (.png, .svg, .pdf...).
func SaveLossProfile(path, title, xLabel string, pts plotter.XYs) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "cross entropy"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "loss profile line")
	}
	line.Color = color.RGBA{B: 200, R: 30, G: 60, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	if lowest, ok := Minimum(pts); ok {
		marker, err := plotter.NewScatter(plotter.XYs{lowest})
		if err != nil {
			return errors.Wrap(err, "loss profile minimum")
		}
		marker.Shape = draw.CrossGlyph{}
		marker.Radius = vg.Points(5)
		marker.Color = color.RGBA{R: 255, A: 255}
		p.Add(marker)
	}

	if err := p.Save(5*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving loss profile to %s", path)
	}

	log.GetLoggerWithName("visualize").Info("loss profile saved",
		log.OperationKey, log.OperationLossProfile,
		"path", path,
		"points", len(pts),
	)
	return nil
}
