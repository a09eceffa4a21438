package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"edareport/pkg/data"
	"edareport/pkg/stats"
)

const (
	ageBins    = 15
	kdeSamples = 200
)

// ageHistogram draws a density-normalised age histogram with a KDE overlay.
func ageHistogram(t *data.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Age Distribution"
	p.X.Label.Text = "age"
	p.Y.Label.Text = "Density"

	ages := stats.DropNaN(t.Floats("age"))
	if len(ages) == 0 {
		return p, nil
	}

	h, err := plotter.NewHist(plotter.Values(ages), ageBins)
	if err != nil {
		return nil, err
	}
	h.Normalize(1)
	h.FillColor = color.RGBA{R: 76, G: 114, B: 176, A: 150}
	p.Add(h)

	bw := stats.ScottBandwidth(ages)
	if !(bw > 0) {
		return p, nil
	}
	lo, hi := stats.MinMax(ages)
	xs := stats.Linspace(lo, hi, kdeSamples)
	ys := stats.GaussianKDE(ages, bw, xs)
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.Color = color.RGBA{R: 76, G: 114, B: 176, A: 255}
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)
	return p, nil
}
