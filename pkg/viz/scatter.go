package viz

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"edareport/pkg/data"
)

// scoreScatter plots score against age with one coloured series per group.
func scoreScatter(t *data.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Score vs Age by Group"
	p.X.Label.Text = "age"
	p.Y.Label.Text = "score"
	p.Legend.Top = true

	age := t.Floats("age")
	score := t.Floats("score")
	group := t.Strings("group")

	for k, g := range groupsOf(group) {
		pts := make(plotter.XYs, 0)
		for i := range age {
			if group[i] != g || math.IsNaN(age[i]) || math.IsNaN(score[i]) {
				continue
			}
			pts = append(pts, plotter.XY{X: age[i], Y: score[i]})
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.Color = plotutil.Color(k)
		s.Shape = draw.CircleGlyph{}
		s.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(g, s)
	}
	return p, nil
}
