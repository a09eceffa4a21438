package viz

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"edareport/pkg/data"
)

// incomeBoxPlot draws one income box per group.
func incomeBoxPlot(t *data.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Income by Group"
	p.X.Label.Text = "group"
	p.Y.Label.Text = "income"

	income := t.Floats("income")
	group := t.Strings("group")

	var names []string
	for _, g := range groupsOf(group) {
		var vals plotter.Values
		for i, v := range income {
			if group[i] == g && !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(vg.Points(50), float64(len(names)), vals)
		if err != nil {
			return nil, err
		}
		b.FillColor = plotutil.Color(len(names))
		p.Add(b)
		names = append(names, g)
	}
	if len(names) > 0 {
		p.NominalX(names...)
	}
	return p, nil
}
