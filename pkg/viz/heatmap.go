package viz

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"edareport/pkg/core"
	"edareport/pkg/data"
	"edareport/pkg/stats"
)

// paletteSize keeps the palette step a power of two so every sample lands
// exactly inside [-1, 1].
const paletteSize = 257

// corrGrid exposes a correlation matrix as a plotter.GridXYZ with matrix row 0
// drawn at the top.
type corrGrid struct {
	m *core.Matrix
}

func (g corrGrid) Dims() (c, r int) { return g.m.C, g.m.R }

func (g corrGrid) Z(c, r int) float64 {
	v := g.m.At(g.m.R-1-r, c)
	if math.IsNaN(v) {
		return v
	}
	return math.Max(-1, math.Min(1, v))
}

func (g corrGrid) X(c int) float64 { return float64(c) }

func (g corrGrid) Y(r int) float64 { return float64(r) }

// correlationHeatMap draws the annotated Pearson correlation matrix of the
// numeric columns.
func correlationHeatMap(t *data.Table) (*plot.Plot, error) {
	names := t.Schema().Numeric()
	cols := make([][]float64, len(names))
	for i, n := range names {
		cols[i] = t.Floats(n)
	}
	grid := corrGrid{m: stats.CorrelationMatrix(cols)}

	p := plot.New()
	p.Title.Text = "Correlation Matrix"

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	cm.SetConvergePoint(0)
	h := plotter.NewHeatMap(grid, cm.Palette(paletteSize))
	h.Min, h.Max = -1, 1
	p.Add(h)

	c, r := grid.Dims()
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, c*r),
		Labels: make([]string, 0, c*r),
	}
	for j := 0; j < r; j++ {
		for i := 0; i < c; i++ {
			labels.XYs = append(labels.XYs, plotter.XY{X: grid.X(i), Y: grid.Y(j)})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%.2f", grid.Z(i, j)))
		}
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(l)

	rows := slices.Clone(names)
	slices.Reverse(rows)
	p.NominalX(names...)
	p.NominalY(rows...)
	return p, nil
}
