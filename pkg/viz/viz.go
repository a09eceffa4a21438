// Package viz renders the record table charts with gonum/plot.
package viz

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"edareport/pkg/data"
)

// Chart files written by Render.
const (
	AgeDistributionFile   = "age_distribution.png"
	IncomeByGroupFile     = "income_by_group.png"
	ScoreVsAgeFile        = "score_vs_age.png"
	CorrelationMatrixFile = "correlation_matrix.png"
)

type chart struct {
	name          string
	file          string
	width, height vg.Length
	build         func(*data.Table) (*plot.Plot, error)
}

var charts = []chart{
	{"age distribution", AgeDistributionFile, 8 * vg.Inch, 4 * vg.Inch, ageHistogram},
	{"income by group", IncomeByGroupFile, 8 * vg.Inch, 4 * vg.Inch, incomeBoxPlot},
	{"score vs age", ScoreVsAgeFile, 8 * vg.Inch, 4 * vg.Inch, scoreScatter},
	{"correlation matrix", CorrelationMatrixFile, 6 * vg.Inch, 5 * vg.Inch, correlationHeatMap},
}

// Render writes every chart for t under dir, creating dir if needed.
// Each chart is drawn on its own plot.
func Render(t *data.Table, dir string, w io.Writer) error {
	fmt.Fprintln(w, "Generating plots...")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("viz: create %s: %w", dir, err)
	}
	for _, c := range charts {
		p, err := c.build(t)
		if err != nil {
			return fmt.Errorf("viz: build %s: %w", c.name, err)
		}
		path := filepath.Join(dir, c.file)
		if err := p.Save(c.width, c.height, path); err != nil {
			return fmt.Errorf("viz: save %s: %w", path, err)
		}
		fmt.Fprintf(w, "Saved %s plot to %s\n", c.name, path)
	}
	return nil
}

// groupsOf returns the distinct labels of col in sorted order.
func groupsOf(col []string) []string {
	out := slices.Clone(col)
	slices.Sort(out)
	return slices.Compact(out)
}
