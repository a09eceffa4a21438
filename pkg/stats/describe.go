package stats

import (
	"cmp"
	"math"
	"slices"

	"edareport/pkg/core"
)

// Summary holds the descriptive statistics of one numeric column.
// Missing values are excluded from every field except Column.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarises x, skipping NaN entries.
func Describe(column string, x []float64) Summary {
	vals := DropNaN(x)
	min, max := MinMax(vals)
	return Summary{
		Column: column,
		Count:  len(vals),
		Mean:   Mean(vals),
		Std:    StdDev(vals),
		Min:    min,
		Q1:     Percentile(vals, 25),
		Median: Percentile(vals, 50),
		Q3:     Percentile(vals, 75),
		Max:    max,
	}
}

// Count is the frequency of one categorical value.
type Count struct {
	Value string
	N     int
}

// ValueCounts tallies x, most frequent first. Ties are ordered by value.
func ValueCounts(x []string) []Count {
	tally := make(map[string]int)
	for _, v := range x {
		tally[v]++
	}
	out := make([]Count, 0, len(tally))
	for v, n := range tally {
		out = append(out, Count{Value: v, N: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if a.N != b.N {
			return cmp.Compare(b.N, a.N)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

// CorrelationMatrix returns the pairwise Pearson correlations of cols.
// Each pair only uses rows where both values are present.
func CorrelationMatrix(cols [][]float64) *core.Matrix {
	k := len(cols)
	m := core.NewMatrix(k, k)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			x, y := pairwise(cols[i], cols[j])
			r := Correlation(x, y)
			if i == j && !math.IsNaN(r) {
				r = 1
			}
			m.Set(i, j, r)
			m.Set(j, i, r)
		}
	}
	return m
}

func pairwise(a, b []float64) ([]float64, []float64) {
	n := min(len(a), len(b))
	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		x = append(x, a[i])
		y = append(y, b[i])
	}
	return x, y
}
