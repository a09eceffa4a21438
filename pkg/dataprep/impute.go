package dataprep

import (
	"math"

	"edareport/pkg/stats"
)

// ImputeMedian replaces missing (NaN) values in col with the median of the
// present ones, in place. A column with no present values is left unchanged.
func ImputeMedian(col []float64) []float64 {
	present := stats.DropNaN(col)
	if len(present) == 0 {
		return col
	}
	median := stats.Median(present)

	for i, v := range col {
		if math.IsNaN(v) {
			col[i] = median
		}
	}
	return col
}
