package dataprep

import (
	"fmt"
	"io"
	"math"

	"edareport/pkg/data"
)

// ImputedColumn is the only column the cleaner fills.
const ImputedColumn = "income"

// Missing is the number of missing cells in one column.
type Missing struct {
	Column string
	N      int
}

// MissingCounts counts missing cells per column, in schema order.
func MissingCounts(t *data.Table) []Missing {
	sch := t.Schema()
	out := make([]Missing, 0, len(sch.Columns))
	for _, c := range sch.Columns {
		n := 0
		switch c.Type {
		case data.TypeInt, data.TypeFloat:
			for _, v := range t.Floats(c.Name) {
				if math.IsNaN(v) {
					n++
				}
			}
		default:
			for _, v := range t.Strings(c.Name) {
				if data.IsMissingToken(v) {
					n++
				}
			}
		}
		out = append(out, Missing{Column: c.Name, N: n})
	}
	return out
}

// Clean fills missing income values with the column median.
// The table is modified in place and returned.
func Clean(t *data.Table, w io.Writer) (*data.Table, error) {
	fmt.Fprintln(w, "Cleaning data...")
	fmt.Fprintln(w, "Missing values before cleaning:")
	printMissing(w, MissingCounts(t))

	col := ImputeMedian(t.Floats(ImputedColumn))
	if err := t.SetFloats(ImputedColumn, col); err != nil {
		return nil, fmt.Errorf("dataprep: impute %s: %w", ImputedColumn, err)
	}

	fmt.Fprintln(w, "Missing values after cleaning:")
	printMissing(w, MissingCounts(t))
	return t, nil
}

func printMissing(w io.Writer, counts []Missing) {
	for _, m := range counts {
		fmt.Fprintf(w, "%-10s%d\n", m.Column, m.N)
	}
}
