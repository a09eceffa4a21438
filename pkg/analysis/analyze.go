// Package analysis prints descriptive statistics and the final report for a
// record table. Nothing here mutates the table.
package analysis

import (
	"fmt"
	"io"

	"edareport/pkg/data"
	"edareport/pkg/stats"
)

// GroupColumn is the categorical column that gets frequency counts.
const GroupColumn = "group"

// Describe summarises every numeric column of t in schema order.
func Describe(t *data.Table) []stats.Summary {
	names := t.Schema().Numeric()
	out := make([]stats.Summary, len(names))
	for i, n := range names {
		out[i] = stats.Describe(n, t.Floats(n))
	}
	return out
}

// GroupCounts returns the frequency of each group, most frequent first.
func GroupCounts(t *data.Table) []stats.Count {
	return stats.ValueCounts(t.Strings(GroupColumn))
}

// Analyze prints the describe table and the group counts.
func Analyze(t *data.Table, w io.Writer) {
	fmt.Fprintln(w, "\nBasic statistics:")
	writeSummaries(w, Describe(t))
	fmt.Fprintln(w, "\nGroup counts:")
	writeCounts(w, GroupCounts(t))
}

func writeSummaries(w io.Writer, sums []stats.Summary) {
	fmt.Fprintf(w, "%-8s", "")
	for _, s := range sums {
		fmt.Fprintf(w, "%16s", s.Column)
	}
	fmt.Fprintln(w)

	rows := []struct {
		label string
		get   func(stats.Summary) float64
	}{
		{"count", func(s stats.Summary) float64 { return float64(s.Count) }},
		{"mean", func(s stats.Summary) float64 { return s.Mean }},
		{"std", func(s stats.Summary) float64 { return s.Std }},
		{"min", func(s stats.Summary) float64 { return s.Min }},
		{"25%", func(s stats.Summary) float64 { return s.Q1 }},
		{"50%", func(s stats.Summary) float64 { return s.Median }},
		{"75%", func(s stats.Summary) float64 { return s.Q3 }},
		{"max", func(s stats.Summary) float64 { return s.Max }},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-8s", r.label)
		for _, s := range sums {
			fmt.Fprintf(w, "%16.6f", r.get(s))
		}
		fmt.Fprintln(w)
	}
}

func writeCounts(w io.Writer, counts []stats.Count) {
	fmt.Fprintln(w, GroupColumn)
	for _, c := range counts {
		fmt.Fprintf(w, "%-8s%d\n", c.Value, c.N)
	}
}
