package analysis

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"edareport/pkg/data"
	"edareport/pkg/stats"
)

// Report prints the closing summary: row count, mean income and score, and
// the group breakdown. Only the record count is digit-grouped; averages are
// plain two-decimal numbers.
func Report(t *data.Table, w io.Writer) {
	p := message.NewPrinter(language.English)
	fmt.Fprintln(w, "\n--- Report ---")
	p.Fprintf(w, "Total records: %d\n", t.Len())
	fmt.Fprintf(w, "Average income: %.2f\n", stats.Mean(stats.DropNaN(t.Floats("income"))))
	fmt.Fprintf(w, "Average score: %.2f\n", stats.Mean(stats.DropNaN(t.Floats("score"))))
	fmt.Fprintln(w, "Group breakdown:")
	writeCounts(w, GroupCounts(t))
}
