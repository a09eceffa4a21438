package data

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"math/rand"
	"os"
)

// GenerateOptions controls the synthetic dataset.
type GenerateOptions struct {
	Rows          int   // number of records
	Seed          int64 // random seed, fixed for reproducible output
	MissingIncome int   // income cells blanked after generation
}

// DefaultGenerateOptions returns the fixed sample parameters.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Rows:          100,
		Seed:          42,
		MissingIncome: 10,
	}
}

var groups = []string{"A", "B", "C"}

// Generate creates the synthetic record table. Columns are drawn one after
// another from a single source seeded with opts.Seed.
func Generate(opts GenerateOptions) (*Table, error) {
	if opts.Rows < 0 {
		return nil, fmt.Errorf("data: negative row count %d", opts.Rows)
	}
	if opts.MissingIncome < 0 || opts.MissingIncome > opts.Rows {
		return nil, fmt.Errorf("data: cannot blank %d of %d incomes", opts.MissingIncome, opts.Rows)
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	n := opts.Rows

	id := make([]int, n)
	for i := range n {
		id[i] = i + 1
	}
	age := make([]int, n)
	for i := range n {
		age[i] = 18 + rng.Intn(70-18)
	}
	income := make([]float64, n)
	for i := range n {
		income[i] = math.Trunc(50000 + 15000*rng.NormFloat64())
	}
	score := make([]float64, n)
	for i := range n {
		score[i] = rng.Float64() * 100
	}
	group := make([]string, n)
	for i := range n {
		group[i] = groups[rng.Intn(len(groups))]
	}

	for _, idx := range rng.Perm(n)[:opts.MissingIncome] {
		income[idx] = math.NaN()
	}

	return FromColumns(id, age, income, score, group)
}

// EnsureSample writes a generated dataset to path unless a file already exists there.
// It reports whether a new file was written.
func EnsureSample(path string, opts GenerateOptions, w io.Writer) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("data: stat %s: %w", path, err)
	}

	t, err := Generate(opts)
	if err != nil {
		return false, err
	}
	var buf bytes.Buffer
	if err := t.WriteCSV(&buf); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("data: write %s: %w", path, err)
	}
	fmt.Fprintf(w, "Sample data written to %s\n", path)
	return true, nil
}
