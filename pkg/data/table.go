package data

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is the in-memory record table. Columns always follow the schema order.
type Table struct {
	df     dataframe.DataFrame
	schema Schema
}

// FromColumns builds a validated table from column slices.
// Missing income values are NaN.
func FromColumns(id, age []int, income, score []float64, group []string) (*Table, error) {
	sch, err := DefaultSchema()
	if err != nil {
		return nil, err
	}
	df := dataframe.New(
		series.New(id, series.Int, "id"),
		series.New(age, series.Int, "age"),
		series.New(income, series.Float, "income"),
		series.New(score, series.Float, "score"),
		series.New(group, series.String, "group"),
	)
	return newTable(df, sch)
}

func newTable(df dataframe.DataFrame, sch Schema) (*Table, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("data: build table: %w", df.Err)
	}
	t := &Table{df: df, schema: sch}
	if err := sch.Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.df.Nrow() }

// Names returns the column names in order.
func (t *Table) Names() []string { return t.df.Names() }

// Schema returns the schema the table was validated against.
func (t *Table) Schema() Schema { return t.schema }

// Floats returns a copy of a numeric column. Missing cells are NaN.
func (t *Table) Floats(name string) []float64 { return t.df.Col(name).Float() }

// Ints returns a copy of an integer column.
func (t *Table) Ints(name string) ([]int, error) {
	vals, err := t.df.Col(name).Int()
	if err != nil {
		return nil, fmt.Errorf("data: column %q: %w", name, err)
	}
	return vals, nil
}

// Strings returns a copy of a column as text.
func (t *Table) Strings(name string) []string { return t.df.Col(name).Records() }

// SetFloats replaces a float column in place.
func (t *Table) SetFloats(name string, vals []float64) error {
	if c, ok := t.schema.Column(name); !ok || c.Type != TypeFloat {
		return fmt.Errorf("data: %q is not a float column", name)
	}
	df := t.df.Mutate(series.New(vals, series.Float, name))
	if df.Err != nil {
		return fmt.Errorf("data: set column %q: %w", name, df.Err)
	}
	t.df = df
	return nil
}

// WriteCSV writes the table with a header row. Floats are written in their
// shortest exact decimal form so a reload yields identical values.
func (t *Table) WriteCSV(w io.Writer) error {
	df := t.df
	if t.Len() > 0 {
		records, err := t.records()
		if err != nil {
			return err
		}
		df = dataframe.LoadRecords(records,
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
		)
		if df.Err != nil {
			return fmt.Errorf("data: write csv: %w", df.Err)
		}
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("data: write csv: %w", err)
	}
	return nil
}

// records renders the table as text cells, header first.
func (t *Table) records() ([][]string, error) {
	cols := make([][]string, len(t.schema.Columns))
	for j, c := range t.schema.Columns {
		switch c.Type {
		case TypeInt:
			vals, err := t.Ints(c.Name)
			if err != nil {
				return nil, err
			}
			cells := make([]string, len(vals))
			for i, v := range vals {
				cells[i] = strconv.Itoa(v)
			}
			cols[j] = cells
		case TypeFloat:
			vals := t.Floats(c.Name)
			cells := make([]string, len(vals))
			for i, v := range vals {
				cells[i] = formatFloat(v)
			}
			cols[j] = cells
		default:
			cols[j] = t.Strings(c.Name)
		}
	}

	out := make([][]string, 0, t.Len()+1)
	out = append(out, t.schema.Names())
	for i := 0; i < t.Len(); i++ {
		row := make([]string, len(cols))
		for j := range cols {
			row[j] = cols[j][i]
		}
		out = append(out, row)
	}
	return out, nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
