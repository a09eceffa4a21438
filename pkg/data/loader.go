package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Load reads a persisted record table from path.
func Load(path string, w io.Writer) (*Table, error) {
	fmt.Fprintf(w, "Loading data from %s...\n", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data: open %s: %w", path, err)
	}
	defer file.Close()

	t, err := ReadCSV(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("data: load %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses delimited text with a header row into a Table.
// Column types come from the schema, so a bad cell in any column surfaces as
// ErrMalformed instead of being silently coerced to a missing value.
// A header with no rows yields an empty table.
func ReadCSV(r io.Reader) (*Table, error) {
	sch, err := DefaultSchema()
	if err != nil {
		return nil, err
	}
	records, err := csv.NewReader(r).ReadAll()
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return nil, fmt.Errorf("data: read csv: %v: %w", err, ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("data: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data: read csv: no header row: %w", ErrSchemaMismatch)
	}
	if err := sch.CheckHeader(records[0]); err != nil {
		return nil, err
	}
	if err := checkNullableCells(sch, records); err != nil {
		return nil, err
	}

	var df dataframe.DataFrame
	if len(records) == 1 {
		df = emptyFrame(sch)
	} else {
		df = dataframe.LoadRecords(records, dataframe.WithTypes(sch.SeriesTypes()))
	}
	if df.Err != nil {
		return nil, fmt.Errorf("data: read csv: %w", df.Err)
	}
	return newTable(df, sch)
}

// checkNullableCells rejects cells of nullable float columns that are neither
// a missing token nor a number.
func checkNullableCells(sch Schema, records [][]string) error {
	for j, c := range sch.Columns {
		if c.Type != TypeFloat || !c.Nullable {
			continue
		}
		for i, row := range records[1:] {
			if IsMissingToken(row[j]) {
				continue
			}
			if _, err := strconv.ParseFloat(row[j], 64); err != nil {
				return fmt.Errorf("data: column %q row %d has value %q: %w", c.Name, i+1, row[j], ErrMalformed)
			}
		}
	}
	return nil
}

func emptyFrame(sch Schema) dataframe.DataFrame {
	types := sch.SeriesTypes()
	cols := make([]series.Series, len(sch.Columns))
	for i, c := range sch.Columns {
		cols[i] = series.New([]string{}, types[c.Name], c.Name)
	}
	return dataframe.New(cols...)
}
