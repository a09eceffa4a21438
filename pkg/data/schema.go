package data

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/go-gota/gota/series"
	"gopkg.in/yaml.v3"
)

var (
	// ErrSchemaMismatch reports a header that differs from the schema columns.
	ErrSchemaMismatch = errors.New("header does not match schema")
	// ErrMalformed reports a cell that is missing, unparsable or out of range.
	ErrMalformed = errors.New("malformed record")
)

//go:embed schema.yaml
var schemaYAML []byte

// missingTokens are the cell texts read as a missing value.
var missingTokens = []string{"", "NA", "NaN"}

// IsMissingToken reports whether a raw cell denotes a missing value.
func IsMissingToken(cell string) bool { return slices.Contains(missingTokens, cell) }

// Column types understood by the schema.
const (
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeCategory = "category"
)

// Column describes one field of the record table.
type Column struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"` // "int", "float" or "category"
	Nullable bool     `yaml:"nullable"`
	Levels   []string `yaml:"levels"`
}

// Schema describes the structure of the dataset.
type Schema struct {
	Name    string   `yaml:"name"`
	Columns []Column `yaml:"columns"`
}

var (
	defaultOnce   sync.Once
	defaultSchema Schema
	defaultErr    error
)

// DefaultSchema returns the embedded record schema.
func DefaultSchema() (Schema, error) {
	defaultOnce.Do(func() {
		defaultSchema, defaultErr = ParseSchema(schemaYAML)
	})
	return defaultSchema, defaultErr
}

// ParseSchema decodes a YAML schema document.
func ParseSchema(raw []byte) (Schema, error) {
	var s Schema
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Schema{}, errors.New("data: schema document is empty")
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Schema{}, fmt.Errorf("data: parse schema: %w", err)
	}
	if len(s.Columns) == 0 {
		return Schema{}, errors.New("data: schema has no columns")
	}
	seen := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		if c.Name == "" {
			return Schema{}, errors.New("data: schema column without name")
		}
		if seen[c.Name] {
			return Schema{}, fmt.Errorf("data: duplicate schema column %q", c.Name)
		}
		seen[c.Name] = true
		switch c.Type {
		case TypeInt, TypeFloat:
		case TypeCategory:
			if len(c.Levels) == 0 {
				return Schema{}, fmt.Errorf("data: category column %q has no levels", c.Name)
			}
		default:
			return Schema{}, fmt.Errorf("data: column %q has unknown type %q", c.Name, c.Type)
		}
	}
	return s, nil
}

// Names returns the column names in order.
func (s Schema) Names() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Name
	}
	return out
}

// Numeric returns the names of int and float columns in order.
func (s Schema) Numeric() []string {
	var out []string
	for _, c := range s.Columns {
		if c.Type == TypeInt || c.Type == TypeFloat {
			out = append(out, c.Name)
		}
	}
	return out
}

// Column looks up a column by name.
func (s Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// SeriesTypes maps each column to the gota type used when reading CSV.
func (s Schema) SeriesTypes() map[string]series.Type {
	out := make(map[string]series.Type, len(s.Columns))
	for _, c := range s.Columns {
		switch c.Type {
		case TypeInt:
			out[c.Name] = series.Int
		case TypeFloat:
			out[c.Name] = series.Float
		default:
			out[c.Name] = series.String
		}
	}
	return out
}

// CheckHeader fails unless names equal the schema columns in order.
func (s Schema) CheckHeader(names []string) error {
	if !slices.Equal(names, s.Names()) {
		return fmt.Errorf("data: got columns %v, want %v: %w", names, s.Names(), ErrSchemaMismatch)
	}
	return nil
}

// Validate checks every cell of t against the column rules.
func (s Schema) Validate(t *Table) error {
	if err := s.CheckHeader(t.Names()); err != nil {
		return err
	}
	for _, c := range s.Columns {
		switch c.Type {
		case TypeInt:
			// gota keeps unparsable ints as NaN; Int() rejects them.
			if _, err := t.df.Col(c.Name).Int(); err != nil {
				return fmt.Errorf("data: column %q: %v: %w", c.Name, err, ErrMalformed)
			}
		case TypeFloat:
			if c.Nullable {
				continue
			}
			for i, v := range t.Floats(c.Name) {
				if math.IsNaN(v) {
					return fmt.Errorf("data: column %q row %d is missing: %w", c.Name, i+1, ErrMalformed)
				}
			}
		case TypeCategory:
			for i, v := range t.Strings(c.Name) {
				if !slices.Contains(c.Levels, v) {
					return fmt.Errorf("data: column %q row %d has value %q outside %v: %w", c.Name, i+1, v, c.Levels, ErrMalformed)
				}
			}
		}
	}
	return nil
}
