package data

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultSchema(t *testing.T) {
	sch, err := DefaultSchema()
	if err != nil {
		t.Fatalf("DefaultSchema: %v", err)
	}
	if diff := cmp.Diff([]string{"id", "age", "income", "score", "group"}, sch.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"id", "age", "income", "score"}, sch.Numeric()); diff != "" {
		t.Fatalf("numeric mismatch (-want +got):\n%s", diff)
	}
	income, ok := sch.Column("income")
	if !ok || !income.Nullable {
		t.Fatalf("income should be a nullable column, got %+v", income)
	}
	group, _ := sch.Column("group")
	if diff := cmp.Diff([]string{"A", "B", "C"}, group.Levels); diff != "" {
		t.Fatalf("group levels mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSchemaRejects(t *testing.T) {
	cases := map[string]string{
		"empty":        "   ",
		"no columns":   "name: x\n",
		"unknown type": "columns:\n  - name: a\n    type: blob\n",
		"duplicate":    "columns:\n  - name: a\n    type: int\n  - name: a\n    type: int\n",
		"no levels":    "columns:\n  - name: g\n    type: category\n",
		"unnamed":      "columns:\n  - type: int\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSchema([]byte(doc)); err == nil {
				t.Fatalf("expected error for %q", doc)
			}
		})
	}
}

func TestCheckHeader(t *testing.T) {
	sch, err := DefaultSchema()
	if err != nil {
		t.Fatal(err)
	}
	if err := sch.CheckHeader([]string{"id", "age", "income", "score", "group"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = sch.CheckHeader([]string{"id", "age", "score", "income", "group"})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestFromColumnsRejectsUnknownGroup(t *testing.T) {
	_, err := FromColumns([]int{1}, []int{20}, []float64{1}, []float64{2}, []string{"D"})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
