package viz

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"edareport/pkg/core"
	"edareport/pkg/data"
	"edareport/pkg/dataprep"
)

func cleanedSample(t *testing.T) *data.Table {
	t.Helper()
	tbl, err := data.Generate(data.DefaultGenerateOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := dataprep.Clean(tbl, io.Discard); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	return tbl
}

func TestRenderWritesFourCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	var out bytes.Buffer
	if err := Render(cleanedSample(t), dir, &out); err != nil {
		t.Fatalf("Render: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", e.Name())
		}
		got = append(got, e.Name())
	}
	want := []string{AgeDistributionFile, CorrelationMatrixFile, IncomeByGroupFile, ScoreVsAgeFile}
	slices.Sort(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("chart files mismatch (-want +got):\n%s", diff)
	}
	if n := strings.Count(out.String(), "Saved "); n != 4 {
		t.Fatalf("saw %d save lines, want 4:\n%s", n, out.String())
	}
}

func TestRenderOverwritesExistingDir(t *testing.T) {
	dir := t.TempDir()
	tbl := cleanedSample(t)
	for i := 0; i < 2; i++ {
		if err := Render(tbl, dir, io.Discard); err != nil {
			t.Fatalf("Render run %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d files, want 4", len(entries))
	}
}

func TestRenderUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Render(cleanedSample(t), filepath.Join(file, "plots"), io.Discard); err == nil {
		t.Fatal("expected an error when the output dir cannot be created")
	}
}

func TestGroupsOf(t *testing.T) {
	got := groupsOf([]string{"C", "A", "C", "B", "A"})
	if diff := cmp.Diff([]string{"A", "B", "C"}, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestCorrGridFlipsRows(t *testing.T) {
	m := core.NewMatrix(2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 0.5)
	m.Set(1, 0, 0.5)
	m.Set(1, 1, 1.0000001)
	g := corrGrid{m: m}
	if c, r := g.Dims(); c != 2 || r != 2 {
		t.Fatalf("Dims = %d, %d", c, r)
	}
	// Bottom grid row shows the last matrix row.
	if got := g.Z(1, 0); got != 1 {
		t.Fatalf("Z(1, 0) = %v, want clamped 1", got)
	}
	if got := g.Z(1, 1); got != 0.5 {
		t.Fatalf("Z(1, 1) = %v, want 0.5", got)
	}
	m.Set(0, 0, math.NaN())
	if !math.IsNaN(g.Z(0, 1)) {
		t.Fatal("NaN correlations must pass through")
	}
}
