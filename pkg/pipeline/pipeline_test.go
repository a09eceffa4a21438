package pipeline

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edareport/pkg/data"
)

func tempConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.SamplePath = filepath.Join(dir, "sample_data.csv")
	cfg.PlotDir = filepath.Join(dir, "plots")
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SamplePath != "sample_data.csv" || cfg.PlotDir != "plots" {
		t.Fatalf("unexpected paths %+v", cfg)
	}
	if cfg.Generate != data.DefaultGenerateOptions() {
		t.Fatalf("unexpected generate options %+v", cfg.Generate)
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := tempConfig(t)
	var out bytes.Buffer
	if err := Run(cfg, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	steps := []string{
		"Sample data written to",
		"Loading data from",
		"Cleaning data...",
		"Basic statistics:",
		"Generating plots...",
		"--- Report ---",
		"Total records: 100",
		"Plots saved in the '" + cfg.PlotDir + "' directory.",
	}
	last := -1
	for _, s := range steps {
		idx := strings.Index(got, s)
		if idx < 0 {
			t.Fatalf("output missing %q:\n%s", s, got)
		}
		if idx < last {
			t.Fatalf("%q printed out of order:\n%s", s, got)
		}
		last = idx
	}

	entries, err := os.ReadDir(cfg.PlotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d chart files, want 4", len(entries))
	}
}

func TestRunKeepsExistingSample(t *testing.T) {
	cfg := tempConfig(t)
	if err := Run(cfg, io.Discard); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	before, err := os.ReadFile(cfg.SamplePath)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Run(cfg, &out); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if strings.Contains(out.String(), "Sample data written to") {
		t.Fatal("second run regenerated the sample")
	}
	after, err := os.ReadFile(cfg.SamplePath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("sample file changed between runs")
	}
}

func TestRunMalformedSample(t *testing.T) {
	cfg := tempConfig(t)
	if err := os.WriteFile(cfg.SamplePath, []byte("id,age\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := Run(cfg, io.Discard)
	if !errors.Is(err, data.ErrSchemaMismatch) {
		t.Fatalf("Run error = %v, want ErrSchemaMismatch", err)
	}
	if _, statErr := os.Stat(cfg.PlotDir); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("plots must not be written after a load failure, stat err = %v", statErr)
	}
}
