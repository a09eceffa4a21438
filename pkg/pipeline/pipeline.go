package pipeline

import (
	"fmt"
	"io"

	"edareport/pkg/analysis"
	"edareport/pkg/data"
	"edareport/pkg/dataprep"
	"edareport/pkg/viz"
)

// Run executes the whole analysis once: ensure the sample exists, load,
// clean, analyze, plot and report. It stops at the first error.
func Run(cfg Config, w io.Writer) error {
	if _, err := data.EnsureSample(cfg.SamplePath, cfg.Generate, w); err != nil {
		return fmt.Errorf("pipeline: sample: %w", err)
	}

	t, err := data.Load(cfg.SamplePath, w)
	if err != nil {
		return fmt.Errorf("pipeline: load: %w", err)
	}

	t, err = dataprep.Clean(t, w)
	if err != nil {
		return fmt.Errorf("pipeline: clean: %w", err)
	}

	analysis.Analyze(t, w)

	if err := viz.Render(t, cfg.PlotDir, w); err != nil {
		return fmt.Errorf("pipeline: plots: %w", err)
	}

	analysis.Report(t, w)
	fmt.Fprintf(w, "\nPlots saved in the '%s' directory.\n", cfg.PlotDir)
	return nil
}
