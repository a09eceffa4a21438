package pipeline

import "edareport/pkg/data"

// Config holds the fixed locations and generator parameters of a run.
type Config struct {
	SamplePath string
	PlotDir    string
	Generate   data.GenerateOptions
}

// DefaultConfig returns the settings used by the command.
func DefaultConfig() Config {
	return Config{
		SamplePath: "sample_data.csv",
		PlotDir:    "plots",
		Generate:   data.DefaultGenerateOptions(),
	}
}
