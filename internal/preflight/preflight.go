package preflight

import (
	"context"

	"voiceconv/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes the directory checks that apply to cfg.
func RunAll(_ context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// Default output directory (always checked)
	results = append(results, CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir))

	// Log directory (only when file logging is on)
	if cfg.Logging.File {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	return results
}
