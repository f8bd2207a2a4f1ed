package output

import (
	"time"

	"github.com/sdejongh/dirsnap/pkg/models"
)

// BuildInfo summarizes one snapshot build for display.
type BuildInfo struct {
	OperationID string
	Root        string
	Files       int
	TotalBytes  uint64
	Duration    time.Duration
}

// Formatter defines the interface for result presentation.
// Implementations include human-readable and JSON formatters.
type Formatter interface {
	// BuildSummary reports the outcome of a snapshot build
	BuildSummary(info BuildInfo) error

	// Analysis presents zero-size files and duplicate groups
	Analysis(result models.AnalysisResult) error

	// Comparison presents the classification of two reports' differences
	Comparison(result models.ComparisonResult) error

	// InvalidNames presents filenames rejected by the grammar gate
	InvalidNames(names []string) error

	// Name returns the formatter name
	Name() string
}
