package notestats

import (
	"log/slog"
	"time"

	"github.com/aretw0/notestats/internal/platform"
	"github.com/aretw0/notestats/pkg/stats"
)

// --- Types ---

// Pipeline is the scan -> aggregate -> render runner.
type Pipeline = platform.Pipeline

// Report is the output of every aggregator for one run.
type Report = stats.Report

// --- Configuration ---

// Option defines a functional option for configuring the pipeline.
type Option = platform.Option

// WithNotesDir sets the root of the notes tree.
func WithNotesDir(dir string) Option {
	return platform.WithNotesDir(dir)
}

// WithTemplate sets the template file. Empty selects the built-in template.
func WithTemplate(path string) Option {
	return platform.WithTemplate(path)
}

// WithOutput sets where the rendered report is written.
func WithOutput(path string) Option {
	return platform.WithOutput(path)
}

// WithExtensions overrides the note file extensions (default ".md").
func WithExtensions(exts ...string) Option {
	return platform.WithExtensions(exts...)
}

// WithExclude skips notes matching doublestar globs relative to the notes root.
func WithExclude(patterns ...string) Option {
	return platform.WithExclude(patterns...)
}

// WithLogger sets the logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source (useful for testing).
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// --- Factory ---

// New creates a new Pipeline.
func New(opts ...Option) (*Pipeline, error) {
	return platform.New(opts...)
}
