package platform

import (
	"log/slog"
	"time"
)

// options holds the internal configuration for the pipeline.
type options struct {
	notesDir     string
	templatePath string
	outputPath   string
	extensions   []string
	exclude      []string
	logger       *slog.Logger
	clock        func() time.Time
}

// Option defines a functional option for configuring the pipeline.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		templatePath: "", // embedded default template
		logger:       nil,
		clock:        time.Now,
	}
}

// WithNotesDir sets the root of the notes tree.
func WithNotesDir(dir string) Option {
	return func(o *options) {
		o.notesDir = dir
	}
}

// WithTemplate sets the template file. Empty selects the built-in template.
func WithTemplate(path string) Option {
	return func(o *options) {
		o.templatePath = path
	}
}

// WithOutput sets where the rendered report is written.
func WithOutput(path string) Option {
	return func(o *options) {
		o.outputPath = path
	}
}

// WithExtensions overrides the note file extensions (default ".md").
func WithExtensions(exts ...string) Option {
	return func(o *options) {
		o.extensions = exts
	}
}

// WithExclude adds doublestar globs, relative to the notes root, to skip.
func WithExclude(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}

// WithLogger sets the logger for the pipeline and its components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source; ages and month windows are relative to it.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}
