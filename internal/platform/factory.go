package platform

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/notestats/pkg/adapters/fs"
	"github.com/aretw0/notestats/pkg/report"
)

// New wires the enumerator and renderer into a Pipeline.
//
//	p, err := notestats.New(notestats.WithNotesDir("./notes"), notestats.WithOutput("notes.html"))
func New(opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.clock == nil {
		return nil, fmt.Errorf("clock must not be nil")
	}

	enum, err := fs.NewEnumerator(fs.Config{
		Root:       o.notesDir,
		Extensions: o.extensions,
		Exclude:    o.exclude,
		Logger:     o.logger,
	})
	if err != nil {
		return nil, err
	}

	renderer := report.NewRenderer(report.Config{
		TemplatePath: o.templatePath,
		OutputPath:   o.outputPath,
		Logger:       o.logger,
	})

	return &Pipeline{
		enum:     enum,
		renderer: renderer,
		logger:   o.logger,
		now:      o.clock,
	}, nil
}
