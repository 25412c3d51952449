package platform

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/notestats/pkg/adapters/fs"
	"github.com/aretw0/notestats/pkg/core"
	"github.com/aretw0/notestats/pkg/report"
	"github.com/aretw0/notestats/pkg/stats"
)

// Pipeline runs scan -> aggregate -> render, strictly in that order.
type Pipeline struct {
	enum     *fs.Enumerator
	renderer *report.Renderer
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.RWMutex
	runs    int
	lastRun *time.Time
	lastErr error
}

// Collect scans the notes tree and runs every aggregator.
// It returns core.ErrNoNotes when there is nothing to report on.
func (p *Pipeline) Collect(ctx context.Context) (*stats.Report, error) {
	snap, err := p.enum.Load(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Collect(snap, p.now())
}

// Generate collects the statistics and renders the report.
// With an empty notes tree nothing is written and core.ErrNoNotes is returned.
func (p *Pipeline) Generate(ctx context.Context) (*stats.Report, error) {
	rep, err := p.generate(ctx)
	p.recordRun(err)
	return rep, err
}

func (p *Pipeline) generate(ctx context.Context) (*stats.Report, error) {
	rep, err := p.Collect(ctx)
	if err != nil {
		return nil, err
	}

	if err := p.renderer.Render(ctx, rep); err != nil {
		return nil, err
	}

	p.logger.Info("report generated",
		"output", p.renderer.OutputPath(),
		"notes", rep.Basic.TotalNotes,
		"words", rep.Basic.TotalWords,
	)
	return rep, nil
}

// Watch generates the report once, then again after every quiet period following
// a change to the notes tree, until ctx is done. Runs never overlap.
// It returns nil once ctx is done.
// Failed runs are logged and do not stop the loop.
func (p *Pipeline) Watch(ctx context.Context, delay time.Duration) error {
	changes, err := p.enum.Watch(ctx, delay)
	if err != nil {
		return err
	}

	p.runLogged(ctx)

	for batch := range changes {
		p.logger.Debug("regenerating report", "changed", len(batch))
		p.runLogged(ctx)
	}

	if ctx.Err() != nil {
		return nil
	}
	return errors.New("watcher stopped unexpectedly")
}

func (p *Pipeline) runLogged(ctx context.Context) {
	if _, err := p.Generate(ctx); err != nil {
		if errors.Is(err, core.ErrNoNotes) {
			p.logger.Warn("no notes to report on, skipping", "root", p.enum.Root())
			return
		}
		if ctx.Err() == nil {
			p.logger.Error("report generation failed", "error", err)
		}
	}
}

func (p *Pipeline) recordRun(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	p.runs++
	p.lastRun = &now
	p.lastErr = err
}
