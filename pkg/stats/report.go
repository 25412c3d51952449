package stats

import (
	"time"

	"github.com/aretw0/notestats/pkg/core"
)

// Report bundles the output of every aggregator for one run.
type Report struct {
	GeneratedAt time.Time
	Basic       Basic
	Content     Content
	Markdown    Markdown
	Tasks       Tasks
	Temporal    Temporal
	Length      Length
}

// Collect runs the aggregators one after another over c.
// It returns core.ErrNoNotes when the corpus holds no notes, before any aggregation.
func Collect(c core.Corpus, now time.Time) (*Report, error) {
	if len(c.Notes()) == 0 {
		return nil, core.ErrNoNotes
	}

	return &Report{
		GeneratedAt: now,
		Basic:       BasicStats(c),
		Content:     ContentStats(c),
		Markdown:    MarkdownStats(c),
		Tasks:       TaskStats(c),
		Temporal:    TemporalStats(c, now),
		Length:      LengthStats(c),
	}, nil
}

// Sections returns each aggregator's MetricSet keyed by section name.
func (r *Report) Sections() map[string]core.MetricSet {
	return map[string]core.MetricSet{
		"basic":    r.Basic.Metrics(),
		"content":  r.Content.Metrics(),
		"markdown": r.Markdown.Metrics(),
		"tasks":    r.Tasks.Metrics(),
		"temporal": r.Temporal.Metrics(),
		"length":   r.Length.Metrics(),
	}
}
