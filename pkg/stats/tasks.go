package stats

import (
	"strings"

	"github.com/aretw0/notestats/pkg/core"
)

// Progress bar geometry.
const (
	ProgressBarWidth = 20
	ProgressFilled   = "="
	ProgressEmpty    = "-"
)

// Tasks summarises checklist items.
type Tasks struct {
	Total      int
	Completed  int
	Unchecked  int
	Completion int // percent, floored
	Angle      int // degrees of a circular indicator
}

// TaskStats counts "- [ ]" and "- [x]" items.
func TaskStats(c core.Corpus) Tasks {
	t := Tasks{
		Total:     c.Count(reTaskAny),
		Completed: c.Count(reTaskDone),
	}
	t.Unchecked = t.Total - t.Completed
	if t.Total > 0 {
		t.Completion = t.Completed * 100 / t.Total
	}
	t.Angle = t.Completion * 360 / 100
	return t
}

// Filled returns how many of the ProgressBarWidth segments are filled.
func (t Tasks) Filled() int {
	return t.Completion * ProgressBarWidth / 100
}

// ProgressBar renders the completion as a fixed width bar, e.g. "=====---------------".
func (t Tasks) ProgressBar() string {
	filled := t.Filled()
	return strings.Repeat(ProgressFilled, filled) + strings.Repeat(ProgressEmpty, ProgressBarWidth-filled)
}

func (t Tasks) Metrics() core.MetricSet {
	return core.MetricSet{
		"total_tasks":           t.Total,
		"tasks_completed":       t.Completed,
		"tasks_unchecked":       t.Unchecked,
		"task_completion":       t.Completion,
		"task_completion_angle": t.Angle,
		"task_progress_bar":     t.ProgressBar(),
	}
}
