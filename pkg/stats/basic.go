package stats

import "github.com/aretw0/notestats/pkg/core"

// Basic holds the overall size of the notes tree.
type Basic struct {
	TotalNotes int
	TotalWords int
	TotalLines int
	DiskUsage  int64 // bytes
	AvgWords   int   // truncated; 0 when there are no notes
	AvgLines   int
	Vaults     int
}

// BasicStats totals words and lines over all notes.
func BasicStats(c core.Corpus) Basic {
	notes := c.Notes()
	b := Basic{
		TotalNotes: len(notes),
		DiskUsage:  c.DiskUsage(),
		Vaults:     c.Vaults(),
	}
	for _, n := range notes {
		b.TotalWords += n.Words
		b.TotalLines += n.Lines
	}
	if b.TotalNotes > 0 {
		b.AvgWords = b.TotalWords / b.TotalNotes
		b.AvgLines = b.TotalLines / b.TotalNotes
	}
	return b
}

// Metrics implements the per-aggregator MetricSet view.
func (b Basic) Metrics() core.MetricSet {
	return core.MetricSet{
		"total_notes":      b.TotalNotes,
		"total_words":      b.TotalWords,
		"total_lines":      b.TotalLines,
		"disk_usage_bytes": b.DiskUsage,
		"disk_usage":       HumanSize(b.DiskUsage),
		"avg_words":        b.AvgWords,
		"avg_lines":        b.AvgLines,
		"total_vaults":     b.Vaults,
	}
}
