package stats

import (
	"fmt"

	"github.com/aretw0/notestats/pkg/core"
)

// Markdown counts structural elements.
type Markdown struct {
	Headings        [4]int // H1..H4
	Lists           int
	Blockquotes     int
	Tables          int // table rows / 3: header, separator and at least one data row
	HorizontalRules int
}

// MarkdownStats counts headings, lists, quotes, tables and rules.
func MarkdownStats(c core.Corpus) Markdown {
	var m Markdown
	for i, re := range reHeadings {
		m.Headings[i] = c.Count(re)
	}
	m.Lists = c.Count(reBulletItem) + c.Count(reNumberedItem)
	m.Blockquotes = c.Count(reBlockquote)
	m.Tables = c.Count(reTableRow) / 3
	m.HorizontalRules = c.Count(reRuleDashes) + c.Count(reRuleStars)
	return m
}

func (m Markdown) Metrics() core.MetricSet {
	set := core.MetricSet{
		"lists":       m.Lists,
		"blockquotes": m.Blockquotes,
		"tables":      m.Tables,
		"hr":          m.HorizontalRules,
	}
	for i, n := range m.Headings {
		set[fmt.Sprintf("h%d", i+1)] = n
	}
	return set
}
