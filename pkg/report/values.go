package report

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/aretw0/notestats/pkg/stats"
)

// Values formats every first-pass placeholder for r.
// FileSize is deliberately absent: it is filled by Finalize.
func Values(r *stats.Report) map[string]string {
	itoa := strconv.Itoa

	v := map[string]string{
		TotalNotes:  itoa(r.Basic.TotalNotes),
		TotalWords:  humanize.Comma(int64(r.Basic.TotalWords)),
		TotalLines:  humanize.Comma(int64(r.Basic.TotalLines)),
		DiskUsage:   stats.HumanSize(r.Basic.DiskUsage),
		AvgWords:    itoa(r.Basic.AvgWords),
		AvgLines:    itoa(r.Basic.AvgLines),
		TotalVaults: itoa(r.Basic.Vaults),

		TotalTasks:          itoa(r.Tasks.Total),
		TasksCompleted:      itoa(r.Tasks.Completed),
		TasksUnchecked:      itoa(r.Tasks.Unchecked),
		TaskCompletion:      itoa(r.Tasks.Completion),
		TaskCompletionAngle: itoa(r.Tasks.Angle),
		TaskProgressBar:     r.Tasks.ProgressBar(),

		InternalLinks: itoa(r.Content.InternalLinks),
		ExternalURLs:  itoa(r.Content.ExternalURLs),
		Images:        itoa(r.Content.Images),
		CodeBlocks:    itoa(r.Content.CodeBlocks),
		MathExpr:      itoa(r.Content.Math),

		Lists:       itoa(r.Markdown.Lists),
		Blockquotes: itoa(r.Markdown.Blockquotes),
		Tables:      itoa(r.Markdown.Tables),
		HRCount:     itoa(r.Markdown.HorizontalRules),

		DaysSinceLastEdit:  itoa(r.Temporal.DaysSinceLastEdit),
		MonthlyActivity:    monthlyFragment(r.Temporal.Monthly),
		DayOfWeekBars:      weekdayBars(r.Temporal.Weekdays),
		MostActiveDay:      r.Temporal.MostActive.Label,
		MostActiveDayCount: itoa(r.Temporal.MostActive.Count),

		LengthDistribution: lengthFragment(r.Length),
		MostCommonBracket:  stats.Buckets[r.Length.MostCommon].Label,
		MostCommonCount:    itoa(r.Length.Counts[r.Length.MostCommon]),
		LongestBracket:     stats.Buckets[r.Length.Longest].Label,
		LongestCount:       itoa(r.Length.Counts[r.Length.Longest]),
		ShortestBracket:    stats.Buckets[r.Length.Shortest].Label,
		ShortestCount:      itoa(r.Length.Counts[r.Length.Shortest]),

		LastUpdated: r.GeneratedAt.Format(LastUpdatedLayout),
	}

	for i, name := range headingNames {
		v[name] = itoa(r.Markdown.Headings[i])
	}

	return v
}
