package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/notestats/pkg/stats"
)

// BarWidth is the length of the longest weekday bar.
const BarWidth = 30

// BarChar draws the weekday bars.
const BarChar = "█"

// LastUpdatedLayout formats the generation date (dd/mm/yyyy).
const LastUpdatedLayout = "02/01/2006"

// monthlyFragment renders one calendar cell per month.
func monthlyFragment(months []stats.MonthActivity) string {
	var b strings.Builder
	for _, m := range months {
		fmt.Fprintf(&b, "          <div class=\"calendar-month\">\n")
		fmt.Fprintf(&b, "            <div class=\"month-label\">%s</div>\n", m.Label)
		fmt.Fprintf(&b, "            <div class=\"month-value\">%d</div>\n", m.Count)
		fmt.Fprintf(&b, "          </div>\n")
	}
	return b.String()
}

// weekdayBars renders "Mon: ████ 4" lines scaled so the busiest day gets BarWidth blocks.
func weekdayBars(days []stats.DayActivity) string {
	peak := 0
	for _, d := range days {
		peak = max(peak, d.Count)
	}
	if peak == 0 {
		peak = 1
	}

	lines := make([]string, len(days))
	for i, d := range days {
		bar := strings.Repeat(BarChar, d.Count*BarWidth/peak)
		lines[i] = fmt.Sprintf("%s: %s %d", d.Label, bar, d.Count)
	}
	return strings.Join(lines, "\n")
}

// lengthFragment renders one list item per length bucket.
func lengthFragment(l stats.Length) string {
	var b strings.Builder
	for i, bucket := range stats.Buckets {
		fmt.Fprintf(&b, "          <li><span class=\"label\">%s words</span> <span class=\"value\">%d notes</span></li>\n",
			bucket.Label, l.Counts[i])
	}
	return b.String()
}
