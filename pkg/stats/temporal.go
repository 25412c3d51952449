package stats

import (
	"time"

	"github.com/aretw0/notestats/pkg/core"
)

// MonthsTracked is the number of trailing calendar months reported, current month included.
const MonthsTracked = 6

// MonthActivity counts the notes last modified within one calendar month.
type MonthActivity struct {
	Label string    // e.g. "Jan 2025"
	Start time.Time // inclusive
	End   time.Time // exclusive, start of the following month
	Count int
}

// DayActivity counts the notes last modified on one weekday.
type DayActivity struct {
	Label string // "Mon".."Sun"
	Count int
}

// Temporal describes when notes were last touched.
type Temporal struct {
	LastEdit          time.Time // zero when there are no notes
	DaysSinceLastEdit int
	Monthly           []MonthActivity // oldest first
	Weekdays          []DayActivity   // Monday first
	MostActive        DayActivity     // first maximum in Monday-first order
}

// weekdays in Monday-first order.
var weekdays = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// TemporalStats buckets modification times relative to now.
// Calendar boundaries are taken in now's location.
func TemporalStats(c core.Corpus, now time.Time) Temporal {
	notes := c.Notes()
	t := Temporal{
		Monthly:  trailingMonths(now, MonthsTracked),
		Weekdays: make([]DayActivity, len(weekdays)),
	}

	for i, wd := range weekdays {
		t.Weekdays[i].Label = wd.String()[:3]
	}

	for _, n := range notes {
		mtime := n.ModTime.In(now.Location())

		if mtime.After(t.LastEdit) {
			t.LastEdit = mtime
		}

		for i := range t.Monthly {
			m := &t.Monthly[i]
			if !mtime.Before(m.Start) && mtime.Before(m.End) {
				m.Count++
				break
			}
		}

		t.Weekdays[weekdayIndex(mtime.Weekday())].Count++
	}

	if len(notes) > 0 {
		if age := now.Sub(t.LastEdit); age > 0 {
			t.DaysSinceLastEdit = int(age / (24 * time.Hour))
		}
	}

	t.MostActive = t.Weekdays[0]
	for _, d := range t.Weekdays[1:] {
		if d.Count > t.MostActive.Count {
			t.MostActive = d
		}
	}

	return t
}

// weekdayIndex maps a time.Weekday (Sunday = 0) onto Monday-first order.
func weekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// trailingMonths returns n consecutive calendar months ending with now's month.
func trailingMonths(now time.Time, n int) []MonthActivity {
	loc := now.Location()
	months := make([]MonthActivity, 0, n)
	for i := n - 1; i >= 0; i-- {
		year, month := shiftMonth(now.Year(), now.Month(), -i)
		start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
		months = append(months, MonthActivity{
			Label: start.Format("Jan 2006"),
			Start: start,
			End:   nextMonthStart(start),
		})
	}
	return months
}

// shiftMonth moves delta months from year/month, carrying across year boundaries.
func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	idx := year*12 + int(month-1) + delta
	y := idx / 12
	m := idx % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, time.Month(m + 1)
}

// nextMonthStart returns midnight on the first day of the month after start.
func nextMonthStart(start time.Time) time.Time {
	if start.Month() == time.December {
		return time.Date(start.Year()+1, time.January, 1, 0, 0, 0, 0, start.Location())
	}
	return time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, start.Location())
}

func (t Temporal) Metrics() core.MetricSet {
	monthly := make([]map[string]any, len(t.Monthly))
	for i, m := range t.Monthly {
		monthly[i] = map[string]any{"month": m.Label, "count": m.Count}
	}
	days := make([]map[string]any, len(t.Weekdays))
	for i, d := range t.Weekdays {
		days[i] = map[string]any{"day": d.Label, "count": d.Count}
	}
	return core.MetricSet{
		"days_since_last_edit":  t.DaysSinceLastEdit,
		"monthly_activity":      monthly,
		"day_of_week":           days,
		"most_active_day":       t.MostActive.Label,
		"most_active_day_count": t.MostActive.Count,
	}
}
