package period

import (
	"fmt"
	"time"
)

// Period keys identify the calendar bucket a dispensation counter belongs to.
// A stored counter only counts against the current quota when its key matches
// the key derived from the current time; otherwise it is stale and the
// effective count is zero. This is how counters roll over without any
// scheduled reset.

// DayKey returns the day bucket key, e.g. "2026-08-28".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey returns the ISO week bucket key, e.g. "2026-35".
// The year component is the ISO week-numbering year, which can differ from the
// calendar year around January 1st.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-%d", year, week)
}

// MonthKey returns the month bucket key, e.g. "2026-8". The month is not
// zero-padded.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
}
