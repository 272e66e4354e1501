package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-08-28", DayKey(ts))
}

func TestWeekKey(t *testing.T) {
	// 2026-08-28 falls in ISO week 35.
	ts := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-35", WeekKey(ts))
}

func TestWeekKeyYearBoundary(t *testing.T) {
	// Jan 1st 2027 is a Friday and belongs to ISO week 53 of 2026.
	ts := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-53", WeekKey(ts))
}

func TestMonthKey(t *testing.T) {
	ts := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-8", MonthKey(ts))

	dec := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-12", MonthKey(dec))
}
