package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking/internal/model"
	"salon-booking/internal/period"
)

func newReward(daily, weekly, monthly int) *model.Reward {
	return &model.Reward{
		Text:   "10% off your next treatment",
		Limits: model.RewardLimits{Daily: daily, Weekly: weekly, Monthly: monthly},
	}
}

func TestIsEligibleNoHistory(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	assert.True(t, IsEligible(newReward(1, 5, 15), now))
}

func TestIsEligibleBelowAllLimits(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	r := newReward(5, 20, 50)
	r.Dispensed = model.RewardDispensed{
		Daily:   model.PeriodCounter{Count: 4, Key: period.DayKey(now)},
		Weekly:  model.PeriodCounter{Count: 19, Key: period.WeekKey(now)},
		Monthly: model.PeriodCounter{Count: 49, Key: period.MonthKey(now)},
	}
	assert.True(t, IsEligible(r, now))
}

func TestIsEligibleAnyLimitReached(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		dispensed model.RewardDispensed
	}{
		{"daily at limit", model.RewardDispensed{
			Daily: model.PeriodCounter{Count: 5, Key: period.DayKey(now)},
		}},
		{"weekly at limit", model.RewardDispensed{
			Weekly: model.PeriodCounter{Count: 20, Key: period.WeekKey(now)},
		}},
		{"monthly at limit", model.RewardDispensed{
			Monthly: model.PeriodCounter{Count: 50, Key: period.MonthKey(now)},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newReward(5, 20, 50)
			r.Dispensed = tc.dispensed
			assert.False(t, IsEligible(r, now))
		})
	}
}

func TestIsEligibleStaleCountersReadZero(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	r := newReward(1, 1, 1)
	// All counters exhausted, but for previous periods.
	r.Dispensed = model.RewardDispensed{
		Daily:   model.PeriodCounter{Count: 1, Key: "2026-08-27"},
		Weekly:  model.PeriodCounter{Count: 1, Key: "2026-34"},
		Monthly: model.PeriodCounter{Count: 1, Key: "2026-7"},
	}
	assert.True(t, IsEligible(r, now))
}

func TestExemptAlwaysEligible(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	r := newReward(0, 0, 0)
	r.Exempt = true
	r.Dispensed = model.RewardDispensed{
		Daily: model.PeriodCounter{Count: 1000, Key: period.DayKey(now)},
	}
	assert.True(t, IsEligible(r, now))
}

func TestNextDispensedIncrementsWithinPeriod(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	r := newReward(5, 20, 50)
	r.Dispensed = model.RewardDispensed{
		Daily:   model.PeriodCounter{Count: 2, Key: period.DayKey(now)},
		Weekly:  model.PeriodCounter{Count: 7, Key: period.WeekKey(now)},
		Monthly: model.PeriodCounter{Count: 11, Key: period.MonthKey(now)},
	}

	next := NextDispensed(r, now)
	assert.Equal(t, 3, next.Daily.Count)
	assert.Equal(t, 8, next.Weekly.Count)
	assert.Equal(t, 12, next.Monthly.Count)
}

func TestNextDispensedResetsAcrossPeriodBoundary(t *testing.T) {
	day1 := time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.September, 1, 1, 0, 0, 0, time.UTC) // new day, week 36, new month

	r := newReward(5, 20, 50)
	r.Dispensed = model.RewardDispensed{
		Daily:   model.PeriodCounter{Count: 4, Key: period.DayKey(day1)},
		Weekly:  model.PeriodCounter{Count: 10, Key: period.WeekKey(day1)},
		Monthly: model.PeriodCounter{Count: 30, Key: period.MonthKey(day1)},
	}

	next := NextDispensed(r, day2)
	require.Equal(t, model.PeriodCounter{Count: 1, Key: "2026-09-01"}, next.Daily)
	require.Equal(t, model.PeriodCounter{Count: 1, Key: "2026-9"}, next.Monthly)
	// Both days sit in ISO week 36, so the weekly counter keeps accumulating.
	require.Equal(t, model.PeriodCounter{Count: 11, Key: "2026-36"}, next.Weekly)
}

func TestNextDispensedRollsOverExactlyOnce(t *testing.T) {
	// Crossing a day boundary resets the daily base to zero once; repeated
	// dispensations in the new day keep accumulating, never re-reset.
	before := time.Date(2026, time.August, 27, 18, 0, 0, 0, time.UTC)
	after := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)

	r := newReward(10, 100, 100)
	r.Dispensed = model.RewardDispensed{
		Daily: model.PeriodCounter{Count: 7, Key: period.DayKey(before)},
	}

	r.Dispensed = NextDispensed(r, after)
	assert.Equal(t, 1, r.Dispensed.Daily.Count)

	r.Dispensed = NextDispensed(r, after)
	assert.Equal(t, 2, r.Dispensed.Daily.Count)

	r.Dispensed = NextDispensed(r, after.Add(time.Hour))
	assert.Equal(t, 3, r.Dispensed.Daily.Count)
}
