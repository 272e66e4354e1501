// Package quota decides whether a reward may still be dispensed in the
// current day, week and month. Counters roll over lazily: a stored counter
// whose period key no longer matches the current period reads as zero, so no
// scheduled reset is ever needed.
package quota

import (
	"time"

	"salon-booking/internal/model"
	"salon-booking/internal/period"
)

// Effective returns the count a stored counter contributes against the
// current period identified by key. A stale key yields zero.
func Effective(c model.PeriodCounter, key string) int {
	if c.Key == key {
		return c.Count
	}
	return 0
}

// IsEligible reports whether the reward can be dispensed at time now.
// The exempt fallback reward is always eligible. Every other reward must be
// strictly below all three of its period limits. Absent counters count as
// zero; this never fails for a reward that has no history yet.
func IsEligible(r *model.Reward, now time.Time) bool {
	if r.Exempt {
		return true
	}

	daily := Effective(r.Dispensed.Daily, period.DayKey(now))
	weekly := Effective(r.Dispensed.Weekly, period.WeekKey(now))
	monthly := Effective(r.Dispensed.Monthly, period.MonthKey(now))

	return daily < r.Limits.Daily &&
		weekly < r.Limits.Weekly &&
		monthly < r.Limits.Monthly
}

// NextDispensed returns the counters the reward should hold after one more
// dispensation at time now. Each period re-derives its effective count first,
// so a counter left over from a previous day/week/month restarts from zero
// before the increment rather than accumulating across periods.
func NextDispensed(r *model.Reward, now time.Time) model.RewardDispensed {
	dayKey := period.DayKey(now)
	weekKey := period.WeekKey(now)
	monthKey := period.MonthKey(now)

	return model.RewardDispensed{
		Daily:   model.PeriodCounter{Count: Effective(r.Dispensed.Daily, dayKey) + 1, Key: dayKey},
		Weekly:  model.PeriodCounter{Count: Effective(r.Dispensed.Weekly, weekKey) + 1, Key: weekKey},
		Monthly: model.PeriodCounter{Count: Effective(r.Dispensed.Monthly, monthKey) + 1, Key: monthKey},
	}
}
