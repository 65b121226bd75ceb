package domain

import (
	"time"

	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
)

// Totals is a dashboard aggregate. Total is the summed required daily pace;
// Current is the summed live progress. The two deliberately move on
// different clocks: Current changes with every logged read, Total only when
// the calendar day (or the portfolio itself) changes.
type Totals struct {
	Total   float64
	Current float64
}

// CalculationFn resolves the pace calculation for one deadline. Injected so
// the same reducer serves both the status-aware and goal-stable families.
type CalculationFn func(d deadlinedomain.Deadline) deadlinedomain.Calculation

// ProgressFn resolves the live progress value for one deadline.
type ProgressFn func(d deadlinedomain.Deadline) float64

// BandsFn resolves the configured pace bands for a format.
type BandsFn func(f deadlinedomain.Format) deadlinedomain.PaceBands

// StatusAwareTotals sums pace and live progress using each deadline's
// ordinary calculation, which is zero for archived deadlines. Portfolio
// views that should reflect only active work use this family.
func StatusAwareTotals(deadlines []deadlinedomain.Deadline, getCalculations CalculationFn, getProgress ProgressFn) Totals {
	return reduceTotals(deadlines, func(d deadlinedomain.Deadline) float64 {
		if getCalculations == nil {
			return 0
		}
		calc := getCalculations(d)
		if !calc.Known {
			return 0
		}
		return calc.UnitsPerDay
	}, getProgress)
}

// TodaysGoalTotals sums pace from each deadline's start-of-day progress
// snapshot, ignoring archive status. For a fixed calendar day the Total must
// not move as deadlines complete or as more progress lands today; only
// Current may.
func TodaysGoalTotals(deadlines []deadlinedomain.Deadline, getProgress ProgressFn, now time.Time, bands BandsFn) Totals {
	return reduceTotals(deadlines, func(d deadlinedomain.Deadline) float64 {
		if bands == nil {
			return 0
		}
		snapshot := d.ProgressAsOfStartOfDay(now)
		calc := deadlinedomain.CalculatePace(d, snapshot, now, bands(d.Format))
		if !calc.Known {
			return 0
		}
		return calc.UnitsPerDay
	}, getProgress)
}

func reduceTotals(deadlines []deadlinedomain.Deadline, goal func(deadlinedomain.Deadline) float64, getProgress ProgressFn) Totals {
	var totals Totals
	for _, d := range deadlines {
		totals.Total += goal(d)
		if getProgress != nil {
			totals.Current += getProgress(d)
		}
	}
	return totals
}

// FilterByFormat keeps only deadlines whose format is in the given set, so
// the shared reducers can serve audio-only or reading-only widgets.
func FilterByFormat(deadlines []deadlinedomain.Deadline, formats ...deadlinedomain.Format) []deadlinedomain.Deadline {
	var out []deadlinedomain.Deadline
	for _, d := range deadlines {
		for _, f := range formats {
			if d.Format == f {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// FormatDailyGoalDisplay renders an aggregate goal value for display in the
// unit semantics of the given format.
func FormatDailyGoalDisplay(value float64, format deadlinedomain.Format) string {
	return deadlinedomain.FormatQuantity(format, value)
}
