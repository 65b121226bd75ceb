package domain

import "time"

// ProgressAsOfStartOfDay is the deadline's progress value as of midnight of
// the current day in now's location. It feeds the goal-stable aggregation
// path so the "today's goal" number does not shrink as the user reads during
// the day.
//
// An entry qualifies when it was created before start of today, or when it is
// a baseline entry (IgnoreInCalcs): baselines represent pre-existing progress
// rather than reading done today, whatever their literal timestamp says. The
// snapshot is the maximum qualifying value, not the latest, so out-of-order
// timestamps cannot deflate it. No qualifying entry means zero.
func (d Deadline) ProgressAsOfStartOfDay(now time.Time) float64 {
	start := StartOfDay(now)
	var max float64
	for _, entry := range d.Progress {
		if !entry.IgnoreInCalcs && !entry.CreatedAt.Before(start) {
			continue
		}
		if entry.Value > max {
			max = entry.Value
		}
	}
	return max
}

// StartOfDay is midnight of now's calendar day, in now's location.
func StartOfDay(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}
