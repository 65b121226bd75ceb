package domain

import (
	"math"
	"sort"
	"time"

	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
)

// DayBucket is the amount read on one calendar day, in the deadline's
// canonical unit.
type DayBucket struct {
	Date   time.Time
	Amount float64
	Format deadlinedomain.Format
}

// BucketDailyActivity folds a deadline's progress log into per-day reading
// deltas for charting.
//
// The walk is anchored at the most recent baseline entry when one exists:
// its value seeds the running previous-progress and everything logged before
// it is dropped, so a backdated baseline never shows up as a one-day reading
// spike. Without a baseline the walk starts from zero. Each entry
// contributes max(value - previous, 0) to its calendar day's bucket;
// decreasing values are corrections, not negative reading. Logs with fewer
// than two entries have nothing to diff and produce no buckets.
func BucketDailyActivity(d deadlinedomain.Deadline) []DayBucket {
	entries := d.SortedProgress()
	if len(entries) < 2 {
		return nil
	}

	previous := 0.0
	start := 0
	if anchor := lastBaselineIndex(entries); anchor >= 0 {
		previous = entries[anchor].Value
		start = anchor + 1
	}

	totals := make(map[time.Time]float64)
	for _, entry := range entries[start:] {
		delta := entry.Value - previous
		if delta < 0 {
			delta = 0
		}
		totals[dayOf(entry.CreatedAt)] += delta
		previous = entry.Value
	}

	out := make([]DayBucket, 0, len(totals))
	for day, amount := range totals {
		out = append(out, DayBucket{
			Date:   day,
			Amount: round2(amount),
			Format: d.Format,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// lastBaselineIndex finds the most recent IgnoreInCalcs entry in the sorted
// log, later log position winning timestamp ties. -1 when no baseline exists.
func lastBaselineIndex(entries []deadlinedomain.ProgressEntry) int {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].IgnoreInCalcs {
			return i
		}
	}
	return -1
}

func dayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// round2 keeps fractional audio minutes readable in charts.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
