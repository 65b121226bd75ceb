package domain

import (
	"math"
	"time"
)

type Urgency string

const (
	UrgencyGood        Urgency = "good"
	UrgencyApproaching Urgency = "approaching"
	UrgencyUrgent      Urgency = "urgent"
	UrgencyOverdue     Urgency = "overdue"
	UrgencyImpossible  Urgency = "impossible"
	UrgencyUnknown     Urgency = ""
)

// Label is the user-facing name for an urgency level. The approaching and
// urgent bands are both surfaced as "Tight".
func (u Urgency) Label() string {
	switch u {
	case UrgencyGood:
		return "On track"
	case UrgencyApproaching, UrgencyUrgent:
		return "Tight"
	case UrgencyOverdue:
		return "Overdue"
	case UrgencyImpossible:
		return "Impossible"
	default:
		return "N/A"
	}
}

// PaceBands are the per-format thresholds separating the urgency levels, in
// units per day. A required pace at or below Easy is good; above Easy up to
// Tight is approaching; above Tight up to Maximum is urgent; above Maximum
// is considered impossible to sustain.
type PaceBands struct {
	Easy    float64
	Tight   float64
	Maximum float64
}

// PaceConfig maps formats to their bands. Missing formats take the page
// bands, matching the page-semantics fallback used everywhere else.
type PaceConfig map[Format]PaceBands

func (c PaceConfig) BandsFor(f Format) PaceBands {
	if bands, ok := c[f]; ok {
		return bands
	}
	if bands, ok := c[FormatPhysical]; ok {
		return bands
	}
	return PaceBands{Easy: 30, Tight: 60, Maximum: 150}
}

// Calculation is the derived pace state of one deadline. Known reports
// whether enough data existed to compute anything: without a due date or a
// total quantity the remaining fields carry no meaning and Urgency is
// UrgencyUnknown.
type Calculation struct {
	Known       bool
	Remaining   float64
	DaysLeft    int
	UnitsPerDay float64
	Urgency     Urgency
}

// Calculate derives the pace state for a deadline given an explicit progress
// value and time. It never fails: degraded input degrades to an unknown
// result. Archived deadlines keep their remaining/daysLeft/urgency but get a
// zero UnitsPerDay, since pace is meaningless once a book is no longer being
// worked. Goal-stable aggregation must not inherit that zeroing; it uses
// CalculatePace directly.
func Calculate(d Deadline, progress float64, now time.Time, bands PaceBands) Calculation {
	calc := CalculatePace(d, progress, now, bands)
	if calc.Known && d.Archived() {
		calc.UnitsPerDay = 0
	}
	return calc
}

// CalculatePace is Calculate without the archive zeroing.
func CalculatePace(d Deadline, progress float64, now time.Time, bands PaceBands) Calculation {
	if d.DueAt.IsZero() || d.TotalQuantity <= 0 {
		return Calculation{}
	}
	remaining := d.TotalQuantity - progress
	if remaining < 0 {
		remaining = 0
	}
	daysLeft := daysUntil(d.DueAt, now)

	calc := Calculation{
		Known:     true,
		Remaining: remaining,
		DaysLeft:  daysLeft,
	}
	switch {
	case remaining == 0:
		calc.UnitsPerDay = 0
		calc.Urgency = UrgencyGood
	case daysLeft <= 0:
		// Overdue with work left: a required daily pace is undefined.
		calc.UnitsPerDay = 0
		calc.Urgency = UrgencyOverdue
	default:
		pace := remaining / float64(daysLeft)
		calc.UnitsPerDay = pace
		calc.Urgency = classify(pace, bands)
	}
	return calc
}

func classify(pace float64, bands PaceBands) Urgency {
	switch {
	case bands.Maximum > 0 && pace > bands.Maximum:
		return UrgencyImpossible
	case bands.Tight > 0 && pace > bands.Tight:
		return UrgencyUrgent
	case bands.Easy > 0 && pace > bands.Easy:
		return UrgencyApproaching
	default:
		return UrgencyGood
	}
}

// daysUntil is ceil((due - now) / 1 day). It may be zero or negative when
// the due date has passed.
func daysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
