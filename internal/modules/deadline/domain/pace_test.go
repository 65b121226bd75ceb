package domain_test

import (
	"testing"
	"time"

	"shelfcontrol/internal/modules/deadline/domain"
)

var pageBands = domain.PaceBands{Easy: 30, Tight: 60, Maximum: 150}

func paceDeadline(total float64, due time.Time) domain.Deadline {
	return domain.Deadline{
		ID:            "dl-1",
		Title:         "The Name of the Wind",
		Format:        domain.FormatPhysical,
		Flexibility:   domain.FlexibilityFlexible,
		TotalQuantity: total,
		DueAt:         due,
	}
}

func TestCalculateRequiredDailyPace(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := paceDeadline(300, now.Add(10*24*time.Hour))

	calc := domain.Calculate(d, 0, now, pageBands)
	if !calc.Known {
		t.Fatalf("calculation should be known")
	}
	if calc.Remaining != 300 {
		t.Fatalf("expected remaining 300, got %.2f", calc.Remaining)
	}
	if calc.DaysLeft != 10 {
		t.Fatalf("expected 10 days left, got %d", calc.DaysLeft)
	}
	if calc.UnitsPerDay != 30 {
		t.Fatalf("expected 30 units/day, got %.2f", calc.UnitsPerDay)
	}
	if calc.Urgency != domain.UrgencyGood {
		t.Fatalf("expected good urgency, got %q", calc.Urgency)
	}
}

func TestCalculateUnknownWithoutDueDateOrTotal(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	noDue := paceDeadline(300, time.Time{})
	if calc := domain.Calculate(noDue, 50, now, pageBands); calc.Known || calc.Urgency != domain.UrgencyUnknown {
		t.Fatalf("missing due date must yield unknown, got %+v", calc)
	}
	noTotal := paceDeadline(0, now.Add(24*time.Hour))
	if calc := domain.Calculate(noTotal, 0, now, pageBands); calc.Known {
		t.Fatalf("missing total must yield unknown, got %+v", calc)
	}
	if got := domain.UrgencyUnknown.Label(); got != "N/A" {
		t.Fatalf("unknown urgency should display N/A, got %q", got)
	}
}

func TestCalculateOverdueAndFinished(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	overdue := paceDeadline(300, now.Add(-48*time.Hour))
	calc := domain.Calculate(overdue, 100, now, pageBands)
	if calc.Urgency != domain.UrgencyOverdue {
		t.Fatalf("expected overdue, got %q", calc.Urgency)
	}
	if calc.UnitsPerDay != 0 {
		t.Fatalf("overdue pace must be undefined (0), got %.2f", calc.UnitsPerDay)
	}
	if calc.DaysLeft > 0 {
		t.Fatalf("expected non-positive days left, got %d", calc.DaysLeft)
	}

	finished := paceDeadline(300, now.Add(-48*time.Hour))
	calc = domain.Calculate(finished, 300, now, pageBands)
	if calc.Urgency != domain.UrgencyGood || calc.Remaining != 0 || calc.UnitsPerDay != 0 {
		t.Fatalf("nothing remaining should be good with zero pace, got %+v", calc)
	}

	ahead := paceDeadline(300, now.Add(24*time.Hour))
	if calc := domain.Calculate(ahead, 320, now, pageBands); calc.Remaining != 0 {
		t.Fatalf("remaining must clamp at zero, got %.2f", calc.Remaining)
	}
}

func TestCalculateUrgencyBands(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		total float64
		want  domain.Urgency
		label string
	}{
		{"good", 30, domain.UrgencyGood, "On track"},
		{"approaching", 45, domain.UrgencyApproaching, "Tight"},
		{"urgent", 100, domain.UrgencyUrgent, "Tight"},
		{"impossible", 200, domain.UrgencyImpossible, "Impossible"},
	}
	for _, tc := range cases {
		// One day out, so required pace equals the remaining total.
		d := paceDeadline(tc.total, now.Add(24*time.Hour))
		calc := domain.Calculate(d, 0, now, pageBands)
		if calc.Urgency != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, calc.Urgency)
		}
		if calc.Urgency.Label() != tc.label {
			t.Fatalf("%s: expected label %q, got %q", tc.name, tc.label, calc.Urgency.Label())
		}
	}
}

func TestCalculateZeroesPaceForArchivedDeadlines(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := paceDeadline(300, now.Add(10*24*time.Hour))
	d.StatusLog = []domain.StatusEntry{
		{ID: "st-1", DeadlineID: d.ID, Status: domain.StatusReading, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "st-2", DeadlineID: d.ID, Status: domain.StatusComplete, CreatedAt: now.Add(-time.Hour)},
	}

	calc := domain.Calculate(d, 60, now, pageBands)
	if calc.UnitsPerDay != 0 {
		t.Fatalf("archived deadline must have zero pace, got %.2f", calc.UnitsPerDay)
	}
	if calc.Remaining != 240 {
		t.Fatalf("archived deadline keeps remaining, got %.2f", calc.Remaining)
	}

	goal := domain.CalculatePace(d, 60, now, pageBands)
	if goal.UnitsPerDay != 24 {
		t.Fatalf("goal path must ignore archive status, got %.2f", goal.UnitsPerDay)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := paceDeadline(512, now.Add(7*24*time.Hour))
	first := domain.Calculate(d, 128, now, pageBands)
	second := domain.Calculate(d, 128, now, pageBands)
	if first != second {
		t.Fatalf("identical inputs must yield identical outputs: %+v vs %+v", first, second)
	}
}
