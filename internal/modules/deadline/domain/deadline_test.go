package domain_test

import (
	"testing"
	"time"

	"shelfcontrol/internal/modules/deadline/domain"
)

func TestDeadlineValidate(t *testing.T) {
	t.Parallel()
	base := domain.Deadline{
		ID:            "dl-1",
		Title:         "Piranesi",
		Format:        domain.FormatPhysical,
		Flexibility:   domain.FlexibilityFlexible,
		TotalQuantity: 245,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid deadline rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*domain.Deadline)
	}{
		{"missing id", func(d *domain.Deadline) { d.ID = "" }},
		{"missing title", func(d *domain.Deadline) { d.Title = "  " }},
		{"bad format", func(d *domain.Deadline) { d.Format = "vinyl" }},
		{"bad flexibility", func(d *domain.Deadline) { d.Flexibility = "rigid" }},
		{"negative total", func(d *domain.Deadline) { d.TotalQuantity = -1 }},
	}
	for _, tc := range cases {
		d := base
		tc.mutate(&d)
		if err := d.Validate(); err == nil {
			t.Fatalf("%s should fail validation", tc.name)
		}
	}
}

func TestCurrentProgressUsesLatestTimestamp(t *testing.T) {
	t.Parallel()
	d := domain.Deadline{ID: "dl-1", Progress: []domain.ProgressEntry{
		{ID: "p-2", Value: 120, CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{ID: "p-1", Value: 80, CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}}
	if got := d.CurrentProgress(); got != 120 {
		t.Fatalf("expected latest value 120, got %.2f", got)
	}
	if got := (domain.Deadline{ID: "dl-2"}).CurrentProgress(); got != 0 {
		t.Fatalf("empty log means zero progress, got %.2f", got)
	}
}

func TestLatestStatusDefaultsToPending(t *testing.T) {
	t.Parallel()
	d := domain.Deadline{ID: "dl-1"}
	if got := d.LatestStatus(); got != domain.StatusPending {
		t.Fatalf("empty status log means pending, got %q", got)
	}
	d.StatusLog = []domain.StatusEntry{
		{ID: "st-2", Status: domain.StatusComplete, CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{ID: "st-1", Status: domain.StatusReading, CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
	if got := d.LatestStatus(); got != domain.StatusComplete {
		t.Fatalf("expected complete, got %q", got)
	}
	if !d.Archived() {
		t.Fatalf("complete deadline must be archived")
	}
	if domain.StatusToReview.Archived() {
		t.Fatalf("to_review is not archived")
	}
}
