package usecase_test

import (
	"context"
	"testing"
	"time"

	"shelfcontrol/internal/modules/dashboard/service"
	"shelfcontrol/internal/modules/dashboard/usecase"
	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeSource struct {
	deadlines []deadlinedomain.Deadline
}

func (f *fakeSource) ListDeadlines(context.Context) ([]deadlinedomain.Deadline, error) {
	return f.deadlines, nil
}

var pace = deadlinedomain.PaceConfig{
	deadlinedomain.FormatPhysical: {Easy: 30, Tight: 60, Maximum: 150},
	deadlinedomain.FormatEBook:    {Easy: 30, Tight: 60, Maximum: 150},
	deadlinedomain.FormatAudio:    {Easy: 60, Tight: 120, Maximum: 480},
}

func TestOverviewAggregatesPortfolio(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	due := now.Add(10 * 24 * time.Hour)
	source := &fakeSource{deadlines: []deadlinedomain.Deadline{
		{ID: "dl-1", Title: "Pages", Format: deadlinedomain.FormatPhysical, Flexibility: deadlinedomain.FlexibilityFlexible, TotalQuantity: 300, DueAt: due},
		{ID: "dl-2", Title: "Minutes", Format: deadlinedomain.FormatAudio, Flexibility: deadlinedomain.FlexibilityFlexible, TotalQuantity: 900, DueAt: due},
	}}
	uc := usecase.NewInteractor(service.NewDashboardService(fakeClock{now}, source, pace))

	out, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(out.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out.Rows))
	}
	if out.Rows[0].PaceDisplay != "30 pages/day" {
		t.Fatalf("unexpected page pace display %q", out.Rows[0].PaceDisplay)
	}
	if out.Rows[1].PaceDisplay != "1h 30m/day" {
		t.Fatalf("unexpected audio pace display %q", out.Rows[1].PaceDisplay)
	}
	if out.ReadingGoal.Total != 30 || out.ReadingGoal.Display != "30 pages" {
		t.Fatalf("unexpected reading goal %+v", out.ReadingGoal)
	}
	if out.ListeningGoal.Total != 90 || out.ListeningGoal.Display != "1h 30m" {
		t.Fatalf("unexpected listening goal %+v", out.ListeningGoal)
	}
}

func TestOverviewGoalSurvivesCompletionButActiveDoesNot(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	due := now.Add(10 * 24 * time.Hour)
	deadlines := []deadlinedomain.Deadline{
		{ID: "dl-1", Title: "A", Format: deadlinedomain.FormatPhysical, TotalQuantity: 300, DueAt: due},
		{ID: "dl-2", Title: "B", Format: deadlinedomain.FormatPhysical, TotalQuantity: 450, DueAt: due},
	}
	source := &fakeSource{deadlines: deadlines}
	uc := usecase.NewInteractor(service.NewDashboardService(fakeClock{now}, source, pace))

	before, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if before.Active.Total != 75 || before.TodaysGoal.Total != 75 {
		t.Fatalf("expected 75/75 before completion, got %.2f/%.2f", before.Active.Total, before.TodaysGoal.Total)
	}

	source.deadlines[0].StatusLog = []deadlinedomain.StatusEntry{
		{ID: "st-1", Status: deadlinedomain.StatusComplete, CreatedAt: now},
	}
	after, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview after completion: %v", err)
	}
	if after.Active.Total != 45 {
		t.Fatalf("active total must drop to 45, got %.2f", after.Active.Total)
	}
	if after.TodaysGoal.Total != 75 {
		t.Fatalf("today's goal must stay 75, got %.2f", after.TodaysGoal.Total)
	}
}

func TestOverviewRendersUnknownPaceAsNA(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	source := &fakeSource{deadlines: []deadlinedomain.Deadline{
		{ID: "dl-1", Title: "No due date", Format: deadlinedomain.FormatPhysical, TotalQuantity: 300},
	}}
	uc := usecase.NewInteractor(service.NewDashboardService(fakeClock{now}, source, pace))

	out, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	row := out.Rows[0]
	if row.Known || row.PaceDisplay != "N/A" || row.UrgencyLabel != "N/A" {
		t.Fatalf("unknown pace must render N/A, got %+v", row)
	}
	if out.TodaysGoal.Total != 0 {
		t.Fatalf("unknown calculations contribute zero, got %.2f", out.TodaysGoal.Total)
	}
}
