package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shelfcontrol/internal/modules/activity/service"
	"shelfcontrol/internal/modules/activity/usecase"
	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
	apperrors "shelfcontrol/internal/platform/errors"
)

type fakeSource struct {
	deadline deadlinedomain.Deadline
	err      error
}

func (f *fakeSource) GetDeadline(context.Context, string) (deadlinedomain.Deadline, error) {
	return f.deadline, f.err
}

func TestDailyActivityRendersBucketsAndSparkline(t *testing.T) {
	t.Parallel()
	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	source := &fakeSource{deadline: deadlinedomain.Deadline{
		ID: "dl-1", Title: "Piranesi", Format: deadlinedomain.FormatAudio,
		Progress: []deadlinedomain.ProgressEntry{
			{ID: "p-1", Value: 30, CreatedAt: day1},
			{ID: "p-2", Value: 120, CreatedAt: day2},
		},
	}}
	uc := usecase.NewInteractor(service.NewActivityService(source))

	out, err := uc.DailyActivity(context.Background(), "dl-1")
	if err != nil {
		t.Fatalf("daily activity: %v", err)
	}
	if out.Empty || len(out.Buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %+v", out)
	}
	if out.Buckets[0].Display != "30m" || out.Buckets[1].Display != "1h 30m" {
		t.Fatalf("bucket displays wrong: %+v", out.Buckets)
	}
	if len(out.Sparkline) != 2 {
		t.Fatalf("sparkline must cover each bucket, got %q", out.Sparkline)
	}
}

func TestDailyActivityEmptyState(t *testing.T) {
	t.Parallel()
	source := &fakeSource{deadline: deadlinedomain.Deadline{
		ID: "dl-1", Title: "Unstarted", Format: deadlinedomain.FormatPhysical,
		Progress: []deadlinedomain.ProgressEntry{
			{ID: "p-1", Value: 40, CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		},
	}}
	uc := usecase.NewInteractor(service.NewActivityService(source))

	out, err := uc.DailyActivity(context.Background(), "dl-1")
	if err != nil {
		t.Fatalf("daily activity: %v", err)
	}
	if !out.Empty || len(out.Buckets) != 0 {
		t.Fatalf("single-entry log must be an explicit empty state, got %+v", out)
	}
}

func TestDailyActivityPropagatesNotFound(t *testing.T) {
	t.Parallel()
	source := &fakeSource{err: apperrors.ErrNotFound}
	uc := usecase.NewInteractor(service.NewActivityService(source))
	if _, err := uc.DailyActivity(context.Background(), "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
