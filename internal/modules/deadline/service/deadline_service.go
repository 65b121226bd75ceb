package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shelfcontrol/internal/modules/deadline/domain"
	deadlineout "shelfcontrol/internal/modules/deadline/port/out"
	"shelfcontrol/internal/platform/clock"
	apperrors "shelfcontrol/internal/platform/errors"
	"shelfcontrol/internal/platform/id"
	"shelfcontrol/internal/platform/tx"
)

type DeadlineService struct {
	clock clock.Clock
	idGen id.Generator
	store deadlineout.DeadlineStore
	txm   tx.Manager
	pace  domain.PaceConfig
}

func NewDeadlineService(clock clock.Clock, idGen id.Generator, store deadlineout.DeadlineStore, txm tx.Manager, pace domain.PaceConfig) *DeadlineService {
	return &DeadlineService{clock: clock, idGen: idGen, store: store, txm: txm, pace: pace}
}

func (s *DeadlineService) Add(ctx context.Context, title, author string, format domain.Format, flexibility domain.Flexibility, totalQuantity float64, dueAt time.Time) (domain.Deadline, error) {
	now := s.clock.Now()
	if flexibility == "" {
		flexibility = domain.FlexibilityFlexible
	}
	deadline := domain.Deadline{
		ID:            s.idGen.New(),
		Title:         strings.TrimSpace(title),
		Author:        strings.TrimSpace(author),
		Format:        format,
		Flexibility:   flexibility,
		TotalQuantity: totalQuantity,
		DueAt:         dueAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := deadline.Validate(); err != nil {
		return domain.Deadline{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	initial := domain.StatusEntry{
		ID:         s.idGen.New(),
		DeadlineID: deadline.ID,
		Status:     domain.StatusPending,
		CreatedAt:  now,
	}
	err := s.txm.Within(ctx, func(ctx context.Context) error {
		if err := s.store.SaveDeadline(ctx, deadline); err != nil {
			return err
		}
		return s.store.AppendStatus(ctx, initial)
	})
	if err != nil {
		return domain.Deadline{}, err
	}
	deadline.StatusLog = []domain.StatusEntry{initial}
	return deadline, nil
}

func (s *DeadlineService) LogProgress(ctx context.Context, deadlineID string, value float64, baseline bool, timeSpentMin float64, at time.Time) (domain.Deadline, error) {
	if strings.TrimSpace(deadlineID) == "" {
		return domain.Deadline{}, fmt.Errorf("%w: deadline id is required", apperrors.ErrInvalidInput)
	}
	if value < 0 {
		return domain.Deadline{}, fmt.Errorf("%w: progress must not be negative", apperrors.ErrInvalidInput)
	}
	deadline, err := s.store.FindByID(ctx, deadlineID)
	if err != nil {
		return domain.Deadline{}, err
	}
	if at.IsZero() {
		at = s.clock.Now()
	}
	entry := domain.ProgressEntry{
		ID:            s.idGen.New(),
		DeadlineID:    deadline.ID,
		Value:         value,
		IgnoreInCalcs: baseline,
		TimeSpentMin:  timeSpentMin,
		CreatedAt:     at,
	}
	if err := s.store.AppendProgress(ctx, entry); err != nil {
		return domain.Deadline{}, err
	}
	deadline.Progress = append(deadline.Progress, entry)
	return deadline, nil
}

func (s *DeadlineService) SetStatus(ctx context.Context, deadlineID string, status domain.Status) (domain.Deadline, error) {
	if err := status.Validate(); err != nil {
		return domain.Deadline{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	deadline, err := s.store.FindByID(ctx, deadlineID)
	if err != nil {
		return domain.Deadline{}, err
	}
	entry := domain.StatusEntry{
		ID:         s.idGen.New(),
		DeadlineID: deadline.ID,
		Status:     status,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.store.AppendStatus(ctx, entry); err != nil {
		return domain.Deadline{}, err
	}
	deadline.StatusLog = append(deadline.StatusLog, entry)
	return deadline, nil
}

func (s *DeadlineService) Get(ctx context.Context, deadlineID string) (domain.Deadline, error) {
	return s.store.FindByID(ctx, deadlineID)
}

func (s *DeadlineService) List(ctx context.Context) ([]domain.Deadline, error) {
	return s.store.List(ctx)
}

// Calculations derives the pace state for one deadline at the current time,
// using the live progress value and the configured bands for its format.
func (s *DeadlineService) Calculations(d domain.Deadline) domain.Calculation {
	return domain.Calculate(d, d.CurrentProgress(), s.clock.Now(), s.pace.BandsFor(d.Format))
}
