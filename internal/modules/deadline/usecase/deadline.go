package usecase

import (
	"context"
	"fmt"

	"shelfcontrol/internal/modules/deadline/domain"
	"shelfcontrol/internal/modules/deadline/dto"
	deadlinein "shelfcontrol/internal/modules/deadline/port/in"
	"shelfcontrol/internal/modules/deadline/service"
	apperrors "shelfcontrol/internal/platform/errors"
)

type Interactor struct {
	svc *service.DeadlineService
}

func NewInteractor(svc *service.DeadlineService) deadlinein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.DeadlineOutput, error) {
	deadline, err := i.svc.Add(ctx, input.Title, input.Author, domain.Format(input.Format), domain.Flexibility(input.Flexibility), input.TotalQuantity, input.DueAt)
	if err != nil {
		return dto.DeadlineOutput{}, err
	}
	return i.toOutput(deadline), nil
}

func (i *Interactor) LogProgress(ctx context.Context, input dto.LogProgressInput) (dto.DeadlineOutput, error) {
	deadline, err := i.svc.LogProgress(ctx, input.DeadlineID, input.Value, input.Baseline, input.TimeSpentMin, input.At)
	if err != nil {
		return dto.DeadlineOutput{}, err
	}
	return i.toOutput(deadline), nil
}

func (i *Interactor) SetStatus(ctx context.Context, input dto.SetStatusInput) (dto.DeadlineOutput, error) {
	deadline, err := i.svc.SetStatus(ctx, input.DeadlineID, domain.Status(input.Status))
	if err != nil {
		return dto.DeadlineOutput{}, err
	}
	return i.toOutput(deadline), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.DeadlineOutput, error) {
	deadlines, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeadlineOutput, 0, len(deadlines))
	for _, deadline := range deadlines {
		out = append(out, i.toOutput(deadline))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.DeadlineDetailOutput, error) {
	if id == "" {
		return dto.DeadlineDetailOutput{}, fmt.Errorf("%w: deadline id is required", apperrors.ErrInvalidInput)
	}
	deadline, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.DeadlineDetailOutput{}, err
	}
	return i.toDetail(deadline), nil
}

func (i *Interactor) ListDetailed(ctx context.Context) ([]dto.DeadlineDetailOutput, error) {
	deadlines, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeadlineDetailOutput, 0, len(deadlines))
	for _, deadline := range deadlines {
		out = append(out, i.toDetail(deadline))
	}
	return out, nil
}

func (i *Interactor) toOutput(d domain.Deadline) dto.DeadlineOutput {
	calc := i.svc.Calculations(d)
	return dto.DeadlineOutput{
		ID:              d.ID,
		Title:           d.Title,
		Author:          d.Author,
		Format:          string(d.Format),
		Flexibility:     string(d.Flexibility),
		TotalQuantity:   d.TotalQuantity,
		DueAt:           d.DueAt,
		Status:          string(d.LatestStatus()),
		CurrentProgress: d.CurrentProgress(),
		Calculation:     toCalculationOutput(d.Format, calc),
	}
}

func (i *Interactor) toDetail(d domain.Deadline) dto.DeadlineDetailOutput {
	detail := dto.DeadlineDetailOutput{DeadlineOutput: i.toOutput(d)}
	for _, entry := range d.SortedProgress() {
		detail.Progress = append(detail.Progress, dto.ProgressEntryOutput{
			ID:            entry.ID,
			Value:         entry.Value,
			IgnoreInCalcs: entry.IgnoreInCalcs,
			TimeSpentMin:  entry.TimeSpentMin,
			CreatedAt:     entry.CreatedAt,
		})
	}
	for _, entry := range d.StatusLog {
		detail.StatusLog = append(detail.StatusLog, dto.StatusEntryOutput{
			ID:        entry.ID,
			Status:    string(entry.Status),
			CreatedAt: entry.CreatedAt,
		})
	}
	return detail
}

func toCalculationOutput(format domain.Format, calc domain.Calculation) dto.CalculationOutput {
	out := dto.CalculationOutput{
		Known:        calc.Known,
		Urgency:      string(calc.Urgency),
		UrgencyLabel: calc.Urgency.Label(),
	}
	if !calc.Known {
		out.RemainingDisplay = "N/A"
		out.PaceDisplay = "N/A"
		return out
	}
	out.Remaining = calc.Remaining
	out.DaysLeft = calc.DaysLeft
	out.UnitsPerDay = calc.UnitsPerDay
	out.RemainingDisplay = domain.FormatQuantity(format, calc.Remaining)
	out.PaceDisplay = domain.FormatQuantity(format, calc.UnitsPerDay) + "/day"
	return out
}
