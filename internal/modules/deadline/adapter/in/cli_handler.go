package in

import (
	"context"
	"time"

	"shelfcontrol/internal/modules/deadline/dto"
	deadlinein "shelfcontrol/internal/modules/deadline/port/in"
)

type CLIHandler struct {
	usecase deadlinein.Usecase
}

func NewCLIHandler(usecase deadlinein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, author, format, flexibility string, totalQuantity float64, dueAt time.Time) (dto.DeadlineOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{
		Title:         title,
		Author:        author,
		Format:        format,
		Flexibility:   flexibility,
		TotalQuantity: totalQuantity,
		DueAt:         dueAt,
	})
}

func (h CLIHandler) LogProgress(ctx context.Context, deadlineID string, value float64, baseline bool, timeSpentMin float64, at time.Time) (dto.DeadlineOutput, error) {
	return h.usecase.LogProgress(ctx, dto.LogProgressInput{
		DeadlineID:   deadlineID,
		Value:        value,
		Baseline:     baseline,
		TimeSpentMin: timeSpentMin,
		At:           at,
	})
}

func (h CLIHandler) SetStatus(ctx context.Context, deadlineID, status string) (dto.DeadlineOutput, error) {
	return h.usecase.SetStatus(ctx, dto.SetStatusInput{DeadlineID: deadlineID, Status: status})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.DeadlineOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.DeadlineDetailOutput, error) {
	return h.usecase.Get(ctx, id)
}
