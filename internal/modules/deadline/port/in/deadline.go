package in

import (
	"context"

	"shelfcontrol/internal/modules/deadline/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.DeadlineOutput, error)
	LogProgress(ctx context.Context, input dto.LogProgressInput) (dto.DeadlineOutput, error)
	SetStatus(ctx context.Context, input dto.SetStatusInput) (dto.DeadlineOutput, error)
	List(ctx context.Context) ([]dto.DeadlineOutput, error)
	Get(ctx context.Context, id string) (dto.DeadlineDetailOutput, error)
	ListDetailed(ctx context.Context) ([]dto.DeadlineDetailOutput, error)
}
