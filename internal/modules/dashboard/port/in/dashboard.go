package in

import (
	"context"

	"shelfcontrol/internal/modules/dashboard/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.OverviewOutput, error)
}
