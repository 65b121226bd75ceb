package in

import (
	"context"

	"shelfcontrol/internal/modules/activity/dto"
)

type Usecase interface {
	DailyActivity(ctx context.Context, deadlineID string) (dto.ActivityOutput, error)
}
