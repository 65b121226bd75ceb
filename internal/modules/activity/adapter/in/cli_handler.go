package in

import (
	"context"

	"shelfcontrol/internal/modules/activity/dto"
	activityin "shelfcontrol/internal/modules/activity/port/in"
)

type CLIHandler struct {
	usecase activityin.Usecase
}

func NewCLIHandler(usecase activityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) DailyActivity(ctx context.Context, deadlineID string) (dto.ActivityOutput, error) {
	return h.usecase.DailyActivity(ctx, deadlineID)
}
