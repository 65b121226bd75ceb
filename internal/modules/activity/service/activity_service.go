package service

import (
	"context"

	"shelfcontrol/internal/modules/activity/domain"
	activityout "shelfcontrol/internal/modules/activity/port/out"
	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
)

type ActivityService struct {
	source activityout.DeadlineSource
}

func NewActivityService(source activityout.DeadlineSource) *ActivityService {
	return &ActivityService{source: source}
}

func (s *ActivityService) DailyActivity(ctx context.Context, deadlineID string) (deadlinedomain.Deadline, []domain.DayBucket, error) {
	deadline, err := s.source.GetDeadline(ctx, deadlineID)
	if err != nil {
		return deadlinedomain.Deadline{}, nil, err
	}
	return deadline, domain.BucketDailyActivity(deadline), nil
}
