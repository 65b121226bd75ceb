package usecase

import (
	"context"

	"shelfcontrol/internal/modules/activity/domain"
	"shelfcontrol/internal/modules/activity/dto"
	activityin "shelfcontrol/internal/modules/activity/port/in"
	"shelfcontrol/internal/modules/activity/service"
	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
)

type Interactor struct {
	svc *service.ActivityService
}

func NewInteractor(svc *service.ActivityService) activityin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) DailyActivity(ctx context.Context, deadlineID string) (dto.ActivityOutput, error) {
	deadline, buckets, err := i.svc.DailyActivity(ctx, deadlineID)
	if err != nil {
		return dto.ActivityOutput{}, err
	}
	out := dto.ActivityOutput{
		DeadlineID: deadline.ID,
		Title:      deadline.Title,
		Format:     string(deadline.Format),
		Sparkline:  domain.Sparkline(buckets),
		Empty:      len(buckets) == 0,
	}
	for _, bucket := range buckets {
		out.Buckets = append(out.Buckets, dto.BucketOutput{
			Date:    bucket.Date,
			Amount:  bucket.Amount,
			Display: deadlinedomain.FormatQuantity(bucket.Format, bucket.Amount),
		})
	}
	return out, nil
}
