package out

import (
	"context"

	activityout "shelfcontrol/internal/modules/activity/port/out"
	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
	deadlinedto "shelfcontrol/internal/modules/deadline/dto"
	deadlinein "shelfcontrol/internal/modules/deadline/port/in"
)

// DeadlineSourceAdapter bridges the deadline module's usecase into the
// activity module's DeadlineSource port.
type DeadlineSourceAdapter struct {
	deadlines deadlinein.Usecase
}

func NewDeadlineSourceAdapter(deadlines deadlinein.Usecase) activityout.DeadlineSource {
	return &DeadlineSourceAdapter{deadlines: deadlines}
}

func (a *DeadlineSourceAdapter) GetDeadline(ctx context.Context, id string) (deadlinedomain.Deadline, error) {
	detail, err := a.deadlines.Get(ctx, id)
	if err != nil {
		return deadlinedomain.Deadline{}, err
	}
	return fromDetail(detail), nil
}

func fromDetail(detail deadlinedto.DeadlineDetailOutput) deadlinedomain.Deadline {
	d := deadlinedomain.Deadline{
		ID:            detail.ID,
		Title:         detail.Title,
		Author:        detail.Author,
		Format:        deadlinedomain.Format(detail.Format),
		Flexibility:   deadlinedomain.Flexibility(detail.Flexibility),
		TotalQuantity: detail.TotalQuantity,
		DueAt:         detail.DueAt,
	}
	for _, entry := range detail.Progress {
		d.Progress = append(d.Progress, deadlinedomain.ProgressEntry{
			ID:            entry.ID,
			DeadlineID:    detail.ID,
			Value:         entry.Value,
			IgnoreInCalcs: entry.IgnoreInCalcs,
			TimeSpentMin:  entry.TimeSpentMin,
			CreatedAt:     entry.CreatedAt,
		})
	}
	for _, entry := range detail.StatusLog {
		d.StatusLog = append(d.StatusLog, deadlinedomain.StatusEntry{
			ID:         entry.ID,
			DeadlineID: detail.ID,
			Status:     deadlinedomain.Status(entry.Status),
			CreatedAt:  entry.CreatedAt,
		})
	}
	return d
}
