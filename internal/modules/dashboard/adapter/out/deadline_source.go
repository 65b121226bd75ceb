package out

import (
	"context"

	dashboardout "shelfcontrol/internal/modules/dashboard/port/out"
	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
	deadlinedto "shelfcontrol/internal/modules/deadline/dto"
	deadlinein "shelfcontrol/internal/modules/deadline/port/in"
)

// DeadlineSourceAdapter bridges the deadline module's usecase into the
// dashboard's DeadlineSource port.
type DeadlineSourceAdapter struct {
	deadlines deadlinein.Usecase
}

func NewDeadlineSourceAdapter(deadlines deadlinein.Usecase) dashboardout.DeadlineSource {
	return &DeadlineSourceAdapter{deadlines: deadlines}
}

func (a *DeadlineSourceAdapter) ListDeadlines(ctx context.Context) ([]deadlinedomain.Deadline, error) {
	details, err := a.deadlines.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]deadlinedomain.Deadline, 0, len(details))
	for _, detail := range details {
		out = append(out, FromDetail(detail))
	}
	return out, nil
}

// FromDetail rebuilds a domain deadline, logs included, from the deadline
// module's detail output.
func FromDetail(detail deadlinedto.DeadlineDetailOutput) deadlinedomain.Deadline {
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
