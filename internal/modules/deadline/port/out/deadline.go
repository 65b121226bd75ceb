package out

import (
	"context"

	"shelfcontrol/internal/modules/deadline/domain"
)

// DeadlineStore persists deadlines and their append-only progress/status
// logs. Implementations return logs sorted by created_at ascending.
type DeadlineStore interface {
	SaveDeadline(ctx context.Context, d domain.Deadline) error
	FindByID(ctx context.Context, id string) (domain.Deadline, error)
	List(ctx context.Context) ([]domain.Deadline, error)
	AppendProgress(ctx context.Context, entry domain.ProgressEntry) error
	AppendStatus(ctx context.Context, entry domain.StatusEntry) error
}
