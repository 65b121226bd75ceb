package out

import (
	"context"

	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
)

// DeadlineSource supplies the deadline snapshots, with both logs loaded,
// that the aggregation reducers run over.
type DeadlineSource interface {
	ListDeadlines(ctx context.Context) ([]deadlinedomain.Deadline, error)
}
