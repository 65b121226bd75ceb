package out

import (
	"context"

	deadlinedomain "shelfcontrol/internal/modules/deadline/domain"
)

// DeadlineSource loads one deadline with its full progress log.
type DeadlineSource interface {
	GetDeadline(ctx context.Context, id string) (deadlinedomain.Deadline, error)
}
