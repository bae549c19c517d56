package ports

import (
	"context"

	"github.com/gigworks/identity-api/internal/core/domain"
)

// ActivityService processes audit events dequeued by the dispatcher and
// serves the admin-facing activity listing.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
	Recent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}
