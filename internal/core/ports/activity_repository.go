package ports

import (
	"context"

	"github.com/gigworks/identity-api/internal/core/domain"
)

// ActivityRepository persists the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}
