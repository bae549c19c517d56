package ports

import (
	"context"

	"github.com/gigworks/identity-api/internal/core/domain"
)

// AdminRepository defines persistence operations for back-office accounts.
type AdminRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
}
