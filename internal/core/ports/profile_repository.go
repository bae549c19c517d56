package ports

import (
	"context"

	"github.com/gigworks/identity-api/internal/core/domain"
)

// ListProfilesFilter carries the query parameters for listing profiles.
// Empty fields mean "no constraint", not "match empty".
type ListProfilesFilter struct {
	Type       string
	FirstName  string
	LastName   string
	Profession string
	Page       int // 1-based
	Limit      int // rows per page
}

// ProfilePatch is the set of fields the self-update path may persist.
// Nil pointers are left untouched. Type and Balance are deliberately not
// representable here: the former is write-once, the latter is owned by the
// financial operations outside this service.
type ProfilePatch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Profession *string
}

// ProfileRepository defines persistence operations for marketplace profiles.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	// Create inserts the profile in a single operation; a unique index on
	// email makes the insert fail with domain.ErrEmailInUse on collision.
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	// Update applies the non-nil patch fields, refreshes updated_at and
	// returns the updated profile.
	Update(ctx context.Context, id string, patch ProfilePatch) (*domain.Profile, error)
	// FindAndCount returns a page of profiles matching the filter and the
	// total number of matches across all pages.
	FindAndCount(ctx context.Context, filter ListProfilesFilter) ([]*domain.Profile, int64, error)
}
