package ports

import (
	"context"

	"github.com/gigworks/identity-api/internal/core/domain"
)

// RegisterProfileInput carries all data needed to register a new profile.
// Profession is honoured only when Type is contractor.
type RegisterProfileInput struct {
	Type       string
	FirstName  string
	LastName   string
	Email      string
	Profession string
}

// RegisterResult is returned after a successful registration.
type RegisterResult struct {
	Profile *domain.Profile
	Token   string
}

// ListProfilesInput carries all parameters for the list endpoint. Empty
// filter fields apply no constraint. Page and Limit fall back to 1 and 10.
type ListProfilesInput struct {
	Type       string
	FirstName  string
	LastName   string
	Profession string
	Page       int
	Limit      int
}

// ListProfilesResult is returned by List.
type ListProfilesResult struct {
	Items      []*domain.Profile
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UpdateProfileInput is the partial field set for self-update. Nil means
// "not present in the payload". Type is carried only so its presence can be
// rejected; it is never applied.
type UpdateProfileInput struct {
	Type       *string
	FirstName  *string
	LastName   *string
	Email      *string
	Profession *string
}

// ProfileService defines the profile use-cases.
type ProfileService interface {
	Register(ctx context.Context, input RegisterProfileInput) (*RegisterResult, error)
	Get(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context, input ListProfilesInput) (*ListProfilesResult, error)
	// Update applies a partial self-service update. Only the authenticated
	// subject may update its own profile.
	Update(ctx context.Context, identity domain.Identity, profileID string, input UpdateProfileInput) (*domain.Profile, error)
}
