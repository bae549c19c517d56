package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gigworks/identity-api/internal/core/domain"
	"github.com/gigworks/identity-api/internal/core/ports"
)

const defaultPageSize = 10

// ProfileService implements registration, lookup, listing and self-update.
type ProfileService struct {
	repo     ports.ProfileRepository
	tokens   ports.TokenIssuer
	activity ActivityRecorder
	logger   zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, tokens ports.TokenIssuer, activity ActivityRecorder, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		repo:     repo,
		tokens:   tokens,
		activity: normalizeRecorder(activity),
		logger:   logger,
	}
}

// Register creates a profile with a zero balance and issues a token bound to
// it. Profession is only kept for contractors. Email uniqueness is enforced
// by the store's unique index: the insert is a single atomic operation and a
// collision surfaces as domain.ErrEmailInUse.
func (s *ProfileService) Register(ctx context.Context, input ports.RegisterProfileInput) (*ports.RegisterResult, error) {
	profession := input.Profession
	if input.Type != domain.RoleContractor {
		profession = ""
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Profile{
		Type:       input.Type,
		Profession: profession,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Balance:    0,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	tok, err := s.tokens.Sign(ports.TokenClaims{Subject: created.ID, Role: created.Type})
	if err != nil {
		return nil, fmt.Errorf("sign registration token: %w", err)
	}

	s.activity.Record(domain.ActivityEvent{
		Type:       domain.ActivityRegistered,
		SubjectID:  created.ID,
		Role:       created.Type,
		Email:      created.Email,
		OccurredAt: now,
	})
	s.logger.Info().
		Str("profile_id", created.ID).
		Str("type", created.Type).
		Msg("profile registered")

	return &ports.RegisterResult{Profile: created, Token: tok}, nil
}

// Get returns the profile with the given id.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of profiles matching the filters. Page defaults to 1,
// limit to 10; no upper bound is placed on limit.
func (s *ProfileService) List(ctx context.Context, input ports.ListProfilesInput) (*ports.ListProfilesResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	rows, total, err := s.repo.FindAndCount(ctx, ports.ListProfilesFilter{
		Type:       input.Type,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Profession: input.Profession,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListProfilesResult{
		Items:      rows,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// Update applies a partial self-service update. The authorization subject
// comes from the verified identity, never from the payload.
func (s *ProfileService) Update(ctx context.Context, identity domain.Identity, profileID string, input ports.UpdateProfileInput) (*domain.Profile, error) {
	profile, err := s.repo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if identity.SubjectID != profile.ID {
		return nil, domain.ErrForbidden
	}

	if input.Type != nil {
		return nil, domain.ErrTypeImmutable
	}

	patch := ports.ProfilePatch{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		// Email is applied verbatim; this path does not re-check uniqueness.
		Email: input.Email,
	}
	if input.Profession != nil {
		if profile.Type != domain.RoleContractor {
			return nil, domain.ErrProfessionNotAllowed
		}
		patch.Profession = input.Profession
	}

	updated, err := s.repo.Update(ctx, profileID, patch)
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		Type:       domain.ActivityProfileUpdated,
		SubjectID:  updated.ID,
		Role:       updated.Type,
		Email:      updated.Email,
		OccurredAt: time.Now().UTC(),
	})
	s.logger.Info().Str("profile_id", updated.ID).Msg("profile updated")

	return updated, nil
}
