package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gigworks/identity-api/internal/core/domain"
	"github.com/gigworks/identity-api/internal/core/ports"
)

// LoginLimiter throttles repeated failed logins per email. A nil limiter
// disables throttling.
type LoginLimiter interface {
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements login and token-holder lookup across the two
// account directories (profiles and admins).
type AuthService struct {
	profiles ports.ProfileRepository
	admins   ports.AdminRepository
	tokens   ports.TokenIssuer
	limiter  LoginLimiter
	activity ActivityRecorder
	logger   zerolog.Logger
}

func NewAuthService(
	profiles ports.ProfileRepository,
	admins ports.AdminRepository,
	tokens ports.TokenIssuer,
	limiter LoginLimiter,
	activity ActivityRecorder,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		profiles: profiles,
		admins:   admins,
		tokens:   tokens,
		limiter:  limiter,
		activity: normalizeRecorder(activity),
		logger:   logger,
	}
}

// accountRecord is the directory-neutral view produced by the role-dispatched
// lookups. role is what gets baked into tokens for this account.
type accountRecord struct {
	account      ports.Account
	role         string
	passwordHash string
}

func profileRecord(p *domain.Profile) *accountRecord {
	balance := p.Balance
	return &accountRecord{
		account: ports.Account{
			ID:         p.ID,
			Type:       p.Type,
			Profession: p.Profession,
			FirstName:  p.FirstName,
			LastName:   p.LastName,
			Email:      p.Email,
			Balance:    &balance,
		},
		role:         p.Type,
		passwordHash: p.PasswordHash,
	}
}

func adminRecord(a *domain.Admin) *accountRecord {
	return &accountRecord{
		account: ports.Account{
			ID:        a.ID,
			Type:      domain.RoleAdmin,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
		},
		role:         domain.RoleAdmin,
		passwordHash: a.PasswordHash,
	}
}

// findByEmail dispatches to the admin or profile directory based on role.
func (s *AuthService) findByEmail(ctx context.Context, role, email string) (*accountRecord, error) {
	if role == domain.RoleAdmin {
		a, err := s.admins.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		return adminRecord(a), nil
	}
	p, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return profileRecord(p), nil
}

// findByID is the same dispatch keyed by subject id.
func (s *AuthService) findByID(ctx context.Context, role, id string) (*accountRecord, error) {
	if role == domain.RoleAdmin {
		a, err := s.admins.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return adminRecord(a), nil
	}
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return profileRecord(p), nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	if s.limiter != nil {
		blocked, err := s.limiter.TooMany(ctx, input.Email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login limiter unavailable, continuing")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	rec, err := s.findByEmail(ctx, input.Type, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, s.failLogin(ctx, input.Email)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.passwordHash), []byte(input.Password)) != nil {
		return nil, s.failLogin(ctx, input.Email)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, input.Email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login attempts")
		}
	}

	tok, err := s.tokens.Sign(ports.TokenClaims{Subject: rec.account.ID, Role: rec.role})
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		Type:       domain.ActivityLoginSuccess,
		SubjectID:  rec.account.ID,
		Role:       rec.role,
		Email:      rec.account.Email,
		OccurredAt: time.Now().UTC(),
	})
	s.logger.Info().Str("subject_id", rec.account.ID).Str("role", rec.role).Msg("login succeeded")

	return &ports.LoginResult{
		Token: tok,
		User: ports.PublicUser{
			ID:        rec.account.ID,
			Email:     rec.account.Email,
			FirstName: rec.account.FirstName,
			LastName:  rec.account.LastName,
		},
	}, nil
}

// failLogin records the failed attempt and returns the single credential
// error used for every failure cause.
func (s *AuthService) failLogin(ctx context.Context, email string) error {
	if s.limiter != nil {
		if err := s.limiter.RecordFailure(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record login attempt")
		}
	}
	s.activity.Record(domain.ActivityEvent{
		Type:       domain.ActivityLoginFailure,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
	return domain.ErrInvalidCredentials
}

// CurrentUser resolves a verified identity to its backing record. A token
// whose account has since been removed yields domain.ErrProfileNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, identity domain.Identity) (*ports.Account, error) {
	rec, err := s.findByID(ctx, identity.Role, identity.SubjectID)
	if err != nil {
		return nil, err
	}
	return &rec.account, nil
}
