package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gigworks/identity-api/internal/core/domain"
	"github.com/gigworks/identity-api/internal/core/ports"
	"github.com/gigworks/identity-api/internal/infrastructure/token"
)

type stubAdminRepo struct {
	admins []*domain.Admin
	nextID int
}

func (r *stubAdminRepo) Create(_ context.Context, a *domain.Admin) (*domain.Admin, error) {
	for _, existing := range r.admins {
		if existing.Email == a.Email {
			return nil, domain.ErrEmailInUse
		}
	}
	r.nextID++
	clone := *a
	clone.ID = fmt.Sprintf("admin_%d", r.nextID)
	r.admins = append(r.admins, &clone)
	copied := clone
	return &copied, nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

// stubLimiter counts failures in memory and blocks above max.
type stubLimiter struct {
	max      int
	failures map[string]int
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{max: max, failures: map[string]int{}}
}

func (l *stubLimiter) TooMany(_ context.Context, email string) (bool, error) {
	return l.failures[email] >= l.max, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	delete(l.failures, email)
	return nil
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

type authFixture struct {
	svc      *AuthService
	issuer   *token.Issuer
	profiles *stubProfileRepo
	admins   *stubAdminRepo
	limiter  *stubLimiter
	sink     *recordingSink
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		issuer:   token.NewIssuer("test-secret", time.Hour),
		profiles: newStubProfileRepo(),
		admins:   &stubAdminRepo{},
		limiter:  newStubLimiter(3),
		sink:     &recordingSink{},
	}
	f.svc = NewAuthService(f.profiles, f.admins, f.issuer, f.limiter, f.sink, zerolog.Nop())
	return f
}

func (f *authFixture) seedProfile(t *testing.T, typ, email, password string) *domain.Profile {
	t.Helper()
	now := time.Now().UTC()
	created, err := f.profiles.Create(context.Background(), &domain.Profile{
		Type:         typ,
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: hashPassword(t, password),
		Balance:      150,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return created
}

func (f *authFixture) seedAdmin(t *testing.T, email, password string) *domain.Admin {
	t.Helper()
	now := time.Now().UTC()
	created, err := f.admins.Create(context.Background(), &domain.Admin{
		FirstName:    "Back",
		LastName:     "Office",
		Email:        email,
		PasswordHash: hashPassword(t, password),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return created
}

func TestAuthService_Login_Profile(t *testing.T) {
	f := newAuthFixture(t)
	p := f.seedProfile(t, domain.RoleContractor, "worker@example.com", "s3cret")

	result, err := f.svc.Login(context.Background(), ports.LoginInput{
		Email:    "worker@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.User.ID != p.ID || result.User.Email != p.Email {
		t.Fatalf("unexpected user payload: %+v", result.User)
	}

	claims, err := f.issuer.Verify(result.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != p.ID || claims.Role != domain.RoleContractor {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if got := f.sink.byType(domain.ActivityLoginSuccess); len(got) != 1 {
		t.Fatalf("expected one success event, got %+v", got)
	}
}

func TestAuthService_Login_Admin(t *testing.T) {
	f := newAuthFixture(t)
	a := f.seedAdmin(t, "admin@example.com", "s3cret")

	result, err := f.svc.Login(context.Background(), ports.LoginInput{
		Email:    "admin@example.com",
		Password: "s3cret",
		Type:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims, err := f.issuer.Verify(result.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != a.ID || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	f.seedProfile(t, domain.RoleClient, "client@example.com", "s3cret")

	_, errUnknown := f.svc.Login(context.Background(), ports.LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})
	_, errWrongPassword := f.svc.Login(context.Background(), ports.LoginInput{
		Email:    "client@example.com",
		Password: "wrong",
	})

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if errUnknown.Error() != errWrongPassword.Error() {
		t.Fatalf("failure causes must be indistinguishable: %q vs %q", errUnknown, errWrongPassword)
	}

	if got := f.sink.byType(domain.ActivityLoginFailure); len(got) != 2 {
		t.Fatalf("expected two failure events, got %d", len(got))
	}
}

func TestAuthService_Login_AccountWithoutPassword(t *testing.T) {
	f := newAuthFixture(t)
	// Freshly registered profiles have no credential yet.
	now := time.Now().UTC()
	if _, err := f.profiles.Create(context.Background(), &domain.Profile{
		Type:      domain.RoleClient,
		FirstName: "New",
		LastName:  "Signup",
		Email:     "fresh@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := f.svc.Login(context.Background(), ports.LoginInput{
		Email:    "fresh@example.com",
		Password: "anything",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	f := newAuthFixture(t)
	f.seedProfile(t, domain.RoleClient, "client@example.com", "s3cret")

	for i := 0; i < 3; i++ {
		_, err := f.svc.Login(context.Background(), ports.LoginInput{
			Email:    "client@example.com",
			Password: "wrong",
		})
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Limit reached: even the right password is rejected now.
	_, err := f.svc.Login(context.Background(), ports.LoginInput{
		Email:    "client@example.com",
		Password: "s3cret",
	})
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_SuccessResetsAttempts(t *testing.T) {
	f := newAuthFixture(t)
	f.seedProfile(t, domain.RoleClient, "client@example.com", "s3cret")

	for i := 0; i < 2; i++ {
		_, _ = f.svc.Login(context.Background(), ports.LoginInput{
			Email:    "client@example.com",
			Password: "wrong",
		})
	}
	if _, err := f.svc.Login(context.Background(), ports.LoginInput{
		Email:    "client@example.com",
		Password: "s3cret",
	}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if f.limiter.failures["client@example.com"] != 0 {
		t.Fatalf("failure counter not reset: %d", f.limiter.failures["client@example.com"])
	}
}

func TestAuthService_CurrentUser_Profile(t *testing.T) {
	f := newAuthFixture(t)
	p := f.seedProfile(t, domain.RoleContractor, "worker@example.com", "s3cret")

	account, err := f.svc.CurrentUser(context.Background(), domain.Identity{
		SubjectID: p.ID,
		Role:      domain.RoleContractor,
	})
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if account.ID != p.ID || account.Type != domain.RoleContractor {
		t.Fatalf("unexpected account: %+v", account)
	}
	if account.Balance == nil || *account.Balance != 150 {
		t.Fatalf("profile accounts carry a balance, got %+v", account.Balance)
	}
}

func TestAuthService_CurrentUser_Admin(t *testing.T) {
	f := newAuthFixture(t)
	a := f.seedAdmin(t, "admin@example.com", "s3cret")

	account, err := f.svc.CurrentUser(context.Background(), domain.Identity{
		SubjectID: a.ID,
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("CurrentUser returned error: %v", err)
	}
	if account.Type != domain.RoleAdmin {
		t.Fatalf("expected admin account, got %+v", account)
	}
	if account.Balance != nil {
		t.Fatalf("admin accounts have no balance, got %v", *account.Balance)
	}
}

func TestAuthService_CurrentUser_RemovedAccount(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.CurrentUser(context.Background(), domain.Identity{
		SubjectID: "gone",
		Role:      domain.RoleClient,
	})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
