package ports

import (
	"context"

	"github.com/gigworks/identity-api/internal/core/domain"
)

// LoginInput carries login credentials. Type selects the account directory:
// "admin" logs in against the admin store, anything else against profiles.
type LoginInput struct {
	Email    string
	Password string
	Type     string
}

// PublicUser is the minimal account view returned on login.
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Token string
	User  PublicUser
}

// Account is the password-free view of whoever a token resolves to, either a
// profile or an admin. Balance is nil for admins, who hold no balance.
type Account struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Profession string   `json:"profession,omitempty"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Balance    *float64 `json:"balance,omitempty"`
}

// AuthService defines login and token-holder lookup.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	// CurrentUser resolves the authenticated identity to its backing record.
	CurrentUser(ctx context.Context, identity domain.Identity) (*Account, error)
}
