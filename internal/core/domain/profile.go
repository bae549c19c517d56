package domain

import "time"

const (
	RoleClient     = "client"
	RoleContractor = "contractor"
	RoleAdmin      = "admin"
)

// ProfileTypes lists the types a marketplace profile can be registered as.
// Admin is a separate identity class, never a profile type.
var ProfileTypes = []string{RoleClient, RoleContractor}

// Profile is a marketplace account: a client who posts work or a contractor
// who performs it. Type is fixed at registration and never changes.
type Profile struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Profession   string    `json:"profession,omitempty"` // non-empty only when Type == contractor
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Balance      float64   `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Admin is a back-office operator account. Admins are not profiles: they never
// appear in listings and only interact through login and self-lookup.
type Admin struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidProfileType reports whether t is a registrable profile type.
func ValidProfileType(t string) bool {
	for _, pt := range ProfileTypes {
		if pt == t {
			return true
		}
	}
	return false
}
