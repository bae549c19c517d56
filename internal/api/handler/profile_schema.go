package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerProfileRequest struct {
	Type       string `json:"type"       validate:"required,oneof=client contractor"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name"  validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Profession string `json:"profession"`
}

// updateProfileRequest uses pointers so "absent" and "empty" stay distinct.
// There is deliberately no balance field: the financial balance never rides
// the profile-update path, whatever the payload carries.
type updateProfileRequest struct {
	Type       *string `json:"type"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Profession *string `json:"profession"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Type     string `json:"type"`
}

// --- Response types ---

// profileResponse is the transport view of a profile. The password hash has
// no field here and can never be serialized.
type profileResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Profession string    `json:"profession,omitempty"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Balance    float64   `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type registerProfileResponse struct {
	Profile profileResponse `json:"profile"`
	Token   string          `json:"token"`
}

type getProfileResponse struct {
	Data profileResponse `json:"data"`
}

type listProfilesData struct {
	TotalProfiles int64             `json:"total_profiles"`
	TotalPages    int               `json:"total_pages"`
	CurrentPage   int               `json:"current_page"`
	Profiles      []profileResponse `json:"profiles"`
}

type listProfilesResponse struct {
	Data listProfilesData `json:"data"`
}

type publicUserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginResponse struct {
	Token string             `json:"token"`
	User  publicUserResponse `json:"user"`
}

type accountResponse struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Profession string   `json:"profession,omitempty"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Balance    *float64 `json:"balance,omitempty"`
}

type getAccountResponse struct {
	Profile accountResponse `json:"profile"`
}

type activityEventResponse struct {
	Type       string    `json:"type"`
	SubjectID  string    `json:"subject_id,omitempty"`
	Role       string    `json:"role,omitempty"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type listActivityResponse struct {
	Data []activityEventResponse `json:"data"`
}
