package domain

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrEmailInUse           = errors.New("email already in use")
	ErrForbidden            = errors.New("access forbidden")
	ErrTypeImmutable        = errors.New("profile type cannot be modified")
	ErrProfessionNotAllowed = errors.New("profession can only be set for contractors")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrTooManyAttempts      = errors.New("too many failed login attempts")
)
