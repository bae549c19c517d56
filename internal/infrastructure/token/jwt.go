package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gigworks/identity-api/internal/core/ports"
)

// DefaultTTL is the bearer token validity window when none is configured.
const DefaultTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Issuer mints and verifies HS256 bearer tokens. The signing secret and the
// validity window are fixed at construction and immutable afterwards.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. A non-positive ttl falls back to DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Sign mints a token carrying the subject and role claims.
func (i *Issuer) Sign(claims ports.TokenClaims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  claims.Subject,
		"role": claims.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	})
	return t.SignedString(i.secret)
}

// Verify decodes and validates a token. Every failure mode (bad signature,
// expiry, malformed input, missing claims) collapses into ErrInvalidToken so
// callers cannot tell the cases apart.
func (i *Issuer) Verify(token string) (ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ports.TokenClaims{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return ports.TokenClaims{}, ErrInvalidToken
	}

	return ports.TokenClaims{Subject: sub, Role: role}, nil
}
