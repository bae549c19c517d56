package ports

// TokenClaims is the claim set carried by a bearer token: who the actor is
// and what role they hold. Expiry is owned by the issuer.
type TokenClaims struct {
	Subject string
	Role    string
}

// TokenIssuer mints and verifies bearer tokens. Implementations hold the
// signing secret and a fixed validity window, both set at construction.
type TokenIssuer interface {
	Sign(claims TokenClaims) (string, error)
	// Verify decodes the token and returns its claims. Expired or tampered
	// tokens fail; callers must not distinguish the two cases outward.
	Verify(token string) (TokenClaims, error)
}
