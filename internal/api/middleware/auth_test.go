package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gigworks/identity-api/internal/core/ports"
	"github.com/gigworks/identity-api/internal/infrastructure/token"
)

func tokenClaims(sub, role string) ports.TokenClaims {
	return ports.TokenClaims{Subject: sub, Role: role}
}

func authRequest(t *testing.T, decorate func(*http.Request)) (echo.Context, *httptest.ResponseRecorder, echo.HandlerFunc) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/me", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	return c, rec, next
}

func TestAuth_ValidBearerToken(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	raw, err := issuer.Sign(tokenClaims("profile_1", "contractor"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	c, _, next := authRequest(t, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+raw)
	})

	if err := Auth(issuer)(next)(c); err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if got := c.Get("subject_id"); got != "profile_1" {
		t.Fatalf("subject_id not set, got %v", got)
	}
	if got := c.Get("role"); got != "contractor" {
		t.Fatalf("role not set, got %v", got)
	}
}

func TestAuth_CookieFallback(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	raw, err := issuer.Sign(tokenClaims("profile_2", "client"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	c, _, next := authRequest(t, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "token", Value: raw})
	})

	if err := Auth(issuer)(next)(c); err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if got := c.Get("subject_id"); got != "profile_2" {
		t.Fatalf("subject_id not set, got %v", got)
	}
}

func TestAuth_MissingCredentials(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	c, _, next := authRequest(t, nil)

	err := Auth(issuer)(next)(c)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_MalformedAuthorizationHeader(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	c, _, next := authRequest(t, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	})

	err := Auth(issuer)(next)(c)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_InvalidToken(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	c, _, next := authRequest(t, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	})

	err := Auth(issuer)(next)(c)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_ForeignSignature(t *testing.T) {
	other := token.NewIssuer("another-secret", time.Hour)
	raw, err := other.Sign(tokenClaims("profile_1", "client"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	issuer := token.NewIssuer("test-secret", time.Hour)
	c, _, next := authRequest(t, func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+raw)
	})

	err = Auth(issuer)(next)(c)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d (%v)", code, he.Code, he.Message)
	}
}
