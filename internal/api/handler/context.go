package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gigworks/identity-api/internal/core/domain"
)

// ctxIdentity rebuilds the Identity injected by the Auth middleware. An
// incomplete identity means the middleware did not run; fail closed.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	subject, _ := c.Get("subject_id").(string)
	role, _ := c.Get("role").(string)
	if subject == "" || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Identity{SubjectID: subject, Role: role}, nil
}
