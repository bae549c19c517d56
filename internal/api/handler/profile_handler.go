package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gigworks/identity-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for profile operations.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Register handles POST /v1/profiles.
//
// @Summary      Register a new profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      registerProfileRequest  true  "Profile details"
// @Success      201   {object}  registerProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/profiles [post]
func (h *ProfileHandler) Register(c echo.Context) error {
	var req registerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return err
	}

	setAuthCookie(c, result.Token)
	return c.JSON(http.StatusCreated, registerProfileResponse{
		Profile: toProfileResponse(result.Profile),
		Token:   result.Token,
	})
}

// Get handles GET /v1/profiles/:id.
//
// @Summary      Get a profile by id
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  getProfileResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/profiles/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, getProfileResponse{Data: toProfileResponse(profile)})
}

// List handles GET /v1/profiles.
//
// @Summary      List profiles with filters and pagination
// @Tags         profiles
// @Produce      json
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        limit       query     int     false  "Rows per page (default 10)"
// @Param        type        query     string  false  "Filter by profile type"
// @Param        first_name  query     string  false  "Filter by first name"
// @Param        last_name   query     string  false  "Filter by last name"
// @Param        profession  query     string  false  "Filter by profession"
// @Success      200         {object}  listProfilesResponse
// @Router       /v1/profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListProfilesInput{
		Type:       c.QueryParam("type"),
		FirstName:  c.QueryParam("first_name"),
		LastName:   c.QueryParam("last_name"),
		Profession: c.QueryParam("profession"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Update handles PATCH /v1/profiles/:id. The authorization subject comes
// from the verified token, never from the payload.
//
// @Summary      Update own profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Profile id"
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  getProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/profiles/{id} [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, getProfileResponse{Data: toProfileResponse(updated)})
}
