package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"skillswap/internal/errors"
	"skillswap/internal/service"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest represents a profile update. Omitted fields are left
// unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Location *string `json:"location"`
	PhotoURL *string `json:"photoUrl" validate:"omitempty,url"`
	IsPublic *bool   `json:"isPublic"`
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	return h.getProfile(c, claims.UserID)
}

// Get godoc
// @Summary Get a user profile by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} service.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_UUID",
		})
	}
	return h.getProfile(c, id)
}

func (h *UserHandler) getProfile(c echo.Context, id uuid.UUID) error {
	profile, err := h.userService.GetProfile(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// Update godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} service.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID, service.ProfileUpdate{
		Name:     req.Name,
		Location: req.Location,
		PhotoURL: req.PhotoURL,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, profile)
}

// Delete godoc
// @Summary Delete the authenticated user's account
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteAccount(c.Request().Context(), claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusNoContent)
}
