package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"skillswap/internal/errors"
	"skillswap/internal/service"
)

// SkillHandler handles skill catalog and user skill list endpoints.
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// SkillRequest represents a skill create or update request.
type SkillRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description"`
}

// UserSkillRequest attaches a catalog skill to the caller's offered or
// wanted list.
type UserSkillRequest struct {
	SkillID string `json:"skillId" validate:"required,uuid"`
}

// List godoc
// @Summary List the skill catalog
// @Tags skills
// @Produce json
// @Success 200 {array} model.Skill
// @Router /skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.skillService.ListSkills(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skills)
}

// Get godoc
// @Summary Get a skill by ID
// @Tags skills
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} model.Skill
// @Failure 404 {object} errors.ErrorResponse
// @Router /skills/{id} [get]
func (h *SkillHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid skill id",
			Code:  "INVALID_UUID",
		})
	}

	skill, err := h.skillService.GetSkillByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skill)
}

// Create godoc
// @Summary Create a catalog skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SkillRequest true "Skill data"
// @Success 201 {object} model.Skill
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.skillService.CreateSkill(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, skill)
}

// Update godoc
// @Summary Update a catalog skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Param request body SkillRequest true "Skill data"
// @Success 200 {object} model.Skill
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /skills/{id} [put]
func (h *SkillHandler) Update(c echo.Context) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid skill id",
			Code:  "INVALID_UUID",
		})
	}

	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.skillService.UpdateSkill(c.Request().Context(), id, req.Name, req.Description)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, skill)
}

// Delete godoc
// @Summary Delete a catalog skill
// @Tags skills
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid skill id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.skillService.DeleteSkill(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// AddOffered godoc
// @Summary Add a skill to the caller's offered list
// @Tags skills
// @Accept json
// @Security BearerAuth
// @Param request body UserSkillRequest true "Skill reference"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me/skills/offered [post]
func (h *SkillHandler) AddOffered(c echo.Context) error {
	return h.mutateUserSkill(c, h.skillService.AddOfferedSkill)
}

// RemoveOffered godoc
// @Summary Remove a skill from the caller's offered list
// @Tags skills
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Success 204
// @Router /users/me/skills/offered/{id} [delete]
func (h *SkillHandler) RemoveOffered(c echo.Context) error {
	return h.removeUserSkill(c, h.skillService.RemoveOfferedSkill)
}

// AddWanted godoc
// @Summary Add a skill to the caller's wanted list
// @Tags skills
// @Accept json
// @Security BearerAuth
// @Param request body UserSkillRequest true "Skill reference"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me/skills/wanted [post]
func (h *SkillHandler) AddWanted(c echo.Context) error {
	return h.mutateUserSkill(c, h.skillService.AddWantedSkill)
}

// RemoveWanted godoc
// @Summary Remove a skill from the caller's wanted list
// @Tags skills
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Success 204
// @Router /users/me/skills/wanted/{id} [delete]
func (h *SkillHandler) RemoveWanted(c echo.Context) error {
	return h.removeUserSkill(c, h.skillService.RemoveWantedSkill)
}

func (h *SkillHandler) mutateUserSkill(c echo.Context, op func(ctx context.Context, userID, skillID uuid.UUID) error) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req UserSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skillID, _ := uuid.Parse(req.SkillID)
	if err := op(c.Request().Context(), claims.UserID, skillID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SkillHandler) removeUserSkill(c echo.Context, op func(ctx context.Context, userID, skillID uuid.UUID) error) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	skillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid skill id",
			Code:  "INVALID_UUID",
		})
	}

	if err := op(c.Request().Context(), claims.UserID, skillID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
