package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"skillswap/internal/errors"
	"skillswap/internal/repository"
	"skillswap/internal/service"
)

// RatingHandler handles rating endpoints.
type RatingHandler struct {
	ratingService service.RatingService
}

// NewRatingHandler creates a new rating handler.
func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// CreateRatingRequest represents a rating submission for a completed swap.
type CreateRatingRequest struct {
	SwapID  string  `json:"swapId" validate:"required,uuid"`
	Score   int     `json:"score" validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// Create godoc
// @Summary Rate the partner of an accepted swap
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRatingRequest true "Rating data"
// @Success 201 {object} model.Rating
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /ratings [post]
func (h *RatingHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	swapID, _ := uuid.Parse(req.SwapID)
	rating, err := h.ratingService.Create(c.Request().Context(), swapID, claims.UserID, req.Score, req.Comment)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, rating)
}

// Delete godoc
// @Summary Delete a rating the caller submitted
// @Tags ratings
// @Security BearerAuth
// @Param id path string true "Rating ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ratings/{id} [delete]
func (h *RatingHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid rating id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.ratingService.Delete(c.Request().Context(), id, claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// ListForUser godoc
// @Summary List ratings for a user
// @Tags ratings
// @Produce json
// @Param id path string true "User ID"
// @Param type query string false "given | received"
// @Success 200 {array} model.Rating
// @Router /users/{id}/ratings [get]
func (h *RatingHandler) ListForUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_UUID",
		})
	}

	filter := repository.RatingListFilter{}
	switch c.QueryParam("type") {
	case "given":
		filter.Given = true
	default:
		filter.Received = true
	}

	ratings, err := h.ratingService.ListForUser(c.Request().Context(), userID, filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ratings)
}

// Stats godoc
// @Summary Get aggregate rating stats for a user
// @Tags ratings
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.RatingStats
// @Router /users/{id}/ratings/stats [get]
func (h *RatingHandler) Stats(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "INVALID_UUID",
		})
	}

	stats, err := h.ratingService.StatsForUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}
