package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"skillswap/internal/errors"
	"skillswap/internal/model"
	"skillswap/internal/repository"
	"skillswap/internal/service"
)

// SwapHandler handles swap request endpoints.
type SwapHandler struct {
	swapService service.SwapService
}

// NewSwapHandler creates a new swap handler.
func NewSwapHandler(swapService service.SwapService) *SwapHandler {
	return &SwapHandler{swapService: swapService}
}

// CreateSwapRequest represents a swap creation request. The requester is the
// authenticated caller.
type CreateSwapRequest struct {
	ResponderID    string `json:"responderId" validate:"required,uuid"`
	OfferedSkillID string `json:"offeredSkillId" validate:"required,uuid"`
	WantedSkillID  string `json:"wantedSkillId" validate:"required,uuid"`
}

// Create godoc
// @Summary Create a swap request
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSwapRequest true "Swap data"
// @Success 201 {object} model.SwapRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /swaps [post]
func (h *SwapHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateSwapRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	responderID, _ := uuid.Parse(req.ResponderID)
	offeredSkillID, _ := uuid.Parse(req.OfferedSkillID)
	wantedSkillID, _ := uuid.Parse(req.WantedSkillID)

	swap, err := h.swapService.Create(c.Request().Context(), claims.UserID, responderID, offeredSkillID, wantedSkillID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, swap)
}

// Accept godoc
// @Summary Accept a pending swap request
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap ID"
// @Success 200 {object} model.SwapRequest
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /swaps/{id}/accept [post]
func (h *SwapHandler) Accept(c echo.Context) error {
	return h.transition(c, h.swapService.Accept)
}

// Reject godoc
// @Summary Reject a pending swap request
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap ID"
// @Success 200 {object} model.SwapRequest
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /swaps/{id}/reject [post]
func (h *SwapHandler) Reject(c echo.Context) error {
	return h.transition(c, h.swapService.Reject)
}

// Cancel godoc
// @Summary Cancel a pending swap request
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap ID"
// @Success 200 {object} model.SwapRequest
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /swaps/{id}/cancel [post]
func (h *SwapHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.swapService.Cancel)
}

func (h *SwapHandler) transition(c echo.Context, op func(ctx context.Context, swapID, actorID uuid.UUID) (*model.SwapRequest, error)) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	swapID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid swap id",
			Code:  "INVALID_UUID",
		})
	}

	swap, err := op(c.Request().Context(), swapID, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, swap)
}

// Get godoc
// @Summary Get a swap request
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap ID"
// @Success 200 {object} model.SwapRequest
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /swaps/{id} [get]
func (h *SwapHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	swapID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid swap id",
			Code:  "INVALID_UUID",
		})
	}

	swap, err := h.swapService.GetByID(c.Request().Context(), swapID, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, swap)
}

// List godoc
// @Summary List the caller's swap requests
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param type query string false "sent | received | all"
// @Param status query string false "pending | accepted | rejected | cancelled"
// @Success 200 {array} model.SwapRequest
// @Router /swaps [get]
func (h *SwapHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	filter := repository.SwapListFilter{}
	switch c.QueryParam("type") {
	case "sent":
		filter.Sent = true
	case "received":
		filter.Received = true
	}
	if status := c.QueryParam("status"); status != "" {
		s := model.SwapStatus(status)
		switch s {
		case model.SwapStatusPending, model.SwapStatusAccepted, model.SwapStatusRejected, model.SwapStatusCancelled:
			filter.Status = &s
		default:
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid status filter",
				Code:  "INVALID_STATUS",
			})
		}
	}

	swaps, err := h.swapService.ListForUser(c.Request().Context(), claims.UserID, filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, swaps)
}
