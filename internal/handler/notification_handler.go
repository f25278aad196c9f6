package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"skillswap/internal/errors"
	"skillswap/internal/service"
)

const defaultNotificationLimit = 50

// NotificationHandler handles notification inbox endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// MarkReadRequest marks the listed notifications as read.
type MarkReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// List godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread notifications"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.Notification
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	unreadOnly := c.QueryParam("unread") == "true"
	limit := defaultNotificationLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}

	notifications, err := h.notificationService.ListForUser(c.Request().Context(), claims.UserID, unreadOnly, limit, offset)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead godoc
// @Summary Mark notifications as read
// @Tags notifications
// @Accept json
// @Security BearerAuth
// @Param request body MarkReadRequest true "Notification IDs"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, _ := uuid.Parse(raw)
		ids = append(ids, id)
	}

	if err := h.notificationService.MarkRead(c.Request().Context(), claims.UserID, ids); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead godoc
// @Summary Mark all of the caller's notifications as read
// @Tags notifications
// @Security BearerAuth
// @Success 204
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	if err := h.notificationService.MarkAllRead(c.Request().Context(), claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid notification id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.notificationService.Delete(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats godoc
// @Summary Get unread and total notification counts for the caller
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.NotificationStats
// @Router /notifications/stats [get]
func (h *NotificationHandler) Stats(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	stats, err := h.notificationService.StatsForUser(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}
