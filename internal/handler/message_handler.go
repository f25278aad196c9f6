package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"skillswap/internal/errors"
	"skillswap/internal/service"
)

// MessageHandler handles conversation and message endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a message posted to a conversation. At least
// one of text and image must be present.
type SendMessageRequest struct {
	Text  *string `json:"text" validate:"omitempty,max=4000"`
	Image *string `json:"image" validate:"omitempty,url"`
}

// ListConversations godoc
// @Summary List the caller's conversations, most recently active first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Conversation
// @Router /conversations [get]
func (h *MessageHandler) ListConversations(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	conversations, err := h.messageService.ListConversations(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, conversations)
}

// GetForSwap godoc
// @Summary Get the conversation attached to an accepted swap
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap ID"
// @Success 200 {object} model.Conversation
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /swaps/{id}/conversation [get]
func (h *MessageHandler) GetForSwap(c echo.Context) error {
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

	conversation, err := h.messageService.GetForSwap(c.Request().Context(), swapID, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, conversation)
}

// Send godoc
// @Summary Send a message in a conversation
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param request body SendMessageRequest true "Message content"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /conversations/{id}/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid conversation id",
			Code:  "INVALID_UUID",
		})
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.Send(c.Request().Context(), conversationID, claims.UserID, req.Text, req.Image)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, message)
}

// ListMessages godoc
// @Summary List messages in a conversation, oldest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Success 200 {array} model.Message
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /conversations/{id}/messages [get]
func (h *MessageHandler) ListMessages(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid conversation id",
			Code:  "INVALID_UUID",
		})
	}

	messages, err := h.messageService.ListMessages(c.Request().Context(), conversationID, claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, messages)
}
