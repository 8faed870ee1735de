package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubhub/internal/service"
)

// MessageHandler handles the public contact form and the admin inbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// MessageRequest represents a contact-form submission.
type MessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body" validate:"required"`
}

// Create godoc
// @Summary Send a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body MessageRequest true "Message data"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.Create(c.Request().Context(), service.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusCreated, message)
}

// List godoc
// @Summary List contact messages, newest first
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Message
// @Router /admin/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.messageService.List(c.Request().Context())
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

// Delete godoc
// @Summary Delete a contact message
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]string
// @Router /admin/messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.messageService.Delete(c.Request().Context(), id); err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "message deleted"})
}
