package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubhub/internal/errors"
	"clubhub/internal/service"
)

// EventHandler handles event content and registration endpoints.
type EventHandler struct {
	eventService service.EventService
	regService   service.RegistrationService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService, regService service.RegistrationService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		regService:   regService,
	}
}

// EventRequest represents the admin event form.
type EventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// List godoc
// @Summary List events, soonest first
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Failure 500 {object} errors.ErrorResponse
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.eventService.List(c.Request().Context())
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// Get godoc
// @Summary Get one event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	event, err := h.eventService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, event)
}

// Create godoc
// @Summary Create an event
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EventRequest true "Event data"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.eventService.Create(c.Request().Context(), service.EventInput{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

// Update godoc
// @Summary Edit an event
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body EventRequest true "Event data"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.eventService.Update(c.Request().Context(), id, service.EventInput{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Router /admin/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.eventService.Delete(c.Request().Context(), id); err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "event deleted"})
}

// Register godoc
// @Summary Register the current user for an event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 201 {object} model.EventRegistration
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /events/{id}/registrations [post]
func (h *EventHandler) Register(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	reg, err := h.regService.Register(c.Request().Context(), id, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, reg)
}

// MyRegistration godoc
// @Summary Check whether the current user is registered for an event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]bool
// @Router /events/{id}/registrations/me [get]
func (h *EventHandler) MyRegistration(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	registered, err := h.regService.IsRegistered(c.Request().Context(), id, userID)
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"is_registered": registered})
}

// MyRegistrations godoc
// @Summary List the current user's event registrations
// @Tags events
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.EventRegistration
// @Router /me/registrations [get]
func (h *EventHandler) MyRegistrations(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	regs, err := h.regService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, regs)
}

// ListRegistrations godoc
// @Summary List registrations for an event
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} model.EventRegistration
// @Router /admin/events/{id}/registrations [get]
func (h *EventHandler) ListRegistrations(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	regs, err := h.regService.ListByEvent(c.Request().Context(), id)
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, regs)
}

// DeleteRegistration godoc
// @Summary Delete a registration
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} map[string]string
// @Router /admin/registrations/{id} [delete]
func (h *EventHandler) DeleteRegistration(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.regService.Delete(c.Request().Context(), id); err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "registration deleted"})
}
