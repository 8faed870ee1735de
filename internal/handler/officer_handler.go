package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubhub/internal/service"
)

// OfficerHandler handles officer-roster endpoints.
type OfficerHandler struct {
	officerService service.OfficerService
}

// NewOfficerHandler creates a new officer handler.
func NewOfficerHandler(officerService service.OfficerService) *OfficerHandler {
	return &OfficerHandler{officerService: officerService}
}

// OfficerRequest represents the admin officer form.
type OfficerRequest struct {
	Name      string `json:"name" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Course    string `json:"course"`
	Section   string `json:"section"`
	YearLevel string `json:"year_level"`
	Term      string `json:"term"`
	Image     string `json:"image"`
	Order     int    `json:"order"`
}

// List godoc
// @Summary List officers in display order
// @Tags officers
// @Produce json
// @Success 200 {array} model.Officer
// @Router /officers [get]
func (h *OfficerHandler) List(c echo.Context) error {
	officers, err := h.officerService.List(c.Request().Context())
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, officers)
}

// Create godoc
// @Summary Create an officer
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body OfficerRequest true "Officer data"
// @Success 201 {object} model.Officer
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/officers [post]
func (h *OfficerHandler) Create(c echo.Context) error {
	var req OfficerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	officer, err := h.officerService.Create(c.Request().Context(), service.OfficerInput{
		Name:      req.Name,
		Position:  req.Position,
		Course:    req.Course,
		Section:   req.Section,
		YearLevel: req.YearLevel,
		Term:      req.Term,
		Image:     req.Image,
		Order:     req.Order,
	})
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusCreated, officer)
}

// Update godoc
// @Summary Edit an officer
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Officer ID"
// @Param request body OfficerRequest true "Officer data"
// @Success 200 {object} model.Officer
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/officers/{id} [put]
func (h *OfficerHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req OfficerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	officer, err := h.officerService.Update(c.Request().Context(), id, service.OfficerInput{
		Name:      req.Name,
		Position:  req.Position,
		Course:    req.Course,
		Section:   req.Section,
		YearLevel: req.YearLevel,
		Term:      req.Term,
		Image:     req.Image,
		Order:     req.Order,
	})
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, officer)
}

// Delete godoc
// @Summary Delete an officer
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Officer ID"
// @Success 200 {object} map[string]string
// @Router /admin/officers/{id} [delete]
func (h *OfficerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.officerService.Delete(c.Request().Context(), id); err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "officer deleted"})
}
