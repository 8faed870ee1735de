package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubhub/internal/errors"
	"clubhub/internal/service"
)

// DashboardHandler serves the admin dashboard summary.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary godoc
// @Summary Get dashboard collection counts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.DashboardSummary
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.dashboardService.Summary(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to load dashboard",
			Code:  "DASHBOARD_FAILED",
		})
	}
	return c.JSON(http.StatusOK, summary)
}
