package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubhub/internal/seed"
	"clubhub/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	officerService service.OfficerService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(officerService service.OfficerService) *SeedHandler {
	return &SeedHandler{officerService: officerService}
}

// SeedOfficersResponse represents the seed response.
type SeedOfficersResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedOfficers godoc
// @Summary Seed the default officer roster
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SeedOfficersResponse
// @Failure 500 {object} map[string]string
// @Router /admin/seed/officers [post]
func (h *SeedHandler) SeedOfficers(c echo.Context) error {
	count, err := h.officerService.Seed(c.Request().Context(), seed.Officers())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": "failed to seed officers",
		})
	}
	return c.JSON(http.StatusOK, SeedOfficersResponse{
		Message: "officers seeded",
		Count:   count,
	})
}
