package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubhub/internal/service"
)

// AnnouncementHandler handles announcement endpoints.
type AnnouncementHandler struct {
	announcementService service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler.
func NewAnnouncementHandler(announcementService service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// AnnouncementRequest represents the admin announcement form.
type AnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Status   string `json:"status" validate:"omitempty,oneof=Published Draft"`
	ImageURL string `json:"image_url"`
}

// List godoc
// @Summary List published announcements, newest first
// @Tags announcements
// @Produce json
// @Success 200 {array} model.Announcement
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.announcementService.ListPublished(c.Request().Context())
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, announcements)
}

// ListAll godoc
// @Summary List all announcements including drafts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Announcement
// @Router /admin/announcements [get]
func (h *AnnouncementHandler) ListAll(c echo.Context) error {
	announcements, err := h.announcementService.ListAll(c.Request().Context())
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, announcements)
}

// Create godoc
// @Summary Create an announcement
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AnnouncementRequest true "Announcement data"
// @Success 201 {object} model.Announcement
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.announcementService.Create(c.Request().Context(), service.AnnouncementInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Date:     req.Date,
		Status:   req.Status,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusCreated, announcement)
}

// Update godoc
// @Summary Edit an announcement
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body AnnouncementRequest true "Announcement data"
// @Success 200 {object} model.Announcement
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.announcementService.Update(c.Request().Context(), id, service.AnnouncementInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Date:     req.Date,
		Status:   req.Status,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, announcement)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} map[string]string
// @Router /admin/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.announcementService.Delete(c.Request().Context(), id); err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "announcement deleted"})
}
