package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubhub/internal/errors"
	"clubhub/internal/service"
)

// MemberHandler handles member-management endpoints.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// List godoc
// @Summary List membership applications, newest first
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Member
// @Router /admin/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.memberService.List(c.Request().Context())
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, members)
}

// Approve godoc
// @Summary Approve a pending member
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/members/{id}/approve [put]
func (h *MemberHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.memberService.Approve(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "member approved"})
}

// Delete godoc
// @Summary Delete a member record
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]string
// @Router /admin/members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.memberService.Delete(c.Request().Context(), id); err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "member deleted"})
}
