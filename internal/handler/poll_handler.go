package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubhub/internal/errors"
	"clubhub/internal/service"
)

// PollHandler handles poll management and voting endpoints.
type PollHandler struct {
	pollService service.PollService
}

// NewPollHandler creates a new poll handler.
func NewPollHandler(pollService service.PollService) *PollHandler {
	return &PollHandler{pollService: pollService}
}

// PollRequest represents the admin create/edit poll form.
type PollRequest struct {
	Question string   `json:"question" validate:"required"`
	PollType string   `json:"poll_type" validate:"omitempty,oneof=single multiple"`
	Options  []string `json:"options" validate:"required,min=2,dive,required"`
	EndDate  string   `json:"end_date"`
	Active   bool     `json:"active"`
}

// SetActiveRequest toggles a poll open or closed.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// VoteRequest represents a vote submission.
type VoteRequest struct {
	OptionIdx *int `json:"option_idx" validate:"required,min=0"`
}

// List godoc
// @Summary List polls with tallies and voter IDs
// @Tags polls
// @Produce json
// @Success 200 {array} service.PollView
// @Failure 500 {object} errors.ErrorResponse
// @Router /polls [get]
func (h *PollHandler) List(c echo.Context) error {
	polls, err := h.pollService.List(c.Request().Context())
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, polls)
}

// Get godoc
// @Summary Get one poll
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} service.PollView
// @Failure 404 {object} errors.ErrorResponse
// @Router /polls/{id} [get]
func (h *PollHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	poll, err := h.pollService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, poll)
}

// Results godoc
// @Summary Get live poll results with percentages
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} service.PollResults
// @Failure 404 {object} errors.ErrorResponse
// @Router /polls/{id}/results [get]
func (h *PollHandler) Results(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	results, err := h.pollService.Results(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, results)
}

// Create godoc
// @Summary Create a poll
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PollRequest true "Poll data"
// @Success 201 {object} model.Poll
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/polls [post]
func (h *PollHandler) Create(c echo.Context) error {
	var req PollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	poll, err := h.pollService.Create(c.Request().Context(), service.PollInput{
		Question: req.Question,
		PollType: req.PollType,
		Options:  req.Options,
		EndDate:  req.EndDate,
		Active:   req.Active,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, poll)
}

// Update godoc
// @Summary Edit a poll, replacing its options and resetting tallies
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param request body PollRequest true "Poll data"
// @Success 200 {object} model.Poll
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/polls/{id} [put]
func (h *PollHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req PollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	poll, err := h.pollService.Update(c.Request().Context(), id, service.PollInput{
		Question: req.Question,
		PollType: req.PollType,
		Options:  req.Options,
		EndDate:  req.EndDate,
		Active:   req.Active,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, poll)
}

// SetActive godoc
// @Summary Open or close a poll
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param request body SetActiveRequest true "Active flag"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/polls/{id}/active [put]
func (h *PollHandler) SetActive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.pollService.SetActive(c.Request().Context(), id, req.Active); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "poll updated"})
}

// Delete godoc
// @Summary Delete a poll
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/polls/{id} [delete]
func (h *PollHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.pollService.Delete(c.Request().Context(), id); err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "poll deleted"})
}

// Vote godoc
// @Summary Cast a vote on an active poll
// @Tags polls
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param request body VoteRequest true "Vote data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /polls/{id}/votes [post]
func (h *PollHandler) Vote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req VoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.pollService.Vote(c.Request().Context(), id, *req.OptionIdx, userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "vote recorded"})
}

// MyVote godoc
// @Summary Check whether the current user has voted on a poll
// @Tags polls
// @Security BearerAuth
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Router /polls/{id}/votes/me [get]
func (h *PollHandler) MyVote(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	voted, err := h.pollService.HasVoted(c.Request().Context(), id, userID)
	if err != nil {
		return handleDBError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"has_voted": voted})
}
