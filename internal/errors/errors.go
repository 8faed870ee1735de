package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPollNotFound is returned when a poll is not found.
	ErrPollNotFound = errors.New("poll not found")
	// ErrPollClosed is returned when voting on an inactive poll.
	ErrPollClosed = errors.New("poll is closed")
	// ErrInvalidOption is returned when the option index is out of range.
	ErrInvalidOption = errors.New("invalid poll option")
	// ErrAlreadyVoted is returned when a user votes twice on the same poll.
	ErrAlreadyVoted = errors.New("user has already voted on this poll")
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrAlreadyRegistered is returned when a user registers twice for an event.
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	// ErrUserNotFound is returned when a user profile is not found.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrPollNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "POLL_NOT_FOUND")
	case ErrPollClosed:
		return NewHTTPError(http.StatusConflict, err.Error(), "POLL_CLOSED")
	case ErrInvalidOption:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_OPTION")
	case ErrAlreadyVoted:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_VOTED")
	case ErrEventNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case ErrAlreadyRegistered:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_REGISTERED")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
