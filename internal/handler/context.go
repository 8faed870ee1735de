package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"clubhub/internal/auth"
)

// currentClaims returns the JWT claims the auth middleware stored on the
// request context.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// currentUserID returns the authenticated user's ID.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return id, nil
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
