package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"clubhub/internal/auth"
	"clubhub/internal/config"
	"clubhub/internal/errors"
	"clubhub/internal/handler"
	"clubhub/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	announcementHandler *handler.AnnouncementHandler,
	eventHandler *handler.EventHandler,
	officerHandler *handler.OfficerHandler,
	pollHandler *handler.PollHandler,
	messageHandler *handler.MessageHandler,
	memberHandler *handler.MemberHandler,
	dashboardHandler *handler.DashboardHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/announcements", announcementHandler.List)
	api.GET("/events", eventHandler.List)
	api.GET("/events/:id", eventHandler.Get)
	api.GET("/officers", officerHandler.List)
	api.GET("/polls", pollHandler.List)
	api.GET("/polls/:id", pollHandler.Get)
	api.GET("/polls/:id/results", pollHandler.Results)
	api.POST("/messages", messageHandler.Create)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	secured.GET("/me", func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": claims.UserID,
			"email":   claims.Email,
			"role":    claims.Role,
		})
	})
	secured.POST("/auth/password", authHandler.ChangePassword)

	// Voting and event registration
	secured.POST("/polls/:id/votes", pollHandler.Vote)
	secured.GET("/polls/:id/votes/me", pollHandler.MyVote)
	secured.POST("/events/:id/registrations", eventHandler.Register)
	secured.GET("/events/:id/registrations/me", eventHandler.MyRegistration)
	secured.GET("/me/registrations", eventHandler.MyRegistrations)

	// Admin routes (role gate on top of JWT)
	admin := secured.Group("/admin", requireAdmin)

	admin.GET("/dashboard", dashboardHandler.Summary)

	admin.GET("/announcements", announcementHandler.ListAll)
	admin.POST("/announcements", announcementHandler.Create)
	admin.PUT("/announcements/:id", announcementHandler.Update)
	admin.DELETE("/announcements/:id", announcementHandler.Delete)

	admin.POST("/events", eventHandler.Create)
	admin.PUT("/events/:id", eventHandler.Update)
	admin.DELETE("/events/:id", eventHandler.Delete)
	admin.GET("/events/:id/registrations", eventHandler.ListRegistrations)
	admin.DELETE("/registrations/:id", eventHandler.DeleteRegistration)

	admin.POST("/officers", officerHandler.Create)
	admin.PUT("/officers/:id", officerHandler.Update)
	admin.DELETE("/officers/:id", officerHandler.Delete)

	admin.POST("/polls", pollHandler.Create)
	admin.PUT("/polls/:id", pollHandler.Update)
	admin.PUT("/polls/:id/active", pollHandler.SetActive)
	admin.DELETE("/polls/:id", pollHandler.Delete)

	admin.GET("/messages", messageHandler.List)
	admin.DELETE("/messages/:id", messageHandler.Delete)

	admin.GET("/members", memberHandler.List)
	admin.PUT("/members/:id/approve", memberHandler.Approve)
	admin.DELETE("/members/:id", memberHandler.Delete)

	admin.POST("/seed/officers", seedHandler.SeedOfficers)
}

// requireAdmin rejects authenticated users whose token does not carry the
// admin role.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "admin access required",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
