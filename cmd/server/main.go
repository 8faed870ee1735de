package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "clubhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"clubhub/internal/auth"
	"clubhub/internal/cache"
	"clubhub/internal/config"
	"clubhub/internal/db"
	"clubhub/internal/handler"
	"clubhub/internal/model"
	"clubhub/internal/repository"
	"clubhub/internal/router"
	"clubhub/internal/service"
)

// @title ClubHub API
// @version 1.0
// @description Student-organization membership portal: announcements, events, officers, polls, membership and a role-gated admin back office.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.PollVote{},
			&model.PollOption{},
			&model.Poll{},
			&model.EventRegistration{},
			&model.Event{},
			&model.Announcement{},
			&model.Officer{},
			&model.Message{},
			&model.Member{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Member{},
		&model.Poll{},
		&model.PollOption{},
		&model.PollVote{},
		&model.Event{},
		&model.EventRegistration{},
		&model.Announcement{},
		&model.Officer{},
		&model.Message{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	memberRepo := repository.NewMemberRepository(gormDB)
	pollRepo := repository.NewPollRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	regRepo := repository.NewRegistrationRepository(gormDB)
	announcementRepo := repository.NewAnnouncementRepository(gormDB)
	officerRepo := repository.NewOfficerRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	pollService := service.NewPollService(pollRepo, cacheClient)
	eventService := service.NewEventService(eventRepo)
	regService := service.NewRegistrationService(regRepo, eventRepo, userRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	officerService := service.NewOfficerService(officerRepo)
	messageService := service.NewMessageService(messageRepo)
	memberService := service.NewMemberService(memberRepo, userRepo)
	dashboardService := service.NewDashboardService(announcementRepo, eventRepo, officerRepo, pollRepo, memberRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	eventHandler := handler.NewEventHandler(eventService, regService)
	officerHandler := handler.NewOfficerHandler(officerService)
	pollHandler := handler.NewPollHandler(pollService)
	messageHandler := handler.NewMessageHandler(messageService)
	memberHandler := handler.NewMemberHandler(memberService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	seedHandler := handler.NewSeedHandler(officerService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		announcementHandler,
		eventHandler,
		officerHandler,
		pollHandler,
		messageHandler,
		memberHandler,
		dashboardHandler,
		seedHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
