package main

import (
	"log"
	"net/http"

	_ "skillswap/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"skillswap/internal/auth"
	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/db"
	"skillswap/internal/handler"
	"skillswap/internal/model"
	"skillswap/internal/repository"
	"skillswap/internal/router"
	"skillswap/internal/service"
)

// @title SkillSwap API
// @version 1.0
// @description Skill exchange marketplace API with swap requests, match discovery, ratings, notifications, and messaging.
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

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Skill{},
		&model.UserSkillOffered{},
		&model.UserSkillWanted{},
		&model.SwapRequest{},
		&model.Rating{},
		&model.Notification{},
		&model.Conversation{},
		&model.Message{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	swapRepo := repository.NewSwapRepository(gormDB)
	ratingRepo := repository.NewRatingRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	notificationService := service.NewNotificationService(notificationRepo)
	messageService := service.NewMessageService(messageRepo, notificationService)
	swapService := service.NewSwapService(swapRepo, skillRepo, userRepo, notificationService, messageService)
	ratingService := service.NewRatingService(ratingRepo, swapRepo)
	searchService := service.NewSearchService(userRepo)
	skillService := service.NewSkillService(skillRepo, cacheClient)
	userService := service.NewUserService(userRepo, ratingRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	skillHandler := handler.NewSkillHandler(skillService)
	searchHandler := handler.NewSearchHandler(searchService)
	swapHandler := handler.NewSwapHandler(swapService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	messageHandler := handler.NewMessageHandler(messageService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		authHandler,
		userHandler,
		skillHandler,
		searchHandler,
		swapHandler,
		ratingHandler,
		notificationHandler,
		messageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
