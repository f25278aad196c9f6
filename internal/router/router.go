package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"skillswap/internal/auth"
	"skillswap/internal/config"
	"skillswap/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	skillHandler *handler.SkillHandler,
	searchHandler *handler.SearchHandler,
	swapHandler *handler.SwapHandler,
	ratingHandler *handler.RatingHandler,
	notificationHandler *handler.NotificationHandler,
	messageHandler *handler.MessageHandler,
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

	api.GET("/skills", skillHandler.List)
	api.GET("/skills/:id", skillHandler.Get)

	api.GET("/search/users", searchHandler.Search)

	api.GET("/users/:id/ratings", ratingHandler.ListForUser)
	api.GET("/users/:id/ratings/stats", ratingHandler.Stats)

	// Secured routes (require JWT authentication and a non-revoked token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), auth.RequireNotBlacklisted(tokenStore))

	// Profile routes
	secured.GET("/users/me", userHandler.GetMe)
	secured.PUT("/users/me", userHandler.Update)
	secured.DELETE("/users/me", userHandler.Delete)
	secured.GET("/users/:id", userHandler.Get)

	// Skill catalog admin routes
	secured.POST("/skills", skillHandler.Create)
	secured.PUT("/skills/:id", skillHandler.Update)
	secured.DELETE("/skills/:id", skillHandler.Delete)

	// Per-user skill list routes
	secured.POST("/users/me/skills/offered", skillHandler.AddOffered)
	secured.DELETE("/users/me/skills/offered/:id", skillHandler.RemoveOffered)
	secured.POST("/users/me/skills/wanted", skillHandler.AddWanted)
	secured.DELETE("/users/me/skills/wanted/:id", skillHandler.RemoveWanted)

	// Match discovery
	secured.GET("/search/matches", searchHandler.Matches)

	// Swap routes
	secured.POST("/swaps", swapHandler.Create)
	secured.GET("/swaps", swapHandler.List)
	secured.GET("/swaps/:id", swapHandler.Get)
	secured.POST("/swaps/:id/accept", swapHandler.Accept)
	secured.POST("/swaps/:id/reject", swapHandler.Reject)
	secured.POST("/swaps/:id/cancel", swapHandler.Cancel)
	secured.GET("/swaps/:id/conversation", messageHandler.GetForSwap)

	// Rating routes
	secured.POST("/ratings", ratingHandler.Create)
	secured.DELETE("/ratings/:id", ratingHandler.Delete)

	// Notification routes
	secured.GET("/notifications", notificationHandler.List)
	secured.GET("/notifications/stats", notificationHandler.Stats)
	secured.POST("/notifications/read", notificationHandler.MarkRead)
	secured.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	secured.DELETE("/notifications/:id", notificationHandler.Delete)

	// Conversation routes
	secured.GET("/conversations", messageHandler.ListConversations)
	secured.GET("/conversations/:id/messages", messageHandler.ListMessages)
	secured.POST("/conversations/:id/messages", messageHandler.Send)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
