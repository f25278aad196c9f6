package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"skillswap/internal/errors"
)

// RequireNotBlacklisted rejects requests whose access token was revoked by a
// logout. It runs after the JWT middleware, which leaves the parsed token in
// the context. A store error counts as not revoked, matching the fail-safe
// cache: Redis being down must not lock every user out.
func RequireNotBlacklisted(store TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return next(c)
			}
			claims, ok := token.Claims.(*Claims)
			if !ok || claims.ID == "" {
				return next(c)
			}

			revoked, err := store.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if err == nil && revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "token has been revoked",
					Code:  "TOKEN_REVOKED",
				})
			}
			return next(c)
		}
	}
}
