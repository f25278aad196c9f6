package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"skillswap/internal/auth"
	"skillswap/internal/model"
)

// currentClaims extracts the authenticated user's claims set by echo-jwt.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// requireAdmin rejects callers without the admin role.
func requireAdmin(c echo.Context) (*auth.Claims, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return nil, err
	}
	if claims.Role != model.RoleAdmin {
		return nil, echo.NewHTTPError(http.StatusForbidden, "admin role required")
	}
	return claims, nil
}
