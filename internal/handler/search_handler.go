package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"skillswap/internal/errors"
	"skillswap/internal/repository"
	"skillswap/internal/service"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// SearchHandler handles user directory search and match discovery.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search godoc
// @Summary Search public user profiles
// @Description Filters combine with AND. The skills filter matches users
// @Description whose offered or wanted list intersects the given IDs.
// @Tags search
// @Produce json
// @Param q query string false "Substring of the user name, case-insensitive"
// @Param location query string false "Substring of the location, case-insensitive"
// @Param skills query string false "Comma-separated skill IDs"
// @Param limit query int false "Page size, max 100"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /search/users [get]
func (h *SearchHandler) Search(c echo.Context) error {
	filter := repository.UserSearchFilter{
		NameContains: c.QueryParam("q"),
		Location:     c.QueryParam("location"),
		Limit:        defaultSearchLimit,
	}

	if raw := c.QueryParam("skills"); raw != "" {
		ids, err := parseUUIDList(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid skill id in skills filter",
				Code:  "INVALID_UUID",
			})
		}
		filter.SkillIDs = ids
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid limit",
				Code:  "INVALID_PAGINATION",
			})
		}
		if limit > maxSearchLimit {
			limit = maxSearchLimit
		}
		filter.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid offset",
				Code:  "INVALID_PAGINATION",
			})
		}
		filter.Offset = offset
	}

	users, err := h.searchService.SearchUsers(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// Matches godoc
// @Summary List potential swap partners for the caller
// @Description Returns users who offer a skill the caller wants and want a
// @Description skill the caller offers.
// @Tags search
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /search/matches [get]
func (h *SearchHandler) Matches(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	users, err := h.searchService.FindMatches(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

func parseUUIDList(raw string) ([]uuid.UUID, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
