package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubTokenStore struct {
	revoked map[string]bool
}

func (s *stubTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, email string, ttl time.Duration) error {
	return nil
}

func (s *stubTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	return uuid.Nil, "", nil
}

func (s *stubTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return nil
}

func (s *stubTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = map[string]bool{}
	}
	s.revoked[tokenID] = true
	return nil
}

func (s *stubTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

func newBlacklistContext(t *testing.T, claims *Claims) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if claims != nil {
		c.Set("user", &jwt.Token{Claims: claims})
	}
	return c
}

func TestRequireNotBlacklisted(t *testing.T) {
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("revoked token is rejected", func(t *testing.T) {
		store := &stubTokenStore{revoked: map[string]bool{"revoked-id": true}}
		c := newBlacklistContext(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{ID: "revoked-id"},
		})

		err := RequireNotBlacklisted(store)(next)(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("live token passes through", func(t *testing.T) {
		c := newBlacklistContext(t, &Claims{
			RegisteredClaims: jwt.RegisteredClaims{ID: "live-id"},
		})

		err := RequireNotBlacklisted(&stubTokenStore{})(next)(c)
		assert.NoError(t, err)
	})

	t.Run("blacklisted token stops working after logout", func(t *testing.T) {
		store := &stubTokenStore{}
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{ID: "session-id"}}

		err := RequireNotBlacklisted(store)(next)(newBlacklistContext(t, claims))
		assert.NoError(t, err)

		err = store.BlacklistAccessToken(context.Background(), "session-id", time.Minute)
		assert.NoError(t, err)

		err = RequireNotBlacklisted(store)(next)(newBlacklistContext(t, claims))
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("request without parsed token passes through", func(t *testing.T) {
		err := RequireNotBlacklisted(&stubTokenStore{})(next)(newBlacklistContext(t, nil))
		assert.NoError(t, err)
	})
}
