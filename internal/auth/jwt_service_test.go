package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"skillswap/internal/model"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "marc@example.com", model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "marc@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenID, token, err := svc.GenerateRefreshToken(uuid.New(), "marc@example.com", model.RoleUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	token, err := svc.GenerateAccessToken(uuid.New(), "marc@example.com", model.RoleUser)
	assert.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_AccessTokensCarryDistinctIDs(t *testing.T) {
	svc := NewJWTService("test-secret")

	first, err := svc.GenerateAccessToken(uuid.New(), "marc@example.com", model.RoleUser)
	assert.NoError(t, err)
	second, err := svc.GenerateAccessToken(uuid.New(), "joe@example.com", model.RoleUser)
	assert.NoError(t, err)

	firstID, err := svc.ExtractTokenID(first)
	assert.NoError(t, err)
	assert.NotEmpty(t, firstID)

	secondID, err := svc.ExtractTokenID(second)
	assert.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)
}
