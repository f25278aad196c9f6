package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skillswap/internal/auth"
	"skillswap/internal/model"
)

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		nameField     string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:      "successful registration",
			email:     "test@example.com",
			password:  "password123",
			nameField: "Test User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "user already exists",
			email:     "existing@example.com",
			password:  "password123",
			nameField: "Existing User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			service := NewAuthService(mockRepo, jwtService, mockTokenStore)
			user, err := service.Register(context.Background(), tt.email, tt.password, tt.nameField)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.nameField, user.Name)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.True(t, user.IsPublic)
				assert.NotEmpty(t, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleUser,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, userID, "test@example.com", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "invalid credentials - user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "invalid credentials - wrong password",
			email:    "test@example.com",
			password: "wrong",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	userID := uuid.New()
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid refresh token yields new access token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(userID, "test@example.com", model.RoleUser)
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(userID, "test@example.com", nil)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		accessToken, err := service.RefreshToken(context.Background(), "not-a-token")

		assert.Equal(t, ErrInvalidRefreshToken, err)
		assert.Empty(t, accessToken)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(userID, "test@example.com", model.RoleUser)
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uuid.Nil, "", assert.AnError)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.Equal(t, ErrInvalidRefreshToken, err)
		assert.Empty(t, accessToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	userID := uuid.New()
	jwtService := auth.NewJWTService("test-secret")

	t.Run("revokes refresh token and blacklists the access token", func(t *testing.T) {
		refreshID, refreshToken, err := jwtService.GenerateRefreshToken(userID, "test@example.com", model.RoleUser)
		assert.NoError(t, err)
		accessToken, err := jwtService.GenerateAccessToken(userID, "test@example.com", model.RoleUser)
		assert.NoError(t, err)
		accessID, err := jwtService.ExtractTokenID(accessToken)
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("DeleteRefreshToken", mock.Anything, refreshID).Return(nil)
		mockTokenStore.On("BlacklistAccessToken", mock.Anything, accessID, mock.Anything).Return(nil)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
		err = service.Logout(context.Background(), refreshToken, accessToken)

		assert.NoError(t, err)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("logout without access token only revokes the refresh token", func(t *testing.T) {
		refreshID, refreshToken, err := jwtService.GenerateRefreshToken(userID, "test@example.com", model.RoleUser)
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("DeleteRefreshToken", mock.Anything, refreshID).Return(nil)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
		err = service.Logout(context.Background(), refreshToken, "")

		assert.NoError(t, err)
		mockTokenStore.AssertExpectations(t)
		mockTokenStore.AssertNotCalled(t, "BlacklistAccessToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("garbage refresh token is rejected", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		err := service.Logout(context.Background(), "not-a-token", "")

		assert.Equal(t, ErrInvalidRefreshToken, err)
	})
}
