package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"skillswap/internal/errors"
	"skillswap/internal/model"
)

func TestUserService_GetProfile(t *testing.T) {
	userID := uuid.New()
	user := &model.User{ID: userID, Name: "Marc", Email: "marc@example.com", IsPublic: true}

	t.Run("rated user carries an average", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, userID).Return(user, nil)
		mockRatings := new(MockRatingRepository)
		mockRatings.On("StatsForUser", mock.Anything, userID).Return(&model.RatingStats{
			UserID:       userID,
			TotalRatings: 3,
			Average:      4.5,
		}, nil)

		svc := NewUserService(mockUsers, mockRatings, nil)
		profile, err := svc.GetProfile(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, "Marc", profile.Name)
		if assert.NotNil(t, profile.Rating) {
			assert.Equal(t, 4.5, *profile.Rating)
		}
	})

	t.Run("unrated user has a null rating", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, userID).Return(user, nil)
		mockRatings := new(MockRatingRepository)
		mockRatings.On("StatsForUser", mock.Anything, userID).Return(&model.RatingStats{UserID: userID}, nil)

		svc := NewUserService(mockUsers, mockRatings, nil)
		profile, err := svc.GetProfile(context.Background(), userID)

		assert.NoError(t, err)
		assert.Nil(t, profile.Rating)
	})

	t.Run("missing user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockUsers, new(MockRatingRepository), nil)
		profile, err := svc.GetProfile(context.Background(), userID)

		assert.ErrorIs(t, err, errors.ErrUserNotFound)
		assert.Nil(t, profile)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID:       userID,
		Name:     "Old Name",
		IsPublic: true,
	}, nil)
	mockUsers.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Name == "New Name" && !u.IsPublic
	})).Return(nil)
	mockRatings := new(MockRatingRepository)
	mockRatings.On("StatsForUser", mock.Anything, userID).Return(&model.RatingStats{UserID: userID}, nil)

	svc := NewUserService(mockUsers, mockRatings, nil)

	name := "New Name"
	isPublic := false
	profile, err := svc.UpdateProfile(context.Background(), userID, ProfileUpdate{
		Name:     &name,
		IsPublic: &isPublic,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", profile.Name)
	assert.False(t, profile.IsPublic)
	mockUsers.AssertExpectations(t)
}

func TestUserService_DeleteAccount(t *testing.T) {
	userID := uuid.New()

	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	mockUsers.On("SoftDelete", mock.Anything, userID).Return(nil)

	svc := NewUserService(mockUsers, new(MockRatingRepository), nil)
	assert.NoError(t, svc.DeleteAccount(context.Background(), userID))
	mockUsers.AssertExpectations(t)
}
