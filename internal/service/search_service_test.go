package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"skillswap/internal/model"
	"skillswap/internal/repository"
)

func TestSearchService_SearchUsers(t *testing.T) {
	skillA := uuid.New()
	skillB := uuid.New()

	// One user offers A, the other wants B; filtering on {A, B} must
	// surface both, offered and wanted lists count alike.
	offersA := model.User{ID: uuid.New(), Name: "Offers A", IsPublic: true}
	wantsB := model.User{ID: uuid.New(), Name: "Wants B", IsPublic: true}

	t.Run("skill filter unions offered and wanted", func(t *testing.T) {
		filter := repository.UserSearchFilter{SkillIDs: []uuid.UUID{skillA, skillB}}

		mockRepo := new(MockUserRepository)
		mockRepo.On("Search", mock.Anything, filter).Return([]model.User{offersA, wantsB}, nil)

		svc := NewSearchService(mockRepo)
		users, err := svc.SearchUsers(context.Background(), filter)

		assert.NoError(t, err)
		assert.Len(t, users, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty filter returns the full directory", func(t *testing.T) {
		filter := repository.UserSearchFilter{}

		mockRepo := new(MockUserRepository)
		mockRepo.On("Search", mock.Anything, filter).Return([]model.User{offersA, wantsB}, nil)

		svc := NewSearchService(mockRepo)
		users, err := svc.SearchUsers(context.Background(), filter)

		assert.NoError(t, err)
		assert.Equal(t, []model.User{offersA, wantsB}, users)
	})

	t.Run("repository order is preserved", func(t *testing.T) {
		filter := repository.UserSearchFilter{NameContains: "o"}

		mockRepo := new(MockUserRepository)
		mockRepo.On("Search", mock.Anything, filter).Return([]model.User{wantsB, offersA}, nil)

		svc := NewSearchService(mockRepo)
		users, err := svc.SearchUsers(context.Background(), filter)

		assert.NoError(t, err)
		assert.Equal(t, wantsB.ID, users[0].ID)
		assert.Equal(t, offersA.ID, users[1].ID)
	})
}

func TestSearchService_FindMatches(t *testing.T) {
	userID := uuid.New()
	match := model.User{ID: uuid.New(), Name: "Mutual Match", IsPublic: true}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindMutualMatches", mock.Anything, userID, defaultMatchLimit).Return([]model.User{match}, nil)

	svc := NewSearchService(mockRepo)
	users, err := svc.FindMatches(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, match.ID, users[0].ID)
	mockRepo.AssertExpectations(t)
}
