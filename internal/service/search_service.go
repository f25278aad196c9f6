package service

import (
	"context"

	"github.com/google/uuid"

	"skillswap/internal/model"
	"skillswap/internal/repository"
)

const defaultMatchLimit = 20

// SearchService filters the user directory for browse and match screens.
type SearchService interface {
	// SearchUsers returns public users matching the filter in stable
	// insertion order. An empty filter returns the full directory.
	SearchUsers(ctx context.Context, filter repository.UserSearchFilter) ([]model.User, error)
	// FindMatches returns users who offer something the given user wants
	// and want something the given user offers.
	FindMatches(ctx context.Context, userID uuid.UUID) ([]model.User, error)
}

type searchService struct {
	userRepo repository.UserRepository
}

// NewSearchService creates a new search service.
func NewSearchService(userRepo repository.UserRepository) SearchService {
	return &searchService{userRepo: userRepo}
}

// SearchUsers delegates to the repository. The skill id set uses OR
// semantics: a candidate matches when their offered or wanted set intersects
// it, so selecting more skills widens results.
func (s *searchService) SearchUsers(ctx context.Context, filter repository.UserSearchFilter) ([]model.User, error) {
	return s.userRepo.Search(ctx, filter)
}

// FindMatches returns mutual-interest candidates for the user.
func (s *searchService) FindMatches(ctx context.Context, userID uuid.UUID) ([]model.User, error) {
	return s.userRepo.FindMutualMatches(ctx, userID, defaultMatchLimit)
}
