package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/errors"
	"skillswap/internal/model"
	"skillswap/internal/repository"
)

// RatingService handles post-swap ratings. A rating always references the
// accepted swap that justifies it, so unsolicited ratings cannot exist.
type RatingService interface {
	Create(ctx context.Context, swapID, raterID uuid.UUID, score int, comment *string) (*model.Rating, error)
	Delete(ctx context.Context, ratingID, userID uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID, filter repository.RatingListFilter) ([]model.Rating, error)
	StatsForUser(ctx context.Context, userID uuid.UUID) (*model.RatingStats, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	swapRepo   repository.SwapRepository
}

// NewRatingService creates a new rating service.
func NewRatingService(ratingRepo repository.RatingRepository, swapRepo repository.SwapRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		swapRepo:   swapRepo,
	}
}

// Create records a 1-5 rating for the other participant of an accepted swap.
// Each participant can rate a swap once.
func (s *ratingService) Create(ctx context.Context, swapID, raterID uuid.UUID, score int, comment *string) (*model.Rating, error) {
	if score < 1 || score > 5 {
		return nil, errors.ErrInvalidScore
	}

	swap, err := s.swapRepo.FindByID(ctx, swapID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSwapNotFound
		}
		return nil, fmt.Errorf("find swap request: %w", err)
	}

	if swap.Status != model.SwapStatusAccepted {
		return nil, errors.ErrSwapNotAccepted
	}
	if swap.RequesterID != raterID && swap.ResponderID != raterID {
		return nil, errors.ErrForbidden
	}

	// The ratee is always the other participant.
	rateeID := swap.ResponderID
	if swap.ResponderID == raterID {
		rateeID = swap.RequesterID
	}

	rated, err := s.ratingRepo.ExistsForSwapAndRater(ctx, swapID, raterID)
	if err != nil {
		return nil, fmt.Errorf("check existing rating: %w", err)
	}
	if rated {
		return nil, errors.ErrAlreadyRated
	}

	rating := &model.Rating{
		SwapID:    swapID,
		UserID:    rateeID,
		RatedByID: raterID,
		Score:     score,
		Comment:   comment,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	return rating, nil
}

// Delete removes a rating; only its author may do so.
func (s *ratingService) Delete(ctx context.Context, ratingID, userID uuid.UUID) error {
	rating, err := s.ratingRepo.FindByID(ctx, ratingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRatingNotFound
		}
		return fmt.Errorf("find rating: %w", err)
	}
	if rating.RatedByID != userID {
		return errors.ErrForbidden
	}
	return s.ratingRepo.Delete(ctx, ratingID)
}

// ListForUser lists ratings involving the user.
func (s *ratingService) ListForUser(ctx context.Context, userID uuid.UUID, filter repository.RatingListFilter) ([]model.Rating, error) {
	return s.ratingRepo.ListForUser(ctx, userID, filter)
}

// StatsForUser aggregates the ratings a user has received.
func (s *ratingService) StatsForUser(ctx context.Context, userID uuid.UUID) (*model.RatingStats, error) {
	return s.ratingRepo.StatsForUser(ctx, userID)
}
