package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/model"
)

// RatingListFilter narrows a user's rating listing.
type RatingListFilter struct {
	Given    bool // ratings the user wrote
	Received bool // ratings the user received
	Limit    int
	Offset   int
}

// RatingRepository defines rating persistence operations.
type RatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsForSwapAndRater(ctx context.Context, swapID, raterID uuid.UUID) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID, filter RatingListFilter) ([]model.Rating, error)
	StatsForUser(ctx context.Context, userID uuid.UUID) (*model.RatingStats, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create creates a new rating record.
func (r *ratingRepository) Create(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// FindByID finds a rating by ID.
func (r *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// Delete removes a rating.
func (r *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Rating{}, "id = ?", id).Error
}

// ExistsForSwapAndRater reports whether the rater already rated the swap.
func (r *ratingRepository) ExistsForSwapAndRater(ctx context.Context, swapID, raterID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Where("swap_id = ? AND rated_by_id = ?", swapID, raterID).
		Count(&count).Error
	return count > 0, err
}

// ListForUser lists ratings involving the user, newest first. Default is
// ratings the user received.
func (r *ratingRepository) ListForUser(ctx context.Context, userID uuid.UUID, filter RatingListFilter) ([]model.Rating, error) {
	query := r.db.WithContext(ctx).Model(&model.Rating{})

	switch {
	case filter.Given && !filter.Received:
		query = query.Where("rated_by_id = ?", userID)
	case filter.Given && filter.Received:
		query = query.Where("user_id = ? OR rated_by_id = ?", userID, userID)
	default:
		query = query.Where("user_id = ?", userID)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var ratings []model.Rating
	err := query.Find(&ratings).Error
	return ratings, err
}

// StatsForUser aggregates the ratings a user has received.
func (r *ratingRepository) StatsForUser(ctx context.Context, userID uuid.UUID) (*model.RatingStats, error) {
	stats := &model.RatingStats{
		UserID:      userID,
		ScoreCounts: map[int]int{},
	}

	var rows []struct {
		Score int
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Select("score, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("score").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	var sum int64
	for _, row := range rows {
		stats.ScoreCounts[row.Score] = int(row.Count)
		stats.TotalRatings += row.Count
		sum += int64(row.Score) * row.Count
	}
	if stats.TotalRatings > 0 {
		stats.Average = float64(sum) / float64(stats.TotalRatings)
	}
	return stats, nil
}
