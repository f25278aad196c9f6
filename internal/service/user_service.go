package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/cache"
	"skillswap/internal/errors"
	"skillswap/internal/model"
	"skillswap/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// Profile is a user plus their derived average rating. Rating is null until
// the user has received at least one score.
type Profile struct {
	model.User
	Rating *float64 `json:"rating"`
}

// UserService handles profile reads and updates.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*Profile, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// ProfileUpdate carries the mutable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Name     *string
	Location *string
	PhotoURL *string
	IsPublic *bool
}

type userService struct {
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
	cache      *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, ratingRepo repository.RatingRepository, cache *cache.Client) UserService {
	return &userService{
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
		cache:      cache,
	}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

// GetProfile retrieves a user with their derived rating, cached.
func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached Profile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	profile := &Profile{User: *user}
	stats, err := s.ratingRepo.StatsForUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}
	if stats.TotalRatings > 0 {
		avg := stats.Average
		profile.Rating = &avg
	}

	if payload, err := json.Marshal(profile); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}

	return profile, nil
}

// UpdateProfile applies the given fields and invalidates the cached profile.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Location != nil {
		user.Location = update.Location
	}
	if update.PhotoURL != nil {
		user.PhotoURL = update.PhotoURL
	}
	if update.IsPublic != nil {
		user.IsPublic = *update.IsPublic
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	return s.GetProfile(ctx, id)
}

// DeleteAccount soft-deletes the user; the row is kept for referential
// integrity of past swaps and ratings.
func (s *userService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.userRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
