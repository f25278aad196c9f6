package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/model"
)

// UserSearchFilter narrows the browse directory. Zero value returns everyone.
type UserSearchFilter struct {
	NameContains string
	SkillIDs     []uuid.UUID
	Location     string
	Limit        int
	Offset       int
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Search(ctx context.Context, filter UserSearchFilter) ([]model.User, error)
	FindMutualMatches(ctx context.Context, userID uuid.UUID, limit int) ([]model.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user record.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update updates an existing user record.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// FindByID finds a user by ID with their skill sets preloaded.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("SkillsOffered").Preload("SkillsWanted").
		Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Search filters the public directory. Name and location match
// case-insensitive substrings; the skill set matches users whose offered OR
// wanted skills intersect it. Results are in stable insertion order so
// pagination never shuffles pages.
func (r *userRepository) Search(ctx context.Context, filter UserSearchFilter) ([]model.User, error) {
	query := r.db.WithContext(ctx).Model(&model.User{}).Where("is_public = ?", true)

	if filter.NameContains != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.NameContains)+"%")
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if len(filter.SkillIDs) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM user_skills_offered uso WHERE uso.user_id = users.id AND uso.skill_id IN ?)"+
				" OR EXISTS (SELECT 1 FROM user_skills_wanted usw WHERE usw.user_id = users.id AND usw.skill_id IN ?)",
			filter.SkillIDs, filter.SkillIDs)
	}

	query = query.Order("created_at ASC, id ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var users []model.User
	err := query.Preload("SkillsOffered").Preload("SkillsWanted").Find(&users).Error
	return users, err
}

// FindMutualMatches returns public users who offer a skill the given user
// wants and want a skill the given user offers.
func (r *userRepository) FindMutualMatches(ctx context.Context, userID uuid.UUID, limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id != ? AND is_public = ?", userID, true).
		Where("EXISTS (SELECT 1 FROM user_skills_offered uso WHERE uso.user_id = users.id"+
			" AND uso.skill_id IN (SELECT skill_id FROM user_skills_wanted WHERE user_id = ?))", userID).
		Where("EXISTS (SELECT 1 FROM user_skills_wanted usw WHERE usw.user_id = users.id"+
			" AND usw.skill_id IN (SELECT skill_id FROM user_skills_offered WHERE user_id = ?))", userID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Preload("SkillsOffered").Preload("SkillsWanted").
		Find(&users).Error
	return users, err
}

// SoftDelete marks a user as deleted without removing the row.
func (r *userRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}
