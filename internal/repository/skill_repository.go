package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/model"
)

// SkillRepository defines catalog and user skill-set persistence operations.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	List(ctx context.Context) ([]model.Skill, error)

	AddOffered(ctx context.Context, userID, skillID uuid.UUID) error
	RemoveOffered(ctx context.Context, userID, skillID uuid.UUID) error
	AddWanted(ctx context.Context, userID, skillID uuid.UUID) error
	RemoveWanted(ctx context.Context, userID, skillID uuid.UUID) error
	UserOffers(ctx context.Context, userID, skillID uuid.UUID) (bool, error)
	ReferenceCount(ctx context.Context, skillID uuid.UUID) (int64, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

// Create creates a new skill record.
func (r *skillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

// Update updates an existing skill record.
func (r *skillRepository) Update(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

// Delete removes a skill from the catalog.
func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Skill{}, "id = ?", id).Error
}

// FindByID finds a skill by ID.
func (r *skillRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// List returns the whole catalog in insertion order.
func (r *skillRepository) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// AddOffered adds a skill to a user's offered set; re-adding is a no-op.
func (r *skillRepository) AddOffered(ctx context.Context, userID, skillID uuid.UUID) error {
	row := model.UserSkillOffered{UserID: userID, SkillID: skillID}
	return r.db.WithContext(ctx).FirstOrCreate(&row, row).Error
}

// RemoveOffered removes a skill from a user's offered set.
func (r *skillRepository) RemoveOffered(ctx context.Context, userID, skillID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&model.UserSkillOffered{}, "user_id = ? AND skill_id = ?", userID, skillID).Error
}

// AddWanted adds a skill to a user's wanted set; re-adding is a no-op.
func (r *skillRepository) AddWanted(ctx context.Context, userID, skillID uuid.UUID) error {
	row := model.UserSkillWanted{UserID: userID, SkillID: skillID}
	return r.db.WithContext(ctx).FirstOrCreate(&row, row).Error
}

// RemoveWanted removes a skill from a user's wanted set.
func (r *skillRepository) RemoveWanted(ctx context.Context, userID, skillID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&model.UserSkillWanted{}, "user_id = ? AND skill_id = ?", userID, skillID).Error
}

// UserOffers reports whether the skill is in the user's offered set.
func (r *skillRepository) UserOffers(ctx context.Context, userID, skillID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserSkillOffered{}).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Count(&count).Error
	return count > 0, err
}

// ReferenceCount counts how many user skill sets and swap requests still
// reference the skill.
func (r *skillRepository) ReferenceCount(ctx context.Context, skillID uuid.UUID) (int64, error) {
	var offered, wanted, swaps int64
	if err := r.db.WithContext(ctx).Model(&model.UserSkillOffered{}).
		Where("skill_id = ?", skillID).Count(&offered).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.UserSkillWanted{}).
		Where("skill_id = ?", skillID).Count(&wanted).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("offered_skill_id = ? OR wanted_skill_id = ?", skillID, skillID).
		Count(&swaps).Error; err != nil {
		return 0, err
	}
	return offered + wanted + swaps, nil
}
