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

const (
	skillCatalogCacheKey = "skills:catalog"
	skillCatalogCacheTTL = 10 * time.Minute
)

// SkillService handles the skill catalog and per-user skill sets.
type SkillService interface {
	GetSkillByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	ListSkills(ctx context.Context) ([]model.Skill, error)
	CreateSkill(ctx context.Context, name string, description *string) (*model.Skill, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, name string, description *string) (*model.Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error

	AddOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error
	RemoveOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error
	AddWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error
	RemoveWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error
}

type skillService struct {
	skillRepo repository.SkillRepository
	cache     *cache.Client
}

// NewSkillService creates a new skill service.
func NewSkillService(skillRepo repository.SkillRepository, cache *cache.Client) SkillService {
	return &skillService{
		skillRepo: skillRepo,
		cache:     cache,
	}
}

// GetSkillByID retrieves a skill from the catalog.
func (s *skillService) GetSkillByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	skill, err := s.skillRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}
	return skill, nil
}

// ListSkills returns the whole catalog with caching. Catalog reads dominate
// writes by orders of magnitude on the browse screens.
func (s *skillService) ListSkills(ctx context.Context) ([]model.Skill, error) {
	if data, _ := s.cache.Get(ctx, skillCatalogCacheKey); data != nil {
		var cached []model.Skill
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	if payload, err := json.Marshal(skills); err == nil {
		_ = s.cache.Set(ctx, skillCatalogCacheKey, payload, skillCatalogCacheTTL)
	}

	return skills, nil
}

// CreateSkill adds a catalog entry and invalidates the cached catalog.
func (s *skillService) CreateSkill(ctx context.Context, name string, description *string) (*model.Skill, error) {
	skill := &model.Skill{
		Name:        name,
		Description: description,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	_ = s.cache.Delete(ctx, skillCatalogCacheKey)
	return skill, nil
}

// UpdateSkill renames or redescribes a catalog entry.
func (s *skillService) UpdateSkill(ctx context.Context, id uuid.UUID, name string, description *string) (*model.Skill, error) {
	skill, err := s.GetSkillByID(ctx, id)
	if err != nil {
		return nil, err
	}
	skill.Name = name
	skill.Description = description
	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	_ = s.cache.Delete(ctx, skillCatalogCacheKey)
	return skill, nil
}

// DeleteSkill removes a catalog entry unless it is still referenced by user
// skill sets or swap requests.
func (s *skillService) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSkillByID(ctx, id); err != nil {
		return err
	}
	refs, err := s.skillRepo.ReferenceCount(ctx, id)
	if err != nil {
		return fmt.Errorf("count skill references: %w", err)
	}
	if refs > 0 {
		return errors.ErrSkillInUse
	}
	if err := s.skillRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	_ = s.cache.Delete(ctx, skillCatalogCacheKey)
	return nil
}

// AddOfferedSkill puts a catalog skill into the user's offered set.
func (s *skillService) AddOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if _, err := s.GetSkillByID(ctx, skillID); err != nil {
		return err
	}
	return s.skillRepo.AddOffered(ctx, userID, skillID)
}

// RemoveOfferedSkill removes a skill from the user's offered set.
func (s *skillService) RemoveOfferedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	return s.skillRepo.RemoveOffered(ctx, userID, skillID)
}

// AddWantedSkill puts a catalog skill into the user's wanted set.
func (s *skillService) AddWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if _, err := s.GetSkillByID(ctx, skillID); err != nil {
		return err
	}
	return s.skillRepo.AddWanted(ctx, userID, skillID)
}

// RemoveWantedSkill removes a skill from the user's wanted set.
func (s *skillService) RemoveWantedSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	return s.skillRepo.RemoveWanted(ctx, userID, skillID)
}
