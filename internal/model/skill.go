package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is an immutable catalog entry that users can offer or want.
type Skill struct {
	ID          uuid.UUID `json:"skillId" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
