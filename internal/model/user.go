package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents a user's role in the marketplace.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered member of the skill exchange.
type User struct {
	ID           uuid.UUID      `json:"userId" gorm:"type:char(36);primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null;index"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role           `json:"role" gorm:"type:varchar(20);not null;default:'user';index"`
	Location     *string        `json:"location" gorm:"size:255;index"`
	PhotoURL     *string        `json:"photoUrl" gorm:"size:512"`
	IsPublic     bool           `json:"isPublic" gorm:"default:true;index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	SkillsOffered []Skill `json:"skillsOffered,omitempty" gorm:"many2many:user_skills_offered;"`
	SkillsWanted  []Skill `json:"skillsWanted,omitempty" gorm:"many2many:user_skills_wanted;"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
