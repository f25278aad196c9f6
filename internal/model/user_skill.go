package model

import "github.com/google/uuid"

// UserSkillOffered is the join row linking a user to a skill they teach.
type UserSkillOffered struct {
	UserID  uuid.UUID `gorm:"type:char(36);primaryKey"`
	SkillID uuid.UUID `gorm:"type:char(36);primaryKey"`
}

// TableName matches the many2many table declared on User.SkillsOffered.
func (UserSkillOffered) TableName() string { return "user_skills_offered" }

// UserSkillWanted is the join row linking a user to a skill they want to learn.
type UserSkillWanted struct {
	UserID  uuid.UUID `gorm:"type:char(36);primaryKey"`
	SkillID uuid.UUID `gorm:"type:char(36);primaryKey"`
}

// TableName matches the many2many table declared on User.SkillsWanted.
func (UserSkillWanted) TableName() string { return "user_skills_wanted" }
