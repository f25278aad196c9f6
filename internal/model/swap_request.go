package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SwapStatus represents the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCancelled SwapStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed from the status.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapStatusAccepted || s == SwapStatusRejected || s == SwapStatusCancelled
}

// SwapRequest is the central transactional entity: one user offering a skill
// to another in exchange for one of theirs.
type SwapRequest struct {
	ID             uuid.UUID      `json:"swapId" gorm:"type:char(36);primaryKey"`
	RequesterID    uuid.UUID      `json:"requesterId" gorm:"type:char(36);not null;index"`
	ResponderID    uuid.UUID      `json:"responderId" gorm:"type:char(36);not null;index"`
	OfferedSkillID uuid.UUID      `json:"-" gorm:"type:char(36);not null"`
	WantedSkillID  uuid.UUID      `json:"-" gorm:"type:char(36);not null"`
	Status         SwapStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Requester    User  `json:"-" gorm:"foreignKey:RequesterID"`
	Responder    User  `json:"-" gorm:"foreignKey:ResponderID"`
	OfferedSkill Skill `json:"offeredSkill" gorm:"foreignKey:OfferedSkillID"`
	WantedSkill  Skill `json:"wantedSkill" gorm:"foreignKey:WantedSkillID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *SwapRequest) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
