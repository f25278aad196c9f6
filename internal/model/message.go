package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is the message channel opened between the two participants of
// an accepted swap. At most one exists per swap.
type Conversation struct {
	ID          uuid.UUID `json:"conversationId" gorm:"type:char(36);primaryKey"`
	SwapID      uuid.UUID `json:"swapId" gorm:"type:char(36);not null;uniqueIndex"`
	RequesterID uuid.UUID `json:"requesterId" gorm:"type:char(36);not null;index"`
	ResponderID uuid.UUID `json:"responderId" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// HasParticipant reports whether the user is one of the two parties.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.RequesterID == userID || c.ResponderID == userID
}

// Other returns the participant opposite the given user.
func (c *Conversation) Other(userID uuid.UUID) uuid.UUID {
	if c.RequesterID == userID {
		return c.ResponderID
	}
	return c.RequesterID
}

// Message is a single immutable entry in a conversation. Either text or an
// image reference must be present.
type Message struct {
	ID             uuid.UUID `json:"messageId" gorm:"type:char(36);primaryKey"`
	ConversationID uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	SenderID       uuid.UUID `json:"senderId" gorm:"type:char(36);not null"`
	ReceiverID     uuid.UUID `json:"receiverId" gorm:"type:char(36);not null"`
	Text           *string   `json:"text" gorm:"type:text"`
	Image          *string   `json:"image" gorm:"size:512"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
