package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType identifies what event produced a notification.
type NotificationType string

const (
	NotificationSwapRequest     NotificationType = "swapRequest"
	NotificationSwapAccepted    NotificationType = "swapAccepted"
	NotificationSwapRejected    NotificationType = "swapRejected"
	NotificationMessageReceived NotificationType = "messageReceived"
)

// Notification is an append-only per-user event record. Delivery is
// at-least-once; consumers dedup on RelatedID if they care.
type Notification struct {
	ID        uuid.UUID        `json:"notificationId" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID        `json:"userId" gorm:"type:char(36);not null;index"`
	Type      NotificationType `json:"type" gorm:"type:varchar(30);not null"`
	Content   string           `json:"content" gorm:"type:text;not null"`
	IsRead    bool             `json:"isRead" gorm:"default:false;index"`
	RelatedID *uuid.UUID       `json:"relatedId,omitempty" gorm:"type:char(36)"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// NotificationStats counts a user's notifications by read state.
type NotificationStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
	Read   int64 `json:"read"`
}
