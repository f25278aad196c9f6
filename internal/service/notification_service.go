package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/errors"
	"skillswap/internal/model"
	"skillswap/internal/repository"
)

// NotificationService handles notification fan-out and the read-flag lifecycle.
type NotificationService interface {
	Notify(ctx context.Context, recipientID uuid.UUID, typ model.NotificationType, content string, relatedID *uuid.UUID) (*model.Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	StatsForUser(ctx context.Context, userID uuid.UUID) (*model.NotificationStats, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// Notify appends a notification for the recipient. Purely additive: nothing
// is overwritten and duplicates are allowed (delivery is at-least-once;
// RelatedID gives consumers a dedup key).
func (s *notificationService) Notify(ctx context.Context, recipientID uuid.UUID, typ model.NotificationType, content string, relatedID *uuid.UUID) (*model.Notification, error) {
	notification := &model.Notification{
		UserID:    recipientID,
		Type:      typ,
		Content:   content,
		IsRead:    false,
		RelatedID: relatedID,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return notification, nil
}

// ListForUser lists the user's notifications, newest first.
func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]model.Notification, error) {
	return s.notificationRepo.ListForUser(ctx, userID, unreadOnly, limit, offset)
}

// MarkRead marks the given notifications as read. Ownership is enforced by
// scoping the update to the user, so foreign ids just don't match.
func (s *notificationService) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	affected, err := s.notificationRepo.MarkRead(ctx, userID, ids)
	if err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	if affected == 0 {
		return errors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read.
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete removes one of the user's notifications.
func (s *notificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.notificationRepo.Delete(ctx, userID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrNotificationNotFound
		}
		return fmt.Errorf("delete notification: %w", err)
	}
	if affected == 0 {
		return errors.ErrNotificationNotFound
	}
	return nil
}

// StatsForUser counts the user's notifications by read state.
func (s *notificationService) StatsForUser(ctx context.Context, userID uuid.UUID) (*model.NotificationStats, error) {
	return s.notificationRepo.StatsForUser(ctx, userID)
}
