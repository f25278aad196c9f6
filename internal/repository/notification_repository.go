package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap/internal/model"
)

// NotificationRepository defines notification persistence operations.
// Writes are append-only; the only mutation is the read flag.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
	StatsForUser(ctx context.Context, userID uuid.UUID) (*model.NotificationStats, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create appends a notification record.
func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// FindByID finds a notification by ID.
func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListForUser lists a user's notifications, newest first.
func (r *notificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]model.Notification, error) {
	query := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var notifications []model.Notification
	err := query.Find(&notifications).Error
	return notifications, err
}

// MarkRead flips the read flag on the given notifications owned by the user.
func (r *notificationRepository) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// MarkAllRead flips the read flag on every unread notification of the user.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// Delete removes a notification owned by the user.
func (r *notificationRepository) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Notification{})
	return res.RowsAffected, res.Error
}

// StatsForUser counts a user's notifications by read state.
func (r *notificationRepository) StatsForUser(ctx context.Context, userID uuid.UUID) (*model.NotificationStats, error) {
	var stats model.NotificationStats
	if err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ?", userID).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&stats.Unread).Error; err != nil {
		return nil, err
	}
	stats.Read = stats.Total - stats.Unread
	return &stats, nil
}
