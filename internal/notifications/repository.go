package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorravana/boutique-backend/pkg/db/models"
)

// Repository persists admin console notifications.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// List returns notifications newest-first, optionally only unread ones.
func (r *Repository) List(ctx context.Context, unreadOnly bool, limit int) ([]models.Notification, error) {
	query := r.db.WithContext(ctx).Model(&models.Notification{})
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	var rows []models.Notification
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("read_at IS NULL").
		Count(&count).Error
	return count, err
}

// MarkRead stamps one notification; already-read rows are untouched.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", readAt)
	return result.RowsAffected > 0, result.Error
}

func (r *Repository) MarkAllRead(ctx context.Context, readAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("read_at IS NULL").
		Update("read_at", readAt)
	return result.RowsAffected, result.Error
}

// DeleteOlderThan prunes read notifications past the retention window.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("read_at IS NOT NULL AND created_at < ?", cutoff).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
