package outbox

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gorravana/boutique-backend/pkg/db/models"
)

// Repository persists and drains outbox rows.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// Insert appends an event row inside the caller's transaction.
func (r *Repository) Insert(ctx context.Context, tx *gorm.DB, event *models.OutboxEvent) error {
	return tx.WithContext(ctx).Create(event).Error
}

// FetchUnpublished returns the oldest unpublished rows, locking them so that
// concurrent publisher replicas do not double-send.
func (r *Repository) FetchUnpublished(ctx context.Context, tx *gorm.DB, limit int) ([]models.OutboxEvent, error) {
	var events []models.OutboxEvent
	query := tx.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at ASC, id ASC").
		Limit(limit)

	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
	}

	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FetchUnpublishedForPublish is FetchUnpublished restricted to rows that still
// have publish attempts left.
func (r *Repository) FetchUnpublishedForPublish(ctx context.Context, tx *gorm.DB, limit, maxAttempts int) ([]models.OutboxEvent, error) {
	var events []models.OutboxEvent
	query := tx.WithContext(ctx).
		Where("published_at IS NULL").
		Where("attempt_count < ?", maxAttempts).
		Order("created_at ASC, id ASC").
		Limit(limit)

	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
	}

	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// DeletePublishedBefore prunes rows that were published before the cutoff.
func (r *Repository) DeletePublishedBefore(ctx context.Context, tx *gorm.DB, cutoff time.Time) (int64, error) {
	result := tx.WithContext(ctx).
		Where("published_at IS NOT NULL AND published_at < ?", cutoff).
		Delete(&models.OutboxEvent{})
	return result.RowsAffected, result.Error
}

// MarkPublished stamps the row as delivered.
func (r *Repository) MarkPublished(ctx context.Context, tx *gorm.DB, id uuid.UUID, publishedAt time.Time) error {
	return tx.WithContext(ctx).
		Model(&models.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"published_at": publishedAt,
			"last_error":   nil,
		}).Error
}

// MarkFailed bumps the attempt counter and records the error for inspection.
func (r *Repository) MarkFailed(ctx context.Context, tx *gorm.DB, id uuid.UUID, publishErr error) error {
	message := "unknown error"
	if publishErr != nil {
		message = publishErr.Error()
	}
	return tx.WithContext(ctx).
		Model(&models.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempt_count": gorm.Expr("attempt_count + 1"),
			"last_error":    message,
		}).Error
}
