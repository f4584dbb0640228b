package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorravana/boutique-backend/pkg/db/models"
	"github.com/gorravana/boutique-backend/pkg/enums"
	"github.com/gorravana/boutique-backend/pkg/errors"
	"github.com/gorravana/boutique-backend/pkg/pagination"
)

const retentionWindow = 90 * 24 * time.Hour

// Service exposes admin notification reads and read-state management.
type Service interface {
	List(ctx context.Context, unreadOnly bool, limit int) ([]models.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	Cleanup(ctx context.Context) (int64, error)
}

type service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("notifications repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// RecordOrderReceived inserts the in-app alert for a new order inside the
// caller's transaction, alongside the order row itself.
func RecordOrderReceived(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	link := "/admin/pedidos/" + order.ID.String()
	notification := &models.Notification{
		Type:    enums.NotificationTypeOrderReceived,
		Title:   "Nuevo pedido " + order.Folio,
		Message: fmt.Sprintf("%s, total $%s, %d artículos", order.CustomerName, order.Total.StringFixed(2), len(order.LineItems)),
		Link:    &link,
	}
	return NewRepository(tx).Create(ctx, notification)
}

// RecordLowStock inserts a low-stock alert inside the caller's transaction.
func RecordLowStock(ctx context.Context, tx *gorm.DB, name string, ref string, stock int) error {
	link := "/admin/inventario"
	notification := &models.Notification{
		Type:    enums.NotificationTypeLowStock,
		Title:   "Stock bajo: " + name,
		Message: fmt.Sprintf("Quedan %d unidades de %s (%s)", stock, name, ref),
		Link:    &link,
	}
	return NewRepository(tx).Create(ctx, notification)
}

func (s *service) List(ctx context.Context, unreadOnly bool, limit int) ([]models.Notification, error) {
	rows, err := s.repo.List(ctx, unreadOnly, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing notifications")
	}
	return rows, nil
}

func (s *service) CountUnread(ctx context.Context) (int64, error) {
	count, err := s.repo.CountUnread(ctx)
	if err != nil {
		return 0, errors.Wrap(errors.CodeDependency, err, "counting notifications")
	}
	return count, nil
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) error {
	marked, err := s.repo.MarkRead(ctx, id, s.now().UTC())
	if err != nil {
		return errors.Wrap(errors.CodeDependency, err, "marking notification read")
	}
	if !marked {
		return errors.New(errors.CodeNotFound, "notification not found or already read")
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context) (int64, error) {
	count, err := s.repo.MarkAllRead(ctx, s.now().UTC())
	if err != nil {
		return 0, errors.Wrap(errors.CodeDependency, err, "marking notifications read")
	}
	return count, nil
}

// Cleanup prunes read notifications older than the retention window.
func (s *service) Cleanup(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteOlderThan(ctx, s.now().UTC().Add(-retentionWindow))
	if err != nil {
		return 0, errors.Wrap(errors.CodeDependency, err, "pruning notifications")
	}
	return count, nil
}
