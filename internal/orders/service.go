package orders

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorravana/boutique-backend/pkg/db"
	"github.com/gorravana/boutique-backend/pkg/db/models"
	"github.com/gorravana/boutique-backend/pkg/enums"
	"github.com/gorravana/boutique-backend/pkg/errors"
	"github.com/gorravana/boutique-backend/pkg/outbox"
	"github.com/gorravana/boutique-backend/pkg/pagination"
)

// ListResult is one page of orders plus the cursor for the next one.
type ListResult struct {
	Orders     []models.Order
	NextCursor string
}

// ListInput carries the admin list request.
type ListInput struct {
	Status string
	Cursor string
	Limit  int
}

// Service exposes order reads and lifecycle transitions for the admin console.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByFolio(ctx context.Context, folio string) (*models.Order, error)
	List(ctx context.Context, input ListInput) (*ListResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*models.Order, error)
	CountByStatus(ctx context.Context) (map[enums.OrderStatus]int64, error)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	emitter  *outbox.Service
	now      func() time.Time
}

// NewService constructs the orders service.
func NewService(repo *Repository, dbClient *db.Client, emitter *outbox.Service) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if emitter == nil {
		return nil, fmt.Errorf("outbox service required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		emitter:  emitter,
		now:      time.Now,
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orderLoadError(err)
	}
	return order, nil
}

func (s *service) GetByFolio(ctx context.Context, folio string) (*models.Order, error) {
	order, err := s.repo.FindByFolio(ctx, folio)
	if err != nil {
		return nil, orderLoadError(err)
	}
	return order, nil
}

func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	filter := ListFilter{Limit: input.Limit}

	if input.Status != "" {
		status, err := enums.ParseOrderStatus(input.Status)
		if err != nil {
			return nil, errors.New(errors.CodeValidation, err.Error())
		}
		filter.Status = &status
	}

	cursor, err := pagination.ParseCursor(input.Cursor)
	if err != nil {
		return nil, errors.New(errors.CodeValidation, "invalid cursor")
	}
	filter.Cursor = cursor

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing orders")
	}

	limit := pagination.NormalizeLimit(input.Limit)
	result := &ListResult{Orders: rows}
	if len(rows) > limit {
		result.Orders = rows[:limit]
		last := result.Orders[limit-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return result, nil
}

// UpdateStatus moves the order through its lifecycle. Disallowed transitions
// (e.g. cancelling a shipped order) are rejected as state conflicts; allowed
// ones stamp the matching lifecycle timestamp and emit a status-changed event.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*models.Order, error) {
	if !target.IsValid() {
		return nil, errors.New(errors.CodeValidation, fmt.Sprintf("invalid order status %q", target))
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, orderLoadError(err)
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, errors.New(
			errors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, target),
		)
	}

	now := s.now().UTC()
	updates := map[string]any{"status": target, "updated_at": now}
	switch target {
	case enums.OrderStatusConfirmed:
		updates["confirmed_at"] = now
	case enums.OrderStatusShipped:
		updates["shipped_at"] = now
	case enums.OrderStatusDelivered:
		updates["delivered_at"] = now
	case enums.OrderStatusCancelled:
		updates["cancelled_at"] = now
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).UpdateStatus(ctx, id, updates); err != nil {
			return errors.Wrap(errors.CodeDependency, err, "updating order status")
		}
		return s.emitter.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventOrderStatusChanged,
			AggregateType: enums.AggregateOrder,
			AggregateID:   order.ID,
			Data: map[string]any{
				"folio": order.Folio,
				"from":  order.Status,
				"to":    target,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *service) CountByStatus(ctx context.Context) (map[enums.OrderStatus]int64, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "counting orders")
	}
	return counts, nil
}

func orderLoadError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New(errors.CodeNotFound, "order not found")
	}
	return errors.Wrap(errors.CodeDependency, err, "loading order")
}
