package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/internal/catalog"
	"github.com/gorravana/boutique-backend/internal/notifications"
	"github.com/gorravana/boutique-backend/internal/orders"
	"github.com/gorravana/boutique-backend/internal/shipping"
	"github.com/gorravana/boutique-backend/pkg/db"
	"github.com/gorravana/boutique-backend/pkg/db/models"
	"github.com/gorravana/boutique-backend/pkg/enums"
	"github.com/gorravana/boutique-backend/pkg/errors"
	"github.com/gorravana/boutique-backend/pkg/metrics"
	"github.com/gorravana/boutique-backend/pkg/outbox"
	"github.com/gorravana/boutique-backend/pkg/types"
)

const (
	lowStockThreshold = 3
	folioAttempts     = 5
)

type cartAccessor interface {
	Get(ctx context.Context, sessionID string) (cart.View, error)
	Clear(ctx context.Context, sessionID string) (cart.View, cart.Event, error)
}

type stockAdjuster interface {
	AdjustStockByRef(ctx context.Context, tx *gorm.DB, ref string, delta int) (int, error)
}

// SubmitInput is the validated checkout payload.
type SubmitInput struct {
	CustomerName string
	Email        string
	Phone        string
	Region       string
	Address      types.Address
	Notes        *string
}

// Service turns a session cart into a persisted order.
type Service interface {
	Quote(ctx context.Context, sessionID string, region string) (*QuoteView, error)
	Submit(ctx context.Context, sessionID string, input SubmitInput) (*models.Order, error)
}

// QuoteView is the priced summary for a region before submission.
type QuoteView struct {
	Subtotal decimal.Decimal   `json:"subtotal"`
	Shipping ShippingBreakdown `json:"shipping"`
	Total    decimal.Decimal   `json:"total"`
}

type service struct {
	calc     *shipping.Calculator
	carts    cartAccessor
	catalog  stockAdjuster
	orders   *orders.Repository
	dbClient *db.Client
	emitter  *outbox.Service
	metrics  *metrics.CheckoutMetrics
	now      func() time.Time
}

// NewService constructs the checkout service.
func NewService(
	calc *shipping.Calculator,
	carts cartAccessor,
	catalogSvc stockAdjuster,
	orderRepo *orders.Repository,
	dbClient *db.Client,
	emitter *outbox.Service,
	checkoutMetrics *metrics.CheckoutMetrics,
) (Service, error) {
	if calc == nil {
		return nil, fmt.Errorf("shipping calculator required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if orderRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if emitter == nil {
		return nil, fmt.Errorf("outbox service required")
	}
	return &service{
		calc:     calc,
		carts:    carts,
		catalog:  catalogSvc,
		orders:   orderRepo,
		dbClient: dbClient,
		emitter:  emitter,
		metrics:  checkoutMetrics,
		now:      time.Now,
	}, nil
}

// Quote prices the session's cart for a candidate region without any writes.
func (s *service) Quote(ctx context.Context, sessionID string, region string) (*QuoteView, error) {
	view, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	breakdown := ComputeShipping(s.calc, region, view.Lines)
	return &QuoteView{
		Subtotal: view.TotalPrice,
		Shipping: breakdown,
		Total:    view.TotalPrice.Add(breakdown.Total),
	}, nil
}

// Submit snapshots the cart into an order, decrements stock, queues the order
// alert, and clears the cart. Everything except the cart clear happens in one
// transaction; a failed clear leaves a stale snapshot that expires with the
// session rather than a broken order.
func (s *service) Submit(ctx context.Context, sessionID string, input SubmitInput) (*models.Order, error) {
	started := s.now()

	view, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(view.Lines) == 0 {
		s.metrics.IncSubmission("empty_cart")
		return nil, errors.New(errors.CodeValidation, "cart is empty")
	}

	breakdown := ComputeShipping(s.calc, input.Region, view.Lines)
	subtotal := view.TotalPrice
	total := subtotal.Add(breakdown.Total)

	lineItems := make([]models.OrderLineItem, 0, len(view.Lines))
	for _, line := range view.Lines {
		item := models.OrderLineItem{
			RefID:         line.Product.ID,
			Name:          line.Product.Name,
			SelectedColor: line.SelectedColor,
			UnitPrice:     line.Product.Price,
			Quantity:      line.Quantity,
			LineTotal:     line.LineTotal(),
		}
		if line.Product.ImageURL != "" {
			img := line.Product.ImageURL
			item.ImageURL = &img
		}
		lineItems = append(lineItems, item)
	}

	var order *models.Order
	submitErr := s.withFolioRetry(ctx, func(folio string) error {
		order = &models.Order{
			Folio:         folio,
			CustomerName:  input.CustomerName,
			Email:         input.Email,
			Phone:         input.Phone,
			Region:        input.Region,
			Address:       input.Address,
			Status:        enums.OrderStatusPending,
			Subtotal:      subtotal,
			ShippingCost:  breakdown.Total,
			Total:         total,
			FreeShipping:  breakdown.IsFree,
			EstimatedDays: breakdown.EstimatedDays,
			Notes:         input.Notes,
			LineItems:     lineItems,
		}

		return s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
			for _, line := range view.Lines {
				stock, err := s.catalog.AdjustStockByRef(ctx, tx, line.Product.ID, -line.Quantity)
				if err != nil {
					return err
				}
				if stock <= lowStockThreshold {
					if err := s.recordLowStock(ctx, tx, line, stock); err != nil {
						return err
					}
				}
			}

			if err := s.orders.WithTx(tx).Create(ctx, order); err != nil {
				return err
			}
			if err := notifications.RecordOrderReceived(ctx, tx, order); err != nil {
				return errors.Wrap(errors.CodeDependency, err, "recording order notification")
			}
			return s.emitter.Emit(ctx, tx, outbox.DomainEvent{
				EventType:     enums.EventOrderCreated,
				AggregateType: enums.AggregateOrder,
				AggregateID:   order.ID,
				Data: map[string]any{
					"folio":          order.Folio,
					"customer_name":  order.CustomerName,
					"region":         order.Region,
					"total":          order.Total,
					"estimated_days": order.EstimatedDays,
					"items":          len(order.LineItems),
				},
			})
		})
	})
	if submitErr != nil {
		s.metrics.IncSubmission("error")
		return nil, submitErr
	}

	if _, _, err := s.carts.Clear(ctx, sessionID); err != nil {
		// The order is committed; an unexpired cart snapshot is harmless.
		s.metrics.IncSubmission("cart_clear_failed")
	} else {
		s.metrics.IncSubmission("ok")
	}
	s.metrics.ObserveDuration(s.now().Sub(started))

	return order, nil
}

func (s *service) recordLowStock(ctx context.Context, tx *gorm.DB, line cart.Line, stock int) error {
	if err := notifications.RecordLowStock(ctx, tx, line.Product.Name, line.Product.ID, stock); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "recording low stock notification")
	}

	_, rowID, err := catalog.ParseRef(line.Product.ID)
	if err != nil {
		rowID = uuid.Nil
	}
	if rowID == uuid.Nil {
		return nil
	}
	return s.emitter.Emit(ctx, tx, outbox.DomainEvent{
		EventType:     enums.EventLowStock,
		AggregateType: enums.AggregateProduct,
		AggregateID:   rowID,
		Data: map[string]any{
			"ref":   line.Product.ID,
			"name":  line.Product.Name,
			"stock": stock,
		},
	})
}

// withFolioRetry re-runs fn with fresh folios until the unique constraint
// stops complaining.
func (s *service) withFolioRetry(ctx context.Context, fn func(folio string) error) error {
	var lastErr error
	for range folioAttempts {
		err := fn(newFolio(s.now()))
		if err == nil {
			return nil
		}
		if !db.IsUniqueViolation(err, "orders_folio_key") {
			return errors.Wrap(errors.CodeDependency, err, "persisting order")
		}
		lastErr = err
	}
	return errors.Wrap(errors.CodeDependency, lastErr, "exhausted folio attempts")
}
