package cart

import (
	"context"

	"github.com/shopspring/decimal"
)

// View is the cart state returned to the transport layer after a read or
// mutation, with derived totals already computed.
type View struct {
	Lines      []Line          `json:"lines"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Service applies cart mutations for a session: load the snapshot, mutate
// through the aggregate, persist the result. Each session owns its cart
// exclusively, so load-mutate-save per request is safe; in-process races on
// the same aggregate are handled by the aggregate's compare-and-swap loop.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) load(ctx context.Context, sessionID string) (*Aggregate, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewAggregateFrom(lines), nil
}

func (s *Service) persist(ctx context.Context, sessionID string, agg *Aggregate) (View, error) {
	lines := agg.Lines()
	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		return View{}, err
	}
	return View{
		Lines:      lines,
		TotalItems: agg.TotalItems(),
		TotalPrice: agg.TotalPrice(),
	}, nil
}

// Get returns the session's current cart.
func (s *Service) Get(ctx context.Context, sessionID string) (View, error) {
	agg, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, err
	}
	return View{
		Lines:      agg.Lines(),
		TotalItems: agg.TotalItems(),
		TotalPrice: agg.TotalPrice(),
	}, nil
}

// AddItem adds one unit of the product and persists the cart.
func (s *Service) AddItem(ctx context.Context, sessionID string, product Product, selectedColor *string) (View, Event, error) {
	agg, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, Event{}, err
	}
	event := agg.AddItem(product, selectedColor)
	view, err := s.persist(ctx, sessionID, agg)
	return view, event, err
}

// RemoveItem removes all variants of the product and persists the cart.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID string) (View, Event, error) {
	agg, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, Event{}, err
	}
	event := agg.RemoveItem(productID)
	view, err := s.persist(ctx, sessionID, agg)
	return view, event, err
}

// UpdateQuantity sets a line's quantity (or removes it at qty <= 0) and
// persists the cart. The returned bool reports whether an event was emitted.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID string, quantity int) (View, Event, bool, error) {
	agg, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, Event{}, false, err
	}
	event, emitted := agg.UpdateQuantity(productID, quantity)
	view, err := s.persist(ctx, sessionID, agg)
	return view, event, emitted, err
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) (View, Event, error) {
	agg, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, Event{}, err
	}
	event := agg.Clear()
	view, err := s.persist(ctx, sessionID, agg)
	return view, event, err
}
