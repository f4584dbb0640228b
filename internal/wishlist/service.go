package wishlist

import (
	"context"

	"github.com/gorravana/boutique-backend/internal/cart"
)

// View is the wishlist state handed back to the transport layer.
type View struct {
	Items []cart.Product `json:"items"`
	Count int            `json:"count"`
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) load(ctx context.Context, sessionID string) (*Aggregate, error) {
	entries, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewAggregateFrom(entries), nil
}

// Get returns the session's saved products.
func (s *Service) Get(ctx context.Context, sessionID string) (View, error) {
	agg, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, err
	}
	items := agg.Items()
	return View{Items: items, Count: len(items)}, nil
}

// Contains reports whether the product is saved in the session's wishlist.
func (s *Service) Contains(ctx context.Context, sessionID string, productID string) (bool, error) {
	agg, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return agg.Contains(productID), nil
}

// Toggle flips the product's membership and persists the result.
func (s *Service) Toggle(ctx context.Context, sessionID string, product cart.Product) (View, Event, error) {
	agg, err := s.load(ctx, sessionID)
	if err != nil {
		return View{}, Event{}, err
	}
	event := agg.Toggle(product)
	items := agg.Items()
	if err := s.store.Save(ctx, sessionID, items); err != nil {
		return View{}, Event{}, err
	}
	return View{Items: items, Count: len(items)}, event, nil
}
