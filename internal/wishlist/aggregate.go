package wishlist

import (
	"sync/atomic"

	"github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/pkg/enums"
)

// Aggregate tracks a session's saved-for-later products. Pure set semantics
// over product identity: no quantity, no totals. Entries reuse the cart's
// canonical product shape so any catalog source can be saved.
type Aggregate struct {
	state atomic.Pointer[snapshot]
}

type snapshot struct {
	entries []cart.Product
}

// Event mirrors the cart's mutation events so both aggregates feed the same
// notification sink.
type Event struct {
	Kind      enums.CartEventKind `json:"kind"`
	ProductID string              `json:"product_id"`
	Name      string              `json:"name,omitempty"`
}

func NewAggregate() *Aggregate {
	a := &Aggregate{}
	a.state.Store(&snapshot{})
	return a
}

func NewAggregateFrom(entries []cart.Product) *Aggregate {
	a := &Aggregate{}
	a.state.Store(&snapshot{entries: cloneEntries(entries)})
	return a
}

func cloneEntries(entries []cart.Product) []cart.Product {
	out := make([]cart.Product, len(entries))
	copy(out, entries)
	return out
}

// Contains reports membership by product id.
func (a *Aggregate) Contains(productID string) bool {
	for _, entry := range a.state.Load().entries {
		if entry.ID == productID {
			return true
		}
	}
	return false
}

// Toggle adds the product when absent and removes it when present. Two
// toggles in a row always restore the prior membership state.
func (a *Aggregate) Toggle(product cart.Product) Event {
	for {
		current := a.state.Load()
		entries := cloneEntries(current.entries)

		var event Event
		found := false
		for i, entry := range entries {
			if entry.ID == product.ID {
				entries = append(entries[:i], entries[i+1:]...)
				event = Event{Kind: enums.CartEventRemoved, ProductID: product.ID, Name: entry.Name}
				found = true
				break
			}
		}
		if !found {
			entries = append(entries, product)
			event = Event{Kind: enums.CartEventAdded, ProductID: product.ID, Name: product.Name}
		}

		if a.state.CompareAndSwap(current, &snapshot{entries: entries}) {
			return event
		}
	}
}

// Items returns a copy of the saved products in insertion order.
func (a *Aggregate) Items() []cart.Product {
	return cloneEntries(a.state.Load().entries)
}
