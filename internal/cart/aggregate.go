package cart

import (
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/gorravana/boutique-backend/pkg/enums"
)

// Aggregate holds one session's cart lines.
//
// State lives behind an atomic pointer to an immutable snapshot; every
// mutation rebuilds the line slice and installs it with compare-and-swap,
// retrying on contention. Two near-simultaneous AddItem calls for the same
// line therefore produce quantity 3, not the lost-update quantity 2.
type Aggregate struct {
	state atomic.Pointer[snapshot]
}

type snapshot struct {
	lines []Line
}

// NewAggregate returns an empty cart.
func NewAggregate() *Aggregate {
	a := &Aggregate{}
	a.state.Store(&snapshot{})
	return a
}

// NewAggregateFrom returns a cart seeded with the given lines, e.g. restored
// from a session store.
func NewAggregateFrom(lines []Line) *Aggregate {
	a := &Aggregate{}
	a.state.Store(&snapshot{lines: cloneLines(lines)})
	return a
}

func cloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// mutate applies fn to a copy of the current lines and installs the result,
// retrying until the swap wins. fn must be pure over its input.
func (a *Aggregate) mutate(fn func(lines []Line) ([]Line, Event)) Event {
	for {
		current := a.state.Load()
		next, event := fn(cloneLines(current.lines))
		if a.state.CompareAndSwap(current, &snapshot{lines: next}) {
			return event
		}
	}
}

// AddItem adds one unit of the product in the given variant. An existing
// (id, variant) line is incremented and reported as "updated" with its new
// quantity; otherwise a new line is appended and reported as "added".
// Out-of-stock products are accepted; stock gating happens at checkout.
func (a *Aggregate) AddItem(product Product, selectedColor *string) Event {
	key := keyFor(product.ID, selectedColor)
	return a.mutate(func(lines []Line) ([]Line, Event) {
		for i := range lines {
			if lines[i].key() == key {
				lines[i].Quantity++
				return lines, Event{
					Kind:      enums.CartEventUpdated,
					ProductID: product.ID,
					Name:      product.Name,
					Quantity:  lines[i].Quantity,
				}
			}
		}
		lines = append(lines, Line{
			Product:       product,
			Quantity:      1,
			SelectedColor: selectedColor,
		})
		return lines, Event{
			Kind:      enums.CartEventAdded,
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  1,
		}
	})
}

// RemoveItem drops every line for the product id, across all variants. The
// "removed" event fires even when nothing matched; callers rely on the
// notification to confirm the action regardless.
func (a *Aggregate) RemoveItem(productID string) Event {
	return a.mutate(func(lines []Line) ([]Line, Event) {
		name := ""
		kept := lines[:0]
		for _, line := range lines {
			if line.Product.ID == productID {
				name = line.Product.Name
				continue
			}
			kept = append(kept, line)
		}
		return kept, Event{
			Kind:      enums.CartEventRemoved,
			ProductID: productID,
			Name:      name,
		}
	})
}

// UpdateQuantity sets the first line matching the product id to the given
// quantity. A quantity of zero or less removes the product instead (emitting
// the removal event); a successful set emits no event. A missing line is a
// silent no-op.
func (a *Aggregate) UpdateQuantity(productID string, quantity int) (Event, bool) {
	if quantity <= 0 {
		return a.RemoveItem(productID), true
	}
	a.mutate(func(lines []Line) ([]Line, Event) {
		for i := range lines {
			if lines[i].Product.ID == productID {
				lines[i].Quantity = quantity
				break
			}
		}
		return lines, Event{}
	})
	return Event{}, false
}

// Clear empties the cart.
func (a *Aggregate) Clear() Event {
	return a.mutate(func([]Line) ([]Line, Event) {
		return nil, Event{Kind: enums.CartEventCleared}
	})
}

// Lines returns a copy of the current lines in insertion order.
func (a *Aggregate) Lines() []Line {
	return cloneLines(a.state.Load().lines)
}

// TotalItems returns the sum of all line quantities.
func (a *Aggregate) TotalItems() int {
	total := 0
	for _, line := range a.state.Load().lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the subtotal: sum of price * quantity over all lines.
func (a *Aggregate) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range a.state.Load().lines {
		total = total.Add(line.LineTotal())
	}
	return total
}
