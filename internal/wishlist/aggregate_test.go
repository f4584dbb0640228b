package wishlist

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/pkg/enums"
)

func pinProduct(id string) cart.Product {
	return cart.Product{
		ID:    "pin:" + id,
		Name:  "Pin " + id,
		Price: decimal.NewFromInt(45),
		Stock: 20,
	}
}

func TestToggleAddsWhenAbsent(t *testing.T) {
	agg := NewAggregate()
	product := pinProduct("a")

	event := agg.Toggle(product)
	if event.Kind != enums.CartEventAdded {
		t.Fatalf("expected added event, got %+v", event)
	}
	if !agg.Contains(product.ID) {
		t.Fatal("product must be a member after toggle")
	}
}

func TestToggleRemovesWhenPresent(t *testing.T) {
	agg := NewAggregate()
	product := pinProduct("a")
	agg.Toggle(product)

	event := agg.Toggle(product)
	if event.Kind != enums.CartEventRemoved {
		t.Fatalf("expected removed event, got %+v", event)
	}
	if agg.Contains(product.ID) {
		t.Fatal("product must be gone after second toggle")
	}
}

func TestDoubleToggleRestoresMembership(t *testing.T) {
	agg := NewAggregate()
	kept := pinProduct("kept")
	toggled := pinProduct("toggled")
	agg.Toggle(kept)

	before := agg.Items()
	agg.Toggle(toggled)
	agg.Toggle(toggled)
	after := agg.Items()

	if len(before) != len(after) {
		t.Fatalf("double toggle changed membership: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatalf("membership order changed: %q vs %q", before[i].ID, after[i].ID)
		}
	}
}

func TestSetSemanticsNoDuplicates(t *testing.T) {
	agg := NewAggregate()
	product := pinProduct("a")

	agg.Toggle(product)
	agg.Toggle(product)
	agg.Toggle(product)

	items := agg.Items()
	if len(items) != 1 {
		t.Fatalf("odd number of toggles must leave exactly one entry, got %d", len(items))
	}
}

func TestContainsOnEmpty(t *testing.T) {
	agg := NewAggregate()
	if agg.Contains("pin:missing") {
		t.Fatal("empty wishlist contains nothing")
	}
}
