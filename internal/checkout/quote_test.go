package checkout

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/internal/shipping"
	"github.com/gorravana/boutique-backend/pkg/config"
)

func newCalc() *shipping.Calculator {
	return shipping.NewCalculator(config.ShippingConfig{
		FreeThreshold:  "500",
		FallbackCost:   "99",
		FallbackWindow: "3-5 días",
	})
}

func line(id string, price int64, qty int, freeShipping bool, override *int64) cart.Line {
	l := cart.Line{
		Product: cart.Product{
			ID:           id,
			Name:         "Artículo " + id,
			Price:        decimal.NewFromInt(price),
			FreeShipping: freeShipping,
		},
		Quantity: qty,
	}
	if override != nil {
		cost := decimal.NewFromInt(*override)
		l.Product.ShippingCost = &cost
	}
	return l
}

func int64Ptr(v int64) *int64 { return &v }

func TestComputeShippingRegionRate(t *testing.T) {
	breakdown := ComputeShipping(newCalc(), "Ciudad de México", []cart.Line{
		line("cap:a", 300, 1, false, nil),
	})
	if !breakdown.BaseCost.Equal(decimal.NewFromInt(79)) {
		t.Fatalf("expected base 79, got %s", breakdown.BaseCost)
	}
	if !breakdown.Total.Equal(decimal.NewFromInt(79)) || breakdown.IsFree {
		t.Fatalf("unexpected breakdown %+v", breakdown)
	}
	if breakdown.EstimatedDays != "2-3 días" {
		t.Fatalf("expected region window, got %q", breakdown.EstimatedDays)
	}
}

func TestComputeShippingFreeAtThreshold(t *testing.T) {
	breakdown := ComputeShipping(newCalc(), "Ciudad de México", []cart.Line{
		line("cap:a", 250, 2, false, nil),
	})
	if !breakdown.BaseCost.IsZero() || !breakdown.IsFree {
		t.Fatalf("subtotal 500 must waive the base rate, got %+v", breakdown)
	}
}

func TestComputeShippingAllLinesFreeWaivesBase(t *testing.T) {
	breakdown := ComputeShipping(newCalc(), "Ciudad de México", []cart.Line{
		line("cap:a", 100, 1, true, nil),
		line("cap:b", 150, 1, true, nil),
	})
	if !breakdown.BaseCost.IsZero() {
		t.Fatalf("all-free cart must waive the base rate, got %s", breakdown.BaseCost)
	}
	if !breakdown.IsFree {
		t.Fatalf("expected free breakdown, got %+v", breakdown)
	}
}

func TestComputeShippingMixedFreeKeepsBase(t *testing.T) {
	breakdown := ComputeShipping(newCalc(), "Ciudad de México", []cart.Line{
		line("cap:a", 100, 1, true, nil),
		line("cap:b", 150, 1, false, nil),
	})
	if !breakdown.BaseCost.Equal(decimal.NewFromInt(79)) {
		t.Fatalf("one paid line keeps the base rate, got %s", breakdown.BaseCost)
	}
}

func TestComputeShippingOverridesChargedPerLine(t *testing.T) {
	breakdown := ComputeShipping(newCalc(), "Ciudad de México", []cart.Line{
		line("cap:a", 100, 1, false, nil),
		line("brand:b", 100, 3, false, int64Ptr(45)),
	})
	if !breakdown.OverrideCost.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("override charged once per line, not per unit, got %s", breakdown.OverrideCost)
	}
	if !breakdown.Total.Equal(decimal.NewFromInt(124)) {
		t.Fatalf("expected 79+45=124, got %s", breakdown.Total)
	}
}

func TestComputeShippingOverridesApplyEvenWhenBaseFree(t *testing.T) {
	breakdown := ComputeShipping(newCalc(), "Ciudad de México", []cart.Line{
		line("cap:a", 600, 1, false, nil),
		line("brand:b", 200, 1, false, int64Ptr(45)),
	})
	if !breakdown.BaseCost.IsZero() {
		t.Fatalf("subtotal over threshold waives base, got %s", breakdown.BaseCost)
	}
	if !breakdown.Total.Equal(decimal.NewFromInt(45)) || breakdown.IsFree {
		t.Fatalf("partner line still charges its override: %+v", breakdown)
	}
}

func TestComputeShippingUnknownRegionFallsBack(t *testing.T) {
	breakdown := ComputeShipping(newCalc(), "Texas", []cart.Line{
		line("cap:a", 100, 1, false, nil),
	})
	if !breakdown.BaseCost.Equal(decimal.NewFromInt(99)) || breakdown.EstimatedDays != "3-5 días" {
		t.Fatalf("unknown region must use the fallback rate, got %+v", breakdown)
	}
}
