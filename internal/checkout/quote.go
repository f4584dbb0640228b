package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/internal/shipping"
)

// ShippingBreakdown explains how the final delivery cost was assembled from
// the region rate and per-line overrides.
type ShippingBreakdown struct {
	BaseCost      decimal.Decimal `json:"base_cost"`
	OverrideCost  decimal.Decimal `json:"override_cost"`
	Total         decimal.Decimal `json:"total"`
	EstimatedDays string          `json:"estimated_days"`
	IsFree        bool            `json:"is_free"`
}

// ComputeShipping combines the region quote with the cart's per-line shipping
// attributes:
//
//   - the region rate applies once per order, and is waived when the subtotal
//     clears the free threshold or when every line is flagged free-shipping;
//   - brand items that ship from a partner warehouse carry their own
//     ShippingCost, charged once per line on top of the base rate.
func ComputeShipping(calc *shipping.Calculator, region string, lines []cart.Line) ShippingBreakdown {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	quote := calc.Compute(region, subtotal)

	base := quote.Cost
	allFree := len(lines) > 0
	for _, line := range lines {
		if !line.FreeShipping {
			allFree = false
			break
		}
	}
	if allFree {
		base = decimal.Zero
	}

	overrides := decimal.Zero
	for _, line := range lines {
		if line.ShippingCost != nil {
			overrides = overrides.Add(*line.ShippingCost)
		}
	}

	total := base.Add(overrides)
	return ShippingBreakdown{
		BaseCost:      base,
		OverrideCost:  overrides,
		Total:         total,
		EstimatedDays: quote.EstimatedDays,
		IsFree:        total.IsZero(),
	}
}
