package shipping

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gorravana/boutique-backend/pkg/config"
)

// Quote is the delivery cost computed for one (region, subtotal) pair.
type Quote struct {
	Cost          decimal.Decimal `json:"cost"`
	EstimatedDays string          `json:"estimated_days"`
	IsFree        bool            `json:"is_free"`
}

type rateRow struct {
	cost          decimal.Decimal
	estimatedDays string
}

// Calculator maps (region, subtotal) to a shipping quote. Lookups never fail:
// unknown regions degrade to the fallback rate instead of blocking checkout.
type Calculator struct {
	rates          map[string]rateRow
	regions        []string
	freeThreshold  decimal.Decimal
	fallbackCost   decimal.Decimal
	fallbackWindow string
}

// NewCalculator builds a calculator from the built-in rate table, applying the
// configured threshold and fallback overrides. Config values that do not parse
// as decimals keep the built-in defaults.
func NewCalculator(cfg config.ShippingConfig) *Calculator {
	c := &Calculator{
		rates:          make(map[string]rateRow, len(defaultRates)),
		regions:        make([]string, 0, len(defaultRates)),
		freeThreshold:  decimal.NewFromInt(500),
		fallbackCost:   decimal.NewFromInt(99),
		fallbackWindow: "3-5 días",
	}

	for _, rate := range defaultRates {
		c.rates[rate.Region] = rateRow{
			cost:          decimal.NewFromInt(rate.Cost),
			estimatedDays: rate.EstimatedDays,
		}
		c.regions = append(c.regions, rate.Region)
	}
	sort.Strings(c.regions)

	if threshold, err := decimal.NewFromString(cfg.FreeThreshold); err == nil && !threshold.IsNegative() {
		c.freeThreshold = threshold
	}
	if cost, err := decimal.NewFromString(cfg.FallbackCost); err == nil && !cost.IsNegative() {
		c.fallbackCost = cost
	}
	if cfg.FallbackWindow != "" {
		c.fallbackWindow = cfg.FallbackWindow
	}

	return c
}

// Compute returns the quote for a region and order subtotal.
//
// Region names match the rate table by exact, case-sensitive equality; there
// is deliberately no normalization, so callers should offer Regions() values
// verbatim. Subtotals at or above the free threshold ship free (inclusive),
// keeping the region's delivery window for display.
func (c *Calculator) Compute(region string, subtotal decimal.Decimal) Quote {
	row, found := c.rates[region]

	window := c.fallbackWindow
	if found {
		window = row.estimatedDays
	}

	if subtotal.GreaterThanOrEqual(c.freeThreshold) {
		return Quote{
			Cost:          decimal.Zero,
			EstimatedDays: window,
			IsFree:        true,
		}
	}

	if !found {
		return Quote{
			Cost:          c.fallbackCost,
			EstimatedDays: c.fallbackWindow,
			IsFree:        false,
		}
	}

	return Quote{
		Cost:          row.cost,
		EstimatedDays: row.estimatedDays,
		IsFree:        false,
	}
}

// FreeThreshold returns the subtotal at which shipping becomes free.
func (c *Calculator) FreeThreshold() decimal.Decimal {
	return c.freeThreshold
}

// Regions returns all supported region names sorted lexicographically, for
// populating a region selector.
func (c *Calculator) Regions() []string {
	out := make([]string, len(c.regions))
	copy(out, c.regions)
	return out
}
