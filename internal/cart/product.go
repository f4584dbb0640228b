package cart

import (
	"github.com/shopspring/decimal"
)

// Product is the canonical item shape the cart operates on. Catalog sources
// (caps, brand items, pins, cases) are normalized into this shape before they
// reach the aggregate; the ID carries a source prefix ("cap:<uuid>",
// "brand:<uuid>", ...) so distinct catalogs can never collide.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         int              `json:"stock"`
	ImageURL      string           `json:"image_url,omitempty"`
	FreeShipping  bool             `json:"free_shipping,omitempty"`
	ShippingCost  *decimal.Decimal `json:"shipping_cost,omitempty"`
}

// Line is one cart entry: a distinct (product id, variant) pair.
type Line struct {
	Product
	Quantity      int     `json:"quantity"`
	SelectedColor *string `json:"selected_color,omitempty"`
}

// LineTotal returns Price * Quantity for the line.
func (l Line) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// lineKey identifies a line inside the cart. Absence of a variant is part of
// the identity: (id, nil) and (id, "Negro") are different lines.
type lineKey struct {
	productID string
	color     string
	hasColor  bool
}

func keyFor(productID string, color *string) lineKey {
	key := lineKey{productID: productID}
	if color != nil {
		key.color = *color
		key.hasColor = true
	}
	return key
}

func (l Line) key() lineKey {
	return keyFor(l.Product.ID, l.SelectedColor)
}
