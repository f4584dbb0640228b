package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/pkg/db/models"
)

// Source tags which collection a catalog reference points into. The cart only
// ever sees the prefixed ref id, so caps, brand items, pins, and cases can
// never collide even when their row ids do.
type Source string

const (
	SourceCap   Source = "cap"
	SourceBrand Source = "brand"
	SourcePin   Source = "pin"
	SourceCase  Source = "case"
)

var validSources = map[Source]bool{
	SourceCap:   true,
	SourceBrand: true,
	SourcePin:   true,
	SourceCase:  true,
}

// BuildRef returns the opaque "<source>:<uuid>" reference for a catalog row.
func BuildRef(source Source, id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", source, id)
}

// ParseRef splits a reference back into its source and row id.
func ParseRef(ref string) (Source, uuid.UUID, error) {
	prefix, rawID, found := strings.Cut(ref, ":")
	if !found {
		return "", uuid.Nil, fmt.Errorf("malformed catalog ref %q", ref)
	}
	source := Source(prefix)
	if !validSources[source] {
		return "", uuid.Nil, fmt.Errorf("unknown catalog source %q", prefix)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid catalog ref id %q: %w", rawID, err)
	}
	return source, id, nil
}

// The normalizers below collapse the four catalog shapes into the cart's
// canonical product. Price is the already-resolved sale price; OriginalPrice
// survives only so the UI can show the discount strike-through.

func ProductToCartProduct(p models.Product) cart.Product {
	return cart.Product{
		ID:            BuildRef(SourceCap, p.ID),
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Stock:         p.Stock,
		ImageURL:      deref(p.ImageURL),
		FreeShipping:  p.FreeShipping,
	}
}

func BrandItemToCartProduct(item models.BrandItem) cart.Product {
	return cart.Product{
		ID:            BuildRef(SourceBrand, item.ID),
		Name:          item.Name,
		Price:         item.Price,
		OriginalPrice: item.OriginalPrice,
		Stock:         item.Stock,
		ImageURL:      deref(item.ImageURL),
		FreeShipping:  item.FreeShipping,
		ShippingCost:  item.ShippingCost,
	}
}

func PinToCartProduct(p models.Pin) cart.Product {
	return cart.Product{
		ID:            BuildRef(SourcePin, p.ID),
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Stock:         p.Stock,
		ImageURL:      deref(p.ImageURL),
	}
}

func CaseToCartProduct(c models.Case) cart.Product {
	return cart.Product{
		ID:            BuildRef(SourceCase, c.ID),
		Name:          c.Name,
		Price:         c.Price,
		OriginalPrice: c.OriginalPrice,
		Stock:         c.Stock,
		ImageURL:      deref(c.ImageURL),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
