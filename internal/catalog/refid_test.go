package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gorravana/boutique-backend/pkg/db/models"
)

func TestBuildAndParseRef(t *testing.T) {
	id := uuid.New()
	for _, source := range []Source{SourceCap, SourceBrand, SourcePin, SourceCase} {
		ref := BuildRef(source, id)
		gotSource, gotID, err := ParseRef(ref)
		if err != nil {
			t.Fatalf("parse %q: %v", ref, err)
		}
		if gotSource != source || gotID != id {
			t.Fatalf("roundtrip mismatch: %s/%s vs %s/%s", gotSource, gotID, source, id)
		}
	}
}

func TestParseRefRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"noseparator",
		"cap:",
		"cap:not-a-uuid",
		"sticker:" + uuid.NewString(),
	}
	for _, ref := range cases {
		if _, _, err := ParseRef(ref); err == nil {
			t.Fatalf("expected %q to fail parsing", ref)
		}
	}
}

func TestBrandItemNormalizationKeepsShippingOverrides(t *testing.T) {
	cost := decimal.NewFromInt(45)
	item := models.BrandItem{
		ID:           uuid.New(),
		Name:         "Gorra NE 59fifty",
		Price:        decimal.NewFromInt(650),
		Stock:        4,
		ShippingCost: &cost,
		FreeShipping: false,
	}

	product := BrandItemToCartProduct(item)
	if product.ID != "brand:"+item.ID.String() {
		t.Fatalf("unexpected ref %q", product.ID)
	}
	if product.ShippingCost == nil || !product.ShippingCost.Equal(cost) {
		t.Fatalf("shipping override lost: %+v", product.ShippingCost)
	}
}

func TestProductNormalizationPrefixesSource(t *testing.T) {
	img := "https://cdn.gorravana.mx/caps/a.jpg"
	row := models.Product{
		ID:           uuid.New(),
		Name:         "Gorra Vana Classic",
		Price:        decimal.NewFromInt(350),
		Stock:        12,
		ImageURL:     &img,
		FreeShipping: true,
	}

	product := ProductToCartProduct(row)
	if product.ID != "cap:"+row.ID.String() {
		t.Fatalf("unexpected ref %q", product.ID)
	}
	if !product.FreeShipping {
		t.Fatal("free shipping flag lost")
	}
	if product.ImageURL != img {
		t.Fatalf("image url lost: %q", product.ImageURL)
	}
	if product.ShippingCost != nil {
		t.Fatal("main catalog products have no shipping override")
	}
}
