package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput holds the validated payload for a new cap listing.
type CreateProductInput struct {
	CategoryID    *uuid.UUID
	Name          string
	Description   *string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         int
	Colors        []string
	ImageURL      *string
	GalleryURLs   []string
	FreeShipping  bool
	IsActive      bool
	IsFeatured    bool
}

// UpdateProductInput holds optional mutation values for a cap listing.
type UpdateProductInput struct {
	CategoryID    *uuid.UUID
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         *int
	Colors        *[]string
	ImageURL      *string
	GalleryURLs   *[]string
	FreeShipping  *bool
	IsActive      *bool
	IsFeatured    *bool
}

type CreateBrandInput struct {
	Name     string
	Slug     string
	LogoURL  *string
	IsActive bool
}

type UpdateBrandInput struct {
	Name     *string
	Slug     *string
	LogoURL  *string
	IsActive *bool
}

type CreateBrandItemInput struct {
	BrandID       uuid.UUID
	Name          string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         int
	Colors        []string
	ImageURL      *string
	ShippingCost  *decimal.Decimal
	FreeShipping  bool
	IsActive      bool
}

type UpdateBrandItemInput struct {
	Name          *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         *int
	Colors        *[]string
	ImageURL      *string
	ShippingCost  *decimal.Decimal
	FreeShipping  *bool
	IsActive      *bool
}

type CreatePinInput struct {
	Name          string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         int
	ImageURL      *string
	IsActive      bool
}

type UpdatePinInput struct {
	Name          *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         *int
	ImageURL      *string
	IsActive      *bool
}

type CreateCaseInput struct {
	Name          string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         int
	Capacity      *int
	ImageURL      *string
	IsActive      bool
}

type UpdateCaseInput struct {
	Name          *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         *int
	Capacity      *int
	ImageURL      *string
	IsActive      *bool
}

type CreateMenuCategoryInput struct {
	Name     string
	Slug     string
	Position int
	IsActive bool
}

type UpdateMenuCategoryInput struct {
	Name     *string
	Slug     *string
	Position *int
	IsActive *bool
}
