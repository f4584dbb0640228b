package catalog

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/pkg/db"
	"github.com/gorravana/boutique-backend/pkg/db/models"
	"github.com/gorravana/boutique-backend/pkg/errors"
)

// Service exposes catalog reads for the storefront and CRUD for the admin
// console. Every collection resolves into the cart's canonical product shape
// through ResolveRef.
type Service interface {
	// storefront reads
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListBrands(ctx context.Context, includeInactive bool) ([]models.Brand, error)
	GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error)
	ListPins(ctx context.Context, includeInactive bool) ([]models.Pin, error)
	ListCases(ctx context.Context, includeInactive bool) ([]models.Case, error)
	ListMenuCategories(ctx context.Context, includeInactive bool) ([]models.MenuCategory, error)

	// cart/checkout support
	ResolveRef(ctx context.Context, ref string) (cart.Product, error)
	AdjustStockByRef(ctx context.Context, tx *gorm.DB, ref string, delta int) (int, error)

	// admin CRUD
	CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CreateBrand(ctx context.Context, input CreateBrandInput) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, input UpdateBrandInput) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
	CreateBrandItem(ctx context.Context, input CreateBrandItemInput) (*models.BrandItem, error)
	UpdateBrandItem(ctx context.Context, id uuid.UUID, input UpdateBrandItemInput) (*models.BrandItem, error)
	DeleteBrandItem(ctx context.Context, id uuid.UUID) error
	CreatePin(ctx context.Context, input CreatePinInput) (*models.Pin, error)
	UpdatePin(ctx context.Context, id uuid.UUID, input UpdatePinInput) (*models.Pin, error)
	DeletePin(ctx context.Context, id uuid.UUID) error
	CreateCase(ctx context.Context, input CreateCaseInput) (*models.Case, error)
	UpdateCase(ctx context.Context, id uuid.UUID, input UpdateCaseInput) (*models.Case, error)
	DeleteCase(ctx context.Context, id uuid.UUID) error
	CreateMenuCategory(ctx context.Context, input CreateMenuCategoryInput) (*models.MenuCategory, error)
	UpdateMenuCategory(ctx context.Context, id uuid.UUID, input UpdateMenuCategoryInput) (*models.MenuCategory, error)
	DeleteMenuCategory(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService constructs the catalog service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing products")
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindProduct(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "product")
	}
	return product, nil
}

func (s *service) ListBrands(ctx context.Context, includeInactive bool) ([]models.Brand, error) {
	brands, err := s.repo.ListBrands(ctx, includeInactive)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing brands")
	}
	return brands, nil
}

func (s *service) GetBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	brand, err := s.repo.FindBrandBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOrDependency(err, "brand")
	}
	return brand, nil
}

func (s *service) ListPins(ctx context.Context, includeInactive bool) ([]models.Pin, error) {
	pins, err := s.repo.ListPins(ctx, includeInactive)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing pins")
	}
	return pins, nil
}

func (s *service) ListCases(ctx context.Context, includeInactive bool) ([]models.Case, error) {
	cases, err := s.repo.ListCases(ctx, includeInactive)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing cases")
	}
	return cases, nil
}

func (s *service) ListMenuCategories(ctx context.Context, includeInactive bool) ([]models.MenuCategory, error) {
	categories, err := s.repo.ListMenuCategories(ctx, includeInactive)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing menu categories")
	}
	return categories, nil
}

// ResolveRef loads the referenced row server-side and normalizes it into the
// cart's product shape. The client only ever sends the opaque ref; prices and
// stock never come from the request body.
func (s *service) ResolveRef(ctx context.Context, ref string) (cart.Product, error) {
	source, id, err := ParseRef(ref)
	if err != nil {
		return cart.Product{}, errors.New(errors.CodeValidation, err.Error())
	}

	switch source {
	case SourceCap:
		product, err := s.repo.FindProduct(ctx, id)
		if err != nil {
			return cart.Product{}, notFoundOrDependency(err, "product")
		}
		return ProductToCartProduct(*product), nil
	case SourceBrand:
		item, err := s.repo.FindBrandItem(ctx, id)
		if err != nil {
			return cart.Product{}, notFoundOrDependency(err, "brand item")
		}
		return BrandItemToCartProduct(*item), nil
	case SourcePin:
		pin, err := s.repo.FindPin(ctx, id)
		if err != nil {
			return cart.Product{}, notFoundOrDependency(err, "pin")
		}
		return PinToCartProduct(*pin), nil
	case SourceCase:
		c, err := s.repo.FindCase(ctx, id)
		if err != nil {
			return cart.Product{}, notFoundOrDependency(err, "case")
		}
		return CaseToCartProduct(*c), nil
	}
	return cart.Product{}, errors.New(errors.CodeValidation, fmt.Sprintf("unknown catalog source %q", source))
}

// AdjustStockByRef applies a stock delta inside the caller's transaction and
// returns the resulting stock. A delta that would take stock below zero
// returns a state conflict.
func (s *service) AdjustStockByRef(ctx context.Context, tx *gorm.DB, ref string, delta int) (int, error) {
	source, id, err := ParseRef(ref)
	if err != nil {
		return 0, errors.New(errors.CodeValidation, err.Error())
	}

	repo := s.repo.WithTx(tx)
	var (
		stock   int
		applied bool
	)
	switch source {
	case SourceCap:
		stock, applied, err = repo.AdjustProductStock(ctx, id, delta)
	case SourceBrand:
		stock, applied, err = repo.AdjustBrandItemStock(ctx, id, delta)
	case SourcePin:
		stock, applied, err = repo.AdjustPinStock(ctx, id, delta)
	case SourceCase:
		stock, applied, err = repo.AdjustCaseStock(ctx, id, delta)
	}
	if err != nil {
		return 0, errors.Wrap(errors.CodeDependency, err, "adjusting stock")
	}
	if !applied {
		return 0, errors.New(errors.CodeStateConflict, fmt.Sprintf("insufficient stock for %s", ref))
	}
	return stock, nil
}

// --- admin CRUD ---

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if err := validateListing(input.Name, input.Price, input.Stock); err != nil {
		return nil, err
	}
	if err := validateDiscount(input.OriginalPrice, input.Price); err != nil {
		return nil, err
	}

	product := &models.Product{
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Stock:         input.Stock,
		Colors:        pq.StringArray(input.Colors),
		ImageURL:      input.ImageURL,
		GalleryURLs:   pq.StringArray(input.GalleryURLs),
		FreeShipping:  input.FreeShipping,
		IsActive:      input.IsActive,
		IsFeatured:    input.IsFeatured,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, writeError(err, "creating product")
	}
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.FindProduct(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "product")
	}

	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = input.OriginalPrice
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Colors != nil {
		product.Colors = pq.StringArray(*input.Colors)
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}
	if input.GalleryURLs != nil {
		product.GalleryURLs = pq.StringArray(*input.GalleryURLs)
	}
	if input.FreeShipping != nil {
		product.FreeShipping = *input.FreeShipping
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := validateListing(product.Name, product.Price, product.Stock); err != nil {
		return nil, err
	}
	if err := validateDiscount(product.OriginalPrice, product.Price); err != nil {
		return nil, err
	}

	product.Category = nil
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, writeError(err, "updating product")
	}
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return writeError(err, "deleting product")
	}
	return nil
}

func (s *service) CreateBrand(ctx context.Context, input CreateBrandInput) (*models.Brand, error) {
	if input.Name == "" || input.Slug == "" {
		return nil, errors.New(errors.CodeValidation, "brand name and slug are required")
	}

	brand := &models.Brand{
		Name:     input.Name,
		Slug:     input.Slug,
		LogoURL:  input.LogoURL,
		IsActive: input.IsActive,
	}
	if err := s.repo.CreateBrand(ctx, brand); err != nil {
		return nil, writeError(err, "creating brand")
	}
	return brand, nil
}

func (s *service) UpdateBrand(ctx context.Context, id uuid.UUID, input UpdateBrandInput) (*models.Brand, error) {
	brand, err := s.repo.FindBrand(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "brand")
	}

	if input.Name != nil {
		brand.Name = *input.Name
	}
	if input.Slug != nil {
		brand.Slug = *input.Slug
	}
	if input.LogoURL != nil {
		brand.LogoURL = input.LogoURL
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}
	if brand.Name == "" || brand.Slug == "" {
		return nil, errors.New(errors.CodeValidation, "brand name and slug are required")
	}

	brand.Items = nil
	if err := s.repo.UpdateBrand(ctx, brand); err != nil {
		return nil, writeError(err, "updating brand")
	}
	return brand, nil
}

func (s *service) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteBrand(ctx, id); err != nil {
		return writeError(err, "deleting brand")
	}
	return nil
}

func (s *service) CreateBrandItem(ctx context.Context, input CreateBrandItemInput) (*models.BrandItem, error) {
	if err := validateListing(input.Name, input.Price, input.Stock); err != nil {
		return nil, err
	}
	if input.ShippingCost != nil && input.ShippingCost.IsNegative() {
		return nil, errors.New(errors.CodeValidation, "shipping cost cannot be negative")
	}
	if _, err := s.repo.FindBrand(ctx, input.BrandID); err != nil {
		return nil, notFoundOrDependency(err, "brand")
	}

	item := &models.BrandItem{
		BrandID:       input.BrandID,
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Stock:         input.Stock,
		Colors:        pq.StringArray(input.Colors),
		ImageURL:      input.ImageURL,
		ShippingCost:  input.ShippingCost,
		FreeShipping:  input.FreeShipping,
		IsActive:      input.IsActive,
	}
	if err := s.repo.CreateBrandItem(ctx, item); err != nil {
		return nil, writeError(err, "creating brand item")
	}
	return item, nil
}

func (s *service) UpdateBrandItem(ctx context.Context, id uuid.UUID, input UpdateBrandItemInput) (*models.BrandItem, error) {
	item, err := s.repo.FindBrandItem(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "brand item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		item.OriginalPrice = input.OriginalPrice
	}
	if input.Stock != nil {
		item.Stock = *input.Stock
	}
	if input.Colors != nil {
		item.Colors = pq.StringArray(*input.Colors)
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}
	if input.ShippingCost != nil {
		item.ShippingCost = input.ShippingCost
	}
	if input.FreeShipping != nil {
		item.FreeShipping = *input.FreeShipping
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := validateListing(item.Name, item.Price, item.Stock); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateBrandItem(ctx, item); err != nil {
		return nil, writeError(err, "updating brand item")
	}
	return item, nil
}

func (s *service) DeleteBrandItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteBrandItem(ctx, id); err != nil {
		return writeError(err, "deleting brand item")
	}
	return nil
}

func (s *service) CreatePin(ctx context.Context, input CreatePinInput) (*models.Pin, error) {
	if err := validateListing(input.Name, input.Price, input.Stock); err != nil {
		return nil, err
	}
	pin := &models.Pin{
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Stock:         input.Stock,
		ImageURL:      input.ImageURL,
		IsActive:      input.IsActive,
	}
	if err := s.repo.CreatePin(ctx, pin); err != nil {
		return nil, writeError(err, "creating pin")
	}
	return pin, nil
}

func (s *service) UpdatePin(ctx context.Context, id uuid.UUID, input UpdatePinInput) (*models.Pin, error) {
	pin, err := s.repo.FindPin(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "pin")
	}

	if input.Name != nil {
		pin.Name = *input.Name
	}
	if input.Price != nil {
		pin.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		pin.OriginalPrice = input.OriginalPrice
	}
	if input.Stock != nil {
		pin.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		pin.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		pin.IsActive = *input.IsActive
	}

	if err := validateListing(pin.Name, pin.Price, pin.Stock); err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePin(ctx, pin); err != nil {
		return nil, writeError(err, "updating pin")
	}
	return pin, nil
}

func (s *service) DeletePin(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeletePin(ctx, id); err != nil {
		return writeError(err, "deleting pin")
	}
	return nil
}

func (s *service) CreateCase(ctx context.Context, input CreateCaseInput) (*models.Case, error) {
	if err := validateListing(input.Name, input.Price, input.Stock); err != nil {
		return nil, err
	}
	c := &models.Case{
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Stock:         input.Stock,
		Capacity:      input.Capacity,
		ImageURL:      input.ImageURL,
		IsActive:      input.IsActive,
	}
	if err := s.repo.CreateCase(ctx, c); err != nil {
		return nil, writeError(err, "creating case")
	}
	return c, nil
}

func (s *service) UpdateCase(ctx context.Context, id uuid.UUID, input UpdateCaseInput) (*models.Case, error) {
	c, err := s.repo.FindCase(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "case")
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Price != nil {
		c.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		c.OriginalPrice = input.OriginalPrice
	}
	if input.Stock != nil {
		c.Stock = *input.Stock
	}
	if input.Capacity != nil {
		c.Capacity = input.Capacity
	}
	if input.ImageURL != nil {
		c.ImageURL = input.ImageURL
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}

	if err := validateListing(c.Name, c.Price, c.Stock); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCase(ctx, c); err != nil {
		return nil, writeError(err, "updating case")
	}
	return c, nil
}

func (s *service) DeleteCase(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCase(ctx, id); err != nil {
		return writeError(err, "deleting case")
	}
	return nil
}

func (s *service) CreateMenuCategory(ctx context.Context, input CreateMenuCategoryInput) (*models.MenuCategory, error) {
	if input.Name == "" || input.Slug == "" {
		return nil, errors.New(errors.CodeValidation, "category name and slug are required")
	}
	category := &models.MenuCategory{
		Name:     input.Name,
		Slug:     input.Slug,
		Position: input.Position,
		IsActive: input.IsActive,
	}
	if err := s.repo.CreateMenuCategory(ctx, category); err != nil {
		return nil, writeError(err, "creating menu category")
	}
	return category, nil
}

func (s *service) UpdateMenuCategory(ctx context.Context, id uuid.UUID, input UpdateMenuCategoryInput) (*models.MenuCategory, error) {
	category, err := s.repo.FindMenuCategory(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "menu category")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Slug != nil {
		category.Slug = *input.Slug
	}
	if input.Position != nil {
		category.Position = *input.Position
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if category.Name == "" || category.Slug == "" {
		return nil, errors.New(errors.CodeValidation, "category name and slug are required")
	}

	if err := s.repo.UpdateMenuCategory(ctx, category); err != nil {
		return nil, writeError(err, "updating menu category")
	}
	return category, nil
}

func (s *service) DeleteMenuCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteMenuCategory(ctx, id); err != nil {
		return writeError(err, "deleting menu category")
	}
	return nil
}

// --- helpers ---

func validateListing(name string, price decimal.Decimal, stock int) error {
	if name == "" {
		return errors.New(errors.CodeValidation, "name is required")
	}
	if price.IsNegative() {
		return errors.New(errors.CodeValidation, "price cannot be negative")
	}
	if stock < 0 {
		return errors.New(errors.CodeValidation, "stock cannot be negative")
	}
	return nil
}

func validateDiscount(originalPrice *decimal.Decimal, price decimal.Decimal) error {
	if originalPrice != nil && originalPrice.LessThan(price) {
		return errors.New(errors.CodeValidation, "original price must be at least the sale price")
	}
	return nil
}

func notFoundOrDependency(err error, entity string) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New(errors.CodeNotFound, entity+" not found")
	}
	return errors.Wrap(errors.CodeDependency, err, "loading "+entity)
}

func writeError(err error, action string) error {
	if db.IsUniqueViolation(err, "") {
		return errors.New(errors.CodeConflict, "a record with that value already exists")
	}
	return errors.Wrap(errors.CodeDependency, err, action)
}
