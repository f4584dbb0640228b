package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gorravana/boutique-backend/pkg/db/models"
	"github.com/gorravana/boutique-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	err = conn.AutoMigrate(
		&models.MenuCategory{},
		&models.Product{},
		&models.Brand{},
		&models.BrandItem{},
		&models.Pin{},
		&models.Case{},
	)
	if err != nil {
		t.Fatalf("migrating: %v", err)
	}
	svc, err := NewService(NewRepository(conn))
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc, conn
}

func TestProductCRUDLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:     "Gorra Vana Classic",
		Price:    decimal.NewFromInt(350),
		Stock:    12,
		Colors:   []string{"Negro", "Rojo"},
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPrice := decimal.NewFromInt(299)
	updated, err := svc.UpdateProduct(ctx, created.ID, UpdateProductInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Price.Equal(newPrice) {
		t.Fatalf("price not updated: %s", updated.Price)
	}
	if updated.Name != "Gorra Vana Classic" {
		t.Fatalf("untouched field changed: %q", updated.Name)
	}

	if err := svc.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetProduct(ctx, created.ID); errors.As(err) == nil || errors.As(err).Code() != errors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{Price: decimal.NewFromInt(100)})
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeValidation {
		t.Fatalf("missing name must fail validation, got %v", err)
	}

	lowOriginal := decimal.NewFromInt(100)
	_, err = svc.CreateProduct(ctx, CreateProductInput{
		Name:          "Gorra",
		Price:         decimal.NewFromInt(200),
		OriginalPrice: &lowOriginal,
	})
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeValidation {
		t.Fatalf("original price below sale price must fail, got %v", err)
	}
}

func TestListProductsFiltersInactive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Activa", Price: decimal.NewFromInt(100), IsActive: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Oculta", Price: decimal.NewFromInt(100), IsActive: false}); err != nil {
		t.Fatalf("create: %v", err)
	}

	visible, err := svc.ListProducts(ctx, ProductFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(visible) != 1 || visible[0].Name != "Activa" {
		t.Fatalf("storefront list must hide inactive products, got %+v", visible)
	}

	all, err := svc.ListProducts(ctx, ProductFilter{IncludeInactive: true})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin list must include inactive products, got %d", len(all))
	}
}

func TestBrandSlugConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateBrand(ctx, CreateBrandInput{Name: "New Era", Slug: "new-era", IsActive: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.CreateBrand(ctx, CreateBrandInput{Name: "New Era MX", Slug: "new-era", IsActive: true})
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeConflict {
		t.Fatalf("duplicate slug must conflict, got %v", err)
	}
}

func TestResolveRefAcrossSources(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Gorra", Price: decimal.NewFromInt(350), Stock: 5, IsActive: true})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	brand, err := svc.CreateBrand(ctx, CreateBrandInput{Name: "New Era", Slug: "new-era", IsActive: true})
	if err != nil {
		t.Fatalf("create brand: %v", err)
	}
	override := decimal.NewFromInt(45)
	item, err := svc.CreateBrandItem(ctx, CreateBrandItemInput{
		BrandID:      brand.ID,
		Name:         "59fifty",
		Price:        decimal.NewFromInt(650),
		Stock:        3,
		ShippingCost: &override,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("create brand item: %v", err)
	}

	resolved, err := svc.ResolveRef(ctx, BuildRef(SourceCap, product.ID))
	if err != nil {
		t.Fatalf("resolve cap: %v", err)
	}
	if resolved.Name != "Gorra" || !resolved.Price.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("unexpected cap resolution %+v", resolved)
	}

	resolvedItem, err := svc.ResolveRef(ctx, BuildRef(SourceBrand, item.ID))
	if err != nil {
		t.Fatalf("resolve brand item: %v", err)
	}
	if resolvedItem.ShippingCost == nil || !resolvedItem.ShippingCost.Equal(override) {
		t.Fatalf("shipping override lost in resolution: %+v", resolvedItem)
	}

	_, err = svc.ResolveRef(ctx, "cap:"+product.ID.String()+"x")
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeValidation {
		t.Fatalf("malformed ref must fail validation, got %v", err)
	}
}

func TestAdjustStockByRefGuardsNegative(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Gorra", Price: decimal.NewFromInt(350), Stock: 2, IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ref := BuildRef(SourceCap, product.ID)

	stock, err := svc.AdjustStockByRef(ctx, conn, ref, -2)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if stock != 0 {
		t.Fatalf("expected stock 0, got %d", stock)
	}

	_, err = svc.AdjustStockByRef(ctx, conn, ref, -1)
	if typed := errors.As(err); typed == nil || typed.Code() != errors.CodeStateConflict {
		t.Fatalf("oversell must be a state conflict, got %v", err)
	}
}

func TestMenuCategoriesOrderedByPosition(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, c := range []CreateMenuCategoryInput{
		{Name: "Estuches", Slug: "estuches", Position: 2, IsActive: true},
		{Name: "Gorras", Slug: "gorras", Position: 0, IsActive: true},
		{Name: "Pines", Slug: "pines", Position: 1, IsActive: true},
	} {
		if _, err := svc.CreateMenuCategory(ctx, c); err != nil {
			t.Fatalf("create category: %v", err)
		}
	}

	categories, err := svc.ListMenuCategories(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Gorras", "Pines", "Estuches"}
	for i, name := range want {
		if categories[i].Name != name {
			t.Fatalf("position order broken: got %q at %d, want %q", categories[i].Name, i, name)
		}
	}
}
