package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Every test suite bootstraps its schema through AutoMigrate against the
// sqlite driver, so the model tags must only carry DDL both dialects accept.
func TestAutoMigrateAllModelsOnSqlite(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}

	err = conn.AutoMigrate(
		&MenuCategory{},
		&Product{},
		&Brand{},
		&BrandItem{},
		&Pin{},
		&Case{},
		&Order{},
		&OrderLineItem{},
		&Notification{},
		&OutboxEvent{},
		&AdminUser{},
	)
	if err != nil {
		t.Fatalf("migrating: %v", err)
	}

	// Hooks must cover what the Postgres column defaults would have filled in.
	product := &Product{
		Name:  "Gorra Vana Classic",
		Price: decimal.NewFromInt(350),
	}
	if err := conn.Create(product).Error; err != nil {
		t.Fatalf("creating product: %v", err)
	}
	if product.ID == uuid.Nil {
		t.Fatal("hook must assign a primary key")
	}
	if product.Colors == nil || product.GalleryURLs == nil {
		t.Fatal("hook must coerce nil arrays to empty")
	}

	var loaded Product
	if err := conn.First(&loaded, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("reloading product: %v", err)
	}
	if len(loaded.Colors) != 0 {
		t.Fatalf("expected empty colors, got %v", loaded.Colors)
	}
}
