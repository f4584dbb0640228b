package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is a cap listing in the boutique's main catalog.
type Product struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	CategoryID    *uuid.UUID       `gorm:"column:category_id;type:uuid"`
	Name          string           `gorm:"column:name;not null"`
	Description   *string          `gorm:"column:description"`
	Price         decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"column:original_price;type:numeric(10,2)"`
	Stock         int              `gorm:"column:stock;not null;default:0"`
	Colors        pq.StringArray   `gorm:"column:colors;type:text[];not null"`
	ImageURL      *string          `gorm:"column:image_url"`
	GalleryURLs   pq.StringArray   `gorm:"column:gallery_urls;type:text[];not null"`
	FreeShipping  bool             `gorm:"column:free_shipping;not null;default:false"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	IsFeatured    bool             `gorm:"column:is_featured;not null;default:false"`
	Category      *MenuCategory    `gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
