package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// BrandItem is a cap inside a brand sub-catalog. Unlike main-catalog products,
// brand items may carry their own shipping cost because they ship from the
// partner's warehouse rather than through the standard region rates.
type BrandItem struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	BrandID       uuid.UUID        `gorm:"column:brand_id;type:uuid;not null;index:brand_items_brand_id_idx"`
	Name          string           `gorm:"column:name;not null"`
	Price         decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"column:original_price;type:numeric(10,2)"`
	Stock         int              `gorm:"column:stock;not null;default:0"`
	Colors        pq.StringArray   `gorm:"column:colors;type:text[];not null"`
	ImageURL      *string          `gorm:"column:image_url"`
	ShippingCost  *decimal.Decimal `gorm:"column:shipping_cost;type:numeric(10,2)"`
	FreeShipping  bool             `gorm:"column:free_shipping;not null;default:false"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
