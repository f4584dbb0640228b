package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Case is a cap carrying case (estuche) listing.
type Case struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Price         decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"column:original_price;type:numeric(10,2)"`
	Stock         int              `gorm:"column:stock;not null;default:0"`
	Capacity      *int             `gorm:"column:capacity"`
	ImageURL      *string          `gorm:"column:image_url"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
