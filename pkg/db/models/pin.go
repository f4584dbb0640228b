package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pin is an enamel pin accessory listing.
type Pin struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Price         decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null"`
	OriginalPrice *decimal.Decimal `gorm:"column:original_price;type:numeric(10,2)"`
	Stock         int              `gorm:"column:stock;not null;default:0"`
	ImageURL      *string          `gorm:"column:image_url"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
