package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand groups a marketplace sub-catalog of caps sold on behalf of a partner label.
type Brand struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	Name      string      `gorm:"column:name;not null;uniqueIndex:brands_name_key"`
	Slug      string      `gorm:"column:slug;not null;uniqueIndex:brands_slug_key"`
	LogoURL   *string     `gorm:"column:logo_url"`
	IsActive  bool        `gorm:"column:is_active;not null;default:true"`
	Items     []BrandItem `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}
