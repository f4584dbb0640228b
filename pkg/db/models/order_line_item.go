package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineItem snapshots one cart line at submission time. RefID is the
// opaque catalog reference ("cap:<uuid>", "brand:<uuid>", ...) so the line
// survives later catalog edits.
type OrderLineItem struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index:order_line_items_order_id_idx"`
	RefID         string          `gorm:"column:ref_id;not null"`
	Name          string          `gorm:"column:name;not null"`
	SelectedColor *string         `gorm:"column:selected_color"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	Quantity      int             `gorm:"column:quantity;not null"`
	LineTotal     decimal.Decimal `gorm:"column:line_total;type:numeric(10,2);not null"`
	ImageURL      *string         `gorm:"column:image_url"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}
