package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gorravana/boutique-backend/pkg/enums"
	"github.com/gorravana/boutique-backend/pkg/types"
)

// Order is a submitted checkout: a snapshot of the cart plus the shipping
// quote that was applied. Payment happens out of band (transfer / on delivery).
type Order struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Folio         string            `gorm:"column:folio;not null;uniqueIndex:orders_folio_key"`
	CustomerName  string            `gorm:"column:customer_name;not null"`
	Email         string            `gorm:"column:email;not null"`
	Phone         string            `gorm:"column:phone;not null"`
	Region        string            `gorm:"column:region;not null"`
	Address       types.Address     `gorm:"column:address;type:jsonb;serializer:json"`
	Status        enums.OrderStatus `gorm:"column:status;type:order_status;not null;default:'pending'"`
	Subtotal      decimal.Decimal   `gorm:"column:subtotal;type:numeric(10,2);not null"`
	ShippingCost  decimal.Decimal   `gorm:"column:shipping_cost;type:numeric(10,2);not null"`
	Total         decimal.Decimal   `gorm:"column:total;type:numeric(10,2);not null"`
	FreeShipping  bool              `gorm:"column:free_shipping;not null;default:false"`
	EstimatedDays string            `gorm:"column:estimated_days;not null"`
	Notes         *string           `gorm:"column:notes"`
	LineItems     []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime"`
	ConfirmedAt   *time.Time        `gorm:"column:confirmed_at"`
	ShippedAt     *time.Time        `gorm:"column:shipped_at"`
	DeliveredAt   *time.Time        `gorm:"column:delivered_at"`
	CancelledAt   *time.Time        `gorm:"column:cancelled_at"`
}
