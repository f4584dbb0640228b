package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// The sqlite dev driver cannot evaluate the Postgres column defaults declared
// by the goose migrations (gen_random_uuid(), ARRAY[]::text[]), so primary
// keys are assigned client-side when missing and nil arrays are coerced to
// empty before they reach a NOT NULL column.

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func ensureArray(a *pq.StringArray) {
	if *a == nil {
		*a = pq.StringArray{}
	}
}

func (m *MenuCategory) BeforeCreate(*gorm.DB) error  { ensureID(&m.ID); return nil }
func (m *Product) BeforeCreate(*gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *Brand) BeforeCreate(*gorm.DB) error         { ensureID(&m.ID); return nil }
func (m *BrandItem) BeforeCreate(*gorm.DB) error     { ensureID(&m.ID); return nil }
func (m *Pin) BeforeCreate(*gorm.DB) error           { ensureID(&m.ID); return nil }
func (m *Case) BeforeCreate(*gorm.DB) error          { ensureID(&m.ID); return nil }
func (m *Order) BeforeCreate(*gorm.DB) error         { ensureID(&m.ID); return nil }
func (m *OrderLineItem) BeforeCreate(*gorm.DB) error { ensureID(&m.ID); return nil }
func (m *Notification) BeforeCreate(*gorm.DB) error  { ensureID(&m.ID); return nil }
func (m *OutboxEvent) BeforeCreate(*gorm.DB) error   { ensureID(&m.ID); return nil }
func (m *AdminUser) BeforeCreate(*gorm.DB) error     { ensureID(&m.ID); return nil }

func (m *Product) BeforeSave(*gorm.DB) error {
	ensureArray(&m.Colors)
	ensureArray(&m.GalleryURLs)
	return nil
}

func (m *BrandItem) BeforeSave(*gorm.DB) error {
	ensureArray(&m.Colors)
	return nil
}
