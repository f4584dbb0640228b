package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/gorravana/boutique-backend/pkg/enums"
)

// Notification stores in-app alerts for the admin console.
type Notification struct {
	ID        uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Type      enums.NotificationType `gorm:"type:notification_type;not null"`
	Title     string                 `gorm:"type:text;not null"`
	Message   string                 `gorm:"type:text;not null"`
	Link      *string                `gorm:"type:text"`
	ReadAt    *time.Time             `gorm:"column:read_at"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime"`
}
