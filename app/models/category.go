package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups properties for the public catalogue. Managed by the moderation backend.
type Category struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(100);not null" json:"name"`
	Slug          string         `gorm:"type:varchar(120);uniqueIndex" json:"slug"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	Icon          string         `gorm:"type:varchar(100)" json:"icon,omitempty"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	PropertyCount int            `gorm:"default:0" json:"property_count"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
