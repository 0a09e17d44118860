package models

import (
	"time"
)

// Photo represents an image attached to a property or a unit
type Photo struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	URL        string    `gorm:"size:2048;not null" json:"url"`
	Caption    string    `gorm:"size:255" json:"caption"`
	IsPrimary  bool      `gorm:"not null;default:false" json:"is_primary"`
	PropertyID *uint64   `gorm:"index" json:"property_id"`
	UnitID     *uint64   `gorm:"index" json:"unit_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides the table name for Photo
func (Photo) TableName() string {
	return "photos"
}
