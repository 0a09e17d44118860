package models

import (
	"time"
)

// Portfolio represents a named grouping of properties per user
type Portfolio struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UserID    string    `gorm:"type:char(36);not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Properties []Property `gorm:"many2many:portfolio_properties;joinForeignKey:portfolio_id;joinReferences:property_id" json:"properties"`
}

// PortfolioProperty is the join row between portfolios and properties
type PortfolioProperty struct {
	PortfolioID uint64 `gorm:"primaryKey" json:"portfolio_id"`
	PropertyID  uint64 `gorm:"primaryKey" json:"property_id"`
}

// TableName overrides the table name for Portfolio
func (Portfolio) TableName() string {
	return "portfolios"
}

// TableName overrides the table name for PortfolioProperty
func (PortfolioProperty) TableName() string {
	return "portfolio_properties"
}
