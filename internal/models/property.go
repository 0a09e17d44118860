package models

import (
	"time"
)

// Property represents a managed property and its relations
type Property struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Type      string    `gorm:"size:32" json:"type"`
	Status    string    `gorm:"size:32" json:"status"`
	Value     float64   `gorm:"type:decimal(12,2)" json:"value"`
	OwnerID   *uint64   `gorm:"index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner        *Owner            `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Addresses    []PropertyAddress `gorm:"foreignKey:PropertyID" json:"addresses"`
	Photos       []Photo           `gorm:"foreignKey:PropertyID" json:"photos"`
	Transactions []Transaction     `gorm:"foreignKey:PropertyID" json:"transactions,omitempty"`
	Associations []Association     `gorm:"foreignKey:PropertyID" json:"associations,omitempty"`
	Portfolios   []Portfolio       `gorm:"many2many:portfolio_properties;joinForeignKey:property_id;joinReferences:portfolio_id" json:"portfolios,omitempty"`
}

// PropertyAddress represents a street address belonging to a property
type PropertyAddress struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Street     string    `gorm:"size:255;not null" json:"street"`
	Street2    string    `gorm:"size:255" json:"street2"`
	City       string    `gorm:"size:128" json:"city"`
	State      string    `gorm:"size:32" json:"state"`
	Zip        string    `gorm:"size:16" json:"zip"`
	IsPrimary  bool      `gorm:"not null;default:false" json:"is_primary"`
	PropertyID uint64    `gorm:"not null;index" json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Units []Unit `gorm:"foreignKey:PropertyAddressID" json:"units"`
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "properties"
}

// TableName overrides the table name for PropertyAddress
func (PropertyAddress) TableName() string {
	return "property_addresses"
}
