package models

import (
	"time"
)

// Unit represents a rentable unit at a property address
type Unit struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Number            string    `gorm:"size:32;not null" json:"number"`
	Rent              float64   `gorm:"type:decimal(12,2)" json:"rent"`
	Status            string    `gorm:"size:32" json:"status"`
	PropertyAddressID uint64    `gorm:"not null;index" json:"property_address_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Tenants            []Tenant            `gorm:"foreignKey:UnitID" json:"tenants"`
	Photos             []Photo             `gorm:"foreignKey:UnitID" json:"photos,omitempty"`
	MaintenanceTickets []MaintenanceTicket `gorm:"foreignKey:UnitID" json:"maintenance_tickets,omitempty"`
}

// Tenant represents a leaseholder occupying a unit
type Tenant struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string    `gorm:"size:128;not null" json:"first_name"`
	LastName   string    `gorm:"size:128;not null" json:"last_name"`
	Email      string    `gorm:"size:255" json:"email"`
	Phone      string    `gorm:"size:32" json:"phone"`
	LeaseStart time.Time `json:"lease_start"`
	LeaseEnd   time.Time `json:"lease_end"`
	Rent       float64   `gorm:"type:decimal(12,2)" json:"rent"`
	UnitID     uint64    `gorm:"not null;index" json:"unit_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Payments []Payment `gorm:"foreignKey:TenantID" json:"payments,omitempty"`
}

// TableName overrides the table name for Unit
func (Unit) TableName() string {
	return "units"
}

// TableName overrides the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
