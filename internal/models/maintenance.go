package models

import (
	"time"
)

// MaintenanceTicket represents a repair request against a unit
type MaintenanceTicket struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Details   string    `gorm:"size:2048" json:"details"`
	Status    string    `gorm:"size:32" json:"status"`
	Priority  string    `gorm:"size:32" json:"priority"`
	UnitID    uint64    `gorm:"not null;index" json:"unit_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for MaintenanceTicket
func (MaintenanceTicket) TableName() string {
	return "maintenance_tickets"
}
