package models

import (
	"time"
)

// Payment represents a rent payment made by a tenant
type Payment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount    float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaidOn    time.Time `json:"paid_on"`
	Status    string    `gorm:"size:32" json:"status"`
	Method    string    `gorm:"size:32" json:"method"`
	Reference string    `gorm:"type:char(36);uniqueIndex" json:"reference"`
	TenantID  uint64    `gorm:"not null;index" json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
