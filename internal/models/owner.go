package models

import (
	"time"
)

// Owner represents a property owner contact
type Owner struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"size:128;not null" json:"first_name"`
	LastName  string    `gorm:"size:128;not null" json:"last_name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Properties []Property `gorm:"foreignKey:OwnerID" json:"properties,omitempty"`
}

// TableName overrides the table name for Owner
func (Owner) TableName() string {
	return "owners"
}
