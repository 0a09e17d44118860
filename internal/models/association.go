package models

import (
	"time"
)

// Association represents an HOA attached to a property
type Association struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	ContactName string    `gorm:"size:255" json:"contact_name"`
	Email       string    `gorm:"size:255" json:"email"`
	Phone       string    `gorm:"size:32" json:"phone"`
	MonthlyFee  float64   `gorm:"type:decimal(12,2)" json:"monthly_fee"`
	PropertyID  uint64    `gorm:"not null;index" json:"property_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	BoardMembers []BoardMember `gorm:"foreignKey:AssociationID" json:"board_members"`
}

// BoardMember represents a member of an association board
type BoardMember struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Role          string    `gorm:"size:64" json:"role"`
	Email         string    `gorm:"size:255" json:"email"`
	Phone         string    `gorm:"size:32" json:"phone"`
	AssociationID uint64    `gorm:"not null;index" json:"association_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the table name for Association
func (Association) TableName() string {
	return "associations"
}

// TableName overrides the table name for BoardMember
func (BoardMember) TableName() string {
	return "board_members"
}
