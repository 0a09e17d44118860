package models

import (
	"time"
)

// SubscriptionPlan represents a pricing tier with a JSON feature document
type SubscriptionPlan struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	Price         float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	BillingPeriod string    `gorm:"size:16" json:"billing_period"`
	Features      JSON      `gorm:"type:json" json:"features"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Subscription represents a user's active or cancelled plan subscription
type Subscription struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string     `gorm:"type:char(36);not null;index" json:"user_id"`
	Status      string     `gorm:"size:32;not null" json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	PlanID      uint64     `gorm:"not null;index" json:"plan_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Plan SubscriptionPlan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// TableName overrides the table name for SubscriptionPlan
func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

// TableName overrides the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}
