package models

import (
	"time"
)

// AccountType represents a ledger account category
type AccountType struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Account represents a ledger account holding transactions
type Account struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Number        string    `gorm:"uniqueIndex;size:64;not null" json:"number"`
	Balance       float64   `gorm:"type:decimal(12,2)" json:"balance"`
	AccountTypeID uint64    `gorm:"not null;index" json:"account_type_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Type         AccountType   `gorm:"foreignKey:AccountTypeID" json:"type,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}

// TransactionType represents a ledger transaction category
type TransactionType struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transaction represents a single ledger entry against an account and property
type Transaction struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount            float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Memo              string    `gorm:"size:255" json:"memo"`
	OccurredOn        time.Time `json:"occurred_on"`
	Reference         string    `gorm:"type:char(36);uniqueIndex" json:"reference"`
	AccountID         uint64    `gorm:"not null;index" json:"account_id"`
	PropertyID        uint64    `gorm:"not null;index" json:"property_id"`
	TransactionTypeID *uint64   `gorm:"index" json:"transaction_type_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Account         *Account         `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	TransactionType *TransactionType `gorm:"foreignKey:TransactionTypeID" json:"transaction_type,omitempty"`
}

// TableName overrides the table name for AccountType
func (AccountType) TableName() string {
	return "account_types"
}

// TableName overrides the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// TableName overrides the table name for TransactionType
func (TransactionType) TableName() string {
	return "transaction_types"
}

// TableName overrides the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
