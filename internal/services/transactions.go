package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// TransactionTypeInput is the create payload for a transaction type.
type TransactionTypeInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateTransactionTypeInput is the update payload for a transaction type.
type UpdateTransactionTypeInput struct {
	Name *string `json:"name"`
}

// TransactionInput is the create payload for a ledger transaction.
type TransactionInput struct {
	Amount            float64   `json:"amount"`
	Memo              string    `json:"memo"`
	OccurredOn        time.Time `json:"occurred_on"`
	AccountID         uint64    `json:"account_id" validate:"required"`
	PropertyID        uint64    `json:"property_id" validate:"required"`
	TransactionTypeID *uint64   `json:"transaction_type_id"`
}

// UpdateTransactionInput is the update payload for a ledger transaction.
type UpdateTransactionInput struct {
	Amount            *float64   `json:"amount"`
	Memo              *string    `json:"memo"`
	OccurredOn        *time.Time `json:"occurred_on"`
	AccountID         *uint64    `json:"account_id"`
	PropertyID        *uint64    `json:"property_id"`
	TransactionTypeID *uint64    `json:"transaction_type_id"`
}

// GetTransactionTypes returns all transaction types
func GetTransactionTypes(db *gorm.DB) ([]models.TransactionType, error) {
	var transactionTypes []models.TransactionType
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Find(&transactionTypes).Error; err != nil {
		return nil, err
	}
	return transactionTypes, nil
}

// GetTransactionType returns one transaction type by id
func GetTransactionType(db *gorm.DB, id uint64) (*models.TransactionType, error) {
	var transactionType models.TransactionType
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		First(&transactionType, id).Error; err != nil {
		return nil, err
	}
	return &transactionType, nil
}

// CreateTransactionType inserts a transaction type
func CreateTransactionType(db *gorm.DB, input TransactionTypeInput) (*models.TransactionType, error) {
	transactionType := models.TransactionType{Name: input.Name}
	if err := db.Create(&transactionType).Error; err != nil {
		return nil, err
	}
	return &transactionType, nil
}

// UpdateTransactionType overwrites the supplied fields of one transaction type
func UpdateTransactionType(db *gorm.DB, id uint64, input UpdateTransactionTypeInput) (*models.TransactionType, error) {
	var transactionType models.TransactionType
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&transactionType, id).Error; err != nil {
			return err
		}
		if input.Name != nil {
			transactionType.Name = *input.Name
		}
		return tx.Save(&transactionType).Error
	})
	if err != nil {
		return nil, err
	}
	return &transactionType, nil
}

// DeleteTransactionType removes a transaction type. Transactions keep their
// rows with the type reference cleared.
func DeleteTransactionType(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var transactionType models.TransactionType
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&transactionType, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Transaction{}).
			Where("transaction_type_id = ?", id).
			Update("transaction_type_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&transactionType).Error
	})
}

// GetTransactions returns ledger transactions, newest first, optionally
// narrowed to one account.
func GetTransactions(db *gorm.DB, accountID uint64) ([]models.Transaction, error) {
	query := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Account").
		Preload("TransactionType")

	if accountID != 0 {
		// The account filter is the hot ledger path on MySQL deployments.
		if db.Dialector.Name() == "mysql" {
			query = query.Clauses(hints.UseIndex("idx_transactions_account_id"))
		}
		query = query.Where("account_id = ?", accountID)
	}

	var transactions []models.Transaction
	if err := query.Order("occurred_on DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetTransaction returns one transaction by id with account and type
func GetTransaction(db *gorm.DB, id uint64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Account").
		Preload("TransactionType").
		First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// CreateTransaction inserts a ledger transaction against an existing account
// and property. The reference is server-assigned.
func CreateTransaction(db *gorm.DB, input TransactionInput) (*models.Transaction, error) {
	occurredOn := input.OccurredOn
	if occurredOn.IsZero() {
		occurredOn = time.Now().UTC()
	}

	transaction := models.Transaction{
		Amount:            input.Amount,
		Memo:              input.Memo,
		OccurredOn:        occurredOn,
		Reference:         uuid.NewString(),
		AccountID:         input.AccountID,
		PropertyID:        input.PropertyID,
		TransactionTypeID: input.TransactionTypeID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Account{}, input.AccountID, "account"); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Property{}, input.PropertyID, "property"); err != nil {
			return err
		}
		if input.TransactionTypeID != nil {
			if err := ensureExists(tx, &models.TransactionType{}, *input.TransactionTypeID, "transaction type"); err != nil {
				return err
			}
		}
		return tx.Create(&transaction).Error
	})
	if err != nil {
		return nil, err
	}

	return GetTransaction(db, transaction.ID)
}

// UpdateTransaction overwrites the supplied fields of one transaction. The
// server-assigned reference never changes.
func UpdateTransaction(db *gorm.DB, id uint64, input UpdateTransactionInput) (*models.Transaction, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&transaction, id).Error; err != nil {
			return err
		}

		if input.Amount != nil {
			transaction.Amount = *input.Amount
		}
		if input.Memo != nil {
			transaction.Memo = *input.Memo
		}
		if input.OccurredOn != nil {
			transaction.OccurredOn = *input.OccurredOn
		}
		if input.AccountID != nil {
			if err := ensureExists(tx, &models.Account{}, *input.AccountID, "account"); err != nil {
				return err
			}
			transaction.AccountID = *input.AccountID
		}
		if input.PropertyID != nil {
			if err := ensureExists(tx, &models.Property{}, *input.PropertyID, "property"); err != nil {
				return err
			}
			transaction.PropertyID = *input.PropertyID
		}
		if input.TransactionTypeID != nil {
			if err := ensureExists(tx, &models.TransactionType{}, *input.TransactionTypeID, "transaction type"); err != nil {
				return err
			}
			transaction.TransactionTypeID = input.TransactionTypeID
		}

		return tx.Save(&transaction).Error
	})
	if err != nil {
		return nil, err
	}

	return GetTransaction(db, id)
}

// DeleteTransaction removes one ledger transaction
func DeleteTransaction(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		if err := tx.First(&transaction, id).Error; err != nil {
			return err
		}
		return tx.Delete(&transaction).Error
	})
}
