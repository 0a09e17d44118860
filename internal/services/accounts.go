package services

import (
	"fmt"

	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// AccountTypeInput is the create payload for an account type.
type AccountTypeInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateAccountTypeInput is the update payload for an account type.
type UpdateAccountTypeInput struct {
	Name *string `json:"name"`
}

// AccountInput is the create payload for an account.
type AccountInput struct {
	Name          string  `json:"name" validate:"required"`
	Number        string  `json:"number" validate:"required"`
	Balance       float64 `json:"balance"`
	AccountTypeID uint64  `json:"account_type_id" validate:"required"`
}

// UpdateAccountInput is the update payload for an account.
type UpdateAccountInput struct {
	Name          *string  `json:"name"`
	Number        *string  `json:"number"`
	Balance       *float64 `json:"balance"`
	AccountTypeID *uint64  `json:"account_type_id"`
}

// GetAccountTypes returns all account types
func GetAccountTypes(db *gorm.DB) ([]models.AccountType, error) {
	var accountTypes []models.AccountType
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Find(&accountTypes).Error; err != nil {
		return nil, err
	}
	return accountTypes, nil
}

// GetAccountType returns one account type by id
func GetAccountType(db *gorm.DB, id uint64) (*models.AccountType, error) {
	var accountType models.AccountType
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		First(&accountType, id).Error; err != nil {
		return nil, err
	}
	return &accountType, nil
}

// CreateAccountType inserts an account type
func CreateAccountType(db *gorm.DB, input AccountTypeInput) (*models.AccountType, error) {
	accountType := models.AccountType{Name: input.Name}
	if err := db.Create(&accountType).Error; err != nil {
		return nil, err
	}
	return &accountType, nil
}

// UpdateAccountType overwrites the supplied fields of one account type
func UpdateAccountType(db *gorm.DB, id uint64, input UpdateAccountTypeInput) (*models.AccountType, error) {
	var accountType models.AccountType
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&accountType, id).Error; err != nil {
			return err
		}
		if input.Name != nil {
			accountType.Name = *input.Name
		}
		return tx.Save(&accountType).Error
	})
	if err != nil {
		return nil, err
	}
	return &accountType, nil
}

// DeleteAccountType removes an account type that no account references
func DeleteAccountType(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var accountType models.AccountType
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&accountType, id).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Account{}).Where("account_type_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("account type %d is referenced by %d accounts: %w", id, count, gorm.ErrForeignKeyViolated)
		}

		return tx.Delete(&accountType).Error
	})
}

// GetAccounts returns all accounts with their account type
func GetAccounts(db *gorm.DB) ([]models.Account, error) {
	var accounts []models.Account
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Type").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetAccount returns one account by id with its account type
func GetAccount(db *gorm.DB, id uint64) (*models.Account, error) {
	var account models.Account
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Type").
		First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccount inserts an account under an existing account type
func CreateAccount(db *gorm.DB, input AccountInput) (*models.Account, error) {
	account := models.Account{
		Name:          input.Name,
		Number:        input.Number,
		Balance:       input.Balance,
		AccountTypeID: input.AccountTypeID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.AccountType{}, input.AccountTypeID, "account type"); err != nil {
			return err
		}
		return tx.Create(&account).Error
	})
	if err != nil {
		return nil, err
	}

	return GetAccount(db, account.ID)
}

// UpdateAccount overwrites the supplied fields of one account
func UpdateAccount(db *gorm.DB, id uint64, input UpdateAccountInput) (*models.Account, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&account, id).Error; err != nil {
			return err
		}

		if input.Name != nil {
			account.Name = *input.Name
		}
		if input.Number != nil {
			account.Number = *input.Number
		}
		if input.Balance != nil {
			account.Balance = *input.Balance
		}
		if input.AccountTypeID != nil {
			if err := ensureExists(tx, &models.AccountType{}, *input.AccountTypeID, "account type"); err != nil {
				return err
			}
			account.AccountTypeID = *input.AccountTypeID
		}

		return tx.Save(&account).Error
	})
	if err != nil {
		return nil, err
	}

	return GetAccount(db, id)
}

// DeleteAccount removes an account and its transaction history
func DeleteAccount(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&account, id).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
}
