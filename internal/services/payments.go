package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// PaymentInput is the create payload for a rent payment.
type PaymentInput struct {
	Amount   float64   `json:"amount" validate:"required"`
	PaidOn   time.Time `json:"paid_on"`
	Status   string    `json:"status" validate:"omitempty,oneof=pending cleared failed refunded"`
	Method   string    `json:"method"`
	TenantID uint64    `json:"tenant_id" validate:"required"`
}

// UpdatePaymentInput is the update payload for a rent payment.
type UpdatePaymentInput struct {
	Amount   *float64   `json:"amount"`
	PaidOn   *time.Time `json:"paid_on"`
	Status   *string    `json:"status" validate:"omitempty,oneof=pending cleared failed refunded"`
	Method   *string    `json:"method"`
	TenantID *uint64    `json:"tenant_id"`
}

// GetPayments returns all payments, newest first
func GetPayments(db *gorm.DB) ([]models.Payment, error) {
	var payments []models.Payment
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Order("paid_on DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPayment returns one payment by id
func GetPayment(db *gorm.DB, id uint64) (*models.Payment, error) {
	var payment models.Payment
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// CreatePayment records a payment against an existing tenant. The receipt
// reference is server-assigned.
func CreatePayment(db *gorm.DB, input PaymentInput) (*models.Payment, error) {
	paidOn := input.PaidOn
	if paidOn.IsZero() {
		paidOn = time.Now().UTC()
	}
	status := input.Status
	if status == "" {
		status = "cleared"
	}

	payment := models.Payment{
		Amount:    input.Amount,
		PaidOn:    paidOn,
		Status:    status,
		Method:    input.Method,
		Reference: uuid.NewString(),
		TenantID:  input.TenantID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Tenant{}, input.TenantID, "tenant"); err != nil {
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// UpdatePayment overwrites the supplied fields of one payment. The
// server-assigned reference never changes.
func UpdatePayment(db *gorm.DB, id uint64, input UpdatePaymentInput) (*models.Payment, error) {
	var payment models.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&payment, id).Error; err != nil {
			return err
		}

		if input.Amount != nil {
			payment.Amount = *input.Amount
		}
		if input.PaidOn != nil {
			payment.PaidOn = *input.PaidOn
		}
		if input.Status != nil {
			payment.Status = *input.Status
		}
		if input.Method != nil {
			payment.Method = *input.Method
		}
		if input.TenantID != nil {
			if err := ensureExists(tx, &models.Tenant{}, *input.TenantID, "tenant"); err != nil {
				return err
			}
			payment.TenantID = *input.TenantID
		}

		return tx.Save(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// DeletePayment removes one payment
func DeletePayment(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, id).Error; err != nil {
			return err
		}
		return tx.Delete(&payment).Error
	})
}
