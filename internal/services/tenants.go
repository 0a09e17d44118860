package services

import (
	"time"

	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// TenantInput is the create payload for a tenant.
type TenantInput struct {
	FirstName  string    `json:"first_name" validate:"required"`
	LastName   string    `json:"last_name" validate:"required"`
	Email      string    `json:"email" validate:"omitempty,email"`
	Phone      string    `json:"phone"`
	LeaseStart time.Time `json:"lease_start"`
	LeaseEnd   time.Time `json:"lease_end"`
	Rent       float64   `json:"rent"`
	UnitID     uint64    `json:"unit_id" validate:"required"`
}

// UpdateTenantInput is the update payload for a tenant; nil fields are untouched.
type UpdateTenantInput struct {
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Email      *string    `json:"email" validate:"omitempty,email"`
	Phone      *string    `json:"phone"`
	LeaseStart *time.Time `json:"lease_start"`
	LeaseEnd   *time.Time `json:"lease_end"`
	Rent       *float64   `json:"rent"`
	UnitID     *uint64    `json:"unit_id"`
}

// GetTenants returns all tenants with their payments
func GetTenants(db *gorm.DB) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Payments").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// GetTenant returns one tenant by id with payments
func GetTenant(db *gorm.DB, id uint64) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Payments").
		First(&tenant, id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// CreateTenant inserts a tenant under an existing unit
func CreateTenant(db *gorm.DB, input TenantInput) (*models.Tenant, error) {
	tenant := models.Tenant{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		LeaseStart: input.LeaseStart,
		LeaseEnd:   input.LeaseEnd,
		Rent:       input.Rent,
		UnitID:     input.UnitID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Unit{}, input.UnitID, "unit"); err != nil {
			return err
		}
		return tx.Create(&tenant).Error
	})
	if err != nil {
		return nil, err
	}

	return GetTenant(db, tenant.ID)
}

// UpdateTenant overwrites the supplied fields of one tenant
func UpdateTenant(db *gorm.DB, id uint64, input UpdateTenantInput) (*models.Tenant, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tenant, id).Error; err != nil {
			return err
		}

		if input.FirstName != nil {
			tenant.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			tenant.LastName = *input.LastName
		}
		if input.Email != nil {
			tenant.Email = *input.Email
		}
		if input.Phone != nil {
			tenant.Phone = *input.Phone
		}
		if input.LeaseStart != nil {
			tenant.LeaseStart = *input.LeaseStart
		}
		if input.LeaseEnd != nil {
			tenant.LeaseEnd = *input.LeaseEnd
		}
		if input.Rent != nil {
			tenant.Rent = *input.Rent
		}
		if input.UnitID != nil {
			if err := ensureExists(tx, &models.Unit{}, *input.UnitID, "unit"); err != nil {
				return err
			}
			tenant.UnitID = *input.UnitID
		}

		return tx.Save(&tenant).Error
	})
	if err != nil {
		return nil, err
	}

	return GetTenant(db, id)
}

// DeleteTenant removes a tenant and its payments
func DeleteTenant(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tenant, id).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tenant).Error
	})
}
