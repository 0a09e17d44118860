package services

import (
	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// UnitInput is the create payload for a unit.
type UnitInput struct {
	Number            string  `json:"number" validate:"required"`
	Rent              float64 `json:"rent"`
	Status            string  `json:"status"`
	PropertyAddressID uint64  `json:"property_address_id" validate:"required"`
}

// UpdateUnitInput is the update payload for a unit; nil fields are untouched.
type UpdateUnitInput struct {
	Number            *string  `json:"number"`
	Rent              *float64 `json:"rent"`
	Status            *string  `json:"status"`
	PropertyAddressID *uint64  `json:"property_address_id"`
}

// unitScope applies the eager-load set returned with unit rows
func unitScope(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Tenants").
		Preload("Photos").
		Preload("MaintenanceTickets")
}

// GetUnits returns all units with tenants, photos, and maintenance tickets
func GetUnits(db *gorm.DB) ([]models.Unit, error) {
	var units []models.Unit
	if err := unitScope(db).Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// GetUnit returns one unit by id
func GetUnit(db *gorm.DB, id uint64) (*models.Unit, error) {
	var unit models.Unit
	if err := unitScope(db).First(&unit, id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// CreateUnit inserts a unit under an existing address
func CreateUnit(db *gorm.DB, input UnitInput) (*models.Unit, error) {
	unit := models.Unit{
		Number:            input.Number,
		Rent:              input.Rent,
		Status:            input.Status,
		PropertyAddressID: input.PropertyAddressID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.PropertyAddress{}, input.PropertyAddressID, "address"); err != nil {
			return err
		}
		return tx.Create(&unit).Error
	})
	if err != nil {
		return nil, err
	}

	return GetUnit(db, unit.ID)
}

// UpdateUnit overwrites the supplied fields of one unit
func UpdateUnit(db *gorm.DB, id uint64, input UpdateUnitInput) (*models.Unit, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var unit models.Unit
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&unit, id).Error; err != nil {
			return err
		}

		if input.Number != nil {
			unit.Number = *input.Number
		}
		if input.Rent != nil {
			unit.Rent = *input.Rent
		}
		if input.Status != nil {
			unit.Status = *input.Status
		}
		if input.PropertyAddressID != nil {
			if err := ensureExists(tx, &models.PropertyAddress{}, *input.PropertyAddressID, "address"); err != nil {
				return err
			}
			unit.PropertyAddressID = *input.PropertyAddressID
		}

		return tx.Save(&unit).Error
	})
	if err != nil {
		return nil, err
	}

	return GetUnit(db, id)
}

// DeleteUnit removes a unit and its tenants, payments, photos, and tickets
func DeleteUnit(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var unit models.Unit
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&unit, id).Error; err != nil {
			return err
		}
		return deleteUnitsCascade(tx, []uint64{unit.ID})
	})
}

// deleteUnitsCascade removes the given units after clearing their tenants
// (with payments), photos, and maintenance tickets. Callers run it inside a
// transaction.
func deleteUnitsCascade(tx *gorm.DB, unitIDs []uint64) error {
	if len(unitIDs) == 0 {
		return nil
	}

	var tenantIDs []uint64
	if err := tx.Model(&models.Tenant{}).
		Where("unit_id IN ?", unitIDs).
		Pluck("id", &tenantIDs).Error; err != nil {
		return err
	}
	if len(tenantIDs) > 0 {
		if err := tx.Where("tenant_id IN ?", tenantIDs).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", tenantIDs).Delete(&models.Tenant{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("unit_id IN ?", unitIDs).Delete(&models.Photo{}).Error; err != nil {
		return err
	}
	if err := tx.Where("unit_id IN ?", unitIDs).Delete(&models.MaintenanceTicket{}).Error; err != nil {
		return err
	}

	return tx.Where("id IN ?", unitIDs).Delete(&models.Unit{}).Error
}
