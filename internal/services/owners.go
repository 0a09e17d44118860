package services

import (
	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// OwnerInput is the create payload for an owner.
type OwnerInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
}

// UpdateOwnerInput is the update payload for an owner; nil fields are untouched.
type UpdateOwnerInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
}

// GetOwners returns all owners with their properties
func GetOwners(db *gorm.DB) ([]models.Owner, error) {
	var owners []models.Owner
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Properties").
		Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

// GetOwner returns one owner by id with properties
func GetOwner(db *gorm.DB, id uint64) (*models.Owner, error) {
	var owner models.Owner
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Properties").
		First(&owner, id).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// CreateOwner inserts an owner
func CreateOwner(db *gorm.DB, input OwnerInput) (*models.Owner, error) {
	owner := models.Owner{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	if err := db.Create(&owner).Error; err != nil {
		return nil, err
	}
	return GetOwner(db, owner.ID)
}

// UpdateOwner overwrites the supplied fields of one owner
func UpdateOwner(db *gorm.DB, id uint64, input UpdateOwnerInput) (*models.Owner, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&owner, id).Error; err != nil {
			return err
		}

		if input.FirstName != nil {
			owner.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			owner.LastName = *input.LastName
		}
		if input.Email != nil {
			owner.Email = *input.Email
		}
		if input.Phone != nil {
			owner.Phone = *input.Phone
		}

		return tx.Save(&owner).Error
	})
	if err != nil {
		return nil, err
	}

	return GetOwner(db, id)
}

// DeleteOwner removes an owner. Properties keep their rows and lose the
// owner reference; property ownership outlives the contact record.
func DeleteOwner(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&owner, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Property{}).
			Where("owner_id = ?", id).
			Update("owner_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&owner).Error
	})
}
