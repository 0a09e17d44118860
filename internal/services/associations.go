package services

import (
	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// AssociationInput is the create payload for an association.
type AssociationInput struct {
	Name        string  `json:"name" validate:"required"`
	ContactName string  `json:"contact_name"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Phone       string  `json:"phone"`
	MonthlyFee  float64 `json:"monthly_fee"`
	PropertyID  uint64  `json:"property_id" validate:"required"`
}

// UpdateAssociationInput is the update payload for an association.
type UpdateAssociationInput struct {
	Name        *string  `json:"name"`
	ContactName *string  `json:"contact_name"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Phone       *string  `json:"phone"`
	MonthlyFee  *float64 `json:"monthly_fee"`
	PropertyID  *uint64  `json:"property_id"`
}

// BoardMemberInput is the create payload for a board member.
type BoardMemberInput struct {
	Name          string `json:"name" validate:"required"`
	Role          string `json:"role"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	AssociationID uint64 `json:"association_id" validate:"required"`
}

// UpdateBoardMemberInput is the update payload for a board member.
type UpdateBoardMemberInput struct {
	Name          *string `json:"name"`
	Role          *string `json:"role"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	AssociationID *uint64 `json:"association_id"`
}

// GetAssociations returns all associations with their board members
func GetAssociations(db *gorm.DB) ([]models.Association, error) {
	var associations []models.Association
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("BoardMembers").
		Find(&associations).Error; err != nil {
		return nil, err
	}
	return associations, nil
}

// GetAssociation returns one association by id with board members
func GetAssociation(db *gorm.DB, id uint64) (*models.Association, error) {
	var association models.Association
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("BoardMembers").
		First(&association, id).Error; err != nil {
		return nil, err
	}
	return &association, nil
}

// CreateAssociation inserts an association under an existing property
func CreateAssociation(db *gorm.DB, input AssociationInput) (*models.Association, error) {
	association := models.Association{
		Name:        input.Name,
		ContactName: input.ContactName,
		Email:       input.Email,
		Phone:       input.Phone,
		MonthlyFee:  input.MonthlyFee,
		PropertyID:  input.PropertyID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Property{}, input.PropertyID, "property"); err != nil {
			return err
		}
		return tx.Create(&association).Error
	})
	if err != nil {
		return nil, err
	}

	return GetAssociation(db, association.ID)
}

// UpdateAssociation overwrites the supplied fields of one association
func UpdateAssociation(db *gorm.DB, id uint64, input UpdateAssociationInput) (*models.Association, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var association models.Association
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&association, id).Error; err != nil {
			return err
		}

		if input.Name != nil {
			association.Name = *input.Name
		}
		if input.ContactName != nil {
			association.ContactName = *input.ContactName
		}
		if input.Email != nil {
			association.Email = *input.Email
		}
		if input.Phone != nil {
			association.Phone = *input.Phone
		}
		if input.MonthlyFee != nil {
			association.MonthlyFee = *input.MonthlyFee
		}
		if input.PropertyID != nil {
			if err := ensureExists(tx, &models.Property{}, *input.PropertyID, "property"); err != nil {
				return err
			}
			association.PropertyID = *input.PropertyID
		}

		return tx.Save(&association).Error
	})
	if err != nil {
		return nil, err
	}

	return GetAssociation(db, id)
}

// DeleteAssociation removes an association and its board members
func DeleteAssociation(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var association models.Association
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&association, id).Error; err != nil {
			return err
		}
		if err := tx.Where("association_id = ?", id).Delete(&models.BoardMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&association).Error
	})
}

// GetBoardMembers returns all board members
func GetBoardMembers(db *gorm.DB) ([]models.BoardMember, error) {
	var members []models.BoardMember
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetBoardMember returns one board member by id
func GetBoardMember(db *gorm.DB, id uint64) (*models.BoardMember, error) {
	var member models.BoardMember
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// CreateBoardMember inserts a board member under an existing association
func CreateBoardMember(db *gorm.DB, input BoardMemberInput) (*models.BoardMember, error) {
	member := models.BoardMember{
		Name:          input.Name,
		Role:          input.Role,
		Email:         input.Email,
		Phone:         input.Phone,
		AssociationID: input.AssociationID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Association{}, input.AssociationID, "association"); err != nil {
			return err
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}

	return GetBoardMember(db, member.ID)
}

// UpdateBoardMember overwrites the supplied fields of one board member
func UpdateBoardMember(db *gorm.DB, id uint64, input UpdateBoardMemberInput) (*models.BoardMember, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var member models.BoardMember
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&member, id).Error; err != nil {
			return err
		}

		if input.Name != nil {
			member.Name = *input.Name
		}
		if input.Role != nil {
			member.Role = *input.Role
		}
		if input.Email != nil {
			member.Email = *input.Email
		}
		if input.Phone != nil {
			member.Phone = *input.Phone
		}
		if input.AssociationID != nil {
			if err := ensureExists(tx, &models.Association{}, *input.AssociationID, "association"); err != nil {
				return err
			}
			member.AssociationID = *input.AssociationID
		}

		return tx.Save(&member).Error
	})
	if err != nil {
		return nil, err
	}

	return GetBoardMember(db, id)
}

// DeleteBoardMember removes one board member
func DeleteBoardMember(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var member models.BoardMember
		if err := tx.First(&member, id).Error; err != nil {
			return err
		}
		return tx.Delete(&member).Error
	})
}
