package services

import (
	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// PortfolioInput is the create payload for a portfolio.
type PortfolioInput struct {
	Name   string `json:"name" validate:"required"`
	UserID string `json:"user_id" validate:"required,uuid4"`
}

// UpdatePortfolioInput is the update payload for a portfolio.
type UpdatePortfolioInput struct {
	Name *string `json:"name"`
}

// portfolioScope preloads the member properties in a stable order.
func portfolioScope(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Properties", func(db *gorm.DB) *gorm.DB {
			return db.Order("properties.id ASC")
		})
}

// GetPortfolios returns all portfolios with their member properties
func GetPortfolios(db *gorm.DB) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	if err := portfolioScope(db).Find(&portfolios).Error; err != nil {
		return nil, err
	}
	return portfolios, nil
}

// GetPortfolio returns one portfolio by id with its member properties
func GetPortfolio(db *gorm.DB, id uint64) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := portfolioScope(db).First(&portfolio, id).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// CreatePortfolio inserts a portfolio
func CreatePortfolio(db *gorm.DB, input PortfolioInput) (*models.Portfolio, error) {
	portfolio := models.Portfolio{
		Name:   input.Name,
		UserID: input.UserID,
	}
	if err := db.Create(&portfolio).Error; err != nil {
		return nil, err
	}
	return GetPortfolio(db, portfolio.ID)
}

// UpdatePortfolio overwrites the supplied fields of one portfolio
func UpdatePortfolio(db *gorm.DB, id uint64, input UpdatePortfolioInput) (*models.Portfolio, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var portfolio models.Portfolio
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&portfolio, id).Error; err != nil {
			return err
		}
		if input.Name != nil {
			portfolio.Name = *input.Name
		}
		return tx.Save(&portfolio).Error
	})
	if err != nil {
		return nil, err
	}
	return GetPortfolio(db, id)
}

// DeletePortfolio removes a portfolio and its membership rows. The member
// properties themselves are untouched.
func DeletePortfolio(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var portfolio models.Portfolio
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&portfolio, id).Error; err != nil {
			return err
		}
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.PortfolioProperty{}).Error; err != nil {
			return err
		}
		return tx.Delete(&portfolio).Error
	})
}

// AttachPortfolioProperty adds a property to a portfolio. Attaching a
// property that is already a member is a no-op.
func AttachPortfolioProperty(db *gorm.DB, portfolioID, propertyID uint64) (*models.Portfolio, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var portfolio models.Portfolio
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&portfolio, portfolioID).Error; err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Property{}, propertyID, "property"); err != nil {
			return err
		}
		membership := models.PortfolioProperty{
			PortfolioID: portfolioID,
			PropertyID:  propertyID,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&membership).Error
	})
	if err != nil {
		return nil, err
	}
	return GetPortfolio(db, portfolioID)
}

// DetachPortfolioProperty removes a property from a portfolio. Detaching a
// property that is not a member is a no-op.
func DetachPortfolioProperty(db *gorm.DB, portfolioID, propertyID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var portfolio models.Portfolio
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&portfolio, portfolioID).Error; err != nil {
			return err
		}
		return tx.Where("portfolio_id = ? AND property_id = ?", portfolioID, propertyID).
			Delete(&models.PortfolioProperty{}).Error
	})
}
