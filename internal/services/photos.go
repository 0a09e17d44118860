package services

import (
	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// PhotoCreateInput is the create payload for a standalone photo. Exactly one
// of property_id and unit_id anchors the photo.
type PhotoCreateInput struct {
	URL        string  `json:"url" validate:"required"`
	Caption    string  `json:"caption"`
	IsPrimary  bool    `json:"is_primary"`
	PropertyID *uint64 `json:"property_id" validate:"required_without=UnitID,excluded_with=UnitID"`
	UnitID     *uint64 `json:"unit_id" validate:"required_without=PropertyID"`
}

// UpdatePhotoInput is the update payload for a standalone photo. The photo
// cannot move between owners, so the anchor ids are not accepted here.
type UpdatePhotoInput struct {
	URL       *string `json:"url"`
	Caption   *string `json:"caption"`
	IsPrimary *bool   `json:"is_primary"`
}

// GetPhotos returns all photos
func GetPhotos(db *gorm.DB) ([]models.Photo, error) {
	var photos []models.Photo
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// GetPhoto returns one photo by id
func GetPhoto(db *gorm.DB, id uint64) (*models.Photo, error) {
	var photo models.Photo
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// CreatePhoto inserts a photo anchored to an existing property or unit. A
// primary photo demotes its siblings on the same anchor.
func CreatePhoto(db *gorm.DB, input PhotoCreateInput) (*models.Photo, error) {
	photo := models.Photo{
		URL:        input.URL,
		Caption:    input.Caption,
		IsPrimary:  input.IsPrimary,
		PropertyID: input.PropertyID,
		UnitID:     input.UnitID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if input.PropertyID != nil {
			if err := ensureExists(tx, &models.Property{}, *input.PropertyID, "property"); err != nil {
				return err
			}
		}
		if input.UnitID != nil {
			if err := ensureExists(tx, &models.Unit{}, *input.UnitID, "unit"); err != nil {
				return err
			}
		}
		if err := tx.Create(&photo).Error; err != nil {
			return err
		}
		if photo.IsPrimary {
			return demoteSiblingPhotos(tx, &photo)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &photo, nil
}

// UpdatePhoto overwrites the supplied fields of one photo. Promoting a photo
// to primary demotes its siblings on the same anchor.
func UpdatePhoto(db *gorm.DB, id uint64, input UpdatePhotoInput) (*models.Photo, error) {
	var photo models.Photo
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&photo, id).Error; err != nil {
			return err
		}

		if input.URL != nil {
			photo.URL = *input.URL
		}
		if input.Caption != nil {
			photo.Caption = *input.Caption
		}
		if input.IsPrimary != nil {
			photo.IsPrimary = *input.IsPrimary
		}

		if err := tx.Save(&photo).Error; err != nil {
			return err
		}
		if photo.IsPrimary {
			return demoteSiblingPhotos(tx, &photo)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// DeletePhoto removes one photo
func DeletePhoto(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var photo models.Photo
		if err := tx.First(&photo, id).Error; err != nil {
			return err
		}
		return tx.Delete(&photo).Error
	})
}

// demoteSiblingPhotos clears is_primary on every other photo sharing the
// given photo's anchor.
func demoteSiblingPhotos(tx *gorm.DB, photo *models.Photo) error {
	query := tx.Model(&models.Photo{}).Where("id <> ?", photo.ID)
	switch {
	case photo.PropertyID != nil:
		query = query.Where("property_id = ?", *photo.PropertyID)
	case photo.UnitID != nil:
		query = query.Where("unit_id = ?", *photo.UnitID)
	default:
		return nil
	}
	return query.Update("is_primary", false).Error
}
