package services

import (
	"github.com/homevine/propman/internal/models"
	"github.com/homevine/propman/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// AddressInput is one address entry in a composite property write.
// An id matching an existing row updates it; any other id inserts a new row.
type AddressInput struct {
	ID        types.FlexUint64 `json:"id"`
	Street    string           `json:"street" validate:"required"`
	Street2   string           `json:"street2"`
	City      string           `json:"city"`
	State     string           `json:"state"`
	Zip       string           `json:"zip"`
	IsPrimary bool             `json:"is_primary"`
}

// PhotoInput is one photo entry in a composite property write.
type PhotoInput struct {
	ID        types.FlexUint64 `json:"id"`
	URL       string           `json:"url" validate:"required"`
	Caption   string           `json:"caption"`
	IsPrimary bool             `json:"is_primary"`
}

// PropertyInput is the create payload for a property, optionally carrying
// nested address and photo lists.
type PropertyInput struct {
	Name      string                        `json:"name" validate:"required"`
	Type      string                        `json:"type"`
	Status    string                        `json:"status"`
	Value     float64                       `json:"value"`
	OwnerID   *uint64                       `json:"owner_id"`
	Addresses *types.FlexList[AddressInput] `json:"addresses"`
	Photos    *types.FlexList[PhotoInput]   `json:"photos"`
}

// UpdatePropertyInput is the update payload for a property. Nil fields are
// left untouched; a non-nil child list runs the full list diff against the
// stored children.
type UpdatePropertyInput struct {
	Name      *string                       `json:"name"`
	Type      *string                       `json:"type"`
	Status    *string                       `json:"status"`
	Value     *float64                      `json:"value"`
	OwnerID   *uint64                       `json:"owner_id"`
	Addresses *types.FlexList[AddressInput] `json:"addresses"`
	Photos    *types.FlexList[PhotoInput]   `json:"photos"`
}

// UpdateAddressInput is the update payload for a single address.
type UpdateAddressInput struct {
	Street    *string `json:"street"`
	Street2   *string `json:"street2"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Zip       *string `json:"zip"`
	IsPrimary *bool   `json:"is_primary"`
}

// propertyScope applies the eager-load set returned with property rows
func propertyScope(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Owner").
		Preload("Addresses", func(db *gorm.DB) *gorm.DB { return db.Order("property_addresses.id") }).
		Preload("Addresses.Units").
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("photos.id") })
}

// GetProperties returns all properties with owner, addresses, units, and photos
func GetProperties(db *gorm.DB) ([]models.Property, error) {
	var properties []models.Property
	if err := propertyScope(db).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty returns one property by id with its eager-loaded relations
func GetProperty(db *gorm.DB, id uint64) (*models.Property, error) {
	var property models.Property
	if err := propertyScope(db).First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// CreateProperty inserts a property and its submitted children in one
// transaction, then re-reads the stored row with relations.
func CreateProperty(db *gorm.DB, input PropertyInput) (*models.Property, error) {
	property := models.Property{
		Name:    input.Name,
		Type:    input.Type,
		Status:  input.Status,
		Value:   input.Value,
		OwnerID: input.OwnerID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if input.OwnerID != nil {
			if err := ensureExists(tx, &models.Owner{}, *input.OwnerID, "owner"); err != nil {
				return err
			}
		}
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		if input.Addresses != nil {
			if err := syncAddresses(tx, property.ID, input.Addresses.Slice()); err != nil {
				return err
			}
		}
		if input.Photos != nil {
			if err := syncPropertyPhotos(tx, property.ID, input.Photos.Slice()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetProperty(db, property.ID)
}

// UpdateProperty overwrites the supplied fields and, when a child list is
// present, diffs it against the stored children, all in one transaction.
func UpdateProperty(db *gorm.DB, id uint64, input UpdatePropertyInput) (*models.Property, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&property, id).Error; err != nil {
			return err
		}

		if input.Name != nil {
			property.Name = *input.Name
		}
		if input.Type != nil {
			property.Type = *input.Type
		}
		if input.Status != nil {
			property.Status = *input.Status
		}
		if input.Value != nil {
			property.Value = *input.Value
		}
		if input.OwnerID != nil {
			if err := ensureExists(tx, &models.Owner{}, *input.OwnerID, "owner"); err != nil {
				return err
			}
			property.OwnerID = input.OwnerID
		}

		if err := tx.Save(&property).Error; err != nil {
			return err
		}

		if input.Addresses != nil {
			if err := syncAddresses(tx, property.ID, input.Addresses.Slice()); err != nil {
				return err
			}
		}
		if input.Photos != nil {
			if err := syncPropertyPhotos(tx, property.ID, input.Photos.Slice()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetProperty(db, id)
}

// GetPropertyAddresses returns the address list of one property
func GetPropertyAddresses(db *gorm.DB, propertyID uint64) ([]models.PropertyAddress, error) {
	session := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})

	var property models.Property
	if err := session.First(&property, propertyID).Error; err != nil {
		return nil, err
	}

	var addresses []models.PropertyAddress
	if err := session.Preload("Units").
		Where("property_id = ?", propertyID).
		Order("property_addresses.id").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// SetPropertyAddresses replaces a property's address list through the list
// diff and returns the stored result.
func SetPropertyAddresses(db *gorm.DB, propertyID uint64, inputs []AddressInput) ([]models.PropertyAddress, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&property, propertyID).Error; err != nil {
			return err
		}
		return syncAddresses(tx, propertyID, inputs)
	})
	if err != nil {
		return nil, err
	}

	return GetPropertyAddresses(db, propertyID)
}

// GetAddress returns one address by id with its units
func GetAddress(db *gorm.DB, id uint64) (*models.PropertyAddress, error) {
	var address models.PropertyAddress
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Units").
		First(&address, id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// UpdateAddress overwrites the supplied fields of one address. Setting
// is_primary clears the flag on the property's other addresses.
func UpdateAddress(db *gorm.DB, id uint64, input UpdateAddressInput) (*models.PropertyAddress, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var address models.PropertyAddress
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&address, id).Error; err != nil {
			return err
		}

		if input.Street != nil {
			address.Street = *input.Street
		}
		if input.Street2 != nil {
			address.Street2 = *input.Street2
		}
		if input.City != nil {
			address.City = *input.City
		}
		if input.State != nil {
			address.State = *input.State
		}
		if input.Zip != nil {
			address.Zip = *input.Zip
		}
		if input.IsPrimary != nil {
			address.IsPrimary = *input.IsPrimary
			if *input.IsPrimary {
				if err := tx.Model(&models.PropertyAddress{}).
					Where("property_id = ? AND id <> ?", address.PropertyID, address.ID).
					Update("is_primary", false).Error; err != nil {
					return err
				}
			}
		}

		return tx.Save(&address).Error
	})
	if err != nil {
		return nil, err
	}

	return GetAddress(db, id)
}

// syncAddresses diffs the submitted address list against the stored rows:
// unknown ids insert, matching ids update, stored rows missing from the
// submission delete along with their units. The first entry in submission
// order holds the primary flag no matter what the client sent.
func syncAddresses(tx *gorm.DB, propertyID uint64, inputs []AddressInput) error {
	var existing []models.PropertyAddress
	if err := tx.Where("property_id = ?", propertyID).Find(&existing).Error; err != nil {
		return err
	}

	existingByID := make(map[uint64]models.PropertyAddress, len(existing))
	for _, address := range existing {
		existingByID[address.ID] = address
	}

	keep := make(map[uint64]struct{}, len(inputs))
	for i, in := range inputs {
		isPrimary := i == 0
		if address, ok := existingByID[in.ID.Uint64()]; ok {
			address.Street = in.Street
			address.Street2 = in.Street2
			address.City = in.City
			address.State = in.State
			address.Zip = in.Zip
			address.IsPrimary = isPrimary
			if err := tx.Save(&address).Error; err != nil {
				return err
			}
			keep[address.ID] = struct{}{}
		} else {
			address := models.PropertyAddress{
				Street:     in.Street,
				Street2:    in.Street2,
				City:       in.City,
				State:      in.State,
				Zip:        in.Zip,
				IsPrimary:  isPrimary,
				PropertyID: propertyID,
			}
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
			keep[address.ID] = struct{}{}
		}
	}

	var removed []uint64
	for _, address := range existing {
		if _, ok := keep[address.ID]; !ok {
			removed = append(removed, address.ID)
		}
	}
	return deleteAddressesCascade(tx, removed)
}

// syncPropertyPhotos diffs the submitted photo list against the photos
// attached to the property, with the same first-is-primary rule.
func syncPropertyPhotos(tx *gorm.DB, propertyID uint64, inputs []PhotoInput) error {
	var existing []models.Photo
	if err := tx.Where("property_id = ?", propertyID).Find(&existing).Error; err != nil {
		return err
	}

	existingByID := make(map[uint64]models.Photo, len(existing))
	for _, photo := range existing {
		existingByID[photo.ID] = photo
	}

	keep := make(map[uint64]struct{}, len(inputs))
	for i, in := range inputs {
		isPrimary := i == 0
		if photo, ok := existingByID[in.ID.Uint64()]; ok {
			photo.URL = in.URL
			photo.Caption = in.Caption
			photo.IsPrimary = isPrimary
			if err := tx.Save(&photo).Error; err != nil {
				return err
			}
			keep[photo.ID] = struct{}{}
		} else {
			photo := models.Photo{
				URL:        in.URL,
				Caption:    in.Caption,
				IsPrimary:  isPrimary,
				PropertyID: &propertyID,
			}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
			keep[photo.ID] = struct{}{}
		}
	}

	for _, photo := range existing {
		if _, ok := keep[photo.ID]; !ok {
			if err := tx.Delete(&models.Photo{}, photo.ID).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
