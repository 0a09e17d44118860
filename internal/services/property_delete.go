// property_delete.go
//
// Property management service for small landlords, HOAs, and portfolio investors
// Copyright (c) 2026 Homevine Labs <dev@homevine.io> (https://www.homevine.io)
//
// This file is part of propman.
// propman is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propman is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propman.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeleteProperty removes a property and everything hanging off it: addresses
// with their units and tenants, photos, transactions, associations with
// their board members, and portfolio join rows. One transaction, so a
// failed step leaves the property intact.
func DeleteProperty(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&property, id).Error; err != nil {
			return err
		}

		var addressIDs []uint64
		if err := tx.Model(&models.PropertyAddress{}).
			Where("property_id = ?", id).
			Pluck("id", &addressIDs).Error; err != nil {
			return err
		}
		if err := deleteAddressesCascade(tx, addressIDs); err != nil {
			return err
		}

		if err := tx.Where("property_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}

		var associationIDs []uint64
		if err := tx.Model(&models.Association{}).
			Where("property_id = ?", id).
			Pluck("id", &associationIDs).Error; err != nil {
			return err
		}
		if len(associationIDs) > 0 {
			if err := tx.Where("association_id IN ?", associationIDs).Delete(&models.BoardMember{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", associationIDs).Delete(&models.Association{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&property).Association("Portfolios").Clear(); err != nil {
			return err
		}

		return tx.Delete(&property).Error
	})
}

// DeleteAddress removes one address and its units, tenants, and unit
// attachments inside a transaction.
func DeleteAddress(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var address models.PropertyAddress
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&address, id).Error; err != nil {
			return err
		}
		return deleteAddressesCascade(tx, []uint64{address.ID})
	})
}

// deleteAddressesCascade removes the given addresses after cascading through
// their units. Callers run it inside a transaction.
func deleteAddressesCascade(tx *gorm.DB, addressIDs []uint64) error {
	if len(addressIDs) == 0 {
		return nil
	}

	var unitIDs []uint64
	if err := tx.Model(&models.Unit{}).
		Where("property_address_id IN ?", addressIDs).
		Pluck("id", &unitIDs).Error; err != nil {
		return err
	}
	if err := deleteUnitsCascade(tx, unitIDs); err != nil {
		return err
	}

	return tx.Where("id IN ?", addressIDs).Delete(&models.PropertyAddress{}).Error
}
