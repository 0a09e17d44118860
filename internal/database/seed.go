// seed.go
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

package database

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/homevine/propman/data"
	"github.com/homevine/propman/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var seedAccountTypes = []string{
	"Operating",
	"Security Deposit",
	"Reserve",
}

var seedTransactionTypes = []string{
	"Rent Income",
	"Late Fee",
	"Security Deposit",
	"Maintenance Expense",
	"HOA Dues",
	"Insurance",
	"Property Tax",
}

type planFixture struct {
	Name          string          `json:"name"`
	Price         float64         `json:"price"`
	BillingPeriod string          `json:"billing_period"`
	Features      json.RawMessage `json:"features"`
}

// Seed inserts the baseline lookup rows and, on an empty database, a small
// demo graph. Safe to run on every boot.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedLookups(tx); err != nil {
			return err
		}
		return seedDemoGraph(tx)
	})
}

// seedLookups upserts the account types, transaction types, and billing
// plans the UI depends on.
func seedLookups(tx *gorm.DB) error {
	for _, name := range seedAccountTypes {
		var accountType models.AccountType
		if err := tx.Where(models.AccountType{Name: name}).FirstOrCreate(&accountType).Error; err != nil {
			return fmt.Errorf("failed to seed account type %q: %w", name, err)
		}
	}

	for _, name := range seedTransactionTypes {
		var transactionType models.TransactionType
		if err := tx.Where(models.TransactionType{Name: name}).FirstOrCreate(&transactionType).Error; err != nil {
			return fmt.Errorf("failed to seed transaction type %q: %w", name, err)
		}
	}

	var fixtures []planFixture
	if err := json.Unmarshal(data.SeedPlans, &fixtures); err != nil {
		return fmt.Errorf("failed to parse plan fixtures: %w", err)
	}
	for _, fixture := range fixtures {
		var plan models.SubscriptionPlan
		if err := tx.Where(models.SubscriptionPlan{Name: fixture.Name}).
			Attrs(models.SubscriptionPlan{
				Price:         fixture.Price,
				BillingPeriod: fixture.BillingPeriod,
				Features:      models.JSON{JSON: datatypes.JSON(fixture.Features)},
			}).
			FirstOrCreate(&plan).Error; err != nil {
			return fmt.Errorf("failed to seed plan %q: %w", fixture.Name, err)
		}
	}

	return nil
}

// seedDemoGraph inserts a small sample portfolio the first time the service
// boots against an empty database.
func seedDemoGraph(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	owner := models.Owner{
		FirstName: "Ava",
		LastName:  "Chen",
		Email:     "ava.chen@example.com",
		Phone:     "555-0142",
	}
	if err := tx.Create(&owner).Error; err != nil {
		return err
	}

	property := models.Property{
		Name:    "Maple Court Fourplex",
		Type:    "multi_family",
		Status:  "active",
		Value:   780000,
		OwnerID: &owner.ID,
		Addresses: []models.PropertyAddress{
			{
				Street:    "412 Maple Ct",
				City:      "Madison",
				State:     "WI",
				Zip:       "53703",
				IsPrimary: true,
				Units: []models.Unit{
					{Number: "1A", Rent: 1450, Status: "occupied"},
					{Number: "1B", Rent: 1375, Status: "vacant"},
				},
			},
		},
	}
	if err := tx.Create(&property).Error; err != nil {
		return err
	}

	tenant := models.Tenant{
		FirstName:  "Noah",
		LastName:   "Patel",
		Email:      "noah.patel@example.com",
		Phone:      "555-0177",
		LeaseStart: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		Rent:       1450,
		UnitID:     property.Addresses[0].Units[0].ID,
	}
	if err := tx.Create(&tenant).Error; err != nil {
		return err
	}

	var operating models.AccountType
	if err := tx.Where(models.AccountType{Name: "Operating"}).First(&operating).Error; err != nil {
		return err
	}
	account := models.Account{
		Name:          "Maple Court Operating",
		Number:        "1001",
		Balance:       0,
		AccountTypeID: operating.ID,
	}
	if err := tx.Create(&account).Error; err != nil {
		return err
	}

	log.Printf("Seeded demo data: property %q with %d units", property.Name, len(property.Addresses[0].Units))
	return nil
}
