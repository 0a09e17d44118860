// data.go
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

package helpers

import (
	"testing"
	"time"

	"github.com/homevine/propman/internal/models"
	"gorm.io/gorm"
)

// CreateTestOwner creates an owner row and returns its id
func CreateTestOwner(t *testing.T, db *gorm.DB, firstName, lastName string) uint64 {
	t.Helper()
	owner := models.Owner{
		FirstName: firstName,
		LastName:  lastName,
		Email:     firstName + "@example.com",
	}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("Failed to create owner: %v", err)
	}
	return owner.ID
}

// CreateTestProperty creates a property row and returns its id
func CreateTestProperty(t *testing.T, db *gorm.DB, name string, ownerID *uint64) uint64 {
	t.Helper()
	property := models.Property{
		Name:    name,
		Type:    "single_family",
		Status:  "active",
		Value:   250000,
		OwnerID: ownerID,
	}
	if err := db.Create(&property).Error; err != nil {
		t.Fatalf("Failed to create property: %v", err)
	}
	return property.ID
}

// CreateTestAddress creates an address under a property and returns its id
func CreateTestAddress(t *testing.T, db *gorm.DB, propertyID uint64, street string, isPrimary bool) uint64 {
	t.Helper()
	address := models.PropertyAddress{
		Street:     street,
		City:       "Madison",
		State:      "WI",
		Zip:        "53703",
		IsPrimary:  isPrimary,
		PropertyID: propertyID,
	}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("Failed to create address: %v", err)
	}
	return address.ID
}

// CreateTestUnit creates a unit under an address and returns its id
func CreateTestUnit(t *testing.T, db *gorm.DB, addressID uint64, number string) uint64 {
	t.Helper()
	unit := models.Unit{
		Number:            number,
		Rent:              1200,
		Status:            "vacant",
		PropertyAddressID: addressID,
	}
	if err := db.Create(&unit).Error; err != nil {
		t.Fatalf("Failed to create unit: %v", err)
	}
	return unit.ID
}

// CreateTestTenant creates a tenant on a unit and returns its id
func CreateTestTenant(t *testing.T, db *gorm.DB, unitID uint64, firstName, lastName string) uint64 {
	t.Helper()
	tenant := models.Tenant{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      firstName + "@example.com",
		LeaseStart: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaseEnd:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Rent:       1200,
		UnitID:     unitID,
	}
	if err := db.Create(&tenant).Error; err != nil {
		t.Fatalf("Failed to create tenant: %v", err)
	}
	return tenant.ID
}

// CreateTestAccountType creates a ledger account type and returns its id
func CreateTestAccountType(t *testing.T, db *gorm.DB, name string) uint64 {
	t.Helper()
	accountType := models.AccountType{Name: name}
	if err := db.Create(&accountType).Error; err != nil {
		t.Fatalf("Failed to create account type: %v", err)
	}
	return accountType.ID
}

// CreateTestAccount creates a ledger account and returns its id
func CreateTestAccount(t *testing.T, db *gorm.DB, accountTypeID uint64, name, number string) uint64 {
	t.Helper()
	account := models.Account{
		Name:          name,
		Number:        number,
		AccountTypeID: accountTypeID,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}
	return account.ID
}

// CreateTestTransactionType creates a transaction type and returns its id
func CreateTestTransactionType(t *testing.T, db *gorm.DB, name string) uint64 {
	t.Helper()
	transactionType := models.TransactionType{Name: name}
	if err := db.Create(&transactionType).Error; err != nil {
		t.Fatalf("Failed to create transaction type: %v", err)
	}
	return transactionType.ID
}

// CreateTestPlan creates a subscription plan and returns its id
func CreateTestPlan(t *testing.T, db *gorm.DB, name string, price float64) uint64 {
	t.Helper()
	plan := models.SubscriptionPlan{
		Name:          name,
		Price:         price,
		BillingPeriod: "monthly",
	}
	if err := db.Create(&plan).Error; err != nil {
		t.Fatalf("Failed to create plan: %v", err)
	}
	return plan.ID
}
