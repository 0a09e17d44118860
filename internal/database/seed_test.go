// seed_test.go
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
	"testing"

	"github.com/homevine/propman/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open sqlite database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestSeedLookups(t *testing.T) {
	db := setupSeedTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var accountTypes int64
	db.Model(&models.AccountType{}).Count(&accountTypes)
	if accountTypes != 3 {
		t.Errorf("Expected 3 account types, got %d", accountTypes)
	}

	var transactionTypes int64
	db.Model(&models.TransactionType{}).Count(&transactionTypes)
	if transactionTypes != 7 {
		t.Errorf("Expected 7 transaction types, got %d", transactionTypes)
	}

	var plans []models.SubscriptionPlan
	if err := db.Order("price").Find(&plans).Error; err != nil {
		t.Fatalf("Failed to load plans: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("Expected 3 plans, got %d", len(plans))
	}
	if plans[0].Name != "Starter" || plans[2].Name != "Enterprise" {
		t.Errorf("Unexpected plan ordering: %s, %s, %s", plans[0].Name, plans[1].Name, plans[2].Name)
	}
	if plans[2].BillingPeriod != "yearly" {
		t.Errorf("Expected Enterprise to bill yearly, got %s", plans[2].BillingPeriod)
	}

	var features []string
	if err := json.Unmarshal(plans[0].Features.JSON, &features); err != nil {
		t.Fatalf("Failed to decode Starter features: %v", err)
	}
	if len(features) != 3 {
		t.Errorf("Expected 3 Starter features, got %d", len(features))
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	var accountTypes int64
	db.Model(&models.AccountType{}).Count(&accountTypes)
	if accountTypes != 3 {
		t.Errorf("Expected 3 account types after reseed, got %d", accountTypes)
	}

	var transactionTypes int64
	db.Model(&models.TransactionType{}).Count(&transactionTypes)
	if transactionTypes != 7 {
		t.Errorf("Expected 7 transaction types after reseed, got %d", transactionTypes)
	}

	var plans int64
	db.Model(&models.SubscriptionPlan{}).Count(&plans)
	if plans != 3 {
		t.Errorf("Expected 3 plans after reseed, got %d", plans)
	}
}

func TestSeedDemoGraphOnce(t *testing.T) {
	db := setupSeedTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var property models.Property
	if err := db.Preload("Addresses.Units").First(&property).Error; err != nil {
		t.Fatalf("Expected demo property, got error: %v", err)
	}
	if property.Name != "Maple Court Fourplex" {
		t.Errorf("Expected demo property name Maple Court Fourplex, got %s", property.Name)
	}
	if len(property.Addresses) != 1 {
		t.Fatalf("Expected 1 demo address, got %d", len(property.Addresses))
	}
	if len(property.Addresses[0].Units) != 2 {
		t.Errorf("Expected 2 demo units, got %d", len(property.Addresses[0].Units))
	}

	var tenants int64
	db.Model(&models.Tenant{}).Count(&tenants)
	if tenants != 1 {
		t.Errorf("Expected 1 demo tenant, got %d", tenants)
	}

	var accounts int64
	db.Model(&models.Account{}).Count(&accounts)
	if accounts != 1 {
		t.Errorf("Expected 1 demo account, got %d", accounts)
	}

	// A reseed against a populated database must not duplicate the graph.
	if err := Seed(db); err != nil {
		t.Fatalf("Reseed failed: %v", err)
	}

	var properties int64
	db.Model(&models.Property{}).Count(&properties)
	if properties != 1 {
		t.Errorf("Expected demo graph to survive reseed unduplicated, got %d properties", properties)
	}

	var owners int64
	db.Model(&models.Owner{}).Count(&owners)
	if owners != 1 {
		t.Errorf("Expected 1 demo owner after reseed, got %d", owners)
	}
}
