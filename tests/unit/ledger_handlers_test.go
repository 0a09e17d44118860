// ledger_handlers_test.go
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

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/homevine/propman/internal/handlers"
	"github.com/homevine/propman/internal/models"
	"github.com/homevine/propman/tests/helpers"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupLedgerTestDB creates an in-memory SQLite database for ledger testing
func setupLedgerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Owner{},
		&models.Property{},
		&models.PropertyAddress{},
		&models.Unit{},
		&models.Tenant{},
		&models.Payment{},
		&models.AccountType{},
		&models.Account{},
		&models.TransactionType{},
		&models.Transaction{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// TestDeleteAccountTypeInUse tests that an account type with accounts cannot
// be deleted
func TestDeleteAccountTypeInUse(t *testing.T) {
	db := setupLedgerTestDB(t)

	typeID := helpers.CreateTestAccountType(t, db, "Operating")
	helpers.CreateTestAccount(t, db, typeID, "Main Operating", "1001")

	app := fiber.New()
	handler := &handlers.AccountHandler{DB: db}
	app.Delete("/api/account-types/:id", handler.DeleteAccountType)

	url := "/api/account-types/" + strconv.FormatUint(typeID, 10)
	req := httptest.NewRequest("DELETE", url, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 400)
	helpers.AssertErrorContains(t, resp, "is referenced by")

	// The type survives the failed delete
	var count int64
	db.Model(&models.AccountType{}).Where("id = ?", typeID).Count(&count)
	if count != 1 {
		t.Error("Expected account type to survive the rejected delete")
	}
}

// TestCreateTransactionDefaults tests POST /api/transactions with the
// optional fields omitted
func TestCreateTransactionDefaults(t *testing.T) {
	db := setupLedgerTestDB(t)

	typeID := helpers.CreateTestAccountType(t, db, "Operating")
	accountID := helpers.CreateTestAccount(t, db, typeID, "Main Operating", "1001")
	propertyID := helpers.CreateTestProperty(t, db, "Ledger House", nil)

	app := fiber.New()
	handler := &handlers.TransactionHandler{DB: db}
	app.Post("/api/transactions", handler.CreateTransaction)

	reqBody := map[string]interface{}{
		"amount":      1450.00,
		"memo":        "April rent",
		"account_id":  accountID,
		"property_id": propertyID,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 201)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)

	// The service stamps a uuid reference and an occurred_on timestamp
	reference, ok := result["reference"].(string)
	if !ok || len(reference) != 36 {
		t.Errorf("Expected a uuid reference, got %v", result["reference"])
	}
	occurredOn, ok := result["occurred_on"].(string)
	if !ok || occurredOn == "" || occurredOn[:4] == "0001" {
		t.Errorf("Expected occurred_on to default to now, got %v", result["occurred_on"])
	}
	if result["transaction_type_id"] != nil {
		t.Errorf("Expected nil transaction_type_id, got %v", result["transaction_type_id"])
	}
}

// TestTransactionReferenceImmutable tests that updates cannot change the
// stamped reference
func TestTransactionReferenceImmutable(t *testing.T) {
	db := setupLedgerTestDB(t)

	typeID := helpers.CreateTestAccountType(t, db, "Operating")
	accountID := helpers.CreateTestAccount(t, db, typeID, "Main Operating", "1001")
	propertyID := helpers.CreateTestProperty(t, db, "Ledger House", nil)

	app := fiber.New()
	handler := &handlers.TransactionHandler{DB: db}
	app.Post("/api/transactions", handler.CreateTransaction)
	app.Put("/api/transactions/:id", handler.UpdateTransaction)

	createBody, _ := json.Marshal(map[string]interface{}{
		"amount":      900.00,
		"account_id":  accountID,
		"property_id": propertyID,
	})
	req := httptest.NewRequest("POST", "/api/transactions", bytes.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 201)

	var created map[string]interface{}
	helpers.ParseJSON(t, resp, &created)
	reference := created["reference"].(string)
	id := created["id"].(float64)

	updateBody, _ := json.Marshal(map[string]interface{}{
		"memo": "corrected memo",
	})
	url := "/api/transactions/" + strconv.FormatUint(uint64(id), 10)
	req = httptest.NewRequest("PUT", url, bytes.NewReader(updateBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var updated map[string]interface{}
	helpers.ParseJSON(t, resp, &updated)
	if updated["memo"] != "corrected memo" {
		t.Errorf("Expected updated memo, got %v", updated["memo"])
	}
	if updated["reference"] != reference {
		t.Errorf("Expected reference %q to survive update, got %v", reference, updated["reference"])
	}
}

// TestDeleteTransactionTypeKeepsTransactions tests that deleting a type
// detaches its transactions instead of dropping them
func TestDeleteTransactionTypeKeepsTransactions(t *testing.T) {
	db := setupLedgerTestDB(t)

	accountTypeID := helpers.CreateTestAccountType(t, db, "Operating")
	accountID := helpers.CreateTestAccount(t, db, accountTypeID, "Main Operating", "1001")
	propertyID := helpers.CreateTestProperty(t, db, "Ledger House", nil)
	transactionTypeID := helpers.CreateTestTransactionType(t, db, "Rent Income")

	transaction := models.Transaction{
		Amount:            1450,
		Reference:         "11111111-2222-3333-4444-555555555555",
		AccountID:         accountID,
		PropertyID:        propertyID,
		TransactionTypeID: &transactionTypeID,
	}
	if err := db.Create(&transaction).Error; err != nil {
		t.Fatalf("Failed to create transaction: %v", err)
	}

	app := fiber.New()
	handler := &handlers.TransactionHandler{DB: db}
	app.Delete("/api/transaction-types/:id", handler.DeleteTransactionType)

	url := "/api/transaction-types/" + strconv.FormatUint(transactionTypeID, 10)
	req := httptest.NewRequest("DELETE", url, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 204)

	var survivor models.Transaction
	if err := db.First(&survivor, transaction.ID).Error; err != nil {
		t.Fatalf("Expected transaction to survive type delete: %v", err)
	}
	if survivor.TransactionTypeID != nil {
		t.Errorf("Expected transaction_type_id to be cleared, got %v", *survivor.TransactionTypeID)
	}
}

// TestListTransactionsByAccount tests the account_id filter on
// GET /api/transactions
func TestListTransactionsByAccount(t *testing.T) {
	db := setupLedgerTestDB(t)

	typeID := helpers.CreateTestAccountType(t, db, "Operating")
	firstAccount := helpers.CreateTestAccount(t, db, typeID, "First", "1001")
	secondAccount := helpers.CreateTestAccount(t, db, typeID, "Second", "1002")
	propertyID := helpers.CreateTestProperty(t, db, "Filter House", nil)

	for i, accountID := range []uint64{firstAccount, firstAccount, secondAccount} {
		transaction := models.Transaction{
			Amount:     float64(100 * (i + 1)),
			Reference:  "00000000-0000-0000-0000-00000000000" + strconv.Itoa(i),
			AccountID:  accountID,
			PropertyID: propertyID,
		}
		if err := db.Create(&transaction).Error; err != nil {
			t.Fatalf("Failed to create transaction: %v", err)
		}
	}

	app := fiber.New()
	handler := &handlers.TransactionHandler{DB: db}
	app.Get("/api/transactions", handler.GetTransactions)

	url := "/api/transactions?account_id=" + strconv.FormatUint(firstAccount, 10)
	req := httptest.NewRequest("GET", url, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 200)

	var result []map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	if len(result) != 2 {
		t.Fatalf("Expected 2 transactions for the account, got %d", len(result))
	}
	for _, row := range result {
		if uint64(row["account_id"].(float64)) != firstAccount {
			t.Errorf("Expected account_id %d, got %v", firstAccount, row["account_id"])
		}
	}
}

// TestCreatePaymentDefaults tests POST /api/payments with the optional
// fields omitted
func TestCreatePaymentDefaults(t *testing.T) {
	db := setupLedgerTestDB(t)

	propertyID := helpers.CreateTestProperty(t, db, "Payment House", nil)
	addressID := helpers.CreateTestAddress(t, db, propertyID, "1 Payment Pl", true)
	unitID := helpers.CreateTestUnit(t, db, addressID, "1A")
	tenantID := helpers.CreateTestTenant(t, db, unitID, "Noah", "Patel")

	app := fiber.New()
	handler := &handlers.PaymentHandler{DB: db}
	app.Post("/api/payments", handler.CreatePayment)

	reqBody := map[string]interface{}{
		"amount":    1200.00,
		"tenant_id": tenantID,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 201)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)

	if result["status"] != "cleared" {
		t.Errorf("Expected default status 'cleared', got %v", result["status"])
	}
	reference, ok := result["reference"].(string)
	if !ok || len(reference) != 36 {
		t.Errorf("Expected a uuid reference, got %v", result["reference"])
	}
}
