// billing_handlers_test.go
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

const testUserID = "0b9cb123-7f63-4e42-9f96-7bd2f2f1c1a5"

// setupBillingTestDB creates an in-memory SQLite database for plan,
// subscription, and portfolio testing
func setupBillingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.SubscriptionPlan{},
		&models.Subscription{},
		&models.Portfolio{},
		&models.PortfolioProperty{},
		&models.Property{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// TestCreatePlanWithFeatures tests POST /api/subscription/plans with a
// features document
func TestCreatePlanWithFeatures(t *testing.T) {
	db := setupBillingTestDB(t)

	app := fiber.New()
	handler := &handlers.SubscriptionHandler{DB: db}
	app.Post("/api/subscription/plans", handler.CreateSubscriptionPlan)

	reqBody := map[string]interface{}{
		"name":     "Professional",
		"price":    29.99,
		"features": []string{"portfolios", "ledger", "maintenance"},
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/subscription/plans", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 201)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)

	if result["billing_period"] != "monthly" {
		t.Errorf("Expected default billing_period 'monthly', got %v", result["billing_period"])
	}
	features, ok := result["features"].([]interface{})
	if !ok || len(features) != 3 {
		t.Errorf("Expected features round trip, got %v", result["features"])
	}
}

// TestDeletePlanInUse tests that a plan with subscriptions cannot be deleted
func TestDeletePlanInUse(t *testing.T) {
	db := setupBillingTestDB(t)

	planID := helpers.CreateTestPlan(t, db, "Starter", 9.99)
	subscription := models.Subscription{
		UserID: testUserID,
		Status: "active",
		PlanID: planID,
	}
	if err := db.Create(&subscription).Error; err != nil {
		t.Fatalf("Failed to create subscription: %v", err)
	}

	app := fiber.New()
	handler := &handlers.SubscriptionHandler{DB: db}
	app.Delete("/api/subscription/plans/:id", handler.DeleteSubscriptionPlan)

	url := "/api/subscription/plans/" + strconv.FormatUint(planID, 10)
	req := httptest.NewRequest("DELETE", url, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 400)
	helpers.AssertErrorContains(t, resp, "is referenced by")
}

// TestSubscriptionLifecycle tests create defaults and the cancellation
// timestamp
func TestSubscriptionLifecycle(t *testing.T) {
	db := setupBillingTestDB(t)

	planID := helpers.CreateTestPlan(t, db, "Starter", 9.99)

	app := fiber.New()
	handler := &handlers.SubscriptionHandler{DB: db}
	app.Post("/api/subscriptions", handler.CreateSubscription)
	app.Put("/api/subscriptions/:id", handler.UpdateSubscription)

	createBody, _ := json.Marshal(map[string]interface{}{
		"user_id": testUserID,
		"plan_id": planID,
	})
	req := httptest.NewRequest("POST", "/api/subscriptions", bytes.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 201)

	var created map[string]interface{}
	helpers.ParseJSON(t, resp, &created)

	if created["status"] != "active" {
		t.Errorf("Expected default status 'active', got %v", created["status"])
	}
	if created["cancelled_at"] != nil {
		t.Errorf("Expected nil cancelled_at on create, got %v", created["cancelled_at"])
	}
	plan, ok := created["plan"].(map[string]interface{})
	if !ok || plan["name"] != "Starter" {
		t.Errorf("Expected preloaded plan in response, got %v", created["plan"])
	}

	// Cancelling stamps cancelled_at
	id := created["id"].(float64)
	cancelBody, _ := json.Marshal(map[string]interface{}{"status": "cancelled"})
	url := "/api/subscriptions/" + strconv.FormatUint(uint64(id), 10)
	req = httptest.NewRequest("PUT", url, bytes.NewReader(cancelBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var cancelled map[string]interface{}
	helpers.ParseJSON(t, resp, &cancelled)

	if cancelled["status"] != "cancelled" {
		t.Errorf("Expected status 'cancelled', got %v", cancelled["status"])
	}
	if cancelled["cancelled_at"] == nil {
		t.Error("Expected cancelled_at to be stamped")
	}
}

// TestCreateSubscriptionBadUserID tests user id validation
func TestCreateSubscriptionBadUserID(t *testing.T) {
	db := setupBillingTestDB(t)

	planID := helpers.CreateTestPlan(t, db, "Starter", 9.99)

	app := fiber.New()
	handler := &handlers.SubscriptionHandler{DB: db}
	app.Post("/api/subscriptions", handler.CreateSubscription)

	reqBody, _ := json.Marshal(map[string]interface{}{
		"user_id": "not-a-uuid",
		"plan_id": planID,
	})
	req := httptest.NewRequest("POST", "/api/subscriptions", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 400)
}

// TestPortfolioAttachDetach tests the portfolio membership round trip
func TestPortfolioAttachDetach(t *testing.T) {
	db := setupBillingTestDB(t)

	propertyID := helpers.CreateTestProperty(t, db, "Attach House", nil)
	portfolio := models.Portfolio{Name: "Core Holdings", UserID: testUserID}
	if err := db.Create(&portfolio).Error; err != nil {
		t.Fatalf("Failed to create portfolio: %v", err)
	}

	app := fiber.New()
	handler := &handlers.PortfolioHandler{DB: db}
	app.Post("/api/portfolios/:id/properties/:propertyId", handler.AttachProperty)
	app.Delete("/api/portfolios/:id/properties/:propertyId", handler.DetachProperty)

	url := "/api/portfolios/" + strconv.FormatUint(portfolio.ID, 10) +
		"/properties/" + strconv.FormatUint(propertyID, 10)

	// Attach
	req := httptest.NewRequest("POST", url, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)
	properties, ok := result["properties"].([]interface{})
	if !ok || len(properties) != 1 {
		t.Fatalf("Expected 1 property after attach, got %v", result["properties"])
	}

	// Attaching again is idempotent
	req = httptest.NewRequest("POST", url, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	helpers.ParseJSON(t, resp, &result)
	properties, ok = result["properties"].([]interface{})
	if !ok || len(properties) != 1 {
		t.Fatalf("Expected 1 property after repeat attach, got %v", result["properties"])
	}

	// Detach
	req = httptest.NewRequest("DELETE", url, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 204)

	var count int64
	db.Model(&models.PortfolioProperty{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no join rows after detach, got %d", count)
	}

	// Detaching a property that is not attached still succeeds
	req = httptest.NewRequest("DELETE", url, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 204)
}
