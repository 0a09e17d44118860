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

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate the property graph
	err = db.AutoMigrate(
		&models.Owner{},
		&models.Property{},
		&models.PropertyAddress{},
		&models.Unit{},
		&models.Tenant{},
		&models.Payment{},
		&models.Photo{},
		&models.MaintenanceTicket{},
		&models.Transaction{},
		&models.Association{},
		&models.BoardMember{},
		&models.Portfolio{},
		&models.PortfolioProperty{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// TestCreatePropertyWithAddresses tests the POST /api/properties endpoint
// with a nested address list
func TestCreatePropertyWithAddresses(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	handler := &handlers.PropertyHandler{DB: db}
	app.Post("/api/properties", handler.CreateProperty)

	reqBody := map[string]interface{}{
		"name":  "Willow Duplex",
		"type":  "multi_family",
		"value": 410000,
		"addresses": []map[string]interface{}{
			{"street": "12 Willow Ln", "city": "Madison", "state": "WI", "zip": "53703"},
			{"street": "14 Willow Ln", "city": "Madison", "state": "WI", "zip": "53703"},
		},
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/properties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 201)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)

	addresses, ok := result["addresses"].([]interface{})
	if !ok || len(addresses) != 2 {
		t.Fatalf("Expected 2 addresses in response, got %v", result["addresses"])
	}

	// The first submitted address carries the primary flag
	first := addresses[0].(map[string]interface{})
	second := addresses[1].(map[string]interface{})
	if first["is_primary"] != true {
		t.Error("Expected first address to be primary")
	}
	if second["is_primary"] != false {
		t.Error("Expected second address to not be primary")
	}
}

// TestCreatePropertySingleAddressObject tests that a bare address object is
// accepted where an address list is expected
func TestCreatePropertySingleAddressObject(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	handler := &handlers.PropertyHandler{DB: db}
	app.Post("/api/properties", handler.CreateProperty)

	reqBody := map[string]interface{}{
		"name": "Cedar Cottage",
		"addresses": map[string]interface{}{
			"street": "7 Cedar Ct",
			"city":   "Madison",
			"state":  "WI",
			"zip":    "53711",
		},
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/properties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 201)

	var result map[string]interface{}
	helpers.ParseJSON(t, resp, &result)

	addresses, ok := result["addresses"].([]interface{})
	if !ok || len(addresses) != 1 {
		t.Fatalf("Expected 1 address in response, got %v", result["addresses"])
	}

	address := addresses[0].(map[string]interface{})
	if address["street"] != "7 Cedar Ct" {
		t.Errorf("Expected street '7 Cedar Ct', got %v", address["street"])
	}
	if address["is_primary"] != true {
		t.Error("Expected the only address to be primary")
	}
}

// TestGetPropertyNotFound tests 404 responses
func TestGetPropertyNotFound(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	handler := &handlers.PropertyHandler{DB: db}
	app.Get("/api/properties/:id", handler.GetProperty)

	req := httptest.NewRequest("GET", "/api/properties/999", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 404)
	helpers.AssertErrorContains(t, resp, "property not found")
}

// TestSetPropertyAddresses tests the full list diff on
// PUT /api/properties/:id/addresses
func TestSetPropertyAddresses(t *testing.T) {
	db := setupTestDB(t)

	propertyID := helpers.CreateTestProperty(t, db, "Diff Fourplex", nil)
	keptID := helpers.CreateTestAddress(t, db, propertyID, "1 Old St", true)
	droppedID := helpers.CreateTestAddress(t, db, propertyID, "2 Old St", false)
	orphanUnit := helpers.CreateTestUnit(t, db, droppedID, "2A")

	app := fiber.New()
	handler := &handlers.PropertyHandler{DB: db}
	app.Put("/api/properties/:id/addresses", handler.SetPropertyAddresses)

	// Update the kept row, add a new one, omit the dropped one. The kept id
	// is sent as a string on purpose; the wire format tolerates both.
	reqBody := []map[string]interface{}{
		{"id": strconv.FormatUint(keptID, 10), "street": "1 New St", "city": "Madison", "state": "WI", "zip": "53703"},
		{"street": "3 New St", "city": "Madison", "state": "WI", "zip": "53703"},
	}

	body, _ := json.Marshal(reqBody)
	url := "/api/properties/" + strconv.FormatUint(propertyID, 10) + "/addresses"
	req := httptest.NewRequest("PUT", url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 200)

	var result []map[string]interface{}
	helpers.ParseJSON(t, resp, &result)

	if len(result) != 2 {
		t.Fatalf("Expected 2 addresses after diff, got %d", len(result))
	}
	if result[0]["street"] != "1 New St" {
		t.Errorf("Expected updated street '1 New St', got %v", result[0]["street"])
	}
	if result[0]["is_primary"] != true {
		t.Error("Expected first submitted address to be primary")
	}

	// The omitted address and its unit are gone
	var addressCount int64
	db.Model(&models.PropertyAddress{}).Where("id = ?", droppedID).Count(&addressCount)
	if addressCount != 0 {
		t.Error("Expected omitted address to be deleted")
	}

	var unitCount int64
	db.Model(&models.Unit{}).Where("id = ?", orphanUnit).Count(&unitCount)
	if unitCount != 0 {
		t.Error("Expected unit of omitted address to be deleted")
	}
}

// TestUpdateAddressPrimarySwap tests that promoting an address demotes its
// siblings
func TestUpdateAddressPrimarySwap(t *testing.T) {
	db := setupTestDB(t)

	propertyID := helpers.CreateTestProperty(t, db, "Swap House", nil)
	firstID := helpers.CreateTestAddress(t, db, propertyID, "1 Swap St", true)
	secondID := helpers.CreateTestAddress(t, db, propertyID, "2 Swap St", false)

	app := fiber.New()
	handler := &handlers.PropertyHandler{DB: db}
	app.Put("/api/properties/addresses/:id", handler.UpdateAddress)

	reqBody := map[string]interface{}{"is_primary": true}
	body, _ := json.Marshal(reqBody)
	url := "/api/properties/addresses/" + strconv.FormatUint(secondID, 10)
	req := httptest.NewRequest("PUT", url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 200)

	var demoted models.PropertyAddress
	if err := db.First(&demoted, firstID).Error; err != nil {
		t.Fatalf("Failed to reload first address: %v", err)
	}
	if demoted.IsPrimary {
		t.Error("Expected first address to lose the primary flag")
	}

	var promoted models.PropertyAddress
	if err := db.First(&promoted, secondID).Error; err != nil {
		t.Fatalf("Failed to reload second address: %v", err)
	}
	if !promoted.IsPrimary {
		t.Error("Expected second address to gain the primary flag")
	}
}

// TestCreateUnitValidation tests request validation on POST /api/units
func TestCreateUnitValidation(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	handler := &handlers.UnitHandler{DB: db}
	app.Post("/api/units", handler.CreateUnit)

	// Missing the required unit number
	reqBody := map[string]interface{}{
		"rent":                1200,
		"property_address_id": 1,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/units", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 400)
}

// TestCreateTenantUnknownUnit tests referential checks on POST /api/tenants
func TestCreateTenantUnknownUnit(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	handler := &handlers.TenantHandler{DB: db}
	app.Post("/api/tenants", handler.CreateTenant)

	reqBody := map[string]interface{}{
		"first_name": "Noah",
		"last_name":  "Patel",
		"unit_id":    9999,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/tenants", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 400)
	helpers.AssertErrorContains(t, resp, "does not exist")
}

// TestDeletePropertyCascade tests that DELETE /api/properties/:id clears the
// whole graph under the property
func TestDeletePropertyCascade(t *testing.T) {
	db := setupTestDB(t)

	ownerID := helpers.CreateTestOwner(t, db, "Ava", "Chen")
	propertyID := helpers.CreateTestProperty(t, db, "Cascade Court", &ownerID)
	addressID := helpers.CreateTestAddress(t, db, propertyID, "9 Cascade Ct", true)
	unitID := helpers.CreateTestUnit(t, db, addressID, "1A")
	helpers.CreateTestTenant(t, db, unitID, "Mia", "Lopez")

	app := fiber.New()
	handler := &handlers.PropertyHandler{DB: db}
	app.Delete("/api/properties/:id", handler.DeleteProperty)

	url := "/api/properties/" + strconv.FormatUint(propertyID, 10)
	req := httptest.NewRequest("DELETE", url, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	helpers.AssertStatus(t, resp, 204)
	helpers.AssertNoContent(t, resp)

	// Everything under the property is gone, the owner survives
	var count int64
	db.Model(&models.Property{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no properties after cascade, got %d", count)
	}
	db.Model(&models.PropertyAddress{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no addresses after cascade, got %d", count)
	}
	db.Model(&models.Unit{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no units after cascade, got %d", count)
	}
	db.Model(&models.Tenant{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no tenants after cascade, got %d", count)
	}
	db.Model(&models.Owner{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected owner to survive property delete, got %d", count)
	}
}
