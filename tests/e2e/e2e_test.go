// e2e_test.go
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

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/homevine/propman/internal/config"
	"github.com/homevine/propman/internal/database"
	"github.com/homevine/propman/internal/services"
	"github.com/homevine/propman/tests/helpers"
)

// TestE2EWithFullStack tests the entire service stack
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	ctx := context.Background()

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	propmanHost, _ := tc.PropmanContainer.Host(ctx)
	propmanPort, _ := tc.PropmanContainer.MappedPort(ctx, "3000")
	baseURL := fmt.Sprintf("http://%s:%s", propmanHost, propmanPort.Port())

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	// Run E2E tests
	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, tc)
	})

	t.Run("HealthEndpoint", func(t *testing.T) {
		testHealthEndpoint(t, baseURL)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, baseURL)
	})

	t.Run("SeededCatalog", func(t *testing.T) {
		testSeededCatalog(t, baseURL)
	})

	t.Run("PropertyRoundTrip", func(t *testing.T) {
		testPropertyRoundTrip(t, baseURL)
	})

	t.Run("NotFoundFallback", func(t *testing.T) {
		testNotFoundFallback(t, baseURL)
	})
}

func testHealthCheck(t *testing.T, tc *helpers.TestContainers) {
	ctx := context.Background()

	// 1. Prepare configuration for the health check
	// We need to point to the mapped ports on localhost, not internal container names
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Update DB host and port to mapped values
	dbHost, _ := tc.DBContainer.Host(ctx)
	dbPort, _ := tc.DBContainer.MappedPort(ctx, "3306")
	cfg.DBHost = dbHost
	cfg.DBPort = dbPort.Port()

	// 2. Establish GORM connection to the test database
	gormDB, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	defer database.Close(gormDB)

	// 3. Perform the health check
	result := services.HealthCheck(cfg, gormDB)

	// 4. Verify the result
	if result.Status != "healthy" {
		t.Errorf("Health check failed: %+v", result)
	}

	t.Logf("Health check passed: status=%s, database=%s", result.Status, result.Database)
}

func testHealthEndpoint(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/health")
	if err != nil {
		t.Fatalf("Failed to get health endpoint: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for health endpoint, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}
	if result["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %v", result["status"])
	}
	if result["database"] != "ok" {
		t.Errorf("Expected database ok, got %v", result["database"])
	}
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode, bodyStr)
	}

	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(bodyStr))
}

func testSwaggerUI(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for Swagger UI, got %d", resp.StatusCode)
	}
}

// testSeededCatalog verifies the boot seed left the lookup catalogs behind
func testSeededCatalog(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/account-types")
	if err != nil {
		t.Fatalf("Failed to list account types: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 for account types, got %d", resp.StatusCode)
	}

	var accountTypes []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&accountTypes); err != nil {
		t.Fatalf("Failed to decode account types: %v", err)
	}
	if len(accountTypes) < 3 {
		t.Errorf("Expected at least 3 seeded account types, got %d", len(accountTypes))
	}

	resp, err = http.Get(baseURL + "/api/subscription/plans")
	if err != nil {
		t.Fatalf("Failed to list plans: %v", err)
	}
	defer resp.Body.Close()

	var plans []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&plans); err != nil {
		t.Fatalf("Failed to decode plans: %v", err)
	}
	if len(plans) < 3 {
		t.Errorf("Expected at least 3 seeded plans, got %d", len(plans))
	}
}

// testPropertyRoundTrip drives a property create, read, and delete through
// the public API
func testPropertyRoundTrip(t *testing.T, baseURL string) {
	// Create an owner
	ownerBody, _ := json.Marshal(map[string]interface{}{
		"first_name": "June",
		"last_name":  "Okafor",
		"email":      "june@example.com",
	})
	resp, err := http.Post(baseURL+"/api/owners", "application/json", bytes.NewReader(ownerBody))
	if err != nil {
		t.Fatalf("Failed to create owner: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201 for owner create, got %d. Body: %s", resp.StatusCode, string(body))
	}
	var owner map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&owner); err != nil {
		t.Fatalf("Failed to decode owner: %v", err)
	}
	resp.Body.Close()

	// Create a property with a nested address
	propertyBody, _ := json.Marshal(map[string]interface{}{
		"name":     "Round Trip Bungalow",
		"type":     "single_family",
		"status":   "active",
		"value":    315000,
		"owner_id": owner["id"],
		"addresses": []map[string]interface{}{
			{"street": "80 Loop Rd", "city": "Madison", "state": "WI", "zip": "53715"},
		},
	})
	resp, err = http.Post(baseURL+"/api/properties", "application/json", bytes.NewReader(propertyBody))
	if err != nil {
		t.Fatalf("Failed to create property: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201 for property create, got %d. Body: %s", resp.StatusCode, string(body))
	}
	var property map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&property); err != nil {
		t.Fatalf("Failed to decode property: %v", err)
	}
	resp.Body.Close()

	propertyID := fmt.Sprintf("%.0f", property["id"].(float64))

	// Read it back with relations
	resp, err = http.Get(baseURL + "/api/properties/" + propertyID)
	if err != nil {
		t.Fatalf("Failed to get property: %v", err)
	}
	var fetched map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		t.Fatalf("Failed to decode fetched property: %v", err)
	}
	resp.Body.Close()

	if fetched["name"] != "Round Trip Bungalow" {
		t.Errorf("Expected property name round trip, got %v", fetched["name"])
	}
	addresses, ok := fetched["addresses"].([]interface{})
	if !ok || len(addresses) != 1 {
		t.Errorf("Expected 1 address on fetched property, got %v", fetched["addresses"])
	}
	fetchedOwner, ok := fetched["owner"].(map[string]interface{})
	if !ok || fetchedOwner["first_name"] != "June" {
		t.Errorf("Expected preloaded owner, got %v", fetched["owner"])
	}

	// Delete it
	req, _ := http.NewRequest("DELETE", baseURL+"/api/properties/"+propertyID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to delete property: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected status 204 for property delete, got %d", resp.StatusCode)
	}

	// Gone now
	resp, err = http.Get(baseURL + "/api/properties/" + propertyID)
	if err != nil {
		t.Fatalf("Failed to re-get property: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", resp.StatusCode)
	}
}

func testNotFoundFallback(t *testing.T, baseURL string) {
	// Unknown routes return JSON, not an HTML error page
	resp, err := http.Get(baseURL + "/api/nonexistent")
	if err != nil {
		t.Fatalf("Failed to access unknown route: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		body, _ := io.ReadAll(resp.Body)
		t.Logf("Response body: %s", string(body))
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Errorf("Response is not valid JSON: %v", err)
	}
	if result["error"] != "resource not found" {
		t.Errorf("Expected 'resource not found' error, got %v", result["error"])
	}
}
