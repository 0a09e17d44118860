package integration_test

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/homevine/propman/internal/config"
	"github.com/homevine/propman/internal/database"
	"github.com/homevine/propman/internal/handlers"
	"github.com/homevine/propman/internal/models"
	"github.com/homevine/propman/internal/services"
	"github.com/homevine/propman/internal/types"
	"github.com/homevine/propman/tests/helpers"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestWithMariaDB tests the service with a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("PropertyGraphCRUD", func(t *testing.T) {
		testPropertyGraphCRUD(t, db)
	})

	t.Run("AddressListDiff", func(t *testing.T) {
		testAddressListDiff(t, db)
	})

	t.Run("LedgerFlow", func(t *testing.T) {
		testLedgerFlow(t, db)
	})

	t.Run("RestrictDelete", func(t *testing.T) {
		testRestrictDelete(t, db)
	})

	t.Run("ConcurrentCreates", func(t *testing.T) {
		testConcurrentCreates(t, db)
	})

	t.Run("SeedIdempotent", func(t *testing.T) {
		testSeedIdempotent(t, db)
	})

	t.Run("Handler404Behavior", func(t *testing.T) {
		testHandler404Behavior(t, db)
	})
}

// TestWithPostgreSQL tests the service with a real PostgreSQL container
func TestWithPostgreSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("POSTGRES_IMAGE"),
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_USER":     "testuser",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	// Get container host and port
	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
	}

	// Wait for database to be ready
	time.Sleep(2 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Run tests
	t.Run("PropertyGraphCRUD", func(t *testing.T) {
		testPropertyGraphCRUD(t, db)
	})

	t.Run("AddressListDiff", func(t *testing.T) {
		testAddressListDiff(t, db)
	})

	t.Run("LedgerFlow", func(t *testing.T) {
		testLedgerFlow(t, db)
	})

	t.Run("ConcurrentCreates", func(t *testing.T) {
		testConcurrentCreates(t, db)
	})

	t.Run("Handler404Behavior", func(t *testing.T) {
		testHandler404Behavior(t, db)
	})
}

// testPropertyGraphCRUD tests creating, reading, updating, and cascading a
// property with nested children
func testPropertyGraphCRUD(t *testing.T, db *gorm.DB) {
	ownerID := helpers.CreateTestOwner(t, db, "Ava", "Chen")

	addresses := types.FlexList[services.AddressInput]{
		{Street: "412 Maple Ct", City: "Madison", State: "WI", Zip: "53703"},
		{Street: "414 Maple Ct", City: "Madison", State: "WI", Zip: "53703"},
	}
	photos := types.FlexList[services.PhotoInput]{
		{URL: "https://cdn.example.com/maple-front.jpg", Caption: "Front"},
	}

	property, err := services.CreateProperty(db, services.PropertyInput{
		Name:      "Maple Court Fourplex",
		Type:      "multi_family",
		Status:    "active",
		Value:     780000,
		OwnerID:   &ownerID,
		Addresses: &addresses,
		Photos:    &photos,
	})
	if err != nil {
		t.Fatalf("Failed to create property: %v", err)
	}

	if len(property.Addresses) != 2 {
		t.Fatalf("Expected 2 addresses, got %d", len(property.Addresses))
	}
	if !property.Addresses[0].IsPrimary {
		t.Error("Expected first address to be primary")
	}
	if len(property.Photos) != 1 {
		t.Fatalf("Expected 1 photo, got %d", len(property.Photos))
	}
	if property.Owner == nil || property.Owner.FirstName != "Ava" {
		t.Error("Expected the owner to be preloaded")
	}

	// Update the value only; children stay untouched
	newValue := 795000.0
	updated, err := services.UpdateProperty(db, property.ID, services.UpdatePropertyInput{
		Value: &newValue,
	})
	if err != nil {
		t.Fatalf("Failed to update property: %v", err)
	}
	if updated.Value != newValue {
		t.Errorf("Expected value %v, got %v", newValue, updated.Value)
	}
	if len(updated.Addresses) != 2 {
		t.Errorf("Expected addresses untouched, got %d", len(updated.Addresses))
	}

	// Cascade delete
	unitID := helpers.CreateTestUnit(t, db, property.Addresses[0].ID, "1A")
	helpers.CreateTestTenant(t, db, unitID, "Noah", "Patel")

	if err := services.DeleteProperty(db, property.ID); err != nil {
		t.Fatalf("Failed to delete property: %v", err)
	}

	if _, err := services.GetProperty(db, property.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected record not found after delete, got %v", err)
	}

	var unitCount int64
	db.Model(&models.Unit{}).Where("id = ?", unitID).Count(&unitCount)
	if unitCount != 0 {
		t.Error("Expected units to cascade with the property")
	}
}

// testAddressListDiff tests the composite address replacement
func testAddressListDiff(t *testing.T, db *gorm.DB) {
	propertyID := helpers.CreateTestProperty(t, db, "Diff Duplex", nil)
	keptID := helpers.CreateTestAddress(t, db, propertyID, "1 Diff St", true)
	droppedID := helpers.CreateTestAddress(t, db, propertyID, "2 Diff St", false)

	result, err := services.SetPropertyAddresses(db, propertyID, []services.AddressInput{
		{ID: types.FlexUint64(keptID), Street: "1 Diff St Rev", City: "Madison", State: "WI", Zip: "53703"},
		{Street: "3 Diff St", City: "Madison", State: "WI", Zip: "53703"},
	})
	if err != nil {
		t.Fatalf("Failed to set addresses: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("Expected 2 addresses after diff, got %d", len(result))
	}
	if result[0].ID != keptID || result[0].Street != "1 Diff St Rev" {
		t.Errorf("Expected kept address updated in place, got %+v", result[0])
	}
	if !result[0].IsPrimary {
		t.Error("Expected first submitted address to be primary")
	}

	var droppedCount int64
	db.Model(&models.PropertyAddress{}).Where("id = ?", droppedID).Count(&droppedCount)
	if droppedCount != 0 {
		t.Error("Expected omitted address to be deleted")
	}
}

// testLedgerFlow tests accounts, transactions, and the type detach rule
func testLedgerFlow(t *testing.T, db *gorm.DB) {
	typeID := helpers.CreateTestAccountType(t, db, "Ledger Operating")
	accountID := helpers.CreateTestAccount(t, db, typeID, "Ledger Main", "L-1001")
	otherAccountID := helpers.CreateTestAccount(t, db, typeID, "Ledger Other", "L-1002")
	propertyID := helpers.CreateTestProperty(t, db, "Ledger Flow House", nil)
	transactionTypeID := helpers.CreateTestTransactionType(t, db, "Ledger Rent")

	transaction, err := services.CreateTransaction(db, services.TransactionInput{
		Amount:            1450,
		Memo:              "May rent",
		AccountID:         accountID,
		PropertyID:        propertyID,
		TransactionTypeID: &transactionTypeID,
	})
	if err != nil {
		t.Fatalf("Failed to create transaction: %v", err)
	}
	if transaction.Reference == "" {
		t.Error("Expected a stamped reference")
	}
	if transaction.TransactionType == nil || transaction.TransactionType.Name != "Ledger Rent" {
		t.Error("Expected the transaction type to be preloaded")
	}

	if _, err := services.CreateTransaction(db, services.TransactionInput{
		Amount:     -230,
		Memo:       "Gutter repair",
		AccountID:  otherAccountID,
		PropertyID: propertyID,
	}); err != nil {
		t.Fatalf("Failed to create second transaction: %v", err)
	}

	// The account filter only returns matching rows
	filtered, err := services.GetTransactions(db, accountID)
	if err != nil {
		t.Fatalf("Failed to list transactions: %v", err)
	}
	for _, row := range filtered {
		if row.AccountID != accountID {
			t.Errorf("Expected only account %d rows, got account %d", accountID, row.AccountID)
		}
	}

	// Deleting the type keeps the transaction, detached
	if err := services.DeleteTransactionType(db, transactionTypeID); err != nil {
		t.Fatalf("Failed to delete transaction type: %v", err)
	}

	detached, err := services.GetTransaction(db, transaction.ID)
	if err != nil {
		t.Fatalf("Failed to reload transaction: %v", err)
	}
	if detached.TransactionTypeID != nil {
		t.Errorf("Expected detached transaction, got type %v", *detached.TransactionTypeID)
	}

	// Deleting the account removes its transactions
	if err := services.DeleteAccount(db, accountID); err != nil {
		t.Fatalf("Failed to delete account: %v", err)
	}
	var remaining int64
	db.Model(&models.Transaction{}).Where("account_id = ?", accountID).Count(&remaining)
	if remaining != 0 {
		t.Errorf("Expected no transactions after account delete, got %d", remaining)
	}
}

// testRestrictDelete tests that referenced lookup rows refuse deletion
func testRestrictDelete(t *testing.T, db *gorm.DB) {
	typeID := helpers.CreateTestAccountType(t, db, "Restrict Reserve")
	helpers.CreateTestAccount(t, db, typeID, "Restrict Main", "R-2001")

	err := services.DeleteAccountType(db, typeID)
	if err == nil {
		t.Fatal("Expected delete of referenced account type to fail")
	}
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Errorf("Expected a foreign key violation, got %v", err)
	}
}

// testConcurrentCreates tests that parallel creates through the shared
// connection pool yield distinct rows
func testConcurrentCreates(t *testing.T, db *gorm.DB) {
	const n = 20

	var wg sync.WaitGroup
	ids := make(chan uint64, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			owner, err := services.CreateOwner(db, services.OwnerInput{
				FirstName: "Pool",
				LastName:  fmt.Sprintf("Writer %02d", i),
				Email:     fmt.Sprintf("pool.writer%02d@example.com", i),
			})
			if err != nil {
				errs <- err
				return
			}
			ids <- owner.ID
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent create failed: %v", err)
	}

	seen := make(map[uint64]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("Duplicate id %d from concurrent creates", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("Expected %d distinct owners, got %d", n, len(seen))
	}

	var count int64
	db.Model(&models.Owner{}).Where("first_name = ?", "Pool").Count(&count)
	if count != n {
		t.Errorf("Expected %d owner rows, got %d", n, count)
	}
}

// testSeedIdempotent tests that seeding twice leaves one row per fixture
func testSeedIdempotent(t *testing.T, db *gorm.DB) {
	if err := database.Seed(db); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("Failed to re-seed: %v", err)
	}

	var planCount int64
	db.Model(&models.SubscriptionPlan{}).Count(&planCount)
	if planCount != 3 {
		t.Errorf("Expected 3 seeded plans, got %d", planCount)
	}

	var typeCount int64
	db.Model(&models.AccountType{}).Where("name = ?", "Operating").Count(&typeCount)
	if typeCount != 1 {
		t.Errorf("Expected one Operating account type, got %d", typeCount)
	}
}

// testHandler404Behavior tests the handler's 404 response with a real
// database
func testHandler404Behavior(t *testing.T, db *gorm.DB) {
	app := fiber.New()
	handler := &handlers.PropertyHandler{DB: db}
	app.Get("/api/properties/:id", handler.GetProperty)

	req := httptest.NewRequest("GET", "/api/properties/99999999", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertErrorContains(t, resp, "property not found")
}

// TestHealthCheck tests the health check against a live database
func TestHealthCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	cfg := &config.Config{
		DBType:     "mysql",
		DBHost:     host,
		DBPort:     port.Port(),
		DBDatabase: "testdb",
		DBUser:     "testuser",
		DBPassword: "testpass",
	}

	time.Sleep(5 * time.Second)

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	// Database up: healthy
	result := services.HealthCheck(cfg, db)
	if result.Status != "healthy" {
		t.Errorf("Expected status healthy, got: %s", result.Status)
	}
	if result.Database != "ok" {
		t.Errorf("Expected database to be ok, got: %s", result.Database)
	}
	if result.Details["database_type"] != "mysql" {
		t.Errorf("Expected database_type mysql, got: %s", result.Details["database_type"])
	}

	// Database down: unhealthy
	database.Close(db)
	result = services.HealthCheck(cfg, db)
	if result.Status != "unhealthy" {
		t.Errorf("Expected status unhealthy after close, got: %s", result.Status)
	}
	if result.Database != "unreachable" {
		t.Errorf("Expected database to be unreachable, got: %s", result.Database)
	}
}
