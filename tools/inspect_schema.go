package main

import (
	"fmt"
	"log"

	"github.com/homevine/propman/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	// Auto-migrate to see what GORM creates
	err = db.AutoMigrate(
		&models.Owner{},
		&models.Property{},
		&models.PropertyAddress{},
		&models.Unit{},
		&models.Tenant{},
		&models.Payment{},
		&models.Association{},
		&models.BoardMember{},
		&models.AccountType{},
		&models.Account{},
		&models.TransactionType{},
		&models.Transaction{},
		&models.Photo{},
		&models.MaintenanceTicket{},
		&models.SubscriptionPlan{},
		&models.Subscription{},
		&models.Portfolio{},
		&models.PortfolioProperty{},
	)
	if err != nil {
		log.Fatal(err)
	}

	// Get the schema
	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table'").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw(fmt.Sprintf("SELECT sql FROM sqlite_master WHERE name='%s'", table)).Scan(&schema)
		fmt.Println(schema)
	}
}
