package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/homevine/propman/internal/config"
	"github.com/homevine/propman/internal/database"
	"github.com/homevine/propman/internal/handlers"
	"github.com/homevine/propman/internal/middleware"
	"github.com/homevine/propman/internal/payments"

	_ "github.com/homevine/propman/docs/api" // Swagger docs
)

// @title Propman API
// @version 1.0.0
// @description Property management REST service for landlords, HOAs, and portfolio investors
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/homevine/propman
// @contact.email dev@homevine.io

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed lookup rows and, on an empty database, demo data
	if cfg.SeedOnBoot {
		if err := database.Seed(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Stripe client for payment processing
	payments.Init(cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// Prometheus metrics
	prometheus := fiberprometheus.New("propman")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Create handlers
	propertyHandler := &handlers.PropertyHandler{DB: db}
	unitHandler := &handlers.UnitHandler{DB: db}
	tenantHandler := &handlers.TenantHandler{DB: db}
	ownerHandler := &handlers.OwnerHandler{DB: db}
	associationHandler := &handlers.AssociationHandler{DB: db}
	accountHandler := &handlers.AccountHandler{DB: db}
	transactionHandler := &handlers.TransactionHandler{DB: db}
	paymentHandler := &handlers.PaymentHandler{DB: db}
	photoHandler := &handlers.PhotoHandler{DB: db}
	maintenanceHandler := &handlers.MaintenanceHandler{DB: db}
	subscriptionHandler := &handlers.SubscriptionHandler{DB: db}
	portfolioHandler := &handlers.PortfolioHandler{DB: db}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}

	// Properties and addresses
	api.Get("/properties", propertyHandler.GetProperties)
	api.Post("/properties", propertyHandler.CreateProperty)
	api.Get("/properties/:id", propertyHandler.GetProperty)
	api.Put("/properties/:id", propertyHandler.UpdateProperty)
	api.Delete("/properties/:id", propertyHandler.DeleteProperty)
	api.Get("/properties/:id/addresses", propertyHandler.GetPropertyAddresses)
	api.Put("/properties/:id/addresses", propertyHandler.SetPropertyAddresses)
	api.Get("/properties/addresses/:id", propertyHandler.GetAddress)
	api.Put("/properties/addresses/:id", propertyHandler.UpdateAddress)
	api.Delete("/properties/addresses/:id", propertyHandler.DeleteAddress)

	// Units
	api.Get("/units", unitHandler.GetUnits)
	api.Post("/units", unitHandler.CreateUnit)
	api.Get("/units/:id", unitHandler.GetUnit)
	api.Put("/units/:id", unitHandler.UpdateUnit)
	api.Delete("/units/:id", unitHandler.DeleteUnit)

	// Tenants
	api.Get("/tenants", tenantHandler.GetTenants)
	api.Post("/tenants", tenantHandler.CreateTenant)
	api.Get("/tenants/:id", tenantHandler.GetTenant)
	api.Put("/tenants/:id", tenantHandler.UpdateTenant)
	api.Delete("/tenants/:id", tenantHandler.DeleteTenant)

	// Owners
	api.Get("/owners", ownerHandler.GetOwners)
	api.Post("/owners", ownerHandler.CreateOwner)
	api.Get("/owners/:id", ownerHandler.GetOwner)
	api.Put("/owners/:id", ownerHandler.UpdateOwner)
	api.Delete("/owners/:id", ownerHandler.DeleteOwner)

	// Associations and board members
	api.Get("/associations", associationHandler.GetAssociations)
	api.Post("/associations", associationHandler.CreateAssociation)
	api.Get("/associations/:id", associationHandler.GetAssociation)
	api.Put("/associations/:id", associationHandler.UpdateAssociation)
	api.Delete("/associations/:id", associationHandler.DeleteAssociation)
	api.Get("/board-members", associationHandler.GetBoardMembers)
	api.Post("/board-members", associationHandler.CreateBoardMember)
	api.Get("/board-members/:id", associationHandler.GetBoardMember)
	api.Put("/board-members/:id", associationHandler.UpdateBoardMember)
	api.Delete("/board-members/:id", associationHandler.DeleteBoardMember)

	// Ledger accounts
	api.Get("/account-types", accountHandler.GetAccountTypes)
	api.Post("/account-types", accountHandler.CreateAccountType)
	api.Get("/account-types/:id", accountHandler.GetAccountType)
	api.Put("/account-types/:id", accountHandler.UpdateAccountType)
	api.Delete("/account-types/:id", accountHandler.DeleteAccountType)
	api.Get("/accounts", accountHandler.GetAccounts)
	api.Post("/accounts", accountHandler.CreateAccount)
	api.Get("/accounts/:id", accountHandler.GetAccount)
	api.Put("/accounts/:id", accountHandler.UpdateAccount)
	api.Delete("/accounts/:id", accountHandler.DeleteAccount)

	// Ledger transactions
	api.Get("/transaction-types", transactionHandler.GetTransactionTypes)
	api.Post("/transaction-types", transactionHandler.CreateTransactionType)
	api.Get("/transaction-types/:id", transactionHandler.GetTransactionType)
	api.Put("/transaction-types/:id", transactionHandler.UpdateTransactionType)
	api.Delete("/transaction-types/:id", transactionHandler.DeleteTransactionType)
	api.Get("/transactions", transactionHandler.GetTransactions)
	api.Post("/transactions", transactionHandler.CreateTransaction)
	api.Get("/transactions/:id", transactionHandler.GetTransaction)
	api.Put("/transactions/:id", transactionHandler.UpdateTransaction)
	api.Delete("/transactions/:id", transactionHandler.DeleteTransaction)

	// Rent payments
	api.Get("/payments", paymentHandler.GetPayments)
	api.Post("/payments", paymentHandler.CreatePayment)
	api.Get("/payments/:id", paymentHandler.GetPayment)
	api.Put("/payments/:id", paymentHandler.UpdatePayment)
	api.Delete("/payments/:id", paymentHandler.DeletePayment)

	// Photos
	api.Get("/photos", photoHandler.GetPhotos)
	api.Post("/photos", photoHandler.CreatePhoto)
	api.Get("/photos/:id", photoHandler.GetPhoto)
	api.Put("/photos/:id", photoHandler.UpdatePhoto)
	api.Delete("/photos/:id", photoHandler.DeletePhoto)

	// Maintenance tickets
	api.Get("/maintenance", maintenanceHandler.GetMaintenanceTickets)
	api.Post("/maintenance", maintenanceHandler.CreateMaintenanceTicket)
	api.Get("/maintenance/:id", maintenanceHandler.GetMaintenanceTicket)
	api.Put("/maintenance/:id", maintenanceHandler.UpdateMaintenanceTicket)
	api.Delete("/maintenance/:id", maintenanceHandler.DeleteMaintenanceTicket)

	// Billing plans and subscriptions
	api.Get("/subscription/plans", subscriptionHandler.GetSubscriptionPlans)
	api.Post("/subscription/plans", subscriptionHandler.CreateSubscriptionPlan)
	api.Get("/subscription/plans/:id", subscriptionHandler.GetSubscriptionPlan)
	api.Put("/subscription/plans/:id", subscriptionHandler.UpdateSubscriptionPlan)
	api.Delete("/subscription/plans/:id", subscriptionHandler.DeleteSubscriptionPlan)
	api.Get("/subscriptions", subscriptionHandler.GetSubscriptions)
	api.Post("/subscriptions", subscriptionHandler.CreateSubscription)
	api.Get("/subscriptions/:id", subscriptionHandler.GetSubscription)
	api.Put("/subscriptions/:id", subscriptionHandler.UpdateSubscription)
	api.Delete("/subscriptions/:id", subscriptionHandler.DeleteSubscription)

	// Portfolios
	api.Get("/portfolios", portfolioHandler.GetPortfolios)
	api.Post("/portfolios", portfolioHandler.CreatePortfolio)
	api.Get("/portfolios/:id", portfolioHandler.GetPortfolio)
	api.Put("/portfolios/:id", portfolioHandler.UpdatePortfolio)
	api.Delete("/portfolios/:id", portfolioHandler.DeletePortfolio)
	api.Post("/portfolios/:id/properties/:propertyId", portfolioHandler.AttachProperty)
	api.Delete("/portfolios/:id/properties/:propertyId", portfolioHandler.DetachProperty)

	// Health
	api.Get("/health", healthHandler.GetHealth)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "resource not found",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
