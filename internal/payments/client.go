package payments

import (
	"log"
	"sync"

	"github.com/homevine/propman/internal/config"
	"github.com/stripe/stripe-go/v76/client"
)

var (
	stripeClient *client.API
	stripeOnce   sync.Once
)

// Enabled returns true if the Stripe client is initialized
func Enabled() bool {
	return stripeClient != nil
}

// Init initializes the Stripe client (singleton pattern). A missing secret
// key leaves payments disabled rather than failing boot.
func Init(cfg *config.Config) {
	stripeOnce.Do(func() {
		if cfg.StripeSecretKey == "" {
			log.Println("Stripe secret key not configured, payments disabled")
			return
		}

		api := &client.API{}
		api.Init(cfg.StripeSecretKey, nil)
		stripeClient = api
		log.Println("Stripe client initialized")
	})
}

// Client returns the initialized Stripe client, or nil when payments are
// disabled.
func Client() *client.API {
	return stripeClient
}
