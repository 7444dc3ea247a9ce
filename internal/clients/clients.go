// Package clients provides centralized client initialization from
// configuration, so commands do not duplicate service wiring.
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	clients, err := clients.NewClients(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Use clients.Extraction, clients.Places.
package clients

import (
	"fmt"

	"github.com/platewise/reconcile-backend/internal/adapters/extraction"
	"github.com/platewise/reconcile-backend/internal/adapters/places"
	"github.com/platewise/reconcile-backend/internal/infrastructure/config"
)

// Clients holds all initialized service clients
type Clients struct {
	Extraction *extraction.Client
	Places     *places.Client
}

// NewClients initializes all service clients from configuration.
// Returns an error when a required base URL is missing.
func NewClients(cfg *config.Config) (*Clients, error) {
	if cfg.Extraction.BaseURL == "" {
		return nil, fmt.Errorf("extraction base URL is not configured")
	}
	if cfg.Places.BaseURL == "" {
		return nil, fmt.Errorf("places base URL is not configured")
	}

	return &Clients{
		Extraction: extraction.NewClient(cfg.Extraction.BaseURL, cfg.Extraction.APIKey),
		Places:     places.NewClient(cfg.Places.BaseURL, cfg.Places.APIKey),
	}, nil
}
