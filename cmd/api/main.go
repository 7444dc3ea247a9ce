package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/platewise/reconcile-backend/internal/api"
	"github.com/platewise/reconcile-backend/internal/clients"
	"github.com/platewise/reconcile-backend/internal/domain/reconcile"
	"github.com/platewise/reconcile-backend/internal/domain/similarity"
	"github.com/platewise/reconcile-backend/internal/infrastructure/config"
	"github.com/platewise/reconcile-backend/internal/infrastructure/logging"
	"github.com/platewise/reconcile-backend/internal/infrastructure/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.LoadOrEnv()
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "api")

	tz, err := reconcile.NewTimezoneResolver(cfg.Reconcile.Timezone)
	if err != nil {
		logger.Error("invalid default timezone", "timezone", cfg.Reconcile.Timezone, "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to initialize storage", "path", cfg.Storage.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	svcClients, err := clients.NewClients(cfg)
	if err != nil {
		logger.Error("failed to initialize clients", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(
		tz,
		similarity.New(cfg.Reconcile.Scorer),
		reconcile.DefaultConfig(),
		store,
		svcClients.Places,
		svcClients.Extraction,
		logger,
	)
	router := server.Router(cfg.Server.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("starting reconcile API",
		"addr", addr,
		"timezone", cfg.Reconcile.Timezone,
		"scorer", cfg.Reconcile.Scorer,
	)
	if err := router.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
