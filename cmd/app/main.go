package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/craftdex/companion/internal/catalog"
	"github.com/craftdex/companion/internal/config"
	"github.com/craftdex/companion/internal/handler"
	"github.com/craftdex/companion/internal/inventory"
	"github.com/craftdex/companion/internal/logger"
	"github.com/craftdex/companion/internal/planner"
	"github.com/craftdex/companion/internal/server"
	"github.com/craftdex/companion/internal/snapshot"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	cat, err := catalog.Load(cfg.ItemsPath(), cfg.RecipesPath())
	if err != nil {
		logger.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	searcher, err := catalog.NewSearcher(cat)
	if err != nil {
		logger.Error("Failed to build searcher", "error", err)
		os.Exit(1)
	}

	inventoryService := inventory.NewService(cat)
	plannerService := planner.NewService(cat, inventoryService)
	snapshotService := snapshot.NewService(plannerService)

	srv := server.NewServer(cfg.Port, cfg.SnapshotMaxBytes, cat, searcher, plannerService, inventoryService, snapshotService)

	// Run the server until interrupted, then drain in-flight requests
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
		logger.Info("Server stopped")
	}
}
