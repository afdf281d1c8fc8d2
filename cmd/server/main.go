// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fakestore/storefront-backend/internal/accounts"
	"github.com/fakestore/storefront-backend/internal/config"
	"github.com/fakestore/storefront-backend/internal/database"
	"github.com/fakestore/storefront-backend/internal/i18n"
	"github.com/fakestore/storefront-backend/internal/router"
	"github.com/fakestore/storefront-backend/internal/services"
	"github.com/fakestore/storefront-backend/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	// Select the durable state backend
	durable, repo, cleanup, err := initStorage(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage")
	}
	defer cleanup()

	// The scoped store holds per-process state like the applied coupon
	scoped := storage.NewMemoryStore()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := accounts.SeedDemoAccounts(ctx, repo); err != nil {
		logrus.WithError(err).Fatal("Failed to seed demo accounts")
	}
	cancel()

	// Fetch the catalog snapshot once at startup
	catalog := services.NewCatalogService(cfg.Catalog.URL, &http.Client{
		Timeout: time.Duration(cfg.Catalog.FetchTimeout) * time.Second,
	})
	fetchCtx, fetchCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Catalog.FetchTimeout)*time.Second)
	if err := catalog.Load(fetchCtx); err != nil {
		// The server still comes up with an empty catalog
		logrus.WithError(err).Warn("Failed to load catalog, serving empty catalog")
	}
	fetchCancel()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(cfg, catalog, durable, scoped, repo)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithField("port", cfg.Server.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("Server forced to shutdown")
	}

	logrus.Info("Server exited")
}

// initStorage builds the durable blob store and the account repository for
// the configured backend. The returned cleanup releases backend resources.
func initStorage(cfg *config.Config) (storage.Store, accounts.Repository, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			database.Close(db)
			return nil, nil, nil, err
		}
		cleanup := func() { database.Close(db) }
		return storage.NewGormStore(db), accounts.NewGormRepository(db), cleanup, nil

	case config.StorageBackendRedis:
		client, err := storage.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		store := storage.NewRedisStore(client, "storefront")
		cleanup := func() { client.Close() }
		return store, accounts.NewBlobRepository(store), cleanup, nil

	default:
		store := storage.NewMemoryStore()
		return store, accounts.NewBlobRepository(store), func() {}, nil
	}
}
