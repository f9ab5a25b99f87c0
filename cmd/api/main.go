// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	redisinfra "github.com/your-org/storefront/internal/infrastructure/redis"
	"github.com/your-org/storefront/internal/infrastructure/seed"
	"github.com/your-org/storefront/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Build the catalog store and load the seed catalog
	catalogStore := catalog.NewStore(cfg.Catalog.PageSize, cfg.Catalog.MaxPrice)
	if err := catalogStore.LoadCatalog(seed.Products()); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Per-session cart registry
	cartRegistry := cart.NewRegistry()

	// Connect to Redis only when the rate limiter needs it
	var redisClient *redisinfra.Client
	if cfg.RateLimit.Enabled {
		redisClient, err = redisinfra.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		if err := redisClient.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}
	}

	// Create and start HTTP server
	var server *http.Server
	if redisClient != nil {
		server = http.NewServer(cfg, catalogStore, cartRegistry, redisClient.GetClient())
	} else {
		server = http.NewServer(cfg, catalogStore, cartRegistry, nil)
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("Server shutdown completed")
}
