package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrdwine/catalog-engine/config"
	httpDelivery "github.com/mrdwine/catalog-engine/internal/delivery/http"
	"github.com/mrdwine/catalog-engine/internal/domain"
	"github.com/mrdwine/catalog-engine/internal/infrastructure/cache"
	"github.com/mrdwine/catalog-engine/internal/infrastructure/store"
	"github.com/mrdwine/catalog-engine/internal/usecase"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Mr D Wine catalog engine v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Store: %s", cfg.Store.Driver)
	log.Printf("Cache Type: %s (TTL %s)", cfg.Cache.Type, cfg.Cache.TTL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize infrastructure dependencies
	catalogStore, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		log.Fatalf("Failed to open catalog store: %v", err)
	}
	defer catalogStore.Close()

	lookupCache, err := newCache(ctx, cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer lookupCache.Close()

	debug := cfg.IsDevelopment()

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		catalogStore,
		lookupCache,
		usecase.CatalogServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)
	reconciler := usecase.NewReconciler(catalogService)
	clusterer := usecase.NewClusterer(usecase.ClustererConfig{EnableDebugLogging: debug})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, catalogStore, reconciler, clusterer)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

type closableCache interface {
	domain.CacheRepository
	io.Closer
}

// newCache builds the lookup cache selected by configuration
func newCache(ctx context.Context, cfg config.CacheConfig) (closableCache, error) {
	switch cfg.Type {
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	default:
		return cache.NewMemoryCache(cache.DefaultCleanupInterval), nil
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
