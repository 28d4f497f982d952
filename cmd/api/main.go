package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bostany/storefront/internal/catalog"
	"github.com/bostany/storefront/internal/checkout"
	"github.com/bostany/storefront/internal/config"
	"github.com/bostany/storefront/internal/database"
	"github.com/bostany/storefront/internal/handlers"
	"github.com/bostany/storefront/internal/logger"
	"github.com/bostany/storefront/internal/middleware"
	"github.com/bostany/storefront/internal/pricing"
	"github.com/bostany/storefront/internal/routes"
	"github.com/bostany/storefront/internal/session"
	"github.com/bostany/storefront/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	cfg := config.LoadEnv()

	// 1. --- Logger ---
	appLogger, err := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. --- Catalog ---
	store, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		appLogger.Fatal("Could not load catalog", zap.Error(err))
	}
	appLogger.Info("Catalog loaded",
		zap.Int("products", len(store.AllProducts())),
		zap.Int("categories", len(store.Categories())),
		zap.Int("brands", len(store.Brands())),
	)

	// 3. --- Wishlist Storage ---
	kv, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Could not open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStorage()
	appLogger.Info("Storage ready", zap.String("driver", cfg.Storage.Driver))

	// 4. --- Sessions ---
	sessions := session.NewManager(kv, session.Options{
		IdleTTL:        cfg.Session.IdleTTL,
		SearchDebounce: cfg.Server.SearchDebounce,
		Checkout: checkout.Options{
			StrictEdits: cfg.Checkout.StrictEdits,
			SettleDelay: cfg.Checkout.SettleDelay,
			Rates: pricing.Rates{
				FlatFee:               cfg.Pricing.FlatFee,
				FreeShippingThreshold: cfg.Pricing.FreeShippingThreshold,
				CODFee:                cfg.Pricing.CODFee,
			},
		},
	}, appLogger)

	// --- Background Worker ---
	// Evicts idle sessions so abandoned carts do not pile up in memory.
	go sessions.RunSweeper(ctx, sweepInterval(cfg.Session.IdleTTL))

	// --- Router Setup ---
	app := handlers.New(store, sessions, appLogger)
	router := routes.SetupRouter(app, routes.Config{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Session: middleware.SessionConfig{
			Secret: []byte(cfg.Session.Secret),
			TTL:    cfg.Session.TTL,
			Secure: !cfg.IsDevelopment(),
		},
	})

	// --- Start Server ---
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	srv := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Starting Bostany storefront API", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func loadCatalog(path string) (*catalog.Store, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// openStorage connects the configured wishlist backend. The returned func
// releases it.
func openStorage(ctx context.Context, cfg *config.Config) (storage.KV, func(), error) {
	switch cfg.Storage.Driver {
	case storage.DriverMemory, "":
		return storage.NewMemory(), func() {}, nil

	case storage.DriverMySQL:
		db, err := database.OpenMySQL(ctx, database.MySQLConfig{
			DSN:             cfg.MySQL.DSN,
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		kv := storage.NewMySQL(db)
		if err := kv.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return kv, func() { db.Close() }, nil

	case storage.DriverRedis:
		client, err := database.OpenRedis(ctx, database.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(client), func() { client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", storage.ErrUnknownDriver, cfg.Storage.Driver)
}

func sweepInterval(idle time.Duration) time.Duration {
	if idle <= 0 {
		return time.Hour
	}
	if interval := idle / 4; interval > time.Minute {
		return interval
	}
	return time.Minute
}
