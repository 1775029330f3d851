// Package main is the entry point for the CamStore catalog API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"camstore/internal/auth"
	"camstore/internal/cache"
	"camstore/internal/config"
	"camstore/internal/database"
	"camstore/internal/handlers"
	"camstore/internal/middleware"
	"camstore/internal/router"
	"camstore/internal/storage"
	"camstore/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the sitemap cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()
	sitemapCache := cache.NewSitemapCache(valkeyClient, cache.DefaultSitemapTTL)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	navbarStore := store.NewNavbarCategoryStore(db)
	categoryStore := store.NewCategoryStore(db)
	subCategoryStore := store.NewSubCategoryStore(db)
	productStore := store.NewProductStore(db)
	contactStore := store.NewContactStore(db)

	// Connect to S3-compatible object storage (optional).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured; media uploads disabled")
	}

	// Admin token manager. Cookies are Secure everywhere except dev.
	secureCookies := !cfg.IsDev()
	tokens := auth.NewTokens(cfg.JWTSecret, secureCookies)

	// Rate limiters for the public contact form and admin login.
	contactLimiter := middleware.NewRateLimiter(5, time.Minute)
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer contactLimiter.Stop()
	defer loginLimiter.Stop()

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(
		navbarStore, categoryStore, subCategoryStore, productStore,
		contactStore, sitemapCache, cfg.SiteBaseURL,
	)
	adminHandlers := handlers.NewAdmin(
		navbarStore, categoryStore, subCategoryStore, productStore,
		contactStore, sitemapCache,
	)
	authHandlers := handlers.NewAuth(userStore, tokens, secureCookies)
	mediaHandlers := handlers.NewMedia(storageClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(
		tokens,
		router.Limiters{Contact: contactLimiter, Login: loginLimiter},
		publicHandlers, adminHandlers, authHandlers, mediaHandlers,
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
