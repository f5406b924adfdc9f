package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freshvegies/internal/assistant"
	"freshvegies/internal/catalog"
	"freshvegies/internal/config"
	"freshvegies/internal/database"
	"freshvegies/internal/handler"
	"freshvegies/internal/model"
	"freshvegies/internal/repository"
	"freshvegies/internal/router"
	"freshvegies/internal/service"
	"freshvegies/internal/session"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting freshvegies API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize catalogue
	source, closeSource, err := newCatalogSource(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize catalogue source: %w", err)
	}
	defer closeSource()

	shops, err := catalog.NewStore(ctx, source, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	// Initialize session store
	store, closeStore, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	defer closeStore()

	sessions := session.NewManager(store, profileFromConfig(cfg.Profile), logger)

	// Initialize recipe assistant
	if cfg.Assistant.APIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set, recipe suggestions will return the fallback message")
	}
	gemini := assistant.NewGeminiClient(assistant.GeminiConfig{
		APIKey:      cfg.Assistant.APIKey,
		Model:       cfg.Assistant.Model,
		BaseURL:     cfg.Assistant.BaseURL,
		Timeout:     cfg.Assistant.Timeout,
		Temperature: cfg.Assistant.Temperature,
	}, logger)
	suggester := assistant.New(gemini, logger)

	// Initialize services
	catalogService := service.NewCatalogService(shops, logger)
	cartService := service.NewCartService(sessions, shops, logger)
	checkoutService := service.NewCheckoutService(sessions, logger)
	accountService := service.NewAccountService(sessions, logger)
	sessionService := service.NewSessionService(sessions, shops, logger)
	assistantService := service.NewAssistantService(sessions, shops, suggester, logger)

	// Initialize HTTP handlers and router
	mux := router.New(router.Handlers{
		Shop:      handler.NewShopHandler(catalogService, logger),
		Cart:      handler.NewCartHandler(cartService, checkoutService, logger),
		Account:   handler.NewAccountHandler(accountService, logger),
		Assistant: handler.NewAssistantHandler(assistantService, logger),
		Session:   handler.NewSessionHandler(sessionService, logger),
	}, logger)

	// Create HTTP server. The write timeout leaves room for the assistant call.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Assistant.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("catalog_source", cfg.Catalog.Source).
			Str("session_store", cfg.Session.Store).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// SIGHUP reloads the catalogue
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)

	// Block until we receive a signal or an error
	for {
		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case <-reload:
			if err := shops.Reload(ctx); err != nil {
				logger.Error().Err(err).Msg("catalogue reload failed, keeping current catalogue")
			}

		case sig := <-shutdown:
			logger.Info().
				Str("signal", sig.String()).
				Msg("shutdown signal received, starting graceful shutdown")

			// Create a context with timeout for shutdown
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()

			// Attempt graceful shutdown
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("failed to shutdown server gracefully")
				// Force close
				if closeErr := server.Close(); closeErr != nil {
					logger.Error().Err(closeErr).Msg("failed to close server")
				}
				return fmt.Errorf("server shutdown failed: %w", err)
			}

			logger.Info().Msg("server shutdown completed")
			return nil
		}
	}
}

// newCatalogSource builds the configured catalogue source, wrapped with the
// built-in seed as a fallback when enabled.
func newCatalogSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Source, func(), error) {
	noop := func() {}

	var primary catalog.Source
	closeFn := noop

	switch cfg.Catalog.Source {
	case config.CatalogSourceSeed:
		logger.Info().Msg("using built-in seed catalogue")
		return catalog.SeedSource{}, noop, nil

	case config.CatalogSourceFile:
		primary = catalog.NewFileSource(cfg.Catalog.File, logger)

	case config.CatalogSourceS3:
		s3Source, err := catalog.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Key, logger)
		if err != nil {
			if !cfg.Catalog.FallbackToSeed {
				return nil, nil, err
			}
			logger.Warn().Err(err).Msg("failed to initialise S3 source, falling back to seed catalogue")
			return catalog.SeedSource{}, noop, nil
		}
		primary = s3Source

	case config.CatalogSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			if !cfg.Catalog.FallbackToSeed {
				return nil, nil, err
			}
			logger.Warn().Err(err).Msg("failed to connect to database, falling back to seed catalogue")
			return catalog.SeedSource{}, noop, nil
		}
		primary = repository.NewShopRepository(pool, logger)
		closeFn = pool.Close

	default:
		return nil, nil, fmt.Errorf("unknown catalogue source: %s", cfg.Catalog.Source)
	}

	if cfg.Catalog.FallbackToSeed {
		return catalog.NewFallbackSource(primary, catalog.SeedSource{}, logger), closeFn, nil
	}
	return primary, closeFn, nil
}

// newSessionStore builds the configured session store.
func newSessionStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (session.Store, func(), error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		logger.Info().Dur("ttl", cfg.Session.TTL).Msg("using in-memory session store")
		return session.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Session.TTL).Msg("using redis session store")
	return session.NewRedisStore(client, cfg.Session.TTL), func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}, nil
}

func profileFromConfig(p config.ProfileConfig) model.UserProfile {
	return model.UserProfile{
		Name:           p.Name,
		Phone:          p.Phone,
		Email:          p.Email,
		RewardPoints:   p.RewardPoints,
		MonthlySpend:   p.MonthlySpend,
		SpendThreshold: p.SpendThreshold,
	}
}
