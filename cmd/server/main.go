package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/bet-simulator-service/internal/cache"
	"github.com/cypherlabdev/bet-simulator-service/internal/config"
	"github.com/cypherlabdev/bet-simulator-service/internal/gateway"
	httpHandler "github.com/cypherlabdev/bet-simulator-service/internal/handler/http"
	"github.com/cypherlabdev/bet-simulator-service/internal/messaging"
	"github.com/cypherlabdev/bet-simulator-service/internal/poller"
	"github.com/cypherlabdev/bet-simulator-service/internal/service"
	"github.com/cypherlabdev/bet-simulator-service/internal/store"
	"github.com/cypherlabdev/bet-simulator-service/internal/teams"
	"github.com/cypherlabdev/bet-simulator-service/pkg/settle"
)

func main() {
	// Load configuration (defaults + env, optional file via CONFIG_FILE)
	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting bet-simulator-service")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect Postgres
	db, err := store.Connect(cfg.Postgres.DSN, cfg.Postgres.MaxOpenConns, cfg.Postgres.ConnMaxLifetime)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Postgres")
	}
	defer db.Close()

	pgStore := store.NewPostgres(db, logger)
	if err := pgStore.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}
	logger.Info().Msg("connected to Postgres")

	// Create Redis market cache
	marketCache := cache.NewMarketCache(
		cache.MarketCacheConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			StaleTTL: cfg.Redis.TTL,
		},
		logger,
	)
	defer marketCache.Close()

	// Test Redis connection
	if err := marketCache.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	// Create odds feed client
	feed := gateway.NewClient(
		gateway.ClientConfig{
			BaseURL:  cfg.Feed.BaseURL,
			APIKey:   cfg.Feed.APIKey,
			SportKey: cfg.Feed.SportKey,
			Region:   cfg.Feed.Region,
			Timeout:  cfg.Feed.Timeout,
			DaysFrom: cfg.Feed.DaysFrom,
		},
		teams.NewResolver(),
		logger,
	)
	logger.Info().Str("sport", cfg.Feed.SportKey).Msg("feed client initialized")

	// Create bet event publisher
	var publisher service.Publisher = messaging.Nop{}
	if cfg.Kafka.Enabled {
		producer := messaging.NewKafkaProducer(
			messaging.KafkaProducerConfig{Brokers: cfg.Kafka.Brokers},
			logger,
		)
		defer producer.Close()
		publisher = producer
		logger.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka producer initialized")
	}

	// Create settlement engine and services
	engine := settle.NewEngine(logger)

	bettingService := service.NewBettingService(
		pgStore,
		marketCache,
		feed,
		publisher,
		decimal.NewFromFloat(cfg.Settlement.InitialBalance),
		logger,
	)
	settlementService := service.NewSettlementService(pgStore, feed, engine, publisher, logger)
	logger.Info().Msg("services initialized")

	// Start background poller
	p := poller.New(bettingService, settlementService, cfg.Settlement.PollInterval, logger)
	go p.Run(ctx)

	// Initialize HTTP handler
	betsHandler := httpHandler.NewBetsHandler(bettingService, settlementService, logger)

	// Setup HTTP server routes
	mux := http.NewServeMux()

	// Health and monitoring endpoints
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, marketCache, pgStore)
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Register API routes
	betsHandler.RegisterRoutes(mux)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")

	// Cancel context to stop the poller
	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set format
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "bet-simulator").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if service is ready to accept traffic
func readyHandler(w http.ResponseWriter, r *http.Request, cache *cache.MarketCache, pg *store.Postgres) {
	// Check Redis connection
	if err := cache.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Redis unavailable"))
		return
	}

	// Check Postgres connection
	if err := pg.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Postgres unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
