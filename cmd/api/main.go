package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
	"github.com/suitter-labs/suitter-indexer/internal/api/middleware"
	"github.com/suitter-labs/suitter-indexer/internal/api/server"
	"github.com/suitter-labs/suitter-indexer/internal/bridge"
	"github.com/suitter-labs/suitter-indexer/internal/config"
	"github.com/suitter-labs/suitter-indexer/internal/index"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/messaging"
	"github.com/suitter-labs/suitter-indexer/internal/providers/jetstream"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
	"github.com/suitter-labs/suitter-indexer/internal/query"
	"github.com/suitter-labs/suitter-indexer/internal/ratelimit"
	"github.com/suitter-labs/suitter-indexer/internal/store"
	"github.com/suitter-labs/suitter-indexer/internal/suitter"
	"github.com/suitter-labs/suitter-indexer/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "suitter-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Suitter API")

	clock := adapter.NewClock()
	origin := uuid.NewString()

	// Redis backs the redis index and the shared rate limit budget
	var redisClient adapter.RedisClient
	if cfg.Index.Backend == config.INDEX_BACKEND_REDIS || cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisClient.Ping(ctx); err != nil {
			if cfg.Index.Backend == config.INDEX_BACKEND_REDIS {
				logger.FatalCtx(ctx, "Failed to connect to redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
			}
			logger.WarnCtx(ctx, "Redis unreachable, rate limiting stays process-local", zap.Error(err))
			_ = redisClient.Close()
			redisClient = nil
		} else {
			defer func() { _ = redisClient.Close() }()
			logger.InfoCtx(ctx, "Connected to redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// Initialize index store
	var kv store.KVStore
	switch cfg.Index.Backend {
	case config.INDEX_BACKEND_POSTGRES:
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
		}
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		if err := store.Migrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)
		kv = store.NewPGStore(db)
	case config.INDEX_BACKEND_REDIS:
		kv = store.NewRedisStore(redisClient)
	default:
		logger.WarnCtx(ctx, "Using in-memory index, buckets are lost on restart")
		kv = store.NewMemoryStore()
	}
	idx := index.NewIndex(kv)

	// Initialize Sui client behind the rate limiter
	rpcURL := cfg.Sui.RPCURL
	if rpcURL == "" {
		rpcURL, err = sui.FullnodeURL(cfg.Sui.Network)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to resolve Sui fullnode", zap.Error(err))
		}
	}
	var distributed adapter.RedisRateLimiter
	if redisClient != nil {
		distributed = redisClient.NewRateLimiter()
	}
	limiter, err := ratelimit.NewLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.Sui.RateLimit.RequestsPerSecond,
		Burst:             cfg.Sui.RateLimit.Burst,
		KeyPrefix:         cfg.Sui.RateLimit.KeyPrefix,
	}, distributed, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	// every attempt, including backoff replays, draws from the shared budget
	rpcHTTPClient := &http.Client{
		Timeout:   cfg.Sui.RequestTimeout,
		Transport: adapter.NewRetryTransport(ratelimit.NewTransport(nil, limiter, "sui:"+cfg.Sui.Network), adapter.RetryConfig{}),
	}
	chain := sui.NewClient(adapter.NewSuiAPI(rpcURL, rpcHTTPClient))
	logger.InfoCtx(ctx, "Configured Sui client", zap.String("rpc_url", rpcURL), zap.String("package_id", cfg.Sui.PackageID))

	// Initialize wallet bridge
	w := wallet.NewBridge(wallet.BridgeConfig{
		URL:     cfg.Wallet.URL,
		APIKey:  cfg.Wallet.APIKey,
		Address: cfg.Wallet.Address,
	}, adapter.NewHTTPClient(cfg.Wallet.WriteTimeout, adapter.RetryConfig{}))
	if w.Address() == "" {
		logger.WarnCtx(ctx, "Wallet address not configured, writes will be rejected")
	}

	// Initialize query adapter
	queryAdapter := query.NewAdapter(query.Config{
		PackageID:      cfg.Sui.PackageID,
		Module:         cfg.Sui.Module,
		RequestTimeout: cfg.Sui.RequestTimeout,
		BatchSize:      cfg.Sui.BatchSize,
		Concurrency:    cfg.Sui.Concurrency,
	}, chain)

	// Index events fan out to peer instances when NATS is configured
	publisher := messaging.NewNoopPublisher()
	var eventBridge bridge.Bridge
	if cfg.NATS.Enabled() {
		natsJS := adapter.NewNatsJetStream()
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			StreamMaxAge:   cfg.NATS.StreamMaxAge,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, natsJS)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create index event publisher", zap.Error(err))
		}

		// every instance needs every event, so an unnamed consumer stays ephemeral
		eventBridge, err = bridge.NewBridge(bridge.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			AckWaitTimeout: cfg.NATS.AckWait,
			MaxDeliver:     cfg.NATS.MaxDeliver,
			Origin:         origin,
		}, natsJS, idx)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create index event bridge", zap.Error(err))
		}
		defer eventBridge.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL), zap.String("origin", origin))
	}

	service := suitter.New(suitter.Config{
		PackageID:    cfg.Sui.PackageID,
		Module:       cfg.Sui.Module,
		ReadTimeout:  cfg.Sui.RequestTimeout,
		WriteTimeout: cfg.Wallet.WriteTimeout,
		Origin:       origin,
	}, chain, w, idx, queryAdapter, publisher, clock)
	defer service.Close()

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, service)

	errCh := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()
	if eventBridge != nil {
		go func() {
			if err := eventBridge.Run(ctx); err != nil && ctx.Err() == nil {
				errCh <- fmt.Errorf("event bridge stopped: %w", err)
			}
		}()
	}

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}
