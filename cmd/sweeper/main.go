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

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
	"github.com/suitter-labs/suitter-indexer/internal/config"
	"github.com/suitter-labs/suitter-indexer/internal/index"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
	"github.com/suitter-labs/suitter-indexer/internal/ratelimit"
	"github.com/suitter-labs/suitter-indexer/internal/store"
	"github.com/suitter-labs/suitter-indexer/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single sweep cycle and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "suitter-sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	clock := adapter.NewClock()

	var redisClient adapter.RedisClient
	if cfg.Redis.Addr != "" {
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
		}
	}

	// Initialize index store
	var kv store.KVStore
	switch cfg.Index.Backend {
	case config.INDEX_BACKEND_REDIS:
		kv = store.NewRedisStore(redisClient)
	default:
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
		}
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)
		kv = store.NewPGStore(db)
	}
	idx := index.NewIndex(kv)

	// Initialize Sui client sharing the API's rate limit budget
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

	// Initialize index health sweeper
	indexSweeper := sweeper.NewIndexHealthSweeper(sweeper.IndexHealthSweeperConfig{
		BatchSize:      cfg.IndexHealthSweeper.BatchSize,
		WorkerPoolSize: cfg.IndexHealthSweeper.WorkerPoolSize,
		Interval:       cfg.IndexHealthSweeper.Interval,
	}, idx, chain, clock)

	logger.InfoCtx(ctx, "Initialized index health sweeper",
		zap.Int("batch_size", cfg.IndexHealthSweeper.BatchSize),
		zap.Int("worker_pool_size", cfg.IndexHealthSweeper.WorkerPoolSize),
		zap.Duration("interval", cfg.IndexHealthSweeper.Interval),
	)

	if *once {
		result, err := indexSweeper.SweepOnce(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Sweep failed", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Sweep finished",
			zap.Int("checked", result.Checked),
			zap.Int("dead", result.Dead),
			zap.Int("removed", result.Removed),
		)
		return
	}

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := indexSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := indexSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
