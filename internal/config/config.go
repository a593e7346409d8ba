package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Index backends
const (
	INDEX_BACKEND_POSTGRES = "postgres"
	INDEX_BACKEND_REDIS    = "redis"
	INDEX_BACKEND_MEMORY   = "memory"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m"
}

// RedisConfig holds redis configuration, used by the redis index backend and the shared rate limiter
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// IndexConfig selects where index buckets are persisted
type IndexConfig struct {
	Backend string `mapstructure:"backend"`
}

// RateLimitConfig holds the request budget for the Sui fullnode
type RateLimitConfig struct {
	RequestsPerSecond int    `mapstructure:"requests_per_second"`
	Burst             int    `mapstructure:"burst"`
	KeyPrefix         string `mapstructure:"key_prefix"`
}

// SuiConfig holds Sui network and contract configuration
type SuiConfig struct {
	Network        string          `mapstructure:"network"`
	RPCURL         string          `mapstructure:"rpc_url"`
	PackageID      string          `mapstructure:"package_id"`
	Module         string          `mapstructure:"module"`
	RequestTimeout time.Duration   `mapstructure:"request_timeout"`
	BatchSize      int             `mapstructure:"batch_size"`
	Concurrency    int             `mapstructure:"concurrency"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

// WalletConfig holds wallet bridge configuration
type WalletConfig struct {
	URL          string        `mapstructure:"url"`
	APIKey       string        `mapstructure:"api_key"`
	Address      string        `mapstructure:"address"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	StreamMaxAge   time.Duration `mapstructure:"stream_max_age"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// Enabled reports whether index events are fanned out over NATS
func (c NATSConfig) Enabled() bool {
	return c.URL != ""
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int      `mapstructure:"idle_timeout"`  // in seconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration for write routes
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// IndexHealthSweeperConfig holds configuration for the index health sweeper
type IndexHealthSweeperConfig struct {
	BatchSize      int           `mapstructure:"batch_size"`
	WorkerPoolSize int           `mapstructure:"worker_pool_size"`
	Interval       time.Duration `mapstructure:"interval"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Database   DatabaseConfig `mapstructure:"database"`
	Redis      RedisConfig    `mapstructure:"redis"`
	Index      IndexConfig    `mapstructure:"index"`
	Sui        SuiConfig      `mapstructure:"sui"`
	Wallet     WalletConfig   `mapstructure:"wallet"`
	NATS       NATSConfig     `mapstructure:"nats"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig         `mapstructure:",squash"`
	Database           DatabaseConfig           `mapstructure:"database"`
	Redis              RedisConfig              `mapstructure:"redis"`
	Index              IndexConfig              `mapstructure:"index"`
	Sui                SuiConfig                `mapstructure:"sui"`
	IndexHealthSweeper IndexHealthSweeperConfig `mapstructure:"index_health_sweeper"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("wallet.write_timeout", "45s")
	v.SetDefault("nats.stream_name", "SUITTER_INDEX")
	v.SetDefault("nats.stream_max_age", "24h")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 3)
	setCommonDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateCommon(cfg.Index, cfg.Database, cfg.Redis, cfg.Sui); err != nil {
		return nil, err
	}
	if cfg.Wallet.URL == "" {
		return nil, errors.New("wallet.url is required")
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("index_health_sweeper.batch_size", 50)
	v.SetDefault("index_health_sweeper.worker_pool_size", 4)
	v.SetDefault("index_health_sweeper.interval", "1h")
	setCommonDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Index.Backend == INDEX_BACKEND_MEMORY {
		return nil, errors.New("index.backend memory cannot be swept from a separate process")
	}
	if err := validateCommon(cfg.Index, cfg.Database, cfg.Redis, cfg.Sui); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("index.backend", INDEX_BACKEND_POSTGRES)
	v.SetDefault("sui.network", "testnet")
	v.SetDefault("sui.module", "suitter")
	v.SetDefault("sui.request_timeout", "10s")
	v.SetDefault("sui.batch_size", 50)
	v.SetDefault("sui.concurrency", 4)
	v.SetDefault("sui.rate_limit.requests_per_second", 20)
	v.SetDefault("sui.rate_limit.burst", 40)
	v.SetDefault("sui.rate_limit.key_prefix", "suitter:limiter:")
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func validateCommon(idx IndexConfig, db DatabaseConfig, rc RedisConfig, sui SuiConfig) error {
	switch idx.Backend {
	case INDEX_BACKEND_POSTGRES:
		if db.Host == "" {
			return errors.New("database.host is required")
		}
		if db.DBName == "" {
			return errors.New("database.dbname is required")
		}
	case INDEX_BACKEND_REDIS:
		if rc.Addr == "" {
			return errors.New("redis.addr is required")
		}
	case INDEX_BACKEND_MEMORY:
	default:
		return fmt.Errorf("unknown index.backend %q", idx.Backend)
	}

	if sui.PackageID == "" {
		return errors.New("sui.package_id is required")
	}
	if sui.Network == "" && sui.RPCURL == "" {
		return errors.New("sui.network or sui.rpc_url is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("SUITTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// Index
		"index.backend",
		// Sui
		"sui.network",
		"sui.rpc_url",
		"sui.package_id",
		"sui.module",
		"sui.request_timeout",
		"sui.batch_size",
		"sui.concurrency",
		"sui.rate_limit.requests_per_second",
		"sui.rate_limit.burst",
		"sui.rate_limit.key_prefix",
		// Wallet
		"wallet.url",
		"wallet.api_key",
		"wallet.address",
		"wallet.write_timeout",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.stream_max_age",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Index Health Sweeper
		"index_health_sweeper.batch_size",
		"index_health_sweeper.worker_pool_size",
		"index_health_sweeper.interval",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
