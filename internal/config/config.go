package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// BallDontLie API
	BallDontLieAPIKey      string        `envconfig:"BALLDONTLIE_API_KEY" required:"true"`
	BallDontLieBaseURL     string        `envconfig:"BALLDONTLIE_BASE_URL" default:"https://api.balldontlie.io/nfl/v1"`
	BallDontLieTimeout     time.Duration `envconfig:"BALLDONTLIE_TIMEOUT" default:"30s"`
	BallDontLieMinInterval time.Duration `envconfig:"BALLDONTLIE_MIN_INTERVAL" default:"110ms"`
	BallDontLieMaxRetries  int           `envconfig:"BALLDONTLIE_MAX_RETRIES" default:"3"`
	BallDontLieRetryDelay  time.Duration `envconfig:"BALLDONTLIE_RETRY_DELAY" default:"500ms"`
	BallDontLiePerPage     int           `envconfig:"BALLDONTLIE_PER_PAGE" default:"100"`

	// Database
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"nflgoat"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"nflgoat_user"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSL_MODE" default:"disable"`

	// Redis
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Ingestion
	Seasons         []int `envconfig:"INGEST_SEASONS" default:"2024,2025"`
	ChunkSize       int   `envconfig:"INGEST_CHUNK_SIZE" default:"500"`
	AbortThreshold  int   `envconfig:"INGEST_ABORT_THRESHOLD" default:"25"`
	OddsGameChunk   int   `envconfig:"INGEST_ODDS_GAME_CHUNK" default:"50"`
	IncludeInactive bool  `envconfig:"INGEST_INCLUDE_INACTIVE" default:"false"`

	// Advanced stats also pull a postseason aggregate when enabled
	AdvancedPostseason bool `envconfig:"INGEST_ADVANCED_POSTSEASON" default:"false"`

	// Scheduler
	EnableScheduler     bool          `envconfig:"ENABLE_SCHEDULER" default:"true"`
	InitialSyncEnabled  bool          `envconfig:"INITIAL_SYNC_ENABLED" default:"true"`
	NightlySyncCron     string        `envconfig:"NIGHTLY_SYNC_CRON" default:"0 2 * * *"`
	OddsRefreshInterval time.Duration `envconfig:"ODDS_REFRESH_INTERVAL" default:"15m"`

	// Caching TTL (in seconds)
	CacheTTLTeams   int `envconfig:"CACHE_TTL_TEAMS" default:"86400"`   // 24 hours
	CacheTTLSummary int `envconfig:"CACHE_TTL_SUMMARY" default:"86400"` // 24 hours

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"true"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if in development mode
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BallDontLieAPIKey == "" {
		return fmt.Errorf("BALLDONTLIE_API_KEY is required")
	}

	if c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_PASSWORD is required")
	}

	if c.ChunkSize <= 0 {
		return fmt.Errorf("INGEST_CHUNK_SIZE must be positive")
	}

	if c.AbortThreshold < 0 {
		return fmt.Errorf("INGEST_ABORT_THRESHOLD must not be negative")
	}

	if len(c.Seasons) == 0 {
		return fmt.Errorf("INGEST_SEASONS must name at least one season")
	}

	return nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MustLoad loads configuration or panics on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
