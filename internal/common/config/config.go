package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Storage backends understood by STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port         int    `env:"PORT" envDefault:"5000"`
		Origin       string `env:"ORIGIN" envDefault:"*"`
		StaticDir    string `env:"STATIC_DIR"`
		LegacyRoutes bool   `env:"LEGACY_ROUTES" envDefault:"true"`
	}

	Storage struct {
		Backend     string `env:"STORAGE_BACKEND" envDefault:"file"`
		DataDir     string `env:"DATA_DIR" envDefault:"data"`
		DatabaseURL string `env:"DATABASE_URL"`
		SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/scratchcard.db"`
	}

	Redis struct {
		Host      string        `env:"REDIS_HOST" envDefault:"localhost"`
		Port      int           `env:"REDIS_PORT" envDefault:"6379"`
		Password  string        `env:"REDIS_PASSWORD" envDefault:""`
		DB        int           `env:"REDIS_DB" envDefault:"0"`
		KeyPrefix string        `env:"REDIS_KEY_PREFIX" envDefault:"scratchcard:"`
		LockTTL   time.Duration `env:"REDIS_LOCK_TTL" envDefault:"5s"`
		LockWait  time.Duration `env:"REDIS_LOCK_WAIT" envDefault:"2s"`
	}

	Catalog struct {
		// JSON or YAML file with the seed offers. Built-in catalog when empty.
		SeedFile string `env:"CATALOG_SEED_FILE"`
	}

	Admin struct {
		Token       string        `env:"ADMIN_TOKEN"`
		BotToken    string        `env:"BOT_TOKEN"`
		AdminIDs    []int64       `env:"ADMIN_IDS" envSeparator:","`
		InitDataTTL time.Duration `env:"INIT_DATA_TTL" envDefault:"24h"`
	}

	Metrics struct {
		Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
	}
}

// RedisAddr returns host:port of the configured Redis instance.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Load reads an optional .env file and parses the environment into Config.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	return Parse()
}

// Parse builds Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendSQLite:
	case BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid PORT: %d", c.Server.Port)
	}
	if c.Admin.BotToken != "" && len(c.Admin.AdminIDs) == 0 {
		return fmt.Errorf("ADMIN_IDS is required when BOT_TOKEN is set")
	}
	return nil
}

// AdminAuthEnabled reports whether admin routes require credentials.
func (c *Config) AdminAuthEnabled() bool {
	return c.Admin.Token != "" || c.Admin.BotToken != ""
}
