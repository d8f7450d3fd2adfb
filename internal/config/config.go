package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "STOREFRONT"

const (
	SlotBackendPostgres = "postgres"
	SlotBackendRedis    = "redis"
	SlotBackendSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig
	Slot     SlotConfig
	DB       DBConfig
	Redis    RedisConfig
	SQLite   SQLiteConfig
	Commerce CommerceConfig
	Coupons  CouponsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Slot.Backend) {
	case SlotBackendPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("db dsn is required for the %s slot", SlotBackendPostgres)
		}
	case SlotBackendRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("redis url or address is required for the %s slot", SlotBackendRedis)
		}
	case SlotBackendSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("sqlite path is required for the %s slot", SlotBackendSQLite)
		}
	default:
		return fmt.Errorf("unknown slot backend %q", c.Slot.Backend)
	}
	return nil
}

type AppConfig struct {
	Env         string `envconfig:"ENV" default:"dev"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`
	Currency    string `envconfig:"CURRENCY" default:"INR"`
	MetricsFile string `envconfig:"METRICS_FILE"`
}

type SlotConfig struct {
	Backend string        `envconfig:"BACKEND" default:"sqlite"`
	TTL     time.Duration `envconfig:"TTL" default:"0s"`
}

type DBConfig struct {
	DSN string `envconfig:"DSN"`
}

type RedisConfig struct {
	URL          string        `envconfig:"URL"`
	Address      string        `envconfig:"ADDR"`
	Password     string        `envconfig:"PASSWORD"`
	DB           int           `envconfig:"DB" default:"0"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"5s"`
}

type SQLiteConfig struct {
	Path string `envconfig:"PATH" default:"storefront.db"`
}

type CommerceConfig struct {
	BaseURL string        `envconfig:"BASE_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

type CouponsConfig struct {
	// CatalogPath points to a YAML coupon catalog; empty uses the built-in one.
	CatalogPath string `envconfig:"CATALOG_PATH"`
}
