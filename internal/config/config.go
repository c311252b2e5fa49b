package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

type Config struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// browser front-ends allowed by CORS
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// state store
	StoreBackend   string `toml:"store_backend"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	RedisNamespace string `toml:"redis_namespace"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// ai
	AIModel               string  `toml:"ai_model"`
	AIRequestsPerSecond   float64 `toml:"ai_requests_per_second"`
	AICacheSizeMB         int     `toml:"ai_cache_size_mb"`
	AIRateLimitAllowedMin int     `toml:"ai_rate_limit_allowed_per_min"`
	// jobs
	NightlyJobsCron string `toml:"nightly_jobs_cron"`
	BackupCron      string `toml:"backup_cron"`
	// notifications
	SlackChannelID string `toml:"slack_channel_id"`
	// calendar dates are computed in this location
	Timezone string `toml:"timezone"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("env [%s] not configured", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config for env [%s]: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StoreBackend == "" {
		c.StoreBackend = StoreBackendRedis
	}
	if c.RedisNamespace == "" {
		c.RedisNamespace = "lifearchitect"
	}
	if c.AIRequestsPerSecond <= 0 {
		c.AIRequestsPerSecond = 1
	}
	if c.AICacheSizeMB <= 0 {
		c.AICacheSizeMB = 10
	}
	if c.AIRateLimitAllowedMin <= 0 {
		c.AIRateLimitAllowedMin = 20
	}
	if c.NightlyJobsCron == "" {
		c.NightlyJobsCron = "5 0 * * *"
	}
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case StoreBackendRedis, StoreBackendPostgres, StoreBackendMemory:
	default:
		return fmt.Errorf("unknown store backend: %s", c.StoreBackend)
	}
	if c.Port <= 0 {
		return fmt.Errorf("port must be positive, got %d", c.Port)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the configured time zone, time.Local when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone [%s]: %w", c.Timezone, err)
	}
	return loc, nil
}
