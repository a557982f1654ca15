package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr string `conf:"default::8080,env:HTTP_ADDR"`

	// Redis; leave empty to run without the bill summary cache
	RedisURL string `conf:"env:REDIS_URL"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat   string `conf:"default:json,enum:json|text,env:LOG_FORMAT"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Billing
	NodeID               int64  `conf:"default:1,env:NODE_ID"`
	SeedSampleData       bool   `conf:"default:true,env:SEED_SAMPLE_DATA"`
	CustomerSwitchPolicy string `conf:"default:preserve,enum:preserve|detach,env:CUSTOMER_SWITCH_POLICY"`

	// CORS: comma-separated list of allowed origins, * allows all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:cartshop,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces safety requirements when ENVIRONMENT=production.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak customer data)")
	}

	if strings.TrimSpace(cfg.CORSAllowedOrigins) == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production")
	}

	if cfg.NodeID < 0 || cfg.NodeID > 1023 {
		errs = append(errs, fmt.Sprintf("NODE_ID must be between 0 and 1023 (got %d)", cfg.NodeID))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
