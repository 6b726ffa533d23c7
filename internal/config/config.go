package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
	Ledger  LedgerConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// StorageConfig selects the storage driver and holds the PostgreSQL
// connection parameters used when the driver is "postgres".
type StorageConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// AuthConfig holds JWT signing options.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LedgerConfig holds sale-ledger behavior switches.
type LedgerConfig struct {
	// StrictStock enables the guarded check-then-decrement: a sale whose
	// decrement would drive a product's stock negative is rejected instead
	// of persisted. Off reproduces the legacy behavior.
	StrictStock bool
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from
		// the environment directly.
		_ = godotenv.Load()
	}

	ttl, err := time.ParseDuration(getenvWithDefault("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8081"),
		},
		Storage: StorageConfig{
			Driver:   getenvWithDefault("STORAGE_DRIVER", "memory"),
			Host:     getenvWithDefault("DB_HOST", "localhost"),
			Port:     getenvWithDefault("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		Auth: AuthConfig{
			JWTSecret: getenvWithDefault("JWT_SECRET", "fallback-secret-key"),
			TokenTTL:  ttl,
		},
		Ledger: LedgerConfig{
			StrictStock: os.Getenv("LEDGER_STRICT_STOCK") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Storage.Driver {
	case "memory":
	case "postgres":
		switch {
		case c.Storage.User == "":
			return errors.New("DB_USER must be provided for the postgres driver")
		case c.Storage.Name == "":
			return errors.New("DB_NAME must be provided for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want memory or postgres)", c.Storage.Driver)
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
