package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type EnvConfig struct {
	Port        string `envconfig:"PORT" default:"8083"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// AuthSecret signs the short-lived access tokens. It must be injected;
	// there is no default on purpose.
	AuthSecret string `envconfig:"AUTH_SECRET" required:"true"`

	AccessTokenTTL  int `envconfig:"ACCESS_TOKEN_TTL" default:"60"`
	RefreshTokenTTL int `envconfig:"REFRESH_TOKEN_TTL" default:"2592000"` // 30 days

	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"postgres"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int    `envconfig:"DB_MAX_CONNS" default:"5"`
}

func ValidateEnv() (*EnvConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ No .env file found")
	} else {
		log.Println("✓ Loaded .env file")
	}

	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var errors []string

	if len(cfg.AuthSecret) < 32 {
		errors = append(errors, "  ❌ AUTH_SECRET must be at least 32 characters")
	}

	if _, err := url.ParseRequestURI(cfg.CORSOrigin); err != nil {
		errors = append(errors, "  ❌ CORS_ORIGIN must be a valid URL")
	}

	if cfg.AccessTokenTTL <= 0 {
		errors = append(errors, "  ❌ ACCESS_TOKEN_TTL must be positive")
	}

	if cfg.RefreshTokenTTL <= 0 {
		errors = append(errors, "  ❌ REFRESH_TOKEN_TTL must be positive")
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("environment validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return &cfg, nil
}

func MaskSecret(secret string) string {
	if secret == "" {
		return "<not set>"
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

func (c *EnvConfig) Print(fmtr func(string, ...interface{})) {
	fmtr("📋 Configuration:\n")
	fmtr("  Environment: %s\n", c.Environment)
	fmtr("  Port: %s\n", c.Port)
	fmtr("  CORS origin: %s\n", c.CORSOrigin)
	fmtr("  Auth Secret: %s\n", MaskSecret(c.AuthSecret))
	fmtr("  Access TTL: %ds\n", c.AccessTokenTTL)
	fmtr("  Refresh TTL: %ds\n", c.RefreshTokenTTL)
	fmtr("  Database: %s@%s:%d/%s (sslmode=%s)\n", c.DBUser, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
