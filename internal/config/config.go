// Package config reads the server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
)

// DevSecret signs tokens when JWT_SECRET is unset. Fine for local use only.
const DevSecret = "devarc-development-secret"

type Config struct {
	Port           int
	DBPath         string
	JWTSecret      string
	TokenTTL       time.Duration
	Location       *time.Location
	LogLevel       string
	LogFormat      string
	MetricsEnabled bool
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file > default.
func Load() (Config, error) {
	// A missing .env is fine; variables may come from the environment alone.
	_ = godotenv.Load()

	cfg := Config{
		DBPath:         getEnv("DB_PATH", "./data/devarc.db"),
		JWTSecret:      getEnv("JWT_SECRET", DevSecret),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		MetricsEnabled: parseBool("METRICS_ENABLED", true),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil || cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL %q", os.Getenv("TOKEN_TTL"))
	}

	cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "America/Sao_Paulo"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseBool reads an env var as bool with default.
func parseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid boolean, using default", "key", key, "value", v, "default", def)
			return def
		}
		return b
	}
	return def
}
