package app

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	BaseURL string // API root, e.g. http://localhost:8000/api

	DataDir         string // Directory for local state (default: ~/.agromaps)
	CredentialsFile string // Optional: explicit path to the credential database
	SealKeyFile     string // Optional: path to key file; set -> tokens sealed at rest
	StoreDriver     string // Credential store driver (sqlite, memory) (default: sqlite)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: text)

	HTTPTimeout        time.Duration // Per-request timeout (default: 15s)
	RequestsPerSecond  float64       // Client-side rate limit (default: 10)
	RequestBurst       int           // Rate limiter burst (default: 20)
	BreakerMaxFailures int           // Consecutive failures before the circuit opens (default: 5)
	BreakerOpenFor     time.Duration // Open-circuit duration (default: 30s)
}

func LoadConfig() Config {
	cfg := Config{
		BaseURL:            getEnvOrDefault("AGROMAPS_API_BASE_URL", "http://localhost:8000/api"),
		DataDir:            os.Getenv("AGROMAPS_DATA_DIR"),
		CredentialsFile:    os.Getenv("AGROMAPS_CREDENTIALS_FILE"),
		SealKeyFile:        os.Getenv("AGROMAPS_SEAL_KEY_FILE"),
		StoreDriver:        getEnvOrDefault("AGROMAPS_STORE", "sqlite"),
		Env:                getEnvOrDefault("ENV", "dev"),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "text"),
		HTTPTimeout:        getEnvDurationOrDefault("AGROMAPS_HTTP_TIMEOUT", 15*time.Second),
		RequestsPerSecond:  getEnvFloatOrDefault("AGROMAPS_RATE_RPS", 10),
		RequestBurst:       getEnvIntOrDefault("AGROMAPS_RATE_BURST", 20),
		BreakerMaxFailures: getEnvIntOrDefault("AGROMAPS_BREAKER_FAILURES", 5),
		BreakerOpenFor:     getEnvDurationOrDefault("AGROMAPS_BREAKER_OPEN_FOR", 30*time.Second),
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.DataDir = filepath.Join(home, ".agromaps")
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = filepath.Join(cfg.DataDir, "credentials.db")
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
