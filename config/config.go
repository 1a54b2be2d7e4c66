// Package config loads application configuration from environment
// variables, with optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/expertsoft/university-analyzer/pkg/timeutil"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	AppEnv Environment
	Debug  bool

	// Logging
	LogLevel string

	// EvalDate is the evaluation date for all age-dependent operations.
	// Injectable so that reports are reproducible; defaults to today.
	EvalDate time.Time
}

// Load loads configuration from environment variables. A .env file in
// the working directory is applied first when present; a missing file
// is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   Environment(getEnv("APP_ENV", string(EnvDevelopment))),
		Debug:    getEnvBool("APP_DEBUG", false),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	evalDate, err := loadEvalDate()
	if err != nil {
		return nil, err
	}
	cfg.EvalDate = evalDate

	return cfg, nil
}

// loadEvalDate reads ANALYZER_EVAL_DATE (YYYY-MM-DD). Empty value means
// "today" - the only place the system clock is consulted.
func loadEvalDate() (time.Time, error) {
	raw := getEnv("ANALYZER_EVAL_DATE", "")
	if raw == "" {
		now := time.Now().UTC()
		return timeutil.Date(now.Year(), int(now.Month()), now.Day()), nil
	}
	parsed, err := timeutil.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ANALYZER_EVAL_DATE %q: %w", raw, err)
	}
	return parsed, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
