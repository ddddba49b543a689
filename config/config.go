/*
Package config loads server configuration from the environment.

PURPOSE:
  Reads an optional .env file (godotenv) and environment variables with
  defaults. Command-line flags in cmd/server override whatever is loaded
  here.

VARIABLES:
  PORT       HTTP port                 (default 8080)
  CSV_PATH   absence CSV file          (default abwesenheitsaufzeichnungen.csv)
  LOG_LEVEL  debug|info|warn|error     (default info)
  ENV        environment name for logs (default development)
*/
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultCSVPath is the absence table the dashboard reads and writes.
const DefaultCSVPath = "abwesenheitsaufzeichnungen.csv"

// Config holds the server configuration.
type Config struct {
	Port     int
	CSVPath  string
	LogLevel slog.Level
	Env      string
}

// Load reads .env (if present) and the environment. A missing .env file is
// not an error; explicit environment variables win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:     port,
		CSVPath:  getEnv("CSV_PATH", DefaultCSVPath),
		LogLevel: level,
		Env:      getEnv("ENV", "development"),
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
