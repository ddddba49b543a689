package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fehlzeit/absence-board/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CSV_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENV", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "abwesenheitsaufzeichnungen.csv", cfg.CSVPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CSV_PATH", "/tmp/abwesenheiten.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "/tmp/abwesenheiten.csv", cfg.CSVPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "production", cfg.Env)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = config.Load()
	assert.Error(t, err)
}
