package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "DATABASE_URL")
	unsetEnv(t, "PORT")
	unsetEnv(t, "LOG_LEVEL")
	unsetEnv(t, "LOG_FORMAT")

	cfg := Load()

	assert.Equal(t, DefaultDatabaseURL, cfg.Database.URL)
	assert.Equal(t, uint16(8081), cfg.Server.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.Addr())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5433/other")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg := Load()

	assert.Equal(t, "postgres://u:p@db:5433/other", cfg.Database.URL)
	assert.Equal(t, uint16(9090), cfg.Server.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"non-numeric", "abc"},
		{"out of range", "70000"},
		{"negative", "-1"},
		{"empty", ""},
		{"trailing garbage", "80x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.value)
			assert.Equal(t, DefaultPort, Load().Server.Port)
		})
	}
}

func TestLoad_PortBounds(t *testing.T) {
	t.Setenv("PORT", "65535")
	assert.Equal(t, uint16(65535), Load().Server.Port)

	t.Setenv("PORT", "0")
	assert.Equal(t, uint16(0), Load().Server.Port)
}

func TestLoad_UnknownLogLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	assert.Equal(t, slog.LevelInfo, Load().Log.Level)
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	assert.NoError(t, os.Unsetenv(key))
}
