package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"HTTP_ADDR", "STORAGE_DRIVER", "DATA_FILE", "DB_PATH", "DB_DEBUG",
	"JETSTREAM_DIR", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_KEY",
	"CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "tasks_data.json", cfg.Storage.DataFile)
	assert.Equal(t, "tasks.db", cfg.Storage.DBPath)
	assert.False(t, cfg.Storage.DBDebug)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "todo:document", cfg.Storage.RedisKey)
	assert.Equal(t, "/tmp/todo-jetstream", cfg.JetStreamDir)
	assert.Equal(t, "http://localhost:5000", cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/var/lib/todo/tasks.db")
	t.Setenv("DB_DEBUG", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/todo/tasks.db", cfg.Storage.DBPath)
	assert.True(t, cfg.Storage.DBDebug)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "STORAGE_DRIVER", "mongo"},
		{"bad timeout", "SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
