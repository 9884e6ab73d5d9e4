// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverFile   = "file"
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverKV     = "kv"
	DriverRedis  = "redis"
)

// Config holds everything main needs to assemble the application.
type Config struct {
	HTTPAddr        string
	Storage         StorageConfig
	JetStreamDir    string
	AllowedOrigins  string
	ShutdownTimeout time.Duration
}

// StorageConfig selects and configures the document store.
type StorageConfig struct {
	Driver        string
	DataFile      string
	DBPath        string
	DBDebug       bool
	RedisAddr     string
	RedisPassword string
	RedisKey      string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":5000"),
		Storage: StorageConfig{
			Driver:        strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
			DataFile:      getEnv("DATA_FILE", "tasks_data.json"),
			DBPath:        getEnv("DB_PATH", "tasks.db"),
			DBDebug:       os.Getenv("DB_DEBUG") == "true",
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisKey:      getEnv("REDIS_KEY", "todo:document"),
		},
		JetStreamDir:    getEnv("JETSTREAM_DIR", "/tmp/todo-jetstream"),
		AllowedOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5000"),
		ShutdownTimeout: timeout,
	}

	switch cfg.Storage.Driver {
	case DriverFile, DriverMemory, DriverSQLite, DriverKV, DriverRedis:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	return cfg, nil
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
