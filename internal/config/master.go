package config

import (
	"os"
	"strings"
)

type AppConfig struct {
	DebugMode      bool
	LogLevel       string
	HTTPConfig     *HTTPConfig
	StoreConfig    *StoreConfig
	PostgresConfig *PostgresConfig
	SQLiteConfig   *SQLiteConfig
	RedisConfig    *RedisConfig
	ShareConfig    *ShareConfig
	CatalogConfig  *CatalogConfig
	ScheduleConfig *ScheduleConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPConfig:     NewHTTPConfig(),
		StoreConfig:    NewStoreConfig(),
		PostgresConfig: NewPostgresConfig(),
		SQLiteConfig:   NewSQLiteConfig(),
		RedisConfig:    NewRedisConfig(),
		ShareConfig:    NewShareConfig(),
		CatalogConfig:  NewCatalogConfig(),
		ScheduleConfig: NewScheduleConfig(),
	}
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
