package config

import "strings"

type StoreDriver string

const (
	StoreDriverPostgres StoreDriver = "postgres"
	StoreDriverSQLite   StoreDriver = "sqlite"
	StoreDriverMemory   StoreDriver = "memory"
)

type StoreConfig struct {
	Driver StoreDriver
}

func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Driver: StoreDriver(strings.ToLower(getEnv("STORE_DRIVER", string(StoreDriverPostgres)))),
	}
}

type SQLiteConfig struct {
	Path string
}

func NewSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path: getEnv("SQLITE_PATH", "roster.db"),
	}
}
