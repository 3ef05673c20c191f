package config

import (
	"strings"
	"time"
)

// Supported store drivers.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// DatabaseConfig selects and tunes the game store.
type DatabaseConfig struct {
	Driver          string
	URL             string
	SQLitePath      string
	SeedPath        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnectAttempts int
	ConnectBackoff  time.Duration
	SlowQuery       time.Duration
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Driver:          normalizeDriver(envOrDefault(envStoreDriver, defaultStoreDriver)),
		URL:             envOrDefault(envDatabaseURL, ""),
		SQLitePath:      envOrDefault(envSQLitePath, defaultSQLitePath),
		SeedPath:        envOrDefault(envSeedPath, ""),
		MaxOpenConns:    intEnvOrDefault(envDBMaxOpenConns, defaultDBMaxOpenConns),
		MaxIdleConns:    intEnvOrDefault(envDBMaxIdleConns, defaultDBMaxIdleConns),
		ConnMaxLifetime: durationEnvOrDefault(envDBConnMaxLifetime, defaultConnMaxLifetime),
		ConnMaxIdleTime: durationEnvOrDefault(envDBConnMaxIdleTime, defaultConnMaxIdleTime),
		ConnectAttempts: intEnvOrDefault(envDBConnectAttempts, defaultConnectAttempts),
		ConnectBackoff:  durationEnvOrDefault(envDBConnectBackoff, defaultConnectBackoff),
		SlowQuery:       durationEnvOrDefault(envDBSlowQueryDuration, defaultSlowQuery),
	}
}

// IsRelational reports whether the driver is backed by a SQL database.
func (c DatabaseConfig) IsRelational() bool {
	return c.Driver == StoreSQLite || c.Driver == StorePostgres
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StorePostgres, "postgresql", "pg":
		return StorePostgres
	case StoreSQLite, "sqlite3":
		return StoreSQLite
	default:
		return StoreMemory
	}
}
