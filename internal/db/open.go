// Package db opens and migrates the relational game store.
package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/playstack/game-catalog-service/internal/config"
)

// ErrMissingDSN is returned when the postgres driver is selected without DATABASE_URL.
var ErrMissingDSN = errors.New("DATABASE_URL is not set")

func dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.StorePostgres:
		if cfg.URL == "" {
			return nil, ErrMissingDSN
		}
		return postgres.Open(cfg.URL), nil
	case config.StoreSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("driver %q is not relational", cfg.Driver)
	}
}

// Open connects to the configured database and applies pool settings.
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}
	conn, err := gorm.Open(d, &gorm.Config{
		Logger:         NewGormLogger(logger, cfg.SlowQuery),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	if cfg.Driver == config.StoreSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}
	return conn, nil
}

// Close releases the pool behind a gorm handle.
func Close(conn *gorm.DB) error {
	if conn == nil {
		return nil
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
