package db

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/playstack/game-catalog-service/internal/config"
	"github.com/playstack/game-catalog-service/internal/logging"
)

// Setup opens the database, waits for it to answer and migrates the schema,
// retrying each step within the configured startup budget.
func Setup(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	// configuration errors fail immediately
	if _, err := dialector(cfg); err != nil {
		return nil, err
	}
	r := newRetrier(logger, cfg.ConnectAttempts, cfg.ConnectBackoff)

	var conn *gorm.DB
	err := r.do(ctx, "open", func(context.Context) error {
		var err error
		conn, err = Open(cfg, logger)
		return err
	})
	if err != nil {
		return nil, err
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"ping", func(ctx context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}},
		{"migrate", func(context.Context) error { return Migrate(conn, cfg) }},
	}
	for _, step := range steps {
		if err := r.do(ctx, step.name, step.fn); err != nil {
			_ = Close(conn)
			return nil, err
		}
	}

	logging.Info(logger, "database ready", logging.FieldStore, cfg.Driver)
	return conn, nil
}
