package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/playstack/game-catalog-service/internal/app/games"
	"github.com/playstack/game-catalog-service/internal/config"
	"github.com/playstack/game-catalog-service/internal/db"
	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
	"github.com/playstack/game-catalog-service/internal/logging"
	"github.com/playstack/game-catalog-service/internal/store"
	"github.com/playstack/game-catalog-service/internal/store/gormstore"
)

// catalogStore is a games.Store that can also report readiness.
type catalogStore interface {
	games.Store
	Ping(ctx context.Context) error
}

// storeFactory builds the configured store. dbSetup is swappable for tests.
type storeFactory struct {
	logger  *slog.Logger
	dbSetup func(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error)
}

func newStoreFactory(logger *slog.Logger) storeFactory {
	return storeFactory{logger: logger, dbSetup: db.Setup}
}

// build returns the store and a close function releasing its resources.
func (f storeFactory) build(ctx context.Context, cfg config.DatabaseConfig) (catalogStore, func() error, error) {
	if !cfg.IsRelational() {
		seed, err := f.loadSeed(cfg.SeedPath)
		if err != nil {
			return nil, nil, err
		}
		logging.Info(f.logger, "using in-memory store", logging.FieldStore, config.StoreMemory, logging.FieldCount, len(seed))
		return store.NewMemoryStore(seed...), func() error { return nil }, nil
	}

	conn, err := f.dbSetup(ctx, cfg, f.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("set up %s store: %w", cfg.Driver, err)
	}
	return gormstore.New(conn), func() error { return db.Close(conn) }, nil
}

func (f storeFactory) loadSeed(path string) ([]domaingames.Game, error) {
	if path == "" {
		return nil, nil
	}
	return store.LoadSeed(path, time.Now())
}
