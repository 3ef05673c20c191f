// Package gormstore persists catalog games in a relational database through GORM.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
)

// Store implements the games repository on top of a *gorm.DB.
type Store struct {
	db *gorm.DB
}

// AutoMigrate creates or updates the games table. Used for SQLite; Postgres uses versioned migrations.
func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(&gameRow{}) }

// New wraps an open database handle.
func New(db *gorm.DB) *Store { return &Store{db: db} }

// GetGame loads a game by id. A missing row is reported as ok=false, not as an error.
func (s *Store) GetGame(ctx context.Context, id int64) (domaingames.Game, bool, error) {
	var row gameRow
	err := s.db.WithContext(ctx).Take(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domaingames.Game{}, false, nil
	}
	if err != nil {
		return domaingames.Game{}, false, fmt.Errorf("get game %d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

// ListGames returns every game ordered by id.
func (s *Store) ListGames(ctx context.Context) ([]domaingames.Game, error) {
	var rows []gameRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	games := make([]domaingames.Game, 0, len(rows))
	for _, r := range rows {
		games = append(games, r.toDomain())
	}
	return games, nil
}

// AddGame inserts a game and returns it with the database-assigned id.
func (s *Store) AddGame(ctx context.Context, game domaingames.Game) (domaingames.Game, error) {
	row := toRow(game)
	row.ID = 0
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domaingames.Game{}, fmt.Errorf("add game: %w", err)
	}
	return row.toDomain(), nil
}

// UpdateGame overwrites the mutable columns of an existing game.
func (s *Store) UpdateGame(ctx context.Context, game domaingames.Game) error {
	row := toRow(game)
	res := s.db.WithContext(ctx).Model(&gameRow{}).Where("id = ?", row.ID).Updates(row.mutableColumns())
	if res.Error != nil {
		return fmt.Errorf("update game %d: %w", game.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domaingames.ErrNotFound
	}
	return nil
}

// DeleteGame hard-deletes a game by id.
func (s *Store) DeleteGame(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&gameRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete game %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domaingames.ErrNotFound
	}
	return nil
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
