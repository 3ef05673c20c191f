package testutil

import (
	"context"
	"errors"

	"github.com/playstack/game-catalog-service/internal/app/games"
	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
	"github.com/playstack/game-catalog-service/internal/store"
)

// ErrStoreDown is returned by FailingStore.
var ErrStoreDown = errors.New("store unavailable: dial tcp 10.0.0.5:5432")

// NewServiceWithGames builds a games service backed by an in-memory store preloaded with games.
func NewServiceWithGames(g []domaingames.Game) *games.Service {
	return games.NewService(store.NewMemoryStore(g...), nil, nil)
}

// FailingStore fails every call with ErrStoreDown.
type FailingStore struct{}

func (FailingStore) GetGame(context.Context, int64) (domaingames.Game, bool, error) {
	return domaingames.Game{}, false, ErrStoreDown
}

func (FailingStore) ListGames(context.Context) ([]domaingames.Game, error) {
	return nil, ErrStoreDown
}

func (FailingStore) AddGame(context.Context, domaingames.Game) (domaingames.Game, error) {
	return domaingames.Game{}, ErrStoreDown
}

func (FailingStore) UpdateGame(context.Context, domaingames.Game) error { return ErrStoreDown }

func (FailingStore) DeleteGame(context.Context, int64) error { return ErrStoreDown }

func (FailingStore) Ping(context.Context) error { return ErrStoreDown }
