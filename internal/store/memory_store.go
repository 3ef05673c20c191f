package store

import (
	"context"
	"sort"
	"sync"

	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
)

// ErrNotFound is returned when updating or deleting an unknown id.
var ErrNotFound = domaingames.ErrNotFound

// MemoryStore keeps games in a concurrency-safe map keyed by id.
type MemoryStore struct {
	mu     sync.RWMutex
	games  map[int64]domaingames.Game
	nextID int64
}

// NewMemoryStore constructs a MemoryStore holding the given seed games.
// Seeds without an id are assigned one; new ids continue after the highest seeded id.
func NewMemoryStore(seed ...domaingames.Game) *MemoryStore {
	s := &MemoryStore{
		games: make(map[int64]domaingames.Game, len(seed)),
	}
	for _, g := range seed {
		if g.ID > s.nextID {
			s.nextID = g.ID
		}
	}
	for _, g := range seed {
		if g.ID <= 0 {
			s.nextID++
			g.ID = s.nextID
		}
		s.games[g.ID] = g
	}
	return s
}

// ListGames returns a copy of all games ordered by id.
func (s *MemoryStore) ListGames(ctx context.Context) ([]domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetGame retrieves a game by id.
func (s *MemoryStore) GetGame(ctx context.Context, id int64) (domaingames.Game, bool, error) {
	if err := ctx.Err(); err != nil {
		return domaingames.Game{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok, nil
}

// AddGame stores a new game under the next id and returns the stored copy.
func (s *MemoryStore) AddGame(ctx context.Context, game domaingames.Game) (domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return domaingames.Game{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	game.ID = s.nextID
	s.games[game.ID] = game
	return game, nil
}

// UpdateGame replaces an existing game. Last write wins.
func (s *MemoryStore) UpdateGame(ctx context.Context, game domaingames.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[game.ID]; !ok {
		return ErrNotFound
	}
	s.games[game.ID] = game
	return nil
}

// DeleteGame removes a game by id.
func (s *MemoryStore) DeleteGame(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return ErrNotFound
	}
	delete(s.games, id)
	return nil
}

// Ping always succeeds; the map has no connection to lose.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
