package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
)

// ErrDuplicateSeedID is returned when two seed entries claim the same id.
var ErrDuplicateSeedID = errors.New("duplicate seed id")

// LoadSeed reads a JSON array of games for the memory store.
// Entries use the same shape as create requests plus an optional id; timestamps are set to now.
func LoadSeed(path string, now time.Time) ([]domaingames.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	v := domaingames.NewValidator()
	games := make([]domaingames.Game, 0, len(entries))
	seen := make(map[int64]int, len(entries))
	for i, raw := range entries {
		var in domaingames.Input
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("decode seed entry %d: %w", i, err)
		}
		var id struct {
			ID int64 `json:"id"`
		}
		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, fmt.Errorf("decode seed entry %d id: %w", i, err)
		}
		if id.ID < 0 {
			return nil, fmt.Errorf("seed entry %d has negative id %d", i, id.ID)
		}
		if id.ID > 0 {
			if first, dup := seen[id.ID]; dup {
				return nil, fmt.Errorf("seed entries %d and %d: %w %d", first, i, ErrDuplicateSeedID, id.ID)
			}
			seen[id.ID] = i
		}
		if msgs := v.Validate(&in); len(msgs) > 0 {
			return nil, fmt.Errorf("seed entry %d is invalid: %v", i, msgs)
		}
		g := domaingames.NewGame(in, now)
		g.ID = id.ID
		games = append(games, g)
	}
	return games, nil
}
