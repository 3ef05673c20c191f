package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
)

// SampleInput returns a valid create/update payload with the given name.
func SampleInput(name string) domaingames.Input {
	return domaingames.Input{
		Name:        name,
		Description: "An open-world adventure",
		Genre:       "Adventure",
		ReleaseDate: time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC),
		Publisher:   "Sample Publishing",
		Developer:   "Sample Studio",
		Price:       decimal.RequireFromString("59.99"),
	}
}

// SampleGame returns a stored game fixture with the provided id.
func SampleGame(id int64) domaingames.Game {
	g := domaingames.NewGame(SampleInput("Sample Game"), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	g.ID = id
	return g
}

// SampleRequest returns the JSON request shape for a create/update call.
func SampleRequest(name string) map[string]any {
	in := SampleInput(name)
	return map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"genre":       in.Genre,
		"releaseDate": in.ReleaseDate.Format(time.RFC3339),
		"publisher":   in.Publisher,
		"developer":   in.Developer,
		"price":       59.99,
	}
}
