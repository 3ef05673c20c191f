package games

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/playstack/game-catalog-service/internal/timeutil"
)

// ErrNotFound is returned by stores when a game id is unknown.
var ErrNotFound = errors.New("game not found")

// Game is a catalog entry as stored and served.
type Game struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Genre       string          `json:"genre"`
	ReleaseDate time.Time       `json:"releaseDate"`
	Publisher   string          `json:"publisher"`
	Developer   string          `json:"developer"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Input carries the mutable fields of a game for create and update.
type Input struct {
	Name        string          `json:"name" validate:"notblank,min=2,max=100"`
	Description string          `json:"description" validate:"notblank,min=10,max=500"`
	Genre       string          `json:"genre" validate:"notblank,min=2,max=50"`
	ReleaseDate time.Time       `json:"releaseDate" validate:"required"`
	Publisher   string          `json:"publisher" validate:"notblank,min=2,max=100"`
	Developer   string          `json:"developer" validate:"notblank,min=2,max=100"`
	Price       decimal.Decimal `json:"price" validate:"nonnegative,maxscale=2,maxdigits=10"`
}

// DecodeError reports an input field whose JSON value has the wrong shape.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string { return e.Message }

// MsgInvalidReleaseDate is reported for a release date that is neither RFC3339 nor YYYY-MM-DD.
const MsgInvalidReleaseDate = "release date must be RFC3339 or YYYY-MM-DD"

// UnmarshalJSON accepts releaseDate as RFC3339 or YYYY-MM-DD and price as a number or numeric string.
// Field-level problems are reported as *DecodeError.
func (in *Input) UnmarshalJSON(data []byte) error {
	type alias Input
	aux := struct {
		*alias
		ReleaseDate json.RawMessage `json:"releaseDate"`
		Price       json.RawMessage `json:"price"`
	}{alias: (*alias)(in)}
	if err := json.Unmarshal(data, &aux); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &DecodeError{Message: typeErr.Field + " must be a " + typeErr.Type.String()}
		}
		return err
	}

	in.ReleaseDate = time.Time{}
	if present(aux.ReleaseDate) {
		var raw string
		if err := json.Unmarshal(aux.ReleaseDate, &raw); err != nil {
			return &DecodeError{Message: MsgInvalidReleaseDate}
		}
		releaseDate, err := timeutil.ParseTimestamp(raw)
		if err != nil {
			return &DecodeError{Message: MsgInvalidReleaseDate}
		}
		in.ReleaseDate = releaseDate
	}

	in.Price = decimal.Decimal{}
	if present(aux.Price) {
		if err := in.Price.UnmarshalJSON(aux.Price); err != nil {
			return &DecodeError{Message: "price must be a number"}
		}
	}
	return nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// NewGame builds an unsaved game from input, stamping both timestamps with now.
func NewGame(in Input, now time.Time) Game {
	now = timeutil.UTC(now)
	g := Game{CreatedAt: now}
	g.Apply(in, now)
	return g
}

// Apply overwrites every mutable field and refreshes UpdatedAt.
// UpdatedAt never moves backwards, even if the clock does.
func (g *Game) Apply(in Input, now time.Time) {
	g.Name = in.Name
	g.Description = in.Description
	g.Genre = in.Genre
	g.ReleaseDate = timeutil.UTC(in.ReleaseDate)
	g.Publisher = in.Publisher
	g.Developer = in.Developer
	g.Price = in.Price
	now = timeutil.UTC(now)
	if now.Before(g.UpdatedAt) {
		now = g.UpdatedAt
	}
	g.UpdatedAt = now
}
