package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/playstack/game-catalog-service/internal/app/result"
	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
	"github.com/playstack/game-catalog-service/internal/logging"
	"github.com/playstack/game-catalog-service/internal/metrics"
)

// Operation names used in logs and metrics.
const (
	OpCreate  = "create"
	OpGetByID = "get_by_id"
	OpList    = "list"
	OpUpdate  = "update"
	OpDelete  = "delete"
)

// Store defines the contract for persisting and retrieving games.
type Store interface {
	GetGame(ctx context.Context, id int64) (domaingames.Game, bool, error)
	ListGames(ctx context.Context) ([]domaingames.Game, error)
	AddGame(ctx context.Context, game domaingames.Game) (domaingames.Game, error)
	UpdateGame(ctx context.Context, game domaingames.Game) error
	DeleteGame(ctx context.Context, id int64) error
}

// Service runs the catalog use cases. Every method reports its outcome as a Result;
// store errors never escape.
type Service struct {
	store     Store
	validator *domaingames.Validator
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:     store,
		validator: domaingames.NewValidator(),
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// WithClock swaps the time source used for timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Create validates the input and stores a new game.
func (s *Service) Create(ctx context.Context, in *domaingames.Input) result.Result[domaingames.Game] {
	start := time.Now()
	res := s.create(ctx, in)
	return finish(ctx, s, OpCreate, 0, start, res)
}

func (s *Service) create(ctx context.Context, in *domaingames.Input) result.Result[domaingames.Game] {
	if msgs := s.validator.Validate(in); len(msgs) > 0 {
		return result.Failure[domaingames.Game](result.KindValidation, msgs...)
	}
	game := domaingames.NewGame(*in, s.now())
	stored, err := s.store.AddGame(ctx, game)
	if err != nil {
		return unexpected[domaingames.Game](ctx, s, OpCreate, 0, "creating", err)
	}
	return result.Success(stored)
}

// GetByID returns the game with the given id or a not_found failure.
func (s *Service) GetByID(ctx context.Context, id int64) result.Result[domaingames.Game] {
	start := time.Now()
	var res result.Result[domaingames.Game]
	game, ok, err := s.store.GetGame(ctx, id)
	switch {
	case err != nil:
		res = unexpected[domaingames.Game](ctx, s, OpGetByID, id, "retrieving", err)
	case !ok:
		res = notFound[domaingames.Game](id)
	default:
		res = result.Success(game)
	}
	return finish(ctx, s, OpGetByID, id, start, res)
}

// List returns every game ordered by id. An empty catalog is a success.
func (s *Service) List(ctx context.Context) result.Result[[]domaingames.Game] {
	start := time.Now()
	var res result.Result[[]domaingames.Game]
	games, err := s.store.ListGames(ctx)
	if err != nil {
		res = unexpected[[]domaingames.Game](ctx, s, OpList, 0, "retrieving", err)
	} else {
		if games == nil {
			games = []domaingames.Game{}
		}
		res = result.Success(games)
	}
	return finish(ctx, s, OpList, 0, start, res)
}

// Update validates the input and overwrites every mutable field of an existing game.
func (s *Service) Update(ctx context.Context, id int64, in *domaingames.Input) result.Result[domaingames.Game] {
	start := time.Now()
	res := s.update(ctx, id, in)
	return finish(ctx, s, OpUpdate, id, start, res)
}

func (s *Service) update(ctx context.Context, id int64, in *domaingames.Input) result.Result[domaingames.Game] {
	if msgs := s.validator.Validate(in); len(msgs) > 0 {
		return result.Failure[domaingames.Game](result.KindValidation, msgs...)
	}
	game, ok, err := s.store.GetGame(ctx, id)
	if err != nil {
		return unexpected[domaingames.Game](ctx, s, OpUpdate, id, "updating", err)
	}
	if !ok {
		return notFound[domaingames.Game](id)
	}
	game.Apply(*in, s.now())
	if err := s.store.UpdateGame(ctx, game); err != nil {
		if errors.Is(err, domaingames.ErrNotFound) {
			return notFound[domaingames.Game](id)
		}
		return unexpected[domaingames.Game](ctx, s, OpUpdate, id, "updating", err)
	}
	return result.Success(game)
}

// Delete removes an existing game.
func (s *Service) Delete(ctx context.Context, id int64) result.Result[struct{}] {
	start := time.Now()
	res := s.delete(ctx, id)
	return finish(ctx, s, OpDelete, id, start, res)
}

func (s *Service) delete(ctx context.Context, id int64) result.Result[struct{}] {
	_, ok, err := s.store.GetGame(ctx, id)
	if err != nil {
		return unexpected[struct{}](ctx, s, OpDelete, id, "deleting", err)
	}
	if !ok {
		return notFound[struct{}](id)
	}
	if err := s.store.DeleteGame(ctx, id); err != nil {
		if errors.Is(err, domaingames.ErrNotFound) {
			return notFound[struct{}](id)
		}
		return unexpected[struct{}](ctx, s, OpDelete, id, "deleting", err)
	}
	return result.Success(struct{}{})
}

// unexpected logs the store error and hides it behind a generic message.
func unexpected[T any](ctx context.Context, s *Service, op string, id int64, verb string, err error) result.Result[T] {
	logFailure(ctx, s.logger, op, id, err)
	return result.Failure[T](result.KindUnexpected, fmt.Sprintf("an unexpected error occurred while %s the game", verb))
}

// NotFoundMessage is the failure message for an unknown id.
func NotFoundMessage(id int64) string {
	return fmt.Sprintf("game with id %d not found", id)
}

func notFound[T any](id int64) result.Result[T] {
	return result.Failure[T](result.KindNotFound, NotFoundMessage(id))
}

func logFailure(ctx context.Context, fallback *slog.Logger, op string, id int64, err error) {
	logger := logging.FromContext(ctx, fallback)
	args := []any{logging.FieldOperation, op}
	if id != 0 {
		args = append(args, logging.FieldGameID, id)
	}
	logging.Error(logger, "catalog operation failed", err, args...)
}

func finish[T any](ctx context.Context, s *Service, op string, id int64, start time.Time, res result.Result[T]) result.Result[T] {
	elapsed := time.Since(start)
	s.metrics.RecordOperation(op, res.Outcome(), elapsed)

	logger := logging.FromContext(ctx, s.logger)
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return res
	}
	args := []any{
		logging.FieldOperation, op,
		logging.FieldOutcome, res.Outcome(),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	}
	if id != 0 {
		args = append(args, logging.FieldGameID, id)
	}
	logger.Debug("catalog operation", args...)
	return res
}
