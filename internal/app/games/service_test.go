package games

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/playstack/game-catalog-service/internal/app/result"
	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
	"github.com/playstack/game-catalog-service/internal/logging"
	"github.com/playstack/game-catalog-service/internal/metrics"
	"github.com/playstack/game-catalog-service/internal/store"
)

var errBoom = errors.New("connection reset by peer")

type failingStore struct {
	getErr    error
	listErr   error
	addErr    error
	updateErr error
	deleteErr error
	game      domaingames.Game
	found     bool
}

func (f *failingStore) GetGame(context.Context, int64) (domaingames.Game, bool, error) {
	return f.game, f.found, f.getErr
}

func (f *failingStore) ListGames(context.Context) ([]domaingames.Game, error) {
	return nil, f.listErr
}

func (f *failingStore) AddGame(_ context.Context, g domaingames.Game) (domaingames.Game, error) {
	return g, f.addErr
}

func (f *failingStore) UpdateGame(context.Context, domaingames.Game) error {
	return f.updateErr
}

func (f *failingStore) DeleteGame(context.Context, int64) error {
	return f.deleteErr
}

func validInput() *domaingames.Input {
	return &domaingames.Input{
		Name:        "Test Game",
		Description: "A long enough description",
		Genre:       "RPG",
		ReleaseDate: time.Date(2023, 4, 5, 0, 0, 0, 0, time.FixedZone("CET", 3600)),
		Publisher:   "Pub",
		Developer:   "Dev",
		Price:       decimal.NewFromInt(10),
	}
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func newTestService(s Store) (*Service, *metrics.Recorder) {
	rec := metrics.NewRecorder()
	return NewService(s, nil, rec), rec
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	now := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	svc, rec := newTestService(store.NewMemoryStore())
	svc.WithClock(fixedClock(now))

	res := svc.Create(context.Background(), validInput())
	if !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Errors)
	}
	g := res.Value
	if g.ID != 1 {
		t.Fatalf("expected id 1, got %d", g.ID)
	}
	if !g.CreatedAt.Equal(now) || !g.UpdatedAt.Equal(g.CreatedAt) {
		t.Fatalf("expected createdAt == updatedAt == now, got %v/%v", g.CreatedAt, g.UpdatedAt)
	}
	if g.ReleaseDate.Location() != time.UTC {
		t.Fatalf("expected release date normalized to UTC, got %v", g.ReleaseDate.Location())
	}
	if !g.Price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected price %s", g.Price)
	}
	if snap := rec.Snapshot(OpCreate); snap.Calls != 1 || snap.LastOutcome != "success" {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestCreateShortDescriptionFails(t *testing.T) {
	svc, rec := newTestService(store.NewMemoryStore())
	in := validInput()
	in.Description = "desc"

	res := svc.Create(context.Background(), in)
	if res.IsSuccess() {
		t.Fatalf("expected validation failure")
	}
	if res.Kind != result.KindValidation {
		t.Fatalf("expected validation kind, got %s", res.Kind)
	}
	if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], "description") {
		t.Fatalf("expected description message, got %v", res.Errors)
	}
	if snap := rec.Snapshot(OpCreate); snap.Failures != 1 || snap.LastOutcome != "validation" {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestCreateRejectsPricesTheColumnCannotHold(t *testing.T) {
	ms := store.NewMemoryStore()
	svc, _ := newTestService(ms)
	for _, raw := range []string{"-1e-400", "0.005", "10000000000"} {
		in := validInput()
		in.Price = decimal.RequireFromString(raw)
		res := svc.Create(context.Background(), in)
		if res.IsSuccess() || res.Kind != result.KindValidation {
			t.Fatalf("expected validation failure for price %s, got %+v", raw, res)
		}
	}
	if games, _ := ms.ListGames(context.Background()); len(games) != 0 {
		t.Fatalf("expected nothing persisted, got %d games", len(games))
	}
}

func TestCreateNilInputFails(t *testing.T) {
	svc, _ := newTestService(store.NewMemoryStore())
	res := svc.Create(context.Background(), nil)
	if res.Kind != result.KindValidation || res.Errors[0] != domaingames.MsgInputRequired {
		t.Fatalf("expected input-required failure, got %+v", res)
	}
}

func TestCreateStoreErrorIsHidden(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	svc := NewService(&failingStore{addErr: errBoom}, logger, nil)

	res := svc.Create(context.Background(), validInput())
	if res.Kind != result.KindUnexpected {
		t.Fatalf("expected unexpected kind, got %s", res.Kind)
	}
	if res.Errors[0] != "an unexpected error occurred while creating the game" {
		t.Fatalf("unexpected message %q", res.Errors[0])
	}
	if strings.Contains(res.Errors[0], errBoom.Error()) {
		t.Fatalf("store error leaked into result")
	}
	if !strings.Contains(buf.String(), errBoom.Error()) || !strings.Contains(buf.String(), "operation=create") {
		t.Fatalf("expected store error to be logged, got %q", buf.String())
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(store.NewMemoryStore())
	ctx := context.Background()
	created := svc.Create(ctx, validInput()).Value

	res := svc.GetByID(ctx, created.ID)
	if !res.IsSuccess() || res.Value.Name != "Test Game" {
		t.Fatalf("expected stored game, got %+v", res)
	}

	missing := svc.GetByID(ctx, 999)
	if missing.Kind != result.KindNotFound {
		t.Fatalf("expected not_found, got %s", missing.Kind)
	}
	if missing.Errors[0] != "game with id 999 not found" {
		t.Fatalf("unexpected message %q", missing.Errors[0])
	}
}

func TestGetByIDStoreError(t *testing.T) {
	svc, _ := newTestService(&failingStore{getErr: errBoom})
	res := svc.GetByID(context.Background(), 1)
	if res.Kind != result.KindUnexpected {
		t.Fatalf("expected unexpected kind, got %s", res.Kind)
	}
}

func TestListEmptyIsSuccess(t *testing.T) {
	svc, _ := newTestService(store.NewMemoryStore())
	res := svc.List(context.Background())
	if !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Errors)
	}
	if res.Value == nil || len(res.Value) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res.Value)
	}
}

func TestListNilFromStoreBecomesEmpty(t *testing.T) {
	svc, _ := newTestService(&failingStore{})
	res := svc.List(context.Background())
	if !res.IsSuccess() || res.Value == nil {
		t.Fatalf("expected empty non-nil slice, got %#v", res.Value)
	}
}

func TestListStoreError(t *testing.T) {
	svc, _ := newTestService(&failingStore{listErr: errBoom})
	res := svc.List(context.Background())
	if res.Kind != result.KindUnexpected || res.Errors[0] != "an unexpected error occurred while retrieving the game" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestListReturnsAllOrdered(t *testing.T) {
	svc, _ := newTestService(store.NewMemoryStore())
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		svc.Create(ctx, validInput())
	}
	res := svc.List(ctx)
	if len(res.Value) != 3 || res.Value[0].ID != 1 || res.Value[2].ID != 3 {
		t.Fatalf("unexpected list %+v", res.Value)
	}
}

func TestUpdateOverwritesFields(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newTestService(store.NewMemoryStore())
	ctx := context.Background()
	svc.WithClock(fixedClock(created))
	game := svc.Create(ctx, validInput()).Value

	later := created.Add(2 * time.Hour)
	svc.WithClock(fixedClock(later))
	in := validInput()
	in.Name = "Renamed"
	in.Genre = "Puzzle"
	in.Price = decimal.RequireFromString("4.50")

	res := svc.Update(ctx, game.ID, in)
	if !res.IsSuccess() {
		t.Fatalf("expected success, got %v", res.Errors)
	}
	updated := res.Value
	if updated.Name != "Renamed" || updated.Genre != "Puzzle" || !updated.Price.Equal(decimal.RequireFromString("4.5")) {
		t.Fatalf("expected fields overwritten, got %+v", updated)
	}
	if !updated.CreatedAt.Equal(created) || !updated.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected timestamps %v/%v", updated.CreatedAt, updated.UpdatedAt)
	}

	stored := svc.GetByID(ctx, game.ID).Value
	if stored.Name != "Renamed" {
		t.Fatalf("expected update to be persisted, got %s", stored.Name)
	}
}

func TestUpdateNeverMovesUpdatedAtBackwards(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(store.NewMemoryStore())
	ctx := context.Background()
	svc.WithClock(fixedClock(created))
	game := svc.Create(ctx, validInput()).Value

	svc.WithClock(fixedClock(created.Add(-time.Hour)))
	res := svc.Update(ctx, game.ID, validInput())
	if res.Value.UpdatedAt.Before(game.UpdatedAt) {
		t.Fatalf("updatedAt moved backwards: %v < %v", res.Value.UpdatedAt, game.UpdatedAt)
	}
}

func TestUpdateValidationRunsFirst(t *testing.T) {
	svc, _ := newTestService(&failingStore{getErr: errBoom})
	in := validInput()
	in.Name = "X"
	res := svc.Update(context.Background(), 1, in)
	if res.Kind != result.KindValidation {
		t.Fatalf("expected validation failure before store access, got %s", res.Kind)
	}
}

func TestUpdateMissing(t *testing.T) {
	svc, _ := newTestService(store.NewMemoryStore())
	res := svc.Update(context.Background(), 5, validInput())
	if res.Kind != result.KindNotFound || res.Errors[0] != "game with id 5 not found" {
		t.Fatalf("expected not_found, got %+v", res)
	}
}

func TestUpdateConcurrentRemovalIsNotFound(t *testing.T) {
	svc, _ := newTestService(&failingStore{found: true, game: domaingames.Game{ID: 3}, updateErr: store.ErrNotFound})
	res := svc.Update(context.Background(), 3, validInput())
	if res.Kind != result.KindNotFound {
		t.Fatalf("expected not_found, got %s", res.Kind)
	}
}

func TestUpdateStoreError(t *testing.T) {
	svc, _ := newTestService(&failingStore{found: true, game: domaingames.Game{ID: 3}, updateErr: errBoom})
	res := svc.Update(context.Background(), 3, validInput())
	if res.Kind != result.KindUnexpected || res.Errors[0] != "an unexpected error occurred while updating the game" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	svc, rec := newTestService(store.NewMemoryStore())
	ctx := context.Background()
	game := svc.Create(ctx, validInput()).Value

	if res := svc.Delete(ctx, game.ID); !res.IsSuccess() {
		t.Fatalf("expected delete success, got %v", res.Errors)
	}
	if res := svc.GetByID(ctx, game.ID); res.Kind != result.KindNotFound {
		t.Fatalf("expected not_found after delete, got %s", res.Kind)
	}
	if res := svc.Delete(ctx, game.ID); res.Kind != result.KindNotFound {
		t.Fatalf("expected not_found on second delete, got %s", res.Kind)
	}
	if snap := rec.Snapshot(OpDelete); snap.Calls != 2 || snap.Failures != 1 {
		t.Fatalf("unexpected delete metrics %+v", snap)
	}
}

func TestDeleteStoreErrors(t *testing.T) {
	cases := []struct {
		name  string
		store *failingStore
		kind  result.Kind
	}{
		{"lookup fails", &failingStore{getErr: errBoom}, result.KindUnexpected},
		{"delete fails", &failingStore{found: true, deleteErr: errBoom}, result.KindUnexpected},
		{"removed concurrently", &failingStore{found: true, deleteErr: store.ErrNotFound}, result.KindNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(tc.store)
			res := svc.Delete(context.Background(), 1)
			if res.Kind != tc.kind {
				t.Fatalf("expected %s, got %s", tc.kind, res.Kind)
			}
		})
	}
}

func TestOperationsUseContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logging.WithLogger(context.Background(), logger.With(logging.FieldRequestID, "req-123"))
	svc, _ := newTestService(store.NewMemoryStore())

	svc.GetByID(ctx, 1)

	out := buf.String()
	if !strings.Contains(out, "request_id=req-123") || !strings.Contains(out, "outcome=not_found") {
		t.Fatalf("expected request-scoped debug log, got %q", out)
	}
}
