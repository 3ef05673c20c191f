package gormstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func sampleGame(name string, now time.Time) domaingames.Game {
	return domaingames.NewGame(domaingames.Input{
		Name:        name,
		Description: "A sample description",
		Genre:       "RPG",
		ReleaseDate: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		Publisher:   "Pub Co",
		Developer:   "Dev Co",
		Price:       decimal.RequireFromString("59.99"),
	}, now)
}

func TestStoreAddAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.UTC)

	added, err := s.AddGame(ctx, sampleGame("Stored", now))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == 0 {
		t.Fatalf("expected database-assigned id")
	}

	got, ok, err := s.GetGame(ctx, added.ID)
	if err != nil || !ok {
		t.Fatalf("expected game, ok=%v err=%v", ok, err)
	}
	if got.Name != "Stored" || got.Genre != "RPG" {
		t.Fatalf("unexpected game %+v", got)
	}
	if !got.Price.Equal(decimal.RequireFromString("59.99")) {
		t.Fatalf("unexpected price %s", got.Price)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps %v, got %v/%v", now, got.CreatedAt, got.UpdatedAt)
	}
	if got.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected UTC timestamps, got %v", got.CreatedAt.Location())
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := newTestStore(t)
	_, ok, err := s.GetGame(context.Background(), 404)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if ok {
		t.Fatalf("expected missing game")
	}
}

func TestStoreListOrderedByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	empty, err := s.ListGames(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}

	now := time.Now()
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		if _, err := s.AddGame(ctx, sampleGame(name, now)); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	list, err := s.ListGames(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].Name != "Alpha" || list[2].Name != "Gamma" {
		t.Fatalf("unexpected list %+v", list)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not ordered by id")
		}
	}
}

func TestStoreUpdateOverwritesMutableColumns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	added, _ := s.AddGame(ctx, sampleGame("Before", created))

	later := created.Add(time.Hour)
	added.Apply(domaingames.Input{
		Name:        "After",
		Description: "Updated description",
		Genre:       "Strategy",
		ReleaseDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
		Publisher:   "New Pub",
		Developer:   "New Dev",
		Price:       decimal.Zero,
	}, later)

	if err := s.UpdateGame(ctx, added); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _, _ := s.GetGame(ctx, added.ID)
	if got.Name != "After" || got.Genre != "Strategy" || got.Publisher != "New Pub" {
		t.Fatalf("expected overwritten fields, got %+v", got)
	}
	if !got.Price.IsZero() {
		t.Fatalf("expected zero price, got %s", got.Price)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("expected createdAt untouched, got %v", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Fatalf("expected updatedAt %v, got %v", later, got.UpdatedAt)
	}
}

func TestStoreUpdateMissing(t *testing.T) {
	s := newTestStore(t)
	g := sampleGame("Ghost", time.Now())
	g.ID = 77
	if err := s.UpdateGame(context.Background(), g); !errors.Is(err, domaingames.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	added, _ := s.AddGame(ctx, sampleGame("Doomed", time.Now()))

	if err := s.DeleteGame(ctx, added.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.GetGame(ctx, added.ID); ok {
		t.Fatalf("expected game removed")
	}
	if err := s.DeleteGame(ctx, added.ID); !errors.Is(err, domaingames.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStorePing(t *testing.T) {
	s := newTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestStoreSurfacesDatabaseErrors(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s := New(db)
	// no migration: the table does not exist
	if _, err := s.ListGames(context.Background()); err == nil {
		t.Fatalf("expected error listing without a table")
	}
	if _, _, err := s.GetGame(context.Background(), 1); err == nil {
		t.Fatalf("expected error reading without a table")
	}
}
