package gormstore

import (
	"time"

	"github.com/shopspring/decimal"

	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
	"github.com/playstack/game-catalog-service/internal/timeutil"
)

// gameRow is the persisted shape of a catalog entry.
// Timestamps are owned by the domain, so GORM's automatic tracking is off.
type gameRow struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:100;not null"`
	Description string          `gorm:"size:500;not null"`
	Genre       string          `gorm:"size:50;not null"`
	ReleaseDate time.Time       `gorm:"not null"`
	Publisher   string          `gorm:"size:100;not null"`
	Developer   string          `gorm:"size:100;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime:false"`
}

func (gameRow) TableName() string { return "games" }

func toRow(g domaingames.Game) gameRow {
	return gameRow{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Genre:       g.Genre,
		ReleaseDate: timeutil.UTC(g.ReleaseDate),
		Publisher:   g.Publisher,
		Developer:   g.Developer,
		Price:       g.Price,
		CreatedAt:   timeutil.UTC(g.CreatedAt),
		UpdatedAt:   timeutil.UTC(g.UpdatedAt),
	}
}

func (r gameRow) toDomain() domaingames.Game {
	return domaingames.Game{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Genre:       r.Genre,
		ReleaseDate: timeutil.UTC(r.ReleaseDate),
		Publisher:   r.Publisher,
		Developer:   r.Developer,
		Price:       r.Price,
		CreatedAt:   timeutil.UTC(r.CreatedAt),
		UpdatedAt:   timeutil.UTC(r.UpdatedAt),
	}
}

// mutableColumns lists every column Update overwrites.
func (r gameRow) mutableColumns() map[string]any {
	return map[string]any{
		"name":         r.Name,
		"description":  r.Description,
		"genre":        r.Genre,
		"release_date": r.ReleaseDate,
		"publisher":    r.Publisher,
		"developer":    r.Developer,
		"price":        r.Price,
		"updated_at":   r.UpdatedAt,
	}
}
