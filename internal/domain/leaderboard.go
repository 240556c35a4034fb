package domain

import (
	"context"
	"time"
)

// LeaderboardEntry is one row of a leaderboard snapshot
type LeaderboardEntry struct {
	Position       int       `json:"position" gorm:"primaryKey;column:position;autoIncrement:false"`
	PlayerID       int64     `json:"player_id" gorm:"type:bigint;not null"`
	PlayerName     string    `json:"player_name" gorm:"type:varchar(64);not null"`
	CurrencyAmount int64     `json:"currency_amount" gorm:"type:bigint;not null"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for LeaderboardEntry
func (e LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}

// LeaderboardSnapshot is the materialized view served to readers
type LeaderboardSnapshot struct {
	Entries      []LeaderboardEntry `json:"entries"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty"`
	NextUpdateAt time.Time          `json:"next_update_at"`
}

// LeaderboardRepository persists the current snapshot
type LeaderboardRepository interface {
	Replace(ctx context.Context, entries []LeaderboardEntry) error
	List(ctx context.Context) ([]LeaderboardEntry, error)
}

// LeaderboardUseCase defines the interface for leaderboard computation and reads
type LeaderboardUseCase interface {
	Recompute(ctx context.Context) (*LeaderboardSnapshot, error)
	Snapshot() LeaderboardSnapshot
}
