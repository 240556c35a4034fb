package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/database/dbtest"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/saradorri/economyengine/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_OrderAndTieBreak(t *testing.T) {
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	accounts := []*domain.Account{
		{ID: 4, Name: "d", Balance: 10},
		{ID: 2, Name: "b", Balance: 50},
		{ID: 9, Name: "i", Balance: 50},
		{ID: 1, Name: "a", Balance: 5},
	}

	entries := Rank(accounts, 3, stamp)

	require.Len(t, entries, 3)
	assert.Equal(t, []int64{2, 9, 4}, []int64{entries[0].PlayerID, entries[1].PlayerID, entries[2].PlayerID})
	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
		assert.Equal(t, stamp, e.UpdatedAt)
	}
	assert.Equal(t, int64(4), accounts[0].ID, "input slice must not be reordered")
}

func TestRank_Deterministic(t *testing.T) {
	stamp := time.Now()
	a := []*domain.Account{{ID: 3, Balance: 7}, {ID: 1, Balance: 7}, {ID: 2, Balance: 9}}
	b := []*domain.Account{{ID: 2, Balance: 9}, {ID: 1, Balance: 7}, {ID: 3, Balance: 7}}

	assert.Equal(t, Rank(a, 10, stamp), Rank(b, 10, stamp))
}

func TestNextAnchor(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"LaterToday", time.Date(2026, 1, 1, 8, 0, 0, 0, loc), time.Date(2026, 1, 1, 18, 30, 0, 0, loc)},
		{"ExactlyAtAnchor", time.Date(2026, 1, 1, 18, 30, 0, 0, loc), time.Date(2026, 1, 2, 18, 30, 0, 0, loc)},
		{"AfterAnchor", time.Date(2026, 12, 31, 23, 0, 0, 0, loc), time.Date(2027, 1, 1, 18, 30, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextAnchor(tt.from, 18, 30))
		})
	}
}

func TestRecomputeAndSnapshot(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	accounts := repository.NewAccountRepository(db)
	board := repository.NewLeaderboardRepository(db)

	for _, a := range []*domain.Account{
		{ID: 0, Name: "server bank"},
		{ID: 1, Name: "alice"},
		{ID: 2, Name: "bob"},
	} {
		_, err := accounts.CreateIfAbsent(ctx, a)
		require.NoError(t, err)
	}
	require.NoError(t, accounts.UpsertBalance(ctx, 0, 1_000_000))
	require.NoError(t, accounts.UpsertBalance(ctx, 1, 30))
	require.NoError(t, accounts.UpsertBalance(ctx, 2, 70))

	cfg := &config.Config{}
	cfg.Leaderboard.UpdateTime = "06:00"
	cfg.ApplyDefaults()
	uc := NewLeaderboardUseCase(accounts, board, config.NewStore(cfg), logger.NewNop())
	fixed := time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	before := uc.Snapshot()
	assert.Empty(t, before.Entries)
	assert.Nil(t, before.UpdatedAt)
	assert.Equal(t, time.Date(2026, 5, 6, 6, 0, 0, 0, time.UTC), before.NextUpdateAt)

	snapshot, err := uc.Recompute(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Entries, 2)
	assert.Equal(t, int64(2), snapshot.Entries[0].PlayerID)
	assert.Equal(t, int64(70), snapshot.Entries[0].CurrencyAmount)

	stored, err := board.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "bob", stored[0].PlayerName)

	after := uc.Snapshot()
	require.NotNil(t, after.UpdatedAt)
	assert.Equal(t, fixed, *after.UpdatedAt)

	require.NoError(t, accounts.UpsertBalance(ctx, 1, 500))
	_, err = uc.Recompute(ctx)
	require.NoError(t, err)
	stored, err = board.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, int64(1), stored[0].PlayerID)
}

func TestLoadPersisted(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	board := repository.NewLeaderboardRepository(db)
	stamp := time.Date(2026, 5, 4, 6, 0, 0, 0, time.UTC)
	require.NoError(t, board.Replace(ctx, []domain.LeaderboardEntry{
		{Position: 1, PlayerID: 2, PlayerName: "bob", CurrencyAmount: 70, UpdatedAt: stamp},
		{Position: 2, PlayerID: 1, PlayerName: "alice", CurrencyAmount: 30, UpdatedAt: stamp},
	}))

	cfg := &config.Config{}
	cfg.Leaderboard.UpdateTime = "06:00"
	cfg.ApplyDefaults()
	uc := NewLeaderboardUseCase(repository.NewAccountRepository(db), board, config.NewStore(cfg), logger.NewNop())
	uc.now = func() time.Time { return time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC) }

	require.NoError(t, uc.LoadPersisted(ctx))

	snapshot := uc.Snapshot()
	require.Len(t, snapshot.Entries, 2)
	assert.Equal(t, "bob", snapshot.Entries[0].PlayerName)
	require.NotNil(t, snapshot.UpdatedAt)
	assert.True(t, stamp.Equal(*snapshot.UpdatedAt))
	assert.Equal(t, time.Date(2026, 5, 5, 6, 0, 0, 0, time.UTC), snapshot.NextUpdateAt)
}

func TestLoadPersisted_EmptyTable(t *testing.T) {
	db := dbtest.New(t)
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	uc := NewLeaderboardUseCase(repository.NewAccountRepository(db), repository.NewLeaderboardRepository(db),
		config.NewStore(cfg), logger.NewNop())

	require.NoError(t, uc.LoadPersisted(context.Background()))
	assert.Empty(t, uc.Snapshot().Entries)
	assert.Nil(t, uc.Snapshot().UpdatedAt)
}
