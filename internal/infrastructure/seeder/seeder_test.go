package seeder

import (
	"context"
	"testing"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/infrastructure/database/dbtest"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/saradorri/economyengine/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chain = []config.RankSeed{
	{Name: "recruit", RequiredAmount: 0, GroupName: "recruits", NextRank: "soldier"},
	{Name: "soldier", RequiredAmount: 500, GroupName: "soldiers", NextRank: "captain"},
	{Name: "captain", RequiredAmount: 2000, GroupName: "captains"},
}

func TestSeeder_SeedRanks(t *testing.T) {
	db := dbtest.New(t)
	ranks := repository.NewRankRepository(db)
	s := NewSeeder(ranks, repository.NewAccountRepository(db), logger.NewNop())
	ctx := context.Background()

	n, err := s.SeedRanks(ctx, chain)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	recruit, err := ranks.GetByName(ctx, "recruit")
	require.NoError(t, err)
	require.NotNil(t, recruit)
	assert.Equal(t, "soldier", recruit.Next())

	captain, err := ranks.GetByName(ctx, "captain")
	require.NoError(t, err)
	assert.Equal(t, "", captain.Next())
	assert.Equal(t, int64(2000), captain.RequiredAmount)
}

func TestSeeder_SeedRanksKeepsOperatorEdits(t *testing.T) {
	db := dbtest.New(t)
	ranks := repository.NewRankRepository(db)
	s := NewSeeder(ranks, repository.NewAccountRepository(db), logger.NewNop())
	ctx := context.Background()

	_, err := s.SeedRanks(ctx, chain)
	require.NoError(t, err)

	soldier, err := ranks.GetByName(ctx, "soldier")
	require.NoError(t, err)
	soldier.RequiredAmount = 750
	require.NoError(t, ranks.Update(ctx, soldier))

	n, err := s.SeedRanks(ctx, chain)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	soldier, err = ranks.GetByName(ctx, "soldier")
	require.NoError(t, err)
	assert.Equal(t, int64(750), soldier.RequiredAmount)
}

func TestSeeder_SeedRanksUnknownLink(t *testing.T) {
	db := dbtest.New(t)
	s := NewSeeder(repository.NewRankRepository(db), repository.NewAccountRepository(db), logger.NewNop())

	_, err := s.SeedRanks(context.Background(), []config.RankSeed{
		{Name: "recruit", GroupName: "recruits", NextRank: "ghost"},
	})
	assert.ErrorContains(t, err, "ghost")
}

func TestSeeder_SeedHouse(t *testing.T) {
	db := dbtest.New(t)
	accounts := repository.NewAccountRepository(db)
	s := NewSeeder(repository.NewRankRepository(db), accounts, logger.NewNop())
	ctx := context.Background()

	created, err := s.SeedHouse(ctx, 0, "server bank")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.SeedHouse(ctx, 0, "server bank")
	require.NoError(t, err)
	assert.False(t, created)

	house, err := accounts.GetByID(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, house)
	assert.Equal(t, "server bank", house.Name)
}
