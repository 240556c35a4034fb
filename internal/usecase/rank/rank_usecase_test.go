package rank

import (
	"context"
	"fmt"
	"testing"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/database/dbtest"
	"github.com/saradorri/economyengine/internal/infrastructure/lock"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/saradorri/economyengine/internal/infrastructure/repository"
	"github.com/saradorri/economyengine/internal/usecase/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ranks  *RankUseCase
	ledger *ledger.LedgerUseCase
	outbox domain.OutboxRepository
	world  domain.WorldStateRepository
	cfg    *config.Config
}

func newFixture(t *testing.T, taxPercent int64) *fixture {
	t.Helper()

	db := dbtest.New(t)
	cfg := &config.Config{}
	cfg.Ranks.Initial = "recruit"
	cfg.Ranks.WorldResetTarget = "recruit"
	cfg.Economy.Tax.PromotionPercent = taxPercent
	cfg.ApplyDefaults()
	store := config.NewStore(cfg)

	log := logger.NewNop()
	accounts := repository.NewAccountRepository(db)
	outbox := repository.NewOutboxRepository(db)
	world := repository.NewWorldStateRepository(db)
	ledgerUC := ledger.NewLedgerUseCase(accounts, repository.NewTransactionRepository(db), db,
		lock.NewAccountLockManager(log), store, log)

	f := &fixture{
		ranks:  NewRankUseCase(repository.NewRankRepository(db), accounts, outbox, world, ledgerUC, db, store, log),
		ledger: ledgerUC,
		outbox: outbox,
		world:  world,
		cfg:    cfg,
	}
	f.addChain(t)
	return f
}

func strPtr(s string) *string { return &s }

// recruit(0) -> soldier(500) -> captain(2000)
func (f *fixture) addChain(t *testing.T) {
	ctx := context.Background()
	for _, r := range []*domain.Rank{
		{Name: "captain", RequiredAmount: 2000, GroupName: "captains"},
		{Name: "soldier", RequiredAmount: 500, GroupName: "soldiers", NextRank: strPtr("captain")},
		{Name: "recruit", RequiredAmount: 0, GroupName: "recruits", NextRank: strPtr("soldier")},
	} {
		_, err := f.ranks.Add(ctx, r)
		require.NoError(t, err)
	}
}

func (f *fixture) player(t *testing.T, id, balance int64) {
	ctx := context.Background()
	_, err := f.ledger.EnsureAccount(ctx, id, fmt.Sprintf("player%d", id))
	require.NoError(t, err)
	require.NoError(t, f.ledger.SetBalance(ctx, id, balance))
}

func TestPromote_ExactBalance(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.player(t, 1, 500)

	result, err := f.ranks.Promote(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "recruit", result.FromRank)
	assert.Equal(t, "soldier", result.ToRank)
	assert.Equal(t, "soldiers", result.GroupName)
	assert.Equal(t, int64(0), result.NewBalance)

	account, err := f.ledger.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance)
	assert.Equal(t, "soldier", account.Rank)

	history, err := f.ledger.History(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.ReasonPromotion, history[0].Reason)
	assert.Equal(t, int64(-500), history[0].Amount)

	events, err := f.outbox.GetPendingEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeGroupSync, events[0].Type)
	assert.Equal(t, "soldiers", events[0].Data["group"])
}

func TestPromote_InsufficientBalance(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.player(t, 1, 120)

	_, err := f.ranks.Promote(ctx, 1)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeInsufficientBalance, appErr.Code)
	assert.Equal(t, "380 more needed", appErr.Details)

	account, _ := f.ledger.GetAccount(ctx, 1)
	assert.Equal(t, int64(120), account.Balance)
	assert.Equal(t, "recruit", account.Rank)

	events, _ := f.outbox.GetPendingEvents(ctx, 10)
	assert.Empty(t, events)
}

func TestPromote_TerminalRank(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.player(t, 1, 5000)

	_, err := f.ranks.Promote(ctx, 1)
	require.NoError(t, err)
	_, err = f.ranks.Promote(ctx, 1)
	require.NoError(t, err)

	_, err = f.ranks.Promote(ctx, 1)
	assert.True(t, domain.HasCode(err, domain.ErrCodeTerminalRank))

	balance, _ := f.ledger.GetBalance(ctx, 1)
	assert.Equal(t, int64(2500), balance)
}

func TestPromote_TaxGoesToHouse(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()
	f.player(t, 1, 600)

	result, err := f.ranks.Promote(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50), result.Tax)

	house, err := f.ledger.GetBalance(ctx, f.cfg.Economy.HouseAccountID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), house)

	report, err := f.ledger.VerifyHouse(ctx)
	require.NoError(t, err)
	assert.True(t, report.Balanced)
}

func TestPromote_UnknownAccount(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.ranks.Promote(context.Background(), 77)
	assert.True(t, domain.HasCode(err, domain.ErrCodeAccountNotFound))
}

func TestChain(t *testing.T) {
	f := newFixture(t, 0)

	chain, err := f.ranks.Chain(context.Background(), "")
	require.NoError(t, err)
	names := make([]string, 0, len(chain))
	for _, r := range chain {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"recruit", "soldier", "captain"}, names)

	_, err = f.ranks.Chain(context.Background(), "general")
	assert.True(t, domain.HasCode(err, domain.ErrCodeRankNotFound))
}

func TestRelink_RejectsCycle(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.ranks.Relink(ctx, "captain", strPtr("recruit"))
	assert.True(t, domain.HasCode(err, domain.ErrCodeRankCycle))

	_, err = f.ranks.Relink(ctx, "soldier", strPtr("soldier"))
	assert.True(t, domain.HasCode(err, domain.ErrCodeRankCycle))

	captain, err := f.ranks.Get(ctx, "captain")
	require.NoError(t, err)
	assert.Nil(t, captain.NextRank)
}

func TestRelink_ToNewRank(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.ranks.Add(ctx, &domain.Rank{Name: "general", RequiredAmount: 9000, GroupName: "generals"})
	require.NoError(t, err)

	updated, err := f.ranks.Relink(ctx, "captain", strPtr("general"))
	require.NoError(t, err)
	assert.Equal(t, "general", updated.Next())

	updated, err = f.ranks.Relink(ctx, "captain", nil)
	require.NoError(t, err)
	assert.Nil(t, updated.NextRank)
}

func TestAdd_Validation(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	tests := []struct {
		name string
		rank *domain.Rank
		code string
	}{
		{"MissingName", &domain.Rank{GroupName: "g"}, domain.ErrCodeRequiredField},
		{"MissingGroup", &domain.Rank{Name: "x"}, domain.ErrCodeRequiredField},
		{"NegativeAmount", &domain.Rank{Name: "x", GroupName: "g", RequiredAmount: -1}, domain.ErrCodeInvalidAmount},
		{"Duplicate", &domain.Rank{Name: "soldier", GroupName: "g"}, domain.ErrCodeRankExists},
		{"UnknownSuccessor", &domain.Rank{Name: "x", GroupName: "g", NextRank: strPtr("nope")}, domain.ErrCodeRankNotFound},
		{"SelfSuccessor", &domain.Rank{Name: "x", GroupName: "g", NextRank: strPtr("x")}, domain.ErrCodeRankCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ranks.Add(ctx, tt.rank)
			assert.True(t, domain.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.player(t, 1, 500)
	_, err := f.ranks.Promote(ctx, 1)
	require.NoError(t, err)

	err = f.ranks.Delete(ctx, "soldier")
	assert.True(t, domain.HasCode(err, domain.ErrCodeRankInUse))

	require.NoError(t, f.ranks.Delete(ctx, "captain"))
	soldier, err := f.ranks.Get(ctx, "soldier")
	require.NoError(t, err)
	assert.Nil(t, soldier.NextRank)

	err = f.ranks.Delete(ctx, "captain")
	assert.True(t, domain.HasCode(err, domain.ErrCodeRankNotFound))
}

func TestReprice(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	r, err := f.ranks.Reprice(ctx, "soldier", 750)
	require.NoError(t, err)
	assert.Equal(t, int64(750), r.RequiredAmount)

	f.player(t, 1, 600)
	_, err = f.ranks.Promote(ctx, 1)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInsufficientBalance))

	_, err = f.ranks.Reprice(ctx, "soldier", -5)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidAmount))
}

func TestResetOnWorldChange(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.player(t, 1, 500)
	f.player(t, 2, 2500)
	f.player(t, 3, 0)
	_, err := f.ranks.Promote(ctx, 1)
	require.NoError(t, err)
	_, err = f.ranks.Promote(ctx, 2)
	require.NoError(t, err)
	_, err = f.ranks.Promote(ctx, 2)
	require.NoError(t, err)

	demoted, err := f.ranks.ResetOnWorldChange(ctx, "soldier")
	require.NoError(t, err)
	assert.Equal(t, 1, demoted)

	for id, want := range map[int64]string{1: "soldier", 2: "soldier", 3: "recruit"} {
		account, err := f.ledger.GetAccount(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, account.Rank, "account %d", id)
	}
}

func TestCheckWorld(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.player(t, 1, 500)
	_, err := f.ranks.Promote(ctx, 1)
	require.NoError(t, err)

	first, err := f.ranks.CheckWorld(ctx, "world-a")
	require.NoError(t, err)
	assert.False(t, first.Changed)

	same, err := f.ranks.CheckWorld(ctx, "world-a")
	require.NoError(t, err)
	assert.False(t, same.Changed)

	changed, err := f.ranks.CheckWorld(ctx, "world-b")
	require.NoError(t, err)
	assert.True(t, changed.Changed)
	assert.Equal(t, "world-a", changed.Previous)
	assert.Equal(t, 1, changed.Demoted)

	account, _ := f.ledger.GetAccount(ctx, 1)
	assert.Equal(t, "recruit", account.Rank)

	stored, found, err := f.world.Get(ctx, domain.WorldStateKeyLastWorldID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "world-b", stored)
}

func TestCheckWorld_SeededFromConfig(t *testing.T) {
	f := newFixture(t, 0)
	f.cfg.World.LastKnownID = "world-a"

	result, err := f.ranks.CheckWorld(context.Background(), "world-b")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, "world-a", result.Previous)
}
