package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/database/dbtest"
	"github.com/saradorri/economyengine/internal/infrastructure/lock"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/saradorri/economyengine/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const houseID int64 = 0

func newTestLedger(t *testing.T) *LedgerUseCase {
	t.Helper()

	db := dbtest.New(t)
	cfg := &config.Config{}
	cfg.Economy.HouseAccountID = houseID
	cfg.Ranks.Initial = "recruit"
	cfg.ApplyDefaults()

	log := logger.NewNop()
	return NewLedgerUseCase(
		repository.NewAccountRepository(db),
		repository.NewTransactionRepository(db),
		db,
		lock.NewAccountLockManager(log),
		config.NewStore(cfg),
		log,
	)
}

func seedAccount(t *testing.T, uc *LedgerUseCase, id int64, name string, balance int64) {
	t.Helper()
	ctx := context.Background()
	_, err := uc.EnsureAccount(ctx, id, name)
	require.NoError(t, err)
	require.NoError(t, uc.SetBalance(ctx, id, balance))
}

func TestEnsureAccount_Idempotent(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()

	created, err := uc.EnsureAccount(ctx, 7, "alice")
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, uc.SetBalance(ctx, 7, 40))

	created, err = uc.EnsureAccount(ctx, 7, "alice")
	require.NoError(t, err)
	assert.False(t, created)

	account, err := uc.GetAccount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(40), account.Balance)
	assert.Equal(t, "recruit", account.Rank)
}

func TestAccountExists_ZeroBalance(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()

	exists, err := uc.AccountExists(ctx, 3)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = uc.EnsureAccount(ctx, 3, "bob")
	require.NoError(t, err)

	exists, err = uc.AccountExists(ctx, 3)
	require.NoError(t, err)
	assert.True(t, exists)

	balance, err := uc.GetBalance(ctx, 3)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestGetBalance_MissingAccount(t *testing.T) {
	uc := newTestLedger(t)

	balance, err := uc.GetBalance(context.Background(), 404)
	require.NoError(t, err)
	assert.Zero(t, balance)

	_, err = uc.GetAccount(context.Background(), 404)
	assert.True(t, domain.HasCode(err, domain.ErrCodeAccountNotFound))
}

func TestPay(t *testing.T) {
	tests := []struct {
		name        string
		from, to    int64
		amount      int64
		wantCode    string
		wantPayer   int64
		wantPayee   int64
		wantRecords int
	}{
		{name: "Success", from: 1, to: 2, amount: 30, wantPayer: 70, wantPayee: 30, wantRecords: 1},
		{name: "ExactBalance", from: 1, to: 2, amount: 100, wantPayer: 0, wantPayee: 100, wantRecords: 1},
		{name: "InsufficientBalance", from: 1, to: 2, amount: 101, wantCode: domain.ErrCodeInsufficientBalance, wantPayer: 100},
		{name: "SelfPayment", from: 1, to: 1, amount: 10, wantCode: domain.ErrCodeSelfPayment, wantPayer: 100},
		{name: "ZeroAmount", from: 1, to: 2, amount: 0, wantCode: domain.ErrCodeInvalidAmount, wantPayer: 100},
		{name: "UnknownPayee", from: 1, to: 99, amount: 10, wantCode: domain.ErrCodeAccountNotFound, wantPayer: 100},
		{name: "UnknownPayer", from: 98, to: 2, amount: 10, wantCode: domain.ErrCodeAccountNotFound, wantPayer: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestLedger(t)
			ctx := context.Background()
			seedAccount(t, uc, 1, "alice", 100)
			seedAccount(t, uc, 2, "bob", 0)

			transfer, err := uc.Pay(ctx, tt.from, tt.to, tt.amount)
			if tt.wantCode != "" {
				assert.True(t, domain.HasCode(err, tt.wantCode), "got %v", err)
				assert.Nil(t, transfer)
			} else {
				require.NoError(t, err)
				assert.Equal(t, -tt.amount, transfer.Debit.Amount)
				assert.Equal(t, tt.amount, transfer.Credit.Amount)
				assert.Equal(t, domain.ReasonPayment, transfer.Debit.Reason)
			}

			payer, _ := uc.GetBalance(ctx, 1)
			payee, _ := uc.GetBalance(ctx, 2)
			assert.Equal(t, tt.wantPayer, payer)
			assert.Equal(t, tt.wantPayee, payee)
			assert.Equal(t, int64(100), payer+payee)

			history, err := uc.History(ctx, 1, 0, 0)
			require.NoError(t, err)
			assert.Len(t, history, tt.wantRecords)
		})
	}
}

func TestPay_InsufficientReportsRemaining(t *testing.T) {
	uc := newTestLedger(t)
	seedAccount(t, uc, 1, "alice", 40)
	seedAccount(t, uc, 2, "bob", 0)

	_, err := uc.Pay(context.Background(), 1, 2, 100)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "60 more needed", appErr.Details)
}

func TestPay_ConcurrentTransfersConserveTotal(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()
	seedAccount(t, uc, 1, "alice", 500)
	seedAccount(t, uc, 2, "bob", 500)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = uc.Pay(ctx, 1, 2, 10)
		}()
		go func() {
			defer wg.Done()
			_, _ = uc.Pay(ctx, 2, 1, 7)
		}()
	}
	wg.Wait()

	a, err := uc.GetBalance(ctx, 1)
	require.NoError(t, err)
	b, err := uc.GetBalance(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), a+b)
	assert.Equal(t, int64(500-20*10+20*7), a)
}

func TestGrantAll_SkipsHouse(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()
	seedAccount(t, uc, 1, "alice", 0)
	seedAccount(t, uc, 2, "bob", 50)
	seedAccount(t, uc, 3, "carol", 200)

	_, err := uc.RecordTaxTransaction(ctx, 9)
	require.NoError(t, err)

	records, err := uc.GrantAll(ctx, 25)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	for id, want := range map[int64]int64{1: 25, 2: 75, 3: 225, houseID: 9} {
		balance, err := uc.GetBalance(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, balance, "account %d", id)
	}
	for _, r := range records {
		assert.Equal(t, domain.ReasonAdminGrant, r.Reason)
		assert.Equal(t, int64(25), r.Amount)
	}
}

func TestGrant_UnknownAccount(t *testing.T) {
	uc := newTestLedger(t)

	_, err := uc.Grant(context.Background(), 5, 10)
	assert.True(t, domain.HasCode(err, domain.ErrCodeAccountNotFound))
}

func TestResetAllBalances_KeepsHouseAndLog(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()
	seedAccount(t, uc, 1, "alice", 0)
	_, err := uc.ApplyChange(ctx, 1, "alice", domain.ReasonHostileKill, 80)
	require.NoError(t, err)
	_, err = uc.RecordTaxTransaction(ctx, 12)
	require.NoError(t, err)

	n, err := uc.ResetAllBalances(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	balance, _ := uc.GetBalance(ctx, 1)
	assert.Zero(t, balance)
	house, _ := uc.GetBalance(ctx, houseID)
	assert.Equal(t, int64(12), house)

	history, err := uc.History(ctx, 1, 10, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestApplyChange_CreatesAccount(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()

	record, err := uc.ApplyChange(ctx, 11, "dora", domain.ReasonBossKill, 300)
	require.NoError(t, err)
	assert.Equal(t, "dora", record.PlayerName)

	account, err := uc.GetAccount(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(300), account.Balance)
	assert.Equal(t, "recruit", account.Rank)
}

func TestRecordTransaction_InvalidReason(t *testing.T) {
	uc := newTestLedger(t)

	_, err := uc.RecordTransaction(context.Background(), 1, "alice", domain.Reason("lottery"), 5)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidFormat))
}

func TestVerifyHouse(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()

	for _, amount := range []int64{5, 7, 11} {
		_, err := uc.RecordTaxTransaction(ctx, amount)
		require.NoError(t, err)
	}

	report, err := uc.VerifyHouse(ctx)
	require.NoError(t, err)
	assert.True(t, report.Balanced)
	assert.Equal(t, int64(23), report.TaxTotal)

	require.NoError(t, uc.SetBalance(ctx, houseID, 1))
	report, err = uc.VerifyHouse(ctx)
	require.NoError(t, err)
	assert.False(t, report.Balanced)
}

func TestHistory_NewestFirstAndPaged(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()
	for i := int64(1); i <= 5; i++ {
		_, err := uc.ApplyChange(ctx, 1, "alice", domain.ReasonNormalKill, i)
		require.NoError(t, err)
	}

	page, err := uc.History(ctx, 1, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(4), page[0].Amount)
	assert.Equal(t, int64(3), page[1].Amount)
	assert.Greater(t, page[0].ID, page[1].ID)
}

func TestApplyChange_AssignsIncreasingIDs(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 3; i++ {
		record, err := uc.ApplyChange(ctx, 1, "alice", domain.ReasonNormalKill, 1)
		require.NoError(t, err)
		assert.Greater(t, record.ID, last)
		last = record.ID
	}

	history, err := uc.History(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, last, history[0].ID)
}

func TestHouseAccount_RejectsNonTaxMovements(t *testing.T) {
	uc := newTestLedger(t)
	ctx := context.Background()
	seedAccount(t, uc, 1, "alice", 100)
	_, err := uc.RecordTaxTransaction(ctx, 10)
	require.NoError(t, err)

	_, err = uc.Pay(ctx, 1, houseID, 100)
	assert.True(t, domain.HasCode(err, domain.ErrCodeHouseAccount), "got %v", err)

	_, err = uc.Pay(ctx, houseID, 1, 5)
	assert.True(t, domain.HasCode(err, domain.ErrCodeHouseAccount), "got %v", err)

	_, err = uc.Grant(ctx, houseID, 50)
	assert.True(t, domain.HasCode(err, domain.ErrCodeHouseAccount), "got %v", err)

	_, err = uc.ApplyChange(ctx, houseID, HouseAccountName, domain.ReasonHostileKill, 5)
	assert.True(t, domain.HasCode(err, domain.ErrCodeHouseAccount), "got %v", err)

	balance, _ := uc.GetBalance(ctx, 1)
	assert.Equal(t, int64(100), balance)

	report, err := uc.VerifyHouse(ctx)
	require.NoError(t, err)
	assert.True(t, report.Balanced)
	assert.Equal(t, int64(10), report.Balance)
}
