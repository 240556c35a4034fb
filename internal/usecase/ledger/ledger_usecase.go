package ledger

import (
	"context"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/lock"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// LedgerUseCase owns account balances and the transaction log
type LedgerUseCase struct {
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository
	db              *gorm.DB
	locks           *lock.AccountLockManager
	settings        *config.Store
	logger          *logger.Logger
}

// NewLedgerUseCase creates a new ledger use case
func NewLedgerUseCase(
	accountRepo domain.AccountRepository,
	transactionRepo domain.TransactionRepository,
	db *gorm.DB,
	locks *lock.AccountLockManager,
	settings *config.Store,
	logger *logger.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		db:              db,
		locks:           locks,
		settings:        settings,
		logger:          logger.Named("ledger"),
	}
}

// HouseAccountID returns the configured house account id
func (uc *LedgerUseCase) HouseAccountID() int64 {
	return uc.settings.Get().Economy.HouseAccountID
}

// GetAccount retrieves an account or a not-found error
func (uc *LedgerUseCase) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		uc.logger.Error("Failed to get account", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, domain.NewDatabaseError("get account", err)
	}
	if account == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeAccountNotFound, "Account")
	}
	return account, nil
}

// GetBalance returns the balance of an account, zero when it has no row
func (uc *LedgerUseCase) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		uc.logger.Error("Failed to get balance", zap.Int64("accountID", accountID), zap.Error(err))
		return 0, domain.NewDatabaseError("get balance", err)
	}
	if account == nil {
		return 0, nil
	}
	return account.Balance, nil
}

// SetBalance overwrites the balance of an account, creating the row when absent
func (uc *LedgerUseCase) SetBalance(ctx context.Context, accountID int64, balance int64) error {
	if err := uc.locks.Lock(ctx, accountID); err != nil {
		return domain.NewAppError(domain.ErrCodeLockUnavailable, "Account is busy", 503, err)
	}
	defer uc.locks.Unlock(accountID)

	if err := uc.accountRepo.UpsertBalance(ctx, accountID, balance); err != nil {
		uc.logger.Error("Failed to set balance", zap.Int64("accountID", accountID), zap.Error(err))
		return domain.NewDatabaseError("set balance", err)
	}
	uc.logger.WithContext(ctx).Info("Balance set", zap.Int64("accountID", accountID), zap.Int64("balance", balance))
	return nil
}

// AccountExists reports whether the account has a row, regardless of its balance
func (uc *LedgerUseCase) AccountExists(ctx context.Context, accountID int64) (bool, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return false, domain.NewDatabaseError("get account", err)
	}
	return account != nil, nil
}

// EnsureAccount creates a zero-balance account at the initial rank.
// It reports whether the account was created by this call.
func (uc *LedgerUseCase) EnsureAccount(ctx context.Context, accountID int64, name string) (bool, error) {
	account := &domain.Account{
		ID:   accountID,
		Name: name,
		Rank: uc.settings.Get().Ranks.Initial,
	}
	created, err := uc.accountRepo.CreateIfAbsent(ctx, account)
	if err != nil {
		uc.logger.Error("Failed to ensure account", zap.Int64("accountID", accountID), zap.Error(err))
		return false, domain.NewDatabaseError("create account", err)
	}
	if created {
		uc.logger.Info("Account created", zap.Int64("accountID", accountID), zap.String("name", name))
	}
	return created, nil
}

// RecordTransaction appends a record without touching any balance
func (uc *LedgerUseCase) RecordTransaction(ctx context.Context, accountID int64, playerName string, reason domain.Reason, amount int64) (*domain.Transaction, error) {
	if !reason.Valid() {
		return nil, domain.NewValidationError("reason", "unknown reason code")
	}
	record := &domain.Transaction{
		AccountID:  accountID,
		PlayerName: playerName,
		Reason:     reason,
		Amount:     amount,
	}
	if err := uc.transactionRepo.Create(ctx, record); err != nil {
		uc.logger.Error("Failed to record transaction", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, domain.NewDatabaseError("append transaction", err)
	}
	return record, nil
}

// RecordTaxTransaction credits the house account and appends the tax record in one unit
func (uc *LedgerUseCase) RecordTaxTransaction(ctx context.Context, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidAmount, "Amount must be greater than 0", 400, nil)
	}

	var record *domain.Transaction
	err := uc.Run(ctx, []int64{uc.HouseAccountID()}, func(u *Unit) error {
		var err error
		record, err = u.RemitTax(amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("Tax remitted", zap.Int64("amount", amount))
	return record, nil
}

// ResetAllBalances zeroes every player balance. The log and the house account are kept.
func (uc *LedgerUseCase) ResetAllBalances(ctx context.Context) (int64, error) {
	houseID := uc.HouseAccountID()
	players, err := uc.accountRepo.ListPlayers(ctx, houseID)
	if err != nil {
		return 0, domain.NewDatabaseError("list accounts", err)
	}

	var touched int64
	err = uc.Run(ctx, accountIDs(players), func(u *Unit) error {
		n, err := u.Accounts().ResetBalances(ctx, houseID)
		if err != nil {
			return domain.NewDatabaseError("reset balances", err)
		}
		touched = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	uc.logger.WithContext(ctx).Warn("All balances reset", zap.Int64("accounts", touched))
	return touched, nil
}

// ApplyChange posts amount to the account with its record, creating the account when needed
func (uc *LedgerUseCase) ApplyChange(ctx context.Context, accountID int64, playerName string, reason domain.Reason, amount int64) (*domain.Transaction, error) {
	var record *domain.Transaction
	err := uc.Run(ctx, []int64{accountID}, func(u *Unit) error {
		account, err := u.EnsureAccount(accountID, playerName)
		if err != nil {
			return err
		}
		record, err = u.Post(account, reason, amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Pay moves amount from one account to another. Nothing moves unless the payer covers it.
func (uc *LedgerUseCase) Pay(ctx context.Context, fromID, toID int64, amount int64) (*domain.Transfer, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if fromID == toID {
		return nil, domain.NewAppError(domain.ErrCodeSelfPayment, "Cannot pay yourself", 400, nil)
	}
	if house := uc.HouseAccountID(); fromID == house || toID == house {
		return nil, domain.NewHouseAccountError()
	}

	transfer := &domain.Transfer{}
	err := uc.Run(ctx, []int64{fromID, toID}, func(u *Unit) error {
		payer, err := u.MustAccount(fromID)
		if err != nil {
			return err
		}
		payee, err := u.MustAccount(toID)
		if err != nil {
			return err
		}
		if payer.Balance < amount {
			return domain.NewInsufficientFundsError(amount - payer.Balance)
		}

		if transfer.Debit, err = u.Post(payer, domain.ReasonPayment, -amount); err != nil {
			return err
		}
		transfer.Credit, err = u.Post(payee, domain.ReasonPayment, amount)
		return err
	})
	if err != nil {
		uc.logger.WithContext(ctx).Warn("Payment rejected",
			zap.Int64("from", fromID), zap.Int64("to", toID), zap.Int64("amount", amount), zap.Error(err))
		return nil, err
	}

	uc.logger.WithContext(ctx).Info("Payment completed", zap.Int64("from", fromID), zap.Int64("to", toID), zap.Int64("amount", amount))
	return transfer, nil
}

// Grant credits an existing account as an administrative action
func (uc *LedgerUseCase) Grant(ctx context.Context, accountID int64, amount int64) (*domain.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if accountID == uc.HouseAccountID() {
		return nil, domain.NewHouseAccountError()
	}

	var record *domain.Transaction
	err := uc.Run(ctx, []int64{accountID}, func(u *Unit) error {
		account, err := u.MustAccount(accountID)
		if err != nil {
			return err
		}
		record, err = u.Post(account, domain.ReasonAdminGrant, amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.logger.WithContext(ctx).Info("Grant applied", zap.Int64("accountID", accountID), zap.Int64("amount", amount))
	return record, nil
}

// GrantAll credits every player account, the house excluded, with one record each
func (uc *LedgerUseCase) GrantAll(ctx context.Context, amount int64) ([]*domain.Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	players, err := uc.accountRepo.ListPlayers(ctx, uc.HouseAccountID())
	if err != nil {
		return nil, domain.NewDatabaseError("list accounts", err)
	}

	records := make([]*domain.Transaction, 0, len(players))
	err = uc.Run(ctx, accountIDs(players), func(u *Unit) error {
		for _, p := range players {
			account, err := u.MustAccount(p.ID)
			if err != nil {
				return err
			}
			record, err := u.Post(account, domain.ReasonAdminGrant, amount)
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.WithContext(ctx).Info("Grant applied to all accounts", zap.Int("accounts", len(records)), zap.Int64("amount", amount))
	return records, nil
}

// History returns a page of an account's records, newest first
func (uc *LedgerUseCase) History(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	records, err := uc.transactionRepo.GetByAccountID(ctx, accountID, limit, offset)
	if err != nil {
		return nil, domain.NewDatabaseError("list transactions", err)
	}
	return records, nil
}

// VerifyHouse replays the tax feed and compares it with the house balance
func (uc *LedgerUseCase) VerifyHouse(ctx context.Context) (*domain.HouseReport, error) {
	houseID := uc.HouseAccountID()
	balance, err := uc.GetBalance(ctx, houseID)
	if err != nil {
		return nil, err
	}
	total, err := uc.transactionRepo.SumByAccountAndReason(ctx, houseID, domain.ReasonTax)
	if err != nil {
		return nil, domain.NewDatabaseError("sum tax", err)
	}
	report := &domain.HouseReport{
		AccountID: houseID,
		Balance:   balance,
		TaxTotal:  total,
		Balanced:  balance == total,
	}
	if !report.Balanced {
		uc.logger.Error("House account out of balance", zap.Int64("balance", balance), zap.Int64("taxTotal", total))
	}
	return report, nil
}
