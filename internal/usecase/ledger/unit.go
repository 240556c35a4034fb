package ledger

import (
	"context"

	"github.com/saradorri/economyengine/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HouseAccountName is the display name of the account collecting tax
const HouseAccountName = "server bank"

// Unit is one database transaction over accounts whose locks are held.
// Every balance change made through a Unit is written together with its
// audit record, so either both persist or neither does.
type Unit struct {
	ctx          context.Context
	tx           *gorm.DB
	accounts     domain.AccountRepository
	transactions domain.TransactionRepository
	houseID      int64
	initialRank  string
	uc           *LedgerUseCase
}

// Tx exposes the underlying database transaction for repositories of other aggregates
func (u *Unit) Tx() *gorm.DB {
	return u.tx
}

// Context returns the context the unit runs under
func (u *Unit) Context() context.Context {
	return u.ctx
}

// Accounts returns the account repository bound to the unit
func (u *Unit) Accounts() domain.AccountRepository {
	return u.accounts
}

// Account reads an account for update; nil when it does not exist
func (u *Unit) Account(accountID int64) (*domain.Account, error) {
	account, err := u.accounts.GetByIDForUpdate(u.ctx, accountID)
	if err != nil {
		u.uc.logger.Error("Failed to read account", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, domain.NewDatabaseError("read account", err)
	}
	return account, nil
}

// MustAccount reads an account for update, failing with not-found when absent
func (u *Unit) MustAccount(accountID int64) (*domain.Account, error) {
	account, err := u.Account(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeAccountNotFound, "Account")
	}
	return account, nil
}

// EnsureAccount reads an account for update, creating it with zero balance when absent
func (u *Unit) EnsureAccount(accountID int64, name string) (*domain.Account, error) {
	account, err := u.Account(accountID)
	if err != nil || account != nil {
		return account, err
	}

	account = &domain.Account{ID: accountID, Name: name, Rank: u.initialRank}
	if accountID == u.houseID {
		account.Rank = ""
	}
	if _, err := u.accounts.CreateIfAbsent(u.ctx, account); err != nil {
		u.uc.logger.Error("Failed to create account", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, domain.NewDatabaseError("create account", err)
	}
	return u.Account(accountID)
}

// Post changes the balance of account by amount and appends the matching record.
// The house account accepts tax records only.
func (u *Unit) Post(account *domain.Account, reason domain.Reason, amount int64) (*domain.Transaction, error) {
	if !reason.Valid() {
		return nil, domain.NewValidationError("reason", "unknown reason code")
	}
	if account.ID == u.houseID && reason != domain.ReasonTax {
		return nil, domain.NewHouseAccountError()
	}

	newBalance := account.Balance + amount
	if err := u.accounts.UpdateBalance(u.ctx, account.ID, newBalance); err != nil {
		u.uc.logger.Error("Failed to update balance", zap.Int64("accountID", account.ID), zap.Error(err))
		return nil, domain.NewDatabaseError("update balance", err)
	}

	record := &domain.Transaction{
		AccountID:  account.ID,
		PlayerName: account.Name,
		Reason:     reason,
		Amount:     amount,
	}
	if err := u.transactions.Create(u.ctx, record); err != nil {
		u.uc.logger.Error("Failed to append transaction", zap.Int64("accountID", account.ID), zap.Error(err))
		return nil, domain.NewDatabaseError("append transaction", err)
	}

	u.uc.logger.Debug("Balance posted",
		zap.Int64("accountID", account.ID),
		zap.String("reason", string(reason)),
		zap.Int64("amount", amount),
		zap.Int64("oldBalance", account.Balance),
		zap.Int64("newBalance", newBalance))

	account.Balance = newBalance
	return record, nil
}

// RemitTax credits the house account and appends a tax record.
// The house id must be among the locked ids of the unit.
func (u *Unit) RemitTax(amount int64) (*domain.Transaction, error) {
	house, err := u.EnsureAccount(u.houseID, HouseAccountName)
	if err != nil {
		return nil, err
	}
	return u.Post(house, domain.ReasonTax, amount)
}
