package ledger

import (
	"context"

	"github.com/saradorri/economyengine/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run locks accountIDs in ascending order, opens one database transaction
// and hands fn a Unit bound to it. The transaction commits only when fn
// returns nil.
func (uc *LedgerUseCase) Run(ctx context.Context, accountIDs []int64, fn func(u *Unit) error) error {
	release, err := uc.locks.LockAll(ctx, accountIDs...)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeLockUnavailable, "Account is busy", 503, err)
	}
	defer release()

	settings := uc.settings.Get()
	err = uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Unit{
			ctx:          ctx,
			tx:           tx,
			accounts:     uc.accountRepo.WithTransaction(tx),
			transactions: uc.transactionRepo.WithTransaction(tx),
			houseID:      settings.Economy.HouseAccountID,
			initialRank:  settings.Ranks.Initial,
			uc:           uc,
		})
	})
	if err == nil {
		return nil
	}

	if _, ok := domain.IsAppError(err); ok {
		return err
	}
	uc.logger.Error("Ledger transaction failed", zap.Int64s("accountIDs", accountIDs), zap.Error(err))
	return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
}

// validateAmount validates amount is positive
func validateAmount(amount int64) error {
	if amount <= 0 {
		return domain.NewAppError(domain.ErrCodeInvalidAmount, "Amount must be greater than 0", 400, nil)
	}
	return nil
}

func accountIDs(accounts []*domain.Account) []int64 {
	ids := make([]int64, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}
	return ids
}
