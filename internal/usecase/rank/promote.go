package rank

import (
	"context"

	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/usecase/ledger"
	"go.uber.org/zap"
)

// Promote moves the account to the successor of its rank, debiting the
// successor's required amount. The debit, its record, the tax remittance,
// the rank change and the group sync event commit together.
func (uc *RankUseCase) Promote(ctx context.Context, accountID int64) (*domain.PromotionResult, error) {
	cfg := uc.settings.Get()
	houseID := cfg.Economy.HouseAccountID
	taxPercent := cfg.Economy.Tax.PromotionPercent

	result := &domain.PromotionResult{AccountID: accountID}
	err := uc.ledger.Run(ctx, []int64{accountID, houseID}, func(u *ledger.Unit) error {
		ranks := uc.rankRepo.WithTransaction(u.Tx())

		account, err := u.MustAccount(accountID)
		if err != nil {
			return err
		}

		from := account.Rank
		if from == "" {
			from = cfg.Ranks.Initial
		}
		current, err := getRank(ctx, ranks, from)
		if err != nil {
			return err
		}
		if current.Next() == "" {
			return domain.NewConflictError(domain.ErrCodeTerminalRank, "Already at the highest rank").WithDetails(from)
		}
		target, err := getRank(ctx, ranks, current.Next())
		if err != nil {
			return err
		}

		if deficit := target.RequiredAmount - account.Balance; deficit > 0 {
			return domain.NewInsufficientFundsError(deficit)
		}

		record, err := u.Post(account, domain.ReasonPromotion, -target.RequiredAmount)
		if err != nil {
			return err
		}

		tax := target.RequiredAmount * taxPercent / 100
		if tax > 0 {
			if _, err := u.RemitTax(tax); err != nil {
				return err
			}
		}

		if err := u.Accounts().UpdateRank(ctx, account.ID, target.Name); err != nil {
			return domain.NewDatabaseError("update rank", err)
		}
		event := domain.NewGroupSyncEvent(account.ID, target.Name, target.GroupName)
		if err := uc.outboxRepo.WithTransaction(u.Tx()).Save(ctx, event); err != nil {
			return domain.NewDatabaseError("save outbox event", err)
		}

		result.FromRank = from
		result.ToRank = target.Name
		result.GroupName = target.GroupName
		result.Debited = target.RequiredAmount
		result.Tax = tax
		result.NewBalance = account.Balance
		result.Record = record
		return nil
	})
	if err != nil {
		uc.logger.WithContext(ctx).Info("Promotion refused", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}

	uc.logger.WithContext(ctx).Info("Account promoted",
		zap.Int64("accountID", accountID),
		zap.String("from", result.FromRank),
		zap.String("to", result.ToRank),
		zap.Int64("debited", result.Debited),
		zap.Int64("tax", result.Tax))
	return result, nil
}
