package rank

import (
	"context"
	"net/http"

	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/usecase/ledger"
	"go.uber.org/zap"
)

// ResetOnWorldChange demotes every account whose rank costs more than
// thresholdRank down to thresholdRank. It returns the number demoted.
func (uc *RankUseCase) ResetOnWorldChange(ctx context.Context, thresholdRank string) (int, error) {
	threshold, err := uc.Get(ctx, thresholdRank)
	if err != nil {
		return 0, err
	}

	ranks, err := uc.List(ctx)
	if err != nil {
		return 0, err
	}
	above := make(map[string]bool)
	names := make([]string, 0, len(ranks))
	for _, r := range ranks {
		if r.RequiredAmount > threshold.RequiredAmount {
			above[r.Name] = true
			names = append(names, r.Name)
		}
	}
	if len(names) == 0 {
		return 0, nil
	}

	accounts, err := uc.accountRepo.ListByRanks(ctx, names)
	if err != nil {
		return 0, domain.NewDatabaseError("list accounts by rank", err)
	}
	if len(accounts) == 0 {
		return 0, nil
	}
	ids := make([]int64, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}

	demoted := 0
	err = uc.ledger.Run(ctx, ids, func(u *ledger.Unit) error {
		outbox := uc.outboxRepo.WithTransaction(u.Tx())
		for _, id := range ids {
			account, err := u.Account(id)
			if err != nil {
				return err
			}
			if account == nil || !above[account.Rank] {
				continue
			}
			if err := u.Accounts().UpdateRank(ctx, id, threshold.Name); err != nil {
				return domain.NewDatabaseError("update rank", err)
			}
			if err := outbox.Save(ctx, domain.NewGroupSyncEvent(id, threshold.Name, threshold.GroupName)); err != nil {
				return domain.NewDatabaseError("save outbox event", err)
			}
			demoted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.logger.Warn("Ranks reset", zap.String("threshold", threshold.Name), zap.Int("demoted", demoted))
	return demoted, nil
}

// CheckWorld compares worldID with the last known world and runs the
// rank reset when it changed
func (uc *RankUseCase) CheckWorld(ctx context.Context, worldID string) (*domain.WorldChangeResult, error) {
	if worldID == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "World id is required", http.StatusBadRequest, nil)
	}
	cfg := uc.settings.Get()

	previous, found, err := uc.worldRepo.Get(ctx, domain.WorldStateKeyLastWorldID)
	if err != nil {
		return nil, domain.NewDatabaseError("read world state", err)
	}
	if !found {
		previous = cfg.World.LastKnownID
	}

	result := &domain.WorldChangeResult{Previous: previous, Current: worldID}
	if previous == worldID {
		return result, nil
	}

	// first world ever seen is recorded without a reset
	if previous != "" {
		result.Changed = true
		if target := cfg.Ranks.WorldResetTarget; target != "" {
			demoted, err := uc.ResetOnWorldChange(ctx, target)
			if err != nil {
				return nil, err
			}
			result.Demoted = demoted
		}
	}

	if err := uc.worldRepo.Set(ctx, domain.WorldStateKeyLastWorldID, worldID); err != nil {
		return nil, domain.NewDatabaseError("write world state", err)
	}
	uc.logger.Info("World checked",
		zap.String("previous", previous),
		zap.String("current", worldID),
		zap.Bool("changed", result.Changed),
		zap.Int("demoted", result.Demoted))
	return result, nil
}
