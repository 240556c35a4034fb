package rank

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/saradorri/economyengine/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Add creates a rank, optionally linked to an existing successor
func (uc *RankUseCase) Add(ctx context.Context, r *domain.Rank) (*domain.Rank, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Rank name is required", http.StatusBadRequest, nil)
	}
	if r.GroupName == "" {
		return nil, domain.NewAppError(domain.ErrCodeRequiredField, "Group name is required", http.StatusBadRequest, nil)
	}
	if r.RequiredAmount < 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidAmount, "Required amount must not be negative", http.StatusBadRequest, nil)
	}
	if r.NextRank != nil && *r.NextRank == "" {
		r.NextRank = nil
	}

	uc.edits.Lock()
	defer uc.edits.Unlock()

	ranks, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := indexRanks(ranks)
	if _, exists := byName[r.Name]; exists {
		return nil, domain.NewConflictError(domain.ErrCodeRankExists, "Rank already exists").WithDetails(r.Name)
	}
	byName[r.Name] = r
	if err := checkLink(byName, r.Name, r.Next()); err != nil {
		return nil, err
	}

	if err := uc.rankRepo.Create(ctx, r); err != nil {
		uc.logger.Error("Failed to create rank", zap.String("rank", r.Name), zap.Error(err))
		return nil, domain.NewDatabaseError("create rank", err)
	}
	uc.logger.Info("Rank added", zap.String("rank", r.Name), zap.String("next", r.Next()))
	return r, nil
}

// Delete removes a rank no account holds and unlinks its predecessors
func (uc *RankUseCase) Delete(ctx context.Context, name string) error {
	uc.edits.Lock()
	defer uc.edits.Unlock()

	if _, err := uc.Get(ctx, name); err != nil {
		return err
	}

	holders, err := uc.accountRepo.CountByRank(ctx, name)
	if err != nil {
		return domain.NewDatabaseError("count rank holders", err)
	}
	if holders > 0 {
		return domain.NewConflictError(domain.ErrCodeRankInUse, "Rank is held by accounts").
			WithDetails(fmt.Sprintf("%d accounts hold %s", holders, name))
	}

	err = uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ranks := uc.rankRepo.WithTransaction(tx)
		if err := ranks.ClearInboundLinks(ctx, name); err != nil {
			return err
		}
		return ranks.Delete(ctx, name)
	})
	if err != nil {
		uc.logger.Error("Failed to delete rank", zap.String("rank", name), zap.Error(err))
		return domain.NewDatabaseError("delete rank", err)
	}
	uc.logger.Info("Rank deleted", zap.String("rank", name))
	return nil
}

// Relink points a rank at a new successor; nil or empty makes it terminal
func (uc *RankUseCase) Relink(ctx context.Context, name string, next *string) (*domain.Rank, error) {
	if next != nil && *next == "" {
		next = nil
	}

	uc.edits.Lock()
	defer uc.edits.Unlock()

	ranks, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := indexRanks(ranks)
	r, ok := byName[name]
	if !ok {
		return nil, domain.NewNotFoundError(domain.ErrCodeRankNotFound, "Rank").WithDetails(name)
	}

	updated := *r
	updated.NextRank = next
	byName[name] = &updated
	if err := checkLink(byName, name, updated.Next()); err != nil {
		return nil, err
	}

	if err := uc.rankRepo.Update(ctx, &updated); err != nil {
		uc.logger.Error("Failed to relink rank", zap.String("rank", name), zap.Error(err))
		return nil, domain.NewDatabaseError("update rank", err)
	}
	uc.logger.Info("Rank relinked", zap.String("rank", name), zap.String("next", updated.Next()))
	return &updated, nil
}

// Reprice changes the amount required to reach a rank
func (uc *RankUseCase) Reprice(ctx context.Context, name string, amount int64) (*domain.Rank, error) {
	if amount < 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidAmount, "Required amount must not be negative", http.StatusBadRequest, nil)
	}

	uc.edits.Lock()
	defer uc.edits.Unlock()

	r, err := uc.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	r.RequiredAmount = amount
	if err := uc.rankRepo.Update(ctx, r); err != nil {
		uc.logger.Error("Failed to reprice rank", zap.String("rank", name), zap.Error(err))
		return nil, domain.NewDatabaseError("update rank", err)
	}
	uc.logger.Info("Rank repriced", zap.String("rank", name), zap.Int64("requiredAmount", amount))
	return r, nil
}

// checkLink validates the chain reachable from name once its successor is next.
// byName must already reflect the edit.
func checkLink(byName map[string]*domain.Rank, name, next string) error {
	if next == "" {
		return nil
	}
	if _, ok := byName[next]; !ok {
		return domain.NewNotFoundError(domain.ErrCodeRankNotFound, "Successor rank").WithDetails(next)
	}

	depth := 1
	for cur := next; cur != ""; depth++ {
		if cur == name {
			return domain.NewConflictError(domain.ErrCodeRankCycle, "Rank link would form a cycle").
				WithDetails(fmt.Sprintf("%s -> %s", name, next))
		}
		if depth > domain.MaxChainDepth {
			return domain.NewAppError(domain.ErrCodeInvalidRange,
				fmt.Sprintf("Rank chain longer than %d", domain.MaxChainDepth), http.StatusBadRequest, nil)
		}
		r, ok := byName[cur]
		if !ok {
			return nil
		}
		cur = r.Next()
	}
	return nil
}
