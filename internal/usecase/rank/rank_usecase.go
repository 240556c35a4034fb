package rank

import (
	"context"
	"sync"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/saradorri/economyengine/internal/usecase/ledger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RankUseCase implements domain.RankUseCase
type RankUseCase struct {
	rankRepo    domain.RankRepository
	accountRepo domain.AccountRepository
	outboxRepo  domain.OutboxRepository
	worldRepo   domain.WorldStateRepository
	ledger      *ledger.LedgerUseCase
	db          *gorm.DB
	settings    *config.Store
	logger      *logger.Logger

	// serializes registry edits so cycle checks see a stable chain
	edits sync.Mutex
}

// NewRankUseCase creates a new rank use case
func NewRankUseCase(
	rankRepo domain.RankRepository,
	accountRepo domain.AccountRepository,
	outboxRepo domain.OutboxRepository,
	worldRepo domain.WorldStateRepository,
	ledgerUC *ledger.LedgerUseCase,
	db *gorm.DB,
	settings *config.Store,
	logger *logger.Logger,
) *RankUseCase {
	return &RankUseCase{
		rankRepo:    rankRepo,
		accountRepo: accountRepo,
		outboxRepo:  outboxRepo,
		worldRepo:   worldRepo,
		ledger:      ledgerUC,
		db:          db,
		settings:    settings,
		logger:      logger.Named("rank"),
	}
}

// List returns every rank, cheapest first
func (uc *RankUseCase) List(ctx context.Context) ([]*domain.Rank, error) {
	ranks, err := uc.rankRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list ranks", zap.Error(err))
		return nil, domain.NewDatabaseError("list ranks", err)
	}
	return ranks, nil
}

// Get returns one rank or a not-found error
func (uc *RankUseCase) Get(ctx context.Context, name string) (*domain.Rank, error) {
	return getRank(ctx, uc.rankRepo, name)
}

// Chain follows successor links from start, the initial rank when start is empty
func (uc *RankUseCase) Chain(ctx context.Context, start string) ([]*domain.Rank, error) {
	if start == "" {
		start = uc.settings.Get().Ranks.Initial
	}

	ranks, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := indexRanks(ranks)
	if _, ok := byName[start]; !ok {
		return nil, domain.NewNotFoundError(domain.ErrCodeRankNotFound, "Rank")
	}

	chain := make([]*domain.Rank, 0, len(ranks))
	seen := make(map[string]bool, len(ranks))
	for name := start; name != "" && len(chain) < domain.MaxChainDepth; {
		r, ok := byName[name]
		if !ok || seen[name] {
			break
		}
		seen[name] = true
		chain = append(chain, r)
		name = r.Next()
	}
	return chain, nil
}

func getRank(ctx context.Context, repo domain.RankRepository, name string) (*domain.Rank, error) {
	r, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, domain.NewDatabaseError("get rank", err)
	}
	if r == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeRankNotFound, "Rank").WithDetails(name)
	}
	return r, nil
}

func indexRanks(ranks []*domain.Rank) map[string]*domain.Rank {
	byName := make(map[string]*domain.Rank, len(ranks))
	for _, r := range ranks {
		byName[r.Name] = r
	}
	return byName
}
