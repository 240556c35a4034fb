package leaderboard

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LeaderboardUseCase implements domain.LeaderboardUseCase
type LeaderboardUseCase struct {
	accountRepo domain.AccountRepository
	boardRepo   domain.LeaderboardRepository
	settings    *config.Store
	logger      *logger.Logger
	now         func() time.Time

	current atomic.Pointer[domain.LeaderboardSnapshot]
}

// NewLeaderboardUseCase creates a new leaderboard use case
func NewLeaderboardUseCase(
	accountRepo domain.AccountRepository,
	boardRepo domain.LeaderboardRepository,
	settings *config.Store,
	logger *logger.Logger,
) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		accountRepo: accountRepo,
		boardRepo:   boardRepo,
		settings:    settings,
		logger:      logger.Named("leaderboard"),
		now:         time.Now,
	}
}

// Recompute ranks every player by balance and replaces the snapshot.
// On failure the previous snapshot stays visible.
func (uc *LeaderboardUseCase) Recompute(ctx context.Context) (*domain.LeaderboardSnapshot, error) {
	cfg := uc.settings.Get()

	players, err := uc.accountRepo.ListPlayers(ctx, cfg.Economy.HouseAccountID)
	if err != nil {
		uc.logger.Error("Failed to read balances", zap.Error(err))
		return nil, domain.NewDatabaseError("list accounts", err)
	}

	stamp := uc.now()
	entries := Rank(players, cfg.Leaderboard.Size, stamp)

	if err := uc.boardRepo.Replace(ctx, entries); err != nil {
		uc.logger.Error("Failed to store leaderboard", zap.Error(err))
		return nil, domain.NewDatabaseError("replace leaderboard", err)
	}

	next, err := uc.nextUpdate(cfg, stamp)
	if err != nil {
		return nil, err
	}
	snapshot := &domain.LeaderboardSnapshot{
		Entries:      entries,
		UpdatedAt:    &stamp,
		NextUpdateAt: next,
	}
	uc.current.Store(snapshot)

	uc.logger.Info("Leaderboard recomputed", zap.Int("entries", len(entries)), zap.Time("nextUpdateAt", next))
	return snapshot, nil
}

// LoadPersisted serves the stored snapshot until the first recompute of
// this process. An empty table leaves the board empty.
func (uc *LeaderboardUseCase) LoadPersisted(ctx context.Context) error {
	entries, err := uc.boardRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to load stored leaderboard", zap.Error(err))
		return domain.NewDatabaseError("list leaderboard", err)
	}
	if len(entries) == 0 {
		return nil
	}

	next, err := uc.nextUpdate(uc.settings.Get(), uc.now())
	if err != nil {
		return err
	}
	stamp := entries[0].UpdatedAt
	loaded := uc.current.CompareAndSwap(nil, &domain.LeaderboardSnapshot{
		Entries:      entries,
		UpdatedAt:    &stamp,
		NextUpdateAt: next,
	})
	if loaded {
		uc.logger.Info("Stored leaderboard loaded", zap.Int("entries", len(entries)), zap.Time("updatedAt", stamp))
	}
	return nil
}

// Snapshot returns the last computed leaderboard, empty before the first one
func (uc *LeaderboardUseCase) Snapshot() domain.LeaderboardSnapshot {
	if s := uc.current.Load(); s != nil {
		return *s
	}
	next, _ := uc.nextUpdate(uc.settings.Get(), uc.now())
	return domain.LeaderboardSnapshot{
		Entries:      []domain.LeaderboardEntry{},
		NextUpdateAt: next,
	}
}

func (uc *LeaderboardUseCase) nextUpdate(cfg *config.Config, from time.Time) (time.Time, error) {
	hour, minute, err := config.ParseUpdateTime(cfg.Leaderboard.UpdateTime)
	if err != nil {
		return time.Time{}, domain.NewInternalError("invalid leaderboard update time", err)
	}
	return NextAnchor(from, hour, minute), nil
}

// Rank orders accounts by balance descending, ties by ascending id, and
// keeps the first size entries with 1-based positions
func Rank(accounts []*domain.Account, size int, stamp time.Time) []domain.LeaderboardEntry {
	sorted := make([]*domain.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Balance != sorted[j].Balance {
			return sorted[i].Balance > sorted[j].Balance
		}
		return sorted[i].ID < sorted[j].ID
	})

	if size >= 0 && len(sorted) > size {
		sorted = sorted[:size]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(sorted))
	for i, a := range sorted {
		entries = append(entries, domain.LeaderboardEntry{
			Position:       i + 1,
			PlayerID:       a.ID,
			PlayerName:     a.Name,
			CurrencyAmount: a.Balance,
			UpdatedAt:      stamp,
		})
	}
	return entries
}

// NextAnchor returns the first hour:minute strictly after from, in from's location
func NextAnchor(from time.Time, hour, minute int) time.Time {
	anchor := time.Date(from.Year(), from.Month(), from.Day(), hour, minute, 0, 0, from.Location())
	if !anchor.After(from) {
		anchor = anchor.AddDate(0, 0, 1)
	}
	return anchor
}
