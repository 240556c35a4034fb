package seeder

import (
	"context"
	"fmt"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Seeder handles database seeding operations
type Seeder struct {
	rankRepo    domain.RankRepository
	accountRepo domain.AccountRepository
	logger      *logger.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(rankRepo domain.RankRepository, accountRepo domain.AccountRepository, log *logger.Logger) *Seeder {
	return &Seeder{
		rankRepo:    rankRepo,
		accountRepo: accountRepo,
		logger:      log.Named("seeder"),
	}
}

// SeedRanks inserts the configured rank chain. Existing ranks are left alone,
// so operator edits survive a re-run. Links are written after every rank
// exists and must name a configured or stored rank.
func (s *Seeder) SeedRanks(ctx context.Context, seeds []config.RankSeed) (int, error) {
	created := make([]config.RankSeed, 0, len(seeds))

	for _, seed := range seeds {
		existing, err := s.rankRepo.GetByName(ctx, seed.Name)
		if err != nil {
			return 0, err
		}
		if existing != nil {
			s.logger.Info("Rank already exists, skipping", zap.String("rank", seed.Name))
			continue
		}

		if err := s.rankRepo.Create(ctx, &domain.Rank{
			Name:           seed.Name,
			RequiredAmount: seed.RequiredAmount,
			GroupName:      seed.GroupName,
		}); err != nil {
			s.logger.Error("Error creating rank", zap.String("rank", seed.Name), zap.Error(err))
			return 0, err
		}
		created = append(created, seed)
	}

	for _, seed := range created {
		if seed.NextRank == "" {
			continue
		}
		next, err := s.rankRepo.GetByName(ctx, seed.NextRank)
		if err != nil {
			return 0, err
		}
		if next == nil {
			return 0, fmt.Errorf("rank %q links to unknown rank %q", seed.Name, seed.NextRank)
		}
		link := seed.NextRank
		if err := s.rankRepo.Update(ctx, &domain.Rank{
			Name:           seed.Name,
			RequiredAmount: seed.RequiredAmount,
			GroupName:      seed.GroupName,
			NextRank:       &link,
		}); err != nil {
			return 0, err
		}
	}

	s.logger.Info("Rank seeding completed", zap.Int("created", len(created)))
	return len(created), nil
}

// SeedHouse creates the house account when it does not exist
func (s *Seeder) SeedHouse(ctx context.Context, houseID int64, name string) (bool, error) {
	created, err := s.accountRepo.CreateIfAbsent(ctx, &domain.Account{ID: houseID, Name: name})
	if err != nil {
		return false, err
	}
	if created {
		s.logger.Info("House account created", zap.Int64("accountID", houseID))
	}
	return created, nil
}
