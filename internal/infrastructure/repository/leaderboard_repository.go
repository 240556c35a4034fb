package repository

import (
	"context"

	"github.com/saradorri/economyengine/internal/domain"
	"gorm.io/gorm"
)

// LeaderboardRepository implements domain.LeaderboardRepository
type LeaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *gorm.DB) domain.LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Replace swaps the stored snapshot for entries in one transaction
func (r *LeaderboardRepository) Replace(ctx context.Context, entries []domain.LeaderboardEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.LeaderboardEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

// List returns the stored snapshot ordered by position
func (r *LeaderboardRepository) List(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	result := r.db.WithContext(ctx).Order("position ASC").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
