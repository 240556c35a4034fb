package repository

import (
	"context"
	"errors"

	"github.com/saradorri/economyengine/internal/domain"
	"gorm.io/gorm"
)

// RankRepository implements domain.RankRepository
type RankRepository struct {
	db *gorm.DB
}

// NewRankRepository creates a new rank repository
func NewRankRepository(db *gorm.DB) domain.RankRepository {
	return &RankRepository{db: db}
}

// WithTransaction returns a repository bound to tx
func (r *RankRepository) WithTransaction(tx *gorm.DB) domain.RankRepository {
	return &RankRepository{db: tx}
}

// List returns every rank ordered by required amount
func (r *RankRepository) List(ctx context.Context) ([]*domain.Rank, error) {
	var ranks []*domain.Rank
	result := r.db.WithContext(ctx).
		Order("required_amount ASC").
		Order("name ASC").
		Find(&ranks)
	if result.Error != nil {
		return nil, result.Error
	}
	return ranks, nil
}

// GetByName retrieves a rank by name
func (r *RankRepository) GetByName(ctx context.Context, name string) (*domain.Rank, error) {
	var rank domain.Rank
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&rank)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &rank, nil
}

// Create inserts a rank
func (r *RankRepository) Create(ctx context.Context, rank *domain.Rank) error {
	return r.db.WithContext(ctx).Create(rank).Error
}

// Update saves every column of a rank
func (r *RankRepository) Update(ctx context.Context, rank *domain.Rank) error {
	return r.db.WithContext(ctx).Save(rank).Error
}

// Delete removes a rank
func (r *RankRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Where("name = ?", name).Delete(&domain.Rank{}).Error
}

// ClearInboundLinks unsets next_rank on every rank pointing at name
func (r *RankRepository) ClearInboundLinks(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Model(&domain.Rank{}).
		Where("next_rank = ?", name).
		Update("next_rank", nil).Error
}
