package repository

import (
	"context"
	"errors"
	"time"

	"github.com/saradorri/economyengine/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorldStateRepository implements domain.WorldStateRepository
type WorldStateRepository struct {
	db *gorm.DB
}

// NewWorldStateRepository creates a new world state repository
func NewWorldStateRepository(db *gorm.DB) domain.WorldStateRepository {
	return &WorldStateRepository{db: db}
}

// Get returns the value stored under key
func (r *WorldStateRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var state domain.WorldState
	result := r.db.WithContext(ctx).Where("state_key = ?", key).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, result.Error
	}
	return state.Value, true, nil
}

// Set stores value under key
func (r *WorldStateRepository) Set(ctx context.Context, key, value string) error {
	state := &domain.WorldState{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "state_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(state).Error
}
