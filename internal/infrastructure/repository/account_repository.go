package repository

import (
	"context"
	"errors"
	"time"

	"github.com/saradorri/economyengine/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements domain.AccountRepository
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepository{db: db}
}

// WithTransaction returns a repository bound to tx
func (r *AccountRepository) WithTransaction(tx *gorm.DB) domain.AccountRepository {
	return &AccountRepository{db: tx}
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var account domain.Account
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &account, nil
}

// GetByIDForUpdate retrieves an account by ID holding a row lock where the database supports it
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	var account domain.Account
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &account, nil
}

// CreateIfAbsent inserts the account unless its id already exists
func (r *AccountRepository) CreateIfAbsent(ctx context.Context, account *domain.Account) (bool, error) {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(account)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpsertBalance sets the balance, creating the row when absent
func (r *AccountRepository) UpsertBalance(ctx context.Context, id int64, balance int64) error {
	now := time.Now()
	account := &domain.Account{ID: id, Balance: balance, CreatedAt: now, UpdatedAt: now}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"balance":    balance,
				"updated_at": now,
			}),
		}).
		Create(account).Error
}

// UpdateBalance updates only the balance of an account
func (r *AccountRepository) UpdateBalance(ctx context.Context, id int64, balance int64) error {
	return r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    balance,
			"updated_at": time.Now(),
		}).Error
}

// UpdateRank updates only the rank of an account
func (r *AccountRepository) UpdateRank(ctx context.Context, id int64, rank string) error {
	return r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rank_name":  rank,
			"updated_at": time.Now(),
		}).Error
}

// ListPlayers returns every account except the house account, ordered by id
func (r *AccountRepository) ListPlayers(ctx context.Context, houseID int64) ([]*domain.Account, error) {
	var accounts []*domain.Account
	result := r.db.WithContext(ctx).
		Where("id <> ?", houseID).
		Order("id ASC").
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

// ListByRanks returns the accounts holding any of ranks
func (r *AccountRepository) ListByRanks(ctx context.Context, ranks []string) ([]*domain.Account, error) {
	var accounts []*domain.Account
	if len(ranks) == 0 {
		return accounts, nil
	}
	result := r.db.WithContext(ctx).
		Where("rank_name IN ?", ranks).
		Order("id ASC").
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

// CountByRank counts the accounts holding rank
func (r *AccountRepository) CountByRank(ctx context.Context, rank string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("rank_name = ?", rank).
		Count(&count).Error
	return count, err
}

// ResetBalances zeroes every balance except exceptID's and returns the rows touched
func (r *AccountRepository) ResetBalances(ctx context.Context, exceptID int64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("id <> ?", exceptID).
		Updates(map[string]interface{}{
			"balance":    0,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
