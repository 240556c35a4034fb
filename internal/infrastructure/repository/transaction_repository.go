package repository

import (
	"context"
	"time"

	"github.com/saradorri/economyengine/internal/domain"
	"gorm.io/gorm"
)

// TransactionRepository implements domain.TransactionRepository.
// Records are only ever inserted.
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTransaction returns a repository bound to tx
func (r *TransactionRepository) WithTransaction(tx *gorm.DB) domain.TransactionRepository {
	return &TransactionRepository{db: tx}
}

// Create appends a transaction record
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(transaction).Error
}

// GetByAccountID retrieves records for an account, newest first
func (r *TransactionRepository) GetByAccountID(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions)

	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

// SumByAccountAndReason adds up the amounts of one reason for one account
func (r *TransactionRepository) SumByAccountAndReason(ctx context.Context, accountID int64, reason domain.Reason) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("account_id = ? AND reason = ?", accountID, reason).
		Scan(&sum).Error
	return sum, err
}
