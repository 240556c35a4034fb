package lock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AccountLockManager serializes balance mutations per account id.
// Different accounts never contend with each other.
type AccountLockManager struct {
	locks  sync.Map // map[int64]chan struct{}
	logger *logger.Logger
}

func NewAccountLockManager(log *logger.Logger) *AccountLockManager {
	log.Debug("AccountLockManager initialized")
	return &AccountLockManager{
		logger: log,
	}
}

// Lock acquires the lock for accountID, giving up when ctx is done
func (m *AccountLockManager) Lock(ctx context.Context, accountID int64) error {
	if m.tryLock(accountID) {
		m.logger.Debug("Successfully acquired lock", zap.Int64("accountID", accountID))
		return nil
	}

	m.logger.Debug("Waiting for lock", zap.Int64("accountID", accountID))
	sem := m.getOrCreate(accountID)

	select {
	case sem <- struct{}{}:
		m.logger.Debug("Successfully acquired lock", zap.Int64("accountID", accountID))
		return nil
	case <-ctx.Done():
		m.logger.Error("Failed to acquire lock: context cancelled", zap.Int64("accountID", accountID), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for account %d: %w", accountID, ctx.Err())
	}
}

// Unlock releases the lock for accountID
func (m *AccountLockManager) Unlock(accountID int64) {
	v, ok := m.locks.Load(accountID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.Int64("accountID", accountID))
		return
	}
	select {
	case <-v.(chan struct{}):
		m.logger.Debug("Successfully released lock", zap.Int64("accountID", accountID))
	default:
		m.logger.Warn("Unlock of an account that is not locked", zap.Int64("accountID", accountID))
	}
}

// tryLock attempts to acquire a lock without blocking
func (m *AccountLockManager) tryLock(accountID int64) bool {
	sem := m.getOrCreate(accountID)
	select {
	case sem <- struct{}{}:
		return true
	default:
		m.logger.Debug("Failed to acquire try-lock: lock is busy", zap.Int64("accountID", accountID))
		return false
	}
}

// LockAll acquires the locks of every id in ascending order and returns
// the function releasing them. Duplicate ids are locked once.
func (m *AccountLockManager) LockAll(ctx context.Context, accountIDs ...int64) (func(), error) {
	ids := make([]int64, 0, len(accountIDs))
	seen := make(map[int64]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	held := make([]int64, 0, len(ids))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			m.Unlock(held[i])
		}
	}

	for _, id := range ids {
		if err := m.Lock(ctx, id); err != nil {
			release()
			return nil, err
		}
		held = append(held, id)
	}
	return release, nil
}

func (m *AccountLockManager) getOrCreate(accountID int64) chan struct{} {
	if v, ok := m.locks.Load(accountID); ok {
		return v.(chan struct{})
	}
	actual, _ := m.locks.LoadOrStore(accountID, make(chan struct{}, 1))
	return actual.(chan struct{})
}
