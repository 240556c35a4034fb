package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountLockManager_TryLockFastPath(t *testing.T) {
	m := NewAccountLockManager(logger.NewNop())

	require.True(t, m.tryLock(1))
	assert.False(t, m.tryLock(1))
	assert.True(t, m.tryLock(2))

	m.Unlock(1)
	require.NoError(t, m.Lock(context.Background(), 1))
	assert.False(t, m.tryLock(1))
}

func TestAccountLockManager_LockHonoursContext(t *testing.T) {
	m := NewAccountLockManager(logger.NewNop())
	require.NoError(t, m.Lock(context.Background(), 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, m.Lock(ctx, 1), context.DeadlineExceeded)
}

func TestAccountLockManager_UnlockWithoutLock(t *testing.T) {
	m := NewAccountLockManager(logger.NewNop())

	m.Unlock(99)
	require.True(t, m.tryLock(99))
	m.Unlock(99)
	m.Unlock(99)
	assert.True(t, m.tryLock(99))
}

func TestAccountLockManager_LockAllDeduplicates(t *testing.T) {
	m := NewAccountLockManager(logger.NewNop())

	release, err := m.LockAll(context.Background(), 3, 1, 3)
	require.NoError(t, err)
	assert.False(t, m.tryLock(1))
	assert.False(t, m.tryLock(3))

	release()
	assert.True(t, m.tryLock(1))
	assert.True(t, m.tryLock(3))
}

func TestAccountLockManager_LockAllReleasesOnFailure(t *testing.T) {
	m := NewAccountLockManager(logger.NewNop())
	require.True(t, m.tryLock(2))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := m.LockAll(ctx, 1, 2)
	require.Error(t, err)

	assert.True(t, m.tryLock(1))
}

// Opposite acquisition orders must not deadlock.
func TestAccountLockManager_LockAllOrdering(t *testing.T) {
	m := NewAccountLockManager(logger.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release, err := m.LockAll(ctx, 1, 2)
			if assert.NoError(t, err) {
				counter++
				release()
			}
		}()
		go func() {
			defer wg.Done()
			release, err := m.LockAll(ctx, 2, 1)
			if assert.NoError(t, err) {
				counter++
				release()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)
}
