package app

import (
	"github.com/saradorri/economyengine/internal/infrastructure/lock"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
)

func (a *application) InitAccountLockManager(log *logger.Logger) *lock.AccountLockManager {
	return lock.NewAccountLockManager(log.Named("locks"))
}
