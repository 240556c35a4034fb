package app

import (
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/saradorri/economyengine/internal/infrastructure/outbox"
)

func (a *application) InitOutboxProcessor(
	outboxRepo domain.OutboxRepository,
	groupSvc domain.GroupService,
	logger *logger.Logger,
) domain.OutboxProcessor {
	return outbox.NewProcessor(outboxRepo, groupSvc, logger)
}
