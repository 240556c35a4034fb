package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/external/groups"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 100
	defaultInterval  = 5 * time.Second
)

// Processor implements domain.OutboxProcessor
type Processor struct {
	outboxRepo domain.OutboxRepository
	groupSvc   domain.GroupService
	logger     *logger.Logger
	maxRetries int
	interval   time.Duration

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewProcessor creates a new outbox processor
func NewProcessor(
	outboxRepo domain.OutboxRepository,
	groupSvc domain.GroupService,
	logger *logger.Logger,
) *Processor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		outboxRepo: outboxRepo,
		groupSvc:   groupSvc,
		logger:     logger.Named("outbox"),
		maxRetries: 5,
		interval:   defaultInterval,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// ProcessEvents delivers every pending event once. Events of a player queued
// behind one that is awaiting retry wait for it, so groups apply in order.
func (p *Processor) ProcessEvents(ctx context.Context) error {
	events, err := p.outboxRepo.GetPendingEvents(ctx, defaultBatchSize)
	if err != nil {
		p.logger.Error("Failed to get pending events", zap.Error(err))
		return err
	}

	waiting := make(map[int64]bool)
	for _, event := range events {
		select {
		case <-ctx.Done():
			return fmt.Errorf("processor cancelled: %w", ctx.Err())
		default:
		}

		playerID, hasPlayer := eventPlayer(event)
		if hasPlayer && waiting[playerID] {
			p.logger.Debug("Event deferred behind a retrying one",
				zap.String("eventID", event.ID), zap.Int64("playerID", playerID))
			continue
		}

		err := p.ProcessEvent(ctx, event)
		if err == nil {
			continue
		}

		p.logger.Error("Failed to process event",
			zap.String("eventID", event.ID),
			zap.String("eventType", event.Type),
			zap.Int("retryCount", event.RetryCount),
			zap.Error(err))

		if event.RetryCount < p.maxRetries && !groups.IsPermanent(err) {
			if hasPlayer {
				waiting[playerID] = true
			}
			if retryErr := p.outboxRepo.IncrementRetryCount(ctx, event.ID); retryErr != nil {
				p.logger.Error("Failed to increment retry count", zap.Error(retryErr))
			}
			continue
		}
		if failErr := p.outboxRepo.MarkAsFailed(ctx, event.ID, err.Error()); failErr != nil {
			p.logger.Error("Failed to mark event as failed", zap.Error(failErr))
		}
	}

	return nil
}

// ProcessEvent delivers a single outbox event
func (p *Processor) ProcessEvent(ctx context.Context, event *domain.OutboxEvent) error {
	p.logger.Debug("Processing outbox event",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))

	if event.Type == domain.EventTypeGroupSync {
		return p.handleGroupSync(ctx, event)
	}

	p.logger.Warn("Unknown event type",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))
	return fmt.Errorf("unknown event type: %s", event.Type)
}

func eventPlayer(event *domain.OutboxEvent) (int64, bool) {
	if event.Type != domain.EventTypeGroupSync {
		return 0, false
	}
	playerID, _, err := extractGroupSyncData(event)
	return playerID, err == nil
}

// extractGroupSyncData extracts the player and target group from event data
func extractGroupSyncData(event *domain.OutboxEvent) (int64, string, error) {
	var playerID int64
	switch v := event.Data["player_id"].(type) {
	case float64:
		playerID = int64(v)
	case int64:
		playerID = v
	default:
		return 0, "", fmt.Errorf("invalid player_id in event data")
	}

	group, ok := event.Data["group"].(string)
	if !ok || group == "" {
		return 0, "", fmt.Errorf("invalid group in event data")
	}
	return playerID, group, nil
}

func (p *Processor) handleGroupSync(ctx context.Context, event *domain.OutboxEvent) error {
	playerID, group, err := extractGroupSyncData(event)
	if err != nil {
		return &domain.GroupServiceError{StatusCode: 400, Code: "MALFORMED_EVENT", Message: err.Error()}
	}

	if err := p.groupSvc.SetGroup(ctx, playerID, group); err != nil {
		return fmt.Errorf("failed to set group: %w", err)
	}

	p.logger.Info("Group synchronised",
		zap.String("eventID", event.ID),
		zap.Int64("playerID", playerID),
		zap.String("group", group))

	return p.outboxRepo.MarkAsProcessed(ctx, event.ID)
}

// StartBackgroundProcessing starts the background processing loop
func (p *Processor) StartBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		p.logger.Warn("Outbox processor is already running")
		return
	}

	p.isRunning = true
	p.wg.Add(1)

	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.Info("Outbox background processing started")

		for {
			select {
			case <-p.ctx.Done():
				return
			case <-ticker.C:
				if err := p.ProcessEvents(p.ctx); err != nil {
					p.logger.WithError(err).Error("Background processing failed")
				}
			}
		}
	}()
}

// StopBackgroundProcessing stops the background processing loop
func (p *Processor) StopBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		p.logger.Warn("Outbox processor is not running")
		return
	}

	p.logger.Info("Stopping outbox background processing...")
	p.cancel()
	p.wg.Wait()
	p.isRunning = false
	p.logger.Info("Outbox background processing stopped")
}
