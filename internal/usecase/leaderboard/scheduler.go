package leaderboard

import (
	"context"
	"sync"
	"time"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
)

// Scheduler recomputes the leaderboard once a day at the configured time
type Scheduler struct {
	uc       *LeaderboardUseCase
	settings *config.Store
	logger   *logger.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewScheduler creates a stopped scheduler
func NewScheduler(uc *LeaderboardUseCase, settings *config.Store, logger *logger.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		uc:       uc,
		settings: settings,
		logger:   logger.Named("leaderboard-scheduler"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the background loop
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		s.logger.Warn("Leaderboard scheduler is already running")
		return
	}
	s.isRunning = true
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(s.untilNext())
		defer timer.Stop()
		s.logger.Info("Leaderboard scheduler started")

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-timer.C:
				if _, err := s.uc.Recompute(s.ctx); err != nil {
					s.logger.WithError(err).Error("Leaderboard tick failed")
				}
				timer.Reset(s.untilNext())
			}
		}
	}()
}

// Stop ends the background loop and waits for it
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.isRunning = false
	s.logger.Info("Leaderboard scheduler stopped")
}

func (s *Scheduler) untilNext() time.Duration {
	now := s.uc.now()
	hour, minute, err := config.ParseUpdateTime(s.settings.Get().Leaderboard.UpdateTime)
	if err != nil {
		s.logger.WithError(err).Error("Invalid update time, retrying in a day")
		return 24 * time.Hour
	}
	return NextAnchor(now, hour, minute).Sub(now)
}
