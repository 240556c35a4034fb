package reward

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Service turns kill events into ledger credits
type Service struct {
	ledger   domain.LedgerUseCase
	settings *config.Store
	sessions *SessionStore
	gate     *BossGate
	rng      RNG
	logger   *logger.Logger
	now      func() time.Time

	classifier atomic.Pointer[cachedClassifier]
}

type cachedClassifier struct {
	cfg        *config.Config
	classifier *Classifier
}

// NewService creates a new reward service
func NewService(
	ledger domain.LedgerUseCase,
	settings *config.Store,
	sessions *SessionStore,
	gate *BossGate,
	rng RNG,
	logger *logger.Logger,
) *Service {
	return &Service{
		ledger:   ledger,
		settings: settings,
		sessions: sessions,
		gate:     gate,
		rng:      rng,
		logger:   logger.Named("reward"),
		now:      time.Now,
	}
}

// HandleKill evaluates a kill and credits the player when it pays
func (s *Service) HandleKill(ctx context.Context, event domain.KillEvent) (*domain.RewardResult, error) {
	cfg := s.settings.Get()
	at := event.At
	if at.IsZero() {
		at = s.now()
	}

	result := &domain.RewardResult{PlayerID: event.PlayerID}

	misses, accepted := s.sessions.Accept(event.PlayerID, at, cfg.Rewards.Debounce)
	if !accepted {
		s.logger.Debug("Kill debounced", zap.Int64("playerID", event.PlayerID))
		return result, nil
	}

	class := event.Classification
	if class == "" {
		class = s.classifierFor(cfg).Classify(event.NPCID)
	}

	var token *domain.BossToken
	if class.IsBoss() {
		token = s.gate.Current()
	}

	rankMultiplier, err := s.rankMultiplier(ctx, cfg, event.PlayerID)
	if err != nil {
		return nil, err
	}

	out := Evaluate(Input{
		Classification:     class,
		HardMode:           event.HardMode,
		Misses:             misses,
		BossEligible:       token != nil,
		Tier:               TierFor(cfg.Rewards, class),
		HardModeMultiplier: cfg.Rewards.HardModeMultiplier,
		RankMultiplier:     rankMultiplier,
		PityThreshold:      cfg.Rewards.PityThreshold,
	}, s.rng)

	result.Reason = out.Reason
	if !out.Evaluated {
		s.logger.Debug("Boss kill without an armed token",
			zap.Int64("playerID", event.PlayerID), zap.String("class", string(class)))
		return result, nil
	}

	if out.Hit && class.IsBoss() && !s.gate.Consume(token) {
		// another award consumed the token first
		s.logger.Info("Boss token already consumed", zap.Int64("playerID", event.PlayerID), zap.String("tokenID", token.ID))
		return result, nil
	}
	if out.Hit && class.IsBoss() {
		result.BossToken = token
	}

	if out.Amount > 0 {
		record, err := s.ledger.ApplyChange(ctx, event.PlayerID, event.PlayerName, out.Reason, out.Amount)
		if err != nil {
			if result.BossToken != nil && !s.gate.Restore(token) {
				s.logger.Warn("Boss token rearmed before the failed award", zap.String("tokenID", token.ID))
			}
			s.logger.Error("Failed to credit reward",
				zap.Int64("playerID", event.PlayerID), zap.Int64("amount", out.Amount), zap.Error(err))
			return nil, err
		}
		result.Record = record
	}

	s.sessions.SetMisses(event.PlayerID, out.Misses)
	result.Evaluated = true
	result.Roll = out.Roll
	result.Guaranteed = out.Guaranteed
	result.Amount = out.Amount

	if out.Amount == 0 {
		return result, nil
	}

	s.logger.Info("Reward credited",
		zap.Int64("playerID", event.PlayerID),
		zap.String("class", string(class)),
		zap.Int("roll", out.Roll),
		zap.Bool("guaranteed", out.Guaranteed),
		zap.Int64("amount", out.Amount))
	return result, nil
}

// ArmBoss makes the next boss-tier award eligible
func (s *Service) ArmBoss(source string) domain.BossToken {
	token := s.gate.Arm(source)
	s.logger.Info("Boss token armed", zap.String("tokenID", token.ID), zap.String("source", source))
	return token
}

// PlayerDisconnected drops the player's pity and debounce state
func (s *Service) PlayerDisconnected(playerID int64) {
	s.sessions.Evict(playerID)
	s.logger.Debug("Session evicted", zap.Int64("playerID", playerID))
}

func (s *Service) rankMultiplier(ctx context.Context, cfg *config.Config, playerID int64) (float64, error) {
	if len(cfg.Rewards.RankMultipliers) == 0 {
		return 1.0, nil
	}
	account, err := s.ledger.GetAccount(ctx, playerID)
	if err != nil {
		if domain.HasCode(err, domain.ErrCodeAccountNotFound) {
			return 1.0, nil
		}
		return 0, err
	}
	if m, ok := cfg.Rewards.RankMultiplier(account.Rank); ok {
		return m, nil
	}
	return 1.0, nil
}

// classifierFor returns the classifier of cfg, rebuilding it only after a reload
func (s *Service) classifierFor(cfg *config.Config) *Classifier {
	if cached := s.classifier.Load(); cached != nil && cached.cfg == cfg {
		return cached.classifier
	}
	c := NewClassifier(cfg.Rewards.NPCs)
	s.classifier.Store(&cachedClassifier{cfg: cfg, classifier: c})
	return c
}
