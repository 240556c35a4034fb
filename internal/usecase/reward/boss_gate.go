package reward

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/economyengine/internal/domain"
)

// BossGate holds at most one armed boss token. A token is consumed exactly
// once; the first boss-tier award to swap it out wins.
type BossGate struct {
	token atomic.Pointer[domain.BossToken]
}

// NewBossGate creates a disarmed gate
func NewBossGate() *BossGate {
	return &BossGate{}
}

// Arm installs a fresh token, replacing any unconsumed one
func (g *BossGate) Arm(source string) domain.BossToken {
	token := &domain.BossToken{
		ID:      uuid.NewString(),
		Source:  source,
		ArmedAt: time.Now(),
	}
	g.token.Store(token)
	return *token
}

// Current returns the armed token or nil
func (g *BossGate) Current() *domain.BossToken {
	return g.token.Load()
}

// Consume clears token if it is still the armed one
func (g *BossGate) Consume(token *domain.BossToken) bool {
	if token == nil {
		return false
	}
	return g.token.CompareAndSwap(token, nil)
}

// Restore rearms token when the gate is still empty. It reports false when
// a newer token was armed in the meantime.
func (g *BossGate) Restore(token *domain.BossToken) bool {
	if token == nil {
		return false
	}
	return g.token.CompareAndSwap(nil, token)
}
