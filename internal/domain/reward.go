package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// NPCClass is the reward tier an NPC belongs to
type NPCClass string

const (
	NPCNormal  NPCClass = "normal"
	NPCHostile NPCClass = "hostile"
	NPCSpecial NPCClass = "special"
	NPCBoss1   NPCClass = "boss1"
	NPCBoss2   NPCClass = "boss2"
	NPCBoss3   NPCClass = "boss3"
)

// ParseNPCClass converts user input into an NPCClass
func ParseNPCClass(s string) (NPCClass, error) {
	c := NPCClass(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case NPCNormal, NPCHostile, NPCSpecial, NPCBoss1, NPCBoss2, NPCBoss3:
		return c, nil
	}
	return "", fmt.Errorf("unknown npc classification %q", s)
}

// IsBoss reports whether the class needs boss eligibility
func (c NPCClass) IsBoss() bool {
	return c == NPCBoss1 || c == NPCBoss2 || c == NPCBoss3
}

// Reason maps the class to the reason code recorded on payout
func (c NPCClass) Reason() Reason {
	switch c {
	case NPCHostile:
		return ReasonHostileKill
	case NPCSpecial:
		return ReasonSpecialKill
	case NPCBoss1, NPCBoss2, NPCBoss3:
		return ReasonBossKill
	default:
		return ReasonNormalKill
	}
}

// KillEvent is delivered by the game server when a player kills an NPC
type KillEvent struct {
	PlayerID       int64
	PlayerName     string
	NPCID          int
	Classification NPCClass
	HardMode       bool
	At             time.Time
}

// BossToken is the eligibility granted by one boss encounter
type BossToken struct {
	ID      string    `json:"id"`
	Source  string    `json:"source"`
	ArmedAt time.Time `json:"armed_at"`
}

// RewardResult is the outcome of a kill event
type RewardResult struct {
	PlayerID   int64        `json:"player_id"`
	Evaluated  bool         `json:"evaluated"`
	Amount     int64        `json:"amount"`
	Reason     Reason       `json:"reason,omitempty"`
	Guaranteed bool         `json:"guaranteed"`
	Roll       int          `json:"roll"`
	BossToken  *BossToken   `json:"boss_token,omitempty"`
	Record     *Transaction `json:"transaction,omitempty"`
}

// RewardUseCase defines the interface for combat rewards
type RewardUseCase interface {
	HandleKill(ctx context.Context, event KillEvent) (*RewardResult, error)
	ArmBoss(source string) BossToken
	PlayerDisconnected(playerID int64)
}
