package domain

import (
	"context"

	"gorm.io/gorm"
)

// MaxChainDepth caps any walk along next-rank links
const MaxChainDepth = 64

// Rank is one step of the progression chain
type Rank struct {
	Name           string  `json:"name" gorm:"primaryKey;column:name;type:varchar(64)"`
	RequiredAmount int64   `json:"required_amount" gorm:"type:bigint;not null;default:0"`
	GroupName      string  `json:"group_name" gorm:"type:varchar(64);not null"`
	NextRank       *string `json:"next_rank,omitempty" gorm:"type:varchar(64)"`
}

// TableName specifies the table name for Rank
func (r Rank) TableName() string {
	return "ranks"
}

// Next returns the successor name, or "" at a terminal rank
func (r *Rank) Next() string {
	if r.NextRank == nil {
		return ""
	}
	return *r.NextRank
}

// PromotionResult describes a successful promotion
type PromotionResult struct {
	AccountID  int64        `json:"player_id"`
	FromRank   string       `json:"from_rank"`
	ToRank     string       `json:"to_rank"`
	GroupName  string       `json:"group_name"`
	Debited    int64        `json:"debited"`
	Tax        int64        `json:"tax"`
	NewBalance int64        `json:"new_balance"`
	Record     *Transaction `json:"transaction"`
}

// WorldChangeResult describes a world-change check
type WorldChangeResult struct {
	Changed  bool   `json:"changed"`
	Previous string `json:"previous_world_id"`
	Current  string `json:"current_world_id"`
	Demoted  int    `json:"demoted"`
}

// RankRepository defines the interface for rank definitions
type RankRepository interface {
	List(ctx context.Context) ([]*Rank, error)
	GetByName(ctx context.Context, name string) (*Rank, error)
	Create(ctx context.Context, rank *Rank) error
	Update(ctx context.Context, rank *Rank) error
	Delete(ctx context.Context, name string) error
	ClearInboundLinks(ctx context.Context, name string) error
	WithTransaction(tx *gorm.DB) RankRepository
}

// RankUseCase defines the interface for rank administration and progression
type RankUseCase interface {
	List(ctx context.Context) ([]*Rank, error)
	Get(ctx context.Context, name string) (*Rank, error)
	Chain(ctx context.Context, start string) ([]*Rank, error)
	Add(ctx context.Context, rank *Rank) (*Rank, error)
	Delete(ctx context.Context, name string) error
	Relink(ctx context.Context, name string, next *string) (*Rank, error)
	Reprice(ctx context.Context, name string, amount int64) (*Rank, error)
	Promote(ctx context.Context, accountID int64) (*PromotionResult, error)
	ResetOnWorldChange(ctx context.Context, thresholdRank string) (int, error)
	CheckWorld(ctx context.Context, worldID string) (*WorldChangeResult, error)
}
