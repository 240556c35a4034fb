package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Reason tags why a balance changed
type Reason string

const (
	ReasonNormalKill  Reason = "normal_kill"
	ReasonHostileKill Reason = "hostile_kill"
	ReasonSpecialKill Reason = "special_kill"
	ReasonBossKill    Reason = "boss_kill"
	ReasonPayment     Reason = "payment"
	ReasonAdminGrant  Reason = "admin_grant"
	ReasonPromotion   Reason = "promotion"
	ReasonTax         Reason = "tax"
)

var reasonDescriptions = map[Reason]string{
	ReasonNormalKill:  "killing normal NPC",
	ReasonHostileKill: "killing hostile NPC",
	ReasonSpecialKill: "killing special NPC",
	ReasonBossKill:    "killing boss",
	ReasonPayment:     "payment",
	ReasonAdminGrant:  "admin grant",
	ReasonPromotion:   "promotion",
	ReasonTax:         "tax",
}

// Valid reports whether r belongs to the closed set of reasons
func (r Reason) Valid() bool {
	_, ok := reasonDescriptions[r]
	return ok
}

// Description returns the display text for the reason
func (r Reason) Description() string {
	if d, ok := reasonDescriptions[r]; ok {
		return d
	}
	return string(r)
}

// Transaction is an immutable audit record of one balance change
type Transaction struct {
	ID         int64     `json:"transaction_id" gorm:"primaryKey;column:id;autoIncrement"`
	AccountID  int64     `json:"player_id" gorm:"index;not null;type:bigint"`
	PlayerName string    `json:"player_name" gorm:"type:varchar(64);not null"`
	Reason     Reason    `json:"reason" gorm:"type:varchar(32);not null;index"`
	Amount     int64     `json:"amount" gorm:"type:bigint;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (t Transaction) TableName() string {
	return "transactions"
}

// Transfer is the pair of records written by a payment
type Transfer struct {
	Debit  *Transaction `json:"debit"`
	Credit *Transaction `json:"credit"`
}

// TransactionRepository defines the interface for the append-only log
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	GetByAccountID(ctx context.Context, accountID int64, limit, offset int) ([]*Transaction, error)
	SumByAccountAndReason(ctx context.Context, accountID int64, reason Reason) (int64, error)
	WithTransaction(tx *gorm.DB) TransactionRepository
}
