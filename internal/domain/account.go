package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Account represents a player's currency balance
type Account struct {
	ID        int64     `json:"player_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement:false"`
	Name      string    `json:"player_name" gorm:"type:varchar(64);not null;default:''"`
	Balance   int64     `json:"balance" gorm:"type:bigint;not null;default:0"`
	Rank      string    `json:"rank" gorm:"column:rank_name;type:varchar(64);not null;default:'';index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Account
func (a Account) TableName() string {
	return "accounts"
}

// AccountRepository defines the interface for account data
type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (*Account, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*Account, error)
	CreateIfAbsent(ctx context.Context, account *Account) (bool, error)
	UpsertBalance(ctx context.Context, id int64, balance int64) error
	UpdateBalance(ctx context.Context, id int64, balance int64) error
	UpdateRank(ctx context.Context, id int64, rank string) error
	ListPlayers(ctx context.Context, houseID int64) ([]*Account, error)
	ListByRanks(ctx context.Context, ranks []string) ([]*Account, error)
	CountByRank(ctx context.Context, rank string) (int64, error)
	ResetBalances(ctx context.Context, exceptID int64) (int64, error)
	WithTransaction(tx *gorm.DB) AccountRepository
}

// HouseReport compares the house balance with the replayed tax feed
type HouseReport struct {
	AccountID int64 `json:"account_id"`
	Balance   int64 `json:"balance"`
	TaxTotal  int64 `json:"tax_total"`
	Balanced  bool  `json:"balanced"`
}

// LedgerUseCase defines the interface for balance and audit-trail operations
type LedgerUseCase interface {
	GetAccount(ctx context.Context, accountID int64) (*Account, error)
	GetBalance(ctx context.Context, accountID int64) (int64, error)
	SetBalance(ctx context.Context, accountID int64, balance int64) error
	AccountExists(ctx context.Context, accountID int64) (bool, error)
	EnsureAccount(ctx context.Context, accountID int64, name string) (bool, error)
	RecordTransaction(ctx context.Context, accountID int64, playerName string, reason Reason, amount int64) (*Transaction, error)
	RecordTaxTransaction(ctx context.Context, amount int64) (*Transaction, error)
	ResetAllBalances(ctx context.Context) (int64, error)
	ApplyChange(ctx context.Context, accountID int64, playerName string, reason Reason, amount int64) (*Transaction, error)
	Pay(ctx context.Context, fromID, toID int64, amount int64) (*Transfer, error)
	Grant(ctx context.Context, accountID int64, amount int64) (*Transaction, error)
	GrantAll(ctx context.Context, amount int64) ([]*Transaction, error)
	History(ctx context.Context, accountID int64, limit, offset int) ([]*Transaction, error)
	VerifyHouse(ctx context.Context) (*HouseReport, error)
}
