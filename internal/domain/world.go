package domain

import (
	"context"
	"time"
)

// WorldStateKeyLastWorldID stores the last observed world identity
const WorldStateKeyLastWorldID = "last_world_id"

// WorldState is a persisted key/value pair about the host world
type WorldState struct {
	Key       string    `json:"key" gorm:"primaryKey;column:state_key;type:varchar(64)"`
	Value     string    `json:"value" gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for WorldState
func (w WorldState) TableName() string {
	return "world_state"
}

// WorldStateRepository defines the interface for world state persistence
type WorldStateRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
