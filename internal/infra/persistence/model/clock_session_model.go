package model

import (
	"time"

	"github.com/google/uuid"
)

// ClockSessionModel is the GORM-specific struct for the 'clock_sessions' table.
// A partial unique index on (owner_id) WHERE is_active keeps one open session per owner.
type ClockSessionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ClockInTime  time.Time `gorm:"not null"`
	ClockOutTime *time.Time
	IsActive     bool `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClockSessionModel) TableName() string {
	return "clock_sessions"
}
