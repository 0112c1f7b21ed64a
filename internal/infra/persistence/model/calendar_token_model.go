package model

import (
	"time"

	"github.com/google/uuid"
)

// CalendarTokenModel is the GORM-specific struct for the 'calendar_tokens' table.
type CalendarTokenModel struct {
	OwnerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	TokenHash string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CalendarTokenModel) TableName() string {
	return "calendar_tokens"
}

// All lists every model managed by migrations.
func All() []any {
	return []any{
		&WorkLogModel{},
		&ClockSessionModel{},
		&WageProfileModel{},
		&CalendarTokenModel{},
	}
}
