// Package model contains the GORM table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkLogModel is the GORM-specific struct for the 'work_logs' table.
// Date and times are kept as fixed-width strings so ordering is lexical on every driver.
type WorkLogModel struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID           `gorm:"type:uuid;not null;index:idx_work_logs_owner_date,priority:1"`
	Date            *string             `gorm:"type:varchar(10);index:idx_work_logs_owner_date,priority:2"`
	StartTime       *string             `gorm:"type:varchar(8)"`
	EndTime         *string             `gorm:"type:varchar(8)"`
	UsesDefaultRate bool                `gorm:"not null"`
	CustomRate      decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	Notes           string              `gorm:"type:text;not null;default:''"`
	Paid            bool                `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkLogModel) TableName() string {
	return "work_logs"
}
