package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WageProfileModel is the GORM-specific struct for the 'wage_profiles' table.
type WageProfileModel struct {
	OwnerID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	FirstName           string              `gorm:"type:varchar(100);not null;default:''"`
	LastName            string              `gorm:"type:varchar(100);not null;default:''"`
	DefaultHourlyWage   decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	Currency            string              `gorm:"type:varchar(3);not null;default:'usd'"`
	TimeFormat          string              `gorm:"type:varchar(3);not null;default:'24h'"`
	WorkWeek            string              `gorm:"type:varchar(50);not null;default:''"`
	OnboardingCompleted bool                `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (WageProfileModel) TableName() string {
	return "wage_profiles"
}
