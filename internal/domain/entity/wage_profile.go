package entity

import (
	"time"

	"workhours/internal/domain/clocktime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WageProfile holds an owner's pay and display preferences.
type WageProfile struct {
	OwnerID             uuid.UUID               `json:"owner_id"`             // The owner this profile belongs to.
	FirstName           string                  `json:"first_name"`           // Given name shown on reports.
	LastName            string                  `json:"last_name"`            // Family name shown on reports.
	DefaultHourlyWage   decimal.NullDecimal     `json:"default_hourly_wage"`  // Rate applied to logs that use the default rate.
	Currency            Currency                `json:"currency"`             // Display currency.
	TimeFormat          clocktime.DisplayFormat `json:"time_format"`          // 12h or 24h.
	WorkWeek            string                  `json:"work_week,omitempty"`  // Free-form description such as "mon-fri".
	OnboardingCompleted bool                    `json:"onboarding_completed"` // Set once the owner finished onboarding.
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
}

// DefaultWageProfile returns the profile assumed for owners that never saved one.
func DefaultWageProfile(ownerID uuid.UUID) *WageProfile {
	return &WageProfile{
		OwnerID:    ownerID,
		Currency:   CurrencyUSD,
		TimeFormat: clocktime.Format24h,
	}
}

// CurrencySymbol returns the symbol for the profile's currency, tolerating a nil profile.
func (p *WageProfile) CurrencySymbol() string {
	if p == nil {
		return CurrencyUSD.Symbol()
	}

	return p.Currency.Symbol()
}
