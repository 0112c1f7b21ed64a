package usecase

import (
	"context"

	"workhours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileUsecase defines the interface for wage profile operations.
type ProfileUsecase interface {
	// GetProfile returns the saved profile, or the defaults when none was saved.
	GetProfile(ctx context.Context, ownerID uuid.UUID) (*entity.WageProfile, error)
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, input *UpdateProfileInput) (*entity.WageProfile, error)
	CompleteOnboarding(ctx context.Context, ownerID uuid.UUID, input *OnboardingInput) (*entity.WageProfile, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FirstName              *string          `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName               *string          `json:"last_name,omitempty" validate:"omitempty,max=100"`
	DefaultHourlyWage      *decimal.Decimal `json:"default_hourly_wage,omitempty"`
	ClearDefaultHourlyWage bool             `json:"clear_default_hourly_wage,omitempty"`
	Currency               *string          `json:"currency,omitempty" validate:"omitempty,oneof=usd eur gbp"`
	TimeFormat             *string          `json:"time_format,omitempty" validate:"omitempty,oneof=12h 24h"`
	WorkWeek               *string          `json:"work_week,omitempty" validate:"omitempty,max=50"`
}

// OnboardingInput defines the data collected when an owner first sets up their profile.
type OnboardingInput struct {
	FirstName         string           `json:"first_name" validate:"required,max=100"`
	LastName          string           `json:"last_name" validate:"max=100"`
	DefaultHourlyWage *decimal.Decimal `json:"default_hourly_wage,omitempty"`
	Currency          string           `json:"currency" validate:"required,oneof=usd eur gbp"`
	TimeFormat        string           `json:"time_format" validate:"required,oneof=12h 24h"`
	WorkWeek          string           `json:"work_week" validate:"max=50"`
}
