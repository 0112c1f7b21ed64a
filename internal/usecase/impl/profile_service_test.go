package impl

import (
	"context"
	"testing"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service usecase.ProfileUsecase
	repos   *repoMocks
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	repos := newRepoMocks(t)
	service := NewProfileService(ProfileServiceParams{
		TxManager: repos.txManager,
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{service: service, repos: repos}
}

func strPtr(v string) *string { return &v }

func TestProfileService_GetProfile_DefaultsWhenMissing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, repository.ErrWageProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, profile.OwnerID)
	assert.Equal(t, entity.CurrencyUSD, profile.Currency)
	assert.Equal(t, clocktime.Format24h, profile.TimeFormat)
	assert.False(t, profile.DefaultHourlyWage.Valid)
}

func TestProfileService_UpdateProfile_Partial(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	existing := testProfile("20")
	existing.OwnerID = ownerID
	existing.FirstName = "Ada"

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(existing, nil)
	fx.repos.profileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.WageProfile")).Return(nil)

	wage := decimal.RequireFromString("27.5")
	profile, err := fx.service.UpdateProfile(ctx, ownerID, &usecase.UpdateProfileInput{
		DefaultHourlyWage: &wage,
		Currency:          strPtr("gbp"),
		TimeFormat:        strPtr("12h"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, entity.CurrencyGBP, profile.Currency)
	assert.Equal(t, clocktime.Format12h, profile.TimeFormat)
	assert.True(t, wage.Equal(profile.DefaultHourlyWage.Decimal))
}

func TestProfileService_UpdateProfile_ClearWage(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(testProfile("20"), nil)
	fx.repos.profileRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(p *entity.WageProfile) bool { return !p.DefaultHourlyWage.Valid })).
		Return(nil)

	_, err := fx.service.UpdateProfile(ctx, ownerID, &usecase.UpdateProfileInput{ClearDefaultHourlyWage: true})
	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_Invalid(t *testing.T) {
	negative := decimal.RequireFromString("-5")

	tests := []struct {
		name  string
		input *usecase.UpdateProfileInput
	}{
		{"unknown currency", &usecase.UpdateProfileInput{Currency: strPtr("jpy")}},
		{"unknown time format", &usecase.UpdateProfileInput{TimeFormat: strPtr("am/pm")}},
		{"negative wage", &usecase.UpdateProfileInput{DefaultHourlyWage: &negative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()
			ownerID := uuid.New()

			fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(testProfile(""), nil)

			_, err := fx.service.UpdateProfile(ctx, ownerID, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProfileService_CompleteOnboarding(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	wage := decimal.RequireFromString("18")

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, repository.ErrWageProfileNotFound)
	fx.repos.profileRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(p *entity.WageProfile) bool {
			return p.OwnerID == ownerID && p.OnboardingCompleted && p.Currency == entity.CurrencyEUR
		})).
		Return(nil)

	profile, err := fx.service.CompleteOnboarding(ctx, ownerID, &usecase.OnboardingInput{
		FirstName:         "Grace",
		LastName:          "Hopper",
		DefaultHourlyWage: &wage,
		Currency:          "eur",
		TimeFormat:        "24h",
		WorkWeek:          "mon-fri",
	})
	require.NoError(t, err)
	assert.Equal(t, "Grace", profile.FirstName)
	assert.Equal(t, "€", profile.CurrencySymbol())
}

func TestProfileService_CompleteOnboarding_InvalidCurrency(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.CompleteOnboarding(context.Background(), uuid.New(), &usecase.OnboardingInput{
		FirstName:  "Grace",
		Currency:   "btc",
		TimeFormat: "24h",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
