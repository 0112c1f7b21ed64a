package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "workhours/internal/delivery/context"
	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the saved profile, or the defaults when none was saved.
func (srv *profileService) GetProfile(ctx context.Context, ownerID uuid.UUID) (*entity.WageProfile, error) {
	var profile *entity.WageProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadProfile(ctx, repoFactory, ownerID)
		if err != nil {
			return err
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateProfile applies a partial update, creating the profile when missing.
func (srv *profileService) UpdateProfile(ctx context.Context, ownerID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.WageProfile, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("request body is required")
	}

	var profile *entity.WageProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadProfile(ctx, repoFactory, ownerID)
		if err != nil {
			return err
		}

		if err := applyProfileUpdate(found, input); err != nil {
			return err
		}
		found.UpdatedAt = time.Now()

		if err := repoFactory.WageProfileRepo().Upsert(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.Any("owner_id", ownerID))

	return profile, nil
}

// CompleteOnboarding stores the initial profile and flags onboarding as done.
func (srv *profileService) CompleteOnboarding(ctx context.Context, ownerID uuid.UUID, input *usecase.OnboardingInput) (*entity.WageProfile, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("request body is required")
	}

	currency := entity.Currency(input.Currency)
	format := clocktime.DisplayFormat(input.TimeFormat)
	if err := validateDisplayPrefs(currency, format); err != nil {
		return nil, err
	}
	wage, err := validateWage(input.DefaultHourlyWage)
	if err != nil {
		return nil, err
	}

	var profile *entity.WageProfile

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := loadProfile(ctx, repoFactory, ownerID)
		if err != nil {
			return err
		}

		found.FirstName = input.FirstName
		found.LastName = input.LastName
		found.DefaultHourlyWage = wage
		found.Currency = currency
		found.TimeFormat = format
		found.WorkWeek = input.WorkWeek
		found.OnboardingCompleted = true
		found.UpdatedAt = time.Now()

		if err := repoFactory.WageProfileRepo().Upsert(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Onboarding completed", slog.Any("owner_id", ownerID))

	return profile, nil
}

// loadProfile returns the owner's profile or a default one when none exists.
func loadProfile(ctx context.Context, repoFactory repository.RepositoryFactory, ownerID uuid.UUID) (*entity.WageProfile, error) {
	profile, err := repoFactory.WageProfileRepo().FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrWageProfileNotFound) {
			return entity.DefaultWageProfile(ownerID), nil
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func applyProfileUpdate(profile *entity.WageProfile, input *usecase.UpdateProfileInput) error {
	currency := profile.Currency
	if input.Currency != nil {
		currency = entity.Currency(*input.Currency)
	}
	format := profile.TimeFormat
	if input.TimeFormat != nil {
		format = clocktime.DisplayFormat(*input.TimeFormat)
	}
	if err := validateDisplayPrefs(currency, format); err != nil {
		return err
	}

	wage := profile.DefaultHourlyWage
	switch {
	case input.ClearDefaultHourlyWage:
		wage = decimal.NullDecimal{}
	case input.DefaultHourlyWage != nil:
		validated, err := validateWage(input.DefaultHourlyWage)
		if err != nil {
			return err
		}
		wage = validated
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.WorkWeek != nil {
		profile.WorkWeek = *input.WorkWeek
	}
	profile.Currency = currency
	profile.TimeFormat = format
	profile.DefaultHourlyWage = wage

	return nil
}

func validateDisplayPrefs(currency entity.Currency, format clocktime.DisplayFormat) error {
	if !currency.IsValid() {
		return domainerrors.NewValidationError("currency must be one of usd, eur, gbp")
	}
	if !format.Valid() {
		return domainerrors.NewValidationError("time_format must be 12h or 24h")
	}

	return nil
}

func validateWage(wage *decimal.Decimal) (decimal.NullDecimal, error) {
	if wage == nil {
		return decimal.NullDecimal{}, nil
	}
	if wage.IsNegative() {
		return decimal.NullDecimal{}, domainerrors.NewValidationError("default_hourly_wage must not be negative")
	}

	return decimal.NewNullDecimal(*wage), nil
}
