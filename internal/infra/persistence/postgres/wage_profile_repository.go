package postgres

import (
	"context"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wageProfileRepository implements the repository.WageProfileRepository interface.
type wageProfileRepository struct {
	db *gorm.DB
}

// NewWageProfileRepository is the constructor for wageProfileRepository.
func NewWageProfileRepository(db *gorm.DB) repository.WageProfileRepository {
	return &wageProfileRepository{
		db: db,
	}
}

// FindByOwner returns the owner's profile.
func (repo *wageProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.WageProfile, error) {
	var profileM model.WageProfileModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWageProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find wage profile")
	}

	return toWageProfileDomain(&profileM), nil
}

// Upsert creates or replaces the owner's profile. created_at survives replacement.
func (repo *wageProfileRepository) Upsert(ctx context.Context, profile *entity.WageProfile) error {
	profileM := fromWageProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name",
				"last_name",
				"default_hourly_wage",
				"currency",
				"time_format",
				"work_week",
				"onboarding_completed",
				"updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save wage profile")
	}

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profileM.CreatedAt
	}
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toWageProfileDomain(data *model.WageProfileModel) *entity.WageProfile {
	if data == nil {
		return nil
	}

	return &entity.WageProfile{
		OwnerID:             data.OwnerID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		DefaultHourlyWage:   data.DefaultHourlyWage,
		Currency:            entity.Currency(data.Currency),
		TimeFormat:          clocktime.DisplayFormat(data.TimeFormat),
		WorkWeek:            data.WorkWeek,
		OnboardingCompleted: data.OnboardingCompleted,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromWageProfileDomain(data *entity.WageProfile) *model.WageProfileModel {
	if data == nil {
		return nil
	}

	return &model.WageProfileModel{
		OwnerID:             data.OwnerID,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		DefaultHourlyWage:   data.DefaultHourlyWage,
		Currency:            string(data.Currency),
		TimeFormat:          string(data.TimeFormat),
		WorkWeek:            data.WorkWeek,
		OnboardingCompleted: data.OnboardingCompleted,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
