package postgres

import (
	"context"

	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// calendarTokenRepository implements the repository.CalendarTokenRepository interface.
type calendarTokenRepository struct {
	db *gorm.DB
}

// NewCalendarTokenRepository is the constructor for calendarTokenRepository.
func NewCalendarTokenRepository(db *gorm.DB) repository.CalendarTokenRepository {
	return &calendarTokenRepository{
		db: db,
	}
}

// FindByOwner returns the owner's token.
func (repo *calendarTokenRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.CalendarToken, error) {
	var tokenM model.CalendarTokenModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCalendarTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find calendar token")
	}

	return &entity.CalendarToken{
		OwnerID:   tokenM.OwnerID,
		TokenHash: tokenM.TokenHash,
		CreatedAt: tokenM.CreatedAt,
		UpdatedAt: tokenM.UpdatedAt,
	}, nil
}

// Upsert stores a new token hash, replacing any previous one.
func (repo *calendarTokenRepository) Upsert(ctx context.Context, token *entity.CalendarToken) error {
	tokenM := &model.CalendarTokenModel{
		OwnerID:   token.OwnerID,
		TokenHash: token.TokenHash,
		CreatedAt: token.CreatedAt,
		UpdatedAt: token.UpdatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token_hash", "updated_at"}),
		}).
		Create(tokenM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save calendar token")
	}

	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// Delete revokes the owner's token.
func (repo *calendarTokenRepository) Delete(ctx context.Context, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.CalendarTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete calendar token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCalendarTokenNotFound
	}

	return nil
}
