package postgres

import (
	"context"
	"time"

	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// clockSessionRepository implements the repository.ClockSessionRepository interface.
type clockSessionRepository struct {
	db *gorm.DB
}

// NewClockSessionRepository is the constructor for clockSessionRepository.
func NewClockSessionRepository(db *gorm.DB) repository.ClockSessionRepository {
	return &clockSessionRepository{
		db: db,
	}
}

// Create persists a new active session. The partial unique index rejects a second one.
func (repo *clockSessionRepository) Create(ctx context.Context, session *entity.ClockSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.IsActive = true
	sessionM := fromClockSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveSessionExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create clock session")
	}

	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindActiveByOwner returns the owner's active session.
func (repo *clockSessionRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.ClockSession, error) {
	var sessionM model.ClockSessionModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClockSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active clock session")
	}

	return toClockSessionDomain(&sessionM), nil
}

// Close records the clock-out. Only a still-active session is updated, so a concurrent
// second clock-out finds nothing.
func (repo *clockSessionRepository) Close(ctx context.Context, session *entity.ClockSession) error {
	if session.ClockOutTime == nil {
		return errors.New("clock out time is required to close a session")
	}
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.ClockSessionModel{}).
		Where("id = ? AND owner_id = ? AND is_active = ?", session.ID, session.OwnerID, true).
		Updates(map[string]any{
			"clock_out_time": session.ClockOutTime.UTC(),
			"is_active":      false,
			"updated_at":     now,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to close clock session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClockSessionNotFound
	}

	session.IsActive = false
	session.UpdatedAt = now

	return nil
}

// ListByOwner returns the owner's sessions, newest first.
func (repo *clockSessionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.ClockSession, error) {
	var sessionModels []*model.ClockSessionModel

	query := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("clock_in_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clock sessions")
	}

	sessions := make([]*entity.ClockSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toClockSessionDomain(sessionM))
	}

	return sessions, nil
}

// --- Mapper Functions ---

func toClockSessionDomain(data *model.ClockSessionModel) *entity.ClockSession {
	if data == nil {
		return nil
	}

	return &entity.ClockSession{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		ClockInTime:  data.ClockInTime,
		ClockOutTime: data.ClockOutTime,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromClockSessionDomain(data *entity.ClockSession) *model.ClockSessionModel {
	if data == nil {
		return nil
	}

	return &model.ClockSessionModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		ClockInTime:  data.ClockInTime.UTC(),
		ClockOutTime: data.ClockOutTime,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
