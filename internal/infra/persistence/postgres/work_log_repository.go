package postgres

import (
	"context"
	"time"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workLogRepository implements the repository.WorkLogRepository interface.
type workLogRepository struct {
	db *gorm.DB
}

// NewWorkLogRepository is the constructor for workLogRepository.
func NewWorkLogRepository(db *gorm.DB) repository.WorkLogRepository {
	return &workLogRepository{
		db: db,
	}
}

// Create persists a new work log.
func (repo *workLogRepository) Create(ctx context.Context, log *entity.WorkLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	logM := fromWorkLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required work log information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create work log")
	}

	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// FindByID retrieves one of the owner's logs.
func (repo *workLogRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.WorkLog, error) {
	var logM model.WorkLogModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find work log by ID")
	}

	return toWorkLogDomain(&logM), nil
}

// Update overwrites the editable fields of an existing log. Zero values are written too.
// The paid flag is owned by SetPaid and MarkPaidInRange.
func (repo *workLogRepository) Update(ctx context.Context, log *entity.WorkLog) error {
	logM := fromWorkLogDomain(log)
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.WorkLogModel{}).
		Where("id = ? AND owner_id = ?", log.ID, log.OwnerID).
		Updates(map[string]any{
			"date":              logM.Date,
			"start_time":        logM.StartTime,
			"end_time":          logM.EndTime,
			"uses_default_rate": logM.UsesDefaultRate,
			"custom_rate":       logM.CustomRate,
			"notes":             logM.Notes,
			"updated_at":        now,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update work log")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkLogNotFound
	}

	log.UpdatedAt = now

	return nil
}

// Delete removes one of the owner's logs.
func (repo *workLogRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.WorkLogModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete work log")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkLogNotFound
	}

	return nil
}

// List returns the owner's logs matching filter.
func (repo *workLogRepository) List(ctx context.Context, ownerID uuid.UUID, filter entity.WorkLogFilter) ([]*entity.WorkLog, error) {
	var logModels []*model.WorkLogModel

	query := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.From != nil {
		query = query.Where("date >= ?", clocktime.FormatDate(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", clocktime.FormatDate(*filter.To))
	}
	if filter.Paid != nil {
		query = query.Where("paid = ?", *filter.Paid)
	}
	if filter.Asc {
		query = query.Order("date ASC").Order("start_time ASC")
	} else {
		query = query.Order("date DESC").Order("start_time DESC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list work logs")
	}

	logs := make([]*entity.WorkLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toWorkLogDomain(logM))
	}

	return logs, nil
}

// SetPaid sets the paid flag of one log.
func (repo *workLogRepository) SetPaid(ctx context.Context, ownerID, id uuid.UUID, paid bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkLogModel{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]any{"paid": paid, "updated_at": time.Now().UTC()})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update paid status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkLogNotFound
	}

	return nil
}

// SetPaidInRange sets the paid flag of every log dated within [from, to].
func (repo *workLogRepository) SetPaidInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time, paid bool) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkLogModel{}).
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, clocktime.FormatDate(from), clocktime.FormatDate(to)).
		Updates(map[string]any{"paid": paid, "updated_at": time.Now().UTC()})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update paid status in range")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toWorkLogDomain converts a GORM WorkLogModel to a domain WorkLog entity.
// Malformed stored values are read as unset.
func toWorkLogDomain(data *model.WorkLogModel) *entity.WorkLog {
	if data == nil {
		return nil
	}

	log := &entity.WorkLog{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		UsesDefaultRate: data.UsesDefaultRate,
		CustomRate:      data.CustomRate,
		Notes:           data.Notes,
		Paid:            data.Paid,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.Date != nil {
		log.Date, _ = clocktime.ParseDate(*data.Date)
	}
	if data.StartTime != nil {
		log.StartTime, _ = clocktime.Parse(*data.StartTime)
	}
	if data.EndTime != nil {
		log.EndTime, _ = clocktime.Parse(*data.EndTime)
	}

	return log
}

// fromWorkLogDomain converts a domain WorkLog entity to a GORM WorkLogModel.
func fromWorkLogDomain(data *entity.WorkLog) *model.WorkLogModel {
	if data == nil {
		return nil
	}

	logM := &model.WorkLogModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		UsesDefaultRate: data.UsesDefaultRate,
		CustomRate:      data.CustomRate,
		Notes:           data.Notes,
		Paid:            data.Paid,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if !data.Date.IsZero() {
		date := clocktime.FormatDate(data.Date)
		logM.Date = &date
	}
	if !data.StartTime.IsZero() {
		start := data.StartTime.String()
		logM.StartTime = &start
	}
	if !data.EndTime.IsZero() {
		end := data.EndTime.String()
		logM.EndTime = &end
	}

	return logM
}
