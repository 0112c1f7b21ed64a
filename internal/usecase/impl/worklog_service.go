// Package impl contains the implementation of the application's business logic.
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

// workLogService implements the WorkLogUsecase interface.
type workLogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// WorkLogServiceParams holds dependencies for WorkLogService, injected by Fx.
type WorkLogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewWorkLogService is the constructor for workLogService.
func NewWorkLogService(params WorkLogServiceParams) usecase.WorkLogUsecase {
	return &workLogService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *workLogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWorkLog validates input and stores a new manual log.
func (srv *workLogService) CreateWorkLog(ctx context.Context, ownerID uuid.UUID, input *usecase.WorkLogInput) (*entity.WorkLog, error) {
	log := &entity.WorkLog{ID: uuid.New(), OwnerID: ownerID}
	if err := applyWorkLogInput(log, input); err != nil {
		return nil, err
	}
	if input.Paid != nil {
		log.Paid = *input.Paid
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.WorkLogRepo().Create(ctx, log); err != nil {
			return errors.Wrap(err, "failed to create work log")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Work log created",
		slog.Any("owner_id", ownerID),
		slog.Any("work_log_id", log.ID),
		slog.String("date", log.DayKey()),
	)

	return log, nil
}

// GetWorkLog returns one of the owner's logs.
func (srv *workLogService) GetWorkLog(ctx context.Context, ownerID, id uuid.UUID) (*entity.WorkLog, error) {
	var log *entity.WorkLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.WorkLogRepo().FindByID(ctx, ownerID, id)
		if err != nil {
			return mapWorkLogError(err, "failed to find work log")
		}
		log = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return log, nil
}

// UpdateWorkLog replaces the editable fields of a log. The paid flag is left as stored.
func (srv *workLogService) UpdateWorkLog(ctx context.Context, ownerID, id uuid.UUID, input *usecase.WorkLogInput) (*entity.WorkLog, error) {
	var log *entity.WorkLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workLogRepo := repoFactory.WorkLogRepo()

		found, err := workLogRepo.FindByID(ctx, ownerID, id)
		if err != nil {
			return mapWorkLogError(err, "failed to find work log")
		}

		if err := applyWorkLogInput(found, input); err != nil {
			return err
		}

		if err := workLogRepo.Update(ctx, found); err != nil {
			return mapWorkLogError(err, "failed to update work log")
		}
		log = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Work log updated", slog.Any("owner_id", ownerID), slog.Any("work_log_id", id))

	return log, nil
}

// DeleteWorkLog removes one of the owner's logs.
func (srv *workLogService) DeleteWorkLog(ctx context.Context, ownerID, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.WorkLogRepo().Delete(ctx, ownerID, id); err != nil {
			return mapWorkLogError(err, "failed to delete work log")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Work log deleted", slog.Any("owner_id", ownerID), slog.Any("work_log_id", id))

	return nil
}

// ListWorkLogs returns the owner's logs matching filter.
func (srv *workLogService) ListWorkLogs(ctx context.Context, ownerID uuid.UUID, filter entity.WorkLogFilter) ([]*entity.WorkLog, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domainerrors.NewValidationError("from must not be after to")
	}

	var logs []*entity.WorkLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.WorkLogRepo().List(ctx, ownerID, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list work logs")
		}
		logs = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// SetPaid toggles the paid flag of one log and returns the updated log.
func (srv *workLogService) SetPaid(ctx context.Context, ownerID, id uuid.UUID, paid bool) (*entity.WorkLog, error) {
	var log *entity.WorkLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workLogRepo := repoFactory.WorkLogRepo()

		if err := workLogRepo.SetPaid(ctx, ownerID, id, paid); err != nil {
			return mapWorkLogError(err, "failed to set paid status")
		}

		found, err := workLogRepo.FindByID(ctx, ownerID, id)
		if err != nil {
			return mapWorkLogError(err, "failed to reload work log")
		}
		log = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return log, nil
}

// MarkPaidInRange sets the paid flag of every log dated within [from, to].
func (srv *workLogService) MarkPaidInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time, paid bool) (int64, error) {
	if from.After(to) {
		return 0, domainerrors.NewValidationError("from must not be after to")
	}

	var affected int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.WorkLogRepo().SetPaidInRange(ctx, ownerID, from, to, paid)
		if err != nil {
			return errors.Wrap(err, "failed to mark work logs paid")
		}
		affected = count

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Work logs paid status updated",
		slog.Any("owner_id", ownerID),
		slog.String("from", clocktime.FormatDate(from)),
		slog.String("to", clocktime.FormatDate(to)),
		slog.Bool("paid", paid),
		slog.Int64("affected", affected),
	)

	return affected, nil
}

// applyWorkLogInput validates input and copies it onto log. Nothing is copied on error.
func applyWorkLogInput(log *entity.WorkLog, input *usecase.WorkLogInput) error {
	if input == nil {
		return domainerrors.NewValidationError("request body is required")
	}

	date, err := clocktime.ParseDate(input.Date)
	if err != nil {
		return domainerrors.NewValidationError("date: " + err.Error())
	}
	start, err := clocktime.Parse(input.StartTime)
	if err != nil {
		return domainerrors.NewValidationError("start_time: " + err.Error())
	}
	end, err := clocktime.Parse(input.EndTime)
	if err != nil {
		return domainerrors.NewValidationError("end_time: " + err.Error())
	}
	if !end.After(start) {
		return errors.WithStack(domainerrors.ErrInvalidTimeRange)
	}

	usesDefault := true
	if input.UsesDefaultRate != nil {
		usesDefault = *input.UsesDefaultRate
	}

	customRate := decimal.NullDecimal{}
	if !usesDefault {
		if input.CustomRate == nil {
			return errors.WithStack(domainerrors.ErrInvalidRate)
		}
		if input.CustomRate.IsNegative() {
			return domainerrors.NewValidationError("custom_rate must not be negative")
		}
		customRate = decimal.NewNullDecimal(*input.CustomRate)
	}

	log.Date = date
	log.StartTime = start
	log.EndTime = end
	log.UsesDefaultRate = usesDefault
	log.CustomRate = customRate
	log.Notes = input.Notes

	return nil
}

func mapWorkLogError(err error, message string) error {
	if errors.Is(err, repository.ErrWorkLogNotFound) {
		return errors.Wrap(domainerrors.ErrWorkLogNotFound, message)
	}

	return errors.Wrap(err, message)
}
