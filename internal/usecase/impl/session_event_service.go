package impl

import (
	"context"
	"log/slog"

	deliverycontext "workhours/internal/delivery/context"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/domain/service"
	"workhours/internal/usecase"
	"workhours/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionEventService implements the SessionEventUsecase interface.
type sessionEventService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SessionEventServiceParams holds dependencies for SessionEventService, injected by Fx.
type SessionEventServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSessionEventService is the constructor for sessionEventService.
func NewSessionEventService(params SessionEventServiceParams) usecase.SessionEventUsecase {
	return &sessionEventService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *sessionEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleSessionEvent logs opened sessions and confirms that a closed session's work log is
// readable. A missing log is returned as ErrWorkLogNotFound so the message is redelivered
// once replicas catch up.
func (srv *sessionEventService) HandleSessionEvent(ctx context.Context, event *service.SessionEvent) error {
	if event == nil {
		return domainerrors.NewValidationError("event is empty")
	}

	ownerID, err := uuid.Parse(event.OwnerID)
	if err != nil {
		return domainerrors.NewValidationError("owner_id: expected a uuid")
	}
	if _, err := uuid.Parse(event.SessionID); err != nil {
		return domainerrors.NewValidationError("session_id: expected a uuid")
	}

	switch event.Type {
	case service.EventSessionOpened:
		srv.log(ctx).Info("Session opened",
			slog.String("owner_id", event.OwnerID),
			slog.String("session_id", event.SessionID),
			slog.Time("clock_in_time", event.ClockInTime),
		)

		return nil
	case service.EventSessionClosed:
		return srv.confirmClosed(ctx, ownerID, event)
	default:
		return domainerrors.NewValidationError("type: unknown session event " + event.Type)
	}
}

func (srv *sessionEventService) confirmClosed(ctx context.Context, ownerID uuid.UUID, event *service.SessionEvent) error {
	if event.ClockOutTime == nil {
		return domainerrors.NewValidationError("clock_out_time is required for closed sessions")
	}
	workLogID, err := uuid.Parse(event.WorkLogID)
	if err != nil {
		return domainerrors.NewValidationError("work_log_id: expected a uuid")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.WorkLogRepo().FindByID(ctx, ownerID, workLogID); err != nil {
			if errors.Is(err, repository.ErrWorkLogNotFound) {
				return errors.Wrap(domainerrors.ErrWorkLogNotFound, "derived work log is not visible yet")
			}

			return errors.Wrap(err, "failed to find derived work log")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Session closed",
		slog.String("owner_id", event.OwnerID),
		slog.String("session_id", event.SessionID),
		slog.String("work_log_id", event.WorkLogID),
		slog.String("elapsed", util.FormatDuration(event.ClockOutTime.Sub(event.ClockInTime))),
	)

	return nil
}
