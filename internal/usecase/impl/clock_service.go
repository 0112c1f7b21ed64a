package impl

import (
	"context"
	"log/slog"
	"time"

	"workhours/config"
	deliverycontext "workhours/internal/delivery/context"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/domain/service"
	"workhours/internal/usecase"
	"workhours/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// clockService implements the ClockUsecase interface.
type clockService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	location  *time.Location
	now       func() time.Time
	logger    *slog.Logger
}

// ClockServiceParams holds dependencies for ClockService, injected by Fx.
type ClockServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewClockService is the constructor for clockService.
func NewClockService(params ClockServiceParams) usecase.ClockUsecase {
	return &clockService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		location:  params.Config.Location(),
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *clockService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ClockIn opens a new session. The lookup and insert share a transaction and the store's
// partial unique index rejects a concurrent second insert.
func (srv *clockService) ClockIn(ctx context.Context, ownerID uuid.UUID) (*entity.ClockSession, error) {
	now := srv.now()
	session := &entity.ClockSession{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ClockInTime: now,
		IsActive:    true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.ClockSessionRepo()

		_, err := sessionRepo.FindActiveByOwner(ctx, ownerID)
		if err == nil {
			return errors.WithStack(domainerrors.ErrAlreadyClockedIn)
		}
		if !errors.Is(err, repository.ErrClockSessionNotFound) {
			return errors.Wrap(err, "failed to find active session")
		}

		if err := sessionRepo.Create(ctx, session); err != nil {
			if errors.Is(err, repository.ErrActiveSessionExists) {
				return errors.WithStack(domainerrors.ErrAlreadyClockedIn)
			}

			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Clocked in", slog.Any("owner_id", ownerID), slog.Any("session_id", session.ID))
	srv.publish(ctx, &service.SessionEvent{
		Type:        service.EventSessionOpened,
		SessionID:   session.ID.String(),
		OwnerID:     ownerID.String(),
		ClockInTime: session.ClockInTime,
		OccurredAt:  now,
	})

	return session, nil
}

// ClockOut closes the active session and stores the derived log. Both writes commit together
// or not at all.
func (srv *clockService) ClockOut(ctx context.Context, ownerID uuid.UUID) (*usecase.ClockOutResult, error) {
	now := srv.now()
	var result usecase.ClockOutResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.ClockSessionRepo()

		session, err := sessionRepo.FindActiveByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrClockSessionNotFound) {
				return errors.WithStack(domainerrors.ErrNotClockedIn)
			}

			return errors.Wrap(err, "failed to find active session")
		}

		session.Close(now)
		if err := sessionRepo.Close(ctx, session); err != nil {
			if errors.Is(err, repository.ErrClockSessionNotFound) {
				return errors.WithStack(domainerrors.ErrNotClockedIn)
			}

			return errors.Wrap(err, "failed to close session")
		}

		workLog := session.DeriveWorkLog(srv.location)
		if err := repoFactory.WorkLogRepo().Create(ctx, workLog); err != nil {
			return errors.Wrap(err, "failed to record work log")
		}

		result.Session = session
		result.WorkLog = workLog

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Clocked out",
		slog.Any("owner_id", ownerID),
		slog.Any("session_id", result.Session.ID),
		slog.Any("work_log_id", result.WorkLog.ID),
		slog.String("elapsed", util.FormatDuration(result.Session.Elapsed(now))),
	)
	srv.publish(ctx, &service.SessionEvent{
		Type:         service.EventSessionClosed,
		SessionID:    result.Session.ID.String(),
		OwnerID:      ownerID.String(),
		ClockInTime:  result.Session.ClockInTime,
		ClockOutTime: result.Session.ClockOutTime,
		WorkLogID:    result.WorkLog.ID.String(),
		OccurredAt:   now,
	})

	return &result, nil
}

// CurrentStatus reports whether the owner is clocked in and for how long.
func (srv *clockService) CurrentStatus(ctx context.Context, ownerID uuid.UUID) (*entity.ClockStatus, error) {
	status := &entity.ClockStatus{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.ClockSessionRepo().FindActiveByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrClockSessionNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find active session")
		}

		clockIn := session.ClockInTime
		status.IsClockedIn = true
		status.Session = session
		status.ClockInTime = &clockIn
		status.Elapsed = util.FormatDuration(session.Elapsed(srv.now()))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

// ListSessions returns session history, newest first.
func (srv *clockService) ListSessions(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.ClockSession, error) {
	var sessions []*entity.ClockSession

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ClockSessionRepo().ListByOwner(ctx, ownerID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list sessions")
		}
		sessions = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// publish runs after commit. A failed publish is logged and never undoes the transition.
func (srv *clockService) publish(ctx context.Context, event *service.SessionEvent) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishSessionEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish session event",
			slog.String("type", event.Type),
			slog.String("session_id", event.SessionID),
			slog.Any("error", err),
		)
	}
}
