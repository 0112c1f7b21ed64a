package usecase

import (
	"context"

	"workhours/internal/domain/entity"

	"github.com/google/uuid"
)

// ClockUsecase drives the clock-in/clock-out state machine. An owner is either idle or has
// exactly one active session.
type ClockUsecase interface {
	// ClockIn opens a session. It fails with ErrAlreadyClockedIn when one is open.
	ClockIn(ctx context.Context, ownerID uuid.UUID) (*entity.ClockSession, error)

	// ClockOut closes the open session and records the derived work log in the same transaction.
	ClockOut(ctx context.Context, ownerID uuid.UUID) (*ClockOutResult, error)

	// CurrentStatus reports whether the owner is clocked in.
	CurrentStatus(ctx context.Context, ownerID uuid.UUID) (*entity.ClockStatus, error)

	// ListSessions returns session history, newest first.
	ListSessions(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.ClockSession, error)
}

// ClockOutResult is the closed session and the log it produced.
type ClockOutResult struct {
	Session *entity.ClockSession `json:"session"`
	WorkLog *entity.WorkLog      `json:"work_log"`
}
