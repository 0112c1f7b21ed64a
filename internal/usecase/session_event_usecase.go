package usecase

import (
	"context"

	"workhours/internal/domain/service"
)

// SessionEventUsecase consumes published clock session transitions.
type SessionEventUsecase interface {
	// HandleSessionEvent checks one event against the store. Malformed events fail with
	// ErrValidationFailed and should not be redelivered.
	HandleSessionEvent(ctx context.Context, event *service.SessionEvent) error
}
