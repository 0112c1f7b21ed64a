package repository

import (
	"context"

	"workhours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for clock session persistence.
var (
	// ErrClockSessionNotFound is returned when the owner has no matching session.
	ErrClockSessionNotFound = errors.New("clock session not found")
	// ErrActiveSessionExists is returned when the store rejects a second active session for an owner.
	ErrActiveSessionExists = errors.New("owner already has an active clock session")
)

// ClockSessionRepository defines the interface for clock session persistence.
type ClockSessionRepository interface {
	// Create persists a new active session. The store guarantees at most one active session per owner.
	Create(ctx context.Context, session *entity.ClockSession) error

	// FindActiveByOwner returns the owner's active session.
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.ClockSession, error)

	// Close records the clock-out of an active session.
	Close(ctx context.Context, session *entity.ClockSession) error

	// ListByOwner returns the owner's sessions, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.ClockSession, error)
}
