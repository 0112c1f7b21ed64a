// Package repository defines the interfaces for the persistence layer.
// Every method is scoped by owner id; a row owned by someone else is reported as not found.
package repository

import (
	"context"
	"time"

	"workhours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWorkLogNotFound is returned when no work log matches the owner and id.
var ErrWorkLogNotFound = errors.New("work log not found")

// WorkLogRepository defines the interface for work log persistence.
type WorkLogRepository interface {
	// Create persists a new work log.
	Create(ctx context.Context, log *entity.WorkLog) error

	// FindByID retrieves one of the owner's logs.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.WorkLog, error)

	// Update overwrites the editable fields of an existing log.
	Update(ctx context.Context, log *entity.WorkLog) error

	// Delete removes one of the owner's logs.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// List returns the owner's logs matching filter, ordered by date then start time.
	List(ctx context.Context, ownerID uuid.UUID, filter entity.WorkLogFilter) ([]*entity.WorkLog, error)

	// SetPaid sets the paid flag of one log.
	SetPaid(ctx context.Context, ownerID, id uuid.UUID, paid bool) error

	// SetPaidInRange sets the paid flag of every log dated within [from, to] and returns the row count.
	SetPaidInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time, paid bool) (int64, error)
}
