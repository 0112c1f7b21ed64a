package repository

import (
	"context"

	"workhours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCalendarTokenNotFound is returned when the owner has no feed token.
var ErrCalendarTokenNotFound = errors.New("calendar token not found")

// CalendarTokenRepository defines the interface for calendar token persistence.
type CalendarTokenRepository interface {
	// FindByOwner returns the owner's token.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.CalendarToken, error)

	// Upsert stores a new token hash for the owner, replacing any previous one.
	Upsert(ctx context.Context, token *entity.CalendarToken) error

	// Delete revokes the owner's token.
	Delete(ctx context.Context, ownerID uuid.UUID) error
}
