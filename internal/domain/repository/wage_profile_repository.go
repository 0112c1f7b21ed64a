package repository

import (
	"context"

	"workhours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWageProfileNotFound is returned when the owner never saved a profile.
var ErrWageProfileNotFound = errors.New("wage profile not found")

// WageProfileRepository defines the interface for wage profile persistence.
type WageProfileRepository interface {
	// FindByOwner returns the owner's profile.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.WageProfile, error)

	// Upsert creates or replaces the owner's profile.
	Upsert(ctx context.Context, profile *entity.WageProfile) error
}
