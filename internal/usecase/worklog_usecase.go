// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"workhours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkLogUsecase defines the interface for manual work log management.
type WorkLogUsecase interface {
	CreateWorkLog(ctx context.Context, ownerID uuid.UUID, input *WorkLogInput) (*entity.WorkLog, error)
	GetWorkLog(ctx context.Context, ownerID, id uuid.UUID) (*entity.WorkLog, error)
	UpdateWorkLog(ctx context.Context, ownerID, id uuid.UUID, input *WorkLogInput) (*entity.WorkLog, error)
	DeleteWorkLog(ctx context.Context, ownerID, id uuid.UUID) error
	ListWorkLogs(ctx context.Context, ownerID uuid.UUID, filter entity.WorkLogFilter) ([]*entity.WorkLog, error)
	SetPaid(ctx context.Context, ownerID, id uuid.UUID, paid bool) (*entity.WorkLog, error)
	MarkPaidInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time, paid bool) (int64, error)
}

// --- Input DTOs ---

// WorkLogInput carries the editable fields of a work log. Date is YYYY-MM-DD and times are
// HH:MM or HH:MM:SS. UsesDefaultRate defaults to true when omitted. Paid is read on create
// only; an existing log changes paid status through SetPaid.
type WorkLogInput struct {
	Date            string           `json:"date" validate:"required"`
	StartTime       string           `json:"start_time" validate:"required"`
	EndTime         string           `json:"end_time" validate:"required"`
	UsesDefaultRate *bool            `json:"uses_default_rate,omitempty"`
	CustomRate      *decimal.Decimal `json:"custom_rate,omitempty"`
	Notes           string           `json:"notes" validate:"max=2000"`
	Paid            *bool            `json:"paid,omitempty"`
}
