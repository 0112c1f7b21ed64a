// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"workhours/internal/domain/clocktime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkLog is one worked span on a single calendar day.
type WorkLog struct {
	ID              uuid.UUID           `json:"id"`                // The Global Unique Identifier (GUID) for the log.
	OwnerID         uuid.UUID           `json:"owner_id"`          // The owner who worked these hours.
	Date            time.Time           `json:"date"`              // Calendar date as UTC midnight.
	StartTime       clocktime.TimeOfDay `json:"start_time"`        // Naive wall-clock start.
	EndTime         clocktime.TimeOfDay `json:"end_time"`          // Naive wall-clock end, same day as start.
	UsesDefaultRate bool                `json:"uses_default_rate"` // When true the owner's default wage applies.
	CustomRate      decimal.NullDecimal `json:"custom_rate"`       // Set exactly when UsesDefaultRate is false.
	Notes           string              `json:"notes,omitempty"`   // Free-form description.
	Paid            bool                `json:"paid"`              // Whether the owner has been paid for this log.
	CreatedAt       time.Time           `json:"created_at"`        // Timestamp of when this log was created.
	UpdatedAt       time.Time           `json:"updated_at"`        // Timestamp of the last modification.
}

// IsComplete reports whether the log has a date and both times.
func (l *WorkLog) IsComplete() bool {
	return !l.Date.IsZero() && !l.StartTime.IsZero() && !l.EndTime.IsZero()
}

// Hours returns the worked hours, or zero for incomplete logs.
func (l *WorkLog) Hours() decimal.Decimal {
	if !l.IsComplete() {
		return decimal.Zero
	}

	return clocktime.HoursWorked(l.StartTime, l.EndTime)
}

// DayKey returns the YYYY-MM-DD form of Date.
func (l *WorkLog) DayKey() string {
	return clocktime.FormatDate(l.Date)
}

// WorkLogFilter narrows a work log listing. Nil fields are not applied.
type WorkLogFilter struct {
	From  *time.Time // Inclusive lower date bound.
	To    *time.Time // Inclusive upper date bound.
	Paid  *bool      // Paid status to match.
	Limit int        // Maximum rows; zero means unlimited.
	Asc   bool       // Oldest first when true, newest first otherwise.
}
