package entity

import (
	"time"

	"workhours/internal/domain/clocktime"

	"github.com/google/uuid"
)

// ClockSession is a live or finished clock-in span.
type ClockSession struct {
	ID           uuid.UUID  `json:"id"`                       // The Global Unique Identifier (GUID) for the session.
	OwnerID      uuid.UUID  `json:"owner_id"`                 // The owner who clocked in.
	ClockInTime  time.Time  `json:"clock_in_time"`            // Instant of clock-in.
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"` // Instant of clock-out, nil while active.
	IsActive     bool       `json:"is_active"`                // At most one active session per owner.
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Close marks the session finished at out.
func (s *ClockSession) Close(out time.Time) {
	s.ClockOutTime = &out
	s.IsActive = false
	s.UpdatedAt = out
}

// Elapsed returns the time since clock-in, or the full span once closed.
func (s *ClockSession) Elapsed(now time.Time) time.Duration {
	if s.ClockOutTime != nil {
		return s.ClockOutTime.Sub(s.ClockInTime)
	}

	return now.Sub(s.ClockInTime)
}

// DeriveWorkLog turns a closed session into the work log it produced. Wall-clock values are
// read in loc. A session that runs past midnight is capped at 23:59:59 of the clock-in day.
func (s *ClockSession) DeriveWorkLog(loc *time.Location) *WorkLog {
	in := s.ClockInTime.In(loc)
	out := in
	if s.ClockOutTime != nil {
		out = s.ClockOutTime.In(loc)
	}

	end := clocktime.FromTime(out)
	if !clocktime.DateOf(in).Equal(clocktime.DateOf(out)) {
		end, _ = clocktime.New(23, 59, 59)
	}

	return &WorkLog{
		ID:              uuid.New(),
		OwnerID:         s.OwnerID,
		Date:            clocktime.DateOf(in),
		StartTime:       clocktime.FromTime(in),
		EndTime:         end,
		UsesDefaultRate: true,
		CreatedAt:       out,
		UpdatedAt:       out,
	}
}

// ClockStatus is the owner's current clock state.
type ClockStatus struct {
	IsClockedIn bool          `json:"is_clocked_in"`
	Session     *ClockSession `json:"session,omitempty"`
	ClockInTime *time.Time    `json:"clock_in_time,omitempty"`
	Elapsed     string        `json:"elapsed,omitempty"` // Human readable, e.g. "1h30m".
}
