package service

import (
	"context"
	"time"
)

// Session event types.
const (
	EventSessionOpened = "session.opened"
	EventSessionClosed = "session.closed"
)

// SessionEvent describes a clock state transition.
type SessionEvent struct {
	RequestID    string     `json:"request_id,omitempty"` // For distributed tracing
	Type         string     `json:"type"`
	SessionID    string     `json:"session_id"`
	OwnerID      string     `json:"owner_id"`
	ClockInTime  time.Time  `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	WorkLogID    string     `json:"work_log_id,omitempty"` // Log derived on clock-out
	OccurredAt   time.Time  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSessionEvent publishes a clock session transition
	PublishSessionEvent(ctx context.Context, event *SessionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
