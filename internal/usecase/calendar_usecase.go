package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CalendarUsecase manages feed tokens and serves the calendar feed.
type CalendarUsecase interface {
	// GenerateToken replaces any existing token. The plain value is only returned here.
	GenerateToken(ctx context.Context, ownerID uuid.UUID) (*CalendarTokenResult, error)
	RevokeToken(ctx context.Context, ownerID uuid.UUID) error
	TokenStatus(ctx context.Context, ownerID uuid.UUID) (*CalendarTokenStatus, error)
	// SubscriptionQR renders the subscription URL for token after checking it against the stored hash.
	SubscriptionQR(ctx context.Context, ownerID uuid.UUID, token string) ([]byte, error)
	// BuildFeed authorises suppliedToken, which still carries its 4-character suffix.
	BuildFeed(ctx context.Context, ownerID uuid.UUID, suppliedToken string) (*CalendarFeed, error)
}

// CalendarTokenResult is returned once when a token is generated.
type CalendarTokenResult struct {
	Token     string    `json:"token"`
	FeedURL   string    `json:"feed_url"`
	QRCode    []byte    `json:"qr_code"` // PNG, base64 in JSON
	CreatedAt time.Time `json:"created_at"`
}

// CalendarTokenStatus describes whether the feed is enabled.
type CalendarTokenStatus struct {
	Enabled   bool       `json:"enabled"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CalendarFeed is a rendered feed document.
type CalendarFeed struct {
	Body        []byte
	ContentType string
	Events      int
	Skipped     int
}
