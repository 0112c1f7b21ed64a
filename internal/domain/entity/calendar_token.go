package entity

import (
	"time"

	"github.com/google/uuid"
)

// CalendarToken grants read access to an owner's calendar feed. Only a hash of the
// secret is kept; the plain value is shown to the owner once, when generated.
type CalendarToken struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	TokenHash string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEnabled reports whether a secret is present.
func (t *CalendarToken) IsEnabled() bool {
	return t != nil && t.TokenHash != ""
}
