// Package calendarfeed decides who may read a calendar feed and what events it contains.
// Serialisation to iCalendar lives in infra/ical.
package calendarfeed

import (
	"fmt"
	"time"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// TokenSuffixLength is the number of trailing characters stripped from a supplied
	// token before comparison. Feed URLs end in ".ics", which calendar clients keep.
	TokenSuffixLength = 4

	// PlaceholderDescription is used for logs without notes.
	PlaceholderDescription = "No description provided"
)

// ErrUnauthorized is returned for any token mismatch. It never says why.
var ErrUnauthorized = errors.New("calendar feed access denied")

// SecretMatcher compares a plain secret with a stored hash.
type SecretMatcher interface {
	Check(secret, hash string) bool
}

// Event is one calendar entry derived from a work log.
type Event struct {
	UID          string
	Start        time.Time
	End          time.Time
	Summary      string
	Description  string
	Created      time.Time
	LastModified time.Time
}

// Feed is the outcome of building a feed.
type Feed struct {
	OwnerID uuid.UUID
	Events  []Event
	Skipped int // Logs left out because date, start or end was missing.
}

// Builder authorises feed requests and shapes events.
type Builder struct {
	matcher   SecretMatcher
	decoyHash string
}

// NewBuilder creates a Builder that checks tokens with matcher. decoyHash is compared
// against when the owner has no usable token, so a rejection costs the same whether or
// not a feed is enabled.
func NewBuilder(matcher SecretMatcher, decoyHash string) *Builder {
	return &Builder{matcher: matcher, decoyHash: decoyHash}
}

// Authorize checks supplied against stored. The last TokenSuffixLength characters of
// supplied are dropped before comparing. Exactly one comparison runs on every path.
func (b *Builder) Authorize(stored *entity.CalendarToken, supplied string) error {
	enabled := stored.IsEnabled()
	hash := b.decoyHash
	if enabled {
		hash = stored.TokenHash
	}

	secret, stripped := StripSuffix(supplied)
	matched := b.matcher.Check(secret, hash)

	if !enabled || !stripped || !matched {
		return ErrUnauthorized
	}

	return nil
}

// LogLoader fetches the logs of an authorised owner.
type LogLoader func() ([]*entity.WorkLog, error)

// Build authorises the request, then loads logs and converts them into events. load is not
// called for unauthorised requests.
func (b *Builder) Build(ownerID uuid.UUID, stored *entity.CalendarToken, supplied string, load LogLoader) (*Feed, error) {
	if stored != nil && stored.OwnerID != ownerID {
		stored = nil
	}
	if err := b.Authorize(stored, supplied); err != nil {
		return nil, err
	}

	logs, err := load()
	if err != nil {
		return nil, errors.Wrap(err, "load work logs")
	}

	feed := BuildEvents(logs)
	feed.OwnerID = ownerID

	return feed, nil
}

// StripSuffix removes the trailing TokenSuffixLength characters. It reports false when
// nothing would remain.
func StripSuffix(supplied string) (string, bool) {
	if len(supplied) <= TokenSuffixLength {
		return "", false
	}

	return supplied[:len(supplied)-TokenSuffixLength], true
}

// BuildEvents converts logs into events, skipping incomplete ones.
func BuildEvents(logs []*entity.WorkLog) *Feed {
	feed := &Feed{Events: make([]Event, 0, len(logs))}
	for _, log := range logs {
		if log == nil || !log.IsComplete() {
			feed.Skipped++

			continue
		}
		feed.Events = append(feed.Events, EventFor(log))
	}

	return feed
}

// EventFor shapes one complete log. Start and end combine the date with the log's hour
// and minute in UTC.
func EventFor(log *entity.WorkLog) Event {
	description := log.Notes
	if description == "" {
		description = PlaceholderDescription
	}

	return Event{
		UID:          EventUID(log.ID),
		Start:        atUTC(log.Date, log.StartTime),
		End:          atUTC(log.Date, log.EndTime),
		Summary:      Summary(log.StartTime, log.EndTime),
		Description:  description,
		Created:      log.CreatedAt.UTC(),
		LastModified: log.UpdatedAt.UTC(),
	}
}

// EventUID derives a stable UID from a log id.
func EventUID(id uuid.UUID) string {
	return fmt.Sprintf("worklog-%s@workhours", id)
}

// Summary renders "Work: 8h" or "Work: 8h 15m".
func Summary(start, end clocktime.TimeOfDay) string {
	return "Work: " + clocktime.FormatSpan(clocktime.MinutesWorked(start, end))
}

func atUTC(date time.Time, t clocktime.TimeOfDay) time.Time {
	y, m, d := date.Date()

	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, time.UTC)
}
