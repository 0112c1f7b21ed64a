// Package clocktime holds the naive wall-clock arithmetic used for work logs.
// Values carry no timezone; a log's start and end are interpreted on the log's date.
package clocktime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayFormat selects how a time of day is rendered for a user.
type DisplayFormat string

const (
	Format12h DisplayFormat = "12h"
	Format24h DisplayFormat = "24h"
)

// Valid reports whether f is a supported display format.
func (f DisplayFormat) Valid() bool {
	return f == Format12h || f == Format24h
}

// ParseError reports a malformed time-of-day or date string.
type ParseError struct {
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time value %q: %s", e.Value, e.Reason)
}

// TimeOfDay is an hour/minute/second triple. The zero value means "not set".
type TimeOfDay struct {
	hour   int
	minute int
	second int
	valid  bool
}

// New builds a TimeOfDay from its components.
func New(hour, minute, second int) (TimeOfDay, error) {
	value := fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, &ParseError{Value: value, Reason: "hour out of range"}
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, &ParseError{Value: value, Reason: "minute out of range"}
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, &ParseError{Value: value, Reason: "second out of range"}
	}

	return TimeOfDay{hour: hour, minute: minute, second: second, valid: true}, nil
}

// Parse reads "HH:MM" or "HH:MM:SS".
func Parse(value string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(value)
	parts := strings.Split(trimmed, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeOfDay{}, &ParseError{Value: value, Reason: "expected HH:MM or HH:MM:SS"}
	}

	fields := [3]int{}
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return TimeOfDay{}, &ParseError{Value: value, Reason: err.Error()}
		}
		fields[i] = n
	}

	t, err := New(fields[0], fields[1], fields[2])
	if err != nil {
		return TimeOfDay{}, &ParseError{Value: value, Reason: err.(*ParseError).Reason}
	}

	return t, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(value string) TimeOfDay {
	t, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return t
}

// FromTime takes the wall-clock components of t in its own location.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute(), second: t.Second(), valid: true}
}

func parseComponent(part string) (int, error) {
	if len(part) == 0 || len(part) > 2 {
		return 0, fmt.Errorf("component %q must be one or two digits", part)
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("component %q is not numeric", part)
		}
	}

	return strconv.Atoi(part)
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }
func (t TimeOfDay) Second() int { return t.second }

// IsZero reports whether the value was never set.
func (t TimeOfDay) IsZero() bool {
	return !t.valid
}

// Minutes returns minutes since midnight, ignoring seconds.
func (t TimeOfDay) Minutes() int {
	return t.hour*60 + t.minute
}

func (t TimeOfDay) seconds() int {
	return t.hour*3600 + t.minute*60 + t.second
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds() < other.seconds()
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.seconds() > other.seconds()
}

// String renders the storage form HH:MM:SS, or "" when unset.
func (t TimeOfDay) String() string {
	if !t.valid {
		return ""
	}

	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// Format renders t for display. Unknown formats fall back to 24h.
func (t TimeOfDay) Format(format DisplayFormat) string {
	if !t.valid {
		return ""
	}
	if format != Format12h {
		return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
	}

	period := "AM"
	if t.hour >= 12 {
		period = "PM"
	}
	hour12 := t.hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, t.minute, period)
}

// On places t on the calendar date of day in loc.
func (t TimeOfDay) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()

	return time.Date(y, m, d, t.hour, t.minute, t.second, 0, loc)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value yields the zero TimeOfDay.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*t = TimeOfDay{}

		return nil
	}

	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// FormatString parses value and renders it in the requested format.
func FormatString(value string, format DisplayFormat) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}

	return t.Format(format), nil
}
