package clocktime

import (
	"strings"
	"time"
)

// DateLayout is the storage and wire form of a calendar date.
const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD date as UTC midnight.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Reason: "expected YYYY-MM-DD"}
	}

	return d, nil
}

// DateOf strips the clock from t, keeping its calendar date as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(DateLayout)
}

// WeekRange returns the Monday and Sunday dates of the week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	day := DateOf(t)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := day.AddDate(0, 0, -(wd - 1))

	return monday, monday.AddDate(0, 0, 6)
}

// MonthRange returns the first and last dates of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	return first, first.AddDate(0, 1, -1)
}

// WeekdayIndex maps a date onto Monday=0 .. Sunday=6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
