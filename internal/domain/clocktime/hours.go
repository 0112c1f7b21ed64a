package clocktime

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// HoursWorked returns (end - start) in hours with minute precision. Seconds are ignored
// and there is no rollover past midnight, so an end before start yields a negative value.
func HoursWorked(start, end TimeOfDay) decimal.Decimal {
	return decimal.NewFromInt(int64(end.Minutes() - start.Minutes())).Div(minutesPerHour)
}

// HoursBetween is HoursWorked over storage strings.
func HoursBetween(start, end string) (decimal.Decimal, error) {
	s, err := Parse(start)
	if err != nil {
		return decimal.Zero, err
	}
	e, err := Parse(end)
	if err != nil {
		return decimal.Zero, err
	}

	return HoursWorked(s, e), nil
}

// MinutesWorked returns the whole-minute span between start and end.
func MinutesWorked(start, end TimeOfDay) int {
	return end.Minutes() - start.Minutes()
}

// FormatSpan renders a minute count as "8h" or "8h 15m".
func FormatSpan(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}
