package earnings

import (
	"sort"
	"time"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const (
	// DefaultWorkingDaysPerMonth is used by Project when no override is configured.
	DefaultWorkingDaysPerMonth = 21
	// DefaultMonthsPerYear is used by Project when no override is configured.
	DefaultMonthsPerYear = 12
)

var hundred = decimal.NewFromInt(100)

// Totals pairs an hours figure with an earnings figure.
type Totals struct {
	Hours    decimal.Decimal `json:"hours"`
	Earnings decimal.Decimal `json:"earnings"`
}

// DailyTotal is the Totals of one calendar date.
type DailyTotal struct {
	Date time.Time `json:"date"`
	Totals
}

// Comparison is current minus previous.
type Comparison struct {
	HoursDelta    decimal.Decimal `json:"hours_delta"`
	EarningsDelta decimal.Decimal `json:"earnings_delta"`
}

// PaidSplit divides earnings by paid status.
type PaidSplit struct {
	PaidEarnings   decimal.Decimal `json:"paid_earnings"`
	UnpaidEarnings decimal.Decimal `json:"unpaid_earnings"`
	PercentagePaid decimal.Decimal `json:"percentage_paid"`
}

// Projection extrapolates an average daily figure.
type Projection struct {
	Monthly decimal.Decimal `json:"monthly"`
	Yearly  decimal.Decimal `json:"yearly"`
}

// WeekdayHours is the hours worked on one weekday.
type WeekdayHours struct {
	Weekday time.Weekday    `json:"weekday"`
	Label   string          `json:"label"`
	Hours   decimal.Decimal `json:"hours"`
}

// TotalHours sums the hours of logs. An empty input yields zero.
func TotalHours(logs []*entity.WorkLog) decimal.Decimal {
	total := decimal.Zero
	for _, log := range logs {
		total = total.Add(log.Hours())
	}

	return total
}

// TotalEarnings sums hours × effective rate over logs.
func TotalEarnings(logs []*entity.WorkLog, profile *entity.WageProfile) decimal.Decimal {
	total := decimal.Zero
	for _, log := range logs {
		total = total.Add(Earnings(log, profile))
	}

	return total
}

// Sum returns the Totals of logs.
func Sum(logs []*entity.WorkLog, profile *entity.WageProfile) Totals {
	return Totals{Hours: TotalHours(logs), Earnings: TotalEarnings(logs, profile)}
}

// GroupByDay totals logs per calendar date, sorted by date ascending.
// Logs without a date are left out.
func GroupByDay(logs []*entity.WorkLog, profile *entity.WageProfile) []DailyTotal {
	byDay := make(map[string]*DailyTotal)
	for _, log := range logs {
		if log.Date.IsZero() {
			continue
		}

		key := log.DayKey()
		day, ok := byDay[key]
		if !ok {
			day = &DailyTotal{
				Date:   clocktime.DateOf(log.Date),
				Totals: Totals{Hours: decimal.Zero, Earnings: decimal.Zero},
			}
			byDay[key] = day
		}
		day.Hours = day.Hours.Add(log.Hours())
		day.Earnings = day.Earnings.Add(Earnings(log, profile))
	}

	days := make([]DailyTotal, 0, len(byDay))
	for _, day := range byDay {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

// DistinctDays counts the dated calendar days present in logs.
func DistinctDays(logs []*entity.WorkLog) int {
	seen := make(map[string]struct{})
	for _, log := range logs {
		if log.Date.IsZero() {
			continue
		}
		seen[log.DayKey()] = struct{}{}
	}

	return len(seen)
}

// AverageDaily divides the totals of logs by the number of distinct days worked.
func AverageDaily(logs []*entity.WorkLog, profile *entity.WageProfile) Totals {
	days := DistinctDays(logs)
	if days == 0 {
		return Totals{Hours: decimal.Zero, Earnings: decimal.Zero}
	}

	divisor := decimal.NewFromInt(int64(days))
	totals := Sum(logs, profile)

	return Totals{
		Hours:    totals.Hours.Div(divisor),
		Earnings: totals.Earnings.Div(divisor),
	}
}

// PeriodComparison returns current minus previous for hours and earnings.
func PeriodComparison(current, previous []*entity.WorkLog, profile *entity.WageProfile) Comparison {
	cur := Sum(current, profile)
	prev := Sum(previous, profile)

	return Comparison{
		HoursDelta:    cur.Hours.Sub(prev.Hours),
		EarningsDelta: cur.Earnings.Sub(prev.Earnings),
	}
}

// PaidVsUnpaidSplit splits earnings by paid status. The percentage is 0 when nothing was earned.
func PaidVsUnpaidSplit(logs []*entity.WorkLog, profile *entity.WageProfile) PaidSplit {
	paid := decimal.Zero
	unpaid := decimal.Zero
	for _, log := range logs {
		amount := Earnings(log, profile)
		if log.Paid {
			paid = paid.Add(amount)
		} else {
			unpaid = unpaid.Add(amount)
		}
	}

	split := PaidSplit{PaidEarnings: paid, UnpaidEarnings: unpaid, PercentagePaid: decimal.Zero}
	total := paid.Add(unpaid)
	if !total.IsZero() {
		split.PercentagePaid = paid.Div(total).Mul(hundred)
	}

	return split
}

// Project extrapolates an average daily amount. Non-positive arguments fall back to the defaults.
func Project(averageDaily decimal.Decimal, workingDaysPerMonth, monthsPerYear int) Projection {
	if workingDaysPerMonth <= 0 {
		workingDaysPerMonth = DefaultWorkingDaysPerMonth
	}
	if monthsPerYear <= 0 {
		monthsPerYear = DefaultMonthsPerYear
	}

	monthly := averageDaily.Mul(decimal.NewFromInt(int64(workingDaysPerMonth)))

	return Projection{
		Monthly: monthly,
		Yearly:  monthly.Mul(decimal.NewFromInt(int64(monthsPerYear))),
	}
}

// WeekdayBreakdown sums hours per weekday, Monday first.
func WeekdayBreakdown(logs []*entity.WorkLog) []WeekdayHours {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
	}

	breakdown := make([]WeekdayHours, len(order))
	for i, wd := range order {
		breakdown[i] = WeekdayHours{Weekday: wd, Label: wd.String()[:3], Hours: decimal.Zero}
	}

	for _, log := range logs {
		if log.Date.IsZero() {
			continue
		}
		idx := clocktime.WeekdayIndex(log.Date)
		breakdown[idx].Hours = breakdown[idx].Hours.Add(log.Hours())
	}

	return breakdown
}
