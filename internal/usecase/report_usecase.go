package usecase

import (
	"context"
	"fmt"
	"time"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/earnings"
	"workhours/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportUsecase builds range reports and the dashboard.
type ReportUsecase interface {
	Summary(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*ReportSummary, error)
	Export(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*ReportFile, error)
	// Dashboard summarises the week containing now and the month containing month.
	Dashboard(ctx context.Context, ownerID uuid.UUID, month time.Time) (*Dashboard, error)
}

// ReportSummary aggregates the logs dated within [From, To].
type ReportSummary struct {
	From           time.Time             `json:"from"`
	To             time.Time             `json:"to"`
	Currency       entity.Currency       `json:"currency"`
	CurrencySymbol string                `json:"currency_symbol"`
	LogCount       int                   `json:"log_count"`
	Totals         earnings.Totals       `json:"totals"`
	AverageDaily   earnings.Totals       `json:"average_daily"`
	Daily          []earnings.DailyTotal `json:"daily"`
	Split          earnings.PaidSplit    `json:"split"`
	Projection     earnings.Projection   `json:"projection"`
}

// ReportFile is a rendered export.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	Rows        int
}

// ReportFilename names an export covering [from, to].
func ReportFilename(from, to time.Time) string {
	return fmt.Sprintf("work-report-%s-to-%s.csv", clocktime.FormatDate(from), clocktime.FormatDate(to))
}

// Dashboard is the overview shown on the landing page.
type Dashboard struct {
	Week     WeekSummary             `json:"week"`
	Month    MonthSummary            `json:"month"`
	Weekdays []earnings.WeekdayHours `json:"weekdays"`
	Recent   []*entity.WorkLog       `json:"recent"`
	Clock    *entity.ClockStatus     `json:"clock"`
	Profile  *entity.WageProfile     `json:"profile"`
}

// WeekSummary compares the current week with the previous one.
type WeekSummary struct {
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	Hours         decimal.Decimal `json:"hours"`
	PreviousHours decimal.Decimal `json:"previous_hours"`
	HoursDelta    decimal.Decimal `json:"hours_delta"`
}

// MonthSummary compares the selected month with the previous one.
type MonthSummary struct {
	Month                     string             `json:"month"` // YYYY-MM
	Earnings                  decimal.Decimal    `json:"earnings"`
	PreviousEarnings          decimal.Decimal    `json:"previous_earnings"`
	EarningsDelta             decimal.Decimal    `json:"earnings_delta"`
	AverageDailyHours         decimal.Decimal    `json:"average_daily_hours"`
	PreviousAverageDailyHours decimal.Decimal    `json:"previous_average_daily_hours"`
	Split                     earnings.PaidSplit `json:"split"`
}
