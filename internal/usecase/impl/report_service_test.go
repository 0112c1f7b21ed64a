package impl

import (
	"context"
	"io"
	"testing"
	"time"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	mockSvc "workhours/internal/mocks/service"
	"workhours/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reportServiceFixtures holds all test dependencies for report service tests.
type reportServiceFixtures struct {
	service  usecase.ReportUsecase
	repos    *repoMocks
	exporter *mockSvc.MockReportExporter
}

func createTestReportService(t *testing.T, now time.Time) reportServiceFixtures {
	repos := newRepoMocks(t)
	exporter := mockSvc.NewMockReportExporter(t)

	svc := NewReportService(ReportServiceParams{
		TxManager: repos.txManager,
		Exporter:  exporter,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	svc.(*reportService).now = fixedClock(now)

	return reportServiceFixtures{service: svc, repos: repos, exporter: exporter}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

// rangeStarting matches a listing whose lower bound is day.
func rangeStarting(day string) interface{} {
	return mock.MatchedBy(func(f entity.WorkLogFilter) bool {
		return f.From != nil && clocktime.FormatDate(*f.From) == day
	})
}

func TestReportService_Summary(t *testing.T) {
	fx := createTestReportService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()
	from, to := mustDate("2025-03-01"), mustDate("2025-03-31")

	paid := testLog("2025-03-03", "09:00", "17:00")
	paid.Paid = true
	custom := testLog("2025-03-04", "09:00", "13:00")
	custom.UsesDefaultRate = false
	custom.CustomRate = decimal.NewNullDecimal(decimal.RequireFromString("30"))
	sameDay := testLog("2025-03-04", "14:00", "16:00")

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(testProfile("20"), nil)
	fx.repos.workLogRepo.EXPECT().
		List(ctx, ownerID, entity.WorkLogFilter{From: &from, To: &to, Asc: true}).
		Return([]*entity.WorkLog{paid, custom, sameDay}, nil)

	summary, err := fx.service.Summary(ctx, ownerID, from, to)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.LogCount)
	assert.Equal(t, "$", summary.CurrencySymbol)
	assertDecimal(t, "14", summary.Totals.Hours)
	assertDecimal(t, "320", summary.Totals.Earnings)
	assertDecimal(t, "7", summary.AverageDaily.Hours)
	assertDecimal(t, "160", summary.AverageDaily.Earnings)
	require.Len(t, summary.Daily, 2)
	assertDecimal(t, "160", summary.Split.PaidEarnings)
	assertDecimal(t, "50", summary.Split.PercentagePaid)
	assertDecimal(t, "3360", summary.Projection.Monthly)
	assertDecimal(t, "40320", summary.Projection.Yearly)
}

func TestReportService_Summary_FallsBackToDefaultProfile(t *testing.T) {
	fx := createTestReportService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()
	day := mustDate("2025-03-03")

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, repository.ErrWageProfileNotFound)
	fx.repos.workLogRepo.EXPECT().
		List(ctx, ownerID, mock.Anything).
		Return([]*entity.WorkLog{testLog("2025-03-03", "09:00", "10:30")}, nil)

	summary, err := fx.service.Summary(ctx, ownerID, day, day)
	require.NoError(t, err)
	assertDecimal(t, "1.5", summary.Totals.Hours)
	assertDecimal(t, "0", summary.Totals.Earnings)
}

func TestReportService_Summary_InvalidRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
	}{
		{"missing from", time.Time{}, mustDate("2025-03-01")},
		{"missing to", mustDate("2025-03-01"), time.Time{}},
		{"from after to", mustDate("2025-03-02"), mustDate("2025-03-01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReportService(t, time.Now())

			_, err := fx.service.Summary(context.Background(), uuid.New(), tt.from, tt.to)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestReportService_Export(t *testing.T) {
	fx := createTestReportService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()
	from, to := mustDate("2025-03-01"), mustDate("2025-03-31")
	logs := []*entity.WorkLog{testLog("2025-03-03", "09:00", "17:00")}
	profile := testProfile("20")

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(profile, nil)
	fx.repos.workLogRepo.EXPECT().List(ctx, ownerID, mock.Anything).Return(logs, nil)
	fx.exporter.EXPECT().
		Export(mock.Anything, logs, profile).
		RunAndReturn(func(w io.Writer, _ []*entity.WorkLog, _ *entity.WageProfile) error {
			_, err := io.WriteString(w, "Date,Start Time\n")

			return err
		})
	fx.exporter.EXPECT().ContentType().Return("text/csv; charset=utf-8")

	file, err := fx.service.Export(ctx, ownerID, from, to)
	require.NoError(t, err)
	assert.Equal(t, "work-report-2025-03-01-to-2025-03-31.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Equal(t, "Date,Start Time\n", string(file.Content))
	assert.Equal(t, 1, file.Rows)
}

func TestReportService_Export_ExporterError(t *testing.T) {
	fx := createTestReportService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()
	day := mustDate("2025-03-01")

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(testProfile(""), nil)
	fx.repos.workLogRepo.EXPECT().List(ctx, ownerID, mock.Anything).Return(nil, nil)
	fx.exporter.EXPECT().Export(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.Export(ctx, ownerID, day, day)
	assert.ErrorContains(t, err, "disk full")
}

func TestReportService_Dashboard(t *testing.T) {
	// Wednesday; the week runs 2025-04-07 to 2025-04-13.
	now := time.Date(2025, 4, 9, 10, 0, 0, 0, time.UTC)
	fx := createTestReportService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()

	monday := testLog("2025-04-07", "09:00", "17:00")
	tuesday := testLog("2025-04-08", "09:00", "12:00")
	tuesday.Paid = true
	lastWeek := testLog("2025-04-01", "09:00", "19:00")
	march := testLog("2025-03-20", "09:00", "13:00")
	session := &entity.ClockSession{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ClockInTime: now.Add(-90 * time.Minute),
		IsActive:    true,
	}

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(testProfile("10"), nil)
	fx.repos.workLogRepo.EXPECT().List(ctx, ownerID, rangeStarting("2025-04-07")).Return([]*entity.WorkLog{monday, tuesday}, nil)
	fx.repos.workLogRepo.EXPECT().List(ctx, ownerID, rangeStarting("2025-03-31")).Return([]*entity.WorkLog{lastWeek}, nil)
	fx.repos.workLogRepo.EXPECT().List(ctx, ownerID, rangeStarting("2025-04-01")).Return([]*entity.WorkLog{lastWeek, monday, tuesday}, nil)
	fx.repos.workLogRepo.EXPECT().List(ctx, ownerID, rangeStarting("2025-03-01")).Return([]*entity.WorkLog{march}, nil)
	fx.repos.workLogRepo.EXPECT().
		List(ctx, ownerID, entity.WorkLogFilter{Limit: recentLogLimit}).
		Return([]*entity.WorkLog{tuesday, monday}, nil)
	fx.repos.sessionRepo.EXPECT().FindActiveByOwner(ctx, ownerID).Return(session, nil)

	dashboard, err := fx.service.Dashboard(ctx, ownerID, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "2025-04-07", clocktime.FormatDate(dashboard.Week.Start))
	assert.Equal(t, "2025-04-13", clocktime.FormatDate(dashboard.Week.End))
	assertDecimal(t, "11", dashboard.Week.Hours)
	assertDecimal(t, "10", dashboard.Week.PreviousHours)
	assertDecimal(t, "1", dashboard.Week.HoursDelta)

	assert.Equal(t, "2025-04", dashboard.Month.Month)
	assertDecimal(t, "210", dashboard.Month.Earnings)
	assertDecimal(t, "40", dashboard.Month.PreviousEarnings)
	assertDecimal(t, "170", dashboard.Month.EarningsDelta)
	assertDecimal(t, "7", dashboard.Month.AverageDailyHours)
	assertDecimal(t, "30", dashboard.Month.Split.PaidEarnings)

	require.Len(t, dashboard.Weekdays, 7)
	assertDecimal(t, "8", dashboard.Weekdays[0].Hours)
	assertDecimal(t, "3", dashboard.Weekdays[1].Hours)
	assert.Len(t, dashboard.Recent, 2)

	assert.True(t, dashboard.Clock.IsClockedIn)
	assert.Equal(t, "1h30m", dashboard.Clock.Elapsed)
	assert.Equal(t, entity.CurrencyUSD, dashboard.Profile.Currency)
}

func TestReportService_Dashboard_SelectedMonthWithoutSession(t *testing.T) {
	now := time.Date(2025, 4, 9, 10, 0, 0, 0, time.UTC)
	fx := createTestReportService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, repository.ErrWageProfileNotFound)
	fx.repos.workLogRepo.EXPECT().List(ctx, ownerID, rangeStarting("2025-01-01")).Return(nil, nil)
	fx.repos.workLogRepo.EXPECT().List(ctx, ownerID, rangeStarting("2024-12-01")).Return(nil, nil)
	fx.repos.workLogRepo.EXPECT().List(ctx, ownerID, mock.Anything).Return(nil, nil)
	fx.repos.sessionRepo.EXPECT().FindActiveByOwner(ctx, ownerID).Return(nil, repository.ErrClockSessionNotFound)

	dashboard, err := fx.service.Dashboard(ctx, ownerID, mustDate("2025-01-15"))
	require.NoError(t, err)

	assert.Equal(t, "2025-01", dashboard.Month.Month)
	assertDecimal(t, "0", dashboard.Month.Earnings)
	assert.False(t, dashboard.Clock.IsClockedIn)
	assert.Nil(t, dashboard.Clock.Session)
}
