package impl

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"workhours/config"
	deliverycontext "workhours/internal/delivery/context"
	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/earnings"
	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/domain/service"
	"workhours/internal/usecase"
	"workhours/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recentLogLimit is the number of logs shown on the dashboard.
const recentLogLimit = 5

// reportService implements the ReportUsecase interface.
type reportService struct {
	txManager     repository.TransactionManager
	exporter      service.ReportExporter
	workingDays   int
	monthsPerYear int
	location      *time.Location
	now           func() time.Time
	logger        *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Exporter  service.ReportExporter
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	srv := &reportService{
		txManager:     params.TxManager,
		exporter:      params.Exporter,
		workingDays:   earnings.DefaultWorkingDaysPerMonth,
		monthsPerYear: earnings.DefaultMonthsPerYear,
		location:      params.Config.Location(),
		now:           time.Now,
		logger:        params.Logger,
	}
	if params.Config != nil && params.Config.Report != nil {
		srv.workingDays = params.Config.Report.WorkingDaysPerMonth
		srv.monthsPerYear = params.Config.Report.MonthsPerYear
	}

	return srv
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Summary aggregates the logs dated within [from, to].
func (srv *reportService) Summary(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*usecase.ReportSummary, error) {
	logs, profile, err := srv.loadRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	average := earnings.AverageDaily(logs, profile)

	return &usecase.ReportSummary{
		From:           clocktime.DateOf(from),
		To:             clocktime.DateOf(to),
		Currency:       profile.Currency,
		CurrencySymbol: profile.CurrencySymbol(),
		LogCount:       len(logs),
		Totals:         earnings.Sum(logs, profile),
		AverageDaily:   average,
		Daily:          earnings.GroupByDay(logs, profile),
		Split:          earnings.PaidVsUnpaidSplit(logs, profile),
		Projection:     earnings.Project(average.Earnings, srv.workingDays, srv.monthsPerYear),
	}, nil
}

// Export renders the logs dated within [from, to] with the configured exporter.
func (srv *reportService) Export(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*usecase.ReportFile, error) {
	logs, profile, err := srv.loadRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := srv.exporter.Export(&buf, logs, profile); err != nil {
		return nil, errors.Wrap(err, "failed to export report")
	}

	file := &usecase.ReportFile{
		Filename:    usecase.ReportFilename(from, to),
		ContentType: srv.exporter.ContentType(),
		Content:     buf.Bytes(),
		Rows:        len(logs),
	}

	srv.log(ctx).Info("Report exported",
		slog.Any("owner_id", ownerID),
		slog.String("filename", file.Filename),
		slog.Int("rows", file.Rows),
		slog.String("size", util.FormatBytes(int64(len(file.Content)))),
	)

	return file, nil
}

// Dashboard compares the current week with the previous one and the selected month with
// the one before it.
func (srv *reportService) Dashboard(ctx context.Context, ownerID uuid.UUID, month time.Time) (*usecase.Dashboard, error) {
	now := srv.now().In(srv.location)
	if month.IsZero() {
		month = now
	}

	weekStart, weekEnd := clocktime.WeekRange(now)
	prevWeekStart, prevWeekEnd := weekStart.AddDate(0, 0, -7), weekStart.AddDate(0, 0, -1)
	monthStart, monthEnd := clocktime.MonthRange(month)
	prevMonthStart, prevMonthEnd := clocktime.MonthRange(monthStart.AddDate(0, -1, 0))

	var (
		profile                             *entity.WageProfile
		week, prevWeek, monthLogs, prevLogs []*entity.WorkLog
		recent                              []*entity.WorkLog
	)
	status := &entity.ClockStatus{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if profile, err = loadProfile(ctx, repoFactory, ownerID); err != nil {
			return err
		}

		workLogRepo := repoFactory.WorkLogRepo()
		ranges := []struct {
			from, to time.Time
			dst      *[]*entity.WorkLog
		}{
			{weekStart, weekEnd, &week},
			{prevWeekStart, prevWeekEnd, &prevWeek},
			{monthStart, monthEnd, &monthLogs},
			{prevMonthStart, prevMonthEnd, &prevLogs},
		}
		for _, r := range ranges {
			from, to := r.from, r.to
			logs, err := workLogRepo.List(ctx, ownerID, entity.WorkLogFilter{From: &from, To: &to, Asc: true})
			if err != nil {
				return errors.Wrap(err, "failed to list work logs")
			}
			*r.dst = logs
		}

		if recent, err = workLogRepo.List(ctx, ownerID, entity.WorkLogFilter{Limit: recentLogLimit}); err != nil {
			return errors.Wrap(err, "failed to list recent work logs")
		}

		session, err := repoFactory.ClockSessionRepo().FindActiveByOwner(ctx, ownerID)
		switch {
		case err == nil:
			clockIn := session.ClockInTime
			status.IsClockedIn = true
			status.Session = session
			status.ClockInTime = &clockIn
			status.Elapsed = util.FormatDuration(session.Elapsed(now))
		case !errors.Is(err, repository.ErrClockSessionNotFound):
			return errors.Wrap(err, "failed to find active session")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	weekHours := earnings.TotalHours(week)
	prevWeekHours := earnings.TotalHours(prevWeek)
	monthCmp := earnings.PeriodComparison(monthLogs, prevLogs, profile)

	return &usecase.Dashboard{
		Week: usecase.WeekSummary{
			Start:         weekStart,
			End:           weekEnd,
			Hours:         weekHours,
			PreviousHours: prevWeekHours,
			HoursDelta:    weekHours.Sub(prevWeekHours),
		},
		Month: usecase.MonthSummary{
			Month:                     monthStart.Format("2006-01"),
			Earnings:                  earnings.TotalEarnings(monthLogs, profile),
			PreviousEarnings:          earnings.TotalEarnings(prevLogs, profile),
			EarningsDelta:             monthCmp.EarningsDelta,
			AverageDailyHours:         earnings.AverageDaily(monthLogs, profile).Hours,
			PreviousAverageDailyHours: earnings.AverageDaily(prevLogs, profile).Hours,
			Split:                     earnings.PaidVsUnpaidSplit(monthLogs, profile),
		},
		Weekdays: earnings.WeekdayBreakdown(week),
		Recent:   recent,
		Clock:    status,
		Profile:  profile,
	}, nil
}

func (srv *reportService) loadRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.WorkLog, *entity.WageProfile, error) {
	if from.IsZero() || to.IsZero() {
		return nil, nil, domainerrors.NewValidationError("from and to are required")
	}
	if from.After(to) {
		return nil, nil, domainerrors.NewValidationError("from must not be after to")
	}

	var (
		logs    []*entity.WorkLog
		profile *entity.WageProfile
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if profile, err = loadProfile(ctx, repoFactory, ownerID); err != nil {
			return err
		}

		logs, err = repoFactory.WorkLogRepo().List(ctx, ownerID, entity.WorkLogFilter{From: &from, To: &to, Asc: true})
		if err != nil {
			return errors.Wrap(err, "failed to list work logs")
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return logs, profile, nil
}
