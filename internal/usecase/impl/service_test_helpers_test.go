package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"workhours/config"
	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"
	"workhours/internal/domain/repository"
	mockRepo "workhours/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Calendar: &config.CalendarConfig{BaseURL: "https://hours.example.com/"},
		Report:   &config.ReportConfig{WorkingDaysPerMonth: 21, MonthsPerYear: 12},
	}
}

// repoMocks wires a mocked transaction manager to one factory holding every repository mock.
type repoMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	workLogRepo *mockRepo.MockWorkLogRepository
	sessionRepo *mockRepo.MockClockSessionRepository
	profileRepo *mockRepo.MockWageProfileRepository
	tokenRepo   *mockRepo.MockCalendarTokenRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	m := &repoMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		workLogRepo: mockRepo.NewMockWorkLogRepository(t),
		sessionRepo: mockRepo.NewMockClockSessionRepository(t),
		profileRepo: mockRepo.NewMockWageProfileRepository(t),
		tokenRepo:   mockRepo.NewMockCalendarTokenRepository(t),
	}

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()

	m.factory.EXPECT().WorkLogRepo().Return(m.workLogRepo).Maybe()
	m.factory.EXPECT().ClockSessionRepo().Return(m.sessionRepo).Maybe()
	m.factory.EXPECT().WageProfileRepo().Return(m.profileRepo).Maybe()
	m.factory.EXPECT().CalendarTokenRepo().Return(m.tokenRepo).Maybe()

	return m
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testLog(day, start, end string) *entity.WorkLog {
	date, err := clocktime.ParseDate(day)
	if err != nil {
		panic(err)
	}

	return &entity.WorkLog{
		Date:            date,
		StartTime:       clocktime.MustParse(start),
		EndTime:         clocktime.MustParse(end),
		UsesDefaultRate: true,
	}
}

func testProfile(wage string) *entity.WageProfile {
	profile := &entity.WageProfile{Currency: entity.CurrencyUSD, TimeFormat: clocktime.Format24h}
	if wage != "" {
		profile.DefaultHourlyWage = decimal.NewNullDecimal(decimal.RequireFromString(wage))
	}

	return profile
}

func mustDate(value string) time.Time {
	d, err := clocktime.ParseDate(value)
	if err != nil {
		panic(err)
	}

	return d
}
