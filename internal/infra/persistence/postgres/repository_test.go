package postgres

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"
	"workhours/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "workhours.db"), gormlogger.Discard)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func newWorkLog(ownerID uuid.UUID, day, start, end string) *entity.WorkLog {
	date, err := clocktime.ParseDate(day)
	if err != nil {
		panic(err)
	}

	return &entity.WorkLog{
		OwnerID:         ownerID,
		Date:            date,
		StartTime:       clocktime.MustParse(start),
		EndTime:         clocktime.MustParse(end),
		UsesDefaultRate: true,
	}
}

func TestWorkLogRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkLogRepository(newTestDB(t))
	ownerID := uuid.New()

	log := newWorkLog(ownerID, "2025-04-01", "09:00", "17:30:15")
	log.Notes = "Client A"
	require.NoError(t, repo.Create(ctx, log))
	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.False(t, log.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, ownerID, log.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", found.DayKey())
	assert.Equal(t, "09:00:00", found.StartTime.String())
	assert.Equal(t, "17:30:15", found.EndTime.String())
	assert.Equal(t, "Client A", found.Notes)
	assert.True(t, found.UsesDefaultRate)
	assert.False(t, found.CustomRate.Valid)

	_, err = repo.FindByID(ctx, uuid.New(), log.ID)
	assert.ErrorIs(t, err, repository.ErrWorkLogNotFound)

	found.UsesDefaultRate = false
	found.CustomRate = decimal.NewNullDecimal(decimal.RequireFromString("35.5"))
	found.Notes = ""
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, ownerID, log.ID)
	require.NoError(t, err)
	assert.False(t, updated.UsesDefaultRate)
	require.True(t, updated.CustomRate.Valid)
	assert.True(t, decimal.RequireFromString("35.5").Equal(updated.CustomRate.Decimal))
	assert.Empty(t, updated.Notes)

	require.NoError(t, repo.Delete(ctx, ownerID, log.ID))
	assert.ErrorIs(t, repo.Delete(ctx, ownerID, log.ID), repository.ErrWorkLogNotFound)
}

func TestWorkLogRepository_UpdateOtherOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkLogRepository(newTestDB(t))

	log := newWorkLog(uuid.New(), "2025-04-01", "09:00", "17:00")
	require.NoError(t, repo.Create(ctx, log))

	log.OwnerID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, log), repository.ErrWorkLogNotFound)
	assert.ErrorIs(t, repo.SetPaid(ctx, log.OwnerID, log.ID, true), repository.ErrWorkLogNotFound)
}

func TestWorkLogRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkLogRepository(newTestDB(t))
	ownerID := uuid.New()

	for _, l := range []*entity.WorkLog{
		newWorkLog(ownerID, "2025-03-31", "09:00", "10:00"),
		newWorkLog(ownerID, "2025-04-02", "13:00", "14:00"),
		newWorkLog(ownerID, "2025-04-02", "08:00", "09:00"),
		newWorkLog(ownerID, "2025-04-10", "09:00", "10:00"),
		newWorkLog(uuid.New(), "2025-04-02", "09:00", "10:00"),
	} {
		require.NoError(t, repo.Create(ctx, l))
	}

	from, _ := clocktime.ParseDate("2025-04-01")
	to, _ := clocktime.ParseDate("2025-04-07")

	logs, err := repo.List(ctx, ownerID, entity.WorkLogFilter{From: &from, To: &to, Asc: true})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "08:00:00", logs[0].StartTime.String())
	assert.Equal(t, "13:00:00", logs[1].StartTime.String())

	all, err := repo.List(ctx, ownerID, entity.WorkLogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "2025-04-10", all[0].DayKey())

	limited, err := repo.List(ctx, ownerID, entity.WorkLogFilter{Limit: 1, Asc: true})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "2025-03-31", limited[0].DayKey())
}

func TestWorkLogRepository_SetPaid(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkLogRepository(newTestDB(t))
	ownerID := uuid.New()

	first := newWorkLog(ownerID, "2025-04-01", "09:00", "10:00")
	second := newWorkLog(ownerID, "2025-04-03", "09:00", "10:00")
	outside := newWorkLog(ownerID, "2025-05-01", "09:00", "10:00")
	for _, l := range []*entity.WorkLog{first, second, outside} {
		require.NoError(t, repo.Create(ctx, l))
	}

	require.NoError(t, repo.SetPaid(ctx, ownerID, first.ID, true))

	from, _ := clocktime.ParseDate("2025-04-01")
	to, _ := clocktime.ParseDate("2025-04-30")
	affected, err := repo.SetPaidInRange(ctx, ownerID, from, to, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	paid := true
	paidLogs, err := repo.List(ctx, ownerID, entity.WorkLogFilter{Paid: &paid})
	require.NoError(t, err)
	assert.Len(t, paidLogs, 2)

	unpaid := false
	unpaidLogs, err := repo.List(ctx, ownerID, entity.WorkLogFilter{Paid: &unpaid})
	require.NoError(t, err)
	require.Len(t, unpaidLogs, 1)
	assert.Equal(t, outside.ID, unpaidLogs[0].ID)
}

func TestClockSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewClockSessionRepository(newTestDB(t))
	ownerID := uuid.New()

	_, err := repo.FindActiveByOwner(ctx, ownerID)
	assert.ErrorIs(t, err, repository.ErrClockSessionNotFound)

	in := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	session := &entity.ClockSession{OwnerID: ownerID, ClockInTime: in}
	require.NoError(t, repo.Create(ctx, session))

	active, err := repo.FindActiveByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, active.ID)
	assert.True(t, active.ClockInTime.Equal(in))
	assert.Nil(t, active.ClockOutTime)

	err = repo.Create(ctx, &entity.ClockSession{OwnerID: ownerID, ClockInTime: in.Add(time.Minute)})
	assert.ErrorIs(t, err, repository.ErrActiveSessionExists)

	active.Close(in.Add(2 * time.Hour))
	require.NoError(t, repo.Close(ctx, active))
	assert.ErrorIs(t, repo.Close(ctx, active), repository.ErrClockSessionNotFound)

	_, err = repo.FindActiveByOwner(ctx, ownerID)
	assert.ErrorIs(t, err, repository.ErrClockSessionNotFound)

	// A closed session no longer blocks a new one.
	require.NoError(t, repo.Create(ctx, &entity.ClockSession{OwnerID: ownerID, ClockInTime: in.Add(3 * time.Hour)}))

	sessions, err := repo.ListByOwner(ctx, ownerID, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].IsActive)
	require.NotNil(t, sessions[1].ClockOutTime)
	assert.True(t, sessions[1].ClockOutTime.Equal(in.Add(2*time.Hour)))
}

func TestTransactionManager_ConcurrentClockIn(t *testing.T) {
	ctx := context.Background()
	tm := NewTransactionManager(newTestDB(t))
	ownerID := uuid.New()
	errOpen := errors.New("already open")

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				if _, err := f.ClockSessionRepo().FindActiveByOwner(ctx, ownerID); err == nil {
					return errOpen
				}

				return f.ClockSessionRepo().Create(ctx, &entity.ClockSession{OwnerID: ownerID, ClockInTime: time.Now()})
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)

	sessions, err := NewClockSessionRepository(tm.(*gormTransactionManager).db).ListByOwner(ctx, ownerID, 0)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ownerID := uuid.New()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.WorkLogRepo().Create(ctx, newWorkLog(ownerID, "2025-04-01", "09:00", "10:00")); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	logs, err := NewWorkLogRepository(db).List(ctx, ownerID, entity.WorkLogFilter{})
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestWageProfileRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewWageProfileRepository(newTestDB(t))
	ownerID := uuid.New()

	_, err := repo.FindByOwner(ctx, ownerID)
	assert.ErrorIs(t, err, repository.ErrWageProfileNotFound)

	profile := entity.DefaultWageProfile(ownerID)
	profile.FirstName = "Ada"
	profile.DefaultHourlyWage = decimal.NewNullDecimal(decimal.RequireFromString("20"))
	require.NoError(t, repo.Upsert(ctx, profile))

	profile.Currency = entity.CurrencyEUR
	profile.DefaultHourlyWage = decimal.NullDecimal{}
	profile.OnboardingCompleted = true
	require.NoError(t, repo.Upsert(ctx, profile))

	found, err := repo.FindByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.FirstName)
	assert.Equal(t, entity.CurrencyEUR, found.Currency)
	assert.Equal(t, clocktime.Format24h, found.TimeFormat)
	assert.False(t, found.DefaultHourlyWage.Valid)
	assert.True(t, found.OnboardingCompleted)
}

func TestCalendarTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCalendarTokenRepository(newTestDB(t))
	ownerID := uuid.New()

	_, err := repo.FindByOwner(ctx, ownerID)
	assert.ErrorIs(t, err, repository.ErrCalendarTokenNotFound)

	require.NoError(t, repo.Upsert(ctx, &entity.CalendarToken{OwnerID: ownerID, TokenHash: "first"}))
	require.NoError(t, repo.Upsert(ctx, &entity.CalendarToken{OwnerID: ownerID, TokenHash: "second"}))

	token, err := repo.FindByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "second", token.TokenHash)

	require.NoError(t, repo.Delete(ctx, ownerID))
	assert.ErrorIs(t, repo.Delete(ctx, ownerID), repository.ErrCalendarTokenNotFound)
}
