package impl

import (
	"context"
	"testing"
	"time"

	"workhours/internal/domain/entity"
	domainerrors "workhours/internal/domain/errors"
	"workhours/internal/domain/repository"
	"workhours/internal/domain/service"
	mockSvc "workhours/internal/mocks/service"
	"workhours/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// clockServiceFixtures holds all test dependencies for clock service tests.
type clockServiceFixtures struct {
	service   usecase.ClockUsecase
	repos     *repoMocks
	publisher *mockSvc.MockEventPublisher
}

func createTestClockService(t *testing.T, now time.Time) clockServiceFixtures {
	repos := newRepoMocks(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewClockService(ClockServiceParams{
		TxManager: repos.txManager,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	svc.(*clockService).now = fixedClock(now)

	return clockServiceFixtures{service: svc, repos: repos, publisher: publisher}
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e *service.SessionEvent) bool { return e.Type == eventType })
}

func TestClockService_ClockIn_Success(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	fx := createTestClockService(t, now)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.sessionRepo.EXPECT().FindActiveByOwner(ctx, ownerID).Return(nil, repository.ErrClockSessionNotFound)
	fx.repos.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ClockSession")).Return(nil)
	fx.publisher.EXPECT().PublishSessionEvent(ctx, eventOfType(service.EventSessionOpened)).Return(nil)

	session, err := fx.service.ClockIn(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, session.OwnerID)
	assert.True(t, session.IsActive)
	assert.True(t, session.ClockInTime.Equal(now))
	assert.Nil(t, session.ClockOutTime)
}

func TestClockService_ClockIn_AlreadyActive(t *testing.T) {
	fx := createTestClockService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.sessionRepo.EXPECT().
		FindActiveByOwner(ctx, ownerID).
		Return(&entity.ClockSession{ID: uuid.New(), OwnerID: ownerID, IsActive: true}, nil)

	_, err := fx.service.ClockIn(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyClockedIn)
}

func TestClockService_ClockIn_LostRace(t *testing.T) {
	fx := createTestClockService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.sessionRepo.EXPECT().FindActiveByOwner(ctx, ownerID).Return(nil, repository.ErrClockSessionNotFound)
	fx.repos.sessionRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrActiveSessionExists)

	_, err := fx.service.ClockIn(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyClockedIn)
}

func TestClockService_ClockIn_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestClockService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.sessionRepo.EXPECT().FindActiveByOwner(ctx, ownerID).Return(nil, repository.ErrClockSessionNotFound)
	fx.repos.sessionRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishSessionEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.ClockIn(ctx, ownerID)
	require.NoError(t, err)
}

func TestClockService_ClockOut_NoActiveSession(t *testing.T) {
	fx := createTestClockService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.sessionRepo.EXPECT().FindActiveByOwner(ctx, ownerID).Return(nil, repository.ErrClockSessionNotFound)

	_, err := fx.service.ClockOut(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrNotClockedIn)
}

func TestClockService_ClockOut_DerivesWorkLog(t *testing.T) {
	in := time.Date(2025, 4, 1, 9, 15, 20, 0, time.UTC)
	out := time.Date(2025, 4, 1, 17, 45, 10, 0, time.UTC)
	fx := createTestClockService(t, out)
	ctx := context.Background()
	ownerID := uuid.New()
	active := &entity.ClockSession{ID: uuid.New(), OwnerID: ownerID, ClockInTime: in, IsActive: true}

	fx.repos.sessionRepo.EXPECT().FindActiveByOwner(ctx, ownerID).Return(active, nil)
	fx.repos.sessionRepo.EXPECT().
		Close(ctx, mock.MatchedBy(func(s *entity.ClockSession) bool {
			return !s.IsActive && s.ClockOutTime != nil && s.ClockOutTime.Equal(out)
		})).
		Return(nil)
	fx.repos.workLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WorkLog")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishSessionEvent(ctx, mock.MatchedBy(func(e *service.SessionEvent) bool {
			return e.Type == service.EventSessionClosed && e.WorkLogID != "" && e.ClockOutTime != nil
		})).
		Return(nil)

	result, err := fx.service.ClockOut(ctx, ownerID)
	require.NoError(t, err)

	assert.Equal(t, active.ID, result.Session.ID)
	assert.False(t, result.Session.IsActive)

	log := result.WorkLog
	assert.Equal(t, ownerID, log.OwnerID)
	assert.Equal(t, "2025-04-01", log.DayKey())
	assert.Equal(t, "09:15:20", log.StartTime.String())
	assert.Equal(t, "17:45:10", log.EndTime.String())
	assert.True(t, log.UsesDefaultRate)
	assert.False(t, log.Paid)
}

func TestClockService_ClockOut_CapsAtMidnight(t *testing.T) {
	in := time.Date(2025, 4, 1, 22, 0, 0, 0, time.UTC)
	out := time.Date(2025, 4, 2, 1, 30, 0, 0, time.UTC)
	fx := createTestClockService(t, out)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.sessionRepo.EXPECT().
		FindActiveByOwner(ctx, ownerID).
		Return(&entity.ClockSession{ID: uuid.New(), OwnerID: ownerID, ClockInTime: in, IsActive: true}, nil)
	fx.repos.sessionRepo.EXPECT().Close(ctx, mock.Anything).Return(nil)
	fx.repos.workLogRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishSessionEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.ClockOut(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", result.WorkLog.DayKey())
	assert.Equal(t, "23:59:59", result.WorkLog.EndTime.String())
}

func TestClockService_ClockOut_LogFailureReportsNothingCommitted(t *testing.T) {
	fx := createTestClockService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()
	dbErr := errors.New("disk full")

	fx.repos.sessionRepo.EXPECT().
		FindActiveByOwner(ctx, ownerID).
		Return(&entity.ClockSession{ID: uuid.New(), OwnerID: ownerID, ClockInTime: time.Now().Add(-time.Hour), IsActive: true}, nil)
	fx.repos.sessionRepo.EXPECT().Close(ctx, mock.Anything).Return(nil)
	fx.repos.workLogRepo.EXPECT().Create(ctx, mock.Anything).Return(dbErr)

	result, err := fx.service.ClockOut(ctx, ownerID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}

func TestClockService_ClockOut_ConcurrentCloseLoses(t *testing.T) {
	fx := createTestClockService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.sessionRepo.EXPECT().
		FindActiveByOwner(ctx, ownerID).
		Return(&entity.ClockSession{ID: uuid.New(), OwnerID: ownerID, ClockInTime: time.Now(), IsActive: true}, nil)
	fx.repos.sessionRepo.EXPECT().Close(ctx, mock.Anything).Return(repository.ErrClockSessionNotFound)

	_, err := fx.service.ClockOut(ctx, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrNotClockedIn)
}

func TestClockService_CurrentStatus(t *testing.T) {
	in := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	fx := createTestClockService(t, in.Add(90*time.Minute))
	ctx := context.Background()
	idle, busy := uuid.New(), uuid.New()

	fx.repos.sessionRepo.EXPECT().FindActiveByOwner(ctx, idle).Return(nil, repository.ErrClockSessionNotFound)
	fx.repos.sessionRepo.EXPECT().
		FindActiveByOwner(ctx, busy).
		Return(&entity.ClockSession{ID: uuid.New(), OwnerID: busy, ClockInTime: in, IsActive: true}, nil)

	status, err := fx.service.CurrentStatus(ctx, idle)
	require.NoError(t, err)
	assert.False(t, status.IsClockedIn)
	assert.Nil(t, status.ClockInTime)

	status, err = fx.service.CurrentStatus(ctx, busy)
	require.NoError(t, err)
	assert.True(t, status.IsClockedIn)
	require.NotNil(t, status.ClockInTime)
	assert.True(t, status.ClockInTime.Equal(in))
	assert.Equal(t, "1h30m", status.Elapsed)
}

func TestClockService_ListSessions(t *testing.T) {
	fx := createTestClockService(t, time.Now())
	ctx := context.Background()
	ownerID := uuid.New()
	sessions := []*entity.ClockSession{{ID: uuid.New(), OwnerID: ownerID}}

	fx.repos.sessionRepo.EXPECT().ListByOwner(ctx, ownerID, 20).Return(sessions, nil)

	got, err := fx.service.ListSessions(ctx, ownerID, 20)
	require.NoError(t, err)
	assert.Equal(t, sessions, got)
}
